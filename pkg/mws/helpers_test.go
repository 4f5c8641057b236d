package mws_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/mws-toolkit/pkg/mws"
)

var fixedNow = time.Date(2017, 2, 25, 18, 10, 21, 0, time.UTC)

func testCredentials() mws.Credentials {
	return mws.Credentials{
		SellerID:      "A1EXAMPLE",
		MarketplaceID: "ATVPDKIKX0DER",
		AccessKeyID:   "AKIAEXAMPLE",
		SecretKey:     "secret-key",
	}
}

// newTestClient returns a client that replays entries from testdata.
func newTestClient(
	t *testing.T,
	entries ...string,
) (*mws.Client, *mws.MockTransport) {
	t.Helper()

	mock := mws.NewMockTransport("testdata", entries...)
	c, err := mws.NewClient(testCredentials(),
		mws.WithMock(mock),
		mws.WithThrottleRetryWait(0),
		mws.WithNowFunc(func() time.Time { return fixedNow }),
	)
	require.NoError(t, err)
	return c, mock
}

// lastParams returns the parameters of the most recent mocked request.
func lastParams(t *testing.T, mock *mws.MockTransport) map[string]string {
	t.Helper()

	rec, ok := mock.LastRequest()
	require.True(t, ok, "no request was recorded")
	out := make(map[string]string, len(rec.Params))
	for k := range rec.Params {
		out[k] = rec.Params.Get(k)
	}
	return out
}
