package mws_test

import (
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/mws-toolkit/pkg/mws"
)

func mockGet(t *testing.T, m *mws.MockTransport, body string) (*http.Response, error) {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, "https://mws.amazonservices.com/Orders/2013-09-01?x=1",
		strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded; charset=utf-8")
	return m.RoundTrip(req)
}

func TestMockTransport_ServesEntriesInOrderAndWraps(t *testing.T) {
	t.Parallel()

	m := mws.NewMockTransport("testdata", "get_order.xml", "503")

	want := []int{http.StatusOK, http.StatusServiceUnavailable, http.StatusOK}
	for i, status := range want {
		resp, err := mockGet(t, m, "Action=GetOrder")
		require.NoError(t, err, "request %d", i)
		assert.Equal(t, status, resp.StatusCode, "request %d", i)
		resp.Body.Close()
	}
	assert.Len(t, m.Requests(), 3)
}

func TestMockTransport_SynthesizedErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		entry string
		code  string
	}{
		{entry: "400", code: "InvalidParameterValue"},
		{entry: "401", code: "AccessDenied"},
		{entry: "403", code: "InvalidAccessKeyId"},
		{entry: "404", code: "InvalidRequest"},
		{entry: "500", code: "InternalError"},
		{entry: "503", code: "RequestThrottled"},
	}

	for _, tt := range tests {
		t.Run(tt.entry, func(t *testing.T) {
			t.Parallel()

			m := mws.NewMockTransport("testdata", tt.entry)
			resp, err := mockGet(t, m, "")
			require.NoError(t, err)
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			assert.Contains(t, string(body), "<Code>"+tt.code+"</Code>")
			assert.Equal(t, "text/xml", resp.Header.Get("Content-Type"))
			assert.NotEmpty(t, resp.Header.Get("x-mws-request-id"))
		})
	}
}

func TestMockTransport_MissingFixture(t *testing.T) {
	t.Parallel()

	m := mws.NewMockTransport("testdata", "does_not_exist.xml")
	_, err := mockGet(t, m, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does_not_exist.xml")
}

func TestMockTransport_NoEntries(t *testing.T) {
	t.Parallel()

	m := mws.NewMockTransport("testdata")
	_, err := mockGet(t, m, "")
	require.ErrorIs(t, err, mws.ErrMockExhausted)
}

func TestMockTransport_RecordsParams(t *testing.T) {
	t.Parallel()

	m := mws.NewMockTransport("testdata", "get_order.xml")
	resp, err := mockGet(t, m, "Action=GetOrder&AmazonOrderId.Id.1=902-3159896-1390916")
	require.NoError(t, err)
	resp.Body.Close()

	rec, ok := m.LastRequest()
	require.True(t, ok)
	assert.Equal(t, "/Orders/2013-09-01", rec.Path)
	assert.Equal(t, "GetOrder", rec.Params.Get("Action"))
	assert.Equal(t, "902-3159896-1390916", rec.Params.Get("AmazonOrderId.Id.1"))
	assert.Equal(t, "1", rec.Params.Get("x"))
}

func TestMockTransport_SetEntriesRewinds(t *testing.T) {
	t.Parallel()

	m := mws.NewMockTransport("testdata", "404", "get_order.xml")
	resp, err := mockGet(t, m, "")
	require.NoError(t, err)
	resp.Body.Close()

	m.SetEntries("500")
	resp, err = mockGet(t, m, "")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}
