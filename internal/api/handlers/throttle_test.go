package handlers_test

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/mws-toolkit/internal/api/handlers"
	"github.com/donaldgifford/mws-toolkit/pkg/mws"
)

type fakeThrottleSource struct {
	throttle *mws.Throttle
}

func (f fakeThrottleSource) Throttle() *mws.Throttle { return f.throttle }

func TestGetThrottle(t *testing.T) {
	t.Parallel()

	resets := time.Date(2017, 2, 25, 19, 0, 0, 0, time.UTC)

	us := mws.NewThrottle()
	require.NoError(t, us.Wait(context.Background(), "Orders"))
	us.Observe("Orders", mws.QuotaState{
		Max:        200,
		Remaining:  150,
		ResetsOn:   resets,
		ObservedAt: resets.Add(-time.Hour),
	})

	uk := mws.NewThrottle()

	h := handlers.NewThrottleHandler(map[string]handlers.ThrottleSource{
		"us": fakeThrottleSource{throttle: us},
		"uk": fakeThrottleSource{throttle: uk},
		"de": fakeThrottleSource{},
	})

	_, api := humatest.New(t)
	handlers.RegisterThrottleRoutes(api, h)

	resp := api.Get("/api/v1/throttle")
	require.Equal(t, http.StatusOK, resp.Code)

	body := resp.Body.String()
	assert.Contains(t, body, `"group":"Orders"`)
	assert.Contains(t, body, `"server_max":200`)
	assert.Contains(t, body, `"server_remaining":150`)
	assert.Contains(t, body, `"server_resets_on":"2017-02-25T19:00:00Z"`)
	assert.Contains(t, body, `{"store":"uk","groups":[]}`)

	// stores are sorted by name
	assert.Less(t, strings.Index(body, `"store":"de"`), strings.Index(body, `"store":"uk"`))
	assert.Less(t, strings.Index(body, `"store":"uk"`), strings.Index(body, `"store":"us"`))
}

func TestGetThrottle_NoStores(t *testing.T) {
	t.Parallel()

	_, api := humatest.New(t)
	handlers.RegisterThrottleRoutes(api, handlers.NewThrottleHandler(nil))

	resp := api.Get("/api/v1/throttle")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"stores":[]`)
}

