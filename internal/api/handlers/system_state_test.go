package handlers_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/mws-toolkit/internal/api/handlers"
	"github.com/donaldgifford/mws-toolkit/internal/store/mocks"
	domain "github.com/donaldgifford/mws-toolkit/pkg/types"
)

func TestGetSystemState(t *testing.T) {
	t.Parallel()

	ms := mocks.NewMockStore(t)
	ms.EXPECT().GetSystemState(mock.Anything).Return(&domain.SystemState{
		OrdersTotal:           12,
		OrdersByStore:         map[string]int{"us": 9, "uk": 3},
		OrdersUnshipped:       2,
		OrderItemsTotal:       20,
		ReportsArchived:       4,
		ReportsUnacknowledged: 1,
		ArchivedBytes:         2048,
		Checkpoints:           2,
		JobRunsByStatus: map[string]int{
			domain.JobStatusSucceeded: 30,
			domain.JobStatusFailed:    1,
		},
	}, nil).Once()

	_, api := humatest.New(t)
	handlers.RegisterSystemStateRoutes(api, handlers.NewSystemStateHandler(ms))

	resp := api.Get("/api/v1/system/state")
	require.Equal(t, http.StatusOK, resp.Code)

	body := resp.Body.String()
	assert.Contains(t, body, `"orders_total":12`)
	assert.Contains(t, body, `"orders_by_store":{"uk":3,"us":9}`)
	assert.Contains(t, body, `"reports_unacknowledged":1`)
	assert.Contains(t, body, `"archived_bytes":2048`)
	assert.Contains(t, body, `"job_runs_by_status":{"failed":1,"succeeded":30}`)
}

func TestGetSystemState_Error(t *testing.T) {
	t.Parallel()

	ms := mocks.NewMockStore(t)
	ms.EXPECT().GetSystemState(mock.Anything).Return(nil, errors.New("db down")).Once()

	_, api := humatest.New(t)
	handlers.RegisterSystemStateRoutes(api, handlers.NewSystemStateHandler(ms))

	resp := api.Get("/api/v1/system/state")
	require.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.Contains(t, resp.Body.String(), "failed to get system state")
}
