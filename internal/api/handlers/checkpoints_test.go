package handlers_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/mws-toolkit/internal/api/handlers"
	"github.com/donaldgifford/mws-toolkit/internal/store"
	"github.com/donaldgifford/mws-toolkit/internal/store/mocks"
	domain "github.com/donaldgifford/mws-toolkit/pkg/types"
)

func TestListCheckpoints(t *testing.T) {
	t.Parallel()

	cursor := time.Date(2017, 2, 25, 18, 10, 21, 0, time.UTC)

	ms := mocks.NewMockStore(t)
	ms.EXPECT().GetCheckpoint(mock.Anything, "uk", domain.JobOrderSync).
		Return(nil, store.ErrNotFound).Once()
	ms.EXPECT().GetCheckpoint(mock.Anything, "us", domain.JobOrderSync).
		Return(&domain.SyncCheckpoint{
			Store:     "us",
			Job:       domain.JobOrderSync,
			Cursor:    cursor,
			UpdatedAt: cursor.Add(time.Minute),
		}, nil).Once()

	_, api := humatest.New(t)
	handlers.RegisterCheckpointRoutes(api, handlers.NewCheckpointsHandler(ms, []string{"uk", "us"}))

	resp := api.Get("/api/v1/checkpoints")
	require.Equal(t, http.StatusOK, resp.Code)

	body := resp.Body.String()
	assert.Contains(t, body, `"job":"order_sync"`)
	assert.Contains(t, body, `{"store":"uk"}`)
	assert.Contains(t, body, `"cursor":"2017-02-25T18:10:21Z"`)
	assert.Contains(t, body, `"updated_at":"2017-02-25T18:11:21Z"`)
}

func TestListCheckpoints_Error(t *testing.T) {
	t.Parallel()

	ms := mocks.NewMockStore(t)
	ms.EXPECT().GetCheckpoint(mock.Anything, "us", domain.JobOrderSync).
		Return(nil, errors.New("db down")).Once()

	_, api := humatest.New(t)
	handlers.RegisterCheckpointRoutes(api, handlers.NewCheckpointsHandler(ms, []string{"us"}))

	resp := api.Get("/api/v1/checkpoints")
	require.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.Contains(t, resp.Body.String(), "failed to get checkpoints")
}
