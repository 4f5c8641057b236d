package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/mws-toolkit/internal/store"
	domain "github.com/donaldgifford/mws-toolkit/pkg/types"
)

// CheckpointProvider reads sync checkpoints.
type CheckpointProvider interface {
	GetCheckpoint(ctx context.Context, store, job string) (*domain.SyncCheckpoint, error)
}

// CheckpointsHandler handles GET /api/v1/checkpoints.
type CheckpointsHandler struct {
	store  CheckpointProvider
	stores []string
}

// NewCheckpointsHandler creates a CheckpointsHandler for the given stores.
func NewCheckpointsHandler(s CheckpointProvider, stores []string) *CheckpointsHandler {
	return &CheckpointsHandler{store: s, stores: stores}
}

// StoreCheckpoint is the order sync position of one store. Cursor is
// omitted until the first successful run.
type StoreCheckpoint struct {
	Store     string     `json:"store"`
	Cursor    *time.Time `json:"cursor,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// CheckpointsOutput is the response for GET /api/v1/checkpoints.
type CheckpointsOutput struct {
	Body struct {
		Job    string            `json:"job"`
		Stores []StoreCheckpoint `json:"stores"`
	}
}

// ListCheckpoints returns the order sync cursor of every configured store.
func (h *CheckpointsHandler) ListCheckpoints(
	ctx context.Context,
	_ *struct{},
) (*CheckpointsOutput, error) {
	resp := &CheckpointsOutput{}
	resp.Body.Job = domain.JobOrderSync
	resp.Body.Stores = make([]StoreCheckpoint, 0, len(h.stores))

	for _, name := range h.stores {
		sc := StoreCheckpoint{Store: name}
		cp, err := h.store.GetCheckpoint(ctx, name, domain.JobOrderSync)
		switch {
		case errors.Is(err, store.ErrNotFound):
		case err != nil:
			return nil, huma.Error500InternalServerError("failed to get checkpoints: " + err.Error())
		default:
			sc.Cursor = &cp.Cursor
			sc.UpdatedAt = &cp.UpdatedAt
		}
		resp.Body.Stores = append(resp.Body.Stores, sc)
	}
	return resp, nil
}

// RegisterCheckpointRoutes registers the checkpoint route on the Huma API.
func RegisterCheckpointRoutes(api huma.API, h *CheckpointsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-checkpoints",
		Method:      http.MethodGet,
		Path:        "/api/v1/checkpoints",
		Summary:     "List sync checkpoints",
		Description: "Returns the position each store's order sync resumes from.",
		Tags:        []string{"sync"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.ListCheckpoints)
}
