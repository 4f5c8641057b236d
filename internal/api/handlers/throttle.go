package handlers

import (
	"context"
	"net/http"
	"slices"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/mws-toolkit/pkg/mws"
)

// ThrottleSource exposes a client's throttle state.
type ThrottleSource interface {
	Throttle() *mws.Throttle
}

// ThrottleHandler reports the throttle state of every store's client.
type ThrottleHandler struct {
	clients map[string]ThrottleSource
}

// NewThrottleHandler creates a new ThrottleHandler.
func NewThrottleHandler(clients map[string]ThrottleSource) *ThrottleHandler {
	return &ThrottleHandler{clients: clients}
}

// ThrottleGroup is one throttle group of one store.
type ThrottleGroup struct {
	Group          string     `json:"group"                      example:"Orders"                    doc:"Throttle group"`
	MaxQuota       int        `json:"max_quota"                  example:"6"                         doc:"Burst size"`
	RestoreSeconds float64    `json:"restore_seconds"            example:"60"                        doc:"Seconds to restore one request"`
	Tokens         float64    `json:"tokens"                     example:"5.2"                       doc:"Requests available locally"`
	ServerMax      *float64   `json:"server_max,omitempty"       doc:"Last reported hourly quota"`
	ServerRemain   *float64   `json:"server_remaining,omitempty" doc:"Last reported remaining quota"`
	ServerResetsOn *time.Time `json:"server_resets_on,omitempty" doc:"When the server quota resets"`
}

// StoreThrottle groups throttle state by store.
type StoreThrottle struct {
	Store  string          `json:"store"`
	Groups []ThrottleGroup `json:"groups"`
}

// ThrottleOutput is the response body for the throttle endpoint.
type ThrottleOutput struct {
	Body struct {
		Stores []StoreThrottle `json:"stores"`
	}
}

// GetThrottle returns the throttle state of every configured store.
func (h *ThrottleHandler) GetThrottle(_ context.Context, _ *struct{}) (*ThrottleOutput, error) {
	resp := &ThrottleOutput{}
	resp.Body.Stores = []StoreThrottle{}

	names := make([]string, 0, len(h.clients))
	for name := range h.clients {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		st := StoreThrottle{Store: name, Groups: []ThrottleGroup{}}
		if t := h.clients[name].Throttle(); t != nil {
			for _, gs := range t.Status() {
				st.Groups = append(st.Groups, toThrottleGroup(gs))
			}
		}
		resp.Body.Stores = append(resp.Body.Stores, st)
	}
	return resp, nil
}

func toThrottleGroup(gs mws.GroupStatus) ThrottleGroup {
	g := ThrottleGroup{
		Group:          gs.Group,
		MaxQuota:       gs.MaxQuota,
		RestoreSeconds: gs.RestoreEvery.Seconds(),
		Tokens:         gs.Tokens,
	}
	if q := gs.ServerQuota; q != nil {
		g.ServerMax = &q.Max
		g.ServerRemain = &q.Remaining
		if !q.ResetsOn.IsZero() {
			g.ServerResetsOn = &q.ResetsOn
		}
	}
	return g
}

// RegisterThrottleRoutes registers the throttle endpoint with the Huma API.
func RegisterThrottleRoutes(api huma.API, h *ThrottleHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "get-throttle",
		Method:      http.MethodGet,
		Path:        "/api/v1/throttle",
		Summary:     "Get throttle state",
		Description: "Returns local token counts and the last server-reported quota " +
			"for every throttle group each store has used.",
		Tags: []string{"mws"},
	}, h.GetThrottle)
}
