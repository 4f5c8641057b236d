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

const defaultOrderLimit = 50

// OrdersHandler handles order query endpoints.
type OrdersHandler struct {
	store store.Store
}

// NewOrdersHandler creates a new OrdersHandler.
func NewOrdersHandler(s store.Store) *OrdersHandler {
	return &OrdersHandler{store: s}
}

// --- Input/Output types ---

// ListOrdersInput is the input for listing stored orders.
type ListOrdersInput struct {
	Store              string    `query:"store"               doc:"Filter by store name"`
	Status             []string  `query:"status"              doc:"Filter by order status"`
	FulfillmentChannel string    `query:"fulfillment_channel" doc:"Filter by channel"                enum:"AFN,MFN,"`
	PurchasedAfter     time.Time `query:"purchased_after"     doc:"Purchased at or after (RFC 3339)"`
	PurchasedBefore    time.Time `query:"purchased_before"    doc:"Purchased before (RFC 3339)"`
	Limit              int       `query:"limit"               doc:"Number of results (default 50)"   minimum:"0"                                        maximum:"500"`
	Offset             int       `query:"offset"              doc:"Pagination offset"                minimum:"0"`
	OrderBy            string    `query:"order_by"            doc:"Sort field"                       enum:"purchase_date,last_update_date,order_total,"`
}

// ListOrdersOutput is the response for listing orders.
type ListOrdersOutput struct {
	Body struct {
		Orders []domain.Order `json:"orders"`
		Total  int            `json:"total"`
		Limit  int            `json:"limit"`
		Offset int            `json:"offset"`
	}
}

// GetOrderInput identifies one stored order.
type GetOrderInput struct {
	ID    string `path:"id"     doc:"Amazon order ID" example:"902-3159896-1390916"`
	Store string `query:"store" doc:"Store name"      required:"true"`
}

// GetOrderOutput is the response for getting a single order.
type GetOrderOutput struct {
	Body domain.Order
}

// ListOrderItemsOutput is the response for an order's lines.
type ListOrderItemsOutput struct {
	Body struct {
		Items []domain.OrderItem `json:"items"`
	}
}

// --- Handlers ---

// ListOrders returns stored orders with optional filters and pagination.
func (h *OrdersHandler) ListOrders(
	ctx context.Context,
	input *ListOrdersInput,
) (*ListOrdersOutput, error) {
	if !input.PurchasedAfter.IsZero() && !input.PurchasedBefore.IsZero() &&
		!input.PurchasedAfter.Before(input.PurchasedBefore) {
		return nil, huma.Error400BadRequest("purchased_after must be before purchased_before")
	}

	q := &store.OrderQuery{
		Store:              input.Store,
		Statuses:           input.Status,
		FulfillmentChannel: input.FulfillmentChannel,
		Limit:              input.Limit,
		Offset:             input.Offset,
		OrderBy:            input.OrderBy,
	}
	if q.Limit == 0 {
		q.Limit = defaultOrderLimit
	}
	if !input.PurchasedAfter.IsZero() {
		q.PurchasedAfter = &input.PurchasedAfter
	}
	if !input.PurchasedBefore.IsZero() {
		q.PurchasedBefore = &input.PurchasedBefore
	}

	orders, total, err := h.store.ListOrders(ctx, q)
	if err != nil {
		return nil, huma.Error500InternalServerError("order query failed: " + err.Error())
	}
	if orders == nil {
		orders = []domain.Order{}
	}

	resp := &ListOrdersOutput{}
	resp.Body.Orders = orders
	resp.Body.Total = total
	resp.Body.Limit = q.Limit
	resp.Body.Offset = q.Offset

	return resp, nil
}

// GetOrder returns a single stored order.
func (h *OrdersHandler) GetOrder(
	ctx context.Context,
	input *GetOrderInput,
) (*GetOrderOutput, error) {
	order, err := h.store.GetOrder(ctx, input.Store, input.ID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, huma.Error404NotFound("order not found")
	}
	if err != nil {
		return nil, huma.Error500InternalServerError("fetching order failed: " + err.Error())
	}

	return &GetOrderOutput{Body: *order}, nil
}

// ListOrderItems returns the stored lines of an order.
func (h *OrdersHandler) ListOrderItems(
	ctx context.Context,
	input *GetOrderInput,
) (*ListOrderItemsOutput, error) {
	items, err := h.store.ListOrderItems(ctx, input.Store, input.ID)
	if err != nil {
		return nil, huma.Error500InternalServerError("listing order items failed: " + err.Error())
	}
	if items == nil {
		items = []domain.OrderItem{}
	}

	resp := &ListOrderItemsOutput{}
	resp.Body.Items = items
	return resp, nil
}

// RegisterOrderRoutes registers order endpoints with the Huma API.
func RegisterOrderRoutes(api huma.API, h *OrdersHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-orders",
		Method:      http.MethodGet,
		Path:        "/api/v1/orders",
		Summary:     "List orders",
		Description: "Returns synced orders with optional store, status, channel, and " +
			"purchase date filters.",
		Tags:   []string{"orders"},
		Errors: []int{http.StatusBadRequest, http.StatusInternalServerError},
	}, h.ListOrders)

	huma.Register(api, huma.Operation{
		OperationID: "get-order",
		Method:      http.MethodGet,
		Path:        "/api/v1/orders/{id}",
		Summary:     "Get order",
		Description: "Returns one synced order header.",
		Tags:        []string{"orders"},
		Errors:      []int{http.StatusNotFound, http.StatusInternalServerError},
	}, h.GetOrder)

	huma.Register(api, huma.Operation{
		OperationID: "list-order-items",
		Method:      http.MethodGet,
		Path:        "/api/v1/orders/{id}/items",
		Summary:     "List order items",
		Description: "Returns the synced lines of one order. Empty when items were not fetched.",
		Tags:        []string{"orders"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.ListOrderItems)
}
