package handler

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/TheGeniusEditor/Sultan/internal/currency"
	"github.com/TheGeniusEditor/Sultan/internal/database"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// OrderStore defines the database methods needed by order read handlers.
// Satisfied by *database.Queries; narrow interface for testability.
type OrderStore interface {
	ListOrders(ctx context.Context) ([]database.Order, error)
}

// OrderHandler handles the order list endpoint used by the kitchen display.
type OrderHandler struct {
	store OrderStore
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(store OrderStore) *OrderHandler {
	return &OrderHandler{store: store}
}

// RegisterRoutes registers order endpoints on the given Chi router.
func (h *OrderHandler) RegisterRoutes(r chi.Router) {
	r.Get("/api/orders", h.List)
}

type orderResponse struct {
	ID           uuid.UUID          `json:"id"`
	CustomerName string             `json:"customerName"`
	TableNumber  string             `json:"tableNumber"`
	Items        []lineItemResponse `json:"items"`
	TotalPrice   string             `json:"totalPrice"`
	OrderType    string             `json:"orderType"`
	PaymentType  string             `json:"paymentType"`
	CreatedAt    time.Time          `json:"createdAt"`
}

type lineItemResponse struct {
	Title          string `json:"title"`
	Price          string `json:"price"`
	Quantity       int32  `json:"quantity"`
	TotalItemPrice string `json:"totalItemPrice"`
}

// List handles GET /api/orders. Orders come back newest first; the kitchen
// display polls this on an interval.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	orders, err := h.store.ListOrders(r.Context())
	if err != nil {
		log.Printf("ERROR: list orders: %v", err)
		writeText(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	resp := make([]orderResponse, len(orders))
	for i, o := range orders {
		resp[i] = dbOrderToResponse(o)
	}

	writeJSON(w, http.StatusOK, resp)
}

// dbOrderToResponse converts a database.Order to the wire format the pages
// consume: camelCase keys, ₹-prefixed total.
func dbOrderToResponse(o database.Order) orderResponse {
	items := make([]lineItemResponse, len(o.Items))
	for i, item := range o.Items {
		items[i] = lineItemResponse{
			Title:          item.Title,
			Price:          item.Price,
			Quantity:       item.Quantity,
			TotalItemPrice: item.TotalItemPrice,
		}
	}

	return orderResponse{
		ID:           o.ID,
		CustomerName: o.CustomerName,
		TableNumber:  o.TableNumber,
		Items:        items,
		TotalPrice:   currency.Format(database.DecimalFromNumeric(o.TotalPrice)),
		OrderType:    o.OrderType,
		PaymentType:  o.PaymentType,
		CreatedAt:    o.CreatedAt,
	}
}
