package handler

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/TheGeniusEditor/Sultan/internal/service"
	"github.com/TheGeniusEditor/Sultan/internal/ws"
	"github.com/go-chi/chi/v5"
)

// Checkouter defines the service method needed by the checkout handler.
// Satisfied by *service.CheckoutService; narrow interface for testability.
type Checkouter interface {
	Checkout(ctx context.Context, req service.CheckoutRequest) (*service.CheckoutResult, error)
}

// Broadcaster pushes events to connected kitchen displays.
// Satisfied by *ws.Hub.
type Broadcaster interface {
	Broadcast(event ws.Event)
}

// CheckoutHandler handles cart submissions.
type CheckoutHandler struct {
	svc Checkouter
	hub Broadcaster
}

// NewCheckoutHandler creates a new CheckoutHandler. hub may be nil when no
// live updates are wanted (tests).
func NewCheckoutHandler(svc Checkouter, hub Broadcaster) *CheckoutHandler {
	return &CheckoutHandler{svc: svc, hub: hub}
}

// RegisterRoutes registers the checkout endpoint on the given Chi router.
func (h *CheckoutHandler) RegisterRoutes(r chi.Router) {
	r.Post("/checkout", h.Checkout)
}

type checkoutRequest struct {
	CustomerName string            `json:"customerName"`
	TableNumber  string            `json:"tableNumber"`
	CartItems    []cartItemRequest `json:"cartItems"`
	TotalPrice   string            `json:"totalPrice"`
	OrderType    string            `json:"orderType"`
	PaymentType  string            `json:"paymentType"`
}

type cartItemRequest struct {
	Title    string `json:"title"`
	Price    string `json:"price"`
	Quantity int32  `json:"quantity"`
}

// Checkout handles POST /checkout. Every failure collapses to a plain-text
// 500, which is what the ordering pages expect.
func (h *CheckoutHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("ERROR: decode checkout request: %v", err)
		writeText(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	items := make([]service.CartItemRequest, len(req.CartItems))
	for i, item := range req.CartItems {
		items[i] = service.CartItemRequest{
			Title:    item.Title,
			Price:    item.Price,
			Quantity: item.Quantity,
		}
	}

	result, err := h.svc.Checkout(r.Context(), service.CheckoutRequest{
		CustomerName: req.CustomerName,
		TableNumber:  req.TableNumber,
		CartItems:    items,
		TotalPrice:   req.TotalPrice,
		OrderType:    req.OrderType,
		PaymentType:  req.PaymentType,
	})
	if err != nil {
		log.Printf("ERROR: checkout: %v", err)
		writeText(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	h.notifyKitchen(result)

	writeText(w, http.StatusOK, "Order successfully placed!")
}

// notifyKitchen broadcasts the new order so connected kitchen displays update
// without waiting for the next poll.
func (h *CheckoutHandler) notifyKitchen(result *service.CheckoutResult) {
	if h.hub == nil {
		return
	}
	payload, err := json.Marshal(dbOrderToResponse(result.Order))
	if err != nil {
		log.Printf("ERROR: marshal order event: %v", err)
		return
	}
	h.hub.Broadcast(ws.Event{Type: "order.created", Payload: payload})
}
