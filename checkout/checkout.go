// Package checkout turns a live cart snapshot plus customer-entered fields
// into a durable order via the store API, and reconciles local cart state
// afterward.
package checkout

import (
	"context"
	"errors"

	"tradehub/cart"
	"tradehub/models"
)

// ErrEmptyCart is returned when a submission is attempted with nothing in
// the cart. No network call is made in that case.
var ErrEmptyCart = errors.New("cart is empty")

// OrderDraft carries the customer-entered checkout fields. It lives only
// for the duration of one Submit call.
type OrderDraft struct {
	Name          string
	Email         string
	Phone         string
	Address       string
	City          string
	PaymentMethod string
	Notes         string
}

// Receipt is what the store API returns for a placed order.
type Receipt struct {
	OrderID     string  `json:"orderId"`
	TotalAmount float64 `json:"totalAmount"`
	Status      string  `json:"status"`
}

// CreateOrderRequest is the wire payload for order creation. Line items are
// denormalized snapshots; the server recomputes the total from them.
type CreateOrderRequest struct {
	Customer      models.Customer    `json:"customer"`
	Items         []models.OrderItem `json:"items"`
	PaymentMethod string             `json:"paymentMethod"`
	Notes         string             `json:"notes"`
}

// OrderService is the remote collaborator that stores orders.
type OrderService interface {
	PlaceOrder(ctx context.Context, req CreateOrderRequest) (Receipt, error)
}

// Submitter owns the one asynchronous step in checkout: sending the order.
// The cart engine is injected, not reached through ambient state.
type Submitter struct {
	engine *cart.Engine
	api    OrderService
}

func NewSubmitter(engine *cart.Engine, api OrderService) *Submitter {
	return &Submitter{engine: engine, api: api}
}

// Submit places an order from the current cart snapshot and draft.
//
// An empty cart is rejected locally with ErrEmptyCart. On success the cart
// is cleared and the receipt returned. On failure the cart is left intact
// so the shopper can retry. If ctx is cancelled before the response lands,
// the cart is likewise left untouched; a stale response never clears it.
func (s *Submitter) Submit(ctx context.Context, draft OrderDraft) (Receipt, error) {
	snap := s.engine.Snapshot()
	if snap.Empty() {
		return Receipt{}, ErrEmptyCart
	}

	req := CreateOrderRequest{
		Customer: models.Customer{
			Name:    draft.Name,
			Email:   draft.Email,
			Phone:   draft.Phone,
			Address: draft.Address,
			City:    draft.City,
		},
		Items:         make([]models.OrderItem, 0, len(snap.Items)),
		PaymentMethod: draft.PaymentMethod,
		Notes:         draft.Notes,
	}
	for _, it := range snap.Items {
		req.Items = append(req.Items, models.OrderItem{
			ProductSlug: it.Slug,
			Name:        it.Name,
			Quantity:    it.Quantity,
			Price:       it.Price,
			Image:       it.Image,
		})
	}

	receipt, err := s.api.PlaceOrder(ctx, req)
	if err != nil {
		return Receipt{}, err
	}

	// The flow may have been abandoned while the request was in flight.
	if ctx.Err() != nil {
		return Receipt{}, ctx.Err()
	}

	s.engine.Clear()
	return receipt, nil
}
