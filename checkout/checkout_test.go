package checkout

import (
	"context"
	"errors"
	"testing"

	"tradehub/cart"
	"tradehub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeOrderService records calls and returns a scripted result.
type fakeOrderService struct {
	calls   int
	lastReq CreateOrderRequest
	receipt Receipt
	err     error
}

func (f *fakeOrderService) PlaceOrder(ctx context.Context, req CreateOrderRequest) (Receipt, error) {
	f.calls++
	f.lastReq = req
	if f.err != nil {
		return Receipt{}, f.err
	}
	return f.receipt, nil
}

func draft() OrderDraft {
	return OrderDraft{
		Name:          "Ayesha Khan",
		Email:         "ayesha@example.com",
		Phone:         "0300-1234567",
		Address:       "House 12, Street 4",
		City:          "Lahore",
		PaymentMethod: models.PaymentCOD,
	}
}

func TestSubmitEmptyCartRejectedLocally(t *testing.T) {
	engine := cart.NewEngine(cart.NewMemStore())
	api := &fakeOrderService{}
	sub := NewSubmitter(engine, api)

	_, err := sub.Submit(context.Background(), draft())

	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Equal(t, 0, api.calls, "empty cart must not reach the network")
}

func TestSubmitSuccessClearsCart(t *testing.T) {
	engine := cart.NewEngine(cart.NewMemStore())
	engine.AddItem(cart.Product{Slug: "a", Name: "A", Price: 50, Image: "a.jpg"}, 2)

	api := &fakeOrderService{receipt: Receipt{
		OrderID:     "ord-1",
		TotalAmount: 100,
		Status:      models.OrderPending,
	}}
	sub := NewSubmitter(engine, api)

	receipt, err := sub.Submit(context.Background(), draft())
	require.NoError(t, err)

	assert.Equal(t, "ord-1", receipt.OrderID)
	assert.True(t, engine.Snapshot().Empty(), "cart clears after a successful order")

	// the submitted payload carries the denormalized snapshot the
	// customer saw, and its implied total matches the server's
	require.Len(t, api.lastReq.Items, 1)
	item := api.lastReq.Items[0]
	assert.Equal(t, models.OrderItem{
		ProductSlug: "a", Name: "A", Quantity: 2, Price: 50, Image: "a.jpg",
	}, item)
	assert.Equal(t, receipt.TotalAmount, item.Price*float64(item.Quantity))
	assert.Equal(t, "Ayesha Khan", api.lastReq.Customer.Name)
}

func TestSubmitFailureLeavesCartIntact(t *testing.T) {
	engine := cart.NewEngine(cart.NewMemStore())
	engine.AddItem(cart.Product{Slug: "a", Name: "A", Price: 50}, 2)

	api := &fakeOrderService{err: errors.New("Order must contain at least one item")}
	sub := NewSubmitter(engine, api)

	_, err := sub.Submit(context.Background(), draft())

	assert.EqualError(t, err, "Order must contain at least one item")
	assert.Equal(t, 2, engine.Snapshot().ItemCount, "failed submit must not touch the cart")
}

func TestStaleResponseDoesNotClearCart(t *testing.T) {
	engine := cart.NewEngine(cart.NewMemStore())
	engine.AddItem(cart.Product{Slug: "a", Name: "A", Price: 50}, 1)

	ctx, cancel := context.WithCancel(context.Background())
	api := &fakeOrderService{receipt: Receipt{OrderID: "ord-2", TotalAmount: 50, Status: models.OrderPending}}

	// abandon the flow while the request is "in flight"
	slowAPI := orderServiceFunc(func(c context.Context, req CreateOrderRequest) (Receipt, error) {
		cancel()
		return api.PlaceOrder(c, req)
	})
	sub := NewSubmitter(engine, slowAPI)

	_, err := sub.Submit(ctx, draft())

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, engine.Snapshot().ItemCount, "a stale response must not clear the cart")
}

type orderServiceFunc func(ctx context.Context, req CreateOrderRequest) (Receipt, error)

func (f orderServiceFunc) PlaceOrder(ctx context.Context, req CreateOrderRequest) (Receipt, error) {
	return f(ctx, req)
}
