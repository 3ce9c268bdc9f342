package checkout

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Balogunsamuel/grocery-shop-web/internal/cart"
	"github.com/Balogunsamuel/grocery-shop-web/internal/models"
	"github.com/Balogunsamuel/grocery-shop-web/internal/pricing"
)

type fakeOrderStore struct {
	mu       sync.Mutex
	orders   []*models.Order
	payments []*models.Payment
	failNext bool
}

func (s *fakeOrderStore) CreateOrder(order *models.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failNext {
		s.failNext = false
		return assert.AnError
	}
	s.orders = append(s.orders, order)
	return nil
}

func (s *fakeOrderStore) RecordPayment(payment *models.Payment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payments = append(s.payments, payment)
	return nil
}

func loadedCart(t *testing.T) *cart.Cart {
	t.Helper()
	c := cart.New(nil)
	c.AddItem(models.Product{ID: 1, Name: "Fresh Organic Apples", Price: 4.99, InStock: true, StockCount: 10}, 2)
	c.AddItem(models.Product{ID: 2, Name: "Organic Milk", Price: 3.49, InStock: true, StockCount: 5}, 1)
	return c
}

func placeRequest(c *cart.Cart) PlaceRequest {
	return PlaceRequest{
		Cart:            c,
		UserID:          "user-1",
		DeliveryAddress: models.Address{Street: "1 Main St", City: "Springfield", State: "IL", ZipCode: "62704"},
		PaymentMethod:   "pm_card_visa",
		DeliveryOption:  pricing.DeliveryStandard,
	}
}

func TestPlaceSuccess(t *testing.T) {
	gateway := NewSimulatedGateway(time.Millisecond)
	store := &fakeOrderStore{}
	flow := NewFlow(gateway, store, time.Second)
	c := loadedCart(t)

	order, err := flow.Place(context.Background(), placeRequest(c))
	require.NoError(t, err)
	require.NotNil(t, order)

	assert.Equal(t, 13.47, order.Subtotal)
	assert.Equal(t, 1.08, order.Tax)
	assert.Equal(t, 4.99, order.DeliveryFee)
	assert.Equal(t, pricing.RoundCents(order.Subtotal-order.Discount+order.DeliveryFee+order.Tax), order.Total)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Len(t, order.Items, 2)
	assert.Contains(t, order.Ref, "ORD-")

	require.Len(t, store.orders, 1)
	require.Len(t, store.payments, 1)
	assert.Equal(t, order.ID, store.payments[0].OrderID)
	assert.Equal(t, order.Total, store.payments[0].Amount)

	assert.Empty(t, c.Items(), "cart clears after successful placement")
	assert.Equal(t, StateSucceeded, flow.State())
}

func TestPlaceConfirmFailureLeavesNoTrace(t *testing.T) {
	gateway := NewSimulatedGateway(time.Millisecond)
	gateway.FailConfirm = true
	store := &fakeOrderStore{}
	flow := NewFlow(gateway, store, time.Second)
	c := loadedCart(t)
	before := c.Items()

	order, err := flow.Place(context.Background(), placeRequest(c))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPaymentDeclined)
	assert.Nil(t, order)

	assert.Empty(t, store.orders, "no order committed on payment failure")
	assert.Empty(t, store.payments)
	assert.Equal(t, before, c.Items(), "cart retains pre-checkout contents")
	assert.Equal(t, StateFailed, flow.State())
}

func TestPlaceIntentFailure(t *testing.T) {
	gateway := NewSimulatedGateway(time.Millisecond)
	gateway.FailIntent = true
	store := &fakeOrderStore{}
	flow := NewFlow(gateway, store, time.Second)
	c := loadedCart(t)

	_, err := flow.Place(context.Background(), placeRequest(c))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "create payment intent")
	assert.Empty(t, store.orders)
	assert.NotEmpty(t, c.Items())
}

func TestPlaceOrderCreationFailure(t *testing.T) {
	gateway := NewSimulatedGateway(time.Millisecond)
	store := &fakeOrderStore{failNext: true}
	flow := NewFlow(gateway, store, time.Second)
	c := loadedCart(t)

	_, err := flow.Place(context.Background(), placeRequest(c))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "create order")
	assert.Empty(t, store.orders)
	assert.NotEmpty(t, c.Items(), "cart survives order-creation failure")
}

func TestPlaceEmptyCart(t *testing.T) {
	flow := NewFlow(NewSimulatedGateway(0), &fakeOrderStore{}, time.Second)
	_, err := flow.Place(context.Background(), placeRequest(cart.New(nil)))
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestPlaceTimesOut(t *testing.T) {
	gateway := NewSimulatedGateway(time.Second)
	store := &fakeOrderStore{}
	flow := NewFlow(gateway, store, 20*time.Millisecond)
	c := loadedCart(t)

	_, err := flow.Place(context.Background(), placeRequest(c))
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Empty(t, store.orders)
	assert.NotEmpty(t, c.Items())
}

func TestPlaceRejectsDuplicateSubmission(t *testing.T) {
	gateway := NewSimulatedGateway(100 * time.Millisecond)
	store := &fakeOrderStore{}
	flow := NewFlow(gateway, store, time.Second)

	first := loadedCart(t)
	second := loadedCart(t)

	done := make(chan error, 1)
	go func() {
		_, err := flow.Place(context.Background(), placeRequest(first))
		done <- err
	}()

	// Wait for the first attempt to reach the gateway delay.
	require.Eventually(t, func() bool {
		return flow.State() == StateConfirmingPayment
	}, time.Second, time.Millisecond)

	_, err := flow.Place(context.Background(), placeRequest(second))
	assert.ErrorIs(t, err, ErrInProgress)

	require.NoError(t, <-done)
	require.Len(t, store.orders, 1, "exactly one order from the pair of submissions")
}

func TestSimulatedGatewayConfirmUnknownIntent(t *testing.T) {
	gateway := NewSimulatedGateway(0)
	_, err := gateway.Confirm(context.Background(), "pi_missing", "pm_card_visa")
	assert.ErrorIs(t, err, ErrIntentNotFound)
}

func TestSimulatedGatewayIntentShape(t *testing.T) {
	gateway := NewSimulatedGateway(0)
	intent, err := gateway.CreateIntent(context.Background(), 19.54, "")
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusRequiresConfirmation, intent.Status)
	assert.Equal(t, "usd", intent.Currency)
	assert.Equal(t, 19.54, intent.Amount)
	assert.NotEmpty(t, intent.ClientSecret)

	conf, err := gateway.Confirm(context.Background(), intent.ID, "pm_card_visa")
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusSucceeded, conf.Status)
	assert.Equal(t, 19.54, conf.AmountReceived)
}
