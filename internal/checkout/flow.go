// Package checkout sequences a single order placement: payment intent,
// payment confirmation, order creation. No step commits partial state; a
// failure at any point leaves the cart and the order store untouched.
package checkout

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/Balogunsamuel/grocery-shop-web/internal/cart"
	"github.com/Balogunsamuel/grocery-shop-web/internal/models"
	"github.com/Balogunsamuel/grocery-shop-web/internal/pricing"
)

// State names the current step of a placement attempt.
type State string

const (
	StateIdle              State = "idle"
	StateCreatingIntent    State = "creating_payment_intent"
	StateConfirmingPayment State = "confirming_payment"
	StateCreatingOrder     State = "creating_order"
	StateSucceeded         State = "succeeded"
	StateFailed            State = "failed"
)

var (
	// ErrEmptyCart rejects placement with nothing in the cart.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrInProgress rejects a duplicate submission while an attempt is
	// already running.
	ErrInProgress = errors.New("an order placement is already in progress")
)

// OrderStore persists the outcome of a successful placement.
type OrderStore interface {
	CreateOrder(order *models.Order) error
	RecordPayment(payment *models.Payment) error
}

// PlaceRequest carries everything one placement needs.
type PlaceRequest struct {
	Cart            *cart.Cart
	UserID          string
	DeliveryAddress models.Address
	PaymentMethod   string
	DeliveryOption  pricing.DeliveryOption
	PromoCode       string
}

// Flow runs placement attempts one at a time. The mutex is the duplicate-
// submission guard: a second Place while one is active returns
// ErrInProgress instead of double-charging.
type Flow struct {
	gateway Gateway
	store   OrderStore
	timeout time.Duration

	mu       sync.Mutex
	inFlight bool
	state    State
}

// NewFlow returns a flow placing orders through gateway and store. Each
// attempt is bounded by timeout; expiry fails the attempt.
func NewFlow(gateway Gateway, store OrderStore, timeout time.Duration) *Flow {
	return &Flow{
		gateway: gateway,
		store:   store,
		timeout: timeout,
		state:   StateIdle,
	}
}

// State reports the current step of the running (or last) attempt.
func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func (f *Flow) setState(s State) {
	f.mu.Lock()
	f.state = s
	f.mu.Unlock()
}

// Place executes one checkout attempt. On success the order is persisted,
// the payment recorded and the cart cleared. On failure no order exists and
// the cart keeps its pre-checkout contents.
func (f *Flow) Place(ctx context.Context, req PlaceRequest) (*models.Order, error) {
	f.mu.Lock()
	if f.inFlight {
		f.mu.Unlock()
		return nil, ErrInProgress
	}
	f.inFlight = true
	f.mu.Unlock()
	defer func() {
		f.mu.Lock()
		f.inFlight = false
		f.mu.Unlock()
	}()

	items := req.Cart.Items()
	if len(items) == 0 {
		f.setState(StateFailed)
		return nil, ErrEmptyCart
	}

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	quote := pricing.ComputeQuote(items, req.DeliveryOption, req.PromoCode)

	f.setState(StateCreatingIntent)
	intent, err := f.gateway.CreateIntent(ctx, quote.Total, "usd")
	if err != nil {
		f.setState(StateFailed)
		return nil, errors.Wrap(err, "create payment intent")
	}
	slog.Debug("payment intent created", "intent", intent.ID, "amount", intent.Amount)

	f.setState(StateConfirmingPayment)
	confirmation, err := f.gateway.Confirm(ctx, intent.ID, req.PaymentMethod)
	if err != nil {
		f.setState(StateFailed)
		return nil, errors.Wrap(err, "confirm payment")
	}

	f.setState(StateCreatingOrder)
	now := time.Now().UTC()
	order := &models.Order{
		ID:              uuid.New().String(),
		Ref:             generateOrderRef(),
		UserID:          req.UserID,
		Items:           items,
		Subtotal:        quote.Subtotal,
		Tax:             quote.Tax,
		DeliveryFee:     quote.DeliveryFee,
		Discount:        quote.Discount,
		Total:           quote.Total,
		DeliveryAddress: req.DeliveryAddress,
		PaymentMethod:   req.PaymentMethod,
		DeliveryOption:  string(req.DeliveryOption),
		Status:          models.OrderStatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := f.store.CreateOrder(order); err != nil {
		f.setState(StateFailed)
		return nil, errors.Wrap(err, "create order")
	}

	payment := &models.Payment{
		ID:        uuid.New().String(),
		OrderID:   order.ID,
		IntentID:  confirmation.ID,
		Amount:    confirmation.AmountReceived,
		Currency:  confirmation.Currency,
		Status:    confirmation.Status,
		CreatedAt: now,
	}
	if err := f.store.RecordPayment(payment); err != nil {
		// The order exists and the charge settled; a missing payment row
		// is a bookkeeping problem, not a placement failure.
		slog.Error("failed to record payment", "order", order.ID, "error", err)
	}

	req.Cart.Clear()
	f.setState(StateSucceeded)
	slog.Info("order placed", "order", order.ID, "ref", order.Ref, "total", order.Total)
	return order, nil
}

// generateOrderRef builds a short display reference like "ORD-3F7K9Q".
func generateOrderRef() string {
	id := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))
	return "ORD-" + id[:6]
}
