package checkout

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/Balogunsamuel/grocery-shop-web/internal/models"
)

// Gateway is the external payment processor. Success, decline and timeout
// are all expected outcomes; callers must treat every call as fallible.
type Gateway interface {
	CreateIntent(ctx context.Context, amount float64, currency string) (*models.PaymentIntent, error)
	Confirm(ctx context.Context, intentID, methodID string) (*models.PaymentConfirmation, error)
}

var (
	// ErrPaymentDeclined is returned when the processor refuses a charge.
	ErrPaymentDeclined = errors.New("payment declined")
	// ErrIntentNotFound is returned when confirming an unknown intent.
	ErrIntentNotFound = errors.New("payment intent not found")
)

// SimulatedGateway stands in for a real processor. Confirmation takes a
// fixed delay and succeeds unless a failure switch is set; the delay honors
// context cancellation so flow timeouts surface as errors rather than
// hangs.
type SimulatedGateway struct {
	Delay       time.Duration
	FailIntent  bool
	FailConfirm bool

	mu      sync.Mutex
	intents map[string]*models.PaymentIntent
}

// NewSimulatedGateway returns a gateway confirming after delay.
func NewSimulatedGateway(delay time.Duration) *SimulatedGateway {
	return &SimulatedGateway{
		Delay:   delay,
		intents: make(map[string]*models.PaymentIntent),
	}
}

func (g *SimulatedGateway) CreateIntent(ctx context.Context, amount float64, currency string) (*models.PaymentIntent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if g.FailIntent {
		return nil, errors.New("gateway unavailable")
	}
	if currency == "" {
		currency = "usd"
	}
	intent := &models.PaymentIntent{
		ID:           "pi_" + uuid.New().String(),
		ClientSecret: "secret_" + uuid.New().String(),
		Amount:       amount,
		Currency:     currency,
		Status:       models.PaymentStatusRequiresConfirmation,
	}
	g.mu.Lock()
	g.intents[intent.ID] = intent
	g.mu.Unlock()
	return intent, nil
}

func (g *SimulatedGateway) Confirm(ctx context.Context, intentID, methodID string) (*models.PaymentConfirmation, error) {
	g.mu.Lock()
	intent, ok := g.intents[intentID]
	g.mu.Unlock()
	if !ok {
		return nil, ErrIntentNotFound
	}

	select {
	case <-time.After(g.Delay):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	if g.FailConfirm {
		g.mu.Lock()
		intent.Status = models.PaymentStatusFailed
		g.mu.Unlock()
		return nil, ErrPaymentDeclined
	}

	g.mu.Lock()
	intent.Status = models.PaymentStatusSucceeded
	g.mu.Unlock()

	return &models.PaymentConfirmation{
		ID:             intent.ID,
		Status:         models.PaymentStatusSucceeded,
		AmountReceived: intent.Amount,
		Currency:       intent.Currency,
	}, nil
}
