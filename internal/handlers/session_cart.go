package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/pkg/errors"

	"github.com/Balogunsamuel/grocery-shop-web/internal/cart"
	"github.com/Balogunsamuel/grocery-shop-web/internal/models"
)

// Fixed session keys; carts survive page reloads under cartStorageKey.
const (
	cartSessionName = "cart-storage"
	cartItemsKey    = "items"
	sessionIDKey    = "sid"
)

// sessionPersister stores cart contents JSON-encoded in the cookie session,
// so a reload restores the cart without any server-side state.
type sessionPersister struct {
	session *sessions.Session
	r       *http.Request
	w       http.ResponseWriter
}

func (p *sessionPersister) Save(items []models.CartItem) error {
	encoded, err := json.Marshal(items)
	if err != nil {
		return errors.Wrap(err, "encode cart")
	}
	p.session.Values[cartItemsKey] = string(encoded)
	return errors.Wrap(p.session.Save(p.r, p.w), "save session")
}

func (p *sessionPersister) Load() ([]models.CartItem, error) {
	raw, ok := p.session.Values[cartItemsKey].(string)
	if !ok || raw == "" {
		return nil, nil
	}
	var items []models.CartItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		// A corrupt cookie resets the cart rather than wedging the session.
		return nil, nil
	}
	return items, nil
}

// sessionCart restores the caller's cart from their cookie session. A
// session id is assigned on first use and rides along with every cart
// save, so order placement can key its flow on a stable value.
func sessionCart(store *sessions.CookieStore, w http.ResponseWriter, r *http.Request) (*cart.Cart, error) {
	session, _ := store.Get(r, cartSessionName)
	if _, ok := session.Values[sessionIDKey].(string); !ok {
		session.Values[sessionIDKey] = uuid.New().String()
	}
	c := cart.New(&sessionPersister{session: session, r: r, w: w})
	if err := c.Restore(); err != nil {
		return nil, err
	}
	return c, nil
}
