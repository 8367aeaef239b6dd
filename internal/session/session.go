package session

import (
	"context"
	"errors"
)

// Session is the server-tracked record correlating a client's requests.
// The only field the storefront depends on is the active cart id, which is
// nil until the first item add and cleared again when an order is placed.
type Session struct {
	Token  string `json:"token"`
	CartID *int64 `json:"cartId,omitempty"`
}

// ErrNotFound is returned by a Store when no session matches the token.
var ErrNotFound = errors.New("session not found")

// Store persists sessions keyed by their opaque token.
type Store interface {
	Get(ctx context.Context, token string) (*Session, error)
	Save(ctx context.Context, sess *Session) error
	Delete(ctx context.Context, token string) error
}

type ctxKey struct{}

// NewContext returns a context carrying the session.
func NewContext(ctx context.Context, sess *Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, sess)
}

// FromContext returns the session resolved for the request, or nil when the
// middleware did not run.
func FromContext(ctx context.Context) *Session {
	sess, _ := ctx.Value(ctxKey{}).(*Session)
	return sess
}
