package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

type memStore struct {
	sessions map[string]Session
	saves    int
}

func newMemStore() *memStore {
	return &memStore{sessions: map[string]Session{}}
}

func (s *memStore) Get(ctx context.Context, token string) (*Session, error) {
	sess, ok := s.sessions[token]
	if !ok {
		return nil, ErrNotFound
	}
	return &sess, nil
}

func (s *memStore) Save(ctx context.Context, sess *Session) error {
	s.saves++
	s.sessions[sess.Token] = *sess
	return nil
}

func (s *memStore) Delete(ctx context.Context, token string) error {
	delete(s.sessions, token)
	return nil
}

func TestMiddleware(t *testing.T) {
	store := newMemStore()

	var seen *Session
	handler := NewMiddleware(store)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = FromContext(r.Context())
	}))

	t.Run("first request creates a session and sets the cookie", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		require.NotNil(t, seen)
		require.Nil(t, seen.CartID)

		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		require.Equal(t, CookieName, cookies[0].Name)
		require.Equal(t, seen.Token, cookies[0].Value)
		require.Len(t, store.sessions, 1)
	})

	t.Run("subsequent requests reuse the stored session", func(t *testing.T) {
		first := seen.Token

		cartID := int64(5)
		seen.CartID = &cartID
		require.NoError(t, store.Save(context.Background(), seen))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: CookieName, Value: first})

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		require.Equal(t, first, seen.Token)
		require.NotNil(t, seen.CartID)
		require.Equal(t, int64(5), *seen.CartID)
		require.Empty(t, w.Result().Cookies())
		require.Len(t, store.sessions, 1)
	})

	t.Run("stale cookie gets a fresh session", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: CookieName, Value: "gone"})

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		require.NotEqual(t, "gone", seen.Token)
		require.Len(t, w.Result().Cookies(), 1)
	})
}
