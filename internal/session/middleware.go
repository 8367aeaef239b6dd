package session

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
)

// CookieName is the cookie referencing the server-side session record.
const CookieName = "session_token"

// NewMiddleware resolves the request's session from the cookie, creating and
// persisting a fresh one when the cookie is absent or stale, and threads the
// session through the request context. Handlers that mutate the session save
// it back through the same Store.
func NewMiddleware(store Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			var sess *Session
			if cookie, err := r.Cookie(CookieName); err == nil {
				sess, err = store.Get(ctx, cookie.Value)
				if err != nil && !errors.Is(err, ErrNotFound) {
					slog.Error("Failed to load session", "error", err)
					http.Error(w, "an unexpected error occurred", http.StatusInternalServerError)

					return
				}
			}

			if sess == nil {
				sess = &Session{Token: uuid.NewString()}
				if err := store.Save(ctx, sess); err != nil {
					slog.Error("Failed to create session", "error", err)
					http.Error(w, "an unexpected error occurred", http.StatusInternalServerError)

					return
				}

				http.SetCookie(w, &http.Cookie{
					Name:     CookieName,
					Value:    sess.Token,
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			next.ServeHTTP(w, r.WithContext(NewContext(ctx, sess)))
		})
	}
}
