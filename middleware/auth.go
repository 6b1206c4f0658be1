package middleware

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/smadsen/powerium/session"
)

// RequireAuthenticated guards routes that need a logged-in principal.
// Anonymous requests are redirected to the login page.
func RequireAuthenticated(sm *session.Manager) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !sm.IsAuthenticated(r) {
				http.Redirect(w, r, "/login", http.StatusFound)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAnonymous guards the login and registration routes.
// Authenticated requests are redirected to the home page.
func RequireAnonymous(sm *session.Manager) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if sm.IsAuthenticated(r) {
				http.Redirect(w, r, "/", http.StatusFound)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
