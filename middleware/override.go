package middleware

import (
	"net/http"
	"strings"
)

// MethodOverride rewrites POST submissions carrying a _method form
// field to the verb it names. The logout form submits DELETE this way,
// since browsers only speak GET and POST. Must wrap the router so the
// rewrite happens before route matching.
func MethodOverride(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			if err := r.ParseForm(); err == nil {
				switch m := strings.ToUpper(r.PostForm.Get("_method")); m {
				case http.MethodPut, http.MethodDelete:
					r.Method = m
				}
			}
		}
		next.ServeHTTP(w, r)
	})
}
