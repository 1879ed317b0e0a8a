package middleware

import (
	"net/http"
	"strings"
)

// StripTrailingSlash makes "/api/schedule/" route like "/api/schedule".
// It wraps the whole engine because gin matches routes before running
// middleware.
func StripTrailingSlash(prefix string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p := r.URL.Path
		if strings.HasPrefix(p, prefix) && len(p) > len(prefix) && strings.HasSuffix(p, "/") {
			r.URL.Path = strings.TrimRight(p, "/")
			r.URL.RawPath = ""
		}
		next.ServeHTTP(w, r)
	})
}
