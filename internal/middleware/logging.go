package middleware

import (
	"net/http"

	log "github.com/sirupsen/logrus"
)

// LogRequest traces incoming requests, method, path, user agent, remote addr.
func LogRequest() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log.Tracef(" ====> request [%s] path: [%s] [UA: %s] from [%s]", r.Method, r.URL.Path, r.UserAgent(), r.RemoteAddr)
			next.ServeHTTP(w, r)
		})
	}
}
