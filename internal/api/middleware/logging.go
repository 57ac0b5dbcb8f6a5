package middleware

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

// Logging логирует каждый запрос с кодом ответа и длительностью
func Logging(logger Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := newStatusRecorder(w)

			next.ServeHTTP(rec, r)

			requestID, _ := GetRequestID(r.Context())
			logger.Info("%s %s - status=%d, duration=%s, request_id=%s",
				r.Method, r.URL.Path, rec.status, time.Since(start), requestID)
		})
	}
}
