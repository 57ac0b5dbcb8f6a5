package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// CORS оборачивает роутер политикой CORS для браузерных клиентов
// Пустой список источников запрещает кросс-доменные запросы
func CORS(allowedOrigins []string, next http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", RequestIDHeader},
		ExposedHeaders: []string{RequestIDHeader, "Retry-After"},
	})
	return c.Handler(next)
}
