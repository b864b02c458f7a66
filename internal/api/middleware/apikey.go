package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
)

// APIKeyHeader заголовок с общим секретом
const APIKeyHeader = "X-API-Key"

const msgInvalidAPIKey = "Invalid or missing API key"

// APIKey пропускает запрос только с совпадающим X-API-Key.
// Пустой key отключает проверку.
func APIKey(key string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		if key == "" {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get(APIKeyHeader)
			if subtle.ConstantTimeCompare([]byte(got), []byte(key)) != 1 {
				handlers.RespondUnauthorized(w, msgInvalidAPIKey)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
