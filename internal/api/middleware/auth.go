package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/fredartois/NBF-BookingService/internal/api/handlers"
)

const adminCodeHeader = "X-Admin-Code"

// AdminAuth проверяет код администратора в заголовке X-Admin-Code
// Сравнение кода выполняется за постоянное время
func AdminAuth(adminCode string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			code := r.Header.Get(adminCodeHeader)
			if code == "" {
				handlers.RespondError(w, http.StatusUnauthorized, "missing admin code")
				return
			}

			if subtle.ConstantTimeCompare([]byte(code), []byte(adminCode)) != 1 {
				handlers.RespondError(w, http.StatusForbidden, "invalid admin code")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
