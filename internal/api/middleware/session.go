package middleware

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TourBooking/internal/api/handlers"
)

// SessionHeader возвращает идентификатор сессии из пути в заголовке ответа
func SessionHeader(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id := mux.Vars(r)["sessionId"]; id != "" {
			w.Header().Set(handlers.SessionHeader, id)
		}
		next.ServeHTTP(w, r)
	})
}
