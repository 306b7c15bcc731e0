package middleware

import (
	"net/http"

	"github.com/suggestapp/suggestions-backend/internal/utils"
)

// Recover est le filet de sécurité global: une panique qui échappe à un
// handler est loggée côté serveur et le client reçoit une enveloppe 500
// uniforme, sans détail interne
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				utils.LogError("panic recovered on %s %s: %v", r.Method, r.URL.Path, rec)
				utils.JSON(w, http.StatusInternalServerError, utils.ErrorResponse{
					Success: false,
					Error:   "Erreur serveur interne",
				})
			}
		}()
		next.ServeHTTP(w, r)
	})
}
