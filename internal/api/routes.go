package api

import (
	"net/http"

	"github.com/fatih/color"
	"github.com/gorilla/mux"

	"github.com/suggestapp/suggestions-backend/internal/handler"
	"github.com/suggestapp/suggestions-backend/internal/middleware"
	"github.com/suggestapp/suggestions-backend/internal/utils"
)

func SetupRouter(h *handler.Handler) http.Handler {
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recover)
	r.Use(middleware.LoggerMiddleware)

	// Root - informations de l'API
	r.HandleFunc("/", h.Root).Methods(http.MethodGet)

	// Suggestions
	// Les routes de filtre doivent être enregistrées AVANT /{id} pour
	// qu'un segment comme "category" ne soit pas avalé par le matcher d'id
	r.HandleFunc("/suggestions", h.ListSuggestions).Methods(http.MethodGet)
	r.HandleFunc("/suggestions/category/{category}", h.GetSuggestionsByCategory).Methods(http.MethodGet)
	r.HandleFunc("/suggestions/status/{status}", h.GetSuggestionsByStatus).Methods(http.MethodGet)
	r.HandleFunc("/suggestions/{id}", h.GetSuggestion).Methods(http.MethodGet)
	r.HandleFunc("/suggestions", h.CreateSuggestion).Methods(http.MethodPost)
	r.HandleFunc("/suggestions/{id}", h.UpdateSuggestion).Methods(http.MethodPut)
	r.HandleFunc("/suggestions/{id}", h.DeleteSuggestion).Methods(http.MethodDelete)
	r.HandleFunc("/suggestions/{id}/like", h.LikeSuggestion).Methods(http.MethodPost)

	// Utilisateurs
	r.HandleFunc("/users", h.ListUsers).Methods(http.MethodGet)
	r.HandleFunc("/users/role/{role}", h.GetUsersByRole).Methods(http.MethodGet)
	r.HandleFunc("/users/status/{status}", h.GetUsersByStatus).Methods(http.MethodGet)
	r.HandleFunc("/users/{id}", h.GetUser).Methods(http.MethodGet)
	r.HandleFunc("/users", h.CreateUser).Methods(http.MethodPost)
	r.HandleFunc("/users/{id}", h.UpdateUser).Methods(http.MethodPut)
	r.HandleFunc("/users/{id}", h.DeleteUser).Methods(http.MethodDelete)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		color.Yellow("[404] %s %s (route non trouvée)", r.Method, r.URL.Path)
		utils.JSON(w, http.StatusNotFound, utils.ErrorResponse{
			Success: false,
			Error:   "Route non trouvée",
		})
	})

	return r
}
