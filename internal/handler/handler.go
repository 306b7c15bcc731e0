package handler

import (
	"net/http"
	"strconv"

	"github.com/suggestapp/suggestions-backend/internal/store"
	"github.com/suggestapp/suggestions-backend/internal/utils"
)

// Handler regroupe les resource handlers et leurs stores injectés.
// Le cycle de vie du pool est géré par le point d'entrée, pas ici.
type Handler struct {
	Suggestions store.SuggestionStore
	Users       store.UserStore
}

func New(suggestions store.SuggestionStore, users store.UserStore) *Handler {
	return &Handler{Suggestions: suggestions, Users: users}
}

// Root affiche les informations de base de l'API
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "API Suggestions et Utilisateurs",
		"version": "1.0.0",
		"endpoints": map[string]string{
			"suggestions": "/suggestions",
			"users":       "/users",
		},
	})
}

// parseID convertit le paramètre de chemin en id numérique.
// Un id non numérique ne peut correspondre à aucun enregistrement.
func parseID(raw string) (int, bool) {
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
