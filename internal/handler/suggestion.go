package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	model "github.com/suggestapp/suggestions-backend/internal/models"
	"github.com/suggestapp/suggestions-backend/internal/store"
	"github.com/suggestapp/suggestions-backend/internal/utils"
)

type suggestionListResponse struct {
	Success     bool               `json:"success"`
	Count       int                `json:"count"`
	Suggestions []model.Suggestion `json:"suggestions"`
}

type suggestionResponse struct {
	Success    bool             `json:"success"`
	Suggestion model.Suggestion `json:"suggestion"`
}

type suggestionCreatedResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      int    `json:"id"`
}

// ListSuggestions récupère toutes les suggestions, les plus récentes d'abord
func (h *Handler) ListSuggestions(w http.ResponseWriter, r *http.Request) {
	suggestions, err := h.Suggestions.List(r.Context())
	if err != nil {
		utils.Internal(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, suggestions)
}

// GetSuggestionsByCategory filtre par catégorie; une catégorie inconnue
// renvoie simplement une liste vide
func (h *Handler) GetSuggestionsByCategory(w http.ResponseWriter, r *http.Request) {
	category := mux.Vars(r)["category"]

	suggestions, err := h.Suggestions.ListByCategory(r.Context(), category)
	if err != nil {
		utils.Internal(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, suggestionListResponse{
		Success:     true,
		Count:       len(suggestions),
		Suggestions: suggestions,
	})
}

// GetSuggestionsByStatus filtre par statut
func (h *Handler) GetSuggestionsByStatus(w http.ResponseWriter, r *http.Request) {
	status := mux.Vars(r)["status"]

	suggestions, err := h.Suggestions.ListByStatus(r.Context(), status)
	if err != nil {
		utils.Internal(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, suggestionListResponse{
		Success:     true,
		Count:       len(suggestions),
		Suggestions: suggestions,
	})
}

// GetSuggestion récupère une suggestion par son ID
func (h *Handler) GetSuggestion(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(mux.Vars(r)["id"])
	if !ok {
		utils.Error(w, http.StatusNotFound, "Suggestion non trouvée")
		return
	}

	suggestion, err := h.Suggestions.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.Error(w, http.StatusNotFound, "Suggestion non trouvée")
			return
		}
		utils.Internal(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, suggestionResponse{Success: true, Suggestion: suggestion})
}

// CreateSuggestion crée une nouvelle suggestion
func (h *Handler) CreateSuggestion(w http.ResponseWriter, r *http.Request) {
	var req model.CreateSuggestionRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "JSON invalide")
		return
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		utils.Error(w, http.StatusBadRequest, "Le titre est requis")
		return
	}

	suggestion := model.Suggestion{
		Title:       title,
		Description: req.Description,
		Category:    req.Category,
		Status:      req.Status,
	}
	if suggestion.Category == "" {
		suggestion.Category = model.DefaultCategory
	}
	if suggestion.Status == "" {
		suggestion.Status = model.DefaultSuggestionStatus
	}

	id, err := h.Suggestions.Create(r.Context(), suggestion)
	if err != nil {
		utils.Internal(w, err)
		return
	}

	utils.JSON(w, http.StatusCreated, suggestionCreatedResponse{
		Success: true,
		Message: "Suggestion créée avec succès",
		ID:      id,
	})
}

// UpdateSuggestion met à jour une suggestion existante. Les champs absents
// de la requête conservent leur valeur enregistrée; id et date ne changent
// jamais.
func (h *Handler) UpdateSuggestion(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(mux.Vars(r)["id"])
	if !ok {
		utils.Error(w, http.StatusNotFound, "Suggestion non trouvée")
		return
	}

	var req model.UpdateSuggestionRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "JSON invalide")
		return
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		utils.Error(w, http.StatusBadRequest, "Le titre est requis")
		return
	}

	existing, err := h.Suggestions.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.Error(w, http.StatusNotFound, "Suggestion non trouvée")
			return
		}
		utils.Internal(w, err)
		return
	}

	existing.Title = title
	if req.Description != nil {
		existing.Description = req.Description
	}
	if req.Category != nil {
		existing.Category = *req.Category
	}
	if req.Status != nil {
		existing.Status = *req.Status
	}
	if req.NbLikes != nil {
		existing.NbLikes = *req.NbLikes
	}

	if err := h.Suggestions.Update(r.Context(), existing); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.Error(w, http.StatusNotFound, "Suggestion non trouvée")
			return
		}
		utils.Internal(w, err)
		return
	}
	utils.Message(w, "Suggestion mise à jour avec succès")
}

// DeleteSuggestion supprime définitivement une suggestion
func (h *Handler) DeleteSuggestion(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(mux.Vars(r)["id"])
	if !ok {
		utils.Error(w, http.StatusNotFound, "Suggestion non trouvée")
		return
	}

	if err := h.Suggestions.Delete(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.Error(w, http.StatusNotFound, "Suggestion non trouvée")
			return
		}
		utils.Internal(w, err)
		return
	}
	utils.Message(w, "Suggestion supprimée avec succès")
}

// LikeSuggestion incrémente le compteur de likes d'exactement 1
func (h *Handler) LikeSuggestion(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(mux.Vars(r)["id"])
	if !ok {
		utils.Error(w, http.StatusNotFound, "Suggestion non trouvée")
		return
	}

	if err := h.Suggestions.Like(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.Error(w, http.StatusNotFound, "Suggestion non trouvée")
			return
		}
		utils.Internal(w, err)
		return
	}
	utils.Message(w, "Like ajouté avec succès")
}
