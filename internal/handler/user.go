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

type userListResponse struct {
	Success bool         `json:"success"`
	Count   int          `json:"count"`
	Users   []model.User `json:"users"`
}

type userResponse struct {
	Success bool       `json:"success"`
	User    model.User `json:"user"`
}

type userCreatedResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      int    `json:"id"`
}

// ListUsers récupère tous les utilisateurs, les plus récents d'abord
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.Users.List(r.Context())
	if err != nil {
		utils.Internal(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, users)
}

// GetUsersByRole filtre par rôle; un rôle inconnu renvoie une liste vide
func (h *Handler) GetUsersByRole(w http.ResponseWriter, r *http.Request) {
	role := mux.Vars(r)["role"]

	users, err := h.Users.ListByRole(r.Context(), role)
	if err != nil {
		utils.Internal(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, userListResponse{
		Success: true,
		Count:   len(users),
		Users:   users,
	})
}

// GetUsersByStatus filtre par statut
func (h *Handler) GetUsersByStatus(w http.ResponseWriter, r *http.Request) {
	status := mux.Vars(r)["status"]

	users, err := h.Users.ListByStatus(r.Context(), status)
	if err != nil {
		utils.Internal(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, userListResponse{
		Success: true,
		Count:   len(users),
		Users:   users,
	})
}

// GetUser récupère un utilisateur par son ID
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(mux.Vars(r)["id"])
	if !ok {
		utils.Error(w, http.StatusNotFound, "Utilisateur non trouvé")
		return
	}

	user, err := h.Users.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.Error(w, http.StatusNotFound, "Utilisateur non trouvé")
			return
		}
		utils.Internal(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, userResponse{Success: true, User: user})
}

// CreateUser crée un nouvel utilisateur. L'unicité de l'email est portée
// par la contrainte UNIQUE de la table et traduite en erreur de validation.
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req model.CreateUserRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "JSON invalide")
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		utils.Error(w, http.StatusBadRequest, "Le nom est requis")
		return
	}
	email := strings.TrimSpace(req.Email)
	if email == "" {
		utils.Error(w, http.StatusBadRequest, "L'email est requis")
		return
	}

	user := model.User{
		Name:   name,
		Email:  email,
		Role:   req.Role,
		Status: req.Status,
	}
	if user.Role == "" {
		user.Role = model.DefaultRole
	}
	if user.Status == "" {
		user.Status = model.DefaultUserStatus
	}

	id, err := h.Users.Create(r.Context(), user)
	if err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			utils.Error(w, http.StatusBadRequest, "Cet email est déjà utilisé")
			return
		}
		utils.Internal(w, err)
		return
	}

	utils.JSON(w, http.StatusCreated, userCreatedResponse{
		Success: true,
		Message: "Utilisateur créé avec succès",
		ID:      id,
	})
}

// UpdateUser met à jour un utilisateur existant. role et status conservent
// leur valeur enregistrée quand ils sont absents de la requête.
func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(mux.Vars(r)["id"])
	if !ok {
		utils.Error(w, http.StatusNotFound, "Utilisateur non trouvé")
		return
	}

	var req model.UpdateUserRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "JSON invalide")
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		utils.Error(w, http.StatusBadRequest, "Le nom est requis")
		return
	}
	email := strings.TrimSpace(req.Email)
	if email == "" {
		utils.Error(w, http.StatusBadRequest, "L'email est requis")
		return
	}

	existing, err := h.Users.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.Error(w, http.StatusNotFound, "Utilisateur non trouvé")
			return
		}
		utils.Internal(w, err)
		return
	}

	existing.Name = name
	existing.Email = email
	if req.Role != nil {
		existing.Role = *req.Role
	}
	if req.Status != nil {
		existing.Status = *req.Status
	}

	if err := h.Users.Update(r.Context(), existing); err != nil {
		switch {
		case errors.Is(err, store.ErrDuplicateEmail):
			utils.Error(w, http.StatusBadRequest, "Cet email est déjà utilisé")
		case errors.Is(err, store.ErrNotFound):
			utils.Error(w, http.StatusNotFound, "Utilisateur non trouvé")
		default:
			utils.Internal(w, err)
		}
		return
	}
	utils.Message(w, "Utilisateur mis à jour avec succès")
}

// DeleteUser supprime définitivement un utilisateur
func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(mux.Vars(r)["id"])
	if !ok {
		utils.Error(w, http.StatusNotFound, "Utilisateur non trouvé")
		return
	}

	if err := h.Users.Delete(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.Error(w, http.StatusNotFound, "Utilisateur non trouvé")
			return
		}
		utils.Internal(w, err)
		return
	}
	utils.Message(w, "Utilisateur supprimé avec succès")
}
