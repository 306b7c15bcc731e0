package model

import (
	"time"
)

// Valeurs par défaut appliquées à la création d'un utilisateur
const (
	DefaultRole       = "user"
	DefaultUserStatus = "active"
)

// User représente un utilisateur de la plateforme
type User struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`   // user, admin, moderator
	Status    string    `json:"status"` // active, inactive
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateUserRequest struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Status string `json:"status"`
}

// UpdateUserRequest: name et email sont requis, role et status
// retombent sur la valeur enregistrée quand ils sont absents
type UpdateUserRequest struct {
	Name   string  `json:"name"`
	Email  string  `json:"email"`
	Role   *string `json:"role"`
	Status *string `json:"status"`
}
