package model

import (
	"time"
)

// Valeurs par défaut appliquées à la création d'une suggestion
const (
	DefaultCategory         = "autre"
	DefaultSuggestionStatus = "en attente"
)

// Suggestion représente une suggestion soumise par un utilisateur
type Suggestion struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Category    string    `json:"category"`
	Status      string    `json:"status"`
	Date        time.Time `json:"date"`
	NbLikes     int       `json:"nbLikes"`
}

type CreateSuggestionRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Category    string  `json:"category"`
	Status      string  `json:"status"`
}

// UpdateSuggestionRequest utilise des pointeurs pour distinguer
// un champ absent d'un champ fourni: un champ absent conserve la
// valeur déjà enregistrée
type UpdateSuggestionRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	Status      *string `json:"status"`
	NbLikes     *int    `json:"nbLikes"`
}
