package utils

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse est l'enveloppe commune à toutes les réponses d'erreur
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// MessageResponse est l'enveloppe des réponses de succès sans données
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func JSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// Error écrit une réponse d'erreur et la log dans la console
func Error(w http.ResponseWriter, status int, msg string) {
	LogError("[%d] %s", status, msg)
	JSON(w, status, ErrorResponse{Success: false, Error: msg})
}

// Internal masque l'erreur interne au client et la log côté serveur
func Internal(w http.ResponseWriter, err error) {
	LogError("[500] %v", err)
	JSON(w, http.StatusInternalServerError, ErrorResponse{Success: false, Error: "Erreur serveur interne"})
}

// Message écrit une réponse de succès avec un message de confirmation
func Message(w http.ResponseWriter, msg string) {
	JSON(w, http.StatusOK, MessageResponse{Success: true, Message: msg})
}
