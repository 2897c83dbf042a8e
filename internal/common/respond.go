package common

import (
	"encoding/json"
	"log"
	"net/http"
)

func WriteJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func WriteError(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, map[string]string{"error": message})
}

// WriteDomainError maps the domain error taxonomy onto HTTP statuses.
// Unknown errors become 500 without leaking internals.
func WriteDomainError(w http.ResponseWriter, err error) {
	switch {
	case IsNotFound(err):
		WriteError(w, http.StatusNotFound, err.Error())
	case IsBusinessError(err):
		WriteError(w, http.StatusConflict, err.Error())
	case IsPermissionError(err):
		WriteError(w, http.StatusForbidden, err.Error())
	default:
		log.Printf("internal error: %v", err)
		WriteError(w, http.StatusInternalServerError, "internal server error")
	}
}
