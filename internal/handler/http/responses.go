package http

import (
	"net/http"

	"github.com/mzholudev/go-referral-hub/internal/utils"
	"github.com/mzholudev/go-referral-hub/models"
)

// writeMessage renders the API's uniform `{"message": ...}` error/status body.
func writeMessage(w http.ResponseWriter, message string, statusCode int) {
	utils.WriteJSON(w, models.MessageResponse{Message: message}, statusCode)
}

// writeServerError renders the opaque 500 body used for unexpected failures,
// never leaking internal detail to the caller.
func writeServerError(w http.ResponseWriter) {
	writeMessage(w, "Server error", http.StatusInternalServerError)
}
