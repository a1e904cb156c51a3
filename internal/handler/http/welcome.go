package http

import (
	"net/http"
)

func (h *Handler) welcome(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte("Welcome to the Referral Hub Backend!"))
}
