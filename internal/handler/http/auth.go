package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mzholudev/go-referral-hub/internal/logger"
	"github.com/mzholudev/go-referral-hub/internal/service"
	"github.com/mzholudev/go-referral-hub/internal/store"
	"github.com/mzholudev/go-referral-hub/internal/utils"
	"github.com/mzholudev/go-referral-hub/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeMessage(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if _, err := h.services.AuthService.Register(ctx, req); err != nil {
		log.Err(err).Msg("user registration failed")
		writeError(w, err)
		return
	}

	writeMessage(w, "User registered successfully", http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeMessage(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		// empty fields, unknown email, and wrong password all collapse into
		// the same response so the endpoint never reveals which one it was
		if errors.Is(err, service.ErrInvalidDataProvided) {
			err = service.ErrInvalidCredentials
		}

		log.Err(err).Msg("user login failed")
		writeError(w, err)
		return
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.LoginResponse{
		Token:        token.SignedString,
		ReferralLink: h.services.AuthService.ReferralLink(foundUser),
	}, http.StatusOK)
}

func (h *Handler) forgotPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.ForgotPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeMessage(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.PasswordResetService.RequestReset(ctx, req.Email); err != nil {
		// this endpoint reports an unknown (or empty) email as a 400, not
		// the 404 the generic mapping would pick
		if errors.Is(err, service.ErrInvalidDataProvided) || errors.Is(err, store.ErrNoUserWasFound) {
			log.Err(err).Msg("no user was found for reset request")
			writeMessage(w, "User not found", http.StatusBadRequest)
			return
		}

		log.Err(err).Msg("reset request failed")
		writeError(w, err)
		return
	}

	writeMessage(w, "Password reset email sent", http.StatusOK)
}

func (h *Handler) resetPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeMessage(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if _, err := h.services.PasswordResetService.CompleteReset(ctx, req.Token, req.NewPassword); err != nil {
		log.Err(err).Msg("password reset failed")
		writeError(w, err)
		return
	}

	writeMessage(w, "Password reset successfully", http.StatusOK)
}
