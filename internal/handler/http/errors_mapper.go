package http

import (
	"errors"
	"net/http"

	"github.com/mzholudev/go-referral-hub/internal/mailer"
	"github.com/mzholudev/go-referral-hub/internal/service"
	"github.com/mzholudev/go-referral-hub/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrInvalidCredentials:      http.StatusBadRequest,
	service.ErrInvalidReferralCode:     http.StatusBadRequest,
	service.ErrTokenIsExpiredOrInvalid: http.StatusBadRequest,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,

	store.ErrUserAlreadyExists:   http.StatusBadRequest,
	store.ErrNoUserWasFound:      http.StatusNotFound,
	store.ErrInsufficientRewards: http.StatusBadRequest,
	store.ErrResetTokenInvalid:   http.StatusBadRequest,

	mailer.ErrAuthFailed:     http.StatusInternalServerError,
	mailer.ErrDeliveryFailed: http.StatusInternalServerError,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

// errorMessageMap carries the caller-facing `{"message": ...}` body for each
// business error. Infrastructure errors deliberately have no entry: they all
// collapse into the opaque "Server error" default.
var errorMessageMap = map[error]string{
	service.ErrInvalidDataProvided:     "Invalid data provided",
	service.ErrInvalidCredentials:      "Invalid credentials",
	service.ErrInvalidReferralCode:     "Invalid referral code",
	service.ErrTokenIsExpiredOrInvalid: "Invalid token.",

	store.ErrUserAlreadyExists:   "User already exists",
	store.ErrNoUserWasFound:      "User not found",
	store.ErrInsufficientRewards: "Insufficient rewards",
	store.ErrResetTokenInvalid:   "Invalid or expired token",

	mailer.ErrAuthFailed: "Email authentication failed. Check your email credentials.",
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error) string {
	for target, message := range errorMessageMap {
		if errors.Is(err, target) {
			return message
		}
	}
	return "Server error"
}

// writeError renders err through the status and message maps. Handlers call
// it after logging; endpoint-specific deviations (login's credential
// collapse, forgot-password's 400 for an unknown email) stay in the handlers.
func writeError(w http.ResponseWriter, err error) {
	writeMessage(w, messageFromError(err), statusFromError(err))
}
