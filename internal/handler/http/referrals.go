package http

import (
	"net/http"

	"github.com/mzholudev/go-referral-hub/internal/logger"
	"github.com/mzholudev/go-referral-hub/internal/utils"
	"github.com/mzholudev/go-referral-hub/models"
)

func (h *Handler) referrals(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		writeServerError(w)
		return
	}

	referrals, err := h.services.ReferralService.Referrals(ctx, userID)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("listing referrals failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.ReferralsResponse{Referrals: referrals}, http.StatusOK)
}

func (h *Handler) referralStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		writeServerError(w)
		return
	}

	stats, err := h.services.ReferralService.Stats(ctx, userID)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("referral stats lookup failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, stats, http.StatusOK)
}
