package http

import (
	"net/http"

	"github.com/mzholudev/go-referral-hub/internal/logger"
	"github.com/mzholudev/go-referral-hub/internal/utils"
	"github.com/mzholudev/go-referral-hub/models"
)

func (h *Handler) redeemRewards(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		writeServerError(w)
		return
	}

	balance, err := h.services.RewardsService.Redeem(ctx, userID)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("rewards redemption failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.RedeemResponse{
		Message:      "Premium feature unlocked!",
		RewardPoints: balance,
	}, http.StatusOK)
}
