package service

import (
	"context"
	"fmt"

	"github.com/mzholudev/go-referral-hub/internal/logger"
	"github.com/mzholudev/go-referral-hub/internal/store"
)

// rewardsService implements [RewardsService] over the user repository's
// conditional-update redemption.
type rewardsService struct {
	userRepository store.UserRepository
	logger         *logger.Logger
}

// NewRewardsService constructs a [RewardsService].
func NewRewardsService(userRepository store.UserRepository, logger *logger.Logger) RewardsService {
	return &rewardsService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// Redeem debits RedeemCost points and unlocks the premium feature for
// userID, returning the remaining balance.
//
// The balance check and debit are one conditional store update, so the
// ledger can never go negative and concurrent redemptions against exactly
// RedeemThreshold points succeed at most once.
//
// Returns:
//   - store.ErrInsufficientRewards when the balance is below RedeemThreshold.
//   - store.ErrNoUserWasFound when the account does not exist.
func (s *rewardsService) Redeem(ctx context.Context, userID int64) (int64, error) {
	log := logger.FromContext(ctx)

	balance, err := s.userRepository.RedeemRewards(ctx, userID, RedeemThreshold, RedeemCost)
	if err != nil {
		log.Warn().Err(err).Int64("id", userID).Msg("rewards redemption failed")
		return 0, fmt.Errorf("rewards redemption failed: %w", err)
	}

	log.Info().Int64("id", userID).Int64("balance", balance).Msg("rewards redeemed")
	return balance, nil
}
