package service

import (
	"context"
	"fmt"

	"github.com/mzholudev/go-referral-hub/internal/logger"
	"github.com/mzholudev/go-referral-hub/internal/store"
	"github.com/mzholudev/go-referral-hub/models"
)

// referralService implements the read side of the referral ledger.
type referralService struct {
	userRepository store.UserRepository
	logger         *logger.Logger
}

// NewReferralService constructs a [ReferralService].
func NewReferralService(userRepository store.UserRepository, logger *logger.Logger) ReferralService {
	return &referralService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// Referrals lists the public projection of all users referred by userID.
func (s *referralService) Referrals(ctx context.Context, userID int64) ([]models.Referral, error) {
	// the caller must exist; a dangling token id should 404, not return an
	// empty list
	if _, err := s.userRepository.FindUserByID(ctx, userID); err != nil {
		return nil, err
	}

	referrals, err := s.userRepository.ListReferrals(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", userID).Msg("listing referrals failed")
		return nil, fmt.Errorf("listing referrals failed: %w", err)
	}

	return referrals, nil
}

// Stats returns the referral counter and current reward balance for userID.
func (s *referralService) Stats(ctx context.Context, userID int64) (models.ReferralStats, error) {
	user, err := s.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Int64("id", userID).Msg("referral stats lookup failed")
		return models.ReferralStats{}, err
	}

	return models.ReferralStats{
		ReferralCount: user.ReferralCount,
		RewardPoints:  user.RewardPoints,
	}, nil
}
