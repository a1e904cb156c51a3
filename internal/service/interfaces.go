package service

import (
	"context"

	"github.com/mzholudev/go-referral-hub/models"
)

// AuthService covers registration (including referral attribution), login,
// and the bearer-token lifecycle.
type AuthService interface {
	// Register creates a new account. A supplied referral code must resolve
	// to an existing user; the referrer is then credited atomically with
	// the insert.
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)

	// Login authenticates by email and password.
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)

	// CreateToken issues a signed, time-limited JWT for the given user.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken validates a raw JWT string and resolves the owning user.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	// ReferralLink builds the user's shareable registration link.
	ReferralLink(user models.User) string
}

// PasswordResetService implements the single-use, time-limited reset flow.
type PasswordResetService interface {
	// RequestReset generates a reset token for the account with the given
	// email, stores it with an expiry, and hands it to the mail collaborator.
	RequestReset(ctx context.Context, email string) error

	// CompleteReset consumes an unexpired token, storing the new password
	// hash and clearing the token in one step.
	CompleteReset(ctx context.Context, token, newPassword string) (models.User, error)
}

// RewardsService manages redemption against the reward-points ledger.
type RewardsService interface {
	// Redeem debits the redemption cost and unlocks the premium feature,
	// returning the remaining balance.
	Redeem(ctx context.Context, userID int64) (int64, error)
}

// ReferralService exposes read-side referral queries for an authenticated
// user.
type ReferralService interface {
	// Referrals lists the users referred by userID.
	Referrals(ctx context.Context, userID int64) ([]models.Referral, error)

	// Stats returns the referral counter and current reward balance.
	Stats(ctx context.Context, userID int64) (models.ReferralStats, error)
}
