package store

import (
	"context"
	"time"

	"github.com/mzholudev/go-referral-hub/models"
)

// UserRepository is the persistence contract for user accounts and the
// referral-rewards ledger.
type UserRepository interface {
	// CreateUser persists a new account. When user.ReferredBy is set, the
	// referrer's referral_count is incremented by one and reward_points by
	// referralGrant inside the same transaction as the insert.
	CreateUser(ctx context.Context, user models.User, referralGrant int64) (models.User, error)

	// FindUserByEmail looks up an account by its unique email address.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID looks up an account by its primary key.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)

	// FindUserByReferralCode looks up the owner of a referral code.
	FindUserByReferralCode(ctx context.Context, code string) (models.User, error)

	// SetResetToken stores a pending password-reset token and its expiry on
	// the given account, replacing any previous token.
	SetResetToken(ctx context.Context, userID int64, token string, expiresAt time.Time) error

	// CompletePasswordReset atomically replaces the password hash and clears
	// both reset-token columns for the user whose unexpired token matches.
	// Returns ErrResetTokenInvalid when no row matches.
	CompletePasswordReset(ctx context.Context, token, passwordHash string) (models.User, error)

	// RedeemRewards conditionally debits the reward balance and unlocks the
	// premium flag, returning the new balance. The debit happens only when
	// the current balance is at least threshold, which serializes concurrent
	// redemptions at the store level.
	RedeemRewards(ctx context.Context, userID, threshold, debit int64) (int64, error)

	// ListReferrals returns the public projection of all users referred by
	// referrerID, oldest first.
	ListReferrals(ctx context.Context, referrerID int64) ([]models.Referral, error)
}

// ErrorClassificator classifies database errors as retryable or not.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
