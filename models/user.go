package models

import "time"

// User represents an account entity used for authentication and the
// referral-rewards ledger. Credential-related fields must never be exposed
// outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID int64 `json:"-"`

	// Username is the unique public name of the account.
	Username string `json:"username"`

	// Email is the unique address used for login and password-reset delivery.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// This value MUST be a derived value, never plaintext, and is never
	// serialized.
	PasswordHash string `json:"-"`

	// ReferralCode is the unique code other users supply at registration to
	// credit this user with a referral. Generated once before the account is
	// persisted and immutable afterwards.
	ReferralCode string `json:"referralCode"`

	// ReferredBy is the UserID of the referrer, set only at creation.
	// Nil when the account was registered without a referral code.
	ReferredBy *int64 `json:"-"`

	// ReferralCount tracks the number of successful referrals credited to
	// this user. Incremented by exactly one per referred registration.
	ReferralCount int64 `json:"referralCount"`

	// RewardPoints is the reward ledger balance, earned via referrals and
	// spent via redemption. Never negative.
	RewardPoints int64 `json:"rewards"`

	// IsPremium reports whether the premium feature has been unlocked by a
	// rewards redemption.
	IsPremium bool `json:"isPremium"`

	// ResetToken and ResetTokenExpiresAt hold the pending password-reset
	// credential. Both are set together, cleared together, and never
	// serialized.
	ResetToken          *string    `json:"-"`
	ResetTokenExpiresAt *time.Time `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Referral is the public projection of a referred user returned by the
// referrals listing endpoint.
type Referral struct {
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// ReferralStats aggregates the counters shown on the referral dashboard.
type ReferralStats struct {
	ReferralCount int64 `json:"referralCount"`
	RewardPoints  int64 `json:"rewards"`
}
