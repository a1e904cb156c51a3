package service

import "errors"

var (
	// ErrInvalidDataProvided is returned when a request is missing required
	// fields or violates basic shape constraints (e.g. a too-short password).
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials is returned on any failed login. Unknown email
	// and wrong password are deliberately indistinguishable so the endpoint
	// does not leak which accounts exist.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidReferralCode is returned when a supplied referral code does
	// not resolve to any existing user. Registration does not proceed.
	ErrInvalidReferralCode = errors.New("invalid referral code")

	// ErrTokenCreationFailed is returned when signing a new JWT fails.
	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrTokenIsExpiredOrInvalid normalises every JWT validation failure
	// (expired, malformed, bad signature, wrong issuer) into one result.
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)
