package service

import (
	"errors"
	"fmt"
	"time"

	"context"

	"github.com/mzholudev/go-referral-hub/internal/config"
	"github.com/mzholudev/go-referral-hub/internal/logger"
	"github.com/mzholudev/go-referral-hub/internal/store"
	"github.com/mzholudev/go-referral-hub/internal/utils"
	"github.com/mzholudev/go-referral-hub/models"
)

// Ledger constants for the referral-rewards bookkeeping. Each successful
// referral credits the referrer RewardPerReferral points; redemption
// requires RedeemThreshold points and debits RedeemCost.
const (
	RewardPerReferral int64 = 10
	RedeemThreshold   int64 = 100
	RedeemCost        int64 = 100
)

// minPasswordLength is the minimum accepted password length at registration
// and reset.
const minPasswordLength = 6

// referralCodeBytes sizes the random referral code (hex-encoded, so the
// string is twice as long).
const referralCodeBytes = 8

// authService is the concrete implementation of AuthService.
// It handles user registration with referral attribution, credential
// verification, and the JWT token lifecycle using a UserRepository for
// persistence and bcrypt for password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// bcryptCost is the bcrypt work factor applied when hashing passwords.
	bcryptCost int

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// referralBaseURL is the public registration URL used when building a
	// user's shareable referral link.
	referralBaseURL string

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:  userRepository,
		bcryptCost:      cfg.BcryptCost,
		tokenSignKey:    cfg.TokenSignKey,
		tokenIssuer:     cfg.TokenIssuer,
		tokenDuration:   cfg.TokenDuration,
		referralBaseURL: cfg.ReferralBaseURL,
		logger:          logger,
	}
}

// Register creates a new user account with referral attribution.
//
// Validation requires non-empty username, email, and a password of at least
// six characters. When a referral code is supplied it must resolve to an
// existing user, otherwise registration fails with ErrInvalidReferralCode
// and no user is created.
//
// The fully-valid entity is constructed before persistence: the password is
// bcrypt-hashed and a fresh unique referral code is generated here, never by
// a hidden save-time hook. The insert and the referrer's counter/reward
// credit run in one store transaction.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - ErrInvalidDataProvided on validation failure.
//   - ErrInvalidReferralCode when the supplied code resolves to nobody.
//   - store.ErrUserAlreadyExists when username or email is taken.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if req.Username == "" || req.Email == "" || len(req.Password) < minPasswordLength {
		log.Error().Str("username", req.Username).Str("email", req.Email).Msg("invalid registration data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	// resolve the referrer before touching anything
	var referredBy *int64
	if req.ReferralCode != "" {
		referrer, err := a.userRepository.FindUserByReferralCode(ctx, req.ReferralCode)
		if err != nil {
			if errors.Is(err, store.ErrNoUserWasFound) {
				log.Warn().Str("referral_code", req.ReferralCode).Msg("referral code did not resolve")
				return models.User{}, ErrInvalidReferralCode
			}
			return models.User{}, fmt.Errorf("referrer lookup failed: %w", err)
		}
		referredBy = &referrer.UserID
	}

	passwordHash, err := utils.HashPassword(req.Password, a.bcryptCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	referralCode, err := utils.RandomHex(referralCodeBytes)
	if err != nil {
		log.Err(err).Msg("referral code generation failed")
		return models.User{}, fmt.Errorf("referral code generation failed: %w", err)
	}

	user := models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: passwordHash,
		ReferralCode: referralCode,
		ReferredBy:   referredBy,
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user, RewardPerReferral)
	if err != nil {
		log.Err(err).Str("username", user.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user by email and password.
//
// Unknown email and wrong password both surface as ErrInvalidCredentials so
// that the endpoint never reveals whether an email is registered.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if req.Email == "" || req.Password == "" {
		log.Error().Msg("invalid login data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Warn().Str("email", req.Email).Msg("login attempt for unknown email")
			return models.User{}, ErrInvalidCredentials
		}

		log.Err(err).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !utils.CheckPassword(req.Password, foundUser.PasswordHash) {
		log.Warn().Int64("id", foundUser.UserID).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the
// configured tokenIssuer as the "iss" claim, and expires after
// tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, malformed, bad signature)
// is normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// ReferralLink builds the shareable registration URL carrying the user's
// referral code as a query parameter.
func (a *authService) ReferralLink(user models.User) string {
	return fmt.Sprintf("%s?referral=%s", a.referralBaseURL, user.ReferralCode)
}
