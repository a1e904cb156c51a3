package service

import (
	"context"
	"fmt"
	"time"

	"github.com/mzholudev/go-referral-hub/internal/config"
	"github.com/mzholudev/go-referral-hub/internal/logger"
	"github.com/mzholudev/go-referral-hub/internal/mailer"
	"github.com/mzholudev/go-referral-hub/internal/store"
	"github.com/mzholudev/go-referral-hub/internal/utils"
	"github.com/mzholudev/go-referral-hub/models"
)

// resetTokenTTL is how long a password-reset token stays valid.
const resetTokenTTL = time.Hour

// resetTokenBytes sizes the random reset token: 20 bytes gives 160 bits of
// entropy before hex encoding.
const resetTokenBytes = 20

// passwordResetService implements [PasswordResetService] on top of the user
// repository and the outbound mail collaborator.
type passwordResetService struct {
	userRepository store.UserRepository
	mailer         mailer.Mailer
	bcryptCost     int
	logger         *logger.Logger
}

// NewPasswordResetService constructs a [PasswordResetService].
func NewPasswordResetService(userRepository store.UserRepository, m mailer.Mailer, cfg config.App, logger *logger.Logger) PasswordResetService {
	return &passwordResetService{
		userRepository: userRepository,
		mailer:         m,
		bcryptCost:     cfg.BcryptCost,
		logger:         logger,
	}
}

// RequestReset generates a single-use reset token for the account with the
// given email, stores it alongside a one-hour expiry, and mails it to the
// user.
//
// Returns:
//   - ErrInvalidDataProvided when email is empty.
//   - store.ErrNoUserWasFound when no account carries that email. The HTTP
//     layer surfaces this as a 400; hiding account existence here is a
//     known hardening option the current API contract does not take.
//   - mailer.ErrAuthFailed / mailer.ErrDeliveryFailed when sending fails.
//     The token stays stored, so a later retry can still succeed.
func (s *passwordResetService) RequestReset(ctx context.Context, email string) error {
	log := logger.FromContext(ctx)

	if email == "" {
		return ErrInvalidDataProvided
	}

	user, err := s.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		log.Warn().Str("email", email).Msg("reset requested for unknown email")
		return err
	}

	token, err := utils.RandomHex(resetTokenBytes)
	if err != nil {
		return fmt.Errorf("reset token generation failed: %w", err)
	}

	expiresAt := time.Now().Add(resetTokenTTL)
	if err := s.userRepository.SetResetToken(ctx, user.UserID, token, expiresAt); err != nil {
		log.Err(err).Int64("id", user.UserID).Msg("storing reset token failed")
		return fmt.Errorf("storing reset token failed: %w", err)
	}

	msg := mailer.Message{
		To:      user.Email,
		Subject: "Password Reset",
		Body: fmt.Sprintf("You are receiving this because you (or someone else) have requested a password reset. "+
			"Please use the following token to reset your password:\n\n%s\n\n"+
			"The token expires in one hour. If you did not request this, please ignore this email.", token),
	}

	if err := s.mailer.Send(ctx, msg); err != nil {
		log.Err(err).Int64("id", user.UserID).Msg("reset email delivery failed")
		return err
	}

	log.Info().Int64("id", user.UserID).Msg("password reset email sent")
	return nil
}

// CompleteReset consumes an unexpired reset token and stores the new
// password.
//
// The new password is re-hashed with bcrypt; the token match, password
// write, and token clearing happen in a single store operation, so a spent
// token can never be replayed.
//
// Returns:
//   - ErrInvalidDataProvided when the token is empty or the password is too
//     short.
//   - store.ErrResetTokenInvalid when the token is unknown, spent, or
//     expired.
func (s *passwordResetService) CompleteReset(ctx context.Context, token, newPassword string) (models.User, error) {
	log := logger.FromContext(ctx)

	if token == "" || len(newPassword) < minPasswordLength {
		return models.User{}, ErrInvalidDataProvided
	}

	passwordHash, err := utils.HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user, err := s.userRepository.CompletePasswordReset(ctx, token, passwordHash)
	if err != nil {
		log.Warn().Err(err).Msg("password reset completion failed")
		return models.User{}, err
	}

	log.Info().Int64("id", user.UserID).Msg("password reset completed")
	return user, nil
}
