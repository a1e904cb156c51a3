package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/mzholudev/go-referral-hub/internal/logger"
	"github.com/mzholudev/go-referral-hub/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account creation, lookups, the referral ledger, and the
// password-reset token lifecycle against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// rowScanner abstracts *sql.Row and *sql.Rows for shared scanning.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanUser reads one full user row in [userColumns] order.
func scanUser(row rowScanner) (models.User, error) {
	var u models.User
	err := row.Scan(
		&u.UserID,
		&u.Username,
		&u.Email,
		&u.PasswordHash,
		&u.ReferralCode,
		&u.ReferredBy,
		&u.ReferralCount,
		&u.RewardPoints,
		&u.IsPremium,
		&u.ResetToken,
		&u.ResetTokenExpiresAt,
		&u.CreatedAt,
	)
	return u, err
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with server-assigned fields (UserID, CreatedAt).
//
// The INSERT and the referrer's counter update run inside a single
// transaction, so a referred registration either creates the user and
// credits the referrer, or does neither.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrUserAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User, referralGrant int64) (models.User, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: cannot begin transaction")
		return models.User{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	// create user in db
	row := tx.QueryRowContext(ctx, createUser, user.Username, user.Email, user.PasswordHash, user.ReferralCode, user.ReferredBy)
	created, err := scanUser(row)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: user insert failed")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrUserAlreadyExists
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	// credit the referrer inside the same transaction
	if user.ReferredBy != nil {
		if _, err := tx.ExecContext(ctx, creditReferrer, *user.ReferredBy, referralGrant); err != nil {
			log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: crediting referrer failed")
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: commit failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return created, nil
}

// FindUserByEmail retrieves a user record by its unique email address.
//
// Error handling:
//   - No matching row → [ErrNoUserWasFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findUser(ctx, "*userRepository.FindUserByEmail", findUserByEmail, email)
}

// FindUserByID retrieves a user record by its primary key.
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	return r.findUser(ctx, "*userRepository.FindUserByID", findUserByID, userID)
}

// FindUserByReferralCode retrieves the owner of the given referral code.
func (r *userRepository) FindUserByReferralCode(ctx context.Context, code string) (models.User, error) {
	return r.findUser(ctx, "*userRepository.FindUserByReferralCode", findUserByReferralCode, code)
}

func (r *userRepository) findUser(ctx context.Context, funcName, query string, arg any) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, query, arg)
	foundUser, err := scanUser(row)
	if err != nil && r.db.IsRetryable(err) {
		// lookups are idempotent, so transient driver errors get one more attempt
		log.Warn().Err(err).Str("func", funcName).Msg("transient DB error, retrying lookup")
		row = r.db.QueryRowContext(ctx, query, arg)
		foundUser, err = scanUser(row)
	}
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}

		log.Err(err).Str("func", funcName).Msg("error: user lookup failed")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return foundUser, nil
}

// SetResetToken stores a pending password-reset token and expiry on the
// given account. Both columns are written together; a later successful
// reset clears them together.
func (r *userRepository) SetResetToken(ctx context.Context, userID int64, token string, expiresAt time.Time) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, setResetToken, userID, token, expiresAt)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.SetResetToken").Msg("error: storing reset token failed")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrNoUserWasFound
	}

	return nil
}

// CompletePasswordReset atomically replaces the password hash and clears
// both reset-token columns for the user whose unexpired token matches.
// The token match and the clearing happen in one UPDATE, so a spent token
// can never satisfy a second reset.
//
// Error handling:
//   - No matching row (unknown, spent, or expired token) → [ErrResetTokenInvalid].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CompletePasswordReset(ctx context.Context, token, passwordHash string) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, completePasswordReset, token, passwordHash)
	updatedUser, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrResetTokenInvalid
		}

		log.Err(err).Str("func", "*userRepository.CompletePasswordReset").Msg("error: password reset failed")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updatedUser, nil
}

// RedeemRewards conditionally debits the reward balance and unlocks the
// premium flag, returning the new balance.
//
// The balance check lives in the UPDATE's WHERE clause, so two concurrent
// redemptions against a balance of exactly threshold cannot both match:
// the row lock taken by the first UPDATE forces the second to re-evaluate
// the predicate against the debited balance.
//
// Error handling:
//   - No matching row, user exists → [ErrInsufficientRewards].
//   - No matching row, user missing → [ErrNoUserWasFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) RedeemRewards(ctx context.Context, userID, threshold, debit int64) (int64, error) {
	log := logger.FromContext(ctx)

	var balance int64
	row := r.db.QueryRowContext(ctx, redeemRewards, userID, threshold, debit)
	if err := row.Scan(&balance); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// distinguish a missing account from a low balance
			if _, findErr := r.FindUserByID(ctx, userID); findErr != nil {
				return 0, findErr
			}
			return 0, ErrInsufficientRewards
		}

		log.Err(err).Str("func", "*userRepository.RedeemRewards").Msg("error: redeem update failed")
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	return balance, nil
}

// ListReferrals returns the public projection of all users referred by
// referrerID, oldest first.
func (r *userRepository) ListReferrals(ctx context.Context, referrerID int64) ([]models.Referral, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListReferralsQuery(ctx, referrerID)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListReferrals").Msg("error: building query failed")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListReferrals").Msg("error: query failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	referrals := make([]models.Referral, 0)
	for rows.Next() {
		var ref models.Referral
		if err := rows.Scan(&ref.Username, &ref.Email, &ref.CreatedAt); err != nil {
			log.Err(err).Str("func", "*userRepository.ListReferrals").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		referrals = append(referrals, ref)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return referrals, nil
}
