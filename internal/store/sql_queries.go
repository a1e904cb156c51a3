package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"
)

// userColumns is the canonical column list scanned into models.User.
// Keep the order in sync with scanUser.
const userColumns = `user_id, username, email, password_hash, referral_code, referred_by,
    referral_count, reward_points, is_premium, reset_token, reset_token_expires_at, created_at`

const (
	createUser = `INSERT INTO users (username, email, password_hash, referral_code, referred_by)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING ` + userColumns + `;`

	creditReferrer = `UPDATE users
    SET referral_count = referral_count + 1, reward_points = reward_points + $2
    WHERE user_id = $1;`

	findUserByEmail = `SELECT ` + userColumns + `
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT ` + userColumns + `
    FROM users
    WHERE user_id = $1;`

	findUserByReferralCode = `SELECT ` + userColumns + `
    FROM users
    WHERE referral_code = $1;`

	setResetToken = `UPDATE users
    SET reset_token = $2, reset_token_expires_at = $3
    WHERE user_id = $1;`

	// matches only an unexpired token and clears it in the same statement,
	// so a spent token can never be replayed
	completePasswordReset = `UPDATE users
    SET password_hash = $2, reset_token = NULL, reset_token_expires_at = NULL
    WHERE reset_token = $1 AND reset_token_expires_at > NOW()
    RETURNING ` + userColumns + `;`

	// the balance guard in the WHERE clause makes concurrent redemptions a
	// conditional read-modify-write: with exactly enough points, only one
	// concurrent attempt can match
	redeemRewards = `UPDATE users
    SET reward_points = reward_points - $3, is_premium = TRUE
    WHERE user_id = $1 AND reward_points >= $2
    RETURNING reward_points;`
)

// buildListReferralsQuery builds the SELECT returning the public projection
// of all users referred by referrerID, oldest first.
func buildListReferralsQuery(_ context.Context, referrerID int64) (string, []any, error) {
	return sq.
		Select("username", "email", "created_at").
		From("users").
		Where(sq.Eq{"referred_by": referrerID}).
		OrderBy("created_at ASC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
}
