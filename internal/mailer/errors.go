package mailer

import "errors"

var (
	// ErrAuthFailed is returned when the mail provider rejects the
	// configured credentials. Surfaced separately so operators can tell a
	// misconfigured account apart from a transient delivery problem.
	ErrAuthFailed = errors.New("email authentication failed")

	// ErrDeliveryFailed is returned for any non-authentication delivery
	// failure (connection refused, recipient rejected, timeout).
	ErrDeliveryFailed = errors.New("email delivery failed")
)
