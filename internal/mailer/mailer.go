// Package mailer implements the outbound email collaborator used by the
// password-reset flow. The production implementation speaks SMTP; a no-op
// implementation exists for tests and local development.
package mailer

import (
	"context"
)

// Message is a single outbound email.
type Message struct {
	To      string
	Subject string
	Body    string
}

// Mailer delivers messages to users. Implementations report authentication
// failures against the mail provider distinctly from other delivery
// failures (see ErrAuthFailed and ErrDeliveryFailed).
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}
