package mailer

import (
	"context"

	"github.com/mzholudev/go-referral-hub/internal/logger"
)

// nopMailer logs outbound messages instead of delivering them. Used in
// local development when no SMTP relay is configured.
type nopMailer struct {
	logger *logger.Logger
}

// NewNopMailer constructs a [Mailer] that only logs.
func NewNopMailer(log *logger.Logger) Mailer {
	return &nopMailer{logger: log}
}

func (m *nopMailer) Send(ctx context.Context, msg Message) error {
	logger.FromContext(ctx).Info().
		Str("to", msg.To).
		Str("subject", msg.Subject).
		Msg("nop mailer: message dropped")
	return nil
}
