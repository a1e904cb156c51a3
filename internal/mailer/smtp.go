package mailer

import (
	"context"
	"errors"
	"fmt"
	"net/smtp"
	"net/textproto"
	"strings"

	"github.com/mzholudev/go-referral-hub/internal/config"
	"github.com/mzholudev/go-referral-hub/internal/logger"
)

// smtpMailer delivers mail through a plain SMTP relay using the settings
// from [config.Mail].
type smtpMailer struct {
	host     string
	port     int
	username string
	password string
	from     string
	logger   *logger.Logger
}

// NewSMTPMailer constructs a [Mailer] that sends through the configured
// SMTP relay. When cfg.Username is empty the connection is unauthenticated.
func NewSMTPMailer(cfg config.Mail, log *logger.Logger) Mailer {
	log.Debug().Str("host", cfg.Host).Int("port", cfg.Port).Msg("creating smtp mailer")
	return &smtpMailer{
		host:     cfg.Host,
		port:     cfg.Port,
		username: cfg.Username,
		password: cfg.Password,
		from:     cfg.From,
		logger:   log,
	}
}

// Send delivers msg through the SMTP relay. Because net/smtp has no
// context support, the dial-and-send runs in a goroutine and the call
// returns early with ctx.Err() on cancellation; the abandoned attempt
// finishes in the background.
func (m *smtpMailer) Send(ctx context.Context, msg Message) error {
	log := logger.FromContext(ctx)

	payload := buildRFC822(m.from, msg)
	addr := fmt.Sprintf("%s:%d", m.host, m.port)

	var auth smtp.Auth
	if m.username != "" {
		auth = smtp.PlainAuth("", m.username, m.password, m.host)
	}

	done := make(chan error, 1)
	go func() {
		done <- smtp.SendMail(addr, auth, m.from, []string{msg.To}, payload)
	}()

	select {
	case <-ctx.Done():
		return fmt.Errorf("%w: %w", ErrDeliveryFailed, ctx.Err())
	case err := <-done:
		if err != nil {
			log.Err(err).Str("to", msg.To).Msg("smtp send failed")
			return classifySMTPError(err)
		}
	}

	log.Info().Str("to", msg.To).Str("subject", msg.Subject).Msg("email sent")
	return nil
}

// classifySMTPError splits SMTP failures into authentication errors
// (5xx codes in the 53x range reported during AUTH) and everything else.
func classifySMTPError(err error) error {
	var protoErr *textproto.Error
	if errors.As(err, &protoErr) {
		switch protoErr.Code {
		case 530, 534, 535:
			return fmt.Errorf("%w: %w", ErrAuthFailed, err)
		}
	}

	return fmt.Errorf("%w: %w", ErrDeliveryFailed, err)
}

// buildRFC822 renders the minimal headers-plus-body wire format expected
// by SMTP DATA.
func buildRFC822(from string, msg Message) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", msg.To)
	fmt.Fprintf(&b, "Subject: %s\r\n", msg.Subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(msg.Body)
	return []byte(b.String())
}
