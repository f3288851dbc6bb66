package notify

import (
	"context"
	"path/filepath"
	"strings"

	gomail "github.com/wneessen/go-mail"

	"github.com/inepdata/surveysweep/pkg/errors"
)

// SMTPConfig holds the submission-relay settings.
type SMTPConfig struct {
	Host     string // e.g. smtp.office365.com
	Port     int    // standard submission port 587
	Username string
	Password string
	From     string
}

// SMTPSender delivers messages over authenticated STARTTLS submission.
// Each Send dials, authenticates, sends, and closes: no pooling, no
// retries. Failures come back as DeliveryError values.
type SMTPSender struct {
	cfg SMTPConfig
}

// NewSMTPSender creates a sender for the given relay.
func NewSMTPSender(cfg SMTPConfig) (*SMTPSender, error) {
	if cfg.Host == "" || cfg.From == "" {
		return nil, errors.NewConfigError("smtp", "host and sender address are required", nil)
	}
	if cfg.Port == 0 {
		cfg.Port = 587
	}
	return &SMTPSender{cfg: cfg}, nil
}

// Send implements the Sender interface.
func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	recipient := strings.Join(msg.To, ", ")

	m := gomail.NewMsg()
	if err := m.From(s.cfg.From); err != nil {
		return errors.NewDeliveryError(recipient, msg.Subject, err)
	}
	if err := m.To(msg.To...); err != nil {
		return errors.NewDeliveryError(recipient, msg.Subject, err)
	}
	if len(msg.Cc) > 0 {
		if err := m.Cc(msg.Cc...); err != nil {
			return errors.NewDeliveryError(recipient, msg.Subject, err)
		}
	}
	m.Subject(msg.Subject)
	m.SetDate()
	m.SetBodyString(gomail.TypeTextHTML, msg.HTML)
	if msg.AttachmentPath != "" {
		m.AttachFile(msg.AttachmentPath,
			gomail.WithFileName(filepath.Base(msg.AttachmentPath)))
	}

	client, err := gomail.NewClient(s.cfg.Host,
		gomail.WithPort(s.cfg.Port),
		gomail.WithTLSPolicy(gomail.TLSMandatory),
		gomail.WithSMTPAuth(gomail.SMTPAuthLogin),
		gomail.WithUsername(s.cfg.Username),
		gomail.WithPassword(s.cfg.Password),
	)
	if err != nil {
		return errors.NewDeliveryError(recipient, msg.Subject, err)
	}

	if err := client.DialAndSendWithContext(ctx, m); err != nil {
		return errors.NewDeliveryError(recipient, msg.Subject, err)
	}
	return nil
}
