package sender

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/wneessen/go-mail"
)

// SMTPConfig holds connection settings for the outbound mail server.
// Defaults target Gmail with an app password over STARTTLS.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
}

// DefaultSMTPConfig returns Gmail submission settings. Username and
// Password must still be supplied by the caller.
func DefaultSMTPConfig() SMTPConfig {
	return SMTPConfig{
		Host: "smtp.gmail.com",
		Port: 587,
	}
}

// SMTPTransport delivers messages through a single SMTP account.
type SMTPTransport struct {
	cfg SMTPConfig
}

// NewSMTPTransport validates the config and returns a transport.
func NewSMTPTransport(cfg SMTPConfig) (*SMTPTransport, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("SMTP host is required")
	}
	if cfg.Username == "" || cfg.Password == "" {
		return nil, fmt.Errorf("SMTP credentials are required")
	}
	if cfg.Port == 0 {
		cfg.Port = 587
	}
	return &SMTPTransport{cfg: cfg}, nil
}

// Verify dials the server and authenticates without sending anything,
// so credential problems surface before the first message.
func (t *SMTPTransport) Verify(ctx context.Context) error {
	client, err := t.newClient()
	if err != nil {
		return err
	}
	if err := client.DialWithContext(ctx); err != nil {
		return fmt.Errorf("SMTP verification failed (check that 2-step verification is enabled and an app password is used): %w", err)
	}
	return client.Close()
}

// Send delivers one message. The plain-text body is mirrored as an
// HTML alternative with newlines converted to line breaks.
func (t *SMTPTransport) Send(ctx context.Context, msg Message) error {
	m := mail.NewMsg()
	if err := m.FromFormat(msg.FromName, msg.From); err != nil {
		return fmt.Errorf("invalid sender address %s: %w", msg.From, err)
	}
	if err := m.To(msg.To); err != nil {
		return fmt.Errorf("invalid recipient address %s: %w", msg.To, err)
	}
	m.Subject(msg.Subject)
	m.SetImportance(mail.ImportanceHigh)
	m.SetBodyString(mail.TypeTextPlain, msg.Body)
	m.AddAlternativeString(mail.TypeTextHTML, strings.ReplaceAll(msg.Body, "\n", "<br>"))

	if msg.Attachment != nil {
		if err := m.AttachReader(msg.Attachment.Filename, bytes.NewReader(msg.Attachment.Data)); err != nil {
			return fmt.Errorf("failed to attach %s: %w", msg.Attachment.Filename, err)
		}
	}

	client, err := t.newClient()
	if err != nil {
		return err
	}
	if err := client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", msg.To, err)
	}
	return nil
}

func (t *SMTPTransport) newClient() (*mail.Client, error) {
	client, err := mail.NewClient(t.cfg.Host,
		mail.WithPort(t.cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(t.cfg.Username),
		mail.WithPassword(t.cfg.Password),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create SMTP client: %w", err)
	}
	return client, nil
}
