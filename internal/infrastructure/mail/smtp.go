package mail

import (
	"context"
	"fmt"

	gomail "github.com/wneessen/go-mail"

	"github.com/shoply/storefront-api/internal/core/ports"
)

const verificationSubject = "Account Verification"

// Config captures the SMTP settings for outbound mail.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// SMTPMailer delivers verification emails over SMTP. The client is built
// once at startup; Send is safe for concurrent use by dispatcher workers.
type SMTPMailer struct {
	client *gomail.Client
	from   string
}

func NewSMTPMailer(cfg Config) (*SMTPMailer, error) {
	opts := []gomail.Option{
		gomail.WithPort(cfg.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(cfg.Username),
		gomail.WithPassword(cfg.Password),
	}
	if cfg.Port == 465 {
		opts = append(opts, gomail.WithSSL())
	}

	client, err := gomail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("smtp client: %w", err)
	}
	return &SMTPMailer{client: client, from: cfg.From}, nil
}

// Send delivers one verification email.
func (m *SMTPMailer) Send(ctx context.Context, msg ports.VerificationEmail) error {
	body, err := renderVerification(msg.Username, msg.VerifyURL)
	if err != nil {
		return err
	}

	out := gomail.NewMsg()
	if err := out.From(m.from); err != nil {
		return fmt.Errorf("mail from: %w", err)
	}
	if err := out.To(msg.To); err != nil {
		return fmt.Errorf("mail to: %w", err)
	}
	out.Subject(verificationSubject)
	out.SetBodyString(gomail.TypeTextHTML, body)

	if err := m.client.DialAndSendWithContext(ctx, out); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}
