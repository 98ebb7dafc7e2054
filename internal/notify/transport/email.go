package transport

import (
	"context"
	"fmt"

	"github.com/wneessen/go-mail"

	"github.com/tair/inventory-tracker/internal/notify/domain"
	"github.com/tair/inventory-tracker/pkg/config"
	"github.com/tair/inventory-tracker/pkg/logger"
)

type mailSender interface {
	DialAndSendWithContext(ctx context.Context, messages ...*mail.Msg) error
}

// EmailNotifier sends alerts straight to an SMTP server
type EmailNotifier struct {
	sender mailSender
	from   string
}

// NewEmailNotifier creates an SMTP client from cfg
func NewEmailNotifier(cfg config.SMTPConfig) (*EmailNotifier, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("smtp host is required")
	}

	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}
	if cfg.Timeout > 0 {
		opts = append(opts, mail.WithTimeout(cfg.Timeout))
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create smtp client: %w", err)
	}

	return newEmailNotifier(client, cfg.From), nil
}

func newEmailNotifier(sender mailSender, from string) *EmailNotifier {
	return &EmailNotifier{sender: sender, from: from}
}

// Notify renders the alert and sends it in one SMTP session
func (n *EmailNotifier) Notify(ctx context.Context, alert domain.LowStockAlert) error {
	msg, err := n.message(alert)
	if err != nil {
		return err
	}

	if err := n.sender.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to send low stock email: %w", err)
	}

	logger.Info(ctx).
		Str("product", alert.ProductName).
		Str("recipient", alert.Recipient).
		Msg("Low stock email sent")
	return nil
}

func (n *EmailNotifier) message(alert domain.LowStockAlert) (*mail.Msg, error) {
	subject, body := domain.Render(alert)

	msg := mail.NewMsg()
	if err := msg.From(n.from); err != nil {
		return nil, fmt.Errorf("invalid sender address: %w", err)
	}
	if err := msg.To(alert.Recipient); err != nil {
		return nil, fmt.Errorf("invalid recipient address: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, body)
	return msg, nil
}
