package notifier

import (
	"github.com/rs/zerolog"
	"gopkg.in/gomail.v2"

	"robotswatch/internal/common"
	"robotswatch/internal/config"
	"robotswatch/internal/models"
)

// SMTPSender delivers messages over SMTP. It does not retry; the Notifier
// spools undeliverable messages for the next run instead.
type SMTPSender struct {
	cfg    *config.NotificationConfig
	dialer *gomail.Dialer
	logger zerolog.Logger
}

// NewSMTPSender creates a new SMTPSender from the notification configuration.
func NewSMTPSender(cfg *config.NotificationConfig, logger zerolog.Logger) *SMTPSender {
	username := cfg.SMTPUsername
	if username == "" {
		username = cfg.SenderEmail
	}
	return &SMTPSender{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, username, cfg.SMTPPassword),
		logger: logger.With().Str("component", "SMTPSender").Logger(),
	}
}

// Send delivers one message, attaching any referenced files.
func (s *SMTPSender) Send(msg models.EmailMessage) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.SenderEmail)
	m.SetHeader("To", msg.Address)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Body)
	for _, attachment := range msg.Attachments {
		m.Attach(attachment)
	}

	if err := s.dialer.DialAndSend(m); err != nil {
		return common.WrapErrorf(err, "SMTP delivery to '%s' failed", msg.Address)
	}
	return nil
}
