package notifier

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"robotswatch/internal/common"
	"robotswatch/internal/config"
	"robotswatch/internal/models"
)

const unsentDirName = "_unsent_emails"

// EmailSender delivers a single message. Implementations own connection,
// login and delivery failure handling.
type EmailSender interface {
	Send(msg models.EmailMessage) error
}

// Notifier queues notification payloads during a run and flushes them once in
// the run's finalization step. Messages that cannot be delivered are saved to
// disk for manual follow-up rather than retried.
type Notifier struct {
	cfg    *config.NotificationConfig
	sender EmailSender
	logger zerolog.Logger
	// dataDir hosts the unsent-email spool directory.
	dataDir string
	queue   []models.EmailMessage
}

// NewNotifier creates a new Notifier.
func NewNotifier(cfg *config.NotificationConfig, sender EmailSender, dataDir string, logger zerolog.Logger) *Notifier {
	return &Notifier{
		cfg:     cfg,
		sender:  sender,
		logger:  logger.With().Str("component", "Notifier").Logger(),
		dataDir: dataDir,
	}
}

// Enqueue adds a message to the outgoing queue. Messages with an empty
// destination address are dropped: the site owner opted out of notifications.
func (n *Notifier) Enqueue(msg models.EmailMessage) {
	if msg.Address == "" {
		n.logger.Debug().Str("subject", msg.Subject).Msg("Dropping notification without destination address")
		return
	}
	n.queue = append(n.queue, msg)
}

// Pending returns the number of queued messages.
func (n *Notifier) Pending() int {
	return len(n.queue)
}

// Flush sends all queued messages and clears the queue. Delivery failures are
// logged and the message content is spooled to disk; they never abort the
// flush. When notifications are disabled the queue is discarded.
func (n *Notifier) Flush() {
	if len(n.queue) == 0 {
		return
	}
	queue := n.queue
	n.queue = nil

	if !n.cfg.Enabled {
		n.logger.Info().Int("count", len(queue)).Msg("Notifications are disabled; details of the run have been logged only")
		return
	}

	n.logger.Info().Int("count", len(queue)).Msg("Sending queued notifications")
	for _, msg := range queue {
		if err := n.sender.Send(msg); err != nil {
			n.logger.Error().Err(err).Str("address", msg.Address).Str("subject", msg.Subject).Msg("Failed to send notification")
			n.saveUnsent(msg)
			continue
		}
		n.logger.Info().Str("address", msg.Address).Str("subject", msg.Subject).Msg("Notification sent")
	}
}

// saveUnsent writes the key details of an undeliverable message under the
// unsent-email spool directory.
func (n *Notifier) saveUnsent(msg models.EmailMessage) {
	dir := filepath.Join(n.dataDir, unsentDirName)
	if err := os.MkdirAll(dir, 0755); err != nil {
		n.logger.Error().Err(err).Str("dir", dir).Msg("Could not create unsent email directory")
		return
	}

	fileName := common.FormatFileTimestamp(time.Now()) + ".txt"
	content := msg.Address + "\n\n" + msg.Subject + "\n\n" + msg.Body
	path := filepath.Join(dir, fileName)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		n.logger.Error().Err(err).Str("path", path).Msg("Could not save unsent email")
		return
	}
	n.logger.Info().Str("path", path).Msg("Unsent email content saved")
}

// SanitizeForEmail rewrites angle brackets so raw error text cannot be
// interpreted as markup by HTML-rendering mail clients.
func SanitizeForEmail(s string) string {
	s = strings.ReplaceAll(s, "<", "{")
	return strings.ReplaceAll(s, ">", "}")
}

// UserBody wraps site-owner content in the standard template, including the
// automated-message footer with the administrator contact.
func (n *Notifier) UserBody(mainContent string) string {
	return fmt.Sprintf("Hi there,\n\n%s\n\nThis is an automated message; please do not reply "+
		"directly to this email. If you have any questions, bug reports, or feedback, please "+
		"contact the tool administrator: %s. Thanks!",
		SanitizeForEmail(mainContent), n.cfg.AdminEmail)
}

// AdminBody wraps administrator content in the standard template, appending
// any unexpected errors collected during the run.
func (n *Notifier) AdminBody(mainContent string, unexpected []error) string {
	if len(unexpected) == 0 {
		return fmt.Sprintf("Hi there,\n\n%s\n\nThere were no unexpected errors.", mainContent)
	}

	sanitized := make([]string, 0, len(unexpected))
	for _, err := range unexpected {
		sanitized = append(sanitized, SanitizeForEmail(err.Error()))
	}
	return fmt.Sprintf("Hi there,\n\n%s\n\nUnexpected errors are listed below:\n\n%s",
		mainContent, strings.Join(sanitized, "\n\n"))
}
