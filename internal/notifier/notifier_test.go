package notifier

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"robotswatch/internal/config"
	"robotswatch/internal/models"
)

// mockSender records sent messages and can be told to fail.
type mockSender struct {
	sent    []models.EmailMessage
	failAll bool
}

func (m *mockSender) Send(msg models.EmailMessage) error {
	if m.failAll {
		return errors.New("smtp unavailable")
	}
	m.sent = append(m.sent, msg)
	return nil
}

func newTestNotifier(t *testing.T, enabled bool, sender EmailSender) *Notifier {
	t.Helper()
	cfg := config.NewDefaultNotificationConfig()
	cfg.Enabled = enabled
	cfg.AdminEmail = "admin@example.com"
	return NewNotifier(&cfg, sender, t.TempDir(), zerolog.Nop())
}

func TestEnqueueAndFlush(t *testing.T) {
	sender := &mockSender{}
	n := newTestNotifier(t, true, sender)

	n.Enqueue(models.EmailMessage{Address: "a@example.com", Subject: "one"})
	n.Enqueue(models.EmailMessage{Address: "b@example.com", Subject: "two"})
	assert.Equal(t, 2, n.Pending())

	n.Flush()

	assert.Equal(t, 0, n.Pending())
	require.Len(t, sender.sent, 2)
	assert.Equal(t, "one", sender.sent[0].Subject)
	assert.Equal(t, "two", sender.sent[1].Subject)
}

func TestEnqueue_DropsEmptyAddress(t *testing.T) {
	sender := &mockSender{}
	n := newTestNotifier(t, true, sender)

	n.Enqueue(models.EmailMessage{Address: "", Subject: "no destination"})
	assert.Equal(t, 0, n.Pending())
}

func TestFlush_DisabledDiscardsQueue(t *testing.T) {
	sender := &mockSender{}
	n := newTestNotifier(t, false, sender)

	n.Enqueue(models.EmailMessage{Address: "a@example.com", Subject: "one"})
	n.Flush()

	assert.Empty(t, sender.sent)
	assert.Equal(t, 0, n.Pending())
}

func TestFlush_SpoolsUndeliverableMessages(t *testing.T) {
	sender := &mockSender{failAll: true}
	cfg := config.NewDefaultNotificationConfig()
	cfg.Enabled = true
	dataDir := t.TempDir()
	n := NewNotifier(&cfg, sender, dataDir, zerolog.Nop())

	n.Enqueue(models.EmailMessage{
		Address: "a@example.com",
		Subject: "Example Robots.txt Change",
		Body:    "body text",
	})
	n.Flush()

	entries, err := os.ReadDir(filepath.Join(dataDir, "_unsent_emails"))
	require.NoError(t, err)
	require.Len(t, entries, 1)

	content, err := os.ReadFile(filepath.Join(dataDir, "_unsent_emails", entries[0].Name()))
	require.NoError(t, err)
	assert.Equal(t, "a@example.com\n\nExample Robots.txt Change\n\nbody text", string(content))
}

func TestSanitizeForEmail(t *testing.T) {
	assert.Equal(t, "{a href=x}link{/a}", SanitizeForEmail("<a href=x>link</a>"))
	assert.Equal(t, "plain text", SanitizeForEmail("plain text"))
}

func TestUserBody(t *testing.T) {
	n := newTestNotifier(t, true, &mockSender{})

	body := n.UserBody("content with <markup>")

	assert.Contains(t, body, "Hi there,")
	assert.Contains(t, body, "content with {markup}")
	assert.Contains(t, body, "admin@example.com")
	assert.Contains(t, body, "automated message")
}

func TestAdminBody_NoErrors(t *testing.T) {
	n := newTestNotifier(t, true, &mockSender{})

	body := n.AdminBody("No change: 2. Change: 0. First run: 0. Error: 0.", nil)

	assert.Contains(t, body, "No change: 2.")
	assert.Contains(t, body, "There were no unexpected errors.")
}

func TestAdminBody_WithErrors(t *testing.T) {
	n := newTestNotifier(t, true, &mockSender{})

	body := n.AdminBody("summary", []error{
		errors.New("first <bad> thing"),
		errors.New("second bad thing"),
	})

	assert.Contains(t, body, "Unexpected errors are listed below:")
	assert.Contains(t, body, "first {bad} thing")
	assert.Contains(t, body, "second bad thing")
	assert.NotContains(t, body, "There were no unexpected errors.")
}
