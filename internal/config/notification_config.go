package config

// NotificationConfig defines configuration for email notifications.
type NotificationConfig struct {
	// Master toggle; when false, messages are logged and discarded instead of sent.
	Enabled bool `json:"enabled" yaml:"enabled"`
	// Administrator address; receives the per-run summary and fatal error reports.
	AdminEmail string `json:"admin_email,omitempty" yaml:"admin_email,omitempty" validate:"omitempty,email"`
	// Address used in the From header of all outgoing mail.
	SenderEmail  string `json:"sender_email,omitempty" yaml:"sender_email,omitempty" validate:"omitempty,email"`
	SMTPHost     string `json:"smtp_host,omitempty" yaml:"smtp_host,omitempty"`
	SMTPPort     int    `json:"smtp_port,omitempty" yaml:"smtp_port,omitempty" validate:"omitempty,min=1,max=65535"`
	SMTPUsername string `json:"smtp_username,omitempty" yaml:"smtp_username,omitempty"`
	SMTPPassword string `json:"smtp_password,omitempty" yaml:"smtp_password,omitempty"`
}

// NewDefaultNotificationConfig creates default notification configuration
func NewDefaultNotificationConfig() NotificationConfig {
	return NotificationConfig{
		Enabled:  false,
		SMTPHost: "smtp.gmail.com",
		SMTPPort: 587,
	}
}
