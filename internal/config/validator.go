package config

import (
	"github.com/go-playground/validator/v10"

	"robotswatch/internal/common"
)

// ValidateConfig performs validation on the GlobalConfig structure.
func ValidateConfig(cfg *GlobalConfig) error {
	validate := validator.New()

	// Valid run modes
	_ = validate.RegisterValidation("runmode", func(fl validator.FieldLevel) bool {
		mode := fl.Field().String()
		return mode == "onetime" || mode == "automated"
	})

	if err := validate.Struct(cfg); err != nil {
		return common.WrapError(err, "config validation failed")
	}

	if cfg.NotificationConfig.Enabled {
		if cfg.NotificationConfig.SenderEmail == "" {
			return common.NewValidationError("sender_email", cfg.NotificationConfig.SenderEmail, "sender email required when notifications are enabled")
		}
		if cfg.NotificationConfig.SMTPHost == "" {
			return common.NewValidationError("smtp_host", cfg.NotificationConfig.SMTPHost, "SMTP host required when notifications are enabled")
		}
	}

	return nil
}
