package models

// EmailMessage is the notification payload handed to the mailer: destination
// address, subject line, plain-text body and zero or more attachment paths.
type EmailMessage struct {
	Address     string
	Subject     string
	Body        string
	Attachments []string
}
