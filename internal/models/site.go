package models

// Site describes one monitored website, as read from the site list.
// URL is the absolute homepage URL with a trailing slash and serves as the
// site's identity. Email may be empty, in which case the owner receives no
// notifications.
type Site struct {
	URL   string
	Name  string
	Email string
}
