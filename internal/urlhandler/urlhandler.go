package urlhandler

import (
	"net/url"
	"regexp"
	"strings"

	"robotswatch/internal/common"
)

// Regex for cleaning site keys
var (
	unsafeKeyCharsRegex      = regexp.MustCompile(`[^a-zA-Z0-9_./-]+`)
	multipleUnderscoresRegex = regexp.MustCompile(`_+`)
)

// ValidateSiteURL checks that a site URL is absolute with an http scheme and
// ends in a slash. It performs no network access.
func ValidateSiteURL(rawURL string) error {
	if !strings.HasPrefix(rawURL, "http") || !strings.HasSuffix(rawURL, "/") {
		return common.NewValidationError("url", rawURL,
			"site URL must be absolute and end in a slash, e.g. 'https://www.example.com/'")
	}
	return nil
}

// SiteKey derives the filesystem key for a site from its URL: the
// scheme-stripped host plus path with the trailing slash removed, cleaned of
// characters that are unsafe in file names. Path separators are preserved so
// sites on the same host nest under a common directory.
func SiteKey(rawURL string) (string, error) {
	parsed, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return "", common.WrapErrorf(err, "could not parse site URL '%s'", rawURL)
	}
	if parsed.Host == "" {
		return "", common.NewValidationError("url", rawURL, "site URL lacks a hostname")
	}

	key := parsed.Host + parsed.Path
	key = strings.TrimSuffix(key, "/")

	key = unsafeKeyCharsRegex.ReplaceAllString(key, "_")
	key = multipleUnderscoresRegex.ReplaceAllString(key, "_")
	key = strings.Trim(key, "_")

	if key == "" {
		return "", common.NewValidationError("url", rawURL, "site URL produced an empty storage key")
	}

	return key, nil
}

// RobotsURL returns the robots.txt URL for a site's base URL.
func RobotsURL(siteURL string) string {
	return siteURL + "robots.txt"
}
