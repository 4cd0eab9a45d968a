package urlhandler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"robotswatch/internal/common"
)

func TestValidateSiteURL_Valid(t *testing.T) {
	assert.NoError(t, ValidateSiteURL("https://www.example.com/"))
	assert.NoError(t, ValidateSiteURL("http://example.com/blog/"))
}

func TestValidateSiteURL_Invalid(t *testing.T) {
	cases := []struct {
		name string
		url  string
	}{
		{"missing scheme", "example.com/"},
		{"missing trailing slash", "https://example.com"},
		{"empty", ""},
		{"relative path", "/robots.txt/"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateSiteURL(tc.url)
			require.Error(t, err)

			var vErr *common.ValidationError
			assert.ErrorAs(t, err, &vErr)
			assert.Equal(t, "url", vErr.Field)
		})
	}
}

func TestSiteKey(t *testing.T) {
	cases := []struct {
		name     string
		url      string
		expected string
	}{
		{"bare host", "https://www.example.com/", "www.example.com"},
		{"host with path", "https://example.com/blog/", "example.com/blog"},
		{"no trailing slash", "https://example.com/blog", "example.com/blog"},
		{"port becomes underscore", "http://localhost:8080/", "localhost_8080"},
		{"surrounding whitespace", "  https://example.com/  ", "example.com"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			key, err := SiteKey(tc.url)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, key)
		})
	}
}

func TestSiteKey_CollapsesUnsafeCharacters(t *testing.T) {
	key, err := SiteKey("https://example.com/a b(c)/")
	require.NoError(t, err)
	assert.Equal(t, "example.com/a_b_c", key)
}

func TestSiteKey_NoHost(t *testing.T) {
	_, err := SiteKey("not a url")
	require.Error(t, err)

	var vErr *common.ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestRobotsURL(t *testing.T) {
	assert.Equal(t, "https://www.example.com/robots.txt", RobotsURL("https://www.example.com/"))
	assert.Equal(t, "https://example.com/blog/robots.txt", RobotsURL("https://example.com/blog/"))
}
