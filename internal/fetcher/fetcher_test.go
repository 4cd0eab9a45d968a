package fetcher

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"robotswatch/internal/common"
	"robotswatch/internal/config"
)

// failingTransport fails every request with a plain connection error and
// counts the attempts.
type failingTransport struct {
	calls int
}

func (t *failingTransport) RoundTrip(*http.Request) (*http.Response, error) {
	t.calls++
	return nil, errors.New("connection refused")
}

func newTestFetcher(t *testing.T) *Fetcher {
	t.Helper()
	cfg := config.NewDefaultFetcherConfig()
	cfg.MaxAttempts = 3
	cfg.RetryWaitSeconds = 1
	f := NewFetcher(&cfg, zerolog.Nop())
	f.sleep = func(time.Duration) {}
	return f
}

func TestFetch_Success(t *testing.T) {
	var requestedPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestedPath = r.URL.Path
		_, _ = w.Write([]byte("User-agent: *\nDisallow: /private/\n"))
	}))
	defer server.Close()

	f := newTestFetcher(t)
	content, err := f.Fetch(context.Background(), server.URL+"/")

	require.NoError(t, err)
	assert.Equal(t, "User-agent: *\nDisallow: /private/\n", content)
	assert.Equal(t, "/robots.txt", requestedPath)
}

func TestFetch_NonOKStatusIsTerminal(t *testing.T) {
	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	f := newTestFetcher(t)
	_, err := f.Fetch(context.Background(), server.URL+"/")

	require.Error(t, err)
	var httpErr *common.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.StatusCode)
	assert.Equal(t, 1, requests, "non-200 statuses must not be retried")
}

func TestFetch_ConnectionErrorRetriesUpToMaxAttempts(t *testing.T) {
	transport := &failingTransport{}
	var waits []time.Duration

	f := newTestFetcher(t)
	f.httpClient.Transport = transport
	f.sleep = func(d time.Duration) { waits = append(waits, d) }

	_, err := f.Fetch(context.Background(), "http://unreachable.invalid/")

	require.Error(t, err)
	var netErr *common.NetworkError
	require.ErrorAs(t, err, &netErr)
	assert.Contains(t, err.Error(), "connection error")

	assert.Equal(t, 3, transport.calls)
	assert.Len(t, waits, 2, "no wait after the final attempt")
	for _, w := range waits {
		assert.Equal(t, time.Second, w)
	}
}

func TestFetch_RecoversAfterTransientFailure(t *testing.T) {
	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		_, _ = w.Write([]byte("User-agent: *\n"))
	}))
	defer server.Close()

	f := newTestFetcher(t)

	// Fail the first attempt at the transport, then hand requests back to the
	// default transport.
	failed := false
	f.httpClient.Transport = roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		if !failed {
			failed = true
			return nil, errors.New("connection reset")
		}
		return http.DefaultTransport.RoundTrip(req)
	})

	content, err := f.Fetch(context.Background(), server.URL+"/")
	require.NoError(t, err)
	assert.Equal(t, "User-agent: *\n", content)
	assert.Equal(t, 1, requests)
}

func TestFetch_RedirectNotFollowed(t *testing.T) {
	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		http.Redirect(w, r, "/elsewhere", http.StatusMovedPermanently)
	}))
	defer server.Close()

	f := newTestFetcher(t)
	_, err := f.Fetch(context.Background(), server.URL+"/")

	require.Error(t, err)
	var httpErr *common.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusMovedPermanently, httpErr.StatusCode)
	assert.Equal(t, 1, requests, "redirect target must not be requested")
}

func TestFetch_InvalidUTF8Replaced(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte{'o', 'k', 0xff, 0xfe})
	}))
	defer server.Close()

	f := newTestFetcher(t)
	content, err := f.Fetch(context.Background(), server.URL+"/")

	require.NoError(t, err)
	// Each run of invalid bytes collapses to one replacement character.
	assert.Equal(t, "ok�", content)
}

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}
