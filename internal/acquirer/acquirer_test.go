package acquirer

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafaelandrade/intelligent-resume-matcher/internal/config"
	"github.com/rafaelandrade/intelligent-resume-matcher/pkg/models"
)

type fakeRenderEngine struct {
	text  string
	err   error
	calls int
}

func (f *fakeRenderEngine) Fetch(ctx context.Context, url string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.text, nil
}

func (f *fakeRenderEngine) Name() string { return "fake" }
func (f *fakeRenderEngine) Cleanup()     {}

func acquirerConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Fetcher.StaticTimeout = 5 * time.Second
	cfg.Fetcher.MinContentLength = 100
	cfg.Fetcher.DomainRateLimit = 600
	cfg.Fetcher.UserAgent = "test-agent"
	return cfg
}

// Long enough to clear the minimum content threshold
var longPosting = strings.Repeat("We are hiring a Go engineer to build distributed services. ", 5)

func TestResolveLiteralTextPassesThrough(t *testing.T) {
	a := NewWithEngine(acquirerConfig(), &fakeRenderEngine{})

	input := "We need a backend engineer with 5 years experience building APIs."
	result := a.Resolve(context.Background(), input)

	require.True(t, result.Success)
	assert.Equal(t, models.MethodLiteral, result.Method)
	assert.Equal(t, input, result.Content)
	assert.False(t, result.IsPositionClosed)
}

func TestResolveLiteralClosedPosition(t *testing.T) {
	a := NewWithEngine(acquirerConfig(), &fakeRenderEngine{})

	result := a.Resolve(context.Background(), "This role is currently no longer accepting new applications.")

	require.True(t, result.Success)
	assert.True(t, result.IsPositionClosed)
}

func TestResolveStaticFetchSucceeds(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-agent", r.Header.Get("User-Agent"))
		w.Write([]byte(`<html><body><div class="job-description">` + longPosting + `</div></body></html>`))
	}))
	defer server.Close()

	render := &fakeRenderEngine{}
	a := NewWithEngine(acquirerConfig(), render)

	result := a.Resolve(context.Background(), server.URL+"/job/1")

	require.True(t, result.Success)
	assert.Equal(t, models.MethodStaticFetch, result.Method)
	assert.Contains(t, result.Content, "Go engineer")
	assert.Equal(t, 0, render.calls, "rendered tier must not run when static fetch succeeds")
}

func TestResolveFallsBackToRenderedFetch(t *testing.T) {
	// Static tier fails on short content
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body><div id="app"></div></body></html>`))
	}))
	defer server.Close()

	render := &fakeRenderEngine{text: longPosting}
	a := NewWithEngine(acquirerConfig(), render)

	result := a.Resolve(context.Background(), server.URL+"/job/1")

	require.True(t, result.Success)
	assert.Equal(t, models.MethodRenderedFetch, result.Method)
	assert.Equal(t, 1, render.calls)
	assert.Contains(t, result.Content, "Go engineer")
}

func TestResolveMinContentThresholdCountsCharacters(t *testing.T) {
	// 80 characters of accented text is 160 bytes of UTF-8; the static
	// tier must still treat it as below the threshold and escalate
	short := strings.Repeat("çã", 40)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body><div class="job-description">` + short + `</div></body></html>`))
	}))
	defer server.Close()

	render := &fakeRenderEngine{text: longPosting}
	a := NewWithEngine(acquirerConfig(), render)

	result := a.Resolve(context.Background(), server.URL+"/job/1")

	require.True(t, result.Success)
	assert.Equal(t, models.MethodRenderedFetch, result.Method)
	assert.Equal(t, 1, render.calls)
}

func TestResolveFallsBackOnHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	render := &fakeRenderEngine{text: longPosting}
	a := NewWithEngine(acquirerConfig(), render)

	result := a.Resolve(context.Background(), server.URL+"/job/1")

	require.True(t, result.Success)
	assert.Equal(t, models.MethodRenderedFetch, result.Method)
}

func TestResolveBothTiersFail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	render := &fakeRenderEngine{err: errors.New("navigation timeout")}
	a := NewWithEngine(acquirerConfig(), render)

	result := a.Resolve(context.Background(), server.URL+"/job/1")

	assert.False(t, result.Success)
	assert.Empty(t, result.Content)
	assert.NotEmpty(t, result.Error)
}

func TestResolveDetectsClosedPositionFromFetchedPage(t *testing.T) {
	page := `<html><body><div class="job-description">` + longPosting +
		` This role is currently no longer accepting new applications.</div></body></html>`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(page))
	}))
	defer server.Close()

	a := NewWithEngine(acquirerConfig(), &fakeRenderEngine{})

	result := a.Resolve(context.Background(), server.URL+"/job/closed")

	require.True(t, result.Success)
	assert.True(t, result.IsPositionClosed)
}
