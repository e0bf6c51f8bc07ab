package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/headscan/core"
)

func TestFetch_ReturnsBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte("<html><body><h1>Hi</h1></body></html>"))
	}))
	defer ts.Close()

	result, err := NewWithClient(ts.Client()).Fetch(context.Background(), ts.URL)
	require.NoError(t, err)

	assert.Equal(t, ts.URL, result.URL)
	assert.Equal(t, http.StatusOK, result.StatusCode)
	assert.Equal(t, "<html><body><h1>Hi</h1></body></html>", result.HTML)
}

func TestFetch_NonSuccessStatusIsNotAnError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("<h1>Not Found</h1>"))
	}))
	defer ts.Close()

	result, err := NewWithClient(ts.Client()).Fetch(context.Background(), ts.URL)
	require.NoError(t, err)

	assert.Equal(t, http.StatusNotFound, result.StatusCode)
	assert.Equal(t, "<h1>Not Found</h1>", result.HTML)
}

func TestFetch_DecodesDeclaredCharset(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=iso-8859-1")
		// "Café" with é encoded as a single Latin-1 byte.
		_, _ = w.Write([]byte("<h1>Caf\xe9</h1>"))
	}))
	defer ts.Close()

	result, err := NewWithClient(ts.Client()).Fetch(context.Background(), ts.URL)
	require.NoError(t, err)

	assert.Equal(t, "<h1>Café</h1>", result.HTML)
}

func TestFetch_UndeclaredCharsetIsUTF8(t *testing.T) {
	page := "<p>" + strings.Repeat("a", 1100) + "</p><h1>Café</h1>"
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(page))
	}))
	defer ts.Close()

	result, err := NewWithClient(ts.Client()).Fetch(context.Background(), ts.URL)
	require.NoError(t, err)

	assert.Equal(t, page, result.HTML)
	assert.Contains(t, result.HTML, "<h1>Café</h1>")
}

func TestFetch_UnknownCharsetIsUTF8(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=no-such-charset")
		_, _ = w.Write([]byte("<h1>Café</h1>"))
	}))
	defer ts.Close()

	result, err := NewWithClient(ts.Client()).Fetch(context.Background(), ts.URL)
	require.NoError(t, err)

	assert.Equal(t, "<h1>Café</h1>", result.HTML)
}

func TestFetch_UnreachableHost(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	url := ts.URL
	ts.Close()

	_, err := New().Fetch(context.Background(), url)
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrNetwork)
	assert.Contains(t, err.Error(), url)
}

func TestFetch_InvalidURL(t *testing.T) {
	_, err := New().Fetch(context.Background(), "://missing-scheme")
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrNetwork)
}

func TestFetch_CanceledContext(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	defer ts.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewWithClient(ts.Client()).Fetch(ctx, ts.URL)
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrNetwork)
	assert.ErrorIs(t, err, context.Canceled)
}
