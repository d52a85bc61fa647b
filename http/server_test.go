package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	cmdlib "github.com/dockers-x/LinuxCommandLibrary"
	"github.com/dockers-x/LinuxCommandLibrary/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServer_CORS(t *testing.T) {
	t.Parallel()

	t.Run("sets open headers when enabled", func(t *testing.T) {
		t.Parallel()

		s := newTestServer(t)
		s.EnableCORS = true

		rec := httptest.NewRecorder()
		s.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/health", nil))

		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("answers preflight requests", func(t *testing.T) {
		t.Parallel()

		s := newTestServer(t)
		s.EnableCORS = true

		rec := httptest.NewRecorder()
		s.Handler().ServeHTTP(rec, httptest.NewRequest("OPTIONS", "/api/search", nil))

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("omits headers when disabled", func(t *testing.T) {
		t.Parallel()

		s := newTestServer(t)

		rec := httptest.NewRecorder()
		s.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/health", nil))

		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestServer_Index(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.True(t, strings.Contains(rec.Body.String(), "Linux Command Library"))
}

func TestServer_OpenClose(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)
	s.Addr = "127.0.0.1:0"
	s.CommandService = &mock.CommandService{
		SearchCommandsFn: func(ctx context.Context, q string, limit int) ([]*cmdlib.Command, error) {
			return []*cmdlib.Command{}, nil
		},
	}

	require.NoError(t, s.Open())
	defer s.Close()

	resp, err := http.Get(s.URL() + "/api/search?q=x")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	require.NoError(t, s.Close())
}
