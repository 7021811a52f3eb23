package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"accounts/config"
	deliverycontext "accounts/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEcho(debug bool) (*echo.Echo, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	cfg := &config.Config{}
	cfg.Env.Debug = debug

	e := echo.New()
	e.Use(NewRequestIDMiddleware(logger).Process)
	e.Use(NewLoggerMiddleware(logger, cfg).Handle)

	e.GET("/ok", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/boom", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "down")
	})
	e.GET("/scoped", func(c echo.Context) error {
		id := deliverycontext.GetRequestIDFromContext(c.Request().Context())

		return c.String(http.StatusOK, id)
	})

	return e, &buf
}

func TestRequestIDMiddleware(t *testing.T) {
	e, _ := newTestEcho(false)

	t.Run("generates an id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/scoped", nil))

		id := rec.Header().Get(deliverycontext.HeaderXRequestID)
		require.NotEmpty(t, id)
		assert.Equal(t, id, rec.Body.String())
	})

	t.Run("keeps the caller's id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/scoped", nil)
		req.Header.Set(deliverycontext.HeaderXRequestID, "client-id")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, "client-id", rec.Header().Get(deliverycontext.HeaderXRequestID))
		assert.Equal(t, "client-id", rec.Body.String())
	})
}

func TestLoggerMiddleware(t *testing.T) {
	t.Run("quiet on success outside debug", func(t *testing.T) {
		e, buf := newTestEcho(false)
		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ok", nil))
		assert.Empty(t, buf.String())
	})

	t.Run("logs every request in debug", func(t *testing.T) {
		e, buf := newTestEcho(true)
		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ok", nil))
		assert.Contains(t, buf.String(), `"status":200`)
	})

	t.Run("logs failures with the rendered status", func(t *testing.T) {
		e, buf := newTestEcho(false)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Contains(t, buf.String(), `"status":503`)
		assert.Contains(t, buf.String(), `"level":"ERROR"`)
	})
}

func TestValidRequestID(t *testing.T) {
	assert.True(t, validRequestID("abc-123"))
	assert.False(t, validRequestID(""))
	assert.False(t, validRequestID("has space"))
	assert.False(t, validRequestID("line\nbreak"))
	assert.False(t, validRequestID(string(make([]byte, maxRequestIDLength+1))))
}
