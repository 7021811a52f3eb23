package context

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newEchoContext() echo.Context {
	return echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
}

func TestRequestID(t *testing.T) {
	c := newEchoContext()
	generated := GetRequestID(c)
	assert.NotEmpty(t, generated)

	SetRequestID(c, "req-1")
	assert.Equal(t, "req-1", GetRequestID(c))

	ctx := WithRequestID(context.Background(), "req-2")
	assert.Equal(t, "req-2", GetRequestIDFromContext(ctx))
	assert.Empty(t, GetRequestIDFromContext(context.Background()))
}

func TestGetLoggerOrDefault(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))
	scoped := fallback.With(slog.String("request_id", "r"))

	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
	assert.Same(t, scoped, GetLoggerOrDefault(WithLogger(context.Background(), scoped), fallback))
}

func TestBearerToken(t *testing.T) {
	c := newEchoContext()

	_, ok := GetBearerToken(c)
	assert.False(t, ok)

	SetBearerToken(c, "abc")
	token, ok := GetBearerToken(c)
	assert.True(t, ok)
	assert.Equal(t, "abc", token)
}
