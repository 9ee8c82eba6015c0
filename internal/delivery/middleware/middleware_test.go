package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"petfeeder/config"
	deliverycontext "petfeeder/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAcceptableRequestID(t *testing.T) {
	tests := map[string]bool{
		"":                        false,
		"feeder-42":               true,
		"has space":               false,
		"line\nbreak":             false,
		strings.Repeat("a", 64):   true,
		strings.Repeat("a", 65):   false,
		"3f0c7f9e-6a4e-4d8b-9f61": true,
	}

	for id, want := range tests {
		assert.Equal(t, want, acceptableRequestID(id), "%q", id)
	}
}

func TestRequestIDMiddleware_Process(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	e := echo.New()
	e.Use(NewRequestIDMiddleware(logger).Process)
	e.GET("/ping", func(c echo.Context) error {
		ctx := c.Request().Context()
		deliverycontext.GetLoggerOrDefault(ctx, nil).InfoContext(ctx, "pong")

		return c.String(http.StatusOK, deliverycontext.GetRequestIDFromContext(ctx))
	})

	t.Run("forwarded id is kept", func(t *testing.T) {
		buf.Reset()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(deliverycontext.HeaderXRequestID, "feeder-42")
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		assert.Equal(t, "feeder-42", rec.Body.String())
		assert.Equal(t, "feeder-42", rec.Header().Get(deliverycontext.HeaderXRequestID))
		assert.Contains(t, buf.String(), "request_id=feeder-42")
	})

	t.Run("unsafe id is replaced", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(deliverycontext.HeaderXRequestID, "a b")
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		assert.NotEqual(t, "a b", rec.Body.String())
		assert.Len(t, rec.Body.String(), 36)
	})
}

func TestLoggerMiddleware_Handle(t *testing.T) {
	newEcho := func(debug bool) (*echo.Echo, *bytes.Buffer) {
		var buf bytes.Buffer
		cfg := &config.Config{}
		cfg.Env.Debug = debug

		e := echo.New()
		e.Use(NewLoggerMiddleware(slog.New(slog.NewTextHandler(&buf, nil)), cfg).Handle)
		e.GET("/devices/verify/:id/:secret", func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		})
		e.GET("/boom", func(echo.Context) error {
			return echo.NewHTTPError(http.StatusBadGateway, "upstream")
		})

		return e, &buf
	}

	t.Run("debug logs the route template", func(t *testing.T) {
		e, buf := newEcho(true)
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/devices/verify/FEED01/s3cret", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, buf.String(), "route=/devices/verify/:id/:secret")
		assert.NotContains(t, buf.String(), "s3cret")
	})

	t.Run("quiet without debug", func(t *testing.T) {
		e, buf := newEcho(false)

		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/devices/verify/FEED01/s3cret", nil))

		assert.Empty(t, buf.String())
	})

	t.Run("errors are logged with the rendered status", func(t *testing.T) {
		e, buf := newEcho(false)
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

		assert.Equal(t, http.StatusBadGateway, rec.Code)
		assert.Contains(t, buf.String(), "level=ERROR")
		assert.Contains(t, buf.String(), "status=502")
	})
}
