package worker

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"petfeeder/config"
	"petfeeder/internal/delivery/worker/handler"
	mockUsecase "petfeeder/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
)

func newTestEcho(t *testing.T) http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{PubSub: &config.PubSubConfig{}}

	pushHandler := handler.NewPushHandler(handler.PushHandlerParams{
		Config:     cfg,
		Logger:     logger,
		DispatchUC: mockUsecase.NewMockDispatchUsecase(t),
	})

	return NewEcho(cfg, logger, pushHandler)
}

func TestNewEcho_Health(t *testing.T) {
	rec := httptest.NewRecorder()

	newTestEcho(t).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestNewEcho_PushBodyLimit(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(strings.Repeat("x", 65*1024)))
	req.Header.Set("Content-Type", "application/json")

	newTestEcho(t).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}
