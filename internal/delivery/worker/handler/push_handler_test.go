package handler

import (
	"context"
	"encoding/base64"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"petfeeder/config"
	"petfeeder/internal/domain/constants"
	mockUsecase "petfeeder/internal/mocks/usecase"
	"petfeeder/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"google.golang.org/api/idtoken"
)

func newTestPushHandler(t *testing.T, provider string) (*PushHandler, *mockUsecase.MockDispatchUsecase) {
	dispatchUC := mockUsecase.NewMockDispatchUsecase(t)

	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: provider, PushAudience: "https://notifier.example.com/push"}}
	cfg.Env.Env = constants.EnvProduction

	h := NewPushHandler(PushHandlerParams{
		Config:     cfg,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		DispatchUC: dispatchUC,
	})

	return h, dispatchUC
}

func pushBody(data string) string {
	encoded := base64.StdEncoding.EncodeToString([]byte(data))

	return `{"message":{"data":"` + encoded + `","messageId":"m-1"},"subscription":"projects/p/subscriptions/s"}`
}

func servePush(h *PushHandler, body string, headers ...string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func TestPushHandler_HandlePush(t *testing.T) {
	id := uuid.New()
	body := pushBody(`{"request_id":"req-1","message_ids":["` + id.String() + `","not-a-uuid"]}`)

	t.Run("dispatches the announced messages", func(t *testing.T) {
		h, dispatchUC := newTestPushHandler(t, constants.PubSubProviderLocal)
		dispatchUC.EXPECT().DispatchMessages(mock.Anything, []uuid.UUID{id}).Return(&usecase.DispatchReport{Sent: 1}, nil)

		rec := servePush(h, body)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("asks for redelivery when dispatch fails", func(t *testing.T) {
		h, dispatchUC := newTestPushHandler(t, constants.PubSubProviderLocal)
		dispatchUC.EXPECT().DispatchMessages(mock.Anything, []uuid.UUID{id}).Return(nil, errors.New("connection refused"))

		rec := servePush(h, body)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("no valid ids", func(t *testing.T) {
		h, _ := newTestPushHandler(t, constants.PubSubProviderLocal)

		rec := servePush(h, pushBody(`{"message_ids":["nope"]}`))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("data is not base64", func(t *testing.T) {
		h, _ := newTestPushHandler(t, constants.PubSubProviderLocal)

		rec := servePush(h, `{"message":{"data":"%%%"}}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("data is not an event", func(t *testing.T) {
		h, _ := newTestPushHandler(t, constants.PubSubProviderLocal)

		rec := servePush(h, pushBody(`[1,2`))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestPushHandler_VerifiesGoogleTokens(t *testing.T) {
	id := uuid.New()
	body := pushBody(`{"message_ids":["` + id.String() + `"]}`)

	t.Run("missing token", func(t *testing.T) {
		h, _ := newTestPushHandler(t, constants.PubSubProviderGoogle)

		rec := servePush(h, body)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("foreign issuer", func(t *testing.T) {
		h, _ := newTestPushHandler(t, constants.PubSubProviderGoogle)
		h.validateToken = func(_ context.Context, _, _ string) (*idtoken.Payload, error) {
			return &idtoken.Payload{Issuer: "https://evil.example.com"}, nil
		}

		rec := servePush(h, body, echo.HeaderAuthorization, "Bearer token")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		h, dispatchUC := newTestPushHandler(t, constants.PubSubProviderGoogle)
		var gotAudience string
		h.validateToken = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
			gotAudience = audience

			return &idtoken.Payload{Issuer: "https://accounts.google.com", Claims: map[string]any{"email_verified": true}}, nil
		}
		dispatchUC.EXPECT().DispatchMessages(mock.Anything, []uuid.UUID{id}).Return(&usecase.DispatchReport{Sent: 1}, nil)

		rec := servePush(h, body, echo.HeaderAuthorization, "Bearer token")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "https://notifier.example.com/push", gotAudience)
	})
}
