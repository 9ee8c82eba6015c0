package handler_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"petfeeder/internal/delivery/api/middleware"
	"petfeeder/internal/delivery/api/router"
	"petfeeder/internal/delivery/api/router/handler"
	"petfeeder/internal/delivery/api/validator"
	deliverymiddleware "petfeeder/internal/delivery/middleware"
	"petfeeder/internal/domain/constants"
	"petfeeder/internal/domain/entity"
	domainerrors "petfeeder/internal/domain/errors"
	"petfeeder/internal/domain/schedule"
	"petfeeder/internal/domain/service"
	mockSvc "petfeeder/internal/mocks/service"
	mockUsecase "petfeeder/internal/mocks/usecase"
	"petfeeder/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	userToken   = "user-token"
	deviceToken = "device-token"
	deviceKey   = "device-key"
)

type apiFixtures struct {
	echo         *echo.Echo
	userID       uuid.UUID
	tokens       *mockSvc.MockTokenService
	deviceUC     *mockUsecase.MockDeviceUsecase
	heartbeatUC  *mockUsecase.MockHeartbeatUsecase
	eventUC      *mockUsecase.MockEventUsecase
	feederUC     *mockUsecase.MockFeederUsecase
	mealUC       *mockUsecase.MockMealUsecase
	feedingLogUC *mockUsecase.MockFeedingLogUsecase
	scheduleUC   *mockUsecase.MockScheduleUsecase
	petUC        *mockUsecase.MockPetUsecase
	settingsUC   *mockUsecase.MockSettingsUsecase
}

func newAPIFixtures(t *testing.T) apiFixtures {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	fx := apiFixtures{
		userID:       uuid.New(),
		tokens:       mockSvc.NewMockTokenService(t),
		deviceUC:     mockUsecase.NewMockDeviceUsecase(t),
		heartbeatUC:  mockUsecase.NewMockHeartbeatUsecase(t),
		eventUC:      mockUsecase.NewMockEventUsecase(t),
		feederUC:     mockUsecase.NewMockFeederUsecase(t),
		mealUC:       mockUsecase.NewMockMealUsecase(t),
		feedingLogUC: mockUsecase.NewMockFeedingLogUsecase(t),
		scheduleUC:   mockUsecase.NewMockScheduleUsecase(t),
		petUC:        mockUsecase.NewMockPetUsecase(t),
		settingsUC:   mockUsecase.NewMockSettingsUsecase(t),
	}

	fx.tokens.EXPECT().ValidateToken(userToken).
		Return(&service.Claims{UserID: fx.userID, Type: service.TokenTypeAccess}, nil).Maybe()
	fx.tokens.EXPECT().ValidateToken(deviceToken).
		Return(&service.Claims{UserID: fx.userID, Type: service.TokenTypeDevice}, nil).Maybe()

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError
	e.Use(deliverymiddleware.NewRequestIDMiddleware(logger).Process)

	r := router.NewRouter(router.RouterParams{
		DeviceHandler: handler.NewDeviceHandler(handler.DeviceHandlerParams{
			DeviceUC:     fx.deviceUC,
			HeartbeatUC:  fx.heartbeatUC,
			EventUC:      fx.eventUC,
			FeederUC:     fx.feederUC,
			MealUC:       fx.mealUC,
			FeedingLogUC: fx.feedingLogUC,
			Logger:       logger,
		}),
		FeederHandler: handler.NewFeederHandler(handler.FeederHandlerParams{
			DeviceUC:     fx.deviceUC,
			FeederUC:     fx.feederUC,
			MealUC:       fx.mealUC,
			FeedingLogUC: fx.feedingLogUC,
			Logger:       logger,
		}),
		ScheduleHandler: handler.NewScheduleHandler(handler.ScheduleHandlerParams{
			ScheduleUC: fx.scheduleUC,
			PetUC:      fx.petUC,
			Logger:     logger,
		}),
		SettingsHandler: handler.NewSettingsHandler(handler.SettingsHandlerParams{SettingsUC: fx.settingsUC}),
		AuthMiddleware:  middleware.NewAuthMiddleware(fx.tokens),
	})
	r.RegisterRoutes(e)
	fx.echo = e

	return fx
}

func (fx apiFixtures) do(method, path, token, body string, headers ...string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	return rec
}

func (fx apiFixtures) testOwner() *entity.DeviceOwner {
	return &entity.DeviceOwner{ID: uuid.New(), DeviceID: uuid.New(), UserID: fx.userID, Name: "Kitchen", DeviceKey: deviceKey}
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	body := decodeBody(t, rec)
	errInfo, ok := body["error"].(map[string]any)
	require.True(t, ok, "expected an error envelope, got %s", rec.Body.String())

	return errInfo["code"].(string)
}

func TestHealthCheck(t *testing.T) {
	fx := newAPIFixtures(t)

	rec := fx.do(http.MethodGet, "/health", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestDeviceHandler_Verify_StatusIsHTTPStatus(t *testing.T) {
	tests := []struct {
		name   string
		result *usecase.VerificationResult
	}{
		{name: "registered", result: &usecase.VerificationResult{Status: http.StatusOK, APIKey: "api", DeviceKey: "dk"}},
		{name: "added", result: &usecase.VerificationResult{Status: http.StatusCreated, Message: "Device ID ESP32-ab12-deadbeef added to database"}},
		{name: "wrong secret", result: &usecase.VerificationResult{Status: http.StatusForbidden, Message: "Invalid"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := newAPIFixtures(t)
			fx.deviceUC.EXPECT().Verify(mock.Anything, "ESP32-ab12-deadbeef", "s3cr3t").Return(tt.result, nil)

			rec := fx.do(http.MethodGet, "/api/v1/devices/verify/ESP32-ab12-deadbeef/s3cr3t", "", "")

			assert.Equal(t, tt.result.Status, rec.Code)
			body := decodeBody(t, rec)
			assert.InDelta(t, float64(tt.result.Status), body["status"], 0)
			assert.NotContains(t, body, "data")
		})
	}
}

func TestDeviceHandler_Heartbeat(t *testing.T) {
	fx := newAPIFixtures(t)
	entryID := uuid.New()

	fx.heartbeatUC.EXPECT().
		Process(mock.Anything, fx.userID, deviceKey, mock.MatchedBy(func(u entity.TelemetryUpdate) bool {
			return u.BatterySOC != nil && *u.BatterySOC == 87 && u.OnPower != nil && !*u.OnPower && u.FirmwareVersion == nil
		})).
		Return(&usecase.HeartbeatResult{
			Status:   http.StatusOK,
			HasEvent: true,
			Event:    &entity.EventQueueEntry{ID: entryID, Code: entity.EventFeedNow, Status: entity.EventStatusPending},
		}, nil)

	rec := fx.do(http.MethodPost, "/api/v1/device/heartbeat", deviceToken,
		`{"battery_soc": 87, "on_power": false, "uptime": 1234}`,
		constants.HeaderDeviceKey, deviceKey)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["has_event"])
	event := body["event"].(map[string]any)
	assert.Equal(t, entryID.String(), event["id"])
	assert.InDelta(t, 100, event["event_code"], 0)
}

func TestDeviceHandler_Heartbeat_Rejected(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		headers  []string
		body     string
		wantCode int
	}{
		{name: "no token", body: `{}`, headers: []string{constants.HeaderDeviceKey, deviceKey}, wantCode: http.StatusUnauthorized},
		{name: "no device key", token: deviceToken, body: `{}`, wantCode: http.StatusUnauthorized},
		{name: "malformed body", token: deviceToken, body: `{"battery_soc": `, headers: []string{constants.HeaderDeviceKey, deviceKey}, wantCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := newAPIFixtures(t)

			rec := fx.do(http.MethodPost, "/api/v1/device/heartbeat", tt.token, tt.body, tt.headers...)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestDeviceHandler_Heartbeat_UnknownKey(t *testing.T) {
	fx := newAPIFixtures(t)
	fx.heartbeatUC.EXPECT().Process(mock.Anything, fx.userID, "other", mock.Anything).Return(nil, domainerrors.ErrDeviceKeyInvalid)

	rec := fx.do(http.MethodPost, "/api/v1/device/heartbeat", userToken, `{}`, constants.HeaderDeviceKey, "other")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "DEVICE_KEY_INVALID", errorCode(t, rec))
}

func TestDeviceHandler_CompleteEvent(t *testing.T) {
	fx := newAPIFixtures(t)
	owner := fx.testOwner()
	entryID := uuid.New()

	fx.feederUC.EXPECT().Authenticate(mock.Anything, fx.userID, deviceKey).Return(owner, nil)
	fx.eventUC.EXPECT().Complete(mock.Anything, owner, entryID).Return(&usecase.CompletionResult{
		Status: http.StatusOK,
		Event:  &entity.EventQueueEntry{ID: entryID, Status: entity.EventStatusCompleted},
	}, nil)

	rec := fx.do(http.MethodPost, "/api/v1/device/events/complete", deviceToken,
		`{"id":"`+entryID.String()+`"}`, constants.HeaderDeviceKey, deviceKey)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "completed", body["event"].(map[string]any)["status"])
}

func TestDeviceHandler_CompleteEvent_Errors(t *testing.T) {
	t.Run("foreign entry", func(t *testing.T) {
		fx := newAPIFixtures(t)
		owner := fx.testOwner()
		entryID := uuid.New()
		fx.feederUC.EXPECT().Authenticate(mock.Anything, fx.userID, deviceKey).Return(owner, nil)
		fx.eventUC.EXPECT().Complete(mock.Anything, owner, entryID).Return(nil, domainerrors.ErrEventNotFound)

		rec := fx.do(http.MethodPost, "/api/v1/device/events/complete", deviceToken,
			`{"id":"`+entryID.String()+`"}`, constants.HeaderDeviceKey, deviceKey)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "EVENT_NOT_FOUND", errorCode(t, rec))
	})

	t.Run("missing id", func(t *testing.T) {
		fx := newAPIFixtures(t)
		fx.feederUC.EXPECT().Authenticate(mock.Anything, fx.userID, deviceKey).Return(fx.testOwner(), nil)

		rec := fx.do(http.MethodPost, "/api/v1/device/events/complete", deviceToken, `{}`, constants.HeaderDeviceKey, deviceKey)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", errorCode(t, rec))
	})

	t.Run("database failure stays generic", func(t *testing.T) {
		fx := newAPIFixtures(t)
		owner := fx.testOwner()
		entryID := uuid.New()
		fx.feederUC.EXPECT().Authenticate(mock.Anything, fx.userID, deviceKey).Return(owner, nil)
		fx.eventUC.EXPECT().Complete(mock.Anything, owner, entryID).
			Return(nil, domainerrors.NewDatabaseExecuteError(errors.New("pq: deadlock detected"), "failed to complete event"))

		rec := fx.do(http.MethodPost, "/api/v1/device/events/complete", deviceToken,
			`{"id":"`+entryID.String()+`"}`, constants.HeaderDeviceKey, deviceKey)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "deadlock")
	})
}

func TestDeviceHandler_RecordFeeding(t *testing.T) {
	fx := newAPIFixtures(t)
	owner := fx.testOwner()

	fx.feederUC.EXPECT().Authenticate(mock.Anything, fx.userID, deviceKey).Return(owner, nil)
	fx.feedingLogUC.EXPECT().
		Record(mock.Anything, owner, mock.MatchedBy(func(in *usecase.FeedingLogInput) bool {
			return in.FeedType == entity.FeedTypeManual && in.FeedAmount == entity.Portion{Num: 1, Den: 4} && in.FedAt.IsZero()
		})).
		Return(&entity.FeedingLog{ID: uuid.New(), FeedType: entity.FeedTypeManual}, nil)

	rec := fx.do(http.MethodPost, "/api/v1/device/feeding-logs", deviceToken,
		`{"feed_type":"M","feed_amount":"1/4"}`, constants.HeaderDeviceKey, deviceKey)

	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

func TestDeviceHandler_NextMeal(t *testing.T) {
	fx := newAPIFixtures(t)
	owner := fx.testOwner()
	meal := schedule.NoMeal()

	fx.feederUC.EXPECT().Authenticate(mock.Anything, fx.userID, deviceKey).Return(owner, nil)
	fx.mealUC.EXPECT().NextFeedingForDevice(mock.Anything, owner, "Europe/Berlin").Return(&meal, nil)

	rec := fx.do(http.MethodGet, "/api/v1/device/next-meal?tz=Europe/Berlin", deviceToken, "", constants.HeaderDeviceKey, deviceKey)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, false, body["has_meal"])
}

func TestFeederHandler_RequiresUserToken(t *testing.T) {
	fx := newAPIFixtures(t)

	rec := fx.do(http.MethodGet, "/api/v1/feeders", deviceToken, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestFeederHandler_Activate(t *testing.T) {
	t.Run("owned by another user", func(t *testing.T) {
		fx := newAPIFixtures(t)
		fx.deviceUC.EXPECT().
			Activate(mock.Anything, fx.userID, &usecase.ActivateInput{Identifier: "ESP32-ab12-deadbeef", ActivationCode: "code"}).
			Return(nil, domainerrors.ErrDeviceOwnedByOther)

		rec := fx.do(http.MethodPost, "/api/v1/feeders/activate", userToken, `{"device_id":"ESP32-ab12-deadbeef","activation_code":"code"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "DEVICE_OWNED_BY_OTHER", errorCode(t, rec))
	})

	t.Run("missing activation code", func(t *testing.T) {
		fx := newAPIFixtures(t)

		rec := fx.do(http.MethodPost, "/api/v1/feeders/activate", userToken, `{"device_id":"ESP32-ab12-deadbeef"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeBody(t, rec)
		details := body["error"].(map[string]any)["details"].(map[string]any)
		assert.Equal(t, "required", details["ActivationCode"])
	})

	t.Run("created", func(t *testing.T) {
		fx := newAPIFixtures(t)
		owner := fx.testOwner()
		fx.deviceUC.EXPECT().Activate(mock.Anything, fx.userID, mock.AnythingOfType("*usecase.ActivateInput")).Return(owner, nil)

		rec := fx.do(http.MethodPost, "/api/v1/feeders/activate", userToken,
			`{"device_id":"ESP32-ab12-deadbeef","activation_code":"code","name":"Kitchen"}`)

		require.Equal(t, http.StatusCreated, rec.Code)
		body := decodeBody(t, rec)
		data := body["data"].(map[string]any)
		assert.Equal(t, owner.ID.String(), data["id"])
		assert.NotContains(t, data, "device_key")
		assert.NotEmpty(t, body["meta"].(map[string]any)["request_id"])
	})
}

func TestFeederHandler_Feed(t *testing.T) {
	fx := newAPIFixtures(t)
	ownerID := uuid.New()
	timingID := uuid.New()

	fx.feederUC.EXPECT().RequestFeed(mock.Anything, fx.userID, ownerID, &timingID).
		Return(&entity.EventQueueEntry{ID: uuid.New(), DeviceOwnerID: ownerID, Code: entity.EventFeedNow}, nil)

	rec := fx.do(http.MethodPost, "/api/v1/feeders/"+ownerID.String()+"/feed", userToken, `{"motor_timing_id":"`+timingID.String()+`"}`)

	require.Equal(t, http.StatusAccepted, rec.Code)
	data := decodeBody(t, rec)["data"].(map[string]any)
	assert.InDelta(t, 100, data["event_code"], 0)
}

func TestFeederHandler_Feed_NoBodyUsesDefault(t *testing.T) {
	fx := newAPIFixtures(t)
	ownerID := uuid.New()

	fx.feederUC.EXPECT().RequestFeed(mock.Anything, fx.userID, ownerID, (*uuid.UUID)(nil)).
		Return(&entity.EventQueueEntry{ID: uuid.New(), Code: entity.EventFeedNow}, nil)

	rec := fx.do(http.MethodPost, "/api/v1/feeders/"+ownerID.String()+"/feed", userToken, "")

	assert.Equal(t, http.StatusAccepted, rec.Code)
}

func TestFeederHandler_MalformedIDIsNotFound(t *testing.T) {
	fx := newAPIFixtures(t)

	rec := fx.do(http.MethodGet, "/api/v1/feeders/not-a-uuid/schedules", userToken, "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "FEEDER_NOT_FOUND", errorCode(t, rec))
}

func TestFeederHandler_FeedingLogs_Limit(t *testing.T) {
	fx := newAPIFixtures(t)
	ownerID := uuid.New()

	rec := fx.do(http.MethodGet, "/api/v1/feeders/"+ownerID.String()+"/feeding-logs?limit=ten", userToken, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	fx.feedingLogUC.EXPECT().List(mock.Anything, fx.userID, ownerID, 20).Return([]*entity.FeedingLog{}, nil)
	rec = fx.do(http.MethodGet, "/api/v1/feeders/"+ownerID.String()+"/feeding-logs?limit=20", userToken, "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestFeederHandler_NextMeals(t *testing.T) {
	fx := newAPIFixtures(t)
	ownerID := uuid.New()
	meal := schedule.NoMeal()
	meal.DeviceOwnerID = &ownerID

	fx.mealUC.EXPECT().NextFeedings(mock.Anything, fx.userID, "").Return([]*schedule.NextMeal{&meal}, nil)

	rec := fx.do(http.MethodGet, "/api/v1/feeders/next-meals", userToken, "")

	require.Equal(t, http.StatusOK, rec.Code)
	data := decodeBody(t, rec)["data"].([]any)
	require.Len(t, data, 1)
	assert.Equal(t, ownerID.String(), data[0].(map[string]any)["device_owner_id"])
}

func TestScheduleHandler_Create(t *testing.T) {
	fx := newAPIFixtures(t)
	ownerID := uuid.New()
	petID := uuid.New()
	timingID := uuid.New()

	fx.scheduleUC.EXPECT().
		Create(mock.Anything, fx.userID, ownerID, &usecase.ScheduleInput{
			PetID:         petID,
			MotorTimingID: timingID,
			Label:         "Breakfast",
			Days:          entity.AllDays,
			Time:          "06:30",
			Active:        true,
		}).
		Return(&entity.FeedingSchedule{ID: uuid.New(), DeviceOwnerID: ownerID}, nil)

	rec := fx.do(http.MethodPost, "/api/v1/feeders/"+ownerID.String()+"/schedules", userToken,
		`{"pet_id":"`+petID.String()+`","motor_timing_id":"`+timingID.String()+`","label":"Breakfast","dow":127,"time":"06:30"}`)

	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

func TestScheduleHandler_Delete_UnknownSchedule(t *testing.T) {
	fx := newAPIFixtures(t)
	ownerID := uuid.New()
	scheduleID := uuid.New()

	fx.scheduleUC.EXPECT().Delete(mock.Anything, fx.userID, ownerID, scheduleID).Return(domainerrors.ErrScheduleNotFound)

	rec := fx.do(http.MethodDelete, "/api/v1/feeders/"+ownerID.String()+"/schedules/"+scheduleID.String(), userToken, "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "SCHEDULE_NOT_FOUND", errorCode(t, rec))
}

func TestScheduleHandler_CreatePet(t *testing.T) {
	fx := newAPIFixtures(t)

	rec := fx.do(http.MethodPost, "/api/v1/pets", userToken, `{"name":""}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	fx.petUC.EXPECT().Create(mock.Anything, fx.userID, "Miso").Return(&entity.Pet{ID: uuid.New(), Name: "Miso"}, nil)
	rec = fx.do(http.MethodPost, "/api/v1/pets", userToken, `{"name":"Miso"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestSettingsHandler_Update(t *testing.T) {
	fx := newAPIFixtures(t)

	fx.settingsUC.EXPECT().
		Update(mock.Anything, fx.userID, mock.MatchedBy(func(patch entity.SettingsRecord) bool {
			return patch.Timezone != nil && *patch.Timezone == "Europe/Berlin" && patch.Clock24h == nil
		})).
		Return(&entity.UserSettings{UserID: fx.userID}, nil)

	rec := fx.do(http.MethodPut, "/api/v1/settings", userToken, `{"timezone":"Europe/Berlin"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSettingsHandler_UpdateNotifications(t *testing.T) {
	fx := newAPIFixtures(t)

	fx.settingsUC.EXPECT().
		UpdateNotificationSettings(mock.Anything, fx.userID, mock.MatchedBy(func(s *entity.NotificationSettings) bool {
			return s.PushoverUserKey == "u-key" && s.FeederOffline && !s.LowBattery
		})).
		RunAndReturn(func(_ context.Context, userID uuid.UUID, s *entity.NotificationSettings) (*entity.NotificationSettings, error) {
			s.UserID = userID

			return s, nil
		})

	rec := fx.do(http.MethodPut, "/api/v1/settings/notifications", userToken, `{"pushover_user_key":"u-key","feeder_offline":true}`)

	require.Equal(t, http.StatusOK, rec.Code)
	data := decodeBody(t, rec)["data"].(map[string]any)
	assert.Equal(t, fx.userID.String(), data["user_id"])
}
