package handler

import (
	"log/slog"
	"net/http"
	"time"

	"petfeeder/internal/delivery/api/middleware"
	"petfeeder/internal/delivery/api/response"
	deliverycontext "petfeeder/internal/delivery/context"
	"petfeeder/internal/domain/entity"
	domainerrors "petfeeder/internal/domain/errors"
	"petfeeder/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DeviceHandlerParams holds dependencies for DeviceHandler, injected by Fx.
type DeviceHandlerParams struct {
	fx.In

	DeviceUC     usecase.DeviceUsecase
	HeartbeatUC  usecase.HeartbeatUsecase
	EventUC      usecase.EventUsecase
	FeederUC     usecase.FeederUsecase
	MealUC       usecase.MealUsecase
	FeedingLogUC usecase.FeedingLogUsecase
	Logger       *slog.Logger
}

// DeviceHandler serves the routes called by feeder firmware. Bodies are flat,
// without the user API envelope.
type DeviceHandler struct {
	deviceUC     usecase.DeviceUsecase
	heartbeatUC  usecase.HeartbeatUsecase
	eventUC      usecase.EventUsecase
	feederUC     usecase.FeederUsecase
	mealUC       usecase.MealUsecase
	feedingLogUC usecase.FeedingLogUsecase
	logger       *slog.Logger
}

// NewDeviceHandler is the constructor for DeviceHandler
func NewDeviceHandler(params DeviceHandlerParams) *DeviceHandler {
	return &DeviceHandler{
		deviceUC:     params.DeviceUC,
		heartbeatUC:  params.HeartbeatUC,
		eventUC:      params.EventUC,
		feederUC:     params.FeederUC,
		mealUC:       params.MealUC,
		feedingLogUC: params.FeedingLogUC,
		logger:       params.Logger,
	}
}

// CompleteEventRequest acknowledges a queued command.
type CompleteEventRequest struct {
	ID uuid.UUID `json:"id" validate:"required"`
}

// FeedingLogRequest is a dispense report from the device.
type FeedingLogRequest struct {
	FeedType   entity.FeedType `json:"feed_type" validate:"required,oneof=M S R"`
	PetName    string          `json:"pet_name" validate:"max=100"`
	FeedAmount entity.Portion  `json:"feed_amount"`
	FedAt      *time.Time      `json:"fed_at"`
}

// Verify is called by devices on boot. The status in the body is also the
// HTTP status.
func (h *DeviceHandler) Verify(c echo.Context) error {
	result, err := h.deviceUC.Verify(c.Request().Context(), c.Param("device_id"), c.Param("secret"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Device(c, result.Status, result)
}

func (h *DeviceHandler) Heartbeat(c echo.Context) error {
	userID, deviceKey, err := deviceCredentials(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var telemetry entity.TelemetryUpdate
	if err := c.Bind(&telemetry); err != nil {
		return response.BindingError(c)
	}

	result, err := h.heartbeatUC.Process(c.Request().Context(), userID, deviceKey, telemetry)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Device(c, http.StatusOK, result)
}

func (h *DeviceHandler) CompleteEvent(c echo.Context) error {
	owner, err := h.owner(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req CompleteEventRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c)
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	result, err := h.eventUC.Complete(c.Request().Context(), owner, req.ID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Device(c, http.StatusOK, result)
}

func (h *DeviceHandler) NextMeal(c echo.Context) error {
	owner, err := h.owner(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	meal, err := h.mealUC.NextFeedingForDevice(c.Request().Context(), owner, c.QueryParam("tz"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Device(c, http.StatusOK, meal)
}

func (h *DeviceHandler) RecordFeeding(c echo.Context) error {
	owner, err := h.owner(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req FeedingLogRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c)
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	input := &usecase.FeedingLogInput{
		FeedType:   req.FeedType,
		PetName:    req.PetName,
		FeedAmount: req.FeedAmount,
	}
	if req.FedAt != nil {
		input.FedAt = *req.FedAt
	}

	record, err := h.feedingLogUC.Record(c.Request().Context(), owner, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Device(c, http.StatusCreated, record)
}

func (h *DeviceHandler) owner(c echo.Context) (*entity.DeviceOwner, error) {
	userID, deviceKey, err := deviceCredentials(c)
	if err != nil {
		return nil, err
	}

	owner, err := h.feederUC.Authenticate(c.Request().Context(), userID, deviceKey)
	if err != nil {
		return nil, err
	}

	ctx := deliverycontext.WithLogAttrs(c.Request().Context(), h.logger, slog.String("device_owner_id", owner.ID.String()))
	c.SetRequest(c.Request().WithContext(ctx))

	return owner, nil
}

func deviceCredentials(c echo.Context) (uuid.UUID, string, error) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return uuid.Nil, "", domainerrors.ErrUnauthorized
	}
	deviceKey, ok := middleware.GetDeviceKey(c)
	if !ok {
		return uuid.Nil, "", domainerrors.ErrDeviceKeyInvalid
	}

	return userID, deviceKey, nil
}
