package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"petfeeder/internal/delivery/api/response"
	domainerrors "petfeeder/internal/domain/errors"
	"petfeeder/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// FeederHandlerParams holds dependencies for FeederHandler, injected by Fx.
type FeederHandlerParams struct {
	fx.In

	DeviceUC     usecase.DeviceUsecase
	FeederUC     usecase.FeederUsecase
	MealUC       usecase.MealUsecase
	FeedingLogUC usecase.FeedingLogUsecase
	Logger       *slog.Logger
}

// FeederHandler serves the owner side of feeder management.
type FeederHandler struct {
	deviceUC     usecase.DeviceUsecase
	feederUC     usecase.FeederUsecase
	mealUC       usecase.MealUsecase
	feedingLogUC usecase.FeedingLogUsecase
	logger       *slog.Logger
}

// NewFeederHandler is the constructor for FeederHandler
func NewFeederHandler(params FeederHandlerParams) *FeederHandler {
	return &FeederHandler{
		deviceUC:     params.DeviceUC,
		feederUC:     params.FeederUC,
		mealUC:       params.MealUC,
		feedingLogUC: params.FeedingLogUC,
		logger:       params.Logger,
	}
}

// ActivateRequest claims a device printed on the packaging QR code.
type ActivateRequest struct {
	DeviceID       string     `json:"device_id" validate:"required"`
	ActivationCode string     `json:"activation_code" validate:"required"`
	Name           string     `json:"name" validate:"max=100"`
	ManualButton   bool       `json:"manual_button"`
	MotorTimingID  *uuid.UUID `json:"motor_timing_id"`
}

// UpdateFeederRequest changes owner editable fields. Omitted fields are kept.
type UpdateFeederRequest struct {
	Name          *string    `json:"name" validate:"omitempty,max=100"`
	ManualButton  *bool      `json:"manual_button"`
	MotorTimingID *uuid.UUID `json:"motor_timing_id"`
}

// FeedRequest optionally overrides the feeder's default portion.
type FeedRequest struct {
	MotorTimingID *uuid.UUID `json:"motor_timing_id"`
}

func (h *FeederHandler) Activate(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req ActivateRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c)
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	owner, err := h.deviceUC.Activate(c.Request().Context(), userID, &usecase.ActivateInput{
		Identifier:     req.DeviceID,
		ActivationCode: req.ActivationCode,
		Name:           req.Name,
		ManualButton:   req.ManualButton,
		MotorTimingID:  req.MotorTimingID,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	h.logger.Info("Feeder activated", slog.Any("userID", userID), slog.Any("deviceOwnerID", owner.ID))

	return response.Success(c, http.StatusCreated, owner)
}

func (h *FeederHandler) List(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	feeders, err := h.feederUC.List(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, feeders)
}

func (h *FeederHandler) Update(c echo.Context) error {
	userID, ownerID, err := h.feederPath(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateFeederRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c)
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	owner, err := h.feederUC.Update(c.Request().Context(), userID, ownerID, &usecase.FeederPatch{
		Name:          req.Name,
		ManualButton:  req.ManualButton,
		MotorTimingID: req.MotorTimingID,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, owner)
}

func (h *FeederHandler) Delete(c echo.Context) error {
	userID, ownerID, err := h.feederPath(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.feederUC.Delete(c.Request().Context(), userID, ownerID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Feeder removed"})
}

// Feed queues a feed-now command. The device picks it up on its next heartbeat.
func (h *FeederHandler) Feed(c echo.Context) error {
	userID, ownerID, err := h.feederPath(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req FeedRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c)
	}

	entry, err := h.feederUC.RequestFeed(c.Request().Context(), userID, ownerID, req.MotorTimingID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusAccepted, entry)
}

func (h *FeederHandler) NextMeal(c echo.Context) error {
	userID, ownerID, err := h.feederPath(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	meal, err := h.mealUC.NextFeeding(c.Request().Context(), userID, ownerID, c.QueryParam("tz"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, meal)
}

func (h *FeederHandler) NextMeals(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	meals, err := h.mealUC.NextFeedings(c.Request().Context(), userID, c.QueryParam("tz"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, meals)
}

func (h *FeederHandler) FeedingLogs(c echo.Context) error {
	userID, ownerID, err := h.feederPath(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil {
			return response.BadRequest(c, "VALIDATION_FAILED", "limit must be a number")
		}
	}

	logs, err := h.feedingLogUC.List(c.Request().Context(), userID, ownerID, limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, logs)
}

func (h *FeederHandler) feederPath(c echo.Context) (uuid.UUID, uuid.UUID, error) {
	userID, err := currentUser(c)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	ownerID, err := pathID(c, "id", domainerrors.ErrFeederNotFound)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}

	return userID, ownerID, nil
}
