package handler

import (
	"log/slog"
	"net/http"

	"petfeeder/internal/delivery/api/response"
	"petfeeder/internal/domain/entity"
	domainerrors "petfeeder/internal/domain/errors"
	"petfeeder/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ScheduleHandlerParams holds dependencies for ScheduleHandler, injected by Fx.
type ScheduleHandlerParams struct {
	fx.In

	ScheduleUC usecase.ScheduleUsecase
	PetUC      usecase.PetUsecase
	Logger     *slog.Logger
}

// ScheduleHandler serves feeding schedules and the pets they refer to.
type ScheduleHandler struct {
	scheduleUC usecase.ScheduleUsecase
	petUC      usecase.PetUsecase
	logger     *slog.Logger
}

func NewScheduleHandler(params ScheduleHandlerParams) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleUC: params.ScheduleUC,
		petUC:      params.PetUC,
		logger:     params.Logger,
	}
}

// ScheduleRequest describes a weekly meal. Time is UTC.
type ScheduleRequest struct {
	PetID         uuid.UUID      `json:"pet_id" validate:"required"`
	MotorTimingID uuid.UUID      `json:"motor_timing_id" validate:"required"`
	Label         string         `json:"label" validate:"max=100"`
	Days          entity.DayMask `json:"dow"`
	Time          string         `json:"time" validate:"required"`
	Active        *bool          `json:"active"`
}

func (r *ScheduleRequest) input() *usecase.ScheduleInput {
	active := true
	if r.Active != nil {
		active = *r.Active
	}

	return &usecase.ScheduleInput{
		PetID:         r.PetID,
		MotorTimingID: r.MotorTimingID,
		Label:         r.Label,
		Days:          r.Days,
		Time:          r.Time,
		Active:        active,
	}
}

// PetRequest creates a pet.
type PetRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

func (h *ScheduleHandler) List(c echo.Context) error {
	userID, ownerID, err := schedulePath(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	schedules, err := h.scheduleUC.List(c.Request().Context(), userID, ownerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, schedules)
}

func (h *ScheduleHandler) Create(c echo.Context) error {
	userID, ownerID, err := schedulePath(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req ScheduleRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c)
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	created, err := h.scheduleUC.Create(c.Request().Context(), userID, ownerID, req.input())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, created)
}

func (h *ScheduleHandler) Update(c echo.Context) error {
	userID, ownerID, err := schedulePath(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	scheduleID, err := pathID(c, "scheduleId", domainerrors.ErrScheduleNotFound)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req ScheduleRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c)
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	updated, err := h.scheduleUC.Update(c.Request().Context(), userID, ownerID, scheduleID, req.input())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, updated)
}

func (h *ScheduleHandler) Delete(c echo.Context) error {
	userID, ownerID, err := schedulePath(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	scheduleID, err := pathID(c, "scheduleId", domainerrors.ErrScheduleNotFound)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.scheduleUC.Delete(c.Request().Context(), userID, ownerID, scheduleID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Schedule removed"})
}

func (h *ScheduleHandler) ListPets(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	pets, err := h.petUC.List(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, pets)
}

func (h *ScheduleHandler) CreatePet(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req PetRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c)
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	pet, err := h.petUC.Create(c.Request().Context(), userID, req.Name)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, pet)
}

func schedulePath(c echo.Context) (uuid.UUID, uuid.UUID, error) {
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
