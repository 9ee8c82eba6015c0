package handler

import (
	"net/http"

	"petfeeder/internal/delivery/api/response"
	"petfeeder/internal/domain/entity"
	"petfeeder/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SettingsHandlerParams holds dependencies for SettingsHandler, injected by Fx.
type SettingsHandlerParams struct {
	fx.In

	SettingsUC usecase.SettingsUsecase
}

// SettingsHandler serves user preferences.
type SettingsHandler struct {
	settingsUC usecase.SettingsUsecase
}

func NewSettingsHandler(params SettingsHandlerParams) *SettingsHandler {
	return &SettingsHandler{settingsUC: params.SettingsUC}
}

// NotificationSettingsRequest replaces the alert preferences of the user.
type NotificationSettingsRequest struct {
	PushoverUserKey   string   `json:"pushover_user_key" validate:"max=64"`
	PushoverDevices   []string `json:"pushover_devices" validate:"max=20,dive,max=25"`
	PushTokens        []string `json:"push_tokens" validate:"max=20,dive,max=4096"`
	AutoFood          bool     `json:"auto_food"`
	ManualFood        bool     `json:"manual_food"`
	FeederOffline     bool     `json:"feeder_offline"`
	LowHopper         bool     `json:"low_hopper"`
	PowerDisconnected bool     `json:"power_disconnected"`
	LowBattery        bool     `json:"low_battery"`
}

func (h *SettingsHandler) Get(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	settings, err := h.settingsUC.Get(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, settings)
}

// Update merges the fields present in the body into the stored record.
func (h *SettingsHandler) Update(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var patch entity.SettingsRecord
	if err := c.Bind(&patch); err != nil {
		return response.BindingError(c)
	}

	settings, err := h.settingsUC.Update(c.Request().Context(), userID, patch)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, settings)
}

func (h *SettingsHandler) GetNotifications(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	settings, err := h.settingsUC.GetNotificationSettings(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, settings)
}

func (h *SettingsHandler) UpdateNotifications(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req NotificationSettingsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c)
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	settings, err := h.settingsUC.UpdateNotificationSettings(c.Request().Context(), userID, &entity.NotificationSettings{
		PushoverUserKey:   req.PushoverUserKey,
		PushoverDevices:   req.PushoverDevices,
		PushTokens:        req.PushTokens,
		AutoFood:          req.AutoFood,
		ManualFood:        req.ManualFood,
		FeederOffline:     req.FeederOffline,
		LowHopper:         req.LowHopper,
		PowerDisconnected: req.PowerDisconnected,
		LowBattery:        req.LowBattery,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, settings)
}
