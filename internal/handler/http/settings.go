package http

import (
	"encoding/json"
	"net/http"

	"github.com/workpulse-hr/paytime-backend-go/internal/domain/settings"
	"github.com/workpulse-hr/paytime-backend-go/internal/handler/http/response"
	settingsService "github.com/workpulse-hr/paytime-backend-go/internal/service/settings"
)

type SettingsHandler interface {
	GetSettings(w http.ResponseWriter, r *http.Request)
	UpdateSettings(w http.ResponseWriter, r *http.Request)
}

type settingsHandlerImpl struct {
	settingsService settingsService.SettingsService
}

func NewSettingsHandler(svc settingsService.SettingsService) SettingsHandler {
	return &settingsHandlerImpl{settingsService: svc}
}

// GetSettings implements SettingsHandler
func (h *settingsHandlerImpl) GetSettings(w http.ResponseWriter, r *http.Request) {
	result, err := h.settingsService.Get(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpdateSettings implements SettingsHandler
func (h *settingsHandlerImpl) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req settings.UpdateSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.settingsService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Settings updated", result)
}
