package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/workpulse-hr/paytime-backend-go/internal/domain/overtime"
	"github.com/workpulse-hr/paytime-backend-go/internal/handler/http/response"
	overtimeService "github.com/workpulse-hr/paytime-backend-go/internal/service/overtime"
)

type OvertimeHandler interface {
	GetOvertime(w http.ResponseWriter, r *http.Request)
	ListOvertimes(w http.ResponseWriter, r *http.Request)
	ApproveOvertime(w http.ResponseWriter, r *http.Request)
	RejectOvertime(w http.ResponseWriter, r *http.Request)
}

type overtimeHandlerImpl struct {
	overtimeService overtimeService.OvertimeService
}

func NewOvertimeHandler(svc overtimeService.OvertimeService) OvertimeHandler {
	return &overtimeHandlerImpl{overtimeService: svc}
}

// GetOvertime implements OvertimeHandler
func (h *overtimeHandlerImpl) GetOvertime(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Overtime ID is required", nil)
		return
	}

	result, err := h.overtimeService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListOvertimes implements OvertimeHandler
func (h *overtimeHandlerImpl) ListOvertimes(w http.ResponseWriter, r *http.Request) {
	filter := overtime.OvertimeFilter{
		EmployeeID: r.URL.Query().Get("employee_id"),
		Status:     overtime.Status(r.URL.Query().Get("status")),
		From:       queryDate(r, "from"),
		To:         queryDate(r, "to"),
		Page:       queryInt(r, "page", 1),
		Limit:      queryInt(r, "limit", 20),
	}

	results, total, err := h.overtimeService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, results, paginationMeta(filter.Page, filter.Limit, total))
}

// ApproveOvertime implements OvertimeHandler
func (h *overtimeHandlerImpl) ApproveOvertime(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Overtime ID is required", nil)
		return
	}

	result, err := h.overtimeService.Approve(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Overtime approved", result)
}

// RejectOvertime implements OvertimeHandler
func (h *overtimeHandlerImpl) RejectOvertime(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Overtime ID is required", nil)
		return
	}

	result, err := h.overtimeService.Reject(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Overtime rejected", result)
}
