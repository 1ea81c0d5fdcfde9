package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/workpulse-hr/paytime-backend-go/internal/domain/attendance"
	"github.com/workpulse-hr/paytime-backend-go/internal/handler/http/response"
	"github.com/workpulse-hr/paytime-backend-go/internal/pkg/timeutil"
	attendanceService "github.com/workpulse-hr/paytime-backend-go/internal/service/attendance"
)

type AttendanceHandler interface {
	CreateAttendance(w http.ResponseWriter, r *http.Request)
	GetAttendance(w http.ResponseWriter, r *http.Request)
	ListAttendances(w http.ResponseWriter, r *http.Request)
	UpdateAttendance(w http.ResponseWriter, r *http.Request)
	DeleteAttendance(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendanceService.AttendanceService
}

func NewAttendanceHandler(svc attendanceService.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{attendanceService: svc}
}

// CreateAttendance implements AttendanceHandler
func (h *attendanceHandlerImpl) CreateAttendance(w http.ResponseWriter, r *http.Request) {
	var req attendance.CreateAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Attendance recorded", result)
}

// GetAttendance implements AttendanceHandler
func (h *attendanceHandlerImpl) GetAttendance(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Attendance ID is required", nil)
		return
	}

	result, err := h.attendanceService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListAttendances implements AttendanceHandler
func (h *attendanceHandlerImpl) ListAttendances(w http.ResponseWriter, r *http.Request) {
	filter := attendance.AttendanceFilter{
		EmployeeID: r.URL.Query().Get("employee_id"),
		Status:     r.URL.Query().Get("status"),
		From:       queryDate(r, "from"),
		To:         queryDate(r, "to"),
		Page:       queryInt(r, "page", 1),
		Limit:      queryInt(r, "limit", 20),
	}

	results, total, err := h.attendanceService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, results, paginationMeta(filter.Page, filter.Limit, total))
}

// UpdateAttendance implements AttendanceHandler
func (h *attendanceHandlerImpl) UpdateAttendance(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Attendance ID is required", nil)
		return
	}

	var req attendance.UpdateAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	result, err := h.attendanceService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance updated", result)
}

// DeleteAttendance implements AttendanceHandler
func (h *attendanceHandlerImpl) DeleteAttendance(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Attendance ID is required", nil)
		return
	}

	if err := h.attendanceService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance deleted", nil)
}

func queryDate(r *http.Request, key string) *time.Time {
	if v := r.URL.Query().Get(key); v != "" {
		if t, ok := timeutil.ParseDate(v); ok {
			return &t
		}
	}
	return nil
}
