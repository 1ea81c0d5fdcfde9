package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/workpulse-hr/paytime-backend-go/internal/domain/payroll"
	"github.com/workpulse-hr/paytime-backend-go/internal/handler/http/response"
	payrollService "github.com/workpulse-hr/paytime-backend-go/internal/service/payroll"
)

type PayrollHandler interface {
	GeneratePayslips(w http.ResponseWriter, r *http.Request)
	GetPayslip(w http.ResponseWriter, r *http.Request)
	ListPayslips(w http.ResponseWriter, r *http.Request)
	DeletePayslip(w http.ResponseWriter, r *http.Request)
	DownloadPayslipPDF(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payrollService.PayrollService
}

func NewPayrollHandler(svc payrollService.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{payrollService: svc}
}

// GeneratePayslips implements PayrollHandler
func (h *payrollHandlerImpl) GeneratePayslips(w http.ResponseWriter, r *http.Request) {
	var req payroll.GeneratePayslipsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	results, err := h.payrollService.GeneratePayslips(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payslips generated", results)
}

// GetPayslip implements PayrollHandler
func (h *payrollHandlerImpl) GetPayslip(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Payslip ID is required", nil)
		return
	}

	result, err := h.payrollService.GetPayslip(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListPayslips implements PayrollHandler
func (h *payrollHandlerImpl) ListPayslips(w http.ResponseWriter, r *http.Request) {
	filter := payroll.PayslipFilter{
		EmployeeID: r.URL.Query().Get("employee_id"),
		From:       queryDate(r, "from"),
		To:         queryDate(r, "to"),
		Page:       queryInt(r, "page", 1),
		Limit:      queryInt(r, "limit", 20),
	}

	results, total, err := h.payrollService.ListPayslips(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, results, paginationMeta(filter.Page, filter.Limit, total))
}

// DeletePayslip implements PayrollHandler
func (h *payrollHandlerImpl) DeletePayslip(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Payslip ID is required", nil)
		return
	}

	if err := h.payrollService.DeletePayslip(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payslip deleted", nil)
}

// DownloadPayslipPDF implements PayrollHandler
func (h *payrollHandlerImpl) DownloadPayslipPDF(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Payslip ID is required", nil)
		return
	}

	pdf, err := h.payrollService.RenderPayslipPDF(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="payslip-%s.pdf"`, id))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}
