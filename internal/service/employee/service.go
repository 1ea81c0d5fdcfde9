package employee

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/workpulse-hr/paytime-backend-go/internal/domain/employee"
	"github.com/workpulse-hr/paytime-backend-go/internal/pkg/database"
)

type EmployeeService interface {
	Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error)
	Get(ctx context.Context, id string) (employee.EmployeeResponse, error)
	List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.EmployeeResponse, int64, error)
	Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
}

type EmployeeServiceImpl struct {
	db           *database.DB
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(db *database.DB, employeeRepo employee.EmployeeRepository) EmployeeService {
	return &EmployeeServiceImpl{
		db:           db,
		employeeRepo: employeeRepo,
	}
}

// Create implements EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	_, err := s.employeeRepo.GetByCode(ctx, req.Code)
	if err == nil {
		return employee.EmployeeResponse{}, employee.ErrEmployeeCodeExists
	}
	if !errors.Is(err, employee.ErrEmployeeNotFound) {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to check employee code: %w", err)
	}

	rate := decimal.Zero
	if req.HourlyRate != nil {
		rate = *req.HourlyRate
	}

	created, err := s.employeeRepo.Create(ctx, employee.Employee{
		Code:       req.Code,
		Name:       req.Name,
		HourlyRate: rate,
		IsActive:   true,
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return toResponse(created), nil
}

// Get implements EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return toResponse(emp), nil
}

// List implements EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.EmployeeResponse, int64, error) {
	employees, total, err := s.employeeRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	result := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		result = append(result, toResponse(e))
	}
	return result, total, nil
}

// Update implements EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	current, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.Name != nil {
		current.Name = *req.Name
	}
	if req.HourlyRate != nil {
		current.HourlyRate = *req.HourlyRate
	}
	if req.IsActive != nil {
		current.IsActive = *req.IsActive
	}

	if err := s.employeeRepo.Update(ctx, current); err != nil {
		return employee.EmployeeResponse{}, err
	}

	return toResponse(current), nil
}

// Delete implements EmployeeService.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.employeeRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.employeeRepo.Delete(ctx, id)
}

func toResponse(e employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:         e.ID,
		Code:       e.Code,
		Name:       e.Name,
		HourlyRate: e.HourlyRate,
		IsActive:   e.IsActive,
	}
}
