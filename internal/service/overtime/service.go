package overtime

import (
	"context"

	"github.com/workpulse-hr/paytime-backend-go/internal/domain/overtime"
	"github.com/workpulse-hr/paytime-backend-go/internal/pkg/database"
)

type OvertimeService interface {
	Get(ctx context.Context, id string) (overtime.OvertimeResponse, error)
	List(ctx context.Context, filter overtime.OvertimeFilter) ([]overtime.OvertimeResponse, int64, error)
	Approve(ctx context.Context, id string) (overtime.OvertimeResponse, error)
	Reject(ctx context.Context, id string) (overtime.OvertimeResponse, error)
}

type OvertimeServiceImpl struct {
	db           *database.DB
	overtimeRepo overtime.OvertimeRepository
}

func NewOvertimeService(db *database.DB, overtimeRepo overtime.OvertimeRepository) OvertimeService {
	return &OvertimeServiceImpl{
		db:           db,
		overtimeRepo: overtimeRepo,
	}
}

// Get implements OvertimeService.
func (s *OvertimeServiceImpl) Get(ctx context.Context, id string) (overtime.OvertimeResponse, error) {
	rec, err := s.overtimeRepo.GetByID(ctx, id)
	if err != nil {
		return overtime.OvertimeResponse{}, err
	}
	return overtime.ToResponse(rec), nil
}

// List implements OvertimeService.
func (s *OvertimeServiceImpl) List(ctx context.Context, filter overtime.OvertimeFilter) ([]overtime.OvertimeResponse, int64, error) {
	records, total, err := s.overtimeRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	result := make([]overtime.OvertimeResponse, 0, len(records))
	for _, r := range records {
		result = append(result, overtime.ToResponse(r))
	}
	return result, total, nil
}

// Approve implements OvertimeService.
func (s *OvertimeServiceImpl) Approve(ctx context.Context, id string) (overtime.OvertimeResponse, error) {
	return s.transition(ctx, id, overtime.StatusApproved)
}

// Reject implements OvertimeService.
func (s *OvertimeServiceImpl) Reject(ctx context.Context, id string) (overtime.OvertimeResponse, error) {
	return s.transition(ctx, id, overtime.StatusRejected)
}

func (s *OvertimeServiceImpl) transition(ctx context.Context, id string, status overtime.Status) (overtime.OvertimeResponse, error) {
	rec, err := s.overtimeRepo.GetByID(ctx, id)
	if err != nil {
		return overtime.OvertimeResponse{}, err
	}

	if rec.Status != overtime.StatusPending {
		return overtime.OvertimeResponse{}, overtime.ErrOvertimeAlreadyProcessed
	}

	if err := s.overtimeRepo.UpdateStatus(ctx, id, status); err != nil {
		return overtime.OvertimeResponse{}, err
	}

	rec.Status = status
	return overtime.ToResponse(rec), nil
}
