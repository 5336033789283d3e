// Package admission owns the allocation flow: it delegates an applicant's
// rank to a strategy and records the outcome in the allocation history.
package admission

import (
	"context"
	"strconv"

	"github.com/counselkit/counsel/internal/clock"
	"github.com/counselkit/counsel/internal/idgen"
	"github.com/counselkit/counsel/model"
	"github.com/counselkit/counsel/model/types"
	"github.com/counselkit/counsel/service/dao"
	"github.com/counselkit/counsel/tracing"
)

// Service performs allocations.
type Service struct {
	allocationDAO dao.Service[string, model.Allocation]
}

// New creates a new admission service. The DAO may be nil, in which case no
// history is recorded.
func New(allocationDAO dao.Service[string, model.Allocation]) *Service {
	return &Service{allocationDAO: allocationDAO}
}

// Allocate forwards the applicant's rank to the strategy and returns its
// answer unchanged. On success the allocation is appended to the history.
func (s *Service) Allocate(ctx context.Context, strategy types.Strategy, applicant *model.Applicant) (string, error) {
	ctx, span := tracing.StartSpan(ctx, "admission.allocate")
	defer span.End()
	span.WithAttributes(map[string]string{
		"strategy": strategy.Name(),
		"rank":     strconv.Itoa(applicant.Rank),
	})

	college, err := strategy.Allocate(ctx, applicant.Rank)
	span.SetStatus(err)
	if err != nil {
		return "", err
	}
	if s.allocationDAO != nil {
		record := &model.Allocation{
			ID:        idgen.New(),
			Applicant: *applicant,
			Strategy:  strategy.Name(),
			College:   college,
			CreatedAt: clock.Now(),
		}
		if err := s.allocationDAO.Save(ctx, record); err != nil {
			return "", err
		}
	}
	return college, nil
}

// History lists recorded allocations in creation order.
func (s *Service) History(ctx context.Context) ([]*model.Allocation, error) {
	if s.allocationDAO == nil {
		return nil, nil
	}
	return s.allocationDAO.List(ctx)
}
