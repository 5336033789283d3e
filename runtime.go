package counsel

import (
	"context"

	"github.com/counselkit/counsel/extension"
	"github.com/counselkit/counsel/model"
	"github.com/counselkit/counsel/model/types"
	"github.com/counselkit/counsel/service/admission"
	"github.com/counselkit/counsel/service/strategy/rankinterval"
)

// Runtime exposes the engine's allocation operations.
type Runtime struct {
	admission  *admission.Service
	strategies *extension.Strategies
	counter    *rankinterval.Counter
	order      []string
}

// Allocate runs the named strategy for the supplied applicant.
func (r *Runtime) Allocate(ctx context.Context, strategyName string, applicant *model.Applicant) (string, error) {
	strategy := r.strategies.Lookup(strategyName)
	if strategy == nil {
		return "", types.NewStrategyNotFoundError(strategyName)
	}
	return r.admission.Allocate(ctx, strategy, applicant)
}

// StrategyOrder returns the built-in strategy names in their fixed
// invocation order: rank interval, round two, round three.
func (r *Runtime) StrategyOrder() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// RankIntervalInstances returns how many rank-interval strategies have been
// successfully constructed by this engine.
func (r *Runtime) RankIntervalInstances() int64 {
	return r.counter.Value()
}

// History lists recorded allocations in creation order.
func (r *Runtime) History(ctx context.Context) ([]*model.Allocation, error) {
	return r.admission.History(ctx)
}
