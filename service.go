package counsel

import (
	"context"
	"reflect"

	"github.com/counselkit/counsel/extension"
	"github.com/counselkit/counsel/model"
	"github.com/counselkit/counsel/model/types"
	"github.com/counselkit/counsel/service/admission"
	"github.com/counselkit/counsel/service/dao"
	amemory "github.com/counselkit/counsel/service/dao/allocation/memory"
	"github.com/counselkit/counsel/service/dataset"
	"github.com/counselkit/counsel/service/meta"
	"github.com/counselkit/counsel/service/strategy/fixed"
	"github.com/counselkit/counsel/service/strategy/rankinterval"
	"github.com/viant/afs/storage"
	"github.com/viant/x"
)

// Service is the engine façade: it wires the meta, dataset, admission and
// strategy services together and exposes them through a Runtime.
type Service struct {
	config              *Config
	runtime             *Runtime
	metaService         *meta.Service
	datasetService      *dataset.Service
	strategies          *extension.Strategies
	extensionTypes      []*x.Type
	extensionStrategies []types.Strategy
	allocationDAO       dao.Service[string, model.Allocation]
	counter             *rankinterval.Counter
	metaBaseURL         string
	metaFsOptions       []storage.Option
}

// New creates a new engine. Construction builds the rank-interval strategy,
// so dataset IO or format errors surface here; in that case the instance
// counter stays untouched.
func New(ctx context.Context, options ...Option) (*Service, error) {
	s := &Service{
		config:  DefaultConfig(),
		counter: rankinterval.NewCounter(),
	}
	for _, option := range options {
		option(s)
	}
	if err := s.config.Validate(); err != nil {
		return nil, err
	}
	s.ensureBaseSetup()
	if err := s.init(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Service) ensureBaseSetup() {
	if s.metaService == nil {
		var opts []meta.Option
		if s.metaBaseURL != "" {
			opts = append(opts, meta.WithBaseURL(s.metaBaseURL))
		}
		if len(s.metaFsOptions) > 0 {
			opts = append(opts, meta.WithFsOptions(s.metaFsOptions...))
		}
		s.metaService = meta.New(opts...)
	}
	if s.datasetService == nil {
		s.datasetService = dataset.New(s.metaService)
	}
	if s.allocationDAO == nil {
		s.allocationDAO = amemory.New()
	}
}

func (s *Service) init(ctx context.Context) error {
	s.strategies = extension.NewStrategies(s.extensionTypes...)
	s.strategies.Types().Register(x.NewType(reflect.TypeOf(model.Applicant{}), x.WithName("Applicant")))
	s.strategies.Types().Register(x.NewType(reflect.TypeOf(model.IntervalRecord{}), x.WithName("IntervalRecord")))
	s.strategies.Types().Register(x.NewType(reflect.TypeOf(model.Allocation{}), x.WithName("Allocation")))

	datasetURL := s.config.DatasetURL
	if datasetURL == "" {
		resolved, err := s.metaService.Resolve(ctx, s.config.IndirectionURL)
		if err != nil {
			return err
		}
		datasetURL = resolved
	}

	rankStrategy, err := rankinterval.New(ctx, s.datasetService, datasetURL, s.counter)
	if err != nil {
		return err
	}
	s.strategies.Register(rankStrategy)
	s.strategies.Register(fixed.NewRoundTwo())
	s.strategies.Register(fixed.NewRoundThree())
	for _, strategy := range s.extensionStrategies {
		s.strategies.Register(strategy)
	}

	s.runtime = &Runtime{
		admission:  admission.New(s.allocationDAO),
		strategies: s.strategies,
		counter:    s.counter,
		order:      []string{rankinterval.Name, fixed.RoundTwoName, fixed.RoundThreeName},
	}
	return nil
}

// Runtime returns the engine runtime.
func (s *Service) Runtime() *Runtime {
	return s.runtime
}

// Strategies returns the strategy registry.
func (s *Service) Strategies() *extension.Strategies {
	return s.strategies
}

// RegisterExtensionTypes registers additional extension data types.
func (s *Service) RegisterExtensionTypes(goTypes ...*x.Type) {
	for i := range goTypes {
		s.strategies.Types().Register(goTypes[i])
	}
}

// RegisterStrategies registers additional allocation strategies.
func (s *Service) RegisterStrategies(strategies ...types.Strategy) {
	for i := range strategies {
		s.strategies.Register(strategies[i])
	}
}
