package counsel

import (
	"github.com/counselkit/counsel/model"
	"github.com/counselkit/counsel/model/types"
	"github.com/counselkit/counsel/service/dao"
	"github.com/counselkit/counsel/service/meta"
	"github.com/counselkit/counsel/tracing"
	"github.com/viant/afs/storage"
	"github.com/viant/x"
)

// Option customises the engine Service.
type Option func(s *Service)

// WithConfig replaces the engine configuration.
func WithConfig(config *Config) Option {
	return func(s *Service) {
		if config != nil {
			s.config = config
		}
	}
}

// WithDatasetURL points the rank-interval strategy directly at a dataset,
// bypassing indirection-file resolution.
func WithDatasetURL(URL string) Option {
	return func(s *Service) { s.config.DatasetURL = URL }
}

// WithIndirectionURL sets the indirection file whose first line is the
// dataset URL.
func WithIndirectionURL(URL string) Option {
	return func(s *Service) { s.config.IndirectionURL = URL }
}

// WithMetaService sets the meta service
func WithMetaService(service *meta.Service) Option {
	return func(s *Service) { s.metaService = service }
}

// WithMetaBaseURL sets the meta base URL
func WithMetaBaseURL(URL string) Option {
	return func(s *Service) { s.metaBaseURL = URL }
}

// WithMetaFsOptions with meta file system options
func WithMetaFsOptions(options ...storage.Option) Option {
	return func(s *Service) { s.metaFsOptions = options }
}

// WithAllocationDAO sets the allocation history DAO
func WithAllocationDAO(service dao.Service[string, model.Allocation]) Option {
	return func(s *Service) { s.allocationDAO = service }
}

// WithExtensionTypes sets the extension types
func WithExtensionTypes(types ...*x.Type) Option {
	return func(s *Service) { s.extensionTypes = types }
}

// WithStrategies registers additional allocation strategies alongside the
// built-in ones.
func WithStrategies(strategies ...types.Strategy) Option {
	return func(s *Service) {
		s.extensionStrategies = append(s.extensionStrategies, strategies...)
	}
}

// WithTracing configures OpenTelemetry tracing for the service. If outputFile
// is empty the stdout exporter is used; otherwise traces are written to the
// supplied file path. The function is safe to call multiple times – the first
// successful initialisation wins.
func WithTracing(serviceName, serviceVersion, outputFile string) Option {
	return func(s *Service) {
		_ = tracing.Init(serviceName, serviceVersion, outputFile)
	}
}
