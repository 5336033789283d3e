package dataset

import (
	"context"

	"github.com/counselkit/counsel/model"
	"github.com/counselkit/counsel/service/meta"
)

// Service loads interval tables from dataset files.
type Service struct {
	metaService *meta.Service
}

// New creates a new dataset service.
func New(metaService *meta.Service) *Service {
	if metaService == nil {
		metaService = meta.New()
	}
	return &Service{metaService: metaService}
}

// Load reads and parses the dataset at the supplied location.
func (s *Service) Load(ctx context.Context, location string) (model.Table, error) {
	data, err := s.metaService.Download(ctx, location)
	if err != nil {
		return nil, err
	}
	return Parse(location, data)
}
