// Package rankinterval implements the interval-backed allocation strategy:
// the first dataset record whose inclusive rank interval contains the
// applicant's rank wins.
package rankinterval

import (
	"context"

	"github.com/counselkit/counsel/model"
	"github.com/counselkit/counsel/model/types"
	"github.com/counselkit/counsel/service/dataset"
)

// Name of the strategy as used by the registry.
const Name = "rankInterval"

// DefaultDatasetURL is used when no dataset location is supplied.
const DefaultDatasetURL = "default_data.txt"

// NoAllocation is returned when no interval contains the rank.
const NoAllocation = "No college allocated for your rank."

// Service implements types.Strategy over an ordered interval table.
type Service struct {
	datasetURL string
	records    model.Table
}

// Ensure Service implements types.Strategy
var _ types.Strategy = (*Service)(nil)

// New constructs the strategy by loading the dataset at datasetURL (falling
// back to DefaultDatasetURL when empty). The counter is incremented exactly
// once, and only when construction succeeds; a load or parse failure leaves
// it untouched.
func New(ctx context.Context, loader *dataset.Service, datasetURL string, counter *Counter) (*Service, error) {
	if datasetURL == "" {
		datasetURL = DefaultDatasetURL
	}
	records, err := loader.Load(ctx, datasetURL)
	if err != nil {
		return nil, err
	}
	if counter != nil {
		counter.Increment()
	}
	return &Service{datasetURL: datasetURL, records: records}, nil
}

// Name returns the strategy name
func (s *Service) Name() string {
	return Name
}

// DatasetURL returns the location the interval table was loaded from.
func (s *Service) DatasetURL() string {
	return s.datasetURL
}

// Records returns the loaded interval table.
func (s *Service) Records() model.Table {
	return s.records
}

// Allocate scans the table in file order and returns the first matching
// college, or the NoAllocation sentinel when no interval contains rank.
func (s *Service) Allocate(_ context.Context, rank int) (string, error) {
	if college, ok := s.records.Match(rank); ok {
		return college, nil
	}
	return NoAllocation, nil
}
