// Package fixed implements constant-answer allocation strategies. They exist
// for later admission rounds that are not open yet and always answer with the
// same ineligibility message, whatever the rank.
package fixed

import (
	"context"

	"github.com/counselkit/counsel/model/types"
)

// Registry names of the canned variants.
const (
	RoundTwoName   = "roundTwo"
	RoundThreeName = "roundThree"
)

// Canned responses of the canned variants.
const (
	RoundTwoResponse   = "not eligible for round two"
	RoundThreeResponse = "not eligible for round three"
)

// Service implements types.Strategy with a constant response.
type Service struct {
	name     string
	response string
}

// Ensure Service implements types.Strategy
var _ types.Strategy = (*Service)(nil)

// New creates a fixed-response strategy.
func New(name, response string) *Service {
	return &Service{name: name, response: response}
}

// NewRoundTwo creates the round-two variant.
func NewRoundTwo() *Service {
	return New(RoundTwoName, RoundTwoResponse)
}

// NewRoundThree creates the round-three variant.
func NewRoundThree() *Service {
	return New(RoundThreeName, RoundThreeResponse)
}

// Name returns the strategy name
func (s *Service) Name() string {
	return s.name
}

// Allocate ignores the rank and returns the configured response.
func (s *Service) Allocate(_ context.Context, _ int) (string, error) {
	return s.response, nil
}
