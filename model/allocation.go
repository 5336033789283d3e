package model

import "time"

// Allocation is a persisted record of a single allocation performed by the
// admission service.
type Allocation struct {
	ID        string    `json:"id" yaml:"id"`
	Applicant Applicant `json:"applicant" yaml:"applicant"`
	Strategy  string    `json:"strategy" yaml:"strategy"`
	College   string    `json:"college" yaml:"college"`
	CreatedAt time.Time `json:"createdAt" yaml:"createdAt"`
}
