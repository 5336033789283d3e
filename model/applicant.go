package model

// Applicant is an immutable value describing a single admission candidate.
type Applicant struct {
	Name string `json:"name" yaml:"name"`
	Rank int    `json:"rank" yaml:"rank"`
}

// NewApplicant creates a new applicant
func NewApplicant(name string, rank int) *Applicant {
	return &Applicant{Name: name, Rank: rank}
}
