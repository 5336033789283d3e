// Package model defines the domain values shared across the engine:
// applicants, rank-interval records and allocation history entries.
package model
