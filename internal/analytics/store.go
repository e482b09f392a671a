package analytics

import (
	"context"
	"time"
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Totals is the single global counter record: every tracked visit
// bumps TotalVisits, and the gender counters bump only when the
// visitor declared a recognized gender.
type Totals struct {
	TotalVisits int64     `json:"totalVisits"`
	MaleCount   int64     `json:"maleCount"`
	FemaleCount int64     `json:"femaleCount"`
	LastUpdated time.Time `json:"lastUpdated"`
}

// Store persists the global visit counters. Track must be atomic so
// concurrent visits never lose an increment.
type Store interface {
	Track(ctx context.Context, gender Gender) error
	Totals(ctx context.Context) (Totals, error)
	Close() error
}
