// Package model defines the core message data types.
package model

import "time"

// Message is one raw listing as ingested, plus its normalized form once
// the normalizer has run.
type Message struct {
	ID           string     `json:"id"`
	Channel      string     `json:"channel"`
	Text         string     `json:"text"`
	Normalized   string     `json:"normalized,omitempty"`
	Status       string     `json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
	NormalizedAt *time.Time `json:"normalized_at,omitempty"`
}

// Message statuses.
const (
	StatusRaw        = "raw"        // not normalized yet
	StatusNormalized = "normalized" // usable text in Normalized
	StatusEmpty      = "empty"      // nothing survived normalization
)

// ValidStatuses are the allowed message statuses.
var ValidStatuses = map[string]bool{
	StatusRaw:        true,
	StatusNormalized: true,
	StatusEmpty:      true,
}
