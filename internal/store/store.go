// Package store provides the message storage interface and SQLite implementation.
package store

import (
	"context"

	"github.com/rcliao/amharic-ner/internal/model"
)

// AddParams holds parameters for storing raw messages.
type AddParams struct {
	Channel string
	Texts   []string
}

// ListParams holds parameters for listing messages.
type ListParams struct {
	Channel string
	Status  string
	Limit   int // 0 means no limit
}

// NormalizedParams records the normalizer's outcome for one message.
type NormalizedParams struct {
	ID         string
	Normalized string
	OK         bool // false when nothing usable survived
}

// RmParams holds parameters for deleting messages.
type RmParams struct {
	Channel string
	All     bool // required to delete across every channel
}

// TokenSequence maps a message id to the tokens of its normalized text.
type TokenSequence struct {
	ID     string
	Tokens []string
}

// Store defines the message storage interface.
type Store interface {
	// Add stores raw messages. Messages already stored for the same
	// channel are skipped. Returns the number inserted.
	Add(ctx context.Context, p AddParams) (int, error)

	// List lists messages in ingestion order.
	List(ctx context.Context, p ListParams) ([]model.Message, error)

	// SetNormalized stores normalized text for a message.
	SetNormalized(ctx context.Context, p NormalizedParams) error

	// TokenSequences returns the tokens of every normalized message matching p.
	TokenSequences(ctx context.Context, p ListParams) ([]TokenSequence, error)

	// Rm deletes messages.
	Rm(ctx context.Context, p RmParams) (int, error)

	// Close closes the store.
	Close() error
}
