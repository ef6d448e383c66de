// Package store provides data persistence interfaces and implementations.
package store

import (
	"context"
	"time"

	"github.com/nag3003/agrisaarthii/internal/domain"
)

// Repository defines the interface for persisting farmer profiles, issued
// advisories and feedback outcomes.
type Repository interface {
	// GetProfile retrieves a farmer profile by ID. Returns (nil, nil) when
	// the profile does not exist.
	GetProfile(ctx context.Context, farmerID string) (*domain.FarmerProfile, error)

	// UpsertProfile creates or updates a farmer profile.
	UpsertProfile(ctx context.Context, profile *domain.FarmerProfile) error

	// SaveAdvice appends an issued advisory to the advice log.
	SaveAdvice(ctx context.Context, farmerID string, advice *domain.Advice) error

	// RecentAdvice returns the newest advisories for a farmer, most recent
	// first.
	RecentAdvice(ctx context.Context, farmerID string, limit int) ([]*domain.Advice, error)

	// SaveFeedback stores a farmer-reported outcome record.
	SaveFeedback(ctx context.Context, record *domain.FeedbackRecord) error

	// LearningStats counts advisories and followed outcomes for a farmer.
	LearningStats(ctx context.Context, farmerID string) (domain.LearningStats, error)

	// PurgeOlderThan deletes advice-log and feedback rows created before
	// the cutoff, returning the deleted counts.
	PurgeOlderThan(ctx context.Context, cutoff time.Time) (adviceDeleted, feedbackDeleted int64, err error)

	// Ping verifies database connectivity.
	Ping(ctx context.Context) error

	// Close closes the database connection.
	Close() error
}
