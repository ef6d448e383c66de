package store

import (
	"context"
	"log/slog"
	"time"

	"github.com/nag3003/agrisaarthii/internal/shared"
)

// StartRetentionSweeper runs a background goroutine that periodically
// purges advice-log and feedback rows older than the retention window.
func StartRetentionSweeper(ctx context.Context, repo Repository, retention, interval time.Duration) {
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		slog.Info("Retention sweeper started", "interval", interval, "retention", retention)

		for {
			select {
			case <-ctx.Done():
				slog.Info("Retention sweeper stopped")
				return
			case <-ticker.C:
				sweepOnce(ctx, repo, retention)
			}
		}
	}()
}

func sweepOnce(ctx context.Context, repo Repository, retention time.Duration) {
	cutoff := time.Now().Add(-retention)

	var adviceDeleted, feedbackDeleted int64
	err := shared.RetryOnConflict(ctx, 3, 100*time.Millisecond, func() error {
		var err error
		adviceDeleted, feedbackDeleted, err = repo.PurgeOlderThan(ctx, cutoff)
		return err
	})
	if err != nil {
		slog.Error("Retention sweep failed", "error", err)
		return
	}

	if adviceDeleted > 0 || feedbackDeleted > 0 {
		slog.Info("Retention sweep complete",
			"advice_deleted", adviceDeleted,
			"feedback_deleted", feedbackDeleted)
	}
}
