package web

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"zakat-chatbot/config"
	"zakat-chatbot/database"
)

// CleanupService prunes expired chat logs from the database
type CleanupService struct {
	store  *database.PostgresStore
	logger *zap.Logger
}

// NewCleanupService creates a new cleanup service instance
func NewCleanupService(store *database.PostgresStore, logger *zap.Logger) *CleanupService {
	return &CleanupService{
		store:  store,
		logger: logger,
	}
}

// PruneOldLogs deletes chat logs created before now minus retention.
// Returns the number of rows deleted and any error encountered
func (cs *CleanupService) PruneOldLogs(ctx context.Context, retention time.Duration) (int64, error) {
	cutoff := time.Now().Add(-retention)

	deleted, err := cs.store.DeleteChatLogsBefore(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to prune chat logs: %w", err)
	}

	if deleted > 0 {
		cs.logger.Info("Pruned old chat logs",
			zap.Int64("deleted", deleted),
			zap.Time("cutoff", cutoff))
	}

	return deleted, nil
}

// StartLogRetention runs PruneOldLogs on the configured interval until the
// context is cancelled.
func StartLogRetention(ctx context.Context, cfg *config.Config, cleanup *CleanupService, logger *zap.Logger) {
	retention := time.Duration(cfg.LogRetentionDays) * 24 * time.Hour

	logger.Info("Starting chat log retention routine",
		zap.Duration("interval", cfg.CleanupInterval),
		zap.Int("retention_days", cfg.LogRetentionDays))

	ticker := time.NewTicker(cfg.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Stopping chat log retention routine")
			return
		case <-ticker.C:
			if _, err := cleanup.PruneOldLogs(ctx, retention); err != nil {
				logger.Error("Chat log retention run failed", zap.Error(err))
			}
		}
	}
}
