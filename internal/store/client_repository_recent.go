package store

import (
	"context"
	"fmt"
	"time"

	"github.com/domy-v-italii/portal/internal/logger"
	"github.com/domy-v-italii/portal/models"
)

const defaultRecentLimit = 10

type localRecentRepository struct {
	*DB
	logger *logger.Logger
}

func NewLocalRecentRepository(db *DB, logger *logger.Logger) LocalRecentRepository {
	return &localRecentRepository{
		DB:     db,
		logger: logger,
	}
}

// RecordView upserts the listing's visit time; re-opening a listing
// moves it to the top of the history.
func (l *localRecentRepository) RecordView(ctx context.Context, propertyID string) error {
	log := logger.FromContext(ctx)

	if _, err := l.DB.ExecContext(ctx, saveRecentView, propertyID, time.Now().UTC()); err != nil {
		log.Err(err).
			Str("func", "localRecentRepository.RecordView").
			Str("property_id", propertyID).
			Msg("failed to record view")
		return fmt.Errorf("failed to record view of %s: %w", propertyID, err)
	}

	return nil
}

func (l *localRecentRepository) RecentlyViewed(ctx context.Context, limit int) ([]models.RecentView, error) {
	log := logger.FromContext(ctx)

	if limit <= 0 {
		limit = defaultRecentLimit
	}

	rows, err := l.DB.QueryContext(ctx, getRecentViews, limit)
	if err != nil {
		log.Err(err).Str("func", "localRecentRepository.RecentlyViewed").Msg("failed to query recent views")
		return nil, fmt.Errorf("failed to load recent views: %w", err)
	}
	defer rows.Close()

	var views []models.RecentView
	for rows.Next() {
		var view models.RecentView
		if err = rows.Scan(&view.PropertyID, &view.ViewedAt); err != nil {
			return nil, fmt.Errorf("failed to scan recent view: %w", err)
		}
		views = append(views, view)
	}

	return views, rows.Err()
}
