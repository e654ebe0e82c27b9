package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/domy-v-italii/portal/internal/logger"
	"github.com/domy-v-italii/portal/models"
)

type localSessionRepository struct {
	*DB
	logger *logger.Logger
}

func NewLocalSessionRepository(db *DB, logger *logger.Logger) LocalSessionRepository {
	return &localSessionRepository{
		DB:     db,
		logger: logger,
	}
}

// SaveCookies replaces the stored session cookie set with the given
// one. An empty set clears the table, which signs the device out.
func (l *localSessionRepository) SaveCookies(ctx context.Context, cookies []models.StoredCookie) error {
	log := logger.FromContext(ctx)

	tx, err := l.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin cookie save: %w", err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, deleteAllSessionCookies); err != nil {
		log.Err(err).Str("func", "localSessionRepository.SaveCookies").Msg("failed to clear cookies")
		return fmt.Errorf("failed to clear session cookies: %w", err)
	}

	for _, cookie := range cookies {
		if _, err = tx.ExecContext(ctx, saveSessionCookie, cookie.Name, cookie.Value, cookie.Expires); err != nil {
			log.Err(err).
				Str("func", "localSessionRepository.SaveCookies").
				Str("cookie", cookie.Name).
				Msg("failed to save cookie")
			return fmt.Errorf("failed to save session cookie %s: %w", cookie.Name, err)
		}
	}

	return tx.Commit()
}

func (l *localSessionRepository) LoadCookies(ctx context.Context) ([]models.StoredCookie, error) {
	log := logger.FromContext(ctx)

	rows, err := l.DB.QueryContext(ctx, getAllSessionCookies)
	if err != nil {
		log.Err(err).Str("func", "localSessionRepository.LoadCookies").Msg("failed to query cookies")
		return nil, fmt.Errorf("failed to load session cookies: %w", err)
	}
	defer rows.Close()

	var cookies []models.StoredCookie
	for rows.Next() {
		var cookie models.StoredCookie
		var expires sql.NullTime
		if err = rows.Scan(&cookie.Name, &cookie.Value, &expires); err != nil {
			return nil, fmt.Errorf("failed to scan session cookie: %w", err)
		}
		if expires.Valid {
			cookie.Expires = expires.Time
		}
		cookies = append(cookies, cookie)
	}

	return cookies, rows.Err()
}

func (l *localSessionRepository) ClearCookies(ctx context.Context) error {
	if _, err := l.DB.ExecContext(ctx, deleteAllSessionCookies); err != nil {
		return fmt.Errorf("failed to clear session cookies: %w", err)
	}
	return nil
}
