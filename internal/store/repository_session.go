package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/domy-v-italii/portal/internal/logger"
	"github.com/google/uuid"
)

// SessionRepository persists refresh-token sessions for the dev
// backend. Access tokens are stateless JWTs; only the refresh side
// lives in the database.
type SessionRepository interface {
	CreateSession(ctx context.Context, userID string, ttl time.Duration) (string, error)
	FindUserByRefreshToken(ctx context.Context, refreshToken string) (string, error)
	DeleteSession(ctx context.Context, refreshToken string) error
}

type sessionRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSessionRepository constructs a [SessionRepository] backed by the
// provided database connection and logger.
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("creating session repository")
	return &sessionRepository{
		db:     db,
		logger: logger,
	}
}

// CreateSession stores a fresh refresh token for userID and returns it.
func (r *sessionRepository) CreateSession(ctx context.Context, userID string, ttl time.Duration) (string, error) {
	log := logger.FromContext(ctx)

	refreshToken := uuid.NewString()
	expiresAt := time.Now().Add(ttl)

	if _, err := r.db.ExecContext(ctx, createSession, uuid.NewString(), userID, refreshToken, expiresAt); err != nil {
		log.Err(err).Str("func", "*sessionRepository.CreateSession").Msg("error creating session")
		return "", fmt.Errorf("unexpected DB error: %w", err)
	}

	return refreshToken, nil
}

// FindUserByRefreshToken resolves a live refresh token to its user id.
// Expired or unknown tokens map to [ErrNoSessionWasFound].
func (r *sessionRepository) FindUserByRefreshToken(ctx context.Context, refreshToken string) (string, error) {
	log := logger.FromContext(ctx)

	var userID string
	row := r.db.QueryRowContext(ctx, findSessionByRefreshToken, refreshToken)
	if err := row.Scan(&userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNoSessionWasFound
		}
		log.Err(err).Str("func", "*sessionRepository.FindUserByRefreshToken").Msg("error finding session")
		return "", fmt.Errorf("unexpected DB error: %w", err)
	}

	return userID, nil
}

// DeleteSession revokes the refresh token. Deleting an already-revoked
// token is not an error.
func (r *sessionRepository) DeleteSession(ctx context.Context, refreshToken string) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, deleteSessionByRefreshToken, refreshToken); err != nil {
		log.Err(err).Str("func", "*sessionRepository.DeleteSession").Msg("error deleting session")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}
