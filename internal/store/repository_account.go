package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/domy-v-italii/portal/internal/logger"
	"github.com/jackc/pgerrcode"
)

// Account is the dev backend's internal view of an auth user. The
// password hash never leaves this layer.
type Account struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	CreatedAt    time.Time
}

// AccountRepository persists auth accounts in the "users" table.
type AccountRepository interface {
	CreateAccount(ctx context.Context, account Account) (Account, error)
	FindAccountByEmail(ctx context.Context, email string) (Account, error)
	FindAccountByID(ctx context.Context, id string) (Account, error)
}

// accountRepository is the PostgreSQL-backed implementation of
// [AccountRepository].
//
// All methods obtain a context-scoped logger via [logger.FromContext]
// for request-level tracing of database interactions.
type accountRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAccountRepository constructs an [AccountRepository] backed by the
// provided database connection and logger.
func NewAccountRepository(db *DB, logger *logger.Logger) AccountRepository {
	logger.Debug().Msg("creating account repository")
	return &accountRepository{
		db:     db,
		logger: logger,
	}
}

// CreateAccount persists a new account row and returns the canonical
// database representation including the server-assigned CreatedAt.
//
// A unique_violation on the e-mail column maps to
// [ErrEmailAlreadyExists]; any other driver error is wrapped.
func (r *accountRepository) CreateAccount(ctx context.Context, account Account) (Account, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createAccount, account.ID, account.Email, account.Name, account.PasswordHash)

	var created Account
	if err := row.Scan(&created.ID, &created.Email, &created.Name, &created.PasswordHash, &created.CreatedAt); err != nil {
		log.Err(err).Str("func", "*accountRepository.CreateAccount").Msg("error creating account")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return Account{}, ErrEmailAlreadyExists
		default:
			return Account{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return created, nil
}

// FindAccountByEmail retrieves the account with the given login e-mail.
// A miss maps to [ErrNoAccountWasFound].
func (r *accountRepository) FindAccountByEmail(ctx context.Context, email string) (Account, error) {
	log := logger.FromContext(ctx)

	var found Account
	row := r.db.QueryRowContext(ctx, findAccountByEmail, email)
	if err := row.Scan(&found.ID, &found.Email, &found.Name, &found.PasswordHash, &found.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Account{}, ErrNoAccountWasFound
		}
		log.Err(err).Str("func", "*accountRepository.FindAccountByEmail").Msg("error finding account")
		return Account{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// FindAccountByID retrieves the account with the given id. A miss maps
// to [ErrNoAccountWasFound].
func (r *accountRepository) FindAccountByID(ctx context.Context, id string) (Account, error) {
	log := logger.FromContext(ctx)

	var found Account
	row := r.db.QueryRowContext(ctx, findAccountByID, id)
	if err := row.Scan(&found.ID, &found.Email, &found.Name, &found.PasswordHash, &found.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Account{}, ErrNoAccountWasFound
		}
		log.Err(err).Str("func", "*accountRepository.FindAccountByID").Msg("error finding account")
		return Account{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}
