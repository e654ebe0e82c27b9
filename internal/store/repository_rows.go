package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	sq "github.com/Masterminds/squirrel"
	"github.com/domy-v-italii/portal/internal/logger"
)

// rowTables is the allowlist of tables reachable through the row API,
// with the columns clients may filter on or write. Auth tables (users,
// sessions) are deliberately absent.
var rowTables = map[string]map[string]bool{
	"profiles": {
		"id": true, "name": true, "role": true, "preferences": true,
		"created_at": true, "updated_at": true,
	},
	"favorites": {
		"id": true, "user_id": true, "property_id": true, "created_at": true,
	},
	"inquiries": {
		"id": true, "user_id": true, "property_id": true, "message": true,
		"reference": true, "status": true, "created_at": true,
	},
	"saved_searches": {
		"id": true, "user_id": true, "name": true, "criteria": true, "created_at": true,
	},
	"webinars": {
		"id": true, "title": true, "language": true, "starts_at": true,
	},
	"webinar_registrations": {
		"id": true, "user_id": true, "webinar_id": true, "created_at": true,
	},
	"concierge_tickets": {
		"id": true, "user_id": true, "subject": true, "body": true,
		"status": true, "created_at": true, "updated_at": true,
	},
	"documents": {
		"id": true, "user_id": true, "file_name": true, "content_type": true,
		"size_bytes": true, "storage_key": true, "created_at": true,
	},
}

// RowRepository is the generic table access behind the dev backend's
// /rest/v1 surface. All SQL is built with squirrel against the
// allowlist above.
type RowRepository interface {
	SelectRows(ctx context.Context, table string, filters map[string]any, orderBy string, orderDesc bool, limit int) ([]map[string]any, error)
	InsertRow(ctx context.Context, table string, values map[string]any, ignoreDuplicates bool) error
	UpdateRows(ctx context.Context, table string, values map[string]any, filters map[string]any) error
	DeleteRows(ctx context.Context, table string, filters map[string]any) error
}

type rowRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewRowRepository constructs a [RowRepository] backed by the provided
// database connection and logger.
func NewRowRepository(db *DB, logger *logger.Logger) RowRepository {
	logger.Debug().Msg("creating row repository")
	return &rowRepository{
		db:     db,
		logger: logger,
	}
}

func allowedColumns(table string, cols map[string]any) error {
	allowed, ok := rowTables[table]
	if !ok {
		return ErrTableNotAllowed
	}
	for col := range cols {
		if !allowed[col] {
			return fmt.Errorf("%w: %s.%s", ErrColumnNotAllowed, table, col)
		}
	}
	return nil
}

// SelectRows returns all rows of table matching the equality filters.
func (r *rowRepository) SelectRows(ctx context.Context, table string, filters map[string]any, orderBy string, orderDesc bool, limit int) ([]map[string]any, error) {
	log := logger.FromContext(ctx)

	if err := allowedColumns(table, filters); err != nil {
		return nil, err
	}
	if orderBy != "" && !rowTables[table][orderBy] {
		return nil, fmt.Errorf("%w: %s.%s", ErrColumnNotAllowed, table, orderBy)
	}

	builder := sq.Select("*").From(table).PlaceholderFormat(sq.Dollar)
	if len(filters) > 0 {
		builder = builder.Where(sq.Eq(filters))
	}
	if orderBy != "" {
		direction := " ASC"
		if orderDesc {
			direction = " DESC"
		}
		builder = builder.OrderBy(orderBy + direction)
	}
	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select for %q: %w", table, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*rowRepository.SelectRows").Str("table", table).Msg("error selecting rows")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("read columns for %q: %w", table, err)
	}

	result := make([]map[string]any, 0)
	for rows.Next() {
		values := make([]any, len(columns))
		pointers := make([]any, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}
		if err = rows.Scan(pointers...); err != nil {
			return nil, fmt.Errorf("scan row from %q: %w", table, err)
		}

		record := make(map[string]any, len(columns))
		for i, col := range columns {
			record[col] = normalizeValue(values[i])
		}
		result = append(result, record)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows from %q: %w", table, err)
	}

	return result, nil
}

// InsertRow writes one row. With ignoreDuplicates the insert becomes
// ON CONFLICT DO NOTHING, which is what makes the profile-creation
// fallback idempotent.
func (r *rowRepository) InsertRow(ctx context.Context, table string, values map[string]any, ignoreDuplicates bool) error {
	log := logger.FromContext(ctx)

	if err := allowedColumns(table, values); err != nil {
		return err
	}
	if len(values) == 0 {
		return fmt.Errorf("%w: empty row for %s", ErrColumnNotAllowed, table)
	}

	// Deterministic column order keeps generated SQL stable for tests.
	columns := make([]string, 0, len(values))
	for col := range values {
		columns = append(columns, col)
	}
	sort.Strings(columns)

	args := make([]any, 0, len(columns))
	for _, col := range columns {
		args = append(args, insertValue(values[col]))
	}

	builder := sq.Insert(table).
		Columns(columns...).
		Values(args...).
		PlaceholderFormat(sq.Dollar)
	if ignoreDuplicates {
		builder = builder.Suffix("ON CONFLICT DO NOTHING")
	}

	query, sqlArgs, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("build insert for %q: %w", table, err)
	}

	if _, err = r.db.ExecContext(ctx, query, sqlArgs...); err != nil {
		log.Err(err).Str("func", "*rowRepository.InsertRow").Str("table", table).Msg("error inserting row")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

// UpdateRows patches every row matching the filters with values. An
// unfiltered update is refused.
func (r *rowRepository) UpdateRows(ctx context.Context, table string, values map[string]any, filters map[string]any) error {
	log := logger.FromContext(ctx)

	if err := allowedColumns(table, values); err != nil {
		return err
	}
	if err := allowedColumns(table, filters); err != nil {
		return err
	}
	if len(values) == 0 {
		return fmt.Errorf("%w: empty update for %s", ErrColumnNotAllowed, table)
	}
	if len(filters) == 0 {
		return ErrFilterRequired
	}

	columns := make([]string, 0, len(values))
	for col := range values {
		columns = append(columns, col)
	}
	sort.Strings(columns)

	builder := sq.Update(table).PlaceholderFormat(sq.Dollar)
	for _, col := range columns {
		builder = builder.Set(col, insertValue(values[col]))
	}

	query, args, err := builder.Where(sq.Eq(filters)).ToSql()
	if err != nil {
		return fmt.Errorf("build update for %q: %w", table, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*rowRepository.UpdateRows").Str("table", table).Msg("error updating rows")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

// DeleteRows removes every row matching the filters. An unfiltered
// delete is refused.
func (r *rowRepository) DeleteRows(ctx context.Context, table string, filters map[string]any) error {
	log := logger.FromContext(ctx)

	if err := allowedColumns(table, filters); err != nil {
		return err
	}
	if len(filters) == 0 {
		return ErrFilterRequired
	}

	query, args, err := sq.Delete(table).
		Where(sq.Eq(filters)).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete for %q: %w", table, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*rowRepository.DeleteRows").Str("table", table).Msg("error deleting rows")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

// normalizeValue makes driver values JSON-friendly: jsonb comes back as
// []byte and must stay raw JSON, anything else textual becomes string.
func normalizeValue(v any) any {
	b, ok := v.([]byte)
	if !ok {
		return v
	}
	if json.Valid(b) {
		return json.RawMessage(append([]byte(nil), b...))
	}
	return string(b)
}

// insertValue serializes composite payload values (maps, slices) to
// JSON so they land in jsonb columns; scalars pass through.
func insertValue(v any) any {
	switch v.(type) {
	case map[string]any, []any:
		b, err := json.Marshal(v)
		if err != nil {
			return v
		}
		return b
	default:
		return v
	}
}
