package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
)

// RowQuery is a fluent builder over the service's row API
// (/rest/v1/{table}). It supports the subset the portal needs:
// column selection, equality filters, ordering, limits, single-row
// reads, duplicate-safe inserts, and filtered updates and deletes.
//
// Filters ride the query string in "col=eq.value" form.
type RowQuery struct {
	client *Client
	jar    *CookieJar
	table  string

	selectCols string
	filters    [][2]string
	orderCol   string
	orderDesc  bool
	limit      int
}

// From starts a row query against the named table.
func (c *Client) From(table string) *RowQuery {
	return &RowQuery{client: c, table: table, selectCols: "*"}
}

// WithJar attaches the request-scoped cookie jar so the row call runs
// under the caller's session.
func (q *RowQuery) WithJar(jar *CookieJar) *RowQuery {
	q.jar = jar
	return q
}

// Select overrides the column list (default "*").
func (q *RowQuery) Select(cols string) *RowQuery {
	q.selectCols = cols
	return q
}

// Eq adds an equality filter on col.
func (q *RowQuery) Eq(col string, value any) *RowQuery {
	q.filters = append(q.filters, [2]string{col, fmt.Sprintf("eq.%v", value)})
	return q
}

// OrderBy orders the result by col, descending when desc is true.
func (q *RowQuery) OrderBy(col string, desc bool) *RowQuery {
	q.orderCol = col
	q.orderDesc = desc
	return q
}

// Limit caps the number of returned rows.
func (q *RowQuery) Limit(n int) *RowQuery {
	q.limit = n
	return q
}

// Single fetches exactly one row into dst. No matching row yields
// ErrRowNotFound.
func (q *RowQuery) Single(ctx context.Context, dst any) error {
	q.limit = 1

	var raw []json.RawMessage
	if err := q.All(ctx, &raw); err != nil {
		return err
	}
	if len(raw) == 0 {
		return ErrRowNotFound
	}

	if err := json.Unmarshal(raw[0], dst); err != nil {
		return fmt.Errorf("decode row from %q: %w", q.table, err)
	}

	return nil
}

// All fetches every matching row into dst, which must be a pointer to a
// slice.
func (q *RowQuery) All(ctx context.Context, dst any) error {
	if !q.client.configured {
		return ErrNotConfigured
	}

	req := q.client.request(ctx, q.jar).SetQueryParam("select", q.selectCols)
	for _, f := range q.filters {
		req.SetQueryParam(f[0], f[1])
	}
	if q.orderCol != "" {
		dir := "asc"
		if q.orderDesc {
			dir = "desc"
		}
		req.SetQueryParam("order", q.orderCol+"."+dir)
	}
	if q.limit > 0 {
		req.SetQueryParam("limit", strconv.Itoa(q.limit))
	}

	resp, err := req.Get("/rest/v1/" + q.table)
	if err != nil {
		return fmt.Errorf("select from %q: %w", q.table, err)
	}
	if resp.IsError() {
		return apiError(resp)
	}

	if err = json.Unmarshal(resp.Body(), dst); err != nil {
		return fmt.Errorf("decode rows from %q: %w", q.table, err)
	}

	return nil
}

// Insert writes one row.
func (q *RowQuery) Insert(ctx context.Context, row any) error {
	return q.insert(ctx, row, false)
}

// InsertIgnoreDuplicates writes one row, silently succeeding when a row
// with the same primary key already exists. This is the create-if-
// missing primitive the profile fallback relies on.
func (q *RowQuery) InsertIgnoreDuplicates(ctx context.Context, row any) error {
	return q.insert(ctx, row, true)
}

func (q *RowQuery) insert(ctx context.Context, row any, ignoreDuplicates bool) error {
	if !q.client.configured {
		return ErrNotConfigured
	}

	req := q.client.request(ctx, q.jar).SetBody(row)
	if ignoreDuplicates {
		req.SetHeader("Prefer", "resolution=ignore-duplicates")
	}

	resp, err := req.Post("/rest/v1/" + q.table)
	if err != nil {
		return fmt.Errorf("insert into %q: %w", q.table, err)
	}
	if resp.IsError() {
		return apiError(resp)
	}

	return nil
}

// Update patches every row matching the filters with the given column
// values. At least one filter is required, the service refuses
// unfiltered updates.
func (q *RowQuery) Update(ctx context.Context, values map[string]any) error {
	if !q.client.configured {
		return ErrNotConfigured
	}

	req := q.client.request(ctx, q.jar).SetBody(values)
	for _, f := range q.filters {
		req.SetQueryParam(f[0], f[1])
	}

	resp, err := req.Patch("/rest/v1/" + q.table)
	if err != nil {
		return fmt.Errorf("update %q: %w", q.table, err)
	}
	if resp.IsError() {
		return apiError(resp)
	}

	return nil
}

// Delete removes every row matching the filters. At least one filter is
// required, the service refuses unfiltered deletes.
func (q *RowQuery) Delete(ctx context.Context) error {
	if !q.client.configured {
		return ErrNotConfigured
	}

	req := q.client.request(ctx, q.jar)
	for _, f := range q.filters {
		req.SetQueryParam(f[0], f[1])
	}

	resp, err := req.Delete("/rest/v1/" + q.table)
	if err != nil {
		return fmt.Errorf("delete from %q: %w", q.table, err)
	}
	if resp.IsError() {
		return apiError(resp)
	}

	return nil
}
