package hosted

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/domy-v-italii/portal/internal/app"
	"github.com/domy-v-italii/portal/internal/logger"
	"github.com/domy-v-italii/portal/internal/store"
	"github.com/domy-v-italii/portal/internal/utils"
)

// reservedParams are query keys with row-API meaning; everything else
// is treated as a column filter.
var reservedParams = map[string]bool{
	"select": true,
	"order":  true,
	"limit":  true,
}

// selectRows serves GET /rest/v1/{table}. Filters arrive as
// "col=eq.value" query params, ordering as "order=col.desc".
func (h *Handler) selectRows(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	table := chi.URLParam(r, "table")

	filters, err := parseFilters(r)
	if err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	orderBy, orderDesc := parseOrder(r.URL.Query().Get("order"))

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if limit, err = strconv.Atoi(raw); err != nil || limit < 0 {
			utils.WriteError(w, "invalid limit", http.StatusBadRequest)
			return
		}
	}

	rows, err := h.storages.RowRepository.SelectRows(ctx, table, filters, orderBy, orderDesc, limit)
	if err != nil {
		writeRowError(w, log, err)
		return
	}

	utils.WriteJSON(w, rows, http.StatusOK)
}

// insertRow serves POST /rest/v1/{table}. The body is one row object
// or an array of them; "Prefer: resolution=ignore-duplicates" turns
// conflicts into no-ops.
func (h *Handler) insertRow(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	table := chi.URLParam(r, "table")
	ignoreDuplicates := strings.Contains(r.Header.Get("Prefer"), "resolution=ignore-duplicates")

	var raw json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		log.Err(err).Msg(app.MsgInvalidJSON)
		utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	var batch []map[string]any
	if len(raw) > 0 && raw[0] == '[' {
		if err := json.Unmarshal(raw, &batch); err != nil {
			utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
			return
		}
	} else {
		var row map[string]any
		if err := json.Unmarshal(raw, &row); err != nil {
			utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
			return
		}
		batch = append(batch, row)
	}

	for _, row := range batch {
		if err := h.storages.RowRepository.InsertRow(ctx, table, row, ignoreDuplicates); err != nil {
			writeRowError(w, log, err)
			return
		}
	}

	w.WriteHeader(http.StatusCreated)
}

// updateRows serves PATCH /rest/v1/{table}. The body carries the new
// column values; filters select the rows to patch.
func (h *Handler) updateRows(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	table := chi.URLParam(r, "table")

	filters, err := parseFilters(r)
	if err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	var values map[string]any
	if err = json.NewDecoder(r.Body).Decode(&values); err != nil {
		log.Err(err).Msg(app.MsgInvalidJSON)
		utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	if err = h.storages.RowRepository.UpdateRows(ctx, table, values, filters); err != nil {
		writeRowError(w, log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// deleteRows serves DELETE /rest/v1/{table}.
func (h *Handler) deleteRows(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	table := chi.URLParam(r, "table")

	filters, err := parseFilters(r)
	if err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err = h.storages.RowRepository.DeleteRows(ctx, table, filters); err != nil {
		writeRowError(w, log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func parseFilters(r *http.Request) (map[string]any, error) {
	filters := make(map[string]any)
	for key, values := range r.URL.Query() {
		if reservedParams[key] || len(values) == 0 {
			continue
		}
		value, ok := strings.CutPrefix(values[0], "eq.")
		if !ok {
			return nil, errors.New("only eq filters are supported")
		}
		filters[key] = value
	}
	return filters, nil
}

func parseOrder(raw string) (string, bool) {
	if raw == "" {
		return "", false
	}
	col, dir, found := strings.Cut(raw, ".")
	if !found {
		return col, false
	}
	return col, dir == "desc"
}

func writeRowError(w http.ResponseWriter, log *logger.Logger, err error) {
	switch {
	case errors.Is(err, store.ErrTableNotAllowed):
		utils.WriteError(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, store.ErrColumnNotAllowed), errors.Is(err, store.ErrFilterRequired):
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
	default:
		log.Err(err).Msg("unexpected error in row API")
		utils.WriteError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}
