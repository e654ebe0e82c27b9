// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Domy v Itálii

package tui

import (
	"errors"
	"strings"

	"github.com/domy-v-italii/portal/internal/adapter"
)

func humanizeAuthError(err error) string {
	if err == nil {
		return ""
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Chybí síť nebo je portál nedostupný"
	}

	if errors.Is(err, adapter.ErrUnavailable) {
		return "Přihlašování je dočasně nedostupné, zkuste to prosím později"
	}

	// the portal passes backend reasons through verbatim; show just
	// the reason without the sentinel prefix
	for _, sentinel := range []error{
		adapter.ErrBadRequest,
		adapter.ErrUnauthorized,
		adapter.ErrConflict,
		adapter.ErrNotImplemented,
		adapter.ErrBadGateway,
	} {
		if errors.Is(err, sentinel) {
			if _, reason, found := strings.Cut(err.Error(), ": "); found && reason != "" {
				return reason
			}
		}
	}

	return err.Error()
}
