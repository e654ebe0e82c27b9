// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Domy v Itálii

package store

const (
	createClientSchema = `
		CREATE TABLE IF NOT EXISTS session_cookies (
			name TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			expires_at TIMESTAMP
		);
		CREATE TABLE IF NOT EXISTS recent_views (
			property_id TEXT PRIMARY KEY,
			viewed_at TIMESTAMP NOT NULL
		);`

	saveSessionCookie = `
		INSERT INTO session_cookies (name, value, expires_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (name) DO UPDATE SET
			value = excluded.value,
			expires_at = excluded.expires_at;`

	getAllSessionCookies = `
		SELECT name, value, expires_at
		FROM session_cookies;`

	deleteAllSessionCookies = `
		DELETE FROM session_cookies;`

	saveRecentView = `
		INSERT INTO recent_views (property_id, viewed_at)
		VALUES ($1, $2)
		ON CONFLICT (property_id) DO UPDATE SET
			viewed_at = excluded.viewed_at;`

	getRecentViews = `
		SELECT property_id, viewed_at
		FROM recent_views
		ORDER BY viewed_at DESC
		LIMIT $1;`
)
