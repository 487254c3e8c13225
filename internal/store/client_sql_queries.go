// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	createCacheSchema = `
		CREATE TABLE IF NOT EXISTS cached_score_cards (
			definition_id TEXT PRIMARY KEY,
			project_code  TEXT NOT NULL,
			name          TEXT NOT NULL,
			payload       TEXT NOT NULL,
			synced_at     TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		);`

	upsertCachedScoreCard = `
		INSERT INTO cached_score_cards (definition_id, project_code, name, payload, synced_at)
		VALUES ($1, $2, $3, $4, CURRENT_TIMESTAMP)
		ON CONFLICT (definition_id) DO UPDATE SET
			project_code = excluded.project_code,
			name         = excluded.name,
			payload      = excluded.payload,
			synced_at    = CURRENT_TIMESTAMP;`

	getCachedScoreCard = `
		SELECT payload
		FROM cached_score_cards
		WHERE definition_id = $1;`

	listCachedScoreCards = `
		SELECT payload
		FROM cached_score_cards
		WHERE project_code = $1
		ORDER BY LOWER(name);`

	purgeProjectCache = `
		DELETE FROM cached_score_cards
		WHERE project_code = $1;`
)
