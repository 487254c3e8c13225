// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	findProjectByCode = `SELECT id, project_code, project_name, created_at
    FROM projects
    WHERE project_code = $1;`

	createDefinition = `INSERT INTO score_definitions (id, project_code, name, total_score, cde_score, category, criteria)
    VALUES ($1, $2, $3, $4, $5, $6, $7)
    RETURNING id, project_code, name, total_score, cde_score, category, criteria, created_at, updated_at;`

	findDefinition = `SELECT id, project_code, name, total_score, cde_score, category, criteria, created_at, updated_at
    FROM score_definitions
    WHERE id = $1;`

	updateDefinition = `UPDATE score_definitions
    SET name = $2, total_score = $3, cde_score = $4, category = $5, criteria = $6, updated_at = NOW()
    WHERE id = $1
    RETURNING id, project_code, name, total_score, cde_score, category, criteria, created_at, updated_at;`

	deleteDefinition = `DELETE FROM score_definitions
    WHERE id = $1;`

	deleteResults = `DELETE FROM score_definition_results
    WHERE definition_id = $1;`

	insertResult = `INSERT INTO score_definition_results (definition_id, category, score)
    VALUES ($1, $2, $3);`

	selectResults = `SELECT category, score
    FROM score_definition_results
    WHERE definition_id = $1;`

	insertHistoryEntry = `INSERT INTO score_definition_results_history (definition_id, category, score, last_run_time)
    VALUES ($1, $2, $3, $4);`

	selectHistory = `SELECT category, score, last_run_time
    FROM (
        SELECT category, score, last_run_time
        FROM score_definition_results_history
        WHERE definition_id = $1
        ORDER BY last_run_time DESC
        LIMIT $2
    ) h
    ORDER BY last_run_time;`

	// categoryValues mirrors the platform's filter-option query: one pass
	// over the latest column scores, unnesting every filterable field into
	// (category, value) pairs.
	categoryValues = `SELECT category, value
    FROM (
        SELECT DISTINCT
            UNNEST(ARRAY['table_groups_name', 'data_location', 'data_source', 'source_system',
                         'source_process', 'business_domain', 'stakeholder_group',
                         'transform_level', 'data_product']) AS category,
            UNNEST(ARRAY[table_groups_name, data_location, data_source, source_system,
                         source_process, business_domain, stakeholder_group,
                         transform_level, data_product]) AS value
        FROM column_scores
        WHERE project_code = $1
    ) category_values
    WHERE value IS NOT NULL
    ORDER BY category, LOWER(value);`

	columnHierarchy = `SELECT
        c.column_id::text,
        c.column_name,
        c.table_id::text,
        c.table_name,
        c.table_groups_id::text,
        g.table_groups_name
    FROM data_column_chars c
    INNER JOIN table_groups g ON (g.id = c.table_groups_id)
    WHERE g.project_code = $1
    ORDER BY LOWER(g.table_groups_name), LOWER(c.table_name), c.ordinal_position;`

	saveConnection = `INSERT INTO connections (id, project_code, name, sql_flavor, host, port, db_user, encrypted_password)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    RETURNING id, project_code, name, sql_flavor, host, port, db_user, encrypted_password, created_at;`

	findConnection = `SELECT id, project_code, name, sql_flavor, host, port, db_user, encrypted_password, created_at
    FROM connections
    WHERE id = $1;`

	listConnections = `SELECT id, project_code, name, sql_flavor, host, port, db_user, encrypted_password, created_at
    FROM connections
    WHERE project_code = $1
    ORDER BY LOWER(name);`
)
