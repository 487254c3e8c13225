// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/testgen/internal/logger"
	"github.com/MKhiriev/testgen/models"
	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
)

// CategoryResultPrefix marks cached result rows that hold a per-category
// score rather than one of the fixed score types. The category value follows
// the prefix.
const CategoryResultPrefix = "category:"

// psql builds queries with PostgreSQL-style $N placeholders.
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// scoreRepository is the PostgreSQL-backed implementation of
// [ScoreRepository]. Score definitions live in score_definitions; computed
// scores are cached in score_definition_results and their history in
// score_definition_results_history. Fresh scores are aggregated from
// column_scores, the latest per-column scoring data.
type scoreRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewScoreRepository constructs a [ScoreRepository] backed by the provided
// database connection and logger.
func NewScoreRepository(db *DB, logger *logger.Logger) ScoreRepository {
	logger.Debug().Msg("creating score repository")
	return &scoreRepository{
		db:     db,
		logger: logger,
	}
}

// CreateDefinition persists a new score definition and returns the fully
// populated [models.Dashboard] with server-assigned fields.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrNameAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *scoreRepository) CreateDefinition(ctx context.Context, dashboard models.Dashboard) (models.Dashboard, error) {
	log := logger.FromContext(ctx)

	criteria, err := json.Marshal(dashboard.Criteria)
	if err != nil {
		return models.Dashboard{}, fmt.Errorf("error marshaling criteria: %w", err)
	}

	if dashboard.ID == uuid.Nil {
		dashboard.ID = uuid.New()
	}

	row := r.db.QueryRowContext(ctx, createDefinition,
		dashboard.ID, dashboard.ProjectCode, dashboard.Name,
		dashboard.TotalScore, dashboard.CDEScore, nullString(dashboard.Category), criteria)

	saved, err := scanDefinition(row)
	if err != nil {
		log.Err(err).Str("func", "*scoreRepository.CreateDefinition").Msg("error: scanning error")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Dashboard{}, ErrNameAlreadyExists
		default:
			return models.Dashboard{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return saved, nil
}

// FindDefinition retrieves one score definition by id.
//
// Error handling:
//   - sql.ErrNoRows → [ErrDashboardNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *scoreRepository) FindDefinition(ctx context.Context, id uuid.UUID) (models.Dashboard, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, findDefinition, id)
	dashboard, err := scanDefinition(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Dashboard{}, ErrDashboardNotFound
		}

		log.Err(err).Str("func", "*scoreRepository.FindDefinition").Msg("error: scanning error")
		return models.Dashboard{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return dashboard, nil
}

// ListDefinitions returns the score definitions matching filter, ordered by
// the filter's sort column (name by default).
func (r *scoreRepository) ListDefinitions(ctx context.Context, filter models.DashboardListFilter) ([]models.Dashboard, error) {
	log := logger.FromContext(ctx)

	builder := psql.
		Select("id", "project_code", "name", "total_score", "cde_score", "category", "criteria", "created_at", "updated_at").
		From("score_definitions")

	if filter.ProjectCode != "" {
		builder = builder.Where(squirrel.Eq{"project_code": filter.ProjectCode})
	}
	if filter.NameFilter != "" {
		builder = builder.Where(squirrel.ILike{"name": "%" + filter.NameFilter + "%"})
	}
	builder = builder.OrderBy(sortColumn(filter.SortedBy))

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building list query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*scoreRepository.ListDefinitions").Msg("error: query error")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	var dashboards []models.Dashboard
	for rows.Next() {
		dashboard, err := scanDefinition(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning definition: %w", err)
		}
		dashboards = append(dashboards, dashboard)
	}

	return dashboards, rows.Err()
}

// UpdateDefinition persists the mutable fields of an existing definition.
//
// Error handling:
//   - sql.ErrNoRows → [ErrDashboardNotFound].
//   - PostgreSQL unique_violation (23505) → [ErrNameAlreadyExists].
func (r *scoreRepository) UpdateDefinition(ctx context.Context, dashboard models.Dashboard) (models.Dashboard, error) {
	log := logger.FromContext(ctx)

	criteria, err := json.Marshal(dashboard.Criteria)
	if err != nil {
		return models.Dashboard{}, fmt.Errorf("error marshaling criteria: %w", err)
	}

	row := r.db.QueryRowContext(ctx, updateDefinition,
		dashboard.ID, dashboard.Name, dashboard.TotalScore, dashboard.CDEScore,
		nullString(dashboard.Category), criteria)

	saved, err := scanDefinition(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Dashboard{}, ErrDashboardNotFound
		}

		log.Err(err).Str("func", "*scoreRepository.UpdateDefinition").Msg("error: scanning error")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Dashboard{}, ErrNameAlreadyExists
		default:
			return models.Dashboard{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return saved, nil
}

// DeleteDefinition removes a definition. Cached results and history rows go
// with it via ON DELETE CASCADE.
func (r *scoreRepository) DeleteDefinition(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteDefinition, id)
	if err != nil {
		log.Err(err).Str("func", "*scoreRepository.DeleteDefinition").Msg("error: exec error")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrDashboardNotFound
	}

	return nil
}

// FreshResults computes the dashboard's current score rows from
// column_scores, honoring the definition's criteria.
//
// The returned rows cover, depending on the definition flags: the total
// score plus its profiling and testing components, the CDE score, and one
// CategoryResultPrefix row per value of the definition's category column.
func (r *scoreRepository) FreshResults(ctx context.Context, dashboard models.Dashboard) ([]models.CategoryResult, error) {
	criteria, err := criteriaConditions(dashboard.Criteria)
	if err != nil {
		return nil, err
	}

	var results []models.CategoryResult

	if dashboard.TotalScore {
		fixed := []struct {
			category string
			kind     string
		}{
			{models.ScoreTypeTotal, ""},
			{"profiling_score", models.ScoringKindProfiling},
			{"testing_score", models.ScoringKindTesting},
		}
		for _, f := range fixed {
			score, ok, err := r.weightedScore(ctx, dashboard.ProjectCode, criteria, f.kind, false)
			if err != nil {
				return nil, err
			}
			if ok {
				results = append(results, models.CategoryResult{Category: f.category, Score: score})
			}
		}
	}

	if dashboard.CDEScore {
		score, ok, err := r.weightedScore(ctx, dashboard.ProjectCode, criteria, "", true)
		if err != nil {
			return nil, err
		}
		if ok {
			results = append(results, models.CategoryResult{Category: models.ScoreTypeCDE, Score: score})
		}
	}

	if dashboard.Category != "" {
		categoryRows, err := r.categoryScores(ctx, dashboard, criteria)
		if err != nil {
			return nil, err
		}
		results = append(results, categoryRows...)
	}

	return results, nil
}

// weightedScore aggregates one record-count-weighted score over the columns
// selected by the criteria. ok is false when no scored column matches.
func (r *scoreRepository) weightedScore(ctx context.Context, projectCode string, criteria squirrel.Sqlizer, kind string, cdeOnly bool) (float64, bool, error) {
	log := logger.FromContext(ctx)

	builder := psql.
		Select(
			"COALESCE(SUM(score * record_ct) / NULLIF(SUM(record_ct), 0), 0)",
			"COUNT(*)",
		).
		From("column_scores").
		Where(squirrel.Eq{"project_code": projectCode}).
		Where(criteria)

	if kind != "" {
		builder = builder.Where(squirrel.Eq{"kind": kind})
	}
	if cdeOnly {
		builder = builder.Where(squirrel.Eq{"critical_data_element": true})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, false, fmt.Errorf("error building score query: %w", err)
	}

	var score float64
	var count int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&score, &count); err != nil {
		log.Err(err).Str("func", "*scoreRepository.weightedScore").Msg("error: scanning error")
		return 0, false, fmt.Errorf("unexpected DB error: %w", err)
	}

	return score, count > 0, nil
}

// categoryScores computes one weighted score per value of the definition's
// category column, worst first.
func (r *scoreRepository) categoryScores(ctx context.Context, dashboard models.Dashboard, criteria squirrel.Sqlizer) ([]models.CategoryResult, error) {
	log := logger.FromContext(ctx)

	category, err := scoringColumn(dashboard.Category)
	if err != nil {
		return nil, err
	}

	builder := psql.
		Select(
			category,
			"COALESCE(SUM(score * record_ct) / NULLIF(SUM(record_ct), 0), 0) AS category_score",
		).
		From("column_scores").
		Where(squirrel.Eq{"project_code": dashboard.ProjectCode}).
		Where(criteria).
		Where(squirrel.NotEq{category: nil}).
		GroupBy(category).
		OrderBy("category_score")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building category query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*scoreRepository.categoryScores").Msg("error: query error")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	var results []models.CategoryResult
	for rows.Next() {
		var value string
		var score float64
		if err := rows.Scan(&value, &score); err != nil {
			return nil, fmt.Errorf("error scanning category score: %w", err)
		}
		results = append(results, models.CategoryResult{
			Category: CategoryResultPrefix + value,
			Score:    score,
		})
	}

	return results, rows.Err()
}

// CachedResults returns the score rows last saved for one definition.
func (r *scoreRepository) CachedResults(ctx context.Context, id uuid.UUID) ([]models.CategoryResult, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, selectResults, id)
	if err != nil {
		log.Err(err).Str("func", "*scoreRepository.CachedResults").Msg("error: query error")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	var results []models.CategoryResult
	for rows.Next() {
		var result models.CategoryResult
		if err := rows.Scan(&result.Category, &result.Score); err != nil {
			return nil, fmt.Errorf("error scanning result: %w", err)
		}
		results = append(results, result)
	}

	return results, rows.Err()
}

// SaveResults replaces the cached score rows of one definition inside a
// transaction, so readers never observe a half-written cache.
func (r *scoreRepository) SaveResults(ctx context.Context, id uuid.UUID, results []models.CategoryResult) error {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, deleteResults, id); err != nil {
		log.Err(err).Str("func", "*scoreRepository.SaveResults").Msg("error: delete error")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	for _, result := range results {
		if _, err := tx.ExecContext(ctx, insertResult, id, result.Category, result.Score); err != nil {
			log.Err(err).Str("func", "*scoreRepository.SaveResults").Msg("error: insert error")
			return fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return tx.Commit()
}

// AppendHistory records history entries for the definition's trend graphs.
func (r *scoreRepository) AppendHistory(ctx context.Context, id uuid.UUID, entries []models.HistoryEntry) error {
	log := logger.FromContext(ctx)

	for _, entry := range entries {
		runTime, err := time.Parse(time.RFC3339, entry.Time)
		if err != nil {
			return fmt.Errorf("error parsing history time: %w", err)
		}

		if _, err := r.db.ExecContext(ctx, insertHistoryEntry, id, entry.Category, entry.Score, runTime); err != nil {
			log.Err(err).Str("func", "*scoreRepository.AppendHistory").Msg("error: insert error")
			return fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return nil
}

// History returns up to limit most recent history entries, oldest first.
func (r *scoreRepository) History(ctx context.Context, id uuid.UUID, limit int) ([]models.HistoryEntry, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, selectHistory, id, limit)
	if err != nil {
		log.Err(err).Str("func", "*scoreRepository.History").Msg("error: query error")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	var entries []models.HistoryEntry
	for rows.Next() {
		var entry models.HistoryEntry
		var runTime time.Time
		if err := rows.Scan(&entry.Category, &entry.Score, &runTime); err != nil {
			return nil, fmt.Errorf("error scanning history entry: %w", err)
		}
		entry.Time = runTime.UTC().Format(time.RFC3339)
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

// Breakdown groups the dashboard's column scores by the query's group-by
// column. Impact is each row's share of all matching issues.
func (r *scoreRepository) Breakdown(ctx context.Context, dashboard models.Dashboard, query models.BreakdownQuery) ([]models.BreakdownItem, error) {
	log := logger.FromContext(ctx)

	criteria, err := criteriaConditions(dashboard.Criteria)
	if err != nil {
		return nil, err
	}
	group, err := scoringColumn(query.GroupBy)
	if err != nil {
		return nil, err
	}

	builder := psql.
		Select(
			group+" AS value",
			"SUM(issue_ct) AS issue_ct",
			"COALESCE(SUM(score * record_ct) / NULLIF(SUM(record_ct), 0), 0) AS score",
			"COALESCE(SUM(issue_ct)::numeric / NULLIF(SUM(SUM(issue_ct)) OVER (), 0), 0) AS impact",
		).
		From("column_scores").
		Where(squirrel.Eq{"project_code": dashboard.ProjectCode}).
		Where(criteria).
		Where(squirrel.NotEq{group: nil}).
		GroupBy(group).
		OrderBy("issue_ct DESC")

	if query.ScoreType == models.ScoreTypeCDE {
		builder = builder.Where(squirrel.Eq{"critical_data_element": true})
	}

	sqlQuery, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building breakdown query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		log.Err(err).Str("func", "*scoreRepository.Breakdown").Msg("error: query error")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	var items []models.BreakdownItem
	for rows.Next() {
		var value string
		var issueCt int64
		var score, impact float64
		if err := rows.Scan(&value, &issueCt, &score, &impact); err != nil {
			return nil, fmt.Errorf("error scanning breakdown item: %w", err)
		}
		items = append(items, models.BreakdownItem{
			Category: query.GroupBy,
			Value:    value,
			Impact:   models.FormatImpact(impact),
			Score:    models.FormatScore(score),
			IssueCt:  issueCt,
		})
	}

	return items, rows.Err()
}

// Issues lists the individual hygiene and test issues behind one breakdown
// row, newest first.
func (r *scoreRepository) Issues(ctx context.Context, dashboard models.Dashboard, query models.IssueQuery) ([]models.IssueItem, error) {
	log := logger.FromContext(ctx)

	criteria, err := criteriaConditions(dashboard.Criteria)
	if err != nil {
		return nil, err
	}
	group, err := scoringColumn(query.GroupBy)
	if err != nil {
		return nil, err
	}

	builder := psql.
		Select(
			"issue_type",
			"status",
			"detail",
			"EXTRACT(EPOCH FROM detected_at)::bigint",
			"column_name",
		).
		From("dq_issues").
		Where(squirrel.Eq{"project_code": dashboard.ProjectCode}).
		Where(criteria).
		Where(squirrel.Eq{group: query.Value}).
		OrderBy("detected_at DESC")

	if query.ScoreType == models.ScoreTypeCDE {
		builder = builder.Where(squirrel.Eq{"critical_data_element": true})
	}

	sqlQuery, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building issues query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		log.Err(err).Str("func", "*scoreRepository.Issues").Msg("error: query error")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	var items []models.IssueItem
	for rows.Next() {
		var item models.IssueItem
		var column sql.NullString
		if err := rows.Scan(&item.Type, &item.Status, &item.Detail, &item.Time, &column); err != nil {
			return nil, fmt.Errorf("error scanning issue: %w", err)
		}
		if column.Valid {
			item.Column = &column.String
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

// CategoryValues returns the distinct values present for every filterable
// field in one project.
func (r *scoreRepository) CategoryValues(ctx context.Context, projectCode string) (map[string][]string, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, categoryValues, projectCode)
	if err != nil {
		log.Err(err).Str("func", "*scoreRepository.CategoryValues").Msg("error: query error")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	values := make(map[string][]string)
	for rows.Next() {
		var category, value string
		if err := rows.Scan(&category, &value); err != nil {
			return nil, fmt.Errorf("error scanning category value: %w", err)
		}
		values[category] = append(values[category], value)
	}

	return values, rows.Err()
}

// ColumnHierarchy returns the table-group / table / column tree of one
// project, ordered for direct rendering.
func (r *scoreRepository) ColumnHierarchy(ctx context.Context, projectCode string) ([]models.ColumnHierarchy, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, columnHierarchy, projectCode)
	if err != nil {
		log.Err(err).Str("func", "*scoreRepository.ColumnHierarchy").Msg("error: query error")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	var columns []models.ColumnHierarchy
	for rows.Next() {
		var column models.ColumnHierarchy
		if err := rows.Scan(
			&column.ColumnID, &column.ColumnName,
			&column.TableID, &column.TableName,
			&column.TableGroupID, &column.TableGroupName,
		); err != nil {
			return nil, fmt.Errorf("error scanning column: %w", err)
		}
		columns = append(columns, column)
	}

	return columns, rows.Err()
}

// criteriaConditions translates a definition's criteria into SQL conditions.
//
// With GroupByField set, filters on the same field are OR-ed together and
// the per-field groups are AND-ed; otherwise every filter is AND-ed. Filter
// fields are validated against the scoring columns before they are
// interpolated as identifiers.
func criteriaConditions(criteria models.Criteria) (squirrel.Sqlizer, error) {
	if len(criteria.Filters) == 0 {
		return squirrel.And{}, nil
	}

	if !criteria.GroupByField {
		conditions := squirrel.And{}
		for _, filter := range criteria.Filters {
			condition, err := filterCondition(filter)
			if err != nil {
				return nil, err
			}
			conditions = append(conditions, condition)
		}
		return conditions, nil
	}

	var fieldOrder []string
	groups := make(map[string]squirrel.Or)
	for _, filter := range criteria.Filters {
		condition, err := filterCondition(filter)
		if err != nil {
			return nil, err
		}
		if _, seen := groups[filter.Field]; !seen {
			fieldOrder = append(fieldOrder, filter.Field)
		}
		groups[filter.Field] = append(groups[filter.Field], condition)
	}

	conditions := squirrel.And{}
	for _, field := range fieldOrder {
		conditions = append(conditions, groups[field])
	}
	return conditions, nil
}

func filterCondition(filter models.Filter) (squirrel.Sqlizer, error) {
	field, err := scoringColumn(filter.Field)
	if err != nil {
		return nil, err
	}

	if len(filter.Others) == 0 {
		return squirrel.Eq{field: filter.Value}, nil
	}

	linked := squirrel.And{squirrel.Eq{field: filter.Value}}
	for _, other := range filter.Others {
		otherField, err := scoringColumn(other.Field)
		if err != nil {
			return nil, err
		}
		linked = append(linked, squirrel.Eq{otherField: other.Value})
	}
	return linked, nil
}

// scoringColumn validates a client-supplied column name before it is
// interpolated into SQL as an identifier. Only the known scoring columns
// pass.
func scoringColumn(name string) (string, error) {
	if models.IsValidGroupBy(name) {
		return name, nil
	}
	return "", fmt.Errorf("unknown scoring column %q", strings.TrimSpace(name))
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanDefinition(row rowScanner) (models.Dashboard, error) {
	var dashboard models.Dashboard
	var category sql.NullString
	var criteria []byte

	if err := row.Scan(
		&dashboard.ID, &dashboard.ProjectCode, &dashboard.Name,
		&dashboard.TotalScore, &dashboard.CDEScore, &category, &criteria,
		&dashboard.CreatedAt, &dashboard.UpdatedAt,
	); err != nil {
		return models.Dashboard{}, err
	}

	dashboard.Category = category.String
	if len(criteria) > 0 {
		if err := json.Unmarshal(criteria, &dashboard.Criteria); err != nil {
			return models.Dashboard{}, fmt.Errorf("error unmarshaling criteria: %w", err)
		}
	}

	return dashboard, nil
}

// sortColumn whitelists the list sort column; unknown values fall back to
// name ordering.
func sortColumn(sortedBy string) string {
	switch sortedBy {
	case "name", "":
		return "LOWER(name)"
	case "project_code":
		return "project_code"
	case "created_at":
		return "created_at DESC"
	case "updated_at":
		return "updated_at DESC"
	default:
		return "LOWER(name)"
	}
}
