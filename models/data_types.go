// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// Score types a dashboard can be broken down by.
const (
	ScoreTypeTotal = "score"
	ScoreTypeCDE   = "cde_score"
)

// Scoring kinds stored in column_scores.kind.
const (
	ScoringKindProfiling = "profiling"
	ScoringKindTesting   = "testing"
)

// GroupByCategories are the columns a breakdown or issue listing may be
// grouped by. The order matters: it is the order options are presented in.
var GroupByCategories = []string{
	"column_name",
	"table_name",
	"dq_dimension",
	"semantic_data_type",
	"table_groups_name",
	"data_location",
	"data_source",
	"source_system",
	"source_process",
	"business_domain",
	"stakeholder_group",
	"transform_level",
	"data_product",
}

// FilterFields are the columns dashboard criteria may filter on. Quality
// dimensions are grouping-only and deliberately absent here.
var FilterFields = []string{
	"table_groups_name",
	"data_location",
	"data_source",
	"source_system",
	"source_process",
	"business_domain",
	"stakeholder_group",
	"transform_level",
	"data_product",
}

// CategoryFields are the columns a scorecard may break its scores into
// category rows by, in the order the editor presents them: the filterable
// fields with dq_dimension slotted before data_product.
var CategoryFields = []string{
	"table_groups_name",
	"data_location",
	"data_source",
	"source_system",
	"source_process",
	"business_domain",
	"stakeholder_group",
	"transform_level",
	"dq_dimension",
	"data_product",
}

// categoryLabels maps category columns to their UI labels.
var categoryLabels = map[string]string{
	"column_name":        "Column",
	"table_name":         "Table",
	"dq_dimension":       "Quality Dimension",
	"semantic_data_type": "Semantic Data Type",
	"table_groups_name":  "Table Group",
	"data_location":      "Data Location",
	"data_source":        "Data Source",
	"source_system":      "Source System",
	"source_process":     "Source Process",
	"business_domain":    "Business Domain",
	"stakeholder_group":  "Stakeholder Group",
	"transform_level":    "Transform Level",
	"data_product":       "Data Product",
}

// legacyGroupByNames maps historical client spellings to current column names.
var legacyGroupByNames = map[string]string{
	"table_group": "table_groups_name",
	"table group": "table_groups_name",
	"tablegroup":  "table_groups_name",
}

// NormalizeGroupBy maps legacy group-by spellings onto current column names.
// Unknown values are returned unchanged for the caller to validate.
func NormalizeGroupBy(groupBy string) string {
	key := strings.TrimSpace(strings.ToLower(strings.ReplaceAll(groupBy, "_", " ")))
	if normalized, ok := legacyGroupByNames[key]; ok {
		return normalized
	}
	return groupBy
}

// IsValidGroupBy reports whether category is a recognised group-by column.
func IsValidGroupBy(category string) bool {
	for _, c := range GroupByCategories {
		if c == category {
			return true
		}
	}
	return false
}

// IsValidScoreType reports whether scoreType names a known score type.
func IsValidScoreType(scoreType string) bool {
	return scoreType == ScoreTypeTotal || scoreType == ScoreTypeCDE
}

// IsValidFilterField reports whether field may appear in dashboard filter
// criteria.
func IsValidFilterField(field string) bool {
	for _, f := range FilterFields {
		if f == field {
			return true
		}
	}
	return false
}

// IsValidCategory reports whether category may be used as the scorecard
// category grouping.
func IsValidCategory(category string) bool {
	for _, c := range CategoryFields {
		if c == category {
			return true
		}
	}
	return false
}

// CategoryLabel returns the UI label for a category column, falling back to
// the raw column name for unknown categories.
func CategoryLabel(category string) string {
	if label, ok := categoryLabels[category]; ok {
		return label
	}
	return category
}
