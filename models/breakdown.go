package models

import "github.com/google/uuid"

// BreakdownQuery selects the breakdown rows of one dashboard.
type BreakdownQuery struct {
	DefinitionID uuid.UUID

	// ScoreType is ScoreTypeTotal or ScoreTypeCDE.
	ScoreType string

	// GroupBy is a normalized, validated group-by column.
	GroupBy string
}

// BreakdownItem is one row of a score breakdown: the share of issues, the
// score, and the issue count for one value of the group-by column.
type BreakdownItem struct {
	// Category is the group-by column the row was grouped on.
	Category string `json:"category"`

	// Value is the grouped column value, e.g. a table name.
	Value string `json:"value"`

	// Impact is the formatted share of all issues attributed to this row.
	Impact string `json:"impact"`

	// Score is the formatted weighted score of this row.
	Score string `json:"score"`

	IssueCt int64 `json:"issue_ct"`
}

// IssueQuery selects the issues behind one breakdown row.
type IssueQuery struct {
	DefinitionID uuid.UUID
	ScoreType    string
	GroupBy      string

	// Value is the breakdown row value the issues belong to.
	Value string
}

// IssueItem is a single hygiene or test issue.
type IssueItem struct {
	Type   string `json:"type"`
	Status string `json:"status"`
	Detail string `json:"detail"`

	// Time is the detection time as a unix timestamp.
	Time int64 `json:"time"`

	// Column is the affected column name, nil for table-level issues.
	Column *string `json:"column,omitempty"`
}
