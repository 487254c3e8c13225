package models

// LabeledValue pairs a machine value with its UI label.
type LabeledValue struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// LabeledField pairs a filterable field with its UI label.
type LabeledField struct {
	Field string `json:"field"`
	Label string `json:"label"`
}

// ColumnHierarchy is one column in the table-group / table / column tree used
// by the column-selection filter.
type ColumnHierarchy struct {
	ColumnID       string `json:"column_id"`
	ColumnName     string `json:"column_name"`
	TableID        string `json:"table_id"`
	TableName      string `json:"table_name"`
	TableGroupID   string `json:"table_group_id"`
	TableGroupName string `json:"table_group_name"`
}

// FilterOptions is everything a dashboard editor needs to populate its
// filter, category, and grouping controls.
type FilterOptions struct {
	FilterFieldsMetadata []LabeledField      `json:"filter_fields_metadata"`
	FilterValues         map[string][]string `json:"filter_values"`
	Columns              []ColumnHierarchy   `json:"columns"`

	CategoryOptions      []LabeledValue `json:"category_options"`
	ScoreGroupingOptions []LabeledValue `json:"score_grouping_options"`
	ScoreTypeOptions     []LabeledValue `json:"score_type_options"`
}

// FilterOptionsQuery controls which parts of FilterOptions are populated.
type FilterOptionsQuery struct {
	ProjectCode string

	IncludeFilterValues         bool
	IncludeColumns              bool
	IncludeCategoryOptions      bool
	IncludeScoreGroupingOptions bool
	IncludeScoreTypeOptions     bool
}
