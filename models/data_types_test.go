package models

import "testing"

func TestNormalizeGroupBy(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"table_group", "table_groups_name"},
		{"table group", "table_groups_name"},
		{"tablegroup", "table_groups_name"},
		{"Table_Group", "table_groups_name"},
		{"  table group  ", "table_groups_name"},
		{"table_groups_name", "table_groups_name"},
		{"dq_dimension", "dq_dimension"},
		{"unknown_thing", "unknown_thing"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := NormalizeGroupBy(tt.in); got != tt.want {
			t.Errorf("NormalizeGroupBy(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestIsValidGroupBy(t *testing.T) {
	for _, category := range GroupByCategories {
		if !IsValidGroupBy(category) {
			t.Errorf("expected %q to be a valid group-by column", category)
		}
	}

	for _, category := range []string{"", "score", "id", "table group"} {
		if IsValidGroupBy(category) {
			t.Errorf("expected %q to be rejected", category)
		}
	}
}

func TestIsValidScoreType(t *testing.T) {
	if !IsValidScoreType(ScoreTypeTotal) || !IsValidScoreType(ScoreTypeCDE) {
		t.Error("expected score and cde_score to be valid score types")
	}
	for _, scoreType := range []string{"", "profiling_score", "median"} {
		if IsValidScoreType(scoreType) {
			t.Errorf("expected %q to be rejected", scoreType)
		}
	}
}

func TestIsValidFilterField(t *testing.T) {
	for _, field := range FilterFields {
		if !IsValidFilterField(field) {
			t.Errorf("expected %q to be a filterable field", field)
		}
	}
	// grouping-only columns are not filterable
	for _, field := range []string{"dq_dimension", "column_name", "table_name", "semantic_data_type", ""} {
		if IsValidFilterField(field) {
			t.Errorf("expected %q to be rejected", field)
		}
	}
}

func TestIsValidCategory(t *testing.T) {
	if !IsValidCategory("dq_dimension") {
		t.Error("expected dq_dimension to be a valid category")
	}
	for _, field := range FilterFields {
		if !IsValidCategory(field) {
			t.Errorf("expected filter field %q to be a valid category", field)
		}
	}
	// group-by only columns are not categories
	for _, category := range []string{"column_name", "table_name", "semantic_data_type", ""} {
		if IsValidCategory(category) {
			t.Errorf("expected %q to be rejected", category)
		}
	}
}

func TestCategoryLabel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"dq_dimension", "Quality Dimension"},
		{"table_groups_name", "Table Group"},
		{"data_product", "Data Product"},
		{"something_custom", "something_custom"},
	}

	for _, tt := range tests {
		if got := CategoryLabel(tt.in); got != tt.want {
			t.Errorf("CategoryLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
