package models

// ScoreCard is the rendered form of a dashboard: the definition plus its
// current scores, optional category rows, and score history.
//
// Score values are pre-formatted strings ("94.6") rather than floats so the
// API responds with exactly what the UI renders; a nil pointer means the
// score is not calculated for this dashboard.
type ScoreCard struct {
	ID          string  `json:"id"`
	ProjectCode string  `json:"project_code"`
	Name        string  `json:"name"`
	Score       *string `json:"score"`
	CDEScore    *string `json:"cde_score"`

	ProfilingScore *string `json:"profiling_score"`
	TestingScore   *string `json:"testing_score"`

	// CategoriesLabel is the human-readable label of the category the
	// scores are grouped by, empty when no grouping is configured.
	CategoriesLabel string `json:"categories_label,omitempty"`

	Categories []CategoryScore `json:"categories"`
	History    []HistoryEntry  `json:"history"`
}

// CategoryScore is one category row on a scorecard.
type CategoryScore struct {
	Label string  `json:"label"`
	Score *string `json:"score"`
}

// HistoryEntry is one historical score observation, used to render trend
// graphs. Category is either ScoreTypeTotal or ScoreTypeCDE.
type HistoryEntry struct {
	Score    float64 `json:"score"`
	Category string  `json:"category"`
	Time     string  `json:"time"`
}

// CategoryResult is one cached score row in score_definition_results.
type CategoryResult struct {
	Category string
	Score    float64
}

// RecalculateResponse is returned after a dashboard's scores are refreshed.
type RecalculateResponse struct {
	Message   string    `json:"message"`
	Dashboard ScoreCard `json:"dashboard"`
}
