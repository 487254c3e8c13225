package models

import (
	"time"

	"github.com/google/uuid"
)

// Dashboard is a persisted score-definition: the configuration of one
// data-quality scorecard. It mirrors the score_definitions table.
type Dashboard struct {
	// ID is the unique identifier of the dashboard.
	ID uuid.UUID `json:"id"`

	// ProjectCode links the dashboard to a project.
	ProjectCode string `json:"project_code"`

	// Name is the display name of the dashboard. Must be 1..255 characters.
	Name string `json:"name"`

	// TotalScore enables calculation of the overall quality score.
	TotalScore bool `json:"total_score"`

	// CDEScore enables calculation of the score over critical data elements.
	CDEScore bool `json:"cde_score"`

	// Category is the optional column used to break scores into category
	// rows on the scorecard. Empty means no category grouping.
	Category string `json:"category,omitempty"`

	// Criteria holds the filters selecting which scored columns this
	// dashboard covers.
	Criteria Criteria `json:"criteria"`

	CreatedAt time.Time `json:"created_at,omitzero"`
	UpdatedAt time.Time `json:"updated_at,omitzero"`
}

// Criteria is the filter set that selects which scored columns contribute to
// a dashboard. Stored as a jsonb blob alongside the score definition.
type Criteria struct {
	// Filters is the list of field/value selections.
	Filters []Filter `json:"filters"`

	// GroupByField controls filter combination: when true, filters on the
	// same field are OR-ed together and the groups are AND-ed; when false,
	// every filter is AND-ed.
	GroupByField bool `json:"group_by_field"`
}

// Filter selects scored columns whose Field column equals Value.
type Filter struct {
	Field string `json:"field"`
	Value string `json:"value"`

	// Others are linked filters always applied together with this one,
	// regardless of the GroupByField combination mode.
	Others []LinkedFilter `json:"others,omitempty"`
}

// LinkedFilter is a secondary field/value pair attached to a Filter.
type LinkedFilter struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// DashboardListFilter narrows and orders a dashboard listing.
type DashboardListFilter struct {
	// ProjectCode restricts results to one project when non-empty.
	ProjectCode string

	// NameFilter is a case-insensitive substring match on the name.
	NameFilter string

	// SortedBy is the sort column; defaults to "name" when empty.
	SortedBy string
}

// DashboardUpdate carries the mutable dashboard fields for a partial update.
// Nil pointers leave the corresponding field unchanged.
type DashboardUpdate struct {
	Name       *string   `json:"name,omitempty"`
	TotalScore *bool     `json:"total_score,omitempty"`
	CDEScore   *bool     `json:"cde_score,omitempty"`
	Category   *string   `json:"category,omitempty"`
	Filters    *[]Filter `json:"filters,omitempty"`

	GroupByField *bool `json:"group_by_field,omitempty"`
}
