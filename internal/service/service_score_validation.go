package service

import (
	"fmt"

	"github.com/MKhiriev/testgen/models"
)

const maxDashboardNameLength = 255

// validateDashboard checks a definition before it is persisted: the name
// length, that at least one score type is enabled, that the category names a
// known category column, and that every filter names a filterable field.
// Grouping-only columns such as dq_dimension or column_name are rejected as
// filter fields.
func validateDashboard(dashboard models.Dashboard) error {
	if dashboard.Name == "" || len(dashboard.Name) > maxDashboardNameLength {
		return ErrValidationInvalidName
	}

	if !dashboard.TotalScore && !dashboard.CDEScore {
		return ErrValidationNoScores
	}

	if dashboard.Category != "" && !models.IsValidCategory(dashboard.Category) {
		return fmt.Errorf("%w: %q", ErrValidationUnknownCategory, dashboard.Category)
	}

	for _, filter := range dashboard.Criteria.Filters {
		if !models.IsValidFilterField(filter.Field) {
			return fmt.Errorf("%w: %q", ErrValidationUnknownFilterField, filter.Field)
		}
		for _, other := range filter.Others {
			if !models.IsValidFilterField(other.Field) {
				return fmt.Errorf("%w: %q", ErrValidationUnknownFilterField, other.Field)
			}
		}
	}

	return nil
}

// applyUpdate overlays the non-nil fields of update onto dashboard.
func applyUpdate(dashboard *models.Dashboard, update models.DashboardUpdate) {
	if update.Name != nil {
		dashboard.Name = *update.Name
	}
	if update.TotalScore != nil {
		dashboard.TotalScore = *update.TotalScore
	}
	if update.CDEScore != nil {
		dashboard.CDEScore = *update.CDEScore
	}
	if update.Category != nil {
		dashboard.Category = *update.Category
	}
	if update.Filters != nil {
		dashboard.Criteria.Filters = *update.Filters
	}
	if update.GroupByField != nil {
		dashboard.Criteria.GroupByField = *update.GroupByField
	}
}
