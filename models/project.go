// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/google/uuid"
)

// Project is one monitored project in the metadata database. Dashboards and
// scored columns always belong to exactly one project.
type Project struct {
	ID uuid.UUID `json:"id"`

	// ProjectCode is the unique, human-assigned identifier referenced by
	// every dashboard and API call.
	ProjectCode string `json:"project_code"`

	ProjectName string    `json:"project_name"`
	CreatedAt   time.Time `json:"created_at,omitzero"`
}
