package store

import "errors"

// Sentinel errors returned by the repository layer. Handlers map these onto
// HTTP status codes; everything else surfaces as an internal error.
var (
	// ErrProjectNotFound is returned when a project_code does not exist.
	ErrProjectNotFound = errors.New("project is not found")

	// ErrDashboardNotFound is returned when a score definition does not
	// exist for the requested id.
	ErrDashboardNotFound = errors.New("dashboard is not found")

	// ErrConnectionNotFound is returned when a source connection does not
	// exist for the requested id.
	ErrConnectionNotFound = errors.New("connection is not found")

	// ErrNameAlreadyExists is returned on a unique-constraint violation
	// for a dashboard or connection name within a project.
	ErrNameAlreadyExists = errors.New("name already exists in project")
)
