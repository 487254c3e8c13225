package models

// User carries the UI login credentials presented to the login endpoint.
// The password is compared against the configured UI credentials and is
// never persisted.
type User struct {
	// Username is the UI login identifier.
	Username string `json:"username"`

	// Password is the plaintext password from the login request body.
	// Must never be logged or exposed outside the auth flow.
	Password string `json:"password"`
}
