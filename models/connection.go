package models

import (
	"time"

	"github.com/google/uuid"
)

// Connection describes a monitored source database. The password is held
// encrypted at rest and is only decrypted inside the service layer when a
// scoring run needs to reach the source.
type Connection struct {
	ID uuid.UUID `json:"id"`

	ProjectCode string `json:"project_code"`

	// Name is the display name of the connection within its project.
	Name string `json:"name"`

	// SQLFlavor identifies the source database dialect (e.g. "postgresql",
	// "snowflake", "mssql").
	SQLFlavor string `json:"sql_flavor"`

	Host string `json:"host"`
	Port string `json:"port"`
	User string `json:"user"`

	// Password is the plaintext source password. Populated only on inbound
	// create requests and on explicit decryption; empty everywhere else.
	Password string `json:"password,omitempty"`

	// EncryptedPassword is the base64 AES-GCM blob stored in the database.
	// Never serialized to API responses.
	EncryptedPassword string `json:"-"`

	CreatedAt time.Time `json:"created_at,omitzero"`
}
