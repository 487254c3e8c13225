package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/testgen/internal/logger"
	"github.com/MKhiriev/testgen/models"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
)

func newTestConnectionRepo(t *testing.T) (*connectionRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test", "")
	repo := &connectionRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func connectionColumns() []string {
	return []string{"id", "project_code", "name", "sql_flavor", "host", "port", "db_user", "encrypted_password", "created_at"}
}

func TestSaveConnection_Success(t *testing.T) {
	repo, mock, db := newTestConnectionRepo(t)
	defer db.Close()

	ctx := context.Background()
	connection := models.Connection{
		ProjectCode:       "DEFAULT",
		Name:              "warehouse",
		SQLFlavor:         "postgresql",
		Host:              "localhost",
		Port:              "5433",
		User:              "os_user",
		EncryptedPassword: "blob",
	}

	now := time.Now()
	savedID := uuid.New()

	rows := sqlmock.
		NewRows(connectionColumns()).
		AddRow(savedID, "DEFAULT", "warehouse", "postgresql", "localhost", "5433", "os_user", "blob", now)

	mock.ExpectQuery("INSERT INTO connections").
		WithArgs(sqlmock.AnyArg(), "DEFAULT", "warehouse", "postgresql", "localhost", "5433", "os_user", "blob").
		WillReturnRows(rows)

	saved, err := repo.SaveConnection(ctx, connection)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved.ID != savedID {
		t.Errorf("expected id %s, got %s", savedID, saved.ID)
	}
	if saved.Port != "5433" {
		t.Errorf("expected port 5433, got %s", saved.Port)
	}
}

func TestSaveConnection_UniqueViolation(t *testing.T) {
	repo, mock, db := newTestConnectionRepo(t)
	defer db.Close()

	ctx := context.Background()
	connection := models.Connection{ProjectCode: "DEFAULT", Name: "warehouse"}

	mock.ExpectQuery("INSERT INTO connections").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.SaveConnection(ctx, connection)
	if !errors.Is(err, ErrNameAlreadyExists) {
		t.Fatalf("expected ErrNameAlreadyExists, got %v", err)
	}
}

func TestSaveConnection_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestConnectionRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO connections").
		WillReturnError(errors.New("db network error"))

	_, err := repo.SaveConnection(ctx, models.Connection{Name: "warehouse"})
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}

func TestFindConnection_Success(t *testing.T) {
	repo, mock, db := newTestConnectionRepo(t)
	defer db.Close()

	ctx := context.Background()
	connectionID := uuid.New()
	now := time.Now()

	rows := sqlmock.
		NewRows(connectionColumns()).
		AddRow(connectionID, "DEFAULT", "warehouse", "postgresql", "localhost", "5433", "os_user", "blob", now)

	mock.ExpectQuery("SELECT id, project_code, name").
		WithArgs(connectionID).
		WillReturnRows(rows)

	found, err := repo.FindConnection(ctx, connectionID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.Name != "warehouse" {
		t.Errorf("expected name warehouse, got %s", found.Name)
	}
	if found.EncryptedPassword != "blob" {
		t.Errorf("expected encrypted password blob, got %s", found.EncryptedPassword)
	}
}

func TestFindConnection_NotFound(t *testing.T) {
	repo, mock, db := newTestConnectionRepo(t)
	defer db.Close()

	ctx := context.Background()
	connectionID := uuid.New()

	mock.ExpectQuery("SELECT id, project_code, name").
		WithArgs(connectionID).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindConnection(ctx, connectionID)
	if !errors.Is(err, ErrConnectionNotFound) {
		t.Fatalf("expected ErrConnectionNotFound, got %v", err)
	}
}

func TestListConnections_Success(t *testing.T) {
	repo, mock, db := newTestConnectionRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	rows := sqlmock.
		NewRows(connectionColumns()).
		AddRow(uuid.New(), "DEFAULT", "analytics", "snowflake", "sf.example.com", "443", "svc", "blob1", now).
		AddRow(uuid.New(), "DEFAULT", "warehouse", "postgresql", "localhost", "5433", "os_user", "blob2", now)

	mock.ExpectQuery("SELECT id, project_code, name").
		WithArgs("DEFAULT").
		WillReturnRows(rows)

	connections, err := repo.ListConnections(ctx, "DEFAULT")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(connections) != 2 {
		t.Fatalf("expected 2 connections, got %d", len(connections))
	}
	if connections[0].Name != "analytics" {
		t.Errorf("expected first connection analytics, got %s", connections[0].Name)
	}
}

func TestListConnections_QueryError(t *testing.T) {
	repo, mock, db := newTestConnectionRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT id, project_code, name").
		WithArgs("DEFAULT").
		WillReturnError(errors.New("db failure"))

	_, err := repo.ListConnections(ctx, "DEFAULT")
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}

func TestListConnections_Empty(t *testing.T) {
	repo, mock, db := newTestConnectionRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT id, project_code, name").
		WithArgs("DEFAULT").
		WillReturnRows(sqlmock.NewRows(connectionColumns()))

	connections, err := repo.ListConnections(ctx, "DEFAULT")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(connections) != 0 {
		t.Fatalf("expected no connections, got %d", len(connections))
	}
}
