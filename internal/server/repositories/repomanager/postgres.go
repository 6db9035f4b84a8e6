package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/clipsync/internal/server/migrations"
	"github.com/dmitrijs2005/clipsync/internal/server/repositories/devices"
	"github.com/dmitrijs2005/clipsync/internal/server/repositories/users"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

type PostgresRepositoryManager struct {
	db      *sql.DB
	users   *users.PostgresRepository
	devices *devices.PostgresRepository
}

// NewPostgresRepositoryManager opens a connection pool for the given DSN and
// wires the PostgreSQL repositories over it.
func NewPostgresRepositoryManager(dsn string) (*PostgresRepositoryManager, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	return &PostgresRepositoryManager{
		db:      db,
		users:   users.NewPostgresRepository(db),
		devices: devices.NewPostgresRepository(db),
	}, nil
}

func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	if err := goose.UpContext(ctx, m.db, "."); err != nil {
		return err
	}

	return nil
}

func (m *PostgresRepositoryManager) Users() users.Repository {
	return m.users
}

func (m *PostgresRepositoryManager) Devices() devices.Repository {
	return m.devices
}

func (m *PostgresRepositoryManager) Close() error {
	return m.db.Close()
}
