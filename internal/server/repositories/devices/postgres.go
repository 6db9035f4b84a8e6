package devices

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/clipsync/internal/common"
	"github.com/dmitrijs2005/clipsync/internal/dbx"
	"github.com/dmitrijs2005/clipsync/internal/server/models"
	"github.com/google/uuid"
)

// PostgresRepository stores the device registry in PostgreSQL.
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, device *models.Device) (*models.Device, error) {
	query := `
		INSERT INTO devices (name, user_id, created_at, last_seen)
		VALUES ($1, $2, EXTRACT(EPOCH FROM now())::bigint, EXTRACT(EPOCH FROM now())::bigint)
		RETURNING id, created_at, last_seen
	`

	d := *device
	err := r.db.QueryRowContext(ctx, query, device.Name, device.UserID).
		Scan(&d.ID, &d.CreatedAt, &d.LastSeen)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return &d, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Device, error) {
	query := `
		SELECT id, name, user_id, created_at, last_seen
		FROM devices
		WHERE id = $1
	`

	device := &models.Device{}
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&device.ID, &device.Name, &device.UserID, &device.CreatedAt, &device.LastSeen)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return device, nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Device, error) {
	query := `
		SELECT id, name, user_id, created_at, last_seen
		FROM devices
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Device, 0)
	for rows.Next() {
		device := &models.Device{}
		if err := rows.Scan(&device.ID, &device.Name, &device.UserID, &device.CreatedAt, &device.LastSeen); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, device)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) Touch(ctx context.Context, id uuid.UUID, lastSeen int64) error {
	query := `
		UPDATE devices SET last_seen = $2
		WHERE id = $1
	`

	res, err := r.db.ExecContext(ctx, query, id, lastSeen)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `
		DELETE FROM devices
		WHERE id = $1
	`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
