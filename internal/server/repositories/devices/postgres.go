package devices

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vkotlyar/homesense/internal/common"
	"github.com/vkotlyar/homesense/internal/dbx"
	"github.com/vkotlyar/homesense/internal/server/models"
)

// PostgresRepository implements device storage over a dbx.DBTX.
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, userID int64, deviceID string) error {
	query :=
		`INSERT INTO devices (user_id, device_id)
		 VALUES ($1, $2)
		 `

	_, err := r.db.ExecContext(ctx, query, userID, deviceID)
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return common.ErrorConflict
		}
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresRepository) Rename(ctx context.Context, userID int64, oldID, newID string) error {
	query :=
		`UPDATE devices SET device_id = $1
		 WHERE device_id = $2 AND user_id = $3
		 `

	res, err := r.db.ExecContext(ctx, query, newID, oldID, userID)
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return common.ErrorConflict
		}
		return fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, userID int64, deviceID string) error {
	query :=
		`DELETE FROM devices
		 WHERE device_id = $1 AND user_id = $2
		 `

	res, err := r.db.ExecContext(ctx, query, deviceID, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID int64) ([]models.Device, error) {
	query :=
		`SELECT id, user_id, device_id FROM devices
		 WHERE user_id = $1
		 ORDER BY id
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.Device
	for rows.Next() {
		var d models.Device
		if err := rows.Scan(&d.ID, &d.UserID, &d.DeviceID); err != nil {
			return nil, err
		}
		result = append(result, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) Owned(ctx context.Context, userID int64, deviceID string) (bool, error) {
	query :=
		`SELECT 1 FROM devices
		 WHERE user_id = $1 AND device_id = $2
		 `

	var one int
	err := r.db.QueryRowContext(ctx, query, userID, deviceID).Scan(&one)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("db error: %w", err)
	}
	return true, nil
}
