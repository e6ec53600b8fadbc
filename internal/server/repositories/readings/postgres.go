package readings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/vkotlyar/homesense/internal/common"
	"github.com/vkotlyar/homesense/internal/dbx"
	"github.com/vkotlyar/homesense/internal/server/models"
)

// PostgresRepository implements reading storage over a dbx.DBTX.
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// tableFor maps a sensor kind to its table. Kinds are a closed set, so the
// table name never comes from request input.
func tableFor(kind models.SensorKind) (string, error) {
	switch kind {
	case models.KindTemperature:
		return "temperature", nil
	case models.KindHumidity:
		return "humidity", nil
	case models.KindLight:
		return "light", nil
	default:
		return "", common.ErrorNotFound
	}
}

func (r *PostgresRepository) Insert(ctx context.Context, kind models.SensorKind, reading *models.Reading) (int64, error) {
	table, err := tableFor(kind)
	if err != nil {
		return 0, err
	}

	query := fmt.Sprintf(
		`INSERT INTO %s (value, unit, timestamp, device_id)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id
		 `, table)

	var id int64
	err = r.db.QueryRowContext(ctx, query,
		reading.Value, reading.Unit, reading.Timestamp, reading.DeviceID).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	return id, nil
}

func (r *PostgresRepository) List(ctx context.Context, kind models.SensorKind, userID int64, filter ListFilter) ([]models.Reading, error) {
	table, err := tableFor(kind)
	if err != nil {
		return nil, err
	}

	var sb strings.Builder
	fmt.Fprintf(&sb,
		`SELECT s.id, s.value, s.unit, s.timestamp, s.device_id FROM %s s
		 JOIN devices d ON d.device_id = s.device_id
		 WHERE d.user_id = $1`, table)

	args := []any{userID}
	if filter.Start != nil {
		args = append(args, *filter.Start)
		fmt.Fprintf(&sb, " AND s.timestamp >= $%d", len(args))
	}
	if filter.End != nil {
		args = append(args, *filter.End)
		fmt.Fprintf(&sb, " AND s.timestamp <= $%d", len(args))
	}
	switch filter.OrderBy {
	case "value", "timestamp":
		fmt.Fprintf(&sb, " ORDER BY s.%s", filter.OrderBy)
	}

	rows, err := r.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.Reading
	for rows.Next() {
		var m models.Reading
		if err := rows.Scan(&m.ID, &m.Value, &m.Unit, &m.Timestamp, &m.DeviceID); err != nil {
			return nil, err
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, kind models.SensorKind, userID, id int64) (*models.Reading, error) {
	table, err := tableFor(kind)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(
		`SELECT s.id, s.value, s.unit, s.timestamp, s.device_id FROM %s s
		 JOIN devices d ON d.device_id = s.device_id
		 WHERE s.id = $1 AND d.user_id = $2
		 `, table)

	m := &models.Reading{}
	err = r.db.QueryRowContext(ctx, query, id, userID).
		Scan(&m.ID, &m.Value, &m.Unit, &m.Timestamp, &m.DeviceID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return m, nil
}

func (r *PostgresRepository) Update(ctx context.Context, kind models.SensorKind, userID, id int64, fields UpdateFields) error {
	table, err := tableFor(kind)
	if err != nil {
		return err
	}

	var sets []string
	var args []any
	if fields.Value != nil {
		args = append(args, *fields.Value)
		sets = append(sets, fmt.Sprintf("value = $%d", len(args)))
	}
	if fields.Unit != nil {
		args = append(args, *fields.Unit)
		sets = append(sets, fmt.Sprintf("unit = $%d", len(args)))
	}
	if fields.Timestamp != nil {
		args = append(args, *fields.Timestamp)
		sets = append(sets, fmt.Sprintf("timestamp = $%d", len(args)))
	}
	if len(sets) == 0 {
		return common.ErrorInvalidRequest
	}

	args = append(args, id)
	idArg := len(args)
	args = append(args, userID)
	userArg := len(args)

	query := fmt.Sprintf(
		`UPDATE %s s SET %s
		 WHERE s.id = $%d AND EXISTS (
		   SELECT 1 FROM devices d
		   WHERE d.device_id = s.device_id AND d.user_id = $%d
		 )`, table, strings.Join(sets, ", "), idArg, userArg)

	res, err := r.db.ExecContext(ctx, query, args...)
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

func (r *PostgresRepository) Delete(ctx context.Context, kind models.SensorKind, userID, id int64) error {
	table, err := tableFor(kind)
	if err != nil {
		return err
	}

	query := fmt.Sprintf(
		`DELETE FROM %s s
		 WHERE s.id = $1 AND EXISTS (
		   SELECT 1 FROM devices d
		   WHERE d.device_id = s.device_id AND d.user_id = $2
		 )`, table)

	res, err := r.db.ExecContext(ctx, query, id, userID)
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

func (r *PostgresRepository) Count(ctx context.Context, kind models.SensorKind, userID int64) (int64, error) {
	table, err := tableFor(kind)
	if err != nil {
		return 0, err
	}

	query := fmt.Sprintf(
		`SELECT count(*) FROM %s s
		 JOIN devices d ON d.device_id = s.device_id
		 WHERE d.user_id = $1
		 `, table)

	var n int64
	if err := r.db.QueryRowContext(ctx, query, userID).Scan(&n); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}
