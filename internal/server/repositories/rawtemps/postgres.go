package rawtemps

import (
	"context"
	"fmt"

	"github.com/vkotlyar/homesense/internal/dbx"
	"github.com/vkotlyar/homesense/internal/server/models"
)

// PostgresRepository implements raw sample storage over a dbx.DBTX.
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Insert(ctx context.Context, sample *models.RawTemperature) (int64, error) {
	query :=
		`INSERT INTO raw_temperature (value, unit, mac_address)
		 VALUES ($1, $2, $3)
		 RETURNING id
		 `

	var id int64
	err := r.db.QueryRowContext(ctx, query, sample.Value, sample.Unit, sample.MACAddress).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return id, nil
}

func (r *PostgresRepository) ListByMAC(ctx context.Context, mac string) ([]models.RawTemperature, error) {
	query :=
		`SELECT id, value, unit, mac_address FROM raw_temperature
		 WHERE mac_address = $1
		 ORDER BY id
		 `

	rows, err := r.db.QueryContext(ctx, query, mac)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.RawTemperature
	for rows.Next() {
		var m models.RawTemperature
		if err := rows.Scan(&m.ID, &m.Value, &m.Unit, &m.MACAddress); err != nil {
			return nil, err
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
