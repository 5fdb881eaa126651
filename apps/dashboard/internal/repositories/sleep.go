package repositories

import (
	"context"

	"dashboard.xdoubleu.com/apps/dashboard/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/xdoubleu/essentia/v2/pkg/database/postgres"
)

type SleepRepository struct {
	db postgres.DB
}

// GetRange returns the cached records between from and to (inclusive),
// keyed by date.
func (repo *SleepRepository) GetRange(
	ctx context.Context,
	userID string,
	from string,
	to string,
) (map[string]models.SleepRecord, error) {
	query := `
		SELECT to_char(date, 'YYYY-MM-DD'), hours, score, deep_minutes,
		light_minutes, rem_minutes, awake_minutes
		FROM dashboard.sleep_records
		WHERE user_id = $1 AND date >= $2::date AND date <= $3::date
	`

	rows, err := repo.db.Query(ctx, query, userID, from, to)
	if err != nil {
		return nil, postgres.PgxErrorToHTTPError(err)
	}
	defer rows.Close()

	records := map[string]models.SleepRecord{}
	for rows.Next() {
		var record models.SleepRecord

		err = rows.Scan(
			&record.Date,
			&record.Hours,
			&record.Score,
			&record.DeepMinutes,
			&record.LightMinutes,
			&record.RemMinutes,
			&record.AwakeMinutes,
		)

		if err != nil {
			return nil, postgres.PgxErrorToHTTPError(err)
		}

		records[record.Date] = record
	}

	if err = rows.Err(); err != nil {
		return nil, postgres.PgxErrorToHTTPError(err)
	}

	return records, nil
}

func (repo *SleepRepository) Upsert(
	ctx context.Context,
	records []models.SleepRecord,
	userID string,
) error {
	query := `
		INSERT INTO dashboard.sleep_records (user_id, date, hours, score,
		deep_minutes, light_minutes, rem_minutes, awake_minutes)
		VALUES ($1, $2::date, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (user_id, date)
		DO UPDATE SET hours = $3, score = $4, deep_minutes = $5,
		light_minutes = $6, rem_minutes = $7, awake_minutes = $8,
		fetched_at = now()
	`

	//nolint:exhaustruct //fields are optional
	b := &pgx.Batch{}
	for _, record := range records {
		b.Queue(
			query,
			userID,
			record.Date,
			record.Hours,
			record.Score,
			record.DeepMinutes,
			record.LightMinutes,
			record.RemMinutes,
			record.AwakeMinutes,
		)
	}

	err := repo.db.SendBatch(ctx, b).Close()
	if err != nil {
		return postgres.PgxErrorToHTTPError(err)
	}

	return nil
}
