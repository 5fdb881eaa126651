package repositories

import (
	"context"

	"dashboard.xdoubleu.com/apps/localevents/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/xdoubleu/essentia/v2/pkg/database/postgres"
)

type EventRepository struct {
	db postgres.DB
}

// GetBetween returns the events dated from (inclusive) to to (inclusive),
// ordered by date and time.
func (repo *EventRepository) GetBetween(
	ctx context.Context,
	from string,
	to string,
) ([]models.Event, error) {
	query := `
		SELECT id, title, category, type, to_char(date, 'YYYY-MM-DD'), time,
		location, description, tags, url
		FROM localevents.events
		WHERE date >= $1::date AND date <= $2::date
		ORDER BY date, time, id
	`

	rows, err := repo.db.Query(ctx, query, from, to)
	if err != nil {
		return nil, postgres.PgxErrorToHTTPError(err)
	}
	defer rows.Close()

	events := []models.Event{}
	for rows.Next() {
		var event models.Event

		err = rows.Scan(
			&event.ID,
			&event.Title,
			&event.Category,
			&event.Type,
			&event.Date,
			&event.Time,
			&event.Location,
			&event.Description,
			&event.Tags,
			&event.URL,
		)

		if err != nil {
			return nil, postgres.PgxErrorToHTTPError(err)
		}

		events = append(events, event)
	}

	if err = rows.Err(); err != nil {
		return nil, postgres.PgxErrorToHTTPError(err)
	}

	return events, nil
}

func (repo *EventRepository) GetCategories(ctx context.Context) ([]string, error) {
	query := `
		SELECT DISTINCT category
		FROM localevents.events
		ORDER BY category
	`

	rows, err := repo.db.Query(ctx, query)
	if err != nil {
		return nil, postgres.PgxErrorToHTTPError(err)
	}
	defer rows.Close()

	categories := []string{}
	for rows.Next() {
		var category string

		err = rows.Scan(&category)
		if err != nil {
			return nil, postgres.PgxErrorToHTTPError(err)
		}

		categories = append(categories, category)
	}

	if err = rows.Err(); err != nil {
		return nil, postgres.PgxErrorToHTTPError(err)
	}

	return categories, nil
}

func (repo *EventRepository) Count(ctx context.Context) (int, error) {
	var count int

	err := repo.db.QueryRow(ctx, "SELECT count(*) FROM localevents.events").Scan(&count)
	if err != nil {
		return 0, postgres.PgxErrorToHTTPError(err)
	}

	return count, nil
}

func (repo *EventRepository) Create(
	ctx context.Context,
	event models.Event,
) (*models.Event, error) {
	query := `
		INSERT INTO localevents.events (title, category, type, date, time,
		location, description, tags, url)
		VALUES ($1, $2, $3, $4::date, $5, $6, $7, $8, $9)
		RETURNING id
	`

	err := repo.db.QueryRow(
		ctx,
		query,
		event.Title,
		event.Category,
		event.Type,
		event.Date,
		event.Time,
		event.Location,
		event.Description,
		tagsOrEmpty(event.Tags),
		event.URL,
	).Scan(&event.ID)
	if err != nil {
		return nil, postgres.PgxErrorToHTTPError(err)
	}

	return &event, nil
}

func (repo *EventRepository) CreateMany(ctx context.Context, events []models.Event) error {
	query := `
		INSERT INTO localevents.events (title, category, type, date, time,
		location, description, tags, url)
		VALUES ($1, $2, $3, $4::date, $5, $6, $7, $8, $9)
	`

	//nolint:exhaustruct //fields are optional
	b := &pgx.Batch{}
	for _, event := range events {
		b.Queue(
			query,
			event.Title,
			event.Category,
			event.Type,
			event.Date,
			event.Time,
			event.Location,
			event.Description,
			tagsOrEmpty(event.Tags),
			event.URL,
		)
	}

	err := repo.db.SendBatch(ctx, b).Close()
	if err != nil {
		return postgres.PgxErrorToHTTPError(err)
	}

	return nil
}

func (repo *EventRepository) DeleteAll(ctx context.Context) error {
	_, err := repo.db.Exec(ctx, "DELETE FROM localevents.events")
	if err != nil {
		return postgres.PgxErrorToHTTPError(err)
	}

	return nil
}

// tagsOrEmpty keeps NULL out of the tags column.
func tagsOrEmpty(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}
