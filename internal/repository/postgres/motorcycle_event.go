package postgres

import (
	"context"
	"database/sql"

	"moto-rental-backend/internal/domain"
	"moto-rental-backend/internal/repository"
)

type motorcycleEventRepository struct {
	db *sql.DB
}

func NewMotorcycleEventRepository(db *sql.DB) repository.MotorcycleEventRepository {
	return &motorcycleEventRepository{db: db}
}

func (r *motorcycleEventRepository) Create(ctx context.Context, e *domain.MotorcycleEvent) error {
	query := `INSERT INTO motorcycle_events (id, motorcycle_id, event_type, event_date, year, model, plate)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.ExecContext(ctx, query, e.ID, e.MotorcycleID, e.EventType, e.EventDate, e.Year, e.Model, e.Plate)
	return err
}

func (r *motorcycleEventRepository) ListByYear(ctx context.Context, year int32) ([]domain.MotorcycleEvent, error) {
	query := `SELECT id, motorcycle_id, event_type, event_date, year, model, plate
	          FROM motorcycle_events WHERE year = $1 ORDER BY event_date DESC`
	rows, err := r.db.QueryContext(ctx, query, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []domain.MotorcycleEvent
	for rows.Next() {
		var e domain.MotorcycleEvent
		if err := rows.Scan(&e.ID, &e.MotorcycleID, &e.EventType, &e.EventDate, &e.Year, &e.Model, &e.Plate); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}
