package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"moto-rental-backend/internal/domain"
	"moto-rental-backend/internal/repository"
)

type motorcycleRepository struct {
	db *sql.DB
}

func NewMotorcycleRepository(db *sql.DB) repository.MotorcycleRepository {
	return &motorcycleRepository{db: db}
}

func (r *motorcycleRepository) Create(ctx context.Context, m *domain.Motorcycle) error {
	query := `INSERT INTO motorcycles (id, plate, year, model, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6)`
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, query, m.ID, m.Plate, m.Year, m.Model, now, now)
	if isUniqueViolation(err) {
		return domain.ErrMotorcycleAlreadyExists
	}
	return err
}

func (r *motorcycleRepository) GetByID(ctx context.Context, id string) (*domain.Motorcycle, error) {
	return r.getBy(ctx, "id", id)
}

func (r *motorcycleRepository) GetByPlate(ctx context.Context, plate string) (*domain.Motorcycle, error) {
	return r.getBy(ctx, "plate", plate)
}

func (r *motorcycleRepository) getBy(ctx context.Context, column, value string) (*domain.Motorcycle, error) {
	m := &domain.Motorcycle{}
	query := `SELECT id, plate, year, model, created_on, updated_on FROM motorcycles WHERE ` + column + ` = $1`
	err := r.db.QueryRowContext(ctx, query, value).
		Scan(&m.ID, &m.Plate, &m.Year, &m.Model, &m.CreatedOn, &m.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrMotorcycleNotFound
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (r *motorcycleRepository) List(ctx context.Context, plateFilter string) ([]domain.Motorcycle, error) {
	query := `SELECT id, plate, year, model, created_on, updated_on FROM motorcycles`
	args := []interface{}{}
	if plateFilter != "" {
		query += ` WHERE plate = $1`
		args = append(args, plateFilter)
	}
	query += ` ORDER BY created_on DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var motos []domain.Motorcycle
	for rows.Next() {
		var m domain.Motorcycle
		if err := rows.Scan(&m.ID, &m.Plate, &m.Year, &m.Model, &m.CreatedOn, &m.UpdatedOn); err != nil {
			return nil, err
		}
		motos = append(motos, m)
	}
	return motos, rows.Err()
}

func (r *motorcycleRepository) Update(ctx context.Context, id, plate, model string) error {
	query := `UPDATE motorcycles SET plate = $1, model = $2, updated_on = $3 WHERE id = $4`
	res, err := r.db.ExecContext(ctx, query, plate, model, time.Now().UTC(), id)
	if isUniqueViolation(err) {
		return domain.ErrMotorcycleAlreadyExists
	}
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrMotorcycleNotFound
	}
	return nil
}

func (r *motorcycleRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM motorcycles WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrMotorcycleNotFound
	}
	return nil
}
