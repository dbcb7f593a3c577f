package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"moto-rental-backend/internal/domain"
	"moto-rental-backend/internal/repository"
)

type rentalRepository struct {
	db *sql.DB
}

func NewRentalRepository(db *sql.DB) repository.RentalRepository {
	return &rentalRepository{db: db}
}

func (r *rentalRepository) Create(ctx context.Context, rt *domain.Rental) error {
	query := `INSERT INTO rentals (id, motorcycle_id, courier_id, plan, start_date, expected_end_date, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, query, rt.ID, rt.MotorcycleID, rt.CourierID, int(rt.Plan), rt.StartDate, rt.ExpectedEndDate, now, now)
	// The partial unique index on (motorcycle_id) WHERE end_date IS NULL
	// serializes concurrent creates for the same motorcycle.
	if isUniqueViolation(err) {
		return domain.ErrMotorcycleUnavailable
	}
	return err
}

func (r *rentalRepository) GetByID(ctx context.Context, id string) (*domain.Rental, error) {
	rt := &domain.Rental{}
	var plan int
	query := `SELECT id, motorcycle_id, courier_id, plan, start_date, expected_end_date, end_date,
	                 total_cost_cents, fine_amount_cents, additional_days_cost_cents, additional_days,
	                 created_on, updated_on
	          FROM rentals WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&rt.ID, &rt.MotorcycleID, &rt.CourierID, &plan, &rt.StartDate, &rt.ExpectedEndDate, &rt.EndDate,
			&rt.TotalCostCents, &rt.FineAmountCents, &rt.AdditionalDaysCostCents, &rt.AdditionalDays,
			&rt.CreatedOn, &rt.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrRentalNotFound
	}
	if err != nil {
		return nil, err
	}
	rt.Plan = domain.RentalPlan(plan)
	return rt, nil
}

func (r *rentalRepository) ListActiveByMotorcycle(ctx context.Context, motorcycleID string) ([]domain.Rental, error) {
	query := `SELECT id, motorcycle_id, courier_id, plan, start_date, expected_end_date, end_date,
	                 total_cost_cents, fine_amount_cents, additional_days_cost_cents, additional_days,
	                 created_on, updated_on
	          FROM rentals WHERE motorcycle_id = $1 AND end_date IS NULL`
	rows, err := r.db.QueryContext(ctx, query, motorcycleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rentals []domain.Rental
	for rows.Next() {
		var rt domain.Rental
		var plan int
		if err := rows.Scan(&rt.ID, &rt.MotorcycleID, &rt.CourierID, &plan, &rt.StartDate, &rt.ExpectedEndDate, &rt.EndDate,
			&rt.TotalCostCents, &rt.FineAmountCents, &rt.AdditionalDaysCostCents, &rt.AdditionalDays,
			&rt.CreatedOn, &rt.UpdatedOn); err != nil {
			return nil, err
		}
		rt.Plan = domain.RentalPlan(plan)
		rentals = append(rentals, rt)
	}
	return rentals, rows.Err()
}

func (r *rentalRepository) CompleteReturn(ctx context.Context, rt *domain.Rental) error {
	// Compare-and-swap on end_date: two concurrent returns can both pass the
	// in-memory check, but only one update finds end_date still null.
	query := `UPDATE rentals
	          SET end_date = $1, total_cost_cents = $2, fine_amount_cents = $3,
	              additional_days_cost_cents = $4, additional_days = $5, updated_on = $6
	          WHERE id = $7 AND end_date IS NULL`
	res, err := r.db.ExecContext(ctx, query, rt.EndDate, rt.TotalCostCents, rt.FineAmountCents,
		rt.AdditionalDaysCostCents, rt.AdditionalDays, time.Now().UTC(), rt.ID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrRentalAlreadyReturned
	}
	return nil
}
