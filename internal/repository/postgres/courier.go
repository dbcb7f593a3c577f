package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"moto-rental-backend/internal/domain"
	"moto-rental-backend/internal/repository"

	"github.com/lib/pq"
)

type courierRepository struct {
	db *sql.DB
}

func NewCourierRepository(db *sql.DB) repository.CourierRepository {
	return &courierRepository{db: db}
}

func (r *courierRepository) Create(ctx context.Context, c *domain.Courier) error {
	query := `INSERT INTO couriers (id, cnpj, name, birth_date, cnh_number, cnh_type, cnh_image_url, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, query, c.ID, c.CNPJ, c.Name, c.BirthDate, c.CNHNumber, c.CNHType, c.CNHImageURL, now, now)
	if isUniqueViolation(err) {
		return domain.ErrCourierAlreadyExists
	}
	return err
}

func (r *courierRepository) GetByID(ctx context.Context, id string) (*domain.Courier, error) {
	return r.getBy(ctx, "id", id)
}

func (r *courierRepository) GetByCNPJ(ctx context.Context, cnpj string) (*domain.Courier, error) {
	return r.getBy(ctx, "cnpj", cnpj)
}

func (r *courierRepository) GetByCNHNumber(ctx context.Context, cnhNumber string) (*domain.Courier, error) {
	return r.getBy(ctx, "cnh_number", cnhNumber)
}

func (r *courierRepository) getBy(ctx context.Context, column, value string) (*domain.Courier, error) {
	c := &domain.Courier{}
	query := `SELECT id, cnpj, name, birth_date, cnh_number, cnh_type, cnh_image_url, created_on, updated_on
	          FROM couriers WHERE ` + column + ` = $1`
	err := r.db.QueryRowContext(ctx, query, value).
		Scan(&c.ID, &c.CNPJ, &c.Name, &c.BirthDate, &c.CNHNumber, &c.CNHType, &c.CNHImageURL, &c.CreatedOn, &c.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrCourierNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *courierRepository) List(ctx context.Context) ([]domain.Courier, error) {
	query := `SELECT id, cnpj, name, birth_date, cnh_number, cnh_type, cnh_image_url, created_on, updated_on
	          FROM couriers ORDER BY created_on DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var couriers []domain.Courier
	for rows.Next() {
		var c domain.Courier
		if err := rows.Scan(&c.ID, &c.CNPJ, &c.Name, &c.BirthDate, &c.CNHNumber, &c.CNHType, &c.CNHImageURL, &c.CreatedOn, &c.UpdatedOn); err != nil {
			return nil, err
		}
		couriers = append(couriers, c)
	}
	return couriers, rows.Err()
}

func (r *courierRepository) UpdateCNHImage(ctx context.Context, id, imageURL string) error {
	query := `UPDATE couriers SET cnh_image_url = $1, updated_on = $2 WHERE id = $3`
	res, err := r.db.ExecContext(ctx, query, imageURL, time.Now().UTC(), id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrCourierNotFound
	}
	return nil
}

// isUniqueViolation reports whether err is a postgres unique constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
