package postgres

import (
	"database/sql"

	"moto-rental-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.CourierRepository
	repository.MotorcycleRepository
	repository.RentalRepository
	repository.MotorcycleEventRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                        db,
		CourierRepository:         NewCourierRepository(db),
		MotorcycleRepository:      NewMotorcycleRepository(db),
		RentalRepository:          NewRentalRepository(db),
		MotorcycleEventRepository: NewMotorcycleEventRepository(db),
	}
}
