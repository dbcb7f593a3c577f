package domain

import "errors"

// Business-rule rejections. These are expected outcomes and are matched with
// errors.Is by the API layer.
var (
	ErrCourierNotFound         = errors.New("courier not found")
	ErrCourierAlreadyExists    = errors.New("courier already exists")
	ErrMotorcycleNotFound      = errors.New("motorcycle not found")
	ErrMotorcycleAlreadyExists = errors.New("motorcycle already exists")
	ErrMotorcycleHasRentals    = errors.New("motorcycle has active rentals")
	ErrMotorcycleUnavailable   = errors.New("motorcycle has an active rental")
	ErrLicenseNotEligible      = errors.New("courier license category does not allow motorcycle rental")
	ErrRentalNotFound          = errors.New("rental not found")
	ErrRentalAlreadyReturned   = errors.New("rental already returned")
	ErrInvalidImageFormat      = errors.New("license image must be a png or bmp url")
)

// ErrInvalidPlan indicates a plan value that slipped past boundary
// validation. It is a defect, not a business outcome.
var ErrInvalidPlan = errors.New("invalid rental plan")
