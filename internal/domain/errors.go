package domain

import "errors"

var (
	// Directory errors
	ErrInvalidID        = errors.New("invalid scooter id")
	ErrInvalidPrice     = errors.New("price per minute must be greater than zero")
	ErrDuplicateScooter = errors.New("scooter ID already exists")
	ErrScooterNotFound  = errors.New("scooter ID not found")

	// Archive errors
	ErrDuplicateRental      = errors.New("rental with the same scooter and start time already exists")
	ErrScooterAlreadyRented = errors.New("scooter already rented")
	ErrRentalNotFound       = errors.New("rental not found")
	ErrRentalEnded          = errors.New("scooter rent is already over")
	ErrInvalidEndTime       = errors.New("rent end is before rent start")

	// Calculator errors
	ErrMissingEndTime  = errors.New("rent end is not set")
	ErrInvalidDuration = errors.New("rental duration must be positive")
)
