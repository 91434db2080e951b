package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

type ScooterStatus string

const (
	ScooterStatusAvailable ScooterStatus = "AVAILABLE"
	ScooterStatusRented    ScooterStatus = "RENTED"
)

type Scooter struct {
	ID             string          `json:"id"`
	PricePerMinute decimal.Decimal `json:"price_per_minute"`
	IsRented       bool            `json:"is_rented"`
}

func NewScooter(id string, pricePerMinute decimal.Decimal) *Scooter {
	return &Scooter{ID: id, PricePerMinute: pricePerMinute}
}

func (s *Scooter) Status() ScooterStatus {
	if s.IsRented {
		return ScooterStatusRented
	}
	return ScooterStatusAvailable
}

// ValidateScooterID rejects blank and whitespace-only ids.
func ValidateScooterID(id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrInvalidID
	}
	return nil
}

// ValidatePrice rejects prices that are not strictly positive.
func ValidatePrice(pricePerMinute decimal.Decimal) error {
	if !pricePerMinute.IsPositive() {
		return ErrInvalidPrice
	}
	return nil
}
