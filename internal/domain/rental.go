package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type RentalStatus string

const (
	RentalStatusOpen   RentalStatus = "OPEN"
	RentalStatusClosed RentalStatus = "CLOSED"
)

// RentalRecord is one rental of one scooter. RentEnd is nil while the rental is open
// and is set exactly once when it ends.
type RentalRecord struct {
	ScooterID string     `json:"scooter_id"`
	RentStart time.Time  `json:"rent_start"`
	RentEnd   *time.Time `json:"rent_end,omitempty"`
	// Price snapshot captured from the scooter when the rental starts.
	PricePerMinute decimal.Decimal `json:"price_per_minute"`
}

// NewRentalRecord returns an open record.
func NewRentalRecord(scooterID string, rentStart time.Time, pricePerMinute decimal.Decimal) *RentalRecord {
	return &RentalRecord{
		ScooterID:      scooterID,
		RentStart:      rentStart,
		PricePerMinute: pricePerMinute,
	}
}

func (r *RentalRecord) IsOpen() bool {
	return r.RentEnd == nil
}

func (r *RentalRecord) Status() RentalStatus {
	if r.IsOpen() {
		return RentalStatusOpen
	}
	return RentalStatusClosed
}

// Close sets RentEnd. Callers validate the transition first.
func (r *RentalRecord) Close(rentEnd time.Time) {
	end := rentEnd
	r.RentEnd = &end
}
