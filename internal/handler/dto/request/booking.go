package request

import (
	"time"

	"barberbook/internal/domain/booking"
)

type CreateBookingRequest struct {
	ShopID  int64      `json:"shop_id" binding:"required,gt=0"`
	Service string     `json:"service" binding:"required"`
	Date    *time.Time `json:"date,omitempty"`
	Notes   string     `json:"notes,omitempty"`
}

func (r CreateBookingRequest) ToDomain(now time.Time) (booking.Request, error) {
	return booking.NewRequest(r.ShopID, r.Service, r.Date, r.Notes, now)
}
