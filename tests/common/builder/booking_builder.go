//go:build unit || e2e

package builder

import (
	"time"

	"barberbook/internal/domain/booking"
	reqdto "barberbook/internal/handler/dto/request"
)

type BookingBuilder struct {
	ID      int64
	ShopID  int64
	Service string
	Date    *time.Time
	Notes   string
}

func NewBookingBuilder() *BookingBuilder {
	date := time.Now().Add(48 * time.Hour).Truncate(time.Minute)
	return &BookingBuilder{
		ID:      1,
		ShopID:  42,
		Service: "haircut",
		Date:    &date,
		Notes:   "",
	}
}

func (b *BookingBuilder) WithShopID(id int64) *BookingBuilder {
	b.ShopID = id
	return b
}

func (b *BookingBuilder) WithService(service string) *BookingBuilder {
	b.Service = service
	return b
}

func (b *BookingBuilder) WithDate(date *time.Time) *BookingBuilder {
	b.Date = date
	return b
}

func (b *BookingBuilder) BuildDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		ShopID:  b.ShopID,
		Service: b.Service,
		Date:    b.Date,
		Notes:   b.Notes,
	}
}

func (b *BookingBuilder) BuildRecord() booking.Record {
	return booking.Record{
		ID:            b.ID,
		ShopID:        b.ShopID,
		Service:       booking.Service(b.Service),
		RequestedTime: b.Date,
		Notes:         b.Notes,
		Status:        booking.StatusScheduled,
		ConfirmedAt:   time.Now().Truncate(time.Second),
	}
}
