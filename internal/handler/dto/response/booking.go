package response

import (
	"time"

	"barberbook/internal/domain/booking"
	"barberbook/internal/usecase/queries"
)

type BookingResponse struct {
	ID            int64      `json:"id"`
	ShopID        int64      `json:"shopId"`
	Service       string     `json:"service"`
	RequestedTime *time.Time `json:"requestedTime,omitempty"`
	Notes         string     `json:"notes,omitempty"`
	Status        string     `json:"status"`
	ConfirmedAt   time.Time  `json:"confirmedAt"`
}

func FromBookingRecord(rec booking.Record) *BookingResponse {
	return &BookingResponse{
		ID:            rec.ID,
		ShopID:        rec.ShopID,
		Service:       rec.Service.String(),
		RequestedTime: rec.RequestedTime,
		Notes:         rec.Notes,
		Status:        rec.Status.String(),
		ConfirmedAt:   rec.ConfirmedAt,
	}
}

func FromBookingView(view queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:            view.ID,
		ShopID:        view.ShopID,
		Service:       view.Service,
		RequestedTime: view.RequestedTime,
		Notes:         view.Notes,
		Status:        view.Status,
		ConfirmedAt:   view.ConfirmedAt,
	}
}

type SlotsResponse struct {
	ShopID int64       `json:"shopId"`
	Date   string      `json:"date"`
	Slots  []time.Time `json:"slots"`
}
