package bookingapi

import (
	"time"

	"barberbook/internal/domain/booking"
)

// Wire types of the external booking API. Field names follow the server's
// snake_case JSON.

type queueStatusResponse struct {
	BarberID          int64     `json:"barber_id"`
	QueueSize         int       `json:"queue_size"`
	EstimatedWaitTime *int      `json:"estimated_wait_time"`
	LastUpdated       time.Time `json:"last_updated"`
}

type joinQueueResponse struct {
	Position int `json:"position"`
}

type appointmentRequest struct {
	ShopID  int64      `json:"shopId"`
	Service string     `json:"service"`
	Date    *time.Time `json:"date,omitempty"`
	Notes   string     `json:"notes,omitempty"`
}

type appointmentResponse struct {
	ID        int64      `json:"id"`
	ShopID    int64      `json:"shop_id"`
	Service   string     `json:"service"`
	Date      *time.Time `json:"date"`
	Notes     string     `json:"notes"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
}

func (a appointmentResponse) toRecord() booking.Record {
	return booking.Record{
		ID:            a.ID,
		ShopID:        a.ShopID,
		Service:       booking.Service(a.Service),
		RequestedTime: a.Date,
		Notes:         a.Notes,
		Status:        booking.Status(a.Status),
		ConfirmedAt:   a.CreatedAt,
	}
}

type slotsResponse struct {
	Slots []time.Time `json:"slots"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name,omitempty"`
}

type userPayload struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type loginResponse struct {
	Token string      `json:"token"`
	User  userPayload `json:"user"`
}

// apiError covers both error body shapes the server is known to emit.
type apiError struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func (e apiError) text() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Error
}
