package booking

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrUnsupportedService = errors.New("unsupported service type")
	ErrInvalidShop        = errors.New("shop id must be positive")
	ErrTimeInPast         = errors.New("requested time must be in the future")
)

// Request is the transient booking submission. It exists only for the
// duration of a submit; a successful submit turns it into a Record.
type Request struct {
	shopID        int64
	service       Service
	requestedTime *time.Time
	notes         string
}

func NewRequest(shopID int64, service string, requestedTime *time.Time, notes string, now time.Time) (Request, error) {
	if shopID <= 0 {
		return Request{}, ErrInvalidShop
	}
	svc, err := NewService(service)
	if err != nil {
		return Request{}, err
	}
	if requestedTime != nil && !requestedTime.After(now) {
		return Request{}, ErrTimeInPast
	}
	return Request{
		shopID:        shopID,
		service:       svc,
		requestedTime: requestedTime,
		notes:         strings.TrimSpace(notes),
	}, nil
}

func (r Request) ShopID() int64 {
	return r.shopID
}

func (r Request) Service() Service {
	return r.service
}

func (r Request) RequestedTime() *time.Time {
	return r.requestedTime
}

func (r Request) Notes() string {
	return r.notes
}

// Record is a confirmed appointment as acknowledged by the external
// appointment endpoint.
type Record struct {
	ID            int64
	ShopID        int64
	Service       Service
	RequestedTime *time.Time
	Notes         string
	Status        Status
	ConfirmedAt   time.Time
}
