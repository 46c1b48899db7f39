package bookingapi

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"barberbook/internal/domain/booking"
	"barberbook/internal/domain/identity"
	"barberbook/internal/domain/queue"
	"barberbook/internal/gateway"
	"barberbook/internal/pkg/config"

	"github.com/imroc/req/v3"
)

// Client talks to the external booking API server. Every call carries a
// bounded timeout; a request that produces no usable response is reported as
// a network-kind error so callers leave cached state untouched.
type Client struct {
	hc                *req.Client
	avgServiceMinutes int
}

func NewClient(cfg config.APIConfig, queueCfg config.QueueConfig) *Client {
	hc := req.C().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetCommonHeader("Accept", "application/json")

	return &Client{
		hc:                hc,
		avgServiceMinutes: queueCfg.AvgServiceMinutes,
	}
}

func (c *Client) request(ctx context.Context, token string) *req.Request {
	r := c.hc.R().SetContext(ctx)
	if token != "" {
		r.SetBearerAuthToken(token)
	}
	return r
}

// classify turns a req outcome into a gateway error, or nil on success.
func classify(resp *req.Response, err error, apiErr *apiError, op string) error {
	if err != nil {
		if resp != nil && resp.Response != nil && resp.StatusCode > 0 {
			// Got a status line, so the failure is in the response body.
			return gateway.WrapErr(gateway.KindMalformed, op+": unreadable response body", err)
		}
		return gateway.WrapErr(gateway.KindForErr(err), op+": request failed", err)
	}
	if resp.IsError() {
		switch resp.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return gateway.WrapErr(gateway.KindUnauthorized, op+": rejected as unauthorized", nil)
		case http.StatusNotFound:
			return gateway.WrapErr(gateway.KindNotFound, op+": not found", nil)
		default:
			var serverMsg string
			if apiErr != nil {
				serverMsg = apiErr.text()
			}
			return gateway.RejectedErr(fmt.Sprintf("%s: server returned %d", op, resp.StatusCode), serverMsg)
		}
	}
	return nil
}

func (c *Client) FetchQueue(ctx context.Context, shopID int64) (queue.Snapshot, error) {
	var body queueStatusResponse
	var apiErr apiError

	resp, err := c.request(ctx, "").
		SetResult(&body).
		SetError(&apiErr).
		Get(fmt.Sprintf("/queue/%d", shopID))
	if gwErr := classify(resp, err, &apiErr, "fetch queue"); gwErr != nil {
		return queue.Snapshot{}, gwErr
	}

	lastUpdated := body.LastUpdated
	if lastUpdated.IsZero() {
		lastUpdated = time.Now()
	}

	snap, err := queue.NewSnapshot(shopID, body.BarberID, body.QueueSize, body.EstimatedWaitTime, c.avgServiceMinutes, lastUpdated)
	if err != nil {
		return queue.Snapshot{}, gateway.WrapErr(gateway.KindMalformed, "fetch queue: invalid snapshot body", err)
	}
	return snap, nil
}

func (c *Client) JoinQueue(ctx context.Context, token string, shopID int64, userID string) (queue.Position, error) {
	var body joinQueueResponse
	var apiErr apiError

	resp, err := c.request(ctx, token).
		SetResult(&body).
		SetError(&apiErr).
		Post(fmt.Sprintf("/queue/%d/join", shopID))
	if gwErr := classify(resp, err, &apiErr, "join queue"); gwErr != nil {
		return queue.Position{}, gwErr
	}

	pos, err := queue.NewPosition(shopID, userID, body.Position, time.Now())
	if err != nil {
		return queue.Position{}, gateway.WrapErr(gateway.KindMalformed, "join queue: invalid position body", err)
	}
	return pos, nil
}

func (c *Client) CreateAppointment(ctx context.Context, token string, request booking.Request) (booking.Record, error) {
	var body appointmentResponse
	var apiErr apiError

	resp, err := c.request(ctx, token).
		SetBody(appointmentRequest{
			ShopID:  request.ShopID(),
			Service: request.Service().String(),
			Date:    request.RequestedTime(),
			Notes:   request.Notes(),
		}).
		SetResult(&body).
		SetError(&apiErr).
		Post("/appointments")
	if gwErr := classify(resp, err, &apiErr, "create appointment"); gwErr != nil {
		return booking.Record{}, gwErr
	}

	return body.toRecord(), nil
}

func (c *Client) ListAppointments(ctx context.Context, token string) ([]booking.Record, error) {
	var body []appointmentResponse
	var apiErr apiError

	resp, err := c.request(ctx, token).
		SetResult(&body).
		SetError(&apiErr).
		Get("/appointments")
	if gwErr := classify(resp, err, &apiErr, "list appointments"); gwErr != nil {
		return nil, gwErr
	}

	records := make([]booking.Record, 0, len(body))
	for _, a := range body {
		records = append(records, a.toRecord())
	}
	return records, nil
}

func (c *Client) CancelAppointment(ctx context.Context, token string, appointmentID int64) error {
	var apiErr apiError

	resp, err := c.request(ctx, token).
		SetError(&apiErr).
		Delete(fmt.Sprintf("/appointments/%d", appointmentID))
	return classify(resp, err, &apiErr, "cancel appointment")
}

func (c *Client) AvailableSlots(ctx context.Context, token string, shopID int64, date time.Time) ([]time.Time, error) {
	var body slotsResponse
	var apiErr apiError

	resp, err := c.request(ctx, token).
		SetQueryParam("date", date.Format(time.RFC3339)).
		SetResult(&body).
		SetError(&apiErr).
		Get(fmt.Sprintf("/shops/%d/slots", shopID))
	if gwErr := classify(resp, err, &apiErr, "available slots"); gwErr != nil {
		return nil, gwErr
	}
	return body.Slots, nil
}

func (c *Client) Login(ctx context.Context, credentials identity.Credentials) (identity.Identity, string, error) {
	var body loginResponse
	var apiErr apiError

	resp, err := c.request(ctx, "").
		SetBody(loginRequest{
			Email:    credentials.Email().Value(),
			Password: credentials.Password().Value(),
		}).
		SetResult(&body).
		SetError(&apiErr).
		Post("/auth/login")
	if gwErr := classify(resp, err, &apiErr, "login"); gwErr != nil {
		return identity.Identity{}, "", gwErr
	}

	if body.Token == "" {
		return identity.Identity{}, "", gateway.WrapErr(gateway.KindMalformed, "login: response missing token", nil)
	}
	return identity.NewIdentity(body.User.ID, body.User.Email), body.Token, nil
}

func (c *Client) Register(ctx context.Context, credentials identity.Credentials, name string) (identity.Identity, error) {
	var body userPayload
	var apiErr apiError

	resp, err := c.request(ctx, "").
		SetBody(registerRequest{
			Email:    credentials.Email().Value(),
			Password: credentials.Password().Value(),
			Name:     name,
		}).
		SetResult(&body).
		SetError(&apiErr).
		Post("/auth/register")
	if gwErr := classify(resp, err, &apiErr, "register"); gwErr != nil {
		return identity.Identity{}, gwErr
	}

	return identity.NewIdentity(body.ID, body.Email), nil
}

func (c *Client) Me(ctx context.Context, token string) (identity.Identity, error) {
	var body userPayload
	var apiErr apiError

	resp, err := c.request(ctx, token).
		SetResult(&body).
		SetError(&apiErr).
		Get("/auth/me")
	if gwErr := classify(resp, err, &apiErr, "me"); gwErr != nil {
		return identity.Identity{}, gwErr
	}

	return identity.NewIdentity(body.ID, body.Email), nil
}
