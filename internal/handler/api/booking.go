package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"barberbook/internal/gateway"
	reqdto "barberbook/internal/handler/dto/request"
	resdto "barberbook/internal/handler/dto/response"
	"barberbook/internal/handler/httperr"
	"barberbook/internal/pkg/errs"
	"barberbook/internal/usecase/commands"
	"barberbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

// @Summary Submit a booking
// @Description Submit an appointment request to the external booking API
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	rec, err := h.bookingCommands.Submit(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrUnauthenticated):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Authentication required", nil)
		case errors.Is(err, errs.ErrInvalidInput):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data", nil)
		case errors.Is(err, errs.ErrBookingFailed):
			msg := gateway.ServerMessage(err)
			if msg == "" {
				msg = "Booking could not be completed"
			}
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, msg, nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBookingRecord(rec))
}

// @Summary Booking history
// @Description List this session's confirmed bookings in order
// @Tags bookings
// @Produce json
// @Success 200 {array} resdto.BookingResponse
// @Router /bookings [get]
func (h *BookingHandler) ListBookings(c *gin.Context) {
	views := h.bookingQueries.History()

	out := make([]*resdto.BookingResponse, 0, len(views))
	for _, v := range views {
		out = append(out, resdto.FromBookingView(v))
	}
	c.JSON(http.StatusOK, out)
}

// @Summary Cancel a booking
// @Description Cancel an appointment through the external booking API
// @Tags bookings
// @Param id path int true "Appointment ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [delete]
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	appointmentID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid appointment id", nil)
		return
	}

	if err := h.bookingCommands.Cancel(c.Request.Context(), appointmentID); err != nil {
		switch {
		case errors.Is(err, errs.ErrUnauthenticated):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Authentication required", nil)
		case errors.Is(err, errs.ErrAppointmentNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Appointment not found", nil)
		case errors.Is(err, errs.ErrTransport):
			httperr.AbortWithError(c, http.StatusBadGateway, err, "Booking service is unreachable", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Available slots
// @Description List bookable slots for a shop on a given date
// @Tags bookings
// @Produce json
// @Param shopId path int true "Shop ID"
// @Param date query string false "ISO8601 date, defaults to now"
// @Success 200 {object} resdto.SlotsResponse
// @Failure 404 {object} map[string]string
// @Router /shops/{shopId}/slots [get]
func (h *BookingHandler) GetSlots(c *gin.Context) {
	shopID, err := strconv.ParseInt(c.Param("shopId"), 10, 64)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid shop id", nil)
		return
	}

	date := time.Now()
	if raw := c.Query("date"); raw != "" {
		date, err = time.Parse(time.RFC3339, raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date, expected ISO8601", nil)
			return
		}
	}

	slots, err := h.bookingQueries.Slots(c.Request.Context(), shopID, date)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrShopNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Shop not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusBadGateway, err, "Booking service is unreachable", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.SlotsResponse{
		ShopID: shopID,
		Date:   date.Format(time.RFC3339),
		Slots:  slots,
	})
}
