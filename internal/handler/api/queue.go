package api

import (
	"errors"
	"net/http"
	"strconv"

	resdto "barberbook/internal/handler/dto/response"
	"barberbook/internal/handler/httperr"
	"barberbook/internal/pkg/errs"
	"barberbook/internal/usecase/commands"
	"barberbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type QueueHandler struct {
	queueCommands commands.QueueCommands
	queueQueries  queries.QueueQueries
}

func NewQueueHandler(queueCommands commands.QueueCommands, queueQueries queries.QueueQueries) *QueueHandler {
	return &QueueHandler{
		queueCommands: queueCommands,
		queueQueries:  queueQueries,
	}
}

// @Summary Queue status
// @Description Refresh and return the shop's queue snapshot. When the
// @Description refresh fails and a cached snapshot exists, the stale one is
// @Description served instead.
// @Tags queue
// @Produce json
// @Param shopId path int true "Shop ID"
// @Success 200 {object} resdto.QueueStatusResponse
// @Failure 404 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /queue/{shopId} [get]
func (h *QueueHandler) GetStatus(c *gin.Context) {
	shopID, err := strconv.ParseInt(c.Param("shopId"), 10, 64)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid shop id", nil)
		return
	}

	_, err = h.queueCommands.Refresh(c.Request.Context(), shopID)
	if err != nil {
		if errors.Is(err, errs.ErrShopNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Shop not found", nil)
			return
		}
		// Stale-but-present beats an error page.
		if view, ok := h.queueQueries.Status(shopID); ok {
			c.JSON(http.StatusOK, resdto.FromQueueStatusView(view, true))
			return
		}
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Queue service is unreachable", nil)
		return
	}

	view, ok := h.queueQueries.Status(shopID)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("snapshot missing after refresh"), "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromQueueStatusView(view, false))
}

// @Summary Join queue
// @Description Request a queue position for the current user
// @Tags queue
// @Produce json
// @Param shopId path int true "Shop ID"
// @Success 200 {object} resdto.PositionResponse
// @Failure 401 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /queue/{shopId}/join [post]
func (h *QueueHandler) Join(c *gin.Context) {
	shopID, err := strconv.ParseInt(c.Param("shopId"), 10, 64)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid shop id", nil)
		return
	}

	pos, err := h.queueCommands.Join(c.Request.Context(), shopID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrUnauthenticated):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Authentication required", nil)
		default:
			httperr.AbortWithError(c, http.StatusBadGateway, err, "Queue service is unreachable", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.PositionResponse{
		ShopID:   pos.ShopID,
		Position: pos.Position,
		JoinedAt: pos.JoinedAt,
	})
}

// @Summary My queue position
// @Description Pure read of the current user's cached queue position
// @Tags queue
// @Produce json
// @Param shopId path int true "Shop ID"
// @Success 200 {object} resdto.PositionResponse
// @Failure 404 {object} map[string]string
// @Router /queue/{shopId}/position [get]
func (h *QueueHandler) MyPosition(c *gin.Context) {
	shopID, err := strconv.ParseInt(c.Param("shopId"), 10, 64)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid shop id", nil)
		return
	}

	view, ok := h.queueQueries.MyPosition(shopID)
	if !ok {
		httperr.AbortWithError(c, http.StatusNotFound, errNoQueuePosition, "No queue position", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromPositionView(view))
}
