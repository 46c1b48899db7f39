package api

import (
	"net/http"
	"strconv"

	"barberbook/internal/domain/shop"
	resdto "barberbook/internal/handler/dto/response"
	"barberbook/internal/handler/httperr"
	"barberbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ShopHandler struct {
	shopQueries queries.ShopQueries
}

func NewShopHandler(shopQueries queries.ShopQueries) *ShopHandler {
	return &ShopHandler{
		shopQueries: shopQueries,
	}
}

// @Summary List barbershops
// @Description List shops from the geocoding provider, nearest first when
// @Description lat/lng are given
// @Tags shops
// @Produce json
// @Param lat query number false "Origin latitude"
// @Param lng query number false "Origin longitude"
// @Success 200 {array} resdto.ShopResponse
// @Failure 400 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /shops [get]
func (h *ShopHandler) ListShops(c *gin.Context) {
	origin, err := parseOrigin(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}

	views, err := h.shopQueries.List(c.Request.Context(), origin)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Map provider is unreachable", nil)
		return
	}

	out := make([]resdto.ShopResponse, 0, len(views))
	for _, v := range views {
		out = append(out, resdto.FromShopView(v))
	}
	c.JSON(http.StatusOK, out)
}

func parseOrigin(c *gin.Context) (*shop.Location, error) {
	latRaw := c.Query("lat")
	lngRaw := c.Query("lng")
	if latRaw == "" && lngRaw == "" {
		return nil, nil
	}
	if latRaw == "" || lngRaw == "" {
		return nil, errBothCoordinates
	}

	lat, err := strconv.ParseFloat(latRaw, 64)
	if err != nil {
		return nil, errBadCoordinates
	}
	lng, err := strconv.ParseFloat(lngRaw, 64)
	if err != nil {
		return nil, errBadCoordinates
	}
	return &shop.Location{Lat: lat, Lng: lng}, nil
}
