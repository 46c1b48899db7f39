package geoapi

import (
	"context"

	"barberbook/internal/domain/shop"
	"barberbook/internal/gateway"
	"barberbook/internal/pkg/config"

	"github.com/imroc/req/v3"
)

// Client queries the third-party geocoding/maps provider for barbershop
// locations. The provider speaks the ArcGIS feature-collection dialect.
type Client struct {
	hc    *req.Client
	where string
}

func NewClient(cfg config.GeoConfig) *Client {
	hc := req.C().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetCommonHeader("Accept", "application/json")

	return &Client{
		hc:    hc,
		where: cfg.Where,
	}
}

type featureCollection struct {
	Features []feature `json:"features"`
}

type feature struct {
	Attributes attributes `json:"attributes"`
	Geometry   geometry   `json:"geometry"`
}

type attributes struct {
	ObjectID    int64  `json:"OBJECTID"`
	Name        string `json:"NAME"`
	FullAddress string `json:"FULLADDRESS"`
	Phone       string `json:"PHONE"`
	Website     string `json:"WEBSITE"`
}

type geometry struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (c *Client) BarberShops(ctx context.Context) ([]shop.Shop, error) {
	var body featureCollection

	resp, err := c.hc.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"where":     c.where,
			"outFields": "*",
			"outSR":     "4326",
			"f":         "json",
		}).
		SetResult(&body).
		Get("")
	if err != nil {
		if resp != nil && resp.Response != nil && resp.StatusCode > 0 {
			return nil, gateway.WrapErr(gateway.KindMalformed, "shop query: unreadable response body", err)
		}
		return nil, gateway.WrapErr(gateway.KindForErr(err), "shop query: request failed", err)
	}
	if resp.IsError() {
		return nil, gateway.WrapErr(gateway.KindRejected, "shop query: provider rejected request", nil)
	}

	shops := make([]shop.Shop, 0, len(body.Features))
	for _, f := range body.Features {
		shops = append(shops, shop.Shop{
			ID:      f.Attributes.ObjectID,
			Name:    f.Attributes.Name,
			Address: f.Attributes.FullAddress,
			Location: shop.Location{
				Lat: f.Geometry.Y,
				Lng: f.Geometry.X,
			},
			Phone:   f.Attributes.Phone,
			Website: f.Attributes.Website,
		})
	}
	return shops, nil
}
