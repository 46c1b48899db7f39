package queries

import (
	"context"

	"barberbook/internal/domain/shop"
	"barberbook/internal/pkg/errs"
)

// GeoGateway is the third-party geocoding/maps provider port.
type GeoGateway interface {
	BarberShops(ctx context.Context) ([]shop.Shop, error)
}

type ShopQueries interface {
	List(ctx context.Context, origin *shop.Location) ([]ShopView, error)
}

type shopQueriesImpl struct {
	geoGateway GeoGateway
}

func NewShopQueries(geoGateway GeoGateway) ShopQueries {
	return &shopQueriesImpl{
		geoGateway: geoGateway,
	}
}

// List returns the provider's barbershops. With an origin the result is
// ordered nearest first and carries per-shop distances.
func (s *shopQueriesImpl) List(ctx context.Context, origin *shop.Location) ([]ShopView, error) {
	shops, err := s.geoGateway.BarberShops(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrTransport)
	}

	if origin != nil {
		shop.SortByDistance(shops, *origin)
	}

	views := make([]ShopView, 0, len(shops))
	for _, sh := range shops {
		view := ShopView{
			ID:      sh.ID,
			Name:    sh.Name,
			Address: sh.Address,
			Lat:     sh.Location.Lat,
			Lng:     sh.Location.Lng,
			Phone:   sh.Phone,
			Website: sh.Website,
		}
		if origin != nil {
			d := sh.Location.DistanceMiles(*origin)
			view.DistanceMiles = &d
		}
		views = append(views, view)
	}
	return views, nil
}
