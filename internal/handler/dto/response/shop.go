package response

import (
	"barberbook/internal/usecase/queries"
)

type ShopResponse struct {
	ID            int64        `json:"id"`
	Name          string       `json:"name"`
	Address       string       `json:"address"`
	Location      ShopLocation `json:"location"`
	Phone         string       `json:"phone,omitempty"`
	Website       string       `json:"website,omitempty"`
	DistanceMiles *float64     `json:"distanceMiles,omitempty"`
}

type ShopLocation struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func FromShopView(view queries.ShopView) ShopResponse {
	return ShopResponse{
		ID:      view.ID,
		Name:    view.Name,
		Address: view.Address,
		Location: ShopLocation{
			Lat: view.Lat,
			Lng: view.Lng,
		},
		Phone:         view.Phone,
		Website:       view.Website,
		DistanceMiles: view.DistanceMiles,
	}
}
