package shop

import (
	"math"
	"sort"
)

// Shop is a barbershop location as reported by the geocoding provider.
type Shop struct {
	ID       int64
	Name     string
	Address  string
	Location Location
	Phone    string
	Website  string
}

type Location struct {
	Lat float64
	Lng float64
}

const earthRadiusMiles = 3959

// DistanceMiles is the haversine distance between two points, rounded to
// one decimal place.
func (l Location) DistanceMiles(other Location) float64 {
	lat1 := toRadian(l.Lat)
	lat2 := toRadian(other.Lat)
	dLat := toRadian(other.Lat - l.Lat)
	dLon := toRadian(other.Lng - l.Lng)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return math.Round(earthRadiusMiles*c*10) / 10
}

func toRadian(degree float64) float64 {
	return degree * math.Pi / 180
}

// SortByDistance orders shops by distance from the given origin, nearest
// first. The sort is stable so equidistant shops keep provider order.
func SortByDistance(shops []Shop, origin Location) {
	sort.SliceStable(shops, func(i, j int) bool {
		return shops[i].Location.DistanceMiles(origin) < shops[j].Location.DistanceMiles(origin)
	})
}
