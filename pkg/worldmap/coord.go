package worldmap

import "math"

// earthRadiusKm is the mean Earth radius used for great-circle distances.
const earthRadiusKm = 6371.0

// Coord is a geographic position in degrees, equirectangular convention:
// longitude in [-180, 180], latitude in [-90, 90].
type Coord struct {
	Lon float64 `json:"lon"`
	Lat float64 `json:"lat"`
}

// Valid reports whether the coordinate is inside the map bounds.
func (c Coord) Valid() bool {
	return c.Lon >= -180 && c.Lon <= 180 && c.Lat >= -90 && c.Lat <= 90
}

// Clamp returns the coordinate clamped slightly inside the map bounds.
// Points exactly on the antimeridian or poles confuse pixel lookup.
func (c Coord) Clamp() Coord {
	return Coord{
		Lon: math.Max(-179.0, math.Min(179.0, c.Lon)),
		Lat: math.Max(-85.0, math.Min(85.0, c.Lat)),
	}
}

// DistanceKm returns the haversine great-circle distance to other in kilometers.
func (c Coord) DistanceKm(other Coord) float64 {
	lat1 := c.Lat * math.Pi / 180
	lat2 := other.Lat * math.Pi / 180
	dLat := (other.Lat - c.Lat) * math.Pi / 180
	dLon := (other.Lon - c.Lon) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusKm * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}
