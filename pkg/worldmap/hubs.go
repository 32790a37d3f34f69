package worldmap

import "math/rand"

// HubRegion is a predefined population center used to bias node placement.
// Spreads are in degrees and keep placement jitter anchored to recognizable
// regions.
type HubRegion struct {
	Name      string  `yaml:"name"`
	Lat       float64 `yaml:"lat"`
	Lon       float64 `yaml:"lon"`
	Weight    float64 `yaml:"weight"`
	LatSpread float64 `yaml:"lat_spread"`
	LonSpread float64 `yaml:"lon_spread"`
}

// Center returns the hub's center coordinate.
func (h HubRegion) Center() Coord {
	return Coord{Lon: h.Lon, Lat: h.Lat}
}

// DefaultHubs is the built-in table of major population hubs, weighted
// roughly by population.
var DefaultHubs = []HubRegion{
	// North America
	{Name: "US East Coast", Lat: 40.0, Lon: -74.0, Weight: 0.055, LatSpread: 3.5, LonSpread: 4.5},
	{Name: "US West Coast", Lat: 37.5, Lon: -122.0, Weight: 0.032, LatSpread: 3.0, LonSpread: 4.0},
	{Name: "US Midwest", Lat: 41.5, Lon: -88.0, Weight: 0.028, LatSpread: 3.0, LonSpread: 4.0},
	{Name: "US South", Lat: 33.0, Lon: -84.0, Weight: 0.025, LatSpread: 3.0, LonSpread: 4.0},
	{Name: "Canada East", Lat: 46.5, Lon: -71.0, Weight: 0.018, LatSpread: 3.0, LonSpread: 6.0},
	{Name: "Canada West", Lat: 53.0, Lon: -113.0, Weight: 0.014, LatSpread: 4.0, LonSpread: 5.0},
	{Name: "Mexico City", Lat: 19.4, Lon: -99.1, Weight: 0.022, LatSpread: 2.5, LonSpread: 3.5},
	{Name: "Central America", Lat: 14.3, Lon: -90.5, Weight: 0.012, LatSpread: 2.0, LonSpread: 3.0},
	// South America
	{Name: "Brazil Southeast", Lat: -23.5, Lon: -46.6, Weight: 0.04, LatSpread: 3.0, LonSpread: 4.0},
	{Name: "Brazil Northeast", Lat: -8.0, Lon: -34.9, Weight: 0.018, LatSpread: 3.0, LonSpread: 4.0},
	{Name: "Argentina", Lat: -34.6, Lon: -58.4, Weight: 0.017, LatSpread: 3.0, LonSpread: 4.0},
	{Name: "Peru", Lat: -12.0, Lon: -77.0, Weight: 0.015, LatSpread: 2.5, LonSpread: 3.5},
	{Name: "Colombia", Lat: 4.6, Lon: -74.1, Weight: 0.015, LatSpread: 2.5, LonSpread: 3.5},
	// Europe
	{Name: "UK", Lat: 53.0, Lon: -1.5, Weight: 0.028, LatSpread: 3.0, LonSpread: 3.0},
	{Name: "France / Benelux", Lat: 49.5, Lon: 2.0, Weight: 0.034, LatSpread: 3.0, LonSpread: 3.0},
	{Name: "Central Europe", Lat: 48.0, Lon: 16.0, Weight: 0.034, LatSpread: 3.0, LonSpread: 3.0},
	{Name: "Iberia", Lat: 40.0, Lon: -3.0, Weight: 0.022, LatSpread: 3.0, LonSpread: 3.0},
	{Name: "Italy", Lat: 42.5, Lon: 12.5, Weight: 0.022, LatSpread: 2.5, LonSpread: 2.5},
	{Name: "Eastern Europe", Lat: 52.0, Lon: 20.0, Weight: 0.03, LatSpread: 3.0, LonSpread: 3.0},
	{Name: "Scandinavia", Lat: 59.5, Lon: 18.0, Weight: 0.015, LatSpread: 4.0, LonSpread: 4.0},
	{Name: "European Russia", Lat: 56.0, Lon: 38.0, Weight: 0.032, LatSpread: 3.5, LonSpread: 6.0},
	// Africa & Middle East
	{Name: "North Africa", Lat: 31.0, Lon: 31.0, Weight: 0.032, LatSpread: 3.0, LonSpread: 4.0},
	{Name: "West Africa", Lat: 6.0, Lon: -1.5, Weight: 0.028, LatSpread: 3.0, LonSpread: 4.0},
	{Name: "Nigeria", Lat: 9.0, Lon: 7.4, Weight: 0.026, LatSpread: 3.0, LonSpread: 4.0},
	{Name: "East Africa", Lat: 1.0, Lon: 37.0, Weight: 0.027, LatSpread: 3.5, LonSpread: 4.0},
	{Name: "Ethiopia", Lat: 9.0, Lon: 39.0, Weight: 0.016, LatSpread: 2.5, LonSpread: 3.0},
	{Name: "Southern Africa", Lat: -26.0, Lon: 28.0, Weight: 0.026, LatSpread: 3.5, LonSpread: 4.5},
	{Name: "Turkey", Lat: 39.0, Lon: 35.0, Weight: 0.019, LatSpread: 2.5, LonSpread: 3.0},
	{Name: "Persian Gulf", Lat: 25.0, Lon: 55.0, Weight: 0.015, LatSpread: 2.5, LonSpread: 3.5},
	{Name: "Iran", Lat: 35.7, Lon: 52.3, Weight: 0.02, LatSpread: 3.0, LonSpread: 3.5},
	// South & Central Asia
	{Name: "Pakistan", Lat: 31.5, Lon: 74.3, Weight: 0.028, LatSpread: 3.0, LonSpread: 3.0},
	{Name: "North India", Lat: 27.0, Lon: 77.0, Weight: 0.065, LatSpread: 3.0, LonSpread: 3.0},
	{Name: "West India", Lat: 19.0, Lon: 73.0, Weight: 0.055, LatSpread: 2.5, LonSpread: 3.0},
	{Name: "South India", Lat: 13.0, Lon: 80.0, Weight: 0.04, LatSpread: 2.5, LonSpread: 3.0},
	{Name: "Bangladesh", Lat: 23.7, Lon: 90.3, Weight: 0.026, LatSpread: 2.0, LonSpread: 2.5},
	{Name: "Sri Lanka", Lat: 7.3, Lon: 80.7, Weight: 0.006, LatSpread: 1.2, LonSpread: 1.2},
	{Name: "Nepal", Lat: 27.7, Lon: 85.3, Weight: 0.01, LatSpread: 1.8, LonSpread: 2.0},
	{Name: "Myanmar", Lat: 18.0, Lon: 96.0, Weight: 0.018, LatSpread: 3.0, LonSpread: 3.5},
	// East Asia
	{Name: "Central China", Lat: 34.0, Lon: 113.0, Weight: 0.08, LatSpread: 3.5, LonSpread: 4.5},
	{Name: "Northern China", Lat: 40.5, Lon: 116.5, Weight: 0.06, LatSpread: 3.0, LonSpread: 3.5},
	{Name: "Southern China", Lat: 23.5, Lon: 113.0, Weight: 0.07, LatSpread: 3.0, LonSpread: 3.5},
	{Name: "Sichuan Basin", Lat: 30.5, Lon: 104.0, Weight: 0.045, LatSpread: 3.0, LonSpread: 3.0},
	{Name: "Northeast China", Lat: 44.0, Lon: 125.0, Weight: 0.03, LatSpread: 3.0, LonSpread: 3.5},
	{Name: "Korean Peninsula", Lat: 37.5, Lon: 127.0, Weight: 0.028, LatSpread: 2.5, LonSpread: 2.5},
	{Name: "Japan", Lat: 35.5, Lon: 138.5, Weight: 0.032, LatSpread: 3.0, LonSpread: 3.0},
	{Name: "Taiwan", Lat: 24.0, Lon: 121.0, Weight: 0.01, LatSpread: 1.8, LonSpread: 2.0},
	{Name: "Hong Kong / Pearl River", Lat: 22.8, Lon: 114.2, Weight: 0.018, LatSpread: 1.8, LonSpread: 2.2},
	// Southeast Asia & Oceania
	{Name: "Vietnam", Lat: 16.0, Lon: 107.0, Weight: 0.022, LatSpread: 3.0, LonSpread: 3.0},
	{Name: "Thailand", Lat: 13.5, Lon: 101.0, Weight: 0.018, LatSpread: 2.5, LonSpread: 2.5},
	{Name: "Malaysia / Singapore", Lat: 3.0, Lon: 101.5, Weight: 0.016, LatSpread: 2.0, LonSpread: 2.5},
	{Name: "Indonesia West", Lat: -5.0, Lon: 106.0, Weight: 0.028, LatSpread: 3.0, LonSpread: 4.0},
	{Name: "Indonesia East", Lat: -3.0, Lon: 121.0, Weight: 0.02, LatSpread: 3.0, LonSpread: 4.0},
	{Name: "Philippines", Lat: 14.5, Lon: 121.0, Weight: 0.022, LatSpread: 2.5, LonSpread: 3.0},
	{Name: "New Guinea", Lat: -4.5, Lon: 144.0, Weight: 0.012, LatSpread: 3.0, LonSpread: 3.5},
	{Name: "Australia East", Lat: -27.0, Lon: 134.0, Weight: 0.02, LatSpread: 4.0, LonSpread: 5.0},
	{Name: "Australia West", Lat: -31.5, Lon: 118.0, Weight: 0.01, LatSpread: 4.0, LonSpread: 5.0},
	{Name: "New Zealand", Lat: -41.0, Lon: 174.0, Weight: 0.006, LatSpread: 2.5, LonSpread: 3.0},
}

// TotalWeight sums the weights of the given hubs.
func TotalWeight(hubs []HubRegion) float64 {
	total := 0.0
	for _, h := range hubs {
		total += h.Weight
	}
	return total
}

// ChooseHub picks a hub with probability proportional to its weight.
func ChooseHub(rng *rand.Rand, hubs []HubRegion) HubRegion {
	roll := rng.Float64() * TotalWeight(hubs)
	cumulative := 0.0
	for _, h := range hubs {
		cumulative += h.Weight
		if roll <= cumulative {
			return h
		}
	}
	return hubs[len(hubs)-1]
}
