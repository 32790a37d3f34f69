package worldmap

// landPolygons approximates the continents as simple closed shapes, listed as
// (lon, lat) vertex rings. The shapes are deliberately coarse: they exist so
// the sampler still has an answer when no reference map is loaded. Every hub
// in DefaultHubs sits inside one of these rings; coastlines are generous
// rather than exact. Overlapping rings are fine, a point counts as land if
// any ring contains it.
var landPolygons = [][]Coord{
	// North America, Greenland excluded
	{
		{-130.0, 59.5}, {-127.0, 47.5}, {-123.5, 37.2}, {-116.0, 30.5},
		{-105.0, 17.5}, {-92.0, 11.5}, {-81.0, 5.5}, {-76.5, 6.5},
		{-80.5, 23.5}, {-73.5, 32.5}, {-66.5, 41.5}, {-58.5, 46.2},
		{-62.5, 57.5}, {-69.0, 61.5}, {-90.0, 69.5}, {-122.0, 67.5},
	},
	// South America
	{
		{-77.0, 8.5}, {-81.5, -4.5}, {-76.0, -14.5}, {-72.0, -50.5},
		{-68.0, -55.5}, {-63.5, -41.5}, {-56.5, -38.5}, {-53.0, -34.8},
		{-47.5, -28.5}, {-39.5, -22.8}, {-33.5, -7.5}, {-49.5, 0.5},
		{-52.5, 4.5}, {-60.5, 9.5}, {-71.5, 11.5},
	},
	// Africa
	{
		{-9.5, 34.5}, {-17.0, 20.5}, {-16.5, 13.5}, {-12.0, 7.5},
		{-7.5, 4.2}, {6.0, 3.8}, {9.2, 3.2}, {9.5, -10.5},
		{11.5, -17.5}, {14.5, -27.5}, {17.5, -34.8}, {26.5, -34.3},
		{32.8, -28.0}, {36.0, -22.5}, {40.5, -15.5}, {39.0, -6.5},
		{42.0, 0.2}, {51.5, 10.8}, {43.5, 11.8}, {38.5, 18.5},
		{34.0, 27.8}, {33.8, 31.2}, {25.5, 32.2}, {10.5, 33.6},
		{-2.5, 35.6},
	},
	// Europe west of the Urals approach
	{
		{-10.5, 35.8}, {-9.8, 43.5}, {-11.0, 51.5}, {-8.0, 58.5},
		{4.5, 62.5}, {18.5, 70.5}, {31.8, 70.8}, {32.0, 44.5},
		{22.5, 36.3}, {15.5, 37.5}, {12.2, 41.3}, {7.5, 43.3},
		{3.0, 41.3}, {-1.5, 36.5},
	},
	// Russia and northern Asia
	{
		{27.5, 49.5}, {27.5, 71.5}, {95.0, 73.8}, {179.0, 70.5},
		{179.0, 64.0}, {160.0, 59.5}, {140.0, 53.5}, {134.0, 48.2},
		{110.0, 49.5}, {85.0, 48.8}, {60.0, 50.5}, {44.0, 46.5},
		{36.5, 44.5},
	},
	// Middle East: Anatolia, the Levant, Arabia, Iran
	{
		{25.8, 36.5}, {26.2, 41.3}, {36.5, 41.8}, {43.5, 40.2},
		{49.8, 41.8}, {50.0, 37.0}, {54.5, 37.6}, {60.5, 36.3},
		{63.5, 29.3}, {62.5, 25.3}, {58.8, 22.5}, {55.5, 17.5},
		{53.0, 16.3}, {44.5, 12.2}, {42.8, 16.8}, {38.8, 21.5},
		{34.8, 28.2}, {33.8, 33.2}, {35.8, 36.2},
	},
	// South Asia: Pakistan through Myanmar, Himalaya as north edge
	{
		{61.0, 25.2}, {66.5, 24.0}, {70.5, 20.6}, {71.8, 18.5},
		{74.3, 11.5}, {77.2, 7.8}, {80.4, 12.8}, {81.2, 15.5},
		{84.5, 17.8}, {87.5, 21.0}, {90.0, 21.6}, {92.6, 21.0},
		{94.3, 15.6}, {98.6, 10.0}, {99.2, 16.5}, {98.2, 23.5},
		{97.5, 28.3}, {91.8, 27.6}, {84.5, 29.5}, {77.0, 35.8},
		{71.3, 36.8}, {66.2, 30.0}, {61.5, 29.5},
	},
	// Sri Lanka
	{
		{79.5, 5.8}, {82.0, 6.2}, {81.8, 9.8}, {79.8, 9.4},
	},
	// East and Southeast Asia: China, Korea, Indochina, Malay peninsula
	{
		{79.5, 33.5}, {79.5, 44.5}, {88.5, 49.5}, {110.5, 51.5},
		{126.5, 52.5}, {131.5, 47.5}, {134.8, 44.5}, {131.0, 42.6},
		{129.7, 40.2}, {129.6, 35.2}, {126.4, 34.4}, {125.9, 38.2},
		{122.3, 39.6}, {121.8, 37.2}, {119.9, 34.6}, {121.9, 31.2},
		{120.1, 27.4}, {116.6, 22.7}, {113.8, 21.7}, {109.9, 20.9},
		{108.4, 16.9}, {108.9, 15.4}, {109.4, 12.9}, {106.9, 10.1},
		{104.9, 9.9}, {103.9, 1.2}, {101.0, 2.2}, {100.1, 5.7},
		{98.1, 8.2}, {99.1, 11.4}, {98.1, 14.4}, {97.9, 19.4},
		{98.6, 26.9}, {94.6, 28.7}, {85.1, 29.7},
	},
	// Taiwan
	{
		{119.8, 22.8}, {122.3, 23.4}, {121.9, 25.8}, {119.9, 24.6},
	},
	// Japan
	{
		{129.3, 30.8}, {132.5, 32.3}, {137.0, 33.8}, {141.2, 34.8},
		{142.5, 39.8}, {145.8, 43.8}, {141.0, 45.8}, {139.5, 41.5},
		{135.5, 35.0}, {131.0, 33.2},
	},
	// Sumatra and Java
	{
		{95.0, 5.8}, {98.8, 3.8}, {103.5, -0.5}, {106.5, -3.2},
		{110.5, -5.8}, {114.8, -7.3}, {114.2, -9.2}, {108.5, -8.2},
		{104.5, -6.6}, {101.0, -3.2}, {97.2, 1.4}, {94.6, 4.4},
	},
	// Sulawesi and eastern Indonesia
	{
		{118.5, -6.0}, {123.5, -5.5}, {125.5, -1.0}, {123.0, 1.8},
		{119.5, 0.5}, {118.8, -2.5},
	},
	// Philippines
	{
		{119.8, 12.0}, {122.5, 11.5}, {124.5, 13.5}, {122.0, 18.5},
		{119.9, 16.2},
	},
	// New Guinea
	{
		{131.0, -1.2}, {138.0, -1.8}, {146.5, -5.2}, {150.8, -9.8},
		{146.0, -10.2}, {138.5, -8.2}, {132.5, -3.8},
	},
	// Australia
	{
		{113.5, -22.0}, {114.5, -34.5}, {118.5, -35.5}, {124.0, -33.5},
		{129.5, -32.0}, {136.0, -35.0}, {140.5, -38.2}, {146.5, -39.2},
		{150.5, -37.5}, {153.5, -28.5}, {150.8, -22.5}, {145.5, -14.8},
		{142.0, -10.8}, {140.8, -17.5}, {135.5, -12.0}, {131.0, -11.2},
		{125.8, -14.2}, {121.5, -19.2},
	},
	// New Zealand
	{
		{166.3, -46.8}, {170.0, -47.2}, {174.6, -42.2}, {178.4, -38.0},
		{175.8, -35.2}, {172.8, -39.8}, {169.8, -43.8},
	},
}

// LandPolygons returns a copy of the built-in continental outlines, as
// (lon, lat) vertex rings. Renderers use these to draw coastlines.
func LandPolygons() [][]Coord {
	out := make([][]Coord, len(landPolygons))
	for i, ring := range landPolygons {
		out[i] = make([]Coord, len(ring))
		copy(out[i], ring)
	}
	return out
}
