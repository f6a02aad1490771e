package dataset

import (
	"lintang/ridecost/pkg/datastructure"
)

func city(id string, x, y float64, region datastructure.Region, traffic, parking, maintenance, platform, fuel float64,
	weather datastructure.Weather) datastructure.City {
	return datastructure.City{
		ID:          id,
		Name:        id,
		X:           x,
		Y:           y,
		Region:      region,
		Traffic:     traffic,
		Parking:     parking,
		Maintenance: maintenance,
		Platform:    platform,
		Fuel:        fuel,
		Weather:     weather,
	}
}

const (
	urban    = datastructure.RegionUrban
	suburban = datastructure.RegionSuburban
	rural    = datastructure.RegionRural

	wClear = datastructure.WeatherClear
	wRain  = datastructure.WeatherRain
	wSnow  = datastructure.WeatherSnow
	wStorm = datastructure.WeatherStorm
)

// minnesotaCities twin cities metro + beberapa kota rural di sekitarnya. x,y dalam grid unit.
var minnesotaCities = []datastructure.City{
	city("Minneapolis", 0, 0, urban, 2.0, 8.0, 1.0, 4.5, 0.18, wClear),
	city("St Paul", 10, -2, urban, 1.8, 7.0, 1.0, 4.2, 0.17, wClear),
	city("Edina", -4, -6, suburban, 1.4, 4.0, 0.9, 3.8, 0.15, wClear),
	city("Bloomington", -2, -8, suburban, 1.5, 3.5, 0.9, 3.5, 0.15, wClear),
	city("Roseville", 5, 3, suburban, 1.3, 3.0, 1.0, 3.2, 0.14, wClear),
	city("Maple Grove", -6, 6, suburban, 1.2, 2.5, 0.8, 3.0, 0.14, wClear),
	city("Blaine", 4, 10, suburban, 1.1, 2.0, 0.9, 2.8, 0.13, wRain),
	city("Anoka", -3, 9, suburban, 1.0, 2.0, 1.1, 2.5, 0.13, wClear),
	city("Forest Lake", 15, 10, rural, 0.8, 1.5, 1.2, 2.2, 0.16, wSnow),
	city("Stillwater", 20, 3, rural, 0.9, 2.0, 1.0, 2.5, 0.16, wClear),
	city("Woodbury", 15, -1, suburban, 1.3, 3.0, 0.8, 3.2, 0.14, wClear),
	city("Cottage Grove", 13, -6, suburban, 1.1, 2.5, 1.0, 2.8, 0.15, wClear),
	city("Eagan", 3, -10, suburban, 1.4, 3.5, 0.9, 3.3, 0.15, wClear),
	city("Burnsville", 1, -12, suburban, 1.3, 3.0, 1.0, 3.0, 0.15, wClear),
	city("Apple Valley", 2, -13, suburban, 0.5, 0.5, 0.8, 1.5, 0.08, wClear),
	city("Rosemount", 5, -14, suburban, 1.1, 2.5, 1.0, 2.7, 0.14, wClear),
	// beda dari data awal (0.3, 0.5, 0.7, 1.5, 0.08): dengan nilai lama route company ke Northfield ikut lewat Lakeville
	city("Lakeville", 1, -16, suburban, 1.0, 2.0, 1.0, 2.5, 0.14, wClear),
	city("Shakopee", -8, -10, suburban, 1.5, 4.0, 1.3, 2.8, 0.18, wClear),
	city("Prior Lake", -6, -12, suburban, 1.0, 2.0, 1.1, 2.6, 0.14, wClear),
	city("Chanhassen", -10, -9, suburban, 1.1, 2.5, 0.9, 2.8, 0.14, wClear),
	city("Hastings", 18, -10, rural, 0.8, 1.0, 1.3, 2.0, 0.17, wClear),
	city("Northfield", 0, -20, rural, 0.7, 1.0, 1.2, 1.8, 0.17, wStorm),
	city("Lonsdale", -5, -17, rural, 0.6, 0.5, 1.4, 1.5, 0.18, wClear),
	city("New Prague", -8, -18, rural, 0.6, 5.0, 2.0, 1.5, 0.25, wClear),
	city("Monticello", -15, 13, rural, 0.7, 1.0, 1.3, 1.8, 0.18, wSnow),
}

// minnesotaEdges urutan edge menentukan urutan neighbors, jangan diubah. Beberapa road sengaja muncul dua kali.
var minnesotaEdges = []datastructure.Edge{
	{U: "Monticello", V: "Maple Grove"},
	{U: "Maple Grove", V: "Minneapolis"},
	{U: "Minneapolis", V: "St Paul"},
	{U: "St Paul", V: "Woodbury"},
	{U: "Woodbury", V: "Stillwater"},
	{U: "Maple Grove", V: "Anoka"},
	{U: "Anoka", V: "Blaine"},
	{U: "Blaine", V: "Forest Lake"},
	{U: "Forest Lake", V: "Stillwater"},
	{U: "St Paul", V: "Roseville"},
	{U: "St Paul", V: "Eagan"},
	{U: "Eagan", V: "Rosemount"},
	{U: "Rosemount", V: "Apple Valley"},
	{U: "Apple Valley", V: "Burnsville"},
	{U: "Burnsville", V: "Lakeville"},
	{U: "Lakeville", V: "Northfield"},
	{U: "Northfield", V: "Lonsdale"},
	{U: "Lonsdale", V: "New Prague"},
	{U: "Edina", V: "Bloomington"},
	{U: "Bloomington", V: "Shakopee"},
	{U: "Shakopee", V: "Prior Lake"},
	{U: "Prior Lake", V: "Chanhassen"},
	{U: "Chanhassen", V: "Maple Grove"},
	{U: "Minneapolis", V: "Edina"},
	{U: "Minneapolis", V: "Roseville"},
	{U: "Minneapolis", V: "Bloomington"},
	{U: "Minneapolis", V: "Maple Grove"},
	{U: "Minneapolis", V: "Eagan"},
	{U: "Woodbury", V: "Cottage Grove"},
	{U: "Cottage Grove", V: "Hastings"},
	{U: "Roseville", V: "Blaine"},
	{U: "Edina", V: "Chanhassen"},
	{U: "Shakopee", V: "New Prague"},
	{U: "New Prague", V: "Lonsdale"},
	{U: "Edina", V: "Minneapolis"},
	{U: "Minneapolis", V: "Anoka"},
	{U: "Anoka", V: "Forest Lake"},
	{U: "Chanhassen", V: "Prior Lake"},
	{U: "Prior Lake", V: "Burnsville"},
	{U: "Burnsville", V: "Rosemount"},
	{U: "Edina", V: "Bloomington"},
	{U: "Bloomington", V: "Eagan"},
	{U: "Eagan", V: "Woodbury"},
	{U: "Woodbury", V: "Forest Lake"},
	{U: "Edina", V: "Roseville"},
	{U: "Roseville", V: "St Paul"},
	{U: "St Paul", V: "Forest Lake"},
}

// MinnesotaCities copy dari city built-in.
func MinnesotaCities() []datastructure.City {
	cities := make([]datastructure.City, len(minnesotaCities))
	copy(cities, minnesotaCities)
	return cities
}

func MinnesotaEdges() []datastructure.Edge {
	edges := make([]datastructure.Edge, len(minnesotaEdges))
	copy(edges, minnesotaEdges)
	return edges
}

// Minnesota built-in 25 city / 47 edge network.
func Minnesota() *datastructure.Graph {
	g, err := datastructure.NewGraph(minnesotaCities, minnesotaEdges)
	if err != nil {
		// data di atas statis, error di sini berarti datanya rusak
		panic(err)
	}
	return g
}
