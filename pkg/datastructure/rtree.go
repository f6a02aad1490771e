package datastructure

import (
	"cmp"
	"errors"

	"github.com/dhconnelly/rtreego"
	"golang.org/x/exp/slices"
)

var ErrEmptyIndex = errors.New("city index is empty")

var tol = 0.0001

type CityRect struct {
	Location rtreego.Point
	City     City
}

func (c *CityRect) Bounds() rtreego.Rect {
	// rectangle kecil di sekitar location dengan sisi 2 * tol
	return c.Location.ToRect(tol)
}

// CityIndex rtree spatial index buat snapping koordinat ke city terdekat.
type CityIndex struct {
	tree *rtreego.Rtree
	size int
}

func NewCityIndex(cities []City) *CityIndex {
	tree := rtreego.NewTree(2, 2, 8) // 2 dimension, 2 min entries dan 8 max entries
	for _, c := range cities {
		tree.Insert(&CityRect{
			Location: rtreego.Point{c.X, c.Y},
			City:     c,
		})
	}
	return &CityIndex{tree: tree, size: len(cities)}
}

// NearestCities k city terdekat dari coordinate, urut dari yang paling dekat. Jarak sama diurutkan berdasarkan ID.
func (ci *CityIndex) NearestCities(c Coordinate, k int) ([]City, error) {
	if ci.size == 0 {
		return nil, ErrEmptyIndex
	}
	if k <= 0 {
		return []City{}, nil
	}
	if k > ci.size {
		k = ci.size
	}
	// ambil kandidat lebih banyak dari k supaya tie di batas k tetap deterministic
	candidates := ci.tree.NearestNeighbors(min(k+2, ci.size), rtreego.Point{c.X, c.Y})

	cities := make([]City, 0, len(candidates))
	for _, cand := range candidates {
		if cand == nil {
			continue
		}
		cities = append(cities, cand.(*CityRect).City)
	}

	slices.SortFunc(cities, func(a, b City) int {
		da, db := c.DistanceTo(a.Coordinate()), c.DistanceTo(b.Coordinate())
		if da != db {
			return cmp.Compare(da, db)
		}
		return cmp.Compare(a.ID, b.ID)
	})

	if len(cities) > k {
		cities = cities[:k]
	}
	return cities, nil
}

func (ci *CityIndex) NearestCity(c Coordinate) (City, error) {
	cities, err := ci.NearestCities(c, 1)
	if err != nil {
		return City{}, err
	}
	return cities[0], nil
}
