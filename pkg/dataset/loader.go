package dataset

import (
	"errors"
	"fmt"
	"io"
	"os"

	"lintang/ridecost/pkg/datastructure"

	"gopkg.in/yaml.v3"
)

var ErrInvalidDataset = errors.New("invalid dataset")

// Network format file yaml untuk custom road network.
//
//	cities:
//	  - id: Minneapolis
//	    x: 0
//	    y: 0
//	    region: urban
//	    ...
//	edges:
//	  - {u: Minneapolis, v: St Paul}
type Network struct {
	Cities []datastructure.City `yaml:"cities"`
	Edges  []datastructure.Edge `yaml:"edges"`
}

func LoadYAML(r io.Reader) (*datastructure.Graph, error) {
	var network Network
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&network); err != nil {
		return nil, fmt.Errorf("%w: decode yaml: %v", ErrInvalidDataset, err)
	}
	if err := network.validate(); err != nil {
		return nil, err
	}
	for i := range network.Cities {
		if network.Cities[i].Name == "" {
			network.Cities[i].Name = network.Cities[i].ID
		}
	}
	return datastructure.NewGraph(network.Cities, network.Edges)
}

func LoadFile(path string) (*datastructure.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadYAML(f)
}

// Load kalau path kosong pakai network Minnesota built-in.
func Load(path string) (*datastructure.Graph, error) {
	if path == "" {
		return Minnesota(), nil
	}
	return LoadFile(path)
}

func (n Network) validate() error {
	if len(n.Cities) == 0 {
		return fmt.Errorf("%w: no cities", ErrInvalidDataset)
	}
	for _, c := range n.Cities {
		if c.ID == "" {
			return fmt.Errorf("%w: city without id", ErrInvalidDataset)
		}
		if !c.Region.Valid() {
			return fmt.Errorf("%w: city %q has unknown region %q", ErrInvalidDataset, c.ID, c.Region)
		}
		if c.Weather == "" {
			continue
		}
		if !c.Weather.Valid() {
			return fmt.Errorf("%w: city %q has unknown weather %q", ErrInvalidDataset, c.ID, c.Weather)
		}
	}
	return nil
}
