// Package openings ships a small catalog of classical huarongdao
// starting positions, embedded at build time.
package openings

import (
	_ "embed"
	"fmt"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/domino14/huarongdao/board"
)

//go:embed openings.yaml
var catalogYAML []byte

// Opening is a named starting position.
type Opening struct {
	Name  string `yaml:"name"`
	Aka   string `yaml:"aka,omitempty"`
	Notes string `yaml:"notes,omitempty"`
	Grid  string `yaml:"grid"`
}

// Board parses the opening's grid.
func (o Opening) Board() (board.Board, error) {
	return board.Parse(o.Grid)
}

type catalog struct {
	Openings []Opening `yaml:"openings"`
}

var (
	loadOnce sync.Once
	loadErr  error
	byName   map[string]Opening
	names    []string
)

func load() {
	var cat catalog
	if loadErr = yaml.Unmarshal(catalogYAML, &cat); loadErr != nil {
		loadErr = fmt.Errorf("bad embedded openings catalog: %w", loadErr)
		return
	}
	byName = make(map[string]Opening, len(cat.Openings))
	for _, o := range cat.Openings {
		// fail loudly at first use if a grid in the catalog is invalid
		if _, err := o.Board(); err != nil {
			loadErr = fmt.Errorf("opening %q: %w", o.Name, err)
			return
		}
		byName[o.Name] = o
		names = append(names, o.Name)
	}
	sort.Strings(names)
}

// Get looks an opening up by name.
func Get(name string) (Opening, error) {
	loadOnce.Do(load)
	if loadErr != nil {
		return Opening{}, loadErr
	}
	o, ok := byName[name]
	if !ok {
		return Opening{}, fmt.Errorf("no opening named %q", name)
	}
	return o, nil
}

// Names lists catalog entries in sorted order.
func Names() ([]string, error) {
	loadOnce.Do(load)
	return names, loadErr
}
