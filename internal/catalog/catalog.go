package catalog

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Instrument is a single tradable instrument in the reference catalog.
type Instrument struct {
	ID     int     // Stable 1-based id, assigned in catalog order
	Symbol string  // Uppercase ticker (e.g., "MSFT")
	Name   string  // Company display name
	Price  float64 // Reference price in USD
}

// Catalog is an ordered, immutable set of instruments.
type Catalog struct {
	instruments []Instrument
	bySymbol    map[string]int // symbol -> slice index
}

// ErrEmpty is returned when a catalog contains no instruments.
var ErrEmpty = errors.New("catalog is empty")

// New builds a catalog from instruments in the given order, assigning
// stable 1-based ids positionally. Symbols must be unique and prices
// positive.
func New(instruments []Instrument) (*Catalog, error) {
	if len(instruments) == 0 {
		return nil, ErrEmpty
	}

	c := &Catalog{
		instruments: make([]Instrument, len(instruments)),
		bySymbol:    make(map[string]int, len(instruments)),
	}
	for i, inst := range instruments {
		if inst.Symbol == "" {
			return nil, fmt.Errorf("instrument %d: symbol is required", i+1)
		}
		if inst.Price <= 0 {
			return nil, fmt.Errorf("instrument %s: price must be > 0, got %v", inst.Symbol, inst.Price)
		}
		if _, dup := c.bySymbol[inst.Symbol]; dup {
			return nil, fmt.Errorf("duplicate symbol %s", inst.Symbol)
		}
		inst.ID = i + 1
		c.instruments[i] = inst
		c.bySymbol[inst.Symbol] = i
	}
	return c, nil
}

// fileFormat is the on-disk YAML shape.
type fileFormat struct {
	Instruments []struct {
		Symbol string  `yaml:"symbol"`
		Name   string  `yaml:"name"`
		Price  float64 `yaml:"price"`
	} `yaml:"instruments"`
}

// Load reads a catalog from a YAML file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	var ff fileFormat
	if err := yaml.Unmarshal(data, &ff); err != nil {
		return nil, fmt.Errorf("parse catalog yaml: %w", err)
	}

	instruments := make([]Instrument, len(ff.Instruments))
	for i, e := range ff.Instruments {
		instruments[i] = Instrument{Symbol: e.Symbol, Name: e.Name, Price: e.Price}
	}

	c, err := New(instruments)
	if err != nil {
		return nil, fmt.Errorf("validate catalog %s: %w", path, err)
	}
	return c, nil
}

// Len returns the number of instruments.
func (c *Catalog) Len() int {
	return len(c.instruments)
}

// Instruments returns the instruments in catalog order. The returned slice
// must not be modified.
func (c *Catalog) Instruments() []Instrument {
	return c.instruments
}

// ByID returns the instrument with the given 1-based id.
func (c *Catalog) ByID(id int) (Instrument, bool) {
	if id < 1 || id > len(c.instruments) {
		return Instrument{}, false
	}
	return c.instruments[id-1], true
}

// BySymbol returns the instrument with the given ticker symbol.
func (c *Catalog) BySymbol(symbol string) (Instrument, bool) {
	i, ok := c.bySymbol[symbol]
	if !ok {
		return Instrument{}, false
	}
	return c.instruments[i], true
}

// Symbols returns the ticker symbols in catalog order.
func (c *Catalog) Symbols() []string {
	out := make([]string, len(c.instruments))
	for i, inst := range c.instruments {
		out[i] = inst.Symbol
	}
	return out
}
