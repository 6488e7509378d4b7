package gamedata

import (
	"errors"
	"fmt"
)

// ShipDef is one entry of the fleet catalog.
type ShipDef struct {
	Name string `json:"name"` // Display name (e.g., "Aircraft Carrier")
	Size int    `json:"size"` // Number of cells the vessel covers
}

// FleetFile represents the structure of fleet.json.
type FleetFile struct {
	Ships []ShipDef `json:"ships"`
}

// Catalog is the ordered list of vessels every player must place.
type Catalog struct {
	ships []ShipDef
}

// NewCatalog creates a catalog from ship definitions, rejecting blank names,
// duplicate names and non-positive sizes.
func NewCatalog(ships []ShipDef) (*Catalog, error) {
	if len(ships) == 0 {
		return nil, errors.New("fleet catalog is empty")
	}
	seen := make(map[string]bool, len(ships))
	for _, s := range ships {
		if s.Name == "" {
			return nil, errors.New("fleet catalog has a ship without a name")
		}
		if s.Size < 1 {
			return nil, fmt.Errorf("ship %q has invalid size %d", s.Name, s.Size)
		}
		if seen[s.Name] {
			return nil, fmt.Errorf("ship %q is listed twice", s.Name)
		}
		seen[s.Name] = true
	}

	owned := make([]ShipDef, len(ships))
	copy(owned, ships)
	return &Catalog{ships: owned}, nil
}

// LoadCatalog loads the standard fleet from the embedded fleet.json.
func LoadCatalog() (*Catalog, error) {
	file, err := decode[FleetFile]("fleet.json")
	if err != nil {
		return nil, err
	}
	return NewCatalog(file.Ships)
}

// MustLoadCatalog loads the standard fleet, panicking on error.
func MustLoadCatalog() *Catalog {
	catalog, err := LoadCatalog()
	if err != nil {
		panic(err)
	}
	return catalog
}

// All returns the ship definitions in placement order.
func (c *Catalog) All() []ShipDef {
	return c.ships
}

// At returns the ship at position i in placement order.
func (c *Catalog) At(i int) (ShipDef, bool) {
	if i < 0 || i >= len(c.ships) {
		return ShipDef{}, false
	}
	return c.ships[i], true
}

// GetByName returns the ship definition with the given name, or nil if not found.
func (c *Catalog) GetByName(name string) *ShipDef {
	for i := range c.ships {
		if c.ships[i].Name == name {
			return &c.ships[i]
		}
	}
	return nil
}

// Count returns the number of ships in the catalog.
func (c *Catalog) Count() int {
	return len(c.ships)
}

// TotalSize returns the number of cells the whole fleet covers.
func (c *Catalog) TotalSize() int {
	total := 0
	for _, s := range c.ships {
		total += s.Size
	}
	return total
}
