// Package catalog provides the weapon and city preset tables and burst-type
// resolution. Presets are plain configuration data: the effects engine only
// ever sees the numeric parameters they resolve to, never a weapon or city
// name.
package catalog

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/larseberhart/nuccalc/internal/effects"
)

//go:embed data/weapons.json data/cities.json
var defaults embed.FS

// Weapon is one preset from the weapons catalog.
type Weapon struct {
	Name          string  `json:"name"`
	Type          string  `json:"type"`
	YieldMegatons float64 `json:"yield_mt"`
	Airburst      bool    `json:"airburst"`
	TypicalHeight float64 `json:"typical_height_m"`
}

// City is one target preset from the cities catalog.
type City struct {
	Name               string  `json:"name"`
	Country            string  `json:"country"`
	PopulationMillions float64 `json:"population_m"`
	AreaKm2            float64 `json:"area_km2"`
	CoreDensity        float64 `json:"core_density"`
	RadiusKm           float64 `json:"radius_km"`
	SuburbanDensity    float64 `json:"suburban_density"`
}

// Population converts the city preset into the effects engine's population
// model.
func (c City) Population() effects.Population {
	return effects.Population{
		CoreDensity:     c.CoreDensity,
		SuburbanDensity: c.SuburbanDensity,
		CoreRadius:      c.RadiusKm,
	}
}

// Catalog holds the loaded weapon and city presets.
type Catalog struct {
	weapons []Weapon
	cities  []City
}

// Load builds a Catalog from the given JSON files. An empty path falls back
// to the embedded defaults for that table.
func Load(weaponsPath, citiesPath string) (*Catalog, error) {
	var c Catalog
	if err := loadTable(weaponsPath, "data/weapons.json", &c.weapons); err != nil {
		return nil, fmt.Errorf("load weapons catalog: %w", err)
	}
	if err := loadTable(citiesPath, "data/cities.json", &c.cities); err != nil {
		return nil, fmt.Errorf("load cities catalog: %w", err)
	}
	if len(c.weapons) == 0 {
		return nil, fmt.Errorf("weapons catalog is empty")
	}
	if len(c.cities) == 0 {
		return nil, fmt.Errorf("cities catalog is empty")
	}
	return &c, nil
}

func loadTable(path, embedded string, out any) error {
	var (
		data []byte
		err  error
	)
	if path != "" {
		data, err = os.ReadFile(path)
	} else {
		data, err = defaults.ReadFile(embedded)
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}

// Weapons returns all weapon presets in catalog order.
func (c *Catalog) Weapons() []Weapon { return c.weapons }

// Cities returns all city presets in catalog order.
func (c *Catalog) Cities() []City { return c.cities }

// Weapon looks up a preset by name, case-insensitively.
func (c *Catalog) Weapon(name string) (Weapon, bool) {
	for _, w := range c.weapons {
		if strings.EqualFold(w.Name, name) {
			return w, true
		}
	}
	return Weapon{}, false
}

// City looks up a target city by name, case-insensitively.
func (c *Catalog) City(name string) (City, bool) {
	for _, city := range c.cities {
		if strings.EqualFold(city.Name, name) {
			return city, true
		}
	}
	return City{}, false
}
