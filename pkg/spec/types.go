package spec

// CityData is the envelope neighborhoods are submitted in.
type CityData struct {
	Neighborhoods []Neighborhood `yaml:"city_data" json:"city_data"`
}

// Neighborhood describes one row of buildings.
type Neighborhood struct {
	Name            string     `yaml:"name" json:"name"`
	ApartmentHeight float64    `yaml:"apartments_height" json:"apartments_height"`
	Buildings       []Building `yaml:"buildings" json:"buildings"`
}

// Building describes one building in a row. Distance is the gap, in meters,
// to the previous building.
type Building struct {
	Name           string  `yaml:"name" json:"name"`
	ApartmentCount int     `yaml:"apartments_count" json:"apartments_count"`
	Distance       float64 `yaml:"distance" json:"distance"`

	// Apartments is only populated on export.
	Apartments []Apartment `yaml:"apartments,omitempty" json:"apartments,omitempty"`
}

// Apartment is the exported state of one apartment. The sunlight fields are
// empty until the apartment has been resolved.
type Apartment struct {
	Number        int    `yaml:"apartment_number" json:"apartment_number"`
	SunlightStart string `yaml:"sunlight_start,omitempty" json:"sunlight_start,omitempty"`
	SunlightStop  string `yaml:"sunlight_stop,omitempty" json:"sunlight_stop,omitempty"`
}

// BuildingByName returns the building with the given name, or nil if not found.
func (n Neighborhood) BuildingByName(name string) *Building {
	for i := range n.Buildings {
		if n.Buildings[i].Name == name {
			return &n.Buildings[i]
		}
	}
	return nil
}
