// Package neighborhood computes sunlight windows for apartments in a row of
// buildings.
package neighborhood

import (
	"errors"
	"fmt"

	"cloudeng.io/datetime"

	"github.com/ChicagoDave/sunlight/pkg/geo"
	"github.com/ChicagoDave/sunlight/pkg/row"
)

// ErrBuildingNotFound is returned when a building name is not in the row.
var ErrBuildingNotFound = errors.New("building not found")

// Sky holds the fixed astronomical constants a neighborhood is evaluated
// against.
type Sky struct {
	Sunrise datetime.TimeOfDay
	Sunset  datetime.TimeOfDay
	// DayLengthHours is the number of hours the sun takes to sweep 180°.
	DayLengthHours float64
}

// DefaultSky is sunrise 08:14, sunset 17:25.
var DefaultSky = Sky{
	Sunrise:        datetime.NewTimeOfDay(8, 14, 0),
	Sunset:         datetime.NewTimeOfDay(17, 25, 0),
	DayLengthHours: 9.183,
}

// Neighborhood is an ordered row of buildings sharing a floor height.
// The row is read-only after construction.
type Neighborhood struct {
	Name            string
	ApartmentHeight float64
	Sky             Sky

	buildings []*row.Building
	index     map[string]int
}

// New creates a neighborhood. The order of buildings defines the row.
// If a name repeats, lookups resolve to its first occurrence.
func New(name string, apartmentHeight float64, buildings []*row.Building, sky Sky) *Neighborhood {
	n := &Neighborhood{
		Name:            name,
		ApartmentHeight: apartmentHeight,
		Sky:             sky,
		buildings:       buildings,
		index:           make(map[string]int, len(buildings)),
	}
	for i, b := range buildings {
		if _, dup := n.index[b.Name]; !dup {
			n.index[b.Name] = i
		}
	}
	return n
}

// Buildings returns the row in order. The slice must not be modified.
func (n *Neighborhood) Buildings() []*row.Building {
	return n.buildings
}

func (n *Neighborhood) position(name string) (int, error) {
	i, ok := n.index[name]
	if !ok {
		return -1, fmt.Errorf("%s/%s: %w", n.Name, name, ErrBuildingNotFound)
	}
	return i, nil
}

// FindBuilding returns the building with the given name.
func (n *Neighborhood) FindBuilding(name string) (*row.Building, error) {
	i, err := n.position(name)
	if err != nil {
		return nil, err
	}
	return n.buildings[i], nil
}

// DistanceBetween returns the route length along the row between two
// buildings: the gaps of every building after the first one reached, up to
// and including the second. It is symmetric and zero for a building and
// itself.
func (n *Neighborhood) DistanceBetween(a, b string) (float64, error) {
	i, err := n.position(a)
	if err != nil {
		return 0, err
	}
	j, err := n.position(b)
	if err != nil {
		return 0, err
	}
	return n.span(i, j), nil
}

func (n *Neighborhood) span(i, j int) float64 {
	if i > j {
		i, j = j, i
	}
	d := 0.0
	for _, b := range n.buildings[i+1 : j+1] {
		d += b.Distance
	}
	return d
}

// Covers returns the cover angles, in radians, seen from apartment a of
// building b: the steepest non-negative angle to a roof among the buildings
// before b in the row (left) and after it (right).
func (n *Neighborhood) Covers(b *row.Building, a *row.Apartment) (left, right float64, err error) {
	pos, err := n.locate(b, a)
	if err != nil {
		return 0, 0, err
	}
	return n.covers(pos, a)
}

func (n *Neighborhood) locate(b *row.Building, a *row.Apartment) (int, error) {
	if b == nil {
		return -1, fmt.Errorf("%s: %w", n.Name, ErrBuildingNotFound)
	}
	pos, err := n.position(b.Name)
	if err != nil {
		return -1, err
	}
	if n.buildings[pos] != b {
		return -1, fmt.Errorf("%s/%s: %w", n.Name, b.Name, ErrBuildingNotFound)
	}
	if !b.Owns(a) {
		floor := -1
		if a != nil {
			floor = a.Floor
		}
		return -1, fmt.Errorf("%s/%s floor %d: %w", n.Name, b.Name, floor, row.ErrApartmentNotFound)
	}
	return pos, nil
}

func (n *Neighborhood) covers(pos int, a *row.Apartment) (left, right float64, err error) {
	for i, other := range n.buildings {
		if i == pos {
			continue
		}
		angle, aerr := geo.AngleToNeighbor(a.Floor, n.ApartmentHeight, other.Floors(), n.span(pos, i))
		if aerr != nil {
			return 0, 0, fmt.Errorf("%s: %s to %s: %w", n.Name, n.buildings[pos].Name, other.Name, aerr)
		}
		if i < pos {
			left = max(left, angle)
		} else {
			right = max(right, angle)
		}
	}
	return left, right, nil
}

func (n *Neighborhood) window(pos int, a *row.Apartment) (row.Window, error) {
	left, right, err := n.covers(pos, a)
	if err != nil {
		return row.Window{}, err
	}
	sunriseDelay := geo.DelayDuration(geo.AngleToDelay(left, n.Sky.DayLengthHours))
	sunsetDelay := geo.DelayDuration(geo.AngleToDelay(right, n.Sky.DayLengthHours))
	return row.Window{
		Start: n.Sky.Sunrise.Add(sunriseDelay),
		Stop:  n.Sky.Sunset.Add(-sunsetDelay),
	}, nil
}

// ComputeSunlightWindow returns the sunlight window of apartment a in
// building b and caches it on the apartment. Once an apartment is resolved
// the cached window is returned without recomputation.
func (n *Neighborhood) ComputeSunlightWindow(b *row.Building, a *row.Apartment) (row.Window, error) {
	pos, err := n.locate(b, a)
	if err != nil {
		return row.Window{}, err
	}
	return a.Resolve(func() (row.Window, error) {
		return n.window(pos, a)
	})
}

// Resolve looks up the apartment on the given floor of the named building
// and returns its sunlight window, computing it on first use.
func (n *Neighborhood) Resolve(building string, floor int) (row.Window, error) {
	b, err := n.FindBuilding(building)
	if err != nil {
		return row.Window{}, err
	}
	a, err := b.FindApartment(floor)
	if err != nil {
		return row.Window{}, err
	}
	return n.ComputeSunlightWindow(b, a)
}
