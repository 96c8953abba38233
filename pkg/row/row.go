// Package row models the buildings of a neighborhood row and the apartments
// they contain.
package row

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"cloudeng.io/datetime"
)

// ErrApartmentNotFound is returned when a floor index is outside a building.
var ErrApartmentNotFound = errors.New("apartment not found")

// Window is the daily span of direct sunlight on an apartment.
type Window struct {
	Start datetime.TimeOfDay
	Stop  datetime.TimeOfDay
}

// Duration returns the length of the window. An empty or inverted window
// has zero length.
func (w Window) Duration() time.Duration {
	return max(w.Stop.Duration()-w.Start.Duration(), 0)
}

// Hours returns the length of the window in hours.
func (w Window) Hours() float64 {
	return w.Duration().Hours()
}

func (w Window) String() string {
	return fmt.Sprintf("%s - %s", w.Start, w.Stop)
}

// Apartment is a single floor of a building. The floor index is fixed at
// construction; the sunlight window is written at most once.
type Apartment struct {
	Floor int

	mu       sync.Mutex
	resolved bool   // GUARDED_BY(mu)
	window   Window // GUARDED_BY(mu)
}

// Window returns the cached sunlight window and whether it has been resolved.
func (a *Apartment) Window() (Window, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.window, a.resolved
}

// Resolved reports whether the sunlight window has been computed.
func (a *Apartment) Resolved() bool {
	_, ok := a.Window()
	return ok
}

// Resolve returns the cached window, calling compute to produce it if the
// apartment is unresolved. Concurrent callers for the same apartment block
// until the first finishes, so compute runs at most once per successful
// resolution. A failed compute leaves the apartment unresolved.
func (a *Apartment) Resolve(compute func() (Window, error)) (Window, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.resolved {
		return a.window, nil
	}
	w, err := compute()
	if err != nil {
		return Window{}, err
	}
	a.window, a.resolved = w, true
	return w, nil
}

// Building is one entry in a neighborhood row.
type Building struct {
	Name           string
	ApartmentCount int
	// Distance is the gap to the previous building in the row, in meters.
	Distance float64

	apartments []*Apartment
}

// NewBuilding creates a building and its apartments, one per floor, indexed
// from 0 (ground floor) to apartmentCount-1.
func NewBuilding(name string, apartmentCount int, distance float64) *Building {
	b := &Building{
		Name:           name,
		ApartmentCount: apartmentCount,
		Distance:       distance,
	}
	if apartmentCount > 0 {
		b.apartments = make([]*Apartment, apartmentCount)
		for i := range b.apartments {
			b.apartments[i] = &Apartment{Floor: i}
		}
	}
	return b
}

// Floors returns the number of floors, which is the apartment count.
func (b *Building) Floors() int {
	return len(b.apartments)
}

// Height returns the roof height for the given floor height.
func (b *Building) Height(apartmentHeight float64) float64 {
	return float64(b.Floors()) * apartmentHeight
}

// Apartments returns the building's apartments ordered by floor.
// The slice must not be modified.
func (b *Building) Apartments() []*Apartment {
	return b.apartments
}

// FindApartment returns the apartment on the given floor.
func (b *Building) FindApartment(floor int) (*Apartment, error) {
	if floor < 0 || floor >= len(b.apartments) {
		return nil, fmt.Errorf("%s floor %d: %w", b.Name, floor, ErrApartmentNotFound)
	}
	return b.apartments[floor], nil
}

// Owns reports whether a is one of b's apartments.
func (b *Building) Owns(a *Apartment) bool {
	if a == nil || a.Floor < 0 || a.Floor >= len(b.apartments) {
		return false
	}
	return b.apartments[a.Floor] == a
}
