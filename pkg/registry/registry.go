// Package registry manages the neighborhoods known to a process and answers
// sunlight queries against them.
package registry

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"cloudeng.io/logging/ctxlog"

	"github.com/ChicagoDave/sunlight/pkg/neighborhood"
	"github.com/ChicagoDave/sunlight/pkg/row"
	"github.com/ChicagoDave/sunlight/pkg/spec"
	"github.com/ChicagoDave/sunlight/pkg/validation"
)

// ErrNeighborhoodNotFound is returned when a query names an unknown
// neighborhood.
var ErrNeighborhoodNotFound = errors.New("neighborhood not found")

// City is a collection of neighborhoods. It is safe for concurrent use.
type City struct {
	sky neighborhood.Sky

	mu            sync.RWMutex
	neighborhoods []*neighborhood.Neighborhood // GUARDED_BY(mu)
	index         map[string]int               // GUARDED_BY(mu)
}

// New creates an empty city whose neighborhoods are evaluated against sky.
func New(sky neighborhood.Sky) *City {
	return &City{
		sky:   sky,
		index: map[string]int{},
	}
}

// Build constructs the neighborhood graph for a single description. The
// description is assumed to be valid.
func Build(desc spec.Neighborhood, sky neighborhood.Sky) *neighborhood.Neighborhood {
	buildings := make([]*row.Building, len(desc.Buildings))
	for i, b := range desc.Buildings {
		buildings[i] = row.NewBuilding(b.Name, b.ApartmentCount, b.Distance)
	}
	return neighborhood.New(desc.Name, desc.ApartmentHeight, buildings, sky)
}

// Add validates and adds neighborhoods to the city. Nothing is added unless
// every description is valid. A neighborhood whose name is already present
// replaces the existing one in place, discarding its resolved windows.
func (c *City) Add(ctx context.Context, descs ...spec.Neighborhood) error {
	report := validation.ValidateSchema(descs)
	if err := report.Err(); err != nil {
		return fmt.Errorf("invalid city data: %w", err)
	}
	logger := ctxlog.Logger(ctx)
	for _, w := range report.Warnings {
		logger.Warn("city data", "path", w.Path, "message", w.Message)
	}

	built := make([]*neighborhood.Neighborhood, len(descs))
	for i, d := range descs {
		built[i] = Build(d, c.sky)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for _, n := range built {
		if i, ok := c.index[n.Name]; ok {
			c.neighborhoods[i] = n
			logger.Info("replaced neighborhood", "neighborhood", n.Name, "buildings", len(n.Buildings()))
			continue
		}
		c.index[n.Name] = len(c.neighborhoods)
		c.neighborhoods = append(c.neighborhoods, n)
		logger.Info("added neighborhood", "neighborhood", n.Name, "buildings", len(n.Buildings()))
	}
	return nil
}

// Len returns the number of neighborhoods.
func (c *City) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.neighborhoods)
}

// Neighborhoods returns the neighborhoods in the order they were added.
func (c *City) Neighborhoods() []*neighborhood.Neighborhood {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]*neighborhood.Neighborhood, len(c.neighborhoods))
	copy(out, c.neighborhoods)
	return out
}

// Neighborhood returns the neighborhood with the given name.
func (c *City) Neighborhood(name string) (*neighborhood.Neighborhood, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	i, ok := c.index[name]
	if !ok {
		return nil, fmt.Errorf("%s: %w", name, ErrNeighborhoodNotFound)
	}
	return c.neighborhoods[i], nil
}

// Query returns the sunlight window for the apartment on floor of the named
// building. The window is computed on the first query for an apartment and
// served from the apartment thereafter.
func (c *City) Query(ctx context.Context, neighborhoodName, buildingName string, floor int) (row.Window, error) {
	n, err := c.Neighborhood(neighborhoodName)
	if err != nil {
		return row.Window{}, err
	}
	b, err := n.FindBuilding(buildingName)
	if err != nil {
		return row.Window{}, err
	}
	a, err := b.FindApartment(floor)
	if err != nil {
		return row.Window{}, err
	}

	logger := ctxlog.Logger(ctx).With("neighborhood", n.Name, "building", b.Name, "floor", floor)
	if w, ok := a.Window(); ok {
		logger.Debug("sunlight window cached", "window", w.String())
		return w, nil
	}
	w, err := n.ComputeSunlightWindow(b, a)
	if err != nil {
		logger.Warn("sunlight window failed", "error", err)
		return row.Window{}, err
	}
	logger.Debug("sunlight window computed", "window", w.String())
	return w, nil
}

// Dump exports every neighborhood, including the windows of apartments that
// have been resolved.
func (c *City) Dump() []spec.Neighborhood {
	ns := c.Neighborhoods()
	out := make([]spec.Neighborhood, len(ns))
	for i, n := range ns {
		out[i] = Export(n)
	}
	return out
}

// Export converts a neighborhood graph back into its description.
func Export(n *neighborhood.Neighborhood) spec.Neighborhood {
	desc := spec.Neighborhood{
		Name:            n.Name,
		ApartmentHeight: n.ApartmentHeight,
		Buildings:       make([]spec.Building, len(n.Buildings())),
	}
	for i, b := range n.Buildings() {
		apartments := make([]spec.Apartment, b.Floors())
		for j, a := range b.Apartments() {
			apartments[j] = spec.Apartment{Number: a.Floor}
			if w, ok := a.Window(); ok {
				apartments[j].SunlightStart = w.Start.String()
				apartments[j].SunlightStop = w.Stop.String()
			}
		}
		desc.Buildings[i] = spec.Building{
			Name:           b.Name,
			ApartmentCount: b.ApartmentCount,
			Distance:       b.Distance,
			Apartments:     apartments,
		}
	}
	return desc
}
