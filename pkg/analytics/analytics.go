package analytics

import (
	"context"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/ChicagoDave/sunlight/pkg/geo"
	"github.com/ChicagoDave/sunlight/pkg/neighborhood"
	"github.com/ChicagoDave/sunlight/pkg/row"
	"github.com/ChicagoDave/sunlight/pkg/validation"
)

// Options controls an exposure run.
type Options struct {
	// Workers bounds the number of apartments resolved concurrently.
	// Zero means runtime.NumCPU().
	Workers int
	// MinHours is the exposure below which an apartment is reported as
	// poorly lit. Zero disables the check.
	MinHours float64
}

type job struct {
	building, floor int
	b               *row.Building
	a               *row.Apartment
}

// Resolve computes the sunlight window of every apartment in n, caching
// each window on its apartment, and summarizes the result per building.
// Apartments whose window cannot be computed are recorded in the summary
// and the report rather than stopping the run. The only error returned is
// the context's.
func Resolve(ctx context.Context, n *neighborhood.Neighborhood, opts Options) (*Summary, *validation.Report, error) {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	summary := &Summary{
		Neighborhood:   n.Name,
		DayLengthHours: n.Sky.DayLengthHours,
		Buildings:      make([]BuildingExposure, len(n.Buildings())),
	}
	var jobs []job
	for i, b := range n.Buildings() {
		summary.Buildings[i] = BuildingExposure{
			Name:   b.Name,
			Floors: make([]FloorExposure, b.Floors()),
		}
		for j, a := range b.Apartments() {
			jobs = append(jobs, job{building: i, floor: j, b: b, a: a})
		}
	}
	summary.Apartments = len(jobs)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, jb := range jobs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			summary.Buildings[jb.building].Floors[jb.floor] = expose(n, jb.b, jb.a)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	for i := range summary.Buildings {
		aggregate(&summary.Buildings[i], n.Sky)
	}
	report := validation.NewReport()
	validateExposure(summary, opts, report)
	for _, b := range summary.Buildings {
		for _, f := range b.Floors {
			if f.Err != "" {
				summary.Failed++
			}
		}
	}
	return summary, report, nil
}

func expose(n *neighborhood.Neighborhood, b *row.Building, a *row.Apartment) FloorExposure {
	fe := FloorExposure{Floor: a.Floor}
	left, right, err := n.Covers(b, a)
	if err != nil {
		fe.Err = err.Error()
		return fe
	}
	w, err := n.ComputeSunlightWindow(b, a)
	if err != nil {
		fe.Err = err.Error()
		return fe
	}
	fe.Start = w.Start.String()
	fe.Stop = w.Stop.String()
	fe.Hours = w.Hours()
	fe.LeftCoverDeg = geo.Degrees(left)
	fe.RightCoverDeg = geo.Degrees(right)
	return fe
}

func aggregate(be *BuildingExposure, sky neighborhood.Sky) {
	full := row.Window{Start: sky.Sunrise, Stop: sky.Sunset}.Hours()
	be.FirstFullFloor = -1
	be.MinHours = math.Inf(1)
	be.MaxHours = 0
	total, counted := 0.0, 0
	for _, f := range be.Floors {
		if f.Err != "" {
			continue
		}
		counted++
		total += f.Hours
		be.MinHours = min(be.MinHours, f.Hours)
		be.MaxHours = max(be.MaxHours, f.Hours)
		if be.FirstFullFloor < 0 && f.Hours >= full {
			be.FirstFullFloor = f.Floor
		}
	}
	if counted == 0 {
		be.MinHours = 0
		return
	}
	be.MeanHours = total / float64(counted)
}
