package validation

import (
	"fmt"
	"math"

	"github.com/ChicagoDave/sunlight/pkg/spec"
)

// ValidateSchema checks neighborhood descriptions before any graph is built.
// Errors make the descriptions unusable; warnings flag rows that will fail
// some queries.
func ValidateSchema(ns []spec.Neighborhood) *Report {
	r := NewReport()
	if len(ns) == 0 {
		r.AddError(Result{
			Level:    LevelSchema,
			Message:  "no neighborhoods described",
			Path:     "city_data",
			Expected: "at least one neighborhood",
		})
		return r
	}

	seen := map[string]int{}
	for i, n := range ns {
		path := neighborhoodPath(i, n)
		if n.Name != "" {
			if prev, dup := seen[n.Name]; dup {
				r.AddError(Result{
					Level:       LevelSchema,
					Message:     fmt.Sprintf("neighborhood name %q already used by city_data[%d]", n.Name, prev),
					Path:        path + ".name",
					ActualValue: n.Name,
					Expected:    "unique name",
				})
			} else {
				seen[n.Name] = i
			}
		}
		validateNeighborhood(path, n, r)
		validateRow(path, n, r)
	}
	return r
}

func neighborhoodPath(i int, n spec.Neighborhood) string {
	if n.Name == "" {
		return fmt.Sprintf("city_data[%d]", i)
	}
	return n.Name
}

func validateNeighborhood(path string, n spec.Neighborhood, r *Report) {
	if n.Name == "" {
		r.AddError(Result{
			Level:    LevelSchema,
			Message:  "neighborhood name is required",
			Path:     path + ".name",
			Expected: "non-empty string",
		})
	}
	if !(n.ApartmentHeight > 0) || math.IsInf(n.ApartmentHeight, 0) {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "apartments_height must be greater than 0",
			Path:        path + ".apartments_height",
			ActualValue: n.ApartmentHeight,
			Expected:    "> 0",
		})
	}
	if len(n.Buildings) == 0 {
		r.AddError(Result{
			Level:    LevelSchema,
			Message:  "neighborhood has no buildings",
			Path:     path + ".buildings",
			Expected: "at least one building",
		})
	}

	names := map[string]int{}
	for j, b := range n.Buildings {
		bpath := fmt.Sprintf("%s.buildings[%d]", path, j)
		if b.Name == "" {
			r.AddError(Result{
				Level:    LevelSchema,
				Message:  "building name is required",
				Path:     bpath + ".name",
				Expected: "non-empty string",
			})
		} else if prev, dup := names[b.Name]; dup {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("building name %q already used by buildings[%d]", b.Name, prev),
				Path:        bpath + ".name",
				ActualValue: b.Name,
				Expected:    "unique name within the row",
			})
		} else {
			names[b.Name] = j
		}
		if b.ApartmentCount <= 0 {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     "apartments_count must be greater than 0",
				Path:        bpath + ".apartments_count",
				ActualValue: b.ApartmentCount,
				Expected:    "> 0",
			})
		}
		if b.Distance < 0 || math.IsNaN(b.Distance) || math.IsInf(b.Distance, 0) {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     "distance must be a non-negative number of meters",
				Path:        bpath + ".distance",
				ActualValue: b.Distance,
				Expected:    ">= 0",
			})
		}
	}
}

// validateRow flags gaps that make shadow angles undefined.
func validateRow(path string, n spec.Neighborhood, r *Report) {
	for j, b := range n.Buildings {
		bpath := fmt.Sprintf("%s.buildings[%d].distance", path, j)
		if j == 0 {
			if b.Distance != 0 {
				r.AddInfo(Result{
					Level:       LevelGeometry,
					Message:     fmt.Sprintf("first building %q has a gap of %gm that no distance uses", b.Name, b.Distance),
					Path:        bpath,
					ActualValue: b.Distance,
					Expected:    "0",
				})
			}
			continue
		}
		if b.Distance == 0 {
			r.AddWarning(Result{
				Level:       LevelGeometry,
				Message:     fmt.Sprintf("building %q touches %q; sunlight queries across this gap will fail", b.Name, n.Buildings[j-1].Name),
				Path:        bpath,
				ActualValue: b.Distance,
				Expected:    "> 0",
				Suggestions: []string{"Set the gap between the two buildings in meters"},
			})
		}
	}
}
