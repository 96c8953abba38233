package analytics

import (
	"fmt"

	"github.com/ChicagoDave/sunlight/pkg/validation"
)

// validateExposure reports apartments that could not be resolved and
// apartments that receive less sunlight than opts.MinHours.
func validateExposure(s *Summary, opts Options, report *validation.Report) {
	for i, b := range s.Buildings {
		for _, f := range b.Floors {
			path := fmt.Sprintf("%s.buildings[%d].apartments[%d]", s.Neighborhood, i, f.Floor)
			if f.Err != "" {
				report.AddError(validation.Result{
					Level:       validation.LevelGeometry,
					Message:     fmt.Sprintf("%s floor %d: %s", b.Name, f.Floor, f.Err),
					Path:        path,
					ActualValue: f.Floor,
				})
				continue
			}
			if opts.MinHours > 0 && f.Hours < opts.MinHours {
				res := validation.Result{
					Level:       validation.LevelGeometry,
					Message:     fmt.Sprintf("%s floor %d receives %.2f hours of sunlight", b.Name, f.Floor, f.Hours),
					Path:        path,
					ActualValue: f.Hours,
					Expected:    fmt.Sprintf(">= %.2f hours", opts.MinHours),
				}
				if b.FirstFullFloor >= 0 {
					res.Suggestions = []string{fmt.Sprintf("Floors from %d up are unobstructed", b.FirstFullFloor)}
				}
				report.AddWarning(res)
			}
		}
		if b.FirstFullFloor < 0 {
			report.AddInfo(validation.Result{
				Level:   validation.LevelGeometry,
				Message: fmt.Sprintf("no floor of %s receives the full day", b.Name),
				Path:    fmt.Sprintf("%s.buildings[%d]", s.Neighborhood, i),
			})
		}
	}
}
