package geo

import (
	"errors"
	"math"
	"time"
)

// ErrInvalidGeometry is returned when two buildings have no horizontal gap
// between them, so no shadow angle can be defined.
var ErrInvalidGeometry = errors.New("invalid geometry")

// Degrees converts an angle in radians to degrees.
func Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// Radians converts an angle in degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// AngleToNeighbor returns the elevation angle, in radians, from an apartment
// on the given floor to the roof of a neighboring building with
// neighborFloors floors, distance meters away along the row.
//
// Floors are apartmentHeight meters tall and floor 0 sits at ground level.
// The result is negative when the neighbor's roof is below the apartment.
func AngleToNeighbor(floor int, apartmentHeight float64, neighborFloors int, distance float64) (float64, error) {
	if distance <= 0 || math.IsNaN(distance) {
		return 0, ErrInvalidGeometry
	}
	apartmentLevel := apartmentHeight * float64(floor)
	roofLevel := float64(neighborFloors) * apartmentHeight
	return math.Atan((roofLevel - apartmentLevel) / distance), nil
}

// AngleToDelay converts a cover angle in radians into the number of hours
// the sun spends behind it over a day of dayLengthHours. A 180° sweep of the
// sky corresponds to the full day length.
func AngleToDelay(angle, dayLengthHours float64) float64 {
	return Degrees(angle) * dayLengthHours / 180
}

// DelayDuration converts fractional hours into a duration rounded to the
// second.
func DelayDuration(hours float64) time.Duration {
	return time.Duration(hours * float64(time.Hour)).Round(time.Second)
}
