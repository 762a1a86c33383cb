// Package units provides the pure unit and coordinate conversions used when
// emitting navigation target formats.
package units

import (
	"fmt"
	"math"
)

// DegMin converts a decimal-degrees coordinate to DD:MM.FFF form with a
// hemisphere suffix, for example 52.5 latitude renders as "52:30.000N".
// Positive values are east or north; everything else west or south.
func DegMin(value float64, longitude bool) string {
	abs := math.Abs(value)
	deg := int(abs)
	min := (abs - float64(deg)) * 60

	return fmt.Sprintf("%d:%06.3f%s", deg, min, hemisphere(value, longitude))
}

// DegMinSec converts a decimal-degrees coordinate to DD:MM:SS form with a
// hemisphere suffix. Longitude degrees are zero-padded to three digits,
// latitude to two.
func DegMinSec(value float64, longitude bool) string {
	abs := math.Abs(value)
	deg := int(abs)
	min := int((abs - float64(deg)) * 60)
	sec := int(((abs-float64(deg))*60 - float64(min)) * 60)

	degWidth := 2
	if longitude {
		degWidth = 3
	}
	return fmt.Sprintf("%0*d:%02d:%02d%s", degWidth, deg, min, sec, hemisphere(value, longitude))
}

// KmhToMs converts a speed from km/h to m/s, rounding to the nearest
// whole unit.
func KmhToMs(value uint) uint {
	return uint(float64(value)*10/36 + 0.5)
}

// DegToRad converts an angle from degrees to radians.
func DegToRad(angle float64) float64 {
	return angle * math.Pi / 180
}

// RadToDeg converts an angle from radians to degrees.
func RadToDeg(angle float64) float64 {
	return angle * 180 / math.Pi
}

func hemisphere(value float64, longitude bool) string {
	if longitude {
		if value > 0 {
			return "E"
		}
		return "W"
	}
	if value > 0 {
		return "N"
	}
	return "S"
}
