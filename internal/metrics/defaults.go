package metrics

import (
	"github.com/san-kum/pocketdim/internal/sim"
)

// Defaults returns a fresh set of every metric.
func Defaults() []sim.Metric {
	return []sim.Metric{
		NewPeakPopulation(),
		NewMeanPopulation(),
		NewGrowth(),
		NewBoundingVolume(),
	}
}
