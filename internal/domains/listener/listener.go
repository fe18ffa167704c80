// Package listener simulates the live audience shown next to each station.
package listener

import (
	"math/rand/v2"

	"airwave/config"
)

// Bounds constrains a simulated listener count.
type Bounds struct {
	Min     int
	Max     int
	MaxStep int
}

func BoundsFromConfig(cfg *config.Config) Bounds {
	return Bounds{
		Min:     cfg.Listener.Min,
		Max:     cfg.Listener.Max,
		MaxStep: cfg.Listener.MaxStep,
	}
}

// Perturb moves current by at most b.MaxStep in either direction and clamps
// the result to [b.Min, b.Max]. A count outside the bounds is reseeded
// uniformly within them.
func Perturb(current int, b Bounds, rnd *rand.Rand) int {
	if b.Max < b.Min {
		b.Min, b.Max = b.Max, b.Min
	}

	if current < b.Min || current > b.Max {
		return b.Min + rnd.IntN(b.Max-b.Min+1)
	}

	if b.MaxStep <= 0 {
		return current
	}

	next := current + rnd.IntN(2*b.MaxStep+1) - b.MaxStep

	return min(max(next, b.Min), b.Max)
}
