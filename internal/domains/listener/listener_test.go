package listener_test

import (
	"math/rand/v2"
	"testing"

	"airwave/internal/domains/listener"

	"github.com/stretchr/testify/assert"
)

func newRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func TestPerturb_StaysWithinBoundsAndStep(t *testing.T) {
	bounds := listener.Bounds{Min: 5, Max: 50, MaxStep: 3}
	rnd := newRand()

	count := 20
	for range 1000 {
		next := listener.Perturb(count, bounds, rnd)

		assert.GreaterOrEqual(t, next, bounds.Min)
		assert.LessOrEqual(t, next, bounds.Max)
		assert.LessOrEqual(t, abs(next-count), bounds.MaxStep)

		count = next
	}
}

func TestPerturb_ClampsAtTheEdges(t *testing.T) {
	bounds := listener.Bounds{Min: 10, Max: 12, MaxStep: 100}
	rnd := newRand()

	for range 200 {
		next := listener.Perturb(11, bounds, rnd)

		assert.GreaterOrEqual(t, next, 10)
		assert.LessOrEqual(t, next, 12)
	}
}

func TestPerturb_ReseedsOutOfRange(t *testing.T) {
	bounds := listener.Bounds{Min: 100, Max: 200, MaxStep: 5}
	rnd := newRand()

	for _, current := range []int{-1, 0, 99, 201, 10_000} {
		next := listener.Perturb(current, bounds, rnd)

		assert.GreaterOrEqual(t, next, bounds.Min, "from %d", current)
		assert.LessOrEqual(t, next, bounds.Max, "from %d", current)
	}
}

func TestPerturb_ZeroStepHolds(t *testing.T) {
	assert.Equal(t, 42, listener.Perturb(42, listener.Bounds{Min: 0, Max: 100}, newRand()))
}

func TestPerturb_SwappedBounds(t *testing.T) {
	next := listener.Perturb(0, listener.Bounds{Min: 20, Max: 10, MaxStep: 1}, newRand())

	assert.GreaterOrEqual(t, next, 10)
	assert.LessOrEqual(t, next, 20)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
