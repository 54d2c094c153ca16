package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Every window of 7 draws aligned to a refill boundary must contain each of
// the 7 kinds exactly once.
func TestSevenBagWindows(t *testing.T) {
	bag := newSevenBag(rand.New(rand.NewSource(1)))
	for window := 0; window < 5; window++ {
		seen := map[Kind]int{}
		for i := 0; i < 7; i++ {
			seen[bag.next()]++
		}
		assert.Len(t, seen, 7, "window %d", window)
		for k, n := range seen {
			assert.Equal(t, 1, n, "window %d kind %v", window, k)
		}
	}
}

func TestSevenBagDeterministicWithSeed(t *testing.T) {
	a := newSevenBag(rand.New(rand.NewSource(7)))
	b := newSevenBag(rand.New(rand.NewSource(7)))
	for i := 0; i < 30; i++ {
		assert.Equal(t, a.next(), b.next(), "draw %d", i)
	}
}
