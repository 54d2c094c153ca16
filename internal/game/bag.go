// internal/game/bag.go
//
// Seven-bag randomizer: an unbiased infinite kind sequence where each refill
// batch is a full shuffled permutation of all seven kinds, bounding how far
// apart repeats of the same kind can be.

package game

import "math/rand"

var bagKinds = [7]Kind{KindI, KindO, KindT, KindS, KindZ, KindJ, KindL}

type sevenBag struct {
	queue []Kind
	rng   *rand.Rand
}

func newSevenBag(rng *rand.Rand) *sevenBag {
	b := &sevenBag{rng: rng}
	b.refill()
	return b
}

// refill appends one full shuffled permutation of the seven kinds.
func (b *sevenBag) refill() {
	bag := bagKinds
	b.rng.Shuffle(len(bag), func(i, j int) {
		bag[i], bag[j] = bag[j], bag[i]
	})
	b.queue = append(b.queue, bag[:]...)
}

// next pops the front of the queue, refilling before it would run short of
// a full lookahead window.
func (b *sevenBag) next() Kind {
	if len(b.queue) < 7 {
		b.refill()
	}
	k := b.queue[0]
	b.queue = b.queue[1:]
	return k
}
