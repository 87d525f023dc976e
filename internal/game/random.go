package game

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"
)

// Random is the source of every roll the core makes.
type Random interface {
	// Random2 returns a value in [0, n). n <= 1 yields 0.
	Random2(n int) int
	OneChanceIn(n int) bool
	// Random2Avg averages rolls draws to bias towards max/2.
	Random2Avg(max, rolls int) int
}

type pcgRandom struct {
	rng *rand.Rand
}

func NewRandom(seed int64) Random {
	return &pcgRandom{rng: seededRNG(seed)}
}

func seededRNG(seed int64) *rand.Rand {
	// Non-cryptographic PRNG is intentional for deterministic simulation behavior.
	// #nosec G404
	return rand.New(rand.NewPCG(seedWord(seed, "a"), seedWord(seed, "b")))
}

func seedWord(seed int64, salt string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(fmt.Sprintf("%d:%s", seed, salt)))
	return h.Sum64()
}

func (r *pcgRandom) Random2(n int) int {
	if n <= 1 {
		return 0
	}
	return r.rng.IntN(n)
}

func (r *pcgRandom) OneChanceIn(n int) bool {
	if n <= 1 {
		return true
	}
	return r.rng.IntN(n) == 0
}

func (r *pcgRandom) Random2Avg(max, rolls int) int {
	if rolls <= 0 {
		rolls = 1
	}
	sum := r.Random2(max)
	for i := 1; i < rolls; i++ {
		sum += r.Random2(max + 1)
	}
	return sum / rolls
}

func coinflip(rng Random) bool {
	return rng.Random2(2) == 0
}

func xChanceInY(rng Random, x, y int) bool {
	if x <= 0 {
		return false
	}
	if x >= y {
		return true
	}
	return rng.Random2(y) < x
}

// divRandRound divides and rounds the remainder up with matching probability.
func divRandRound(num, den int, rng Random) int {
	if den <= 0 {
		return num
	}
	out := num / den
	if rem := num % den; rem > 0 && rng.Random2(den) < rem {
		out++
	}
	return out
}

// stepdown halves the excess above each step from first to last, then caps.
// A negative ceiling means no cap.
func stepdown(value, stepping, first, last, ceiling int) int {
	if value <= first {
		return value
	}
	for step := first; step <= last; step += stepping {
		if value <= step {
			break
		}
		value -= (value - step) / 2
	}
	if ceiling >= 0 && value > ceiling {
		return ceiling
	}
	return value
}
