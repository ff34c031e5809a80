package generator

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"focusgen/core/profile"
)

// NewRowRand returns the random source for one row. Rows are seeded
// independently so the dataset does not depend on generation order.
func NewRowRand(seed uint64, rowIndex int) *rand.Rand {
	return rand.New(rand.NewPCG(seed, uint64(rowIndex)))
}

// randReader adapts a row's random source to io.Reader for uuid
type randReader struct {
	rng *rand.Rand
}

func (r randReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = byte(r.rng.Uint32())
	}
	return len(p), nil
}

// NewUUID returns a v4 UUID drawn from rng
func NewUUID(rng *rand.Rand) uuid.UUID {
	id, err := uuid.NewRandomFromReader(randReader{rng: rng})
	if err != nil {
		// randReader never fails
		panic(err)
	}
	return id
}

// hexID returns n lowercase hex characters. n must be at most 12, the
// random prefix of a v4 UUID before the version nibble.
func hexID(rng *rand.Rand, n int) string {
	return strings.ReplaceAll(NewUUID(rng).String(), "-", "")[:n]
}

// digits returns a random n-digit number without a leading zero
func digits(rng *rand.Rand, n int) string {
	var b strings.Builder
	b.WriteByte(byte('1' + rng.IntN(9)))
	for i := 1; i < n; i++ {
		b.WriteByte(byte('0' + rng.IntN(10)))
	}
	return b.String()
}

// intBetween returns an int in [lo, hi]
func intBetween(rng *rand.Rand, lo, hi int) int {
	return lo + rng.IntN(hi-lo+1)
}

func pick(rng *rand.Rand, values []string) string {
	return values[rng.IntN(len(values))]
}

func chance(rng *rand.Rand, p float64) bool {
	return rng.Float64() < p
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// uniformDecimal draws from [lo, hi) rounded to places
func uniformDecimal(rng *rand.Rand, lo, hi float64, places int32) decimal.Decimal {
	return decimal.NewFromFloat(uniform(rng, lo, hi)).Round(places)
}

// scale multiplies d by a factor drawn from [lo, hi) and rounds
func scale(rng *rand.Rand, d decimal.Decimal, lo, hi float64, places int32) decimal.Decimal {
	return d.Mul(decimal.NewFromFloat(uniform(rng, lo, hi))).Round(places)
}

// weighted draws a category from a weight table
func weighted(rng *rand.Rand, weights []profile.Weight) string {
	var total float64
	for _, w := range weights {
		total += w.Weight
	}
	x := rng.Float64() * total
	for _, w := range weights {
		if x < w.Weight {
			return w.Category
		}
		x -= w.Weight
	}
	return weights[len(weights)-1].Category
}

// suffix returns the last n characters of s
func suffix(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}

// numbered returns prefix followed by a number in [lo, hi]
func numbered(prefix string, rng *rand.Rand, lo, hi int) string {
	return fmt.Sprintf("%s %d", prefix, intBetween(rng, lo, hi))
}
