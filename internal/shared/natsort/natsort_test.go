package natsort

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompare_DigitRunsAreNumeric(t *testing.T) {
	assert.Negative(t, Compare("A2", "A10"))
	assert.Negative(t, Compare("Row 2", "Row 10"))
	assert.Negative(t, Compare("B9", "B11"))
	assert.Positive(t, Compare("A10", "A2"))
}

func TestCompare_TextRunsAreCaseInsensitive(t *testing.T) {
	assert.Zero(t, Compare("a1", "A1"))
	assert.Negative(t, Compare("Balcony", "orchestra"))
	assert.Positive(t, Compare("VIP", "balcony"))
}

func TestCompare_PrefixSortsFirst(t *testing.T) {
	assert.Negative(t, Compare("A", "A1"))
	assert.Negative(t, Compare("Row", "Row 2"))
	assert.Zero(t, Compare("A1", "A1"))
}

func TestCompare_MixedRunKinds(t *testing.T) {
	// Leading digit runs compare numerically before any text is looked at,
	// so "2A" comes before "10" despite the lexicographic order.
	assert.Negative(t, Compare("2A", "10"))
	assert.Negative(t, Compare("1", "A"))
}

func TestCompare_LeadingZeros(t *testing.T) {
	assert.Zero(t, Compare("A01", "A1"))
	assert.Negative(t, Compare("A07", "A10"))
}

func TestStrings_Order(t *testing.T) {
	labels := []string{"A10", "A2", "B1", "A1", "Row 10", "Row 2", "a3"}
	Strings(labels)
	assert.Equal(t, []string{"A1", "A2", "a3", "A10", "B1", "Row 2", "Row 10"}, labels)
}

func TestStrings_StableUnderPermutation(t *testing.T) {
	base := []string{"A1", "A2", "A10", "B1", "B2", "B10", "Row 1", "Row 2", "Row 10", "VIP 1", "VIP 2"}

	sorted := append([]string(nil), base...)
	Strings(sorted)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 25; i++ {
		shuffled := append([]string(nil), base...)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})
		Strings(shuffled)
		require.Equal(t, sorted, shuffled)
	}
}

func TestCompare_Transitive(t *testing.T) {
	labels := []string{"", "1", "01", "2", "10", "A", "A1", "A01", "A2", "A10", "a10", "B", "Row 2", "Row 10", "2A", "10B"}

	for _, a := range labels {
		for _, b := range labels {
			for _, c := range labels {
				if Compare(a, b) <= 0 && Compare(b, c) <= 0 {
					assert.LessOrEqual(t, Compare(a, c), 0,
						"expected %q <= %q given %q <= %q <= %q", a, c, a, b, c)
				}
			}
		}
	}
}
