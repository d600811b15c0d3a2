package hierarchy

import (
	"math"
	"sort"
)

// heightBucket rounds a height to the nearest multiple of 2 pixels,
// rounding ties half-to-even: a 13px region buckets to 12, a 15px
// region to 16.
func heightBucket(height float64) float64 {
	return math.RoundToEven(height/2) * 2
}

// refineByHeight enforces document-wide level consistency on candidates
// still at the size-fallback default.
//
// Every candidate's height is bucketed to the nearest multiple of 2; the
// distinct buckets, sorted tallest first, form a ladder of at most three
// rungs mapped to H1, H2 and H3. Candidates currently at H3 are
// re-leveled through the ladder; candidates at H1 or H2, whether from a
// pattern match or the size fallback, are left untouched. The pass runs
// once and is idempotent on its own output.
func refineByHeight(candidates []HeadingCandidate) {
	if len(candidates) == 0 {
		return
	}

	buckets := make(map[float64]bool)
	for _, c := range candidates {
		buckets[heightBucket(c.Height)] = true
	}

	keys := make([]float64, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(keys)))

	ladder := make(map[float64]Level, 3)
	rungs := []Level{Level1, Level2, Level3}
	for i, key := range keys {
		if i >= len(rungs) {
			break
		}
		ladder[key] = rungs[i]
	}

	for i := range candidates {
		if candidates[i].Level != Level3 {
			continue
		}
		if level, ok := ladder[heightBucket(candidates[i].Height)]; ok {
			candidates[i].Level = level
		}
	}
}
