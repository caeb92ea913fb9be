package diversity

import (
	"container/heap"
	"math"
	"sort"

	"github.com/abelbrown/foryou/internal/feed"
)

// Adjuster turns scored candidates into the final ranked feed.
//
// An author's k-th emitted candidate (0-indexed) is positioned by
// score * Decay^k: the first post pays no penalty, the second sinks below
// comparable posts from other authors, the third sinks further. Candidates
// are demoted, never removed.
type Adjuster struct {
	// Decay is the per-repeat multiplier in (0,1). 0.7 means an author's
	// second post competes at 70% of its score, the third at 49%.
	Decay float64

	// Bonus is the video-duration bonus curve, applied before ordering.
	Bonus VideoBonus
}

// NewAdjuster creates an adjuster with the illustrative defaults.
func NewAdjuster() *Adjuster {
	return &Adjuster{
		Decay: 0.7,
		Bonus: DefaultVideoBonus(),
	}
}

// Rank returns the candidates in final feed order with Score set to the
// effective (post-demotion) score and Rank set to the 1-based position.
// The input slice is not mutated. An empty input yields an empty output.
func (a *Adjuster) Rank(candidates []feed.Candidate) []feed.Candidate {
	if len(candidates) == 0 {
		return nil
	}

	adjusted := make([]feed.Candidate, len(candidates))
	copy(adjusted, candidates)
	for i := range adjusted {
		adjusted[i].Score += a.Bonus.For(&adjusted[i])
	}

	// Initial order: adjusted score descending, ties newest first then by
	// ID. The walk below only ever demotes relative to this order.
	sort.SliceStable(adjusted, func(i, j int) bool {
		if adjusted[i].Score != adjusted[j].Score {
			return adjusted[i].Score > adjusted[j].Score
		}
		if !adjusted[i].CreatedAt.Equal(adjusted[j].CreatedAt) {
			return adjusted[i].CreatedAt.After(adjusted[j].CreatedAt)
		}
		return adjusted[i].ID < adjusted[j].ID
	})

	decay := a.Decay
	if decay <= 0 || decay >= 1 {
		decay = 1 // demotion disabled
	}

	q := make(demotionQueue, 0, len(adjusted))
	for i := range adjusted {
		q = append(q, &entry{
			cand:      &adjusted[i],
			effective: adjusted[i].Score,
			atCount:   0,
		})
	}
	heap.Init(&q)

	// Author counts accumulate as candidates are emitted. An entry pushed
	// with an outdated count is recomputed lazily and re-pushed instead of
	// emitted.
	emitted := make(map[string]int, len(adjusted))
	out := make([]feed.Candidate, 0, len(adjusted))

	for q.Len() > 0 {
		e := heap.Pop(&q).(*entry)

		k := emitted[e.cand.AuthorID]
		if e.atCount != k {
			e.atCount = k
			e.effective = effectiveScore(e.cand.Score, decay, k)
			heap.Push(&q, e)
			continue
		}

		c := *e.cand
		c.Score = e.effective
		c.Rank = len(out) + 1
		out = append(out, c)
		emitted[e.cand.AuthorID] = k + 1
	}

	return out
}

// effectiveScore applies the escalating demotion. Demotion may only lower a
// score: negative scores pass through unchanged, since multiplying them by
// the decay factor would raise them and let a repeat author jump the queue.
// Non-increasing recomputation is also what keeps the lazy heap walk sound.
func effectiveScore(score, decay float64, k int) float64 {
	if k == 0 || score < 0 {
		return score
	}
	return score * math.Pow(decay, float64(k))
}
