// Package diversity produces the final feed order: it applies the
// video-duration bonus, then demotes repeat authors with an escalating
// multiplicative decay so no single author dominates the feed.
package diversity

import (
	"math"

	"github.com/abelbrown/foryou/internal/feed"
)

// VideoBonus is the duration bonus curve. Durations inside
// [MinSeconds, MaxSeconds] earn the full Peak; outside the window the bonus
// decays exponentially toward zero with the given Falloff.
type VideoBonus struct {
	MinSeconds float64
	MaxSeconds float64
	Peak       float64

	// Falloff controls how fast the bonus decays outside the window,
	// in seconds of distance per e-fold.
	Falloff float64
}

// DefaultVideoBonus returns the illustrative curve: full bonus for
// 15-60 second videos.
func DefaultVideoBonus() VideoBonus {
	return VideoBonus{
		MinSeconds: 15,
		MaxSeconds: 60,
		Peak:       0.5,
		Falloff:    45,
	}
}

// For returns the bonus for a candidate. Candidates without video get zero.
func (b VideoBonus) For(c *feed.Candidate) float64 {
	if !c.HasVideo || c.VideoSeconds <= 0 {
		return 0
	}
	return b.At(c.VideoSeconds)
}

// At evaluates the curve at a duration in seconds. The curve is maximal on
// the window and strictly decreasing with distance from it on both sides.
func (b VideoBonus) At(seconds float64) float64 {
	if b.Peak <= 0 {
		return 0
	}

	var distance float64
	switch {
	case seconds < b.MinSeconds:
		distance = b.MinSeconds - seconds
	case seconds > b.MaxSeconds:
		distance = seconds - b.MaxSeconds
	default:
		return b.Peak
	}

	falloff := b.Falloff
	if falloff <= 0 {
		falloff = 1
	}
	return b.Peak * math.Exp(-distance/falloff)
}
