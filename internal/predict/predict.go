// Package predict is the demo stand-in for the external prediction
// collaborator. It fabricates per-action probabilities from a seeded RNG so
// the demo entry points have something to rank; the ranking core never
// imports this package.
package predict

import (
	"math/rand"

	"github.com/abelbrown/foryou/internal/feed"
)

// Generator produces deterministic fake predictions for a given seed.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a generator. The same seed always yields the same
// predictions for the same candidate sequence.
func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Fill populates Predictions on every candidate in place.
//
// In-network posts get a modest engagement boost, video posts get higher
// video-watch probabilities, and negative signals stay near zero — the same
// shape a real engagement predictor would produce for unremarkable content.
func (g *Generator) Fill(candidates []feed.Candidate) {
	for i := range candidates {
		candidates[i].Predictions = g.one(&candidates[i])
	}
}

func (g *Generator) one(c *feed.Candidate) map[feed.Action]float64 {
	base := 0.01 + g.rng.Float64()*0.04

	networkBoost := 1.0
	if c.Origin == feed.OriginInNetwork {
		networkBoost = 1.5
	}

	videoWatch := 0.01
	if c.HasVideo {
		videoWatch = clamp(base*4*1.3 + g.rng.Float64()*0.1)
	}

	followP := clamp(base * 0.1)
	if c.Origin == feed.OriginInNetwork {
		followP = 0.001 // already following
	}

	return map[feed.Action]float64{
		feed.ActionLike:       clamp(base*3*networkBoost + g.rng.Float64()*0.1),
		feed.ActionReply:      clamp(base*0.5*networkBoost + g.rng.Float64()*0.03),
		feed.ActionRepost:     clamp(base*0.8*networkBoost + g.rng.Float64()*0.05),
		feed.ActionQuote:      clamp(base*0.3*networkBoost + g.rng.Float64()*0.02),
		feed.ActionShare:      clamp(base*0.4*networkBoost + g.rng.Float64()*0.03),
		feed.ActionVideoWatch: videoWatch,
		feed.ActionClick:      clamp(base*2 + g.rng.Float64()*0.15),
		feed.ActionFollow:     followP,

		feed.ActionNotInterested: g.rng.Float64() * 0.02,
		feed.ActionBlock:         g.rng.Float64() * 0.005,
		feed.ActionReport:        g.rng.Float64() * 0.002,
	}
}

func clamp(p float64) float64 {
	if p > 0.95 {
		return 0.95
	}
	if p < 0 {
		return 0
	}
	return p
}
