// Package pipeline wires the four ranking stages into one synchronous,
// side-effect-free call:
//
//	pool build -> filter -> score -> diversity adjust
//
// Every stage consumes and produces a candidate slice, so each is testable
// in isolation. The pipeline itself does no I/O; predictions and the viewer
// context arrive precomputed from external collaborators.
package pipeline

import (
	"context"
	"time"

	"github.com/abelbrown/foryou/internal/config"
	"github.com/abelbrown/foryou/internal/diversity"
	"github.com/abelbrown/foryou/internal/feed"
	"github.com/abelbrown/foryou/internal/filter"
	"github.com/abelbrown/foryou/internal/logging"
	"github.com/abelbrown/foryou/internal/scoring"
)

// RankedPost is one entry of the final feed, ready for display.
type RankedPost struct {
	ID    string  `json:"id"`
	Rank  int     `json:"rank"`
	Score float64 `json:"score"`

	Candidate feed.Candidate `json:"candidate"`
}

// Pipeline runs one feed-generation call per Run invocation. It carries no
// per-call state, so a Pipeline is safe to reuse.
type Pipeline struct {
	cfg      *config.Config
	scorer   *scoring.Scorer
	adjuster *diversity.Adjuster
}

// New builds a pipeline from a validated configuration.
func New(cfg *config.Config) (*Pipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Pipeline{
		cfg:    cfg,
		scorer: scoring.NewScorer(cfg.Weights),
		adjuster: &diversity.Adjuster{
			Decay: cfg.DiversityDecay,
			Bonus: diversity.VideoBonus{
				MinSeconds: cfg.VideoBonus.MinSeconds,
				MaxSeconds: cfg.VideoBonus.MaxSeconds,
				Peak:       cfg.VideoBonus.Peak,
				Falloff:    cfg.VideoBonus.FalloffSeconds,
			},
		},
	}, nil
}

// Weights exposes the weight table for breakdown rendering.
func (p *Pipeline) Weights() scoring.Weights {
	return p.cfg.Weights
}

// Run produces the ranked feed for one viewer.
//
// Returns feed.ErrEmptyPool when both candidate lists are empty and
// scoring.InvalidProbabilityError on malformed predictions. An empty feed
// after filtering is a valid result, not an error.
func (p *Pipeline) Run(ctx context.Context, now time.Time, inNetwork, discovery []feed.Candidate, viewer feed.ViewerContext) ([]RankedPost, error) {
	pool, err := feed.BuildPool(inNetwork, discovery)
	if err != nil {
		return nil, err
	}
	if p.cfg.PoolCap > 0 && len(pool) > p.cfg.PoolCap {
		pool = pool[:p.cfg.PoolCap]
	}

	// Config-level muted keywords extend the viewer's own list.
	if len(p.cfg.MutedKeywords) > 0 {
		merged := viewer
		merged.MutedKeywords = append(append([]string{}, viewer.MutedKeywords...), p.cfg.MutedKeywords...)
		viewer = merged
	}

	f := filter.New(viewer, time.Duration(p.cfg.StalenessHours*float64(time.Hour)))
	surviving := f.Apply(now, pool)
	logging.Debug("filter stage done", "in", len(pool), "kept", len(surviving))
	if len(surviving) == 0 {
		return []RankedPost{}, nil
	}

	scored, err := p.scorer.ScoreAllParallel(ctx, surviving, p.cfg.ScorerWorkers)
	if err != nil {
		return nil, err
	}

	ranked := p.adjuster.Rank(scored)
	logging.Debug("ranking done", "candidates", len(ranked))

	out := make([]RankedPost, len(ranked))
	for i, c := range ranked {
		out[i] = RankedPost{
			ID:        c.ID,
			Rank:      c.Rank,
			Score:     c.Score,
			Candidate: c,
		}
	}
	return out, nil
}
