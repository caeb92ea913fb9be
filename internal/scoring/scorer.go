package scoring

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/abelbrown/foryou/internal/feed"
)

// InvalidProbabilityError reports a prediction outside [0,1]. It signals an
// upstream prediction-collaborator bug and is not recoverable locally.
type InvalidProbabilityError struct {
	CandidateID string
	Action      feed.Action
	Value       float64
}

func (e *InvalidProbabilityError) Error() string {
	return fmt.Sprintf("scoring: candidate %q has probability %g for %s, want [0,1]",
		e.CandidateID, e.Value, e.Action)
}

// Scorer computes weighted scores from prediction maps.
type Scorer struct {
	Weights Weights
}

// NewScorer creates a scorer with the given weight table.
func NewScorer(w Weights) *Scorer {
	return &Scorer{Weights: w}
}

// Score computes the candidate's weighted score. Missing actions count as
// probability zero. Probabilities outside [0,1] are a contract violation.
//
// Summation runs in the fixed action order, not map order, so equal inputs
// always produce bit-identical scores.
func (s *Scorer) Score(c *feed.Candidate) (float64, error) {
	for action, p := range c.Predictions {
		if p < 0 || p > 1 {
			return 0, &InvalidProbabilityError{CandidateID: c.ID, Action: action, Value: p}
		}
	}

	var score float64
	for _, action := range feed.PositiveActions {
		magnitude, _ := s.Weights.For(action)
		score += magnitude * c.Predictions[action]
	}
	for _, action := range feed.NegativeActions {
		magnitude, _ := s.Weights.For(action)
		score -= magnitude * c.Predictions[action]
	}

	return score, nil
}

// ScoreAll scores every candidate in place and returns the slice.
// The input slice's candidates are copied, not aliased.
func (s *Scorer) ScoreAll(candidates []feed.Candidate) ([]feed.Candidate, error) {
	scored := make([]feed.Candidate, len(candidates))
	copy(scored, candidates)

	for i := range scored {
		v, err := s.Score(&scored[i])
		if err != nil {
			return nil, err
		}
		scored[i].Score = v
	}
	return scored, nil
}

// ScoreAllParallel scores candidates with up to workers goroutines.
// Each candidate's score is independent and side-effect free, so the fan-out
// shares nothing but the read-only weight table. workers <= 0 falls back to
// sequential scoring.
func (s *Scorer) ScoreAllParallel(ctx context.Context, candidates []feed.Candidate, workers int) ([]feed.Candidate, error) {
	if workers <= 1 {
		return s.ScoreAll(candidates)
	}

	scored := make([]feed.Candidate, len(candidates))
	copy(scored, candidates)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range scored {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			v, err := s.Score(&scored[i])
			if err != nil {
				return err
			}
			scored[i].Score = v
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return scored, nil
}

// Contribution is one action's share of a candidate's score, as shown in
// the breakdown card.
type Contribution struct {
	Action  feed.Action
	P       float64 // predicted probability
	Weight  float64 // signed weight actually applied
	Value   float64 // Weight * P
	Penalty bool
}

// Contributions returns the per-action breakdown for a candidate, sorted by
// absolute value descending so the strongest signals come first. Actions
// with zero probability are omitted.
func Contributions(w Weights, c *feed.Candidate) []Contribution {
	all := make([]feed.Action, 0, len(feed.PositiveActions)+len(feed.NegativeActions))
	all = append(all, feed.PositiveActions...)
	all = append(all, feed.NegativeActions...)

	out := make([]Contribution, 0, len(all))
	for _, action := range all {
		p := c.Predictions[action]
		if p == 0 {
			continue
		}
		magnitude, penalty := w.For(action)
		signed := magnitude
		if penalty {
			signed = -magnitude
		}
		out = append(out, Contribution{
			Action:  action,
			P:       p,
			Weight:  signed,
			Value:   signed * p,
			Penalty: penalty,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return abs(out[i].Value) > abs(out[j].Value)
	})
	return out
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
