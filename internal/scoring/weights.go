// Package scoring computes the weighted engagement score for each candidate.
//
// score = sum(weight * P(positive action)) - sum(penalty * P(negative action))
//
// Scorers are pure: a candidate's score depends only on its prediction map
// and the weight table. Nothing external is read or mutated, which is what
// makes per-candidate scoring safe to parallelize.
package scoring

import (
	"fmt"

	"github.com/abelbrown/foryou/internal/feed"
)

// Weights is the per-action weight table. All values are positive
// magnitudes; the scorer subtracts the penalty entries.
type Weights struct {
	Like       float64 `json:"like"`
	Reply      float64 `json:"reply"`
	Repost     float64 `json:"repost"`
	Quote      float64 `json:"quote"`
	Share      float64 `json:"share"`
	VideoWatch float64 `json:"video_watch"`
	Click      float64 `json:"click"`
	Follow     float64 `json:"follow"`

	NotInterestedPenalty float64 `json:"not_interested_penalty"`
	BlockPenalty         float64 `json:"block_penalty"`
	ReportPenalty        float64 `json:"report_penalty"`
}

// DefaultWeights returns the illustrative weight table. Replies and quotes
// weigh more than likes (deeper engagement); follow is the strongest
// positive signal; report is the strongest penalty.
func DefaultWeights() Weights {
	return Weights{
		Like:       1.0,
		Reply:      2.0,
		Repost:     1.5,
		Quote:      2.5,
		Share:      1.5,
		VideoWatch: 0.8,
		Click:      0.5,
		Follow:     3.0,

		NotInterestedPenalty: 5.0,
		BlockPenalty:         10.0,
		ReportPenalty:        15.0,
	}
}

// For returns the magnitude for an action and whether it is a penalty.
// Unknown actions get weight zero.
func (w Weights) For(a feed.Action) (magnitude float64, penalty bool) {
	switch a {
	case feed.ActionLike:
		return w.Like, false
	case feed.ActionReply:
		return w.Reply, false
	case feed.ActionRepost:
		return w.Repost, false
	case feed.ActionQuote:
		return w.Quote, false
	case feed.ActionShare:
		return w.Share, false
	case feed.ActionVideoWatch:
		return w.VideoWatch, false
	case feed.ActionClick:
		return w.Click, false
	case feed.ActionFollow:
		return w.Follow, false
	case feed.ActionNotInterested:
		return w.NotInterestedPenalty, true
	case feed.ActionBlock:
		return w.BlockPenalty, true
	case feed.ActionReport:
		return w.ReportPenalty, true
	}
	return 0, false
}

// Validate rejects negative magnitudes. Negatives are expressed by the
// penalty fields, never by negative weights.
func (w Weights) Validate() error {
	checks := []struct {
		name  string
		value float64
	}{
		{"like", w.Like},
		{"reply", w.Reply},
		{"repost", w.Repost},
		{"quote", w.Quote},
		{"share", w.Share},
		{"video_watch", w.VideoWatch},
		{"click", w.Click},
		{"follow", w.Follow},
		{"not_interested_penalty", w.NotInterestedPenalty},
		{"block_penalty", w.BlockPenalty},
		{"report_penalty", w.ReportPenalty},
	}
	for _, c := range checks {
		if c.value < 0 {
			return fmt.Errorf("scoring: weight %s is negative (%g); penalties are positive magnitudes", c.name, c.value)
		}
	}
	return nil
}
