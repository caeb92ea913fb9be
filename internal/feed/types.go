// Package feed defines the candidate model that flows through the ranking
// pipeline, plus the pool builder that merges the two candidate sources.
//
// Pipeline: pool -> filter -> score -> diversity adjust -> ranked output
//
// Candidates are created fresh per feed-generation call and discarded after
// the ranked output is produced. Nothing here persists across calls.
package feed

import "time"

// Origin identifies where a candidate came from.
type Origin string

const (
	// OriginInNetwork marks posts authored by someone the viewer follows.
	OriginInNetwork Origin = "in-network"

	// OriginDiscovery marks posts from outside the viewer's follow set,
	// included for variety.
	OriginDiscovery Origin = "discovery"
)

// Action is one of the predicted viewer reactions a candidate is scored on.
type Action string

const (
	ActionLike       Action = "like"
	ActionReply      Action = "reply"
	ActionRepost     Action = "repost"
	ActionQuote      Action = "quote"
	ActionShare      Action = "share"
	ActionVideoWatch Action = "video-watch"
	ActionClick      Action = "click"
	ActionFollow     Action = "follow"

	// Negative signals. Their weights are positive magnitudes that the
	// scorer subtracts.
	ActionNotInterested Action = "not-interested"
	ActionBlock         Action = "block"
	ActionReport        Action = "report"
)

// PositiveActions lists engagement actions in scoring order.
var PositiveActions = []Action{
	ActionLike,
	ActionReply,
	ActionRepost,
	ActionQuote,
	ActionShare,
	ActionVideoWatch,
	ActionClick,
	ActionFollow,
}

// NegativeActions lists the penalty actions.
var NegativeActions = []Action{
	ActionNotInterested,
	ActionBlock,
	ActionReport,
}

// Candidate is one post under consideration for the feed.
type Candidate struct {
	ID       string `json:"id"`
	AuthorID string `json:"author_id"`
	Text     string `json:"text"`
	Origin   Origin `json:"origin"`

	CreatedAt time.Time `json:"created_at"`

	// Video metadata. VideoSeconds is meaningless when HasVideo is false.
	HasVideo     bool    `json:"has_video,omitempty"`
	VideoSeconds float64 `json:"video_seconds,omitempty"`

	// RepostOf holds the original post's ID when this candidate is a
	// repost; empty otherwise.
	RepostOf string `json:"repost_of,omitempty"`

	// Flagged marks rule-breaking or spam content.
	Flagged bool `json:"flagged,omitempty"`

	// Predictions maps each action to its predicted probability in [0,1].
	// Supplied by an external prediction collaborator before the pipeline
	// runs. Missing actions are treated as probability zero.
	Predictions map[Action]float64 `json:"predictions,omitempty"`

	// Score is derived by the scorer and rewritten by the diversity
	// adjuster. Zero until scoring runs.
	Score float64 `json:"score,omitempty"`

	// Rank is the 1-based final feed position, assigned at the end.
	Rank int `json:"rank,omitempty"`
}

// ViewerContext is the read-only per-viewer input the filter stage needs.
// It is supplied by an external collaborator; the pipeline never mutates it.
type ViewerContext struct {
	// ViewerID is the viewer's own author ID. Their own posts never rank.
	ViewerID string `json:"viewer_id"`

	// Seen holds IDs of posts already shown to the viewer.
	Seen map[string]bool `json:"seen,omitempty"`

	// BlockedAuthors holds author IDs the viewer blocked or muted.
	BlockedAuthors map[string]bool `json:"blocked_authors,omitempty"`

	// MutedKeywords are matched case-insensitively against candidate text.
	MutedKeywords []string `json:"muted_keywords,omitempty"`
}
