// Package filter removes candidates the viewer should never see, before any
// scoring happens.
//
// The filter is order-preserving and never mutates candidates. An empty
// result is a valid feed, not an error.
package filter

import (
	"strings"
	"time"

	"github.com/abelbrown/foryou/internal/feed"
)

// Filter holds the per-call exclusion rules.
type Filter struct {
	// Viewer supplies the seen set, blocked authors, muted keywords, and
	// the viewer's own author ID.
	Viewer feed.ViewerContext

	// MaxAge is the staleness window. Candidates created before
	// now minus MaxAge are dropped. Zero or negative disables the check.
	MaxAge time.Duration
}

// New creates a filter for one feed-generation call.
func New(viewer feed.ViewerContext, maxAge time.Duration) *Filter {
	return &Filter{Viewer: viewer, MaxAge: maxAge}
}

// Apply returns the subsequence of candidates that survive every rule,
// in input order. Duplicate reposts are detected in encounter order: only
// the first repost of a given original survives.
func (f *Filter) Apply(now time.Time, candidates []feed.Candidate) []feed.Candidate {
	var cutoff time.Time
	if f.MaxAge > 0 {
		cutoff = now.Add(-f.MaxAge)
	}

	seenReposts := make(map[string]bool)
	kept := make([]feed.Candidate, 0, len(candidates))

	for _, c := range candidates {
		if f.shouldDrop(c, cutoff) {
			continue
		}
		if c.RepostOf != "" {
			if seenReposts[c.RepostOf] {
				continue
			}
			seenReposts[c.RepostOf] = true
		}
		kept = append(kept, c)
	}

	return kept
}

// shouldDrop applies every stateless rule. Duplicate-repost detection lives
// in Apply because it depends on encounter order.
func (f *Filter) shouldDrop(c feed.Candidate, cutoff time.Time) bool {
	if f.Viewer.Seen[c.ID] {
		return true
	}
	if f.Viewer.ViewerID != "" && c.AuthorID == f.Viewer.ViewerID {
		return true
	}
	if f.Viewer.BlockedAuthors[c.AuthorID] {
		return true
	}
	if c.Flagged {
		return true
	}
	if !cutoff.IsZero() && c.CreatedAt.Before(cutoff) {
		return true
	}

	if len(f.Viewer.MutedKeywords) > 0 {
		text := strings.ToLower(c.Text)
		for _, kw := range f.Viewer.MutedKeywords {
			if kw == "" {
				continue
			}
			if strings.Contains(text, strings.ToLower(kw)) {
				return true
			}
		}
	}

	return false
}

// DroppedCount returns how many candidates Apply would remove.
func (f *Filter) DroppedCount(now time.Time, candidates []feed.Candidate) int {
	return len(candidates) - len(f.Apply(now, candidates))
}
