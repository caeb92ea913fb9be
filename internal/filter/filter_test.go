package filter

import (
	"testing"
	"time"

	"github.com/abelbrown/foryou/internal/feed"
)

func testViewer() feed.ViewerContext {
	return feed.ViewerContext{
		ViewerID:       "me",
		Seen:           map[string]bool{"seen-1": true},
		BlockedAuthors: map[string]bool{"blocked": true},
		MutedKeywords:  []string{"spam"},
	}
}

func TestApplyRules(t *testing.T) {
	now := time.Now()
	fresh := now.Add(-time.Hour)

	tests := []struct {
		name string
		cand feed.Candidate
		kept bool
	}{
		{"clean candidate survives", feed.Candidate{ID: "ok", AuthorID: "alice", Text: "hello", CreatedAt: fresh}, true},
		{"already seen", feed.Candidate{ID: "seen-1", AuthorID: "alice", CreatedAt: fresh}, false},
		{"own post", feed.Candidate{ID: "mine", AuthorID: "me", CreatedAt: fresh}, false},
		{"blocked author", feed.Candidate{ID: "b", AuthorID: "blocked", CreatedAt: fresh}, false},
		{"muted keyword", feed.Candidate{ID: "m", AuthorID: "alice", Text: "Buy my SPAM today", CreatedAt: fresh}, false},
		{"stale", feed.Candidate{ID: "old", AuthorID: "alice", CreatedAt: now.Add(-72 * time.Hour)}, false},
		{"flagged", feed.Candidate{ID: "f", AuthorID: "alice", Flagged: true, CreatedAt: fresh}, false},
	}

	f := New(testViewer(), 48*time.Hour)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := f.Apply(now, []feed.Candidate{tt.cand})
			if kept := len(out) == 1; kept != tt.kept {
				t.Errorf("kept = %v, want %v", kept, tt.kept)
			}
		})
	}
}

func TestApplyDuplicateRepost(t *testing.T) {
	now := time.Now()
	fresh := now.Add(-time.Minute)

	candidates := []feed.Candidate{
		{ID: "r1", AuthorID: "a", RepostOf: "orig", CreatedAt: fresh},
		{ID: "p1", AuthorID: "b", CreatedAt: fresh},
		{ID: "r2", AuthorID: "c", RepostOf: "orig", CreatedAt: fresh},
		{ID: "r3", AuthorID: "d", RepostOf: "other", CreatedAt: fresh},
	}

	f := New(feed.ViewerContext{}, 0)
	out := f.Apply(now, candidates)

	want := []string{"r1", "p1", "r3"}
	if len(out) != len(want) {
		t.Fatalf("Apply kept %d candidates, want %d", len(out), len(want))
	}
	for i, id := range want {
		if out[i].ID != id {
			t.Errorf("out[%d].ID = %q, want %q", i, out[i].ID, id)
		}
	}
}

func TestApplyPreservesOrderAndSubset(t *testing.T) {
	now := time.Now()
	candidates := []feed.Candidate{
		{ID: "1", AuthorID: "a", CreatedAt: now},
		{ID: "2", AuthorID: "blocked", CreatedAt: now},
		{ID: "3", AuthorID: "b", CreatedAt: now},
		{ID: "4", AuthorID: "c", Text: "pure spam", CreatedAt: now},
		{ID: "5", AuthorID: "d", CreatedAt: now},
	}

	f := New(testViewer(), time.Hour)
	out := f.Apply(now, candidates)

	// Output must be a subsequence of the input.
	inputIdx := 0
	for _, c := range out {
		found := false
		for ; inputIdx < len(candidates); inputIdx++ {
			if candidates[inputIdx].ID == c.ID {
				found = true
				inputIdx++
				break
			}
		}
		if !found {
			t.Fatalf("output candidate %q is not an order-preserving subset of input", c.ID)
		}
	}

	want := []string{"1", "3", "5"}
	if len(out) != len(want) {
		t.Fatalf("Apply kept %d candidates, want %d", len(out), len(want))
	}
}

func TestApplyIdempotent(t *testing.T) {
	now := time.Now()
	candidates := []feed.Candidate{
		{ID: "1", AuthorID: "a", CreatedAt: now},
		{ID: "2", AuthorID: "a", RepostOf: "x", CreatedAt: now},
		{ID: "3", AuthorID: "b", RepostOf: "x", CreatedAt: now},
		{ID: "4", AuthorID: "c", CreatedAt: now},
	}

	f := New(testViewer(), time.Hour)

	once := f.Apply(now, candidates)
	twice := f.Apply(now, once)

	if len(once) != len(twice) {
		t.Fatalf("second Apply changed length: %d -> %d", len(once), len(twice))
	}
	for i := range once {
		if once[i].ID != twice[i].ID {
			t.Errorf("second Apply changed order at %d: %q -> %q", i, once[i].ID, twice[i].ID)
		}
	}
}

func TestApplyEmptyResultIsValid(t *testing.T) {
	now := time.Now()
	candidates := []feed.Candidate{
		{ID: "1", AuthorID: "blocked", CreatedAt: now},
	}

	f := New(testViewer(), time.Hour)
	out := f.Apply(now, candidates)

	if len(out) != 0 {
		t.Errorf("expected empty result, got %d candidates", len(out))
	}
}

func TestDroppedCount(t *testing.T) {
	now := time.Now()
	candidates := []feed.Candidate{
		{ID: "1", AuthorID: "a", CreatedAt: now},
		{ID: "2", AuthorID: "blocked", CreatedAt: now},
		{ID: "3", AuthorID: "me", CreatedAt: now},
	}

	f := New(testViewer(), time.Hour)
	if got := f.DroppedCount(now, candidates); got != 2 {
		t.Errorf("DroppedCount = %d, want 2", got)
	}
}
