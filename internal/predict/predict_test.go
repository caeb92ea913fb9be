package predict

import (
	"testing"
	"time"

	"github.com/abelbrown/foryou/internal/feed"
)

func TestFillDeterministic(t *testing.T) {
	now := time.Now()

	a, ad := SamplePool(now)
	b, bd := SamplePool(now)
	NewGenerator(42).Fill(a)
	NewGenerator(42).Fill(ad)
	NewGenerator(42).Fill(b)
	NewGenerator(42).Fill(bd)

	for i := range a {
		for action, p := range a[i].Predictions {
			if b[i].Predictions[action] != p {
				t.Errorf("same seed diverged on %s/%s: %g vs %g",
					a[i].ID, action, p, b[i].Predictions[action])
			}
		}
	}
	for i := range ad {
		for action, p := range ad[i].Predictions {
			if bd[i].Predictions[action] != p {
				t.Errorf("same seed diverged on %s/%s", ad[i].ID, action)
			}
		}
	}
}

func TestFillProbabilitiesInRange(t *testing.T) {
	now := time.Now()
	inNetwork, discovery := SamplePool(now)

	g := NewGenerator(7)
	g.Fill(inNetwork)
	g.Fill(discovery)

	check := func(cs []feed.Candidate) {
		for _, c := range cs {
			if len(c.Predictions) == 0 {
				t.Errorf("candidate %s has no predictions", c.ID)
			}
			for action, p := range c.Predictions {
				if p < 0 || p > 1 {
					t.Errorf("candidate %s action %s probability %g out of range", c.ID, action, p)
				}
			}
		}
	}
	check(inNetwork)
	check(discovery)
}

func TestFillVideoBoost(t *testing.T) {
	now := time.Now()
	video := []feed.Candidate{{ID: "v", HasVideo: true, VideoSeconds: 30, CreatedAt: now}}
	plain := []feed.Candidate{{ID: "p", CreatedAt: now}}

	NewGenerator(1).Fill(video)
	NewGenerator(1).Fill(plain)

	if video[0].Predictions[feed.ActionVideoWatch] <= plain[0].Predictions[feed.ActionVideoWatch] {
		t.Errorf("video post should predict higher video-watch: %g vs %g",
			video[0].Predictions[feed.ActionVideoWatch], plain[0].Predictions[feed.ActionVideoWatch])
	}
}

func TestSamplePoolShape(t *testing.T) {
	inNetwork, discovery := SamplePool(time.Now())

	if len(inNetwork) == 0 || len(discovery) == 0 {
		t.Fatal("sample pool should populate both sources")
	}

	authors := map[string]int{}
	for _, c := range inNetwork {
		if c.Origin != feed.OriginInNetwork {
			t.Errorf("candidate %s has origin %s, want in-network", c.ID, c.Origin)
		}
		authors[c.AuthorID]++
	}
	if authors["alice"] < 2 {
		t.Error("sample pool should include a repeat author to exercise diversity decay")
	}
}
