package predict

import (
	"time"

	"github.com/abelbrown/foryou/internal/feed"
)

// SamplePool returns the demo candidate lists: a handful of in-network
// posts (alice posts twice, exercising the diversity decay) plus discovery
// posts including two videos on either side of the bonus sweet spot.
func SamplePool(now time.Time) (inNetwork, discovery []feed.Candidate) {
	inNetwork = []feed.Candidate{
		{
			ID:        "post-1",
			AuthorID:  "alice",
			Text:      "Just shipped a new feature! Thread on what we learned...",
			Origin:    feed.OriginInNetwork,
			CreatedAt: now.Add(-25 * time.Minute),
		},
		{
			ID:        "post-2",
			AuthorID:  "alice",
			Text:      "Follow-up: here's the technical deep dive",
			Origin:    feed.OriginInNetwork,
			CreatedAt: now.Add(-20 * time.Minute),
		},
		{
			ID:        "post-3",
			AuthorID:  "bob",
			Text:      "Hot take: tabs are better than spaces",
			Origin:    feed.OriginInNetwork,
			CreatedAt: now.Add(-2 * time.Hour),
		},
		{
			ID:        "post-7",
			AuthorID:  "carol",
			Text:      "Reposting this because it deserves more eyes",
			Origin:    feed.OriginInNetwork,
			CreatedAt: now.Add(-40 * time.Minute),
			RepostOf:  "post-3",
		},
	}

	discovery = []feed.Candidate{
		{
			ID:           "post-4",
			AuthorID:     "viral_account",
			Text:         "This video will change how you think about productivity",
			Origin:       feed.OriginDiscovery,
			CreatedAt:    now.Add(-90 * time.Minute),
			HasVideo:     true,
			VideoSeconds: 45,
		},
		{
			ID:        "post-5",
			AuthorID:  "news_org",
			Text:      "Breaking: major announcement in tech industry",
			Origin:    feed.OriginDiscovery,
			CreatedAt: now.Add(-10 * time.Minute),
		},
		{
			ID:           "post-6",
			AuthorID:     "viral_account",
			Text:         "Another banger video for you",
			Origin:       feed.OriginDiscovery,
			CreatedAt:    now.Add(-3 * time.Hour),
			HasVideo:     true,
			VideoSeconds: 120,
		},
	}

	return inNetwork, discovery
}

// SampleViewer returns the demo viewer context.
func SampleViewer() feed.ViewerContext {
	return feed.ViewerContext{
		ViewerID: "viewer",
		Seen:     map[string]bool{},
	}
}
