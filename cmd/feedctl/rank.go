package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/abelbrown/foryou/internal/config"
	"github.com/abelbrown/foryou/internal/feed"
	"github.com/abelbrown/foryou/internal/pipeline"
)

// rankInput is the JSON shape feedctl rank consumes: the two candidate
// sources plus the viewer context, predictions included.
type rankInput struct {
	InNetwork []feed.Candidate   `json:"in_network"`
	Discovery []feed.Candidate   `json:"discovery"`
	Viewer    feed.ViewerContext `json:"viewer"`
}

func runRank() {
	fs := flag.NewFlagSet("rank", flag.ExitOnError)
	file := fs.String("f", "", "candidates JSON file (required)")
	configPath := fs.String("config", config.Path(), "config file path")
	asJSON := fs.Bool("json", false, "emit ranked output as JSON")
	fs.Parse(os.Args[1:])

	if *file == "" {
		fatal("rank: -f FILE is required")
	}

	data, err := os.ReadFile(*file)
	if err != nil {
		fatal("rank: %v", err)
	}
	var input rankInput
	if err := json.Unmarshal(data, &input); err != nil {
		fatal("rank: parsing %s: %v", *file, err)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fatal("rank: %v", err)
	}
	pipe, err := pipeline.New(cfg)
	if err != nil {
		fatal("rank: %v", err)
	}

	posts, err := pipe.Run(context.Background(), time.Now(), input.InNetwork, input.Discovery, input.Viewer)
	if err != nil {
		fatal("rank: %v", err)
	}

	if *asJSON {
		out, err := json.MarshalIndent(posts, "", "  ")
		if err != nil {
			fatal("rank: %v", err)
		}
		fmt.Println(string(out))
		return
	}

	printFeed(posts)
}

func printFeed(posts []pipeline.RankedPost) {
	if len(posts) == 0 {
		fmt.Println("empty feed (every candidate was filtered)")
		return
	}
	for _, p := range posts {
		c := p.Candidate
		origin := "OUT"
		if c.Origin == feed.OriginInNetwork {
			origin = "IN "
		}
		video := ""
		if c.HasVideo {
			video = fmt.Sprintf(" [video %.0fs]", c.VideoSeconds)
		}
		fmt.Printf("#%-3d %8.4f  [%s]%s @%s: %s\n", p.Rank, p.Score, origin, video, c.AuthorID, truncate(c.Text, 60))
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
