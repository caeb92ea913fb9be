package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/abelbrown/foryou/internal/config"
	"github.com/abelbrown/foryou/internal/pipeline"
	"github.com/abelbrown/foryou/internal/predict"
	"github.com/abelbrown/foryou/internal/scoring"
)

func runDemo() {
	fs := flag.NewFlagSet("demo", flag.ExitOnError)
	seed := fs.Int64("seed", 42, "prediction seed")
	configPath := fs.String("config", config.Path(), "config file path")
	fs.Parse(os.Args[1:])

	cfg, err := config.Load(*configPath)
	if err != nil {
		fatal("demo: %v", err)
	}
	pipe, err := pipeline.New(cfg)
	if err != nil {
		fatal("demo: %v", err)
	}

	now := time.Now()
	inNetwork, discovery := predict.SamplePool(now)
	gen := predict.NewGenerator(*seed)
	gen.Fill(inNetwork)
	gen.Fill(discovery)

	posts, err := pipe.Run(context.Background(), now, inNetwork, discovery, predict.SampleViewer())
	if err != nil {
		fatal("demo: %v", err)
	}

	rule := strings.Repeat("=", 60)
	fmt.Println(rule)
	fmt.Printf("RANKED FEED (seed %d)\n", *seed)
	fmt.Println(rule)
	printFeed(posts)

	if len(posts) == 0 {
		return
	}

	fmt.Println()
	fmt.Println(rule)
	fmt.Println("BREAKDOWN: top ranked post")
	fmt.Println(rule)
	printBreakdown(posts[0], cfg.Weights)
}

func printBreakdown(post pipeline.RankedPost, w scoring.Weights) {
	c := post.Candidate
	fmt.Printf("@%s: %s\n", c.AuthorID, truncate(c.Text, 60))
	if c.HasVideo {
		fmt.Printf("video: %.0fs\n", c.VideoSeconds)
	}
	fmt.Println(strings.Repeat("-", 60))

	var total float64
	for _, ct := range scoring.Contributions(w, &post.Candidate) {
		total += ct.Value
		fmt.Printf("  %-15s P=%.4f × w=%+.1f = %+.4f\n", ct.Action, ct.P, ct.Weight, ct.Value)
	}

	fmt.Println(strings.Repeat("-", 60))
	fmt.Printf("  base score:  %.4f\n", total)
	fmt.Printf("  final score: %.4f (after video bonus and diversity)\n", post.Score)
}
