// Command foryou runs the interactive feed-ranking demo.
//
// It fills the sample candidate pool with seeded fake predictions, ranks it
// through the full pipeline, and renders the result as a navigable feed.
// Press enter on a post to see its per-action score breakdown, 'r' to
// reshuffle the predictions.
package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/abelbrown/foryou/internal/config"
	"github.com/abelbrown/foryou/internal/logging"
	"github.com/abelbrown/foryou/internal/pipeline"
	"github.com/abelbrown/foryou/internal/ui"
)

func main() {
	configPath := flag.String("config", config.Path(), "config file path")
	seed := flag.Int64("seed", 42, "prediction seed")
	flag.Parse()

	if err := logging.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}
	defer logging.Close()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fatal("Invalid configuration: %v", err)
	}

	pipe, err := pipeline.New(cfg)
	if err != nil {
		fatal("Failed to build pipeline: %v", err)
	}

	logging.Info("foryou starting", "seed", *seed)

	p := tea.NewProgram(ui.New(pipe, *seed), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logging.Error("application error", "error", err)
		fatal("Error: %v", err)
	}

	logging.Info("foryou exiting normally")
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
