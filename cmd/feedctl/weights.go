package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/abelbrown/foryou/internal/config"
)

func runWeights() {
	fs := flag.NewFlagSet("weights", flag.ExitOnError)
	configPath := fs.String("config", config.Path(), "config file path")
	fs.Parse(os.Args[1:])

	cfg, err := config.Load(*configPath)
	if err != nil {
		fatal("weights: %v", err)
	}

	out, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		fatal("weights: %v", err)
	}
	fmt.Println(string(out))
}
