// Command feedctl is the non-interactive CLI for the ranking pipeline.
//
// Usage:
//
//	feedctl                 Show help
//	feedctl rank -f FILE    Rank candidates from a JSON file
//	feedctl demo            Rank the built-in sample pool, with breakdowns
//	feedctl weights         Print the effective configuration
package main

import (
	"fmt"
	"os"
)

const usage = `feedctl — feed ranking pipeline CLI

Usage:
  feedctl <command> [flags]

Commands:
  rank        Rank candidates from a JSON input file
  demo        Rank the built-in sample pool and print score breakdowns
  weights     Print the effective configuration as JSON

Run 'feedctl <command> -h' for command-specific help.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(0)
	}

	cmd := os.Args[1]
	// Strip the program name + subcommand so flag sets see only their flags
	os.Args = os.Args[1:]

	switch cmd {
	case "rank":
		runRank()
	case "demo":
		runDemo()
	case "weights":
		runWeights()
	case "-h", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "feedctl: unknown command %q\n\n", cmd)
		fmt.Print(usage)
		os.Exit(1)
	}
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
