package main

import (
	"fmt"
	"os"

	"github.com/mrlokans/birdwatch/internal/cli"
	"github.com/mrlokans/birdwatch/internal/config"
	"github.com/mrlokans/birdwatch/internal/entrypoint"
)

// Version information - set at build time via ldflags
var (
	Version = "dev"
	Commit  = "unknown"
)

var commands = map[string]func() cli.Command{
	"bird-list":       func() cli.Command { return cli.NewBirdListCommand() },
	"bird-add":        func() cli.Command { return cli.NewBirdAddCommand() },
	"bird-delete":     func() cli.Command { return cli.NewBirdDeleteCommand() },
	"sighting-list":   func() cli.Command { return cli.NewSightingListCommand() },
	"sighting-add":    func() cli.Command { return cli.NewSightingAddCommand() },
	"sighting-delete": func() cli.Command { return cli.NewSightingDeleteCommand() },
	"hash-api-key":    func() cli.Command { return cli.NewHashAPIKeyCommand() },
}

func main() {
	// If no arguments or "serve" command, run the HTTP server
	if len(os.Args) < 2 || os.Args[1] == "serve" {
		if err := entrypoint.Run(config.NewConfig(), Version); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	command := os.Args[1]
	switch command {
	case "version", "-v", "--version":
		fmt.Printf("birdwatch %s (%s)\n", Version, Commit)
		return
	case "help", "-h", "--help":
		printUsage()
		return
	}

	newCmd, ok := commands[command]
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}

	cmd := newCmd()
	if err := cmd.ParseFlags(os.Args[2:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	if err := cmd.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: %s <command> [options]\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Commands:\n")
	fmt.Fprintf(os.Stderr, "  serve             Start the HTTP server (default)\n")
	fmt.Fprintf(os.Stderr, "  bird-list         List or search birds\n")
	fmt.Fprintf(os.Stderr, "  bird-add          Add a bird\n")
	fmt.Fprintf(os.Stderr, "  bird-delete       Delete a bird and its sightings\n")
	fmt.Fprintf(os.Stderr, "  sighting-list     List or search sightings\n")
	fmt.Fprintf(os.Stderr, "  sighting-add      Record a sighting\n")
	fmt.Fprintf(os.Stderr, "  sighting-delete   Delete a sighting\n")
	fmt.Fprintf(os.Stderr, "  hash-api-key      Hash an API key for API_KEY_HASH\n")
	fmt.Fprintf(os.Stderr, "  version           Print version information\n")
	fmt.Fprintf(os.Stderr, "\nRun '%s <command> -h' for command options.\n", os.Args[0])
}
