// Package cli implements the birdwatch subcommands. Every command except
// hash-api-key talks to a running server through the client package.
package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/mrlokans/birdwatch/internal/client"
	"github.com/mrlokans/birdwatch/internal/config"
	"github.com/mrlokans/birdwatch/internal/dto"
)

// Command is a parsed, runnable subcommand.
type Command interface {
	ParseFlags(args []string) error
	Run() error
}

// connection holds the flags shared by every client-backed command.
// Defaults come from CLIENT_BASE_URL, CLIENT_API_KEY and CLIENT_TIMEOUT.
type connection struct {
	Server  string
	APIKey  string
	Timeout time.Duration

	out io.Writer
}

func (conn *connection) register(fs *flag.FlagSet) {
	defaults := config.NewConfig().Client
	fs.StringVar(&conn.Server, "server", defaults.BaseURL, "Birdwatch server URL")
	fs.StringVar(&conn.APIKey, "api-key", defaults.APIKey, "API key, if the server requires one")
	fs.DurationVar(&conn.Timeout, "timeout", defaults.Timeout, "Request timeout")
}

func (conn *connection) client() (*client.Client, error) {
	return client.New(client.Config{
		BaseURL: conn.Server,
		APIKey:  conn.APIKey,
		Timeout: conn.Timeout,
	})
}

func (conn *connection) context() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), conn.Timeout+time.Second)
}

func (conn *connection) setOutput(w io.Writer) { conn.out = w }

func (conn *connection) writer() io.Writer {
	if conn.out == nil {
		return os.Stdout
	}
	return conn.out
}

func newFlagSet(name, summary string, examples ...string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		w := fs.Output()
		fmt.Fprintf(w, "Usage: %s %s [options]\n\n", os.Args[0], name)
		fmt.Fprintf(w, "%s\n\n", summary)
		fmt.Fprintf(w, "Options:\n")
		fs.PrintDefaults()
		if len(examples) > 0 {
			fmt.Fprintf(w, "\nExamples:\n")
			for _, e := range examples {
				fmt.Fprintf(w, "  %s %s\n", os.Args[0], e)
			}
		}
	}
	return fs
}

func printBirds(w io.Writer, birds []dto.BirdDTO) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tCOLOR\tWEIGHT\tHEIGHT\tCREATED")
	for _, b := range birds {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%.2f\t%.2f\t%s\n", b.ID, b.Name, b.Color, b.Weight, b.Height, b.CreatedAt)
	}
	return tw.Flush()
}

func printSightings(w io.Writer, sightings []dto.SightingDTO) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tBIRD\tLOCATION\tDATE")
	for _, s := range sightings {
		bird := "-"
		if s.Bird != nil {
			bird = fmt.Sprintf("%s (#%d)", s.Bird.Name, s.Bird.ID)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", s.ID, bird, s.Location, s.SightingDate)
	}
	return tw.Flush()
}
