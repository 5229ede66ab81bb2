package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/mrlokans/birdwatch/internal/client"
	"github.com/mrlokans/birdwatch/internal/dto"
)

// SightingListCommand lists sightings, optionally filtered.
type SightingListCommand struct {
	connection
	BirdName string
	Location string
	From     string
	To       string
}

func NewSightingListCommand() *SightingListCommand {
	return &SightingListCommand{}
}

func (cmd *SightingListCommand) ParseFlags(args []string) error {
	fs := newFlagSet("sighting-list", "List sightings. Any filter switches to search.",
		"sighting-list",
		"sighting-list -bird robin -from 2024-01-01T00:00:00 -to 2024-12-31T23:59:59",
	)
	cmd.register(fs)
	fs.StringVar(&cmd.BirdName, "bird", "", "Case-insensitive bird name fragment")
	fs.StringVar(&cmd.Location, "location", "", "Case-insensitive location fragment")
	fs.StringVar(&cmd.From, "from", "", "Earliest sighting date, inclusive (YYYY-MM-DDTHH:MM:SS)")
	fs.StringVar(&cmd.To, "to", "", "Latest sighting date, inclusive (YYYY-MM-DDTHH:MM:SS)")
	return fs.Parse(args)
}

func (cmd *SightingListCommand) Run() error {
	query := client.SightingQuery{BirdName: cmd.BirdName, Location: cmd.Location}
	var err error
	if query.StartDate, err = optionalDate("from", cmd.From); err != nil {
		return err
	}
	if query.EndDate, err = optionalDate("to", cmd.To); err != nil {
		return err
	}

	c, err := cmd.client()
	if err != nil {
		return err
	}
	ctx, cancel := cmd.context()
	defer cancel()

	if query == (client.SightingQuery{}) {
		sightings, err := c.ListSightings(ctx)
		if err != nil {
			return fmt.Errorf("failed to list sightings: %w", err)
		}
		return printSightings(cmd.writer(), sightings)
	}

	sightings, err := c.SearchSightings(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to search sightings: %w", err)
	}
	return printSightings(cmd.writer(), sightings)
}

// SightingAddCommand records a sighting of an existing bird.
type SightingAddCommand struct {
	connection
	BirdID   uint
	Location string
	Date     string
}

func NewSightingAddCommand() *SightingAddCommand {
	return &SightingAddCommand{}
}

func (cmd *SightingAddCommand) ParseFlags(args []string) error {
	fs := newFlagSet("sighting-add", "Record a sighting.",
		"sighting-add -bird-id 1 -location \"Central Park\"",
		"sighting-add -bird-id 1 -location Lakeside -date 2024-01-01T10:00:00",
	)
	cmd.register(fs)
	fs.UintVar(&cmd.BirdID, "bird-id", 0, "ID of the sighted bird (required)")
	fs.StringVar(&cmd.Location, "location", "", "Where the bird was seen (required)")
	fs.StringVar(&cmd.Date, "date", "", "When the bird was seen (default: now)")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if cmd.BirdID == 0 || cmd.Location == "" {
		fs.Usage()
		return errors.New("bird-id and location are required")
	}
	return nil
}

func (cmd *SightingAddCommand) Run() error {
	date := time.Now()
	if cmd.Date != "" {
		parsed, err := dto.ParseLocalDateTime(cmd.Date)
		if err != nil {
			return fmt.Errorf("invalid date: %w", err)
		}
		date = parsed
	}

	c, err := cmd.client()
	if err != nil {
		return err
	}
	ctx, cancel := cmd.context()
	defer cancel()

	sighting, err := c.CreateSighting(ctx, client.SightingInput{
		BirdID:       cmd.BirdID,
		Location:     cmd.Location,
		SightingDate: date,
	})
	if err != nil {
		if client.IsNotFound(err) {
			return fmt.Errorf("bird #%d does not exist", cmd.BirdID)
		}
		return fmt.Errorf("failed to add sighting: %w", err)
	}
	fmt.Fprintf(cmd.writer(), "Added sighting #%d at %s on %s\n", sighting.ID, sighting.Location, sighting.SightingDate)
	return nil
}

// SightingDeleteCommand deletes one sighting.
type SightingDeleteCommand struct {
	connection
	ID uint
}

func NewSightingDeleteCommand() *SightingDeleteCommand {
	return &SightingDeleteCommand{}
}

func (cmd *SightingDeleteCommand) ParseFlags(args []string) error {
	fs := newFlagSet("sighting-delete", "Delete a sighting.", "sighting-delete -id 12")
	cmd.register(fs)
	fs.UintVar(&cmd.ID, "id", 0, "Sighting ID (required)")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if cmd.ID == 0 {
		fs.Usage()
		return errors.New("id is required")
	}
	return nil
}

func (cmd *SightingDeleteCommand) Run() error {
	c, err := cmd.client()
	if err != nil {
		return err
	}
	ctx, cancel := cmd.context()
	defer cancel()

	if err := c.DeleteSighting(ctx, cmd.ID); err != nil {
		if client.IsNotFound(err) {
			return fmt.Errorf("sighting #%d does not exist", cmd.ID)
		}
		return fmt.Errorf("failed to delete sighting: %w", err)
	}
	fmt.Fprintf(cmd.writer(), "Deleted sighting #%d\n", cmd.ID)
	return nil
}

func optionalDate(flagName, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	t, err := dto.ParseLocalDateTime(value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid -%s: %w", flagName, err)
	}
	return t, nil
}
