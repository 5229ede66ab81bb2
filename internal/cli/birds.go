package cli

import (
	"errors"
	"fmt"

	"github.com/mrlokans/birdwatch/internal/client"
)

// BirdListCommand lists birds, optionally filtered by name and color.
type BirdListCommand struct {
	connection
	Name  string
	Color string
}

func NewBirdListCommand() *BirdListCommand {
	return &BirdListCommand{}
}

func (cmd *BirdListCommand) ParseFlags(args []string) error {
	fs := newFlagSet("bird-list", "List birds. With -name or -color, search instead.",
		"bird-list",
		"bird-list -name rob -color red",
	)
	cmd.register(fs)
	fs.StringVar(&cmd.Name, "name", "", "Case-insensitive name fragment")
	fs.StringVar(&cmd.Color, "color", "", "Case-insensitive color fragment")
	return fs.Parse(args)
}

func (cmd *BirdListCommand) Run() error {
	c, err := cmd.client()
	if err != nil {
		return err
	}
	ctx, cancel := cmd.context()
	defer cancel()

	if cmd.Name == "" && cmd.Color == "" {
		birds, err := c.ListBirds(ctx)
		if err != nil {
			return fmt.Errorf("failed to list birds: %w", err)
		}
		return printBirds(cmd.writer(), birds)
	}

	birds, err := c.SearchBirds(ctx, cmd.Name, cmd.Color)
	if err != nil {
		return fmt.Errorf("failed to search birds: %w", err)
	}
	return printBirds(cmd.writer(), birds)
}

// BirdAddCommand creates a bird.
type BirdAddCommand struct {
	connection
	Name   string
	Color  string
	Weight float64
	Height float64
}

func NewBirdAddCommand() *BirdAddCommand {
	return &BirdAddCommand{}
}

func (cmd *BirdAddCommand) ParseFlags(args []string) error {
	fs := newFlagSet("bird-add", "Add a bird.",
		"bird-add -name Robin -color Red -weight 0.02 -height 14",
	)
	cmd.register(fs)
	fs.StringVar(&cmd.Name, "name", "", "Bird name (required)")
	fs.StringVar(&cmd.Color, "color", "", "Bird color (required)")
	fs.Float64Var(&cmd.Weight, "weight", 0, "Weight")
	fs.Float64Var(&cmd.Height, "height", 0, "Height")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if cmd.Name == "" || cmd.Color == "" {
		fs.Usage()
		return errors.New("name and color are required")
	}
	return nil
}

func (cmd *BirdAddCommand) Run() error {
	c, err := cmd.client()
	if err != nil {
		return err
	}
	ctx, cancel := cmd.context()
	defer cancel()

	rec, err := c.CreateBird(ctx, client.BirdInput{
		Name:   cmd.Name,
		Color:  cmd.Color,
		Weight: cmd.Weight,
		Height: cmd.Height,
	})
	if err != nil {
		return fmt.Errorf("failed to add bird: %w", err)
	}
	fmt.Fprintf(cmd.writer(), "Added bird #%d %s\n", rec.ID, rec.Name)
	return nil
}

// BirdDeleteCommand deletes a bird and its sightings.
type BirdDeleteCommand struct {
	connection
	ID uint
}

func NewBirdDeleteCommand() *BirdDeleteCommand {
	return &BirdDeleteCommand{}
}

func (cmd *BirdDeleteCommand) ParseFlags(args []string) error {
	fs := newFlagSet("bird-delete", "Delete a bird together with all of its sightings.",
		"bird-delete -id 3",
	)
	cmd.register(fs)
	fs.UintVar(&cmd.ID, "id", 0, "Bird ID (required)")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if cmd.ID == 0 {
		fs.Usage()
		return errors.New("id is required")
	}
	return nil
}

func (cmd *BirdDeleteCommand) Run() error {
	c, err := cmd.client()
	if err != nil {
		return err
	}
	ctx, cancel := cmd.context()
	defer cancel()

	if err := c.DeleteBird(ctx, cmd.ID); err != nil {
		if client.IsNotFound(err) {
			return fmt.Errorf("bird #%d does not exist", cmd.ID)
		}
		return fmt.Errorf("failed to delete bird: %w", err)
	}
	fmt.Fprintf(cmd.writer(), "Deleted bird #%d\n", cmd.ID)
	return nil
}
