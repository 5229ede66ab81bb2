// Command generate_demo creates a demo database with sample birds and sightings.
// Usage: go run ./cmd/generate_demo [-db path/to/demo.db]
//
// Serve it with DATABASE_PATH=<db> READ_ONLY=true for a public demo.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"github.com/mrlokans/birdwatch/internal/config"
	"github.com/mrlokans/birdwatch/internal/database"
	"github.com/mrlokans/birdwatch/internal/database/birds"
	"github.com/mrlokans/birdwatch/internal/database/sightings"
	"github.com/mrlokans/birdwatch/internal/entities"
	"github.com/mrlokans/birdwatch/internal/logging"
)

const defaultDemoDatabasePath = "./demo/demo.db"

type demoSighting struct {
	Location string
	Date     time.Time
}

type demoBird struct {
	Bird      entities.Bird
	Sightings []demoSighting
}

func main() {
	dbPath := flag.String("db", defaultDemoDatabasePath, "path to the demo database file")
	flag.Parse()

	log.Printf("Generating demo database at %s...", *dbPath)

	// Delete existing demo database to start fresh
	if err := os.Remove(*dbPath); err != nil && !os.IsNotExist(err) {
		log.Fatalf("Failed to remove existing demo database: %v", err)
	}

	db, err := database.NewDatabase(config.Database{
		Driver:   config.DatabaseDriverSQLite,
		Path:     *dbPath,
		LogLevel: "silent",
	}, logging.Nop())
	if err != nil {
		log.Fatalf("Failed to create database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	birdRepo := birds.NewRepository(db.DB)
	sightingRepo := sightings.NewRepository(db.DB)

	var birdCount, sightingCount int
	for _, d := range demoBirds() {
		bird, err := birdRepo.Save(ctx, &d.Bird)
		if err != nil {
			log.Printf("Failed to save bird %s: %v", d.Bird.Name, err)
			continue
		}
		birdCount++

		for _, s := range d.Sightings {
			if _, err := sightingRepo.Save(ctx, &entities.Sighting{
				Bird:         bird,
				Location:     s.Location,
				SightingDate: s.Date,
			}); err != nil {
				log.Printf("Failed to save sighting of %s at %s: %v", bird.Name, s.Location, err)
				continue
			}
			sightingCount++
		}
		log.Printf("Saved: %s (%d sightings)", bird.Name, len(d.Sightings))
	}

	log.Printf("Demo database generated successfully: %d birds, %d sightings", birdCount, sightingCount)
}

func day(year int, month time.Month, d, hour, minute int) time.Time {
	return time.Date(year, month, d, hour, minute, 0, 0, time.UTC)
}

func demoBirds() []demoBird {
	return []demoBird{
		{
			Bird: entities.Bird{Name: "European Robin", Color: "Red", Weight: 0.02, Height: 14},
			Sightings: []demoSighting{
				{Location: "Central Park", Date: day(2024, time.January, 3, 8, 15)},
				{Location: "Botanical Garden", Date: day(2024, time.February, 11, 9, 40)},
				{Location: "Riverside Trail", Date: day(2024, time.March, 22, 7, 5)},
			},
		},
		{
			Bird: entities.Bird{Name: "Blue Jay", Color: "Blue", Weight: 0.09, Height: 28},
			Sightings: []demoSighting{
				{Location: "Oak Woods", Date: day(2024, time.April, 2, 10, 30)},
				{Location: "Central Park", Date: day(2024, time.April, 18, 16, 45)},
			},
		},
		{
			Bird: entities.Bird{Name: "American Crow", Color: "Black", Weight: 0.45, Height: 45},
			Sightings: []demoSighting{
				{Location: "City Landfill", Date: day(2024, time.May, 7, 6, 50)},
				{Location: "Harbor Pier", Date: day(2024, time.May, 30, 12, 0)},
				{Location: "Central Park", Date: day(2024, time.June, 14, 18, 20)},
			},
		},
		{
			Bird: entities.Bird{Name: "Great Blue Heron", Color: "Grey", Weight: 2.3, Height: 115},
			Sightings: []demoSighting{
				{Location: "Lakeside Marsh", Date: day(2024, time.June, 1, 5, 45)},
			},
		},
		{
			Bird: entities.Bird{Name: "Northern Cardinal", Color: "Red", Weight: 0.045, Height: 22},
			Sightings: []demoSighting{
				{Location: "Backyard Feeder", Date: day(2024, time.July, 9, 7, 30)},
				{Location: "Botanical Garden", Date: day(2024, time.August, 21, 8, 10)},
			},
		},
		{
			Bird: entities.Bird{Name: "Barn Owl", Color: "White", Weight: 0.5, Height: 35},
			Sightings: []demoSighting{
				{Location: "Old Mill Farm", Date: day(2024, time.September, 12, 22, 15)},
			},
		},
		{
			Bird: entities.Bird{Name: "Mallard", Color: "Green", Weight: 1.1, Height: 58},
			Sightings: []demoSighting{
				{Location: "Lakeside Marsh", Date: day(2024, time.October, 4, 11, 0)},
				{Location: "Riverside Trail", Date: day(2024, time.October, 19, 15, 35)},
			},
		},
		{
			// Never sighted yet.
			Bird: entities.Bird{Name: "Peregrine Falcon", Color: "Slate", Weight: 0.95, Height: 42},
		},
	}
}
