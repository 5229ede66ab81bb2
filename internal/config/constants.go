package config

const (
	// DefaultDatabasePath is the default path for the SQLite database
	DefaultDatabasePath = "./birdwatch.db"

	// DefaultClientBaseURL points the CLI at a locally running server
	DefaultClientBaseURL = "http://localhost:8080"
)
