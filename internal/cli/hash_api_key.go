package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/mrlokans/birdwatch/internal/auth"
)

// HashAPIKeyCommand prints the bcrypt hash to put in API_KEY_HASH.
type HashAPIKeyCommand struct {
	Key  string
	Cost int

	out io.Writer
}

func NewHashAPIKeyCommand() *HashAPIKeyCommand {
	return &HashAPIKeyCommand{}
}

func (cmd *HashAPIKeyCommand) ParseFlags(args []string) error {
	fs := newFlagSet("hash-api-key", "Hash an API key for API_KEY_HASH. Without -key a random key is generated.",
		"hash-api-key",
		"hash-api-key -key my-very-long-secret-key",
	)
	fs.StringVar(&cmd.Key, "key", "", "Plaintext key (at least 16 characters)")
	fs.IntVar(&cmd.Cost, "cost", 0, "bcrypt cost (default 10)")
	return fs.Parse(args)
}

func (cmd *HashAPIKeyCommand) setOutput(w io.Writer) { cmd.out = w }

func (cmd *HashAPIKeyCommand) Run() error {
	w := cmd.out
	if w == nil {
		w = os.Stdout
	}

	key := cmd.Key
	if key == "" {
		generated, err := auth.GenerateAPIKey()
		if err != nil {
			return fmt.Errorf("failed to generate key: %w", err)
		}
		key = generated
		fmt.Fprintf(w, "API key:      %s\n", key)
	}

	hash, err := auth.HashAPIKey(key, cmd.Cost)
	if err != nil {
		return fmt.Errorf("failed to hash key: %w", err)
	}
	fmt.Fprintf(w, "API_KEY_HASH: %s\n", hash)
	return nil
}
