// Command mood-tunes runs the mood-tunes API server: it turns client-detected
// moods into Spotify track recommendations.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/moodtunes/go-mood-tunes/internal/config"
	"github.com/moodtunes/go-mood-tunes/internal/web"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	server, err := web.NewServer(cfg, logger)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	return server.Run()
}
