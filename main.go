package main

import (
	"os"

	"github.com/rs/zerolog/log"

	"schoolhub_backend/internals/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		log.Error().Err(err).Msg("exit")
		os.Exit(1)
	}
}
