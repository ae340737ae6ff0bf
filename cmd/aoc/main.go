package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	if err := newRootCmd(os.Stdout, nil).Execute(); err != nil {
		log.Fatal().Err(err).Msg("aoc failed")
	}
}
