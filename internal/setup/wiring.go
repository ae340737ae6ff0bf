package setup

import (
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	aoc2022day02 "github.com/toatesONS/advent-of-code/aoc/2022/day02"
	aoc2022day05 "github.com/toatesONS/advent-of-code/aoc/2022/day05"
	aoc2022day06 "github.com/toatesONS/advent-of-code/aoc/2022/day06"
	"github.com/toatesONS/advent-of-code/internal/config"
	"github.com/toatesONS/advent-of-code/internal/puzzle"
	"github.com/toatesONS/advent-of-code/internal/setup/logger"
)

type Dependencies struct {
	Config   *config.Config
	Registry *puzzle.Registry
	Logger   *zerolog.Logger
}

// LoadConfig loads .env (when present) and then the YAML/env configuration.
// The returned flag reports whether a .env file was found.
func LoadConfig() (*config.Config, bool, error) {
	envLoaded := godotenv.Load() == nil

	cfg, err := config.Load()
	if err != nil {
		return nil, envLoaded, err
	}
	return cfg, envLoaded, nil
}

// Wire builds the logger and the solver registry. Logs go to w, or to stderr
// in console format when w is nil.
func Wire(cfg *config.Config, w io.Writer) *Dependencies {
	l := logger.New(cfg.LogLevel, w)

	day06 := aoc2022day06.NewSolver()
	day06.PacketLength = cfg.Marker.Packet
	day06.MessageLength = cfg.Marker.Message

	registry := puzzle.NewRegistry(
		aoc2022day02.Solver{},
		aoc2022day05.Solver{},
		day06,
	)

	return &Dependencies{
		Config:   cfg,
		Registry: registry,
		Logger:   &l,
	}
}

// RunDay is the entry point of the standalone day commands: it loads the
// configuration, solves one day and exits non-zero on any error.
func RunDay(day string, inputFile string) {
	cfg, envLoaded, err := LoadConfig()
	if err != nil {
		l := logger.New(config.DefaultLogLevel, nil)
		l.Fatal().Err(err).Msg("Failed to load configuration")
	}
	if inputFile != "" {
		cfg.InputFile = inputFile
	}

	deps := Wire(cfg, nil)
	if !envLoaded {
		deps.Logger.Debug().Msg("No .env file found, using environment variables")
	}

	solver, err := deps.Registry.Get(day)
	if err != nil {
		deps.Logger.Fatal().Err(err).Msg("Failed to find solver")
	}

	if err := puzzle.Run(solver, cfg.InputFile, os.Stdout, deps.Logger); err != nil {
		deps.Logger.Fatal().Err(err).Str("file", cfg.InputFile).Msg("Failed to solve puzzle")
	}
}
