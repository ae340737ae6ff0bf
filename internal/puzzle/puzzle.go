package puzzle

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/rs/zerolog"
	"github.com/toatesONS/advent-of-code/internal/input"
)

var ErrUnknownDay = errors.New("unknown day")

// Answer holds the printable result of both parts of a puzzle.
type Answer struct {
	Part1 string
	Part2 string
}

type Solver interface {
	Day() string
	Solve(input string) (Answer, error)
}

type Registry struct {
	solvers map[string]Solver
}

func NewRegistry(solvers ...Solver) *Registry {
	r := &Registry{solvers: make(map[string]Solver)}
	for _, s := range solvers {
		r.Register(s)
	}
	return r
}

func (r *Registry) Register(s Solver) {
	r.solvers[s.Day()] = s
}

func (r *Registry) Get(day string) (Solver, error) {
	s, ok := r.solvers[day]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownDay, day)
	}
	return s, nil
}

// Days returns the registered days in ascending order.
func (r *Registry) Days() []string {
	days := make([]string, 0, len(r.solvers))
	for day := range r.solvers {
		days = append(days, day)
	}
	slices.Sort(days)
	return days
}

// Run reads the input file, solves both parts and only then prints them, so a
// failing part never leaves partial output behind.
func Run(s Solver, inputFile string, out io.Writer, logger *zerolog.Logger) error {
	answer, err := Solve(s, inputFile, logger)
	if err != nil {
		return err
	}
	Print(out, s.Day(), answer)
	return nil
}

// Solve reads the input file and solves both parts without printing anything.
func Solve(s Solver, inputFile string, logger *zerolog.Logger) (Answer, error) {
	start := time.Now()

	data, err := input.Read(inputFile)
	if err != nil {
		return Answer{}, err
	}
	logger.Debug().Str("day", s.Day()).Str("file", inputFile).Int("bytes", len(data)).Msg("Input file read")

	answer, err := s.Solve(data)
	if err != nil {
		return Answer{}, fmt.Errorf("%s: %w", s.Day(), err)
	}

	logger.Info().Str("day", s.Day()).Dur("elapsed", time.Since(start)).Msg("Puzzle solved")
	return answer, nil
}

func Print(out io.Writer, day string, answer Answer) {
	fmt.Fprintf(out, "AoC 2022, %s, Part1 solution is: %s\n", title(day), answer.Part1)
	fmt.Fprintf(out, "AoC 2022, %s, Part2 solution is: %s\n", title(day), answer.Part2)
}

func title(day string) string {
	if day == "" {
		return day
	}
	return "D" + day[1:]
}
