package aoc2022day02

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/toatesONS/advent-of-code/internal/puzzle"
	"github.com/toatesONS/advent-of-code/utils"
)

var (
	ErrMalformedLine = errors.New("malformed round")
	ErrUnknownSymbol = errors.New("unknown symbol")
)

type Move int

const (
	Rock Move = iota + 1
	Paper
	Scissors
)

func (m Move) String() string {
	switch m {
	case Rock:
		return "Rock"
	case Paper:
		return "Paper"
	case Scissors:
		return "Scissors"
	}
	return fmt.Sprintf("Move(%d)", int(m))
}

// Score is the shape score of the move.
func (m Move) Score() int {
	return int(m)
}

type Outcome int

const (
	Lose Outcome = iota
	Draw
	Win
)

func (o Outcome) String() string {
	switch o {
	case Lose:
		return "Lose"
	case Draw:
		return "Draw"
	case Win:
		return "Win"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

func (o Outcome) Score() int {
	return int(o) * 3
}

// Alphabet selects how the second column of a round is read.
type Alphabet int

const (
	MoveAlphabet Alphabet = iota
	OutcomeAlphabet
)

type Round struct {
	Opponent Move
	Friendly Move
}

func (r Round) Score() int {
	return Score(r.Opponent, r.Friendly)
}

func DecodeOpponent(token string) (Move, error) {
	switch token {
	case "A":
		return Rock, nil
	case "B":
		return Paper, nil
	case "C":
		return Scissors, nil
	}
	return 0, fmt.Errorf("%w: opponent move %q", ErrUnknownSymbol, token)
}

func DecodeMove(token string) (Move, error) {
	switch token {
	case "X":
		return Rock, nil
	case "Y":
		return Paper, nil
	case "Z":
		return Scissors, nil
	}
	return 0, fmt.Errorf("%w: friendly move %q", ErrUnknownSymbol, token)
}

func DecodeOutcome(token string) (Outcome, error) {
	switch token {
	case "X":
		return Lose, nil
	case "Y":
		return Draw, nil
	case "Z":
		return Win, nil
	}
	return 0, fmt.Errorf("%w: outcome %q", ErrUnknownSymbol, token)
}

// WinningMove returns the move that beats m: the next move in Rock -> Paper -> Scissors -> Rock.
func WinningMove(m Move) Move {
	return Move(int(m)%3 + 1)
}

// LosingMove returns the move that loses to m.
func LosingMove(m Move) Move {
	return Move((int(m)+1)%3 + 1)
}

func Beats(a, b Move) bool {
	return WinningMove(b) == a
}

func FriendlyMove(opponent Move, desired Outcome) Move {
	switch desired {
	case Lose:
		return LosingMove(opponent)
	case Win:
		return WinningMove(opponent)
	}
	return opponent
}

func OutcomeOf(opponent, friendly Move) Outcome {
	if opponent == friendly {
		return Draw
	}
	if Beats(friendly, opponent) {
		return Win
	}
	return Lose
}

func Score(opponent, friendly Move) int {
	return friendly.Score() + OutcomeOf(opponent, friendly).Score()
}

func ParseRounds(input string, alphabet Alphabet) ([]Round, error) {
	lines := utils.Lines(input)
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: input holds no rounds", ErrMalformedLine)
	}
	rounds := make([]Round, 0, len(lines))

	for i, line := range lines {
		round, err := parseRound(line, alphabet)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		rounds = append(rounds, round)
	}
	return rounds, nil
}

func parseRound(line string, alphabet Alphabet) (Round, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return Round{}, fmt.Errorf("%w: expected 2 tokens, got %d in %q", ErrMalformedLine, len(fields), line)
	}

	opponent, err := DecodeOpponent(fields[0])
	if err != nil {
		return Round{}, err
	}

	switch alphabet {
	case MoveAlphabet:
		friendly, err := DecodeMove(fields[1])
		if err != nil {
			return Round{}, err
		}
		return Round{Opponent: opponent, Friendly: friendly}, nil
	case OutcomeAlphabet:
		desired, err := DecodeOutcome(fields[1])
		if err != nil {
			return Round{}, err
		}
		return Round{Opponent: opponent, Friendly: FriendlyMove(opponent, desired)}, nil
	}
	return Round{}, fmt.Errorf("unsupported alphabet %d", alphabet)
}

func totalScore(input string, alphabet Alphabet) (int, error) {
	rounds, err := ParseRounds(input, alphabet)
	if err != nil {
		return 0, err
	}

	total := 0
	for _, round := range rounds {
		total += round.Score()
	}
	return total, nil
}

func Part1(input string) (int, error) {
	return totalScore(input, MoveAlphabet)
}

func Part2(input string) (int, error) {
	return totalScore(input, OutcomeAlphabet)
}

type Solver struct{}

func (Solver) Day() string {
	return "day02"
}

func (Solver) Solve(input string) (puzzle.Answer, error) {
	part1, err := Part1(input)
	if err != nil {
		return puzzle.Answer{}, fmt.Errorf("part 1: %w", err)
	}
	part2, err := Part2(input)
	if err != nil {
		return puzzle.Answer{}, fmt.Errorf("part 2: %w", err)
	}
	return puzzle.Answer{Part1: strconv.Itoa(part1), Part2: strconv.Itoa(part2)}, nil
}
