package aoc2022day02

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/toatesONS/advent-of-code/internal/puzzle"
)

const example = `A Y
B X
C Z
`

func TestWinningAndLosingMoves(t *testing.T) {
	for _, o := range []Move{Rock, Paper, Scissors} {
		if w := WinningMove(o); !Beats(w, o) {
			t.Errorf("WinningMove(%v) = %v; does not beat %v", o, w, o)
		}
		if l := LosingMove(o); !Beats(o, l) {
			t.Errorf("LosingMove(%v) = %v; does not lose to %v", o, l, o)
		}
		if f := FriendlyMove(o, Draw); f != o {
			t.Errorf("FriendlyMove(%v, Draw) = %v; want %v", o, f, o)
		}
		if f := FriendlyMove(o, Win); OutcomeOf(o, f) != Win {
			t.Errorf("FriendlyMove(%v, Win) = %v; does not win", o, f)
		}
		if f := FriendlyMove(o, Lose); OutcomeOf(o, f) != Lose {
			t.Errorf("FriendlyMove(%v, Lose) = %v; does not lose", o, f)
		}
	}
}

func TestBeatsCycle(t *testing.T) {
	assert.True(t, Beats(Rock, Scissors))
	assert.True(t, Beats(Scissors, Paper))
	assert.True(t, Beats(Paper, Rock))
	assert.False(t, Beats(Rock, Paper))
	assert.False(t, Beats(Rock, Rock))
}

func TestScoreRange(t *testing.T) {
	for _, o := range []Move{Rock, Paper, Scissors} {
		for _, f := range []Move{Rock, Paper, Scissors} {
			s := Score(o, f)
			if s < 1 || s > 9 {
				t.Errorf("Score(%v, %v) = %d; want value in [1, 9]", o, f, s)
			}
		}
	}
}

func TestScore(t *testing.T) {
	testCases := []struct {
		name     string
		line     string
		alphabet Alphabet
		expected int
	}{
		{name: "move mode rock vs paper", line: "A Y", alphabet: MoveAlphabet, expected: 8},
		{name: "move mode paper vs rock", line: "B X", alphabet: MoveAlphabet, expected: 1},
		{name: "move mode draw", line: "C Z", alphabet: MoveAlphabet, expected: 6},
		{name: "outcome mode draw", line: "A Y", alphabet: OutcomeAlphabet, expected: 4},
		{name: "outcome mode lose to paper", line: "B X", alphabet: OutcomeAlphabet, expected: 1},
		{name: "outcome mode win against scissors", line: "C Z", alphabet: OutcomeAlphabet, expected: 7},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rounds, err := ParseRounds(tc.line, tc.alphabet)
			require.NoError(t, err)
			require.Len(t, rounds, 1)
			if got := rounds[0].Score(); got != tc.expected {
				t.Errorf("Score(%q) = %d; want %d", tc.line, got, tc.expected)
			}
		})
	}
}

func TestParts(t *testing.T) {
	part1, err := Part1(example)
	require.NoError(t, err)
	assert.Equal(t, 15, part1)

	part2, err := Part2(example)
	require.NoError(t, err)
	assert.Equal(t, 12, part2)
}

func TestParseRoundsErrors(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "single token", input: "A Y\nB\n", wantErr: ErrMalformedLine},
		{name: "empty input", input: "", wantErr: ErrMalformedLine},
		{name: "whitespace only", input: " \n\n\t\n", wantErr: ErrMalformedLine},
		{name: "too many tokens", input: "A Y Z", wantErr: ErrMalformedLine},
		{name: "unknown opponent", input: "D Y", wantErr: ErrUnknownSymbol},
		{name: "unknown friendly", input: "A W", wantErr: ErrUnknownSymbol},
		{name: "swapped alphabets", input: "X A", wantErr: ErrUnknownSymbol},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseRounds(tc.input, MoveAlphabet)
			assert.ErrorIs(t, err, tc.wantErr)

			_, err = ParseRounds(tc.input, OutcomeAlphabet)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestSolver(t *testing.T) {
	answer, err := Solver{}.Solve(example)
	require.NoError(t, err)
	assert.Equal(t, "15", answer.Part1)
	assert.Equal(t, "12", answer.Part2)

	_, err = Solver{}.Solve("A Q")
	assert.ErrorIs(t, err, ErrUnknownSymbol)

	answer, err = Solver{}.Solve("\n")
	assert.ErrorIs(t, err, ErrMalformedLine)
	assert.Equal(t, puzzle.Answer{}, answer)
}
