package aoc2022day06

import (
	"strconv"
	"strings"

	"github.com/toatesONS/advent-of-code/internal/puzzle"
)

const (
	PacketMarkerLength  = 4
	MessageMarkerLength = 14
)

const noMarker = "no marker found"

// FindMarker returns the 1-indexed position of the last character of the
// first window of nrCharacters pairwise distinct characters. The second
// result is false when no such window exists. Positions count runes, not bytes.
func FindMarker(stream string, nrCharacters int) (int, bool) {
	chars := []rune(stream)
	if nrCharacters <= 0 || len(chars) < nrCharacters {
		return 0, false
	}

	seen := make(map[rune]int)
	for i, c := range chars {
		seen[c]++
		if i >= nrCharacters {
			out := chars[i-nrCharacters]
			seen[out]--
			if seen[out] == 0 {
				delete(seen, out)
			}
		}
		if len(seen) == nrCharacters {
			return i + 1, true
		}
	}
	return 0, false
}

func trimStream(input string) string {
	return strings.TrimRight(input, "\r\n")
}

func Part1(input string) (int, bool) {
	return FindMarker(trimStream(input), PacketMarkerLength)
}

func Part2(input string) (int, bool) {
	return FindMarker(trimStream(input), MessageMarkerLength)
}

type Solver struct {
	PacketLength  int
	MessageLength int
}

func NewSolver() Solver {
	return Solver{PacketLength: PacketMarkerLength, MessageLength: MessageMarkerLength}
}

func (Solver) Day() string {
	return "day06"
}

func (s Solver) Solve(input string) (puzzle.Answer, error) {
	stream := trimStream(input)
	return puzzle.Answer{
		Part1: formatMarker(FindMarker(stream, s.PacketLength)),
		Part2: formatMarker(FindMarker(stream, s.MessageLength)),
	}, nil
}

func formatMarker(position int, found bool) string {
	if !found {
		return noMarker
	}
	return strconv.Itoa(position)
}
