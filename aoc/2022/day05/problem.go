package aoc2022day05

import (
	"errors"
	"fmt"
	"strings"

	"github.com/toatesONS/advent-of-code/internal/puzzle"
	"github.com/toatesONS/advent-of-code/utils"
)

const columnWidth = 4

var (
	ErrMalformedDiagram     = errors.New("malformed crate diagram")
	ErrMalformedInstruction = errors.New("malformed instruction")
)

type Instruction struct {
	Count int
	From  int
	To    int
}

func (i Instruction) String() string {
	return fmt.Sprintf("move %d from %d to %d", i.Count, i.From, i.To)
}

// Mover selects how a crane moves several crates at once.
type Mover int

const (
	// SingleCrate moves crates one at a time, reversing the moved block.
	SingleCrate Mover = iota
	// Bulk moves the block in one go, keeping its order.
	Bulk
)

func (m Mover) String() string {
	switch m {
	case SingleCrate:
		return "CrateMover 9000"
	case Bulk:
		return "CrateMover 9001"
	}
	return fmt.Sprintf("Mover(%d)", int(m))
}

// Parse splits the input into the crate diagram and the instruction list.
func Parse(input string) (*Yard, []Instruction, error) {
	input = strings.ReplaceAll(input, "\r\n", "\n")
	diagram, instructions, found := strings.Cut(input, "\n\n")
	if !found {
		return nil, nil, fmt.Errorf("%w: missing blank line between diagram and instructions", ErrMalformedDiagram)
	}

	yard, err := ParseDiagram(diagram)
	if err != nil {
		return nil, nil, err
	}

	var parsed []Instruction
	for n, line := range utils.Lines(instructions) {
		ins, err := ParseInstruction(line)
		if err != nil {
			return nil, nil, fmt.Errorf("instruction %d: %w", n+1, err)
		}
		parsed = append(parsed, ins)
	}
	return yard, parsed, nil
}

// ParseDiagram reads the fixed-width diagram. The last row holds the stack
// indices; the rows above it are read bottom-up so every stack is built
// bottom-to-top. Blank slots are skipped.
func ParseDiagram(diagram string) (*Yard, error) {
	rows := strings.Split(strings.TrimRight(diagram, "\n"), "\n")
	if strings.TrimSpace(rows[len(rows)-1]) == "" {
		return nil, fmt.Errorf("%w: missing stack index row", ErrMalformedDiagram)
	}

	labels := splitRow(rows[len(rows)-1])
	indices := make([]int, len(labels))
	yard := NewYard()
	for i, label := range labels {
		index, err := utils.ToInt(label)
		if err != nil {
			return nil, fmt.Errorf("%w: stack index column %d: %w", ErrMalformedDiagram, i+1, err)
		}
		if _, err := yard.Stack(index); err == nil {
			return nil, fmt.Errorf("%w: duplicate stack index %d", ErrMalformedDiagram, index)
		}
		indices[i] = index
		yard.Add(index, NewStack())
	}

	for r := len(rows) - 2; r >= 0; r-- {
		slots := splitRow(rows[r])
		if len(slots) > len(indices) {
			return nil, fmt.Errorf("%w: row %d has %d columns, expected at most %d", ErrMalformedDiagram, r+1, len(slots), len(indices))
		}
		for i, slot := range slots {
			if slot == "" {
				continue
			}
			if len(slot) != 1 {
				return nil, fmt.Errorf("%w: row %d column %d: invalid crate %q", ErrMalformedDiagram, r+1, i+1, slot)
			}
			stack, _ := yard.Stack(indices[i])
			stack.Push(slot[0])
		}
	}
	return yard, nil
}

// splitRow cuts a diagram row into its 4-character columns and strips the
// brackets and padding around each label.
func splitRow(row string) []string {
	var slots []string
	row = strings.TrimRight(row, " ")
	for i := 0; i < len(row); i += columnWidth {
		slot := row[i:min(i+columnWidth, len(row))]
		slot = strings.TrimSpace(slot)
		slot = strings.TrimPrefix(slot, "[")
		slot = strings.TrimSuffix(slot, "]")
		slots = append(slots, slot)
	}
	return slots
}

// ParseInstruction reads a "move N from A to B" line as keyword/number pairs.
func ParseInstruction(line string) (Instruction, error) {
	fields := strings.Fields(line)
	if len(fields) != 6 {
		return Instruction{}, fmt.Errorf("%w: expected 6 tokens, got %d in %q", ErrMalformedInstruction, len(fields), line)
	}

	values := make(map[string]int, 3)
	for i := 0; i < len(fields); i += 2 {
		keyword := fields[i]
		if keyword != "move" && keyword != "from" && keyword != "to" {
			return Instruction{}, fmt.Errorf("%w: unknown keyword %q in %q", ErrMalformedInstruction, keyword, line)
		}
		if _, seen := values[keyword]; seen {
			return Instruction{}, fmt.Errorf("%w: repeated keyword %q in %q", ErrMalformedInstruction, keyword, line)
		}
		n, err := utils.ToInt(fields[i+1])
		if err != nil {
			return Instruction{}, fmt.Errorf("%w: %w", ErrMalformedInstruction, err)
		}
		values[keyword] = n
	}

	if values["move"] < 0 {
		return Instruction{}, fmt.Errorf("%w: negative crate count in %q", ErrMalformedInstruction, line)
	}
	return Instruction{Count: values["move"], From: values["from"], To: values["to"]}, nil
}

// Apply runs one instruction. The yard is left untouched when the instruction
// is invalid.
func (y *Yard) Apply(ins Instruction, mover Mover) error {
	from, err := y.Stack(ins.From)
	if err != nil {
		return fmt.Errorf("%v: %w", ins, err)
	}
	to, err := y.Stack(ins.To)
	if err != nil {
		return fmt.Errorf("%v: %w", ins, err)
	}
	if ins.Count > from.Len() {
		return fmt.Errorf("%v: %w: want %d, have %d", ins, ErrEmptyStack, ins.Count, from.Len())
	}

	switch mover {
	case SingleCrate:
		for range ins.Count {
			crate, err := from.Pop()
			if err != nil {
				return fmt.Errorf("%v: %w", ins, err)
			}
			to.Push(crate)
		}
	case Bulk:
		block, err := from.PopN(ins.Count)
		if err != nil {
			return fmt.Errorf("%v: %w", ins, err)
		}
		to.PushN(block)
	default:
		return fmt.Errorf("unsupported mover %v", mover)
	}
	return nil
}

func (y *Yard) ApplyAll(instructions []Instruction, mover Mover) error {
	for n, ins := range instructions {
		if err := y.Apply(ins, mover); err != nil {
			return fmt.Errorf("instruction %d: %w", n+1, err)
		}
	}
	return nil
}

func rearrange(input string, mover Mover) (string, error) {
	yard, instructions, err := Parse(input)
	if err != nil {
		return "", err
	}
	if err := yard.ApplyAll(instructions, mover); err != nil {
		return "", err
	}
	return yard.Tops()
}

func Part1(input string) (string, error) {
	return rearrange(input, SingleCrate)
}

func Part2(input string) (string, error) {
	return rearrange(input, Bulk)
}

type Solver struct{}

func (Solver) Day() string {
	return "day05"
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
	return puzzle.Answer{Part1: part1, Part2: part2}, nil
}
