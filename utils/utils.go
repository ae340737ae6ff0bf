package utils

import (
	"fmt"
	"strconv"
	"strings"
)

func ToInt(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("unable to convert %q to a number: %w", s, err)
	}

	return n, nil
}

// Lines splits the input into lines after trimming trailing whitespace.
// An empty input yields no lines.
func Lines(input string) []string {
	trimmed := strings.TrimRight(input, " \t\r\n")
	if trimmed == "" {
		return nil
	}

	lines := strings.Split(trimmed, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, "\r")
	}
	return lines
}
