package input

import (
	"fmt"
	"os"
)

// Read returns the whole content of the puzzle input file.
func Read(path string) (string, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("unable to read the input file %s: %w", path, err)
	}

	return string(bytes), nil
}
