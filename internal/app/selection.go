package app

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseSelection parses a 1-based game pick and returns its 0-based index.
// Anything outside [1, count] is rejected, including empty and non-numeric
// input. With count zero every input is rejected.
func ParseSelection(input string, count int) (int, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return 0, fmt.Errorf("empty selection")
	}

	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, fmt.Errorf("selection %q is not a number", trimmed)
	}
	if n < 1 || n > count {
		return 0, fmt.Errorf("selection %d out of range [1, %d]", n, count)
	}
	return n - 1, nil
}
