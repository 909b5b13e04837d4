package console

import (
	"strconv"
	"strings"

	"github.com/go-faster/errors"
)

// Input parse errors. These are recovered locally by re-prompting and are
// never surfaced as failures.
var (
	ErrNotANumber  = errors.New("input is not a number")
	ErrNotPositive = errors.New("quantity must be a positive number")
)

// ParseChoice parses a line as a bare non-negative integer. Leading and
// trailing whitespace is tolerated; any other character makes the input
// invalid, including signs.
func ParseChoice(s string) (int, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return 0, ErrNotANumber
	}
	for _, r := range t {
		if r < '0' || r > '9' {
			return 0, ErrNotANumber
		}
	}
	n, err := strconv.Atoi(t)
	if err != nil {
		return 0, ErrNotANumber
	}
	return n, nil
}

// ParseQuantity parses a line as a strictly positive integer.
func ParseQuantity(s string) (int, error) {
	n, err := ParseChoice(s)
	if err != nil {
		return 0, err
	}
	if n < 1 {
		return 0, ErrNotPositive
	}
	return n, nil
}

// ProductID normalizes a line into an uppercase single-letter product key.
// The second return is false when the trimmed input is not exactly one
// ASCII letter.
func ProductID(s string) (string, bool) {
	t := strings.TrimSpace(s)
	if len(t) != 1 {
		return "", false
	}
	c := t[0]
	switch {
	case 'a' <= c && c <= 'z':
		c -= 'a' - 'A'
	case 'A' <= c && c <= 'Z':
	default:
		return "", false
	}
	return string(c), true
}

// IsYes reports whether the line is a confirmation. Only a leading 'Y' or
// 'y' counts; anything else, including an empty line, means no.
func IsYes(s string) bool {
	t := strings.TrimSpace(s)
	if t == "" {
		return false
	}
	return t[0] == 'Y' || t[0] == 'y'
}
