package parse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/viant/aoc/spatial"
	"golang.org/x/exp/constraints"
)

var intExpr = regexp.MustCompile(`-?\d+`)

// Lines splits text into lines, CRLF endings and a single trailing newline are dropped
func Lines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

// Blocks splits text into groups of lines separated by blank lines
func Blocks(text string) [][]string {
	var result [][]string
	var block []string
	for _, line := range Lines(text) {
		if strings.TrimSpace(line) == "" {
			if len(block) > 0 {
				result = append(result, block)
				block = nil
			}
			continue
		}
		block = append(block, line)
	}
	if len(block) > 0 {
		result = append(result, block)
	}
	return result
}

// Ints extracts every signed decimal integer from text.
// A '-' is treated as a sign only when it directly precedes a digit and
// does not follow one, so "3-4" yields 3 and 4.
func Ints[T constraints.Integer](text string) []T {
	locations := intExpr.FindAllStringIndex(text, -1)
	result := make([]T, 0, len(locations))
	for _, loc := range locations {
		literal := text[loc[0]:loc[1]]
		if literal[0] == '-' && loc[0] > 0 && isDigit(text[loc[0]-1]) {
			literal = literal[1:]
		}
		value, err := strconv.ParseInt(literal, 10, 64)
		if err != nil {
			unsigned, uErr := strconv.ParseUint(literal, 10, 64)
			if uErr != nil {
				continue
			}
			result = append(result, T(unsigned))
			continue
		}
		result = append(result, T(value))
	}
	return result
}

// Int parses a single decimal integer, surrounding whitespace is ignored
func Int[T constraints.Integer](text string) (T, error) {
	value, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse integer %q: %w", text, err)
	}
	return T(value), nil
}

// MustInt is Int that panics on malformed input
func MustInt[T constraints.Integer](text string) T {
	value, err := Int[T](text)
	if err != nil {
		panic(err)
	}
	return value
}

// Fields splits text on any of the separator characters; fields are trimmed and empty ones dropped
func Fields(text string, separators string) []string {
	var result []string
	for _, field := range strings.FieldsFunc(text, func(r rune) bool {
		return strings.ContainsRune(separators, r)
	}) {
		if field = strings.TrimSpace(field); field != "" {
			result = append(result, field)
		}
	}
	return result
}

// Grid parses text into a byte grid
func Grid(text string) *spatial.Grid[byte] {
	return spatial.ByteGrid(Lines(text))
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
