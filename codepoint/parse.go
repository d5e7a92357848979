package codepoint

import "fmt"
import "errors"
import "strconv"
import "strings"
import "unicode"
import "unicode/utf8"

import "golang.org/x/text/unicode/rangetable"

// Wrapped by all the errors returned when parsing scalar values,
// ranges or category lists.
var ErrRangeParse = errors.New("unicode range parse error")

func rangeErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrRangeParse, fmt.Sprintf(format, args...))
}

// Parses a scalar value written in hexadecimal with a "0x" or "U+"
// prefix (case insensitive), like "0x41" or "U+1F600".
func ParseScalar(str string) (rune, error) {
	trimmed := strings.TrimSpace(str)
	var digits string
	switch {
	case len(trimmed) > 2 && (trimmed[:2] == "0x" || trimmed[:2] == "0X"):
		digits = trimmed[2:]
	case len(trimmed) > 2 && (trimmed[:2] == "U+" || trimmed[:2] == "u+"):
		digits = trimmed[2:]
	default:
		return 0, rangeErrorf("expected '0x' or 'U+' prefixed hex value, got '%s'", str)
	}
	if digits[0] == '+' || digits[0] == '-' {
		return 0, rangeErrorf("invalid hex value '%s'", str)
	}

	value, err := strconv.ParseUint(digits, 16, 32)
	if err != nil { return 0, rangeErrorf("invalid hex value '%s'", str) }
	codePoint := rune(value)
	if value > uint64(MaxCodePoint) || !utf8.ValidRune(codePoint) {
		return 0, rangeErrorf("'%s' is not a unicode scalar value", str)
	}
	return codePoint, nil
}

// Parses an inclusive range written as "START..END", where START and
// END are scalar values as accepted by [ParseScalar]().
func ParseRange(str string) (RangeSelector, error) {
	start, end, found := strings.Cut(str, "..")
	if !found {
		return RangeSelector{}, rangeErrorf("expected 'START..END', got '%s'", str)
	}

	var selector RangeSelector
	var err error
	selector.Start, err = ParseScalar(start)
	if err != nil { return RangeSelector{}, err }
	selector.End, err = ParseScalar(end)
	if err != nil { return RangeSelector{}, err }
	return selector, selector.Validate()
}

// Parses a comma separated list of Unicode general categories ("Lo",
// "S", ...) and properties ("Other_Alphabetic", ...) into a table
// selector that keeps the code points in any of them.
func ParseCategories(list string) (TableSelector, error) {
	var tables []*unicode.RangeTable
	for _, name := range strings.Split(list, ",") {
		name = strings.TrimSpace(name)
		if name == "" { continue }
		table, found := unicode.Categories[name]
		if !found { table, found = unicode.Properties[name] }
		if !found {
			return TableSelector{}, rangeErrorf("unknown unicode category or property '%s'", name)
		}
		tables = append(tables, table)
	}
	if len(tables) == 0 {
		return TableSelector{}, rangeErrorf("empty category list")
	}
	return TableSelector{ Table: rangetable.Merge(tables...) }, nil
}
