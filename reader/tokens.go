package reader

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ParseLine splits line on whitespace and converts every fragment to an int.
// A blank line yields an empty, non-nil slice.
//
// Every fragment must contain at least one ASCII digit. In lenient mode the
// fragment's leading integer (optional sign, then digits) is used, so "12ab"
// reads as 12; a fragment with digits but no leading integer ("a1") is still
// rejected. In strict mode the whole fragment must be an unsigned decimal
// integer. All failures wrap ErrParse.
func ParseLine(line string, strict bool) ([]int, error) {
	fields := strings.Fields(line)
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		if !strings.ContainsAny(f, "0123456789") {
			return nil, fmt.Errorf("%w: %q is not an integer", ErrParse, f)
		}
		num := f
		if strict {
			if strings.TrimLeft(f, "0123456789") != "" {
				return nil, fmt.Errorf("%w: %q is not an unsigned integer", ErrParse, f)
			}
		} else {
			num = leadingInt(f)
			if num == "" {
				return nil, fmt.Errorf("%w: %q does not start with an integer", ErrParse, f)
			}
		}
		v, err := strconv.Atoi(num)
		if err != nil {
			if errors.Is(err, strconv.ErrRange) {
				return nil, fmt.Errorf("%w: %q is out of range", ErrParse, f)
			}
			return nil, fmt.Errorf("%w: %q: %v", ErrParse, f, err)
		}
		out = append(out, v)
	}

	return out, nil
}

// leadingInt returns the longest prefix of s of the form [+-]?[0-9]+,
// or "" if there is none.
func leadingInt(s string) string {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	j := i
	for j < len(s) && s[j] >= '0' && s[j] <= '9' {
		j++
	}
	if j == i {
		return ""
	}
	return s[:j]
}
