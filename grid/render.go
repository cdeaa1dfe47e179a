package grid

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// String renders the grid as text: one line per row, cells separated by a
// single space, and every column left-aligned and padded to the width of its
// widest value. The last column is padded to its width but gets no separator.
// Rows are joined by "\n" with no trailing newline.
//
// Example (3×2):
//
//	33  4
//	304 206
//	10  33
//
// Complexity: O(R×C) time and memory.
func (g *Grid[T]) String() string {
	cells := make([]string, len(g.values))
	widths := make([]int, g.cols)
	for i, v := range g.values {
		s := fmt.Sprint(v)
		cells[i] = s
		if w := utf8.RuneCountInString(s); w > widths[i%g.cols] {
			widths[i%g.cols] = w
		}
	}

	var sb strings.Builder
	for y := 0; y < g.rows; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < g.cols; x++ {
			s := cells[y*g.cols+x]
			sb.WriteString(s)
			pad := widths[x] - utf8.RuneCountInString(s)
			if x < g.cols-1 {
				pad++ // separator
			}
			sb.WriteString(strings.Repeat(" ", pad))
		}
	}

	return sb.String()
}
