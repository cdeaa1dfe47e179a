package grid

import "strconv"

// Color is a bitmap cell value.
type Color uint8

const (
	// Low is the background colour (0).
	Low Color = 0
	// High is the target colour (1); distances are measured to it.
	High Color = 1
)

// Valid reports whether c is Low or High.
func (c Color) Valid() bool {
	return c == Low || c == High
}

// String renders the colour as its integer value.
func (c Color) String() string {
	return strconv.Itoa(int(c))
}

// Bitmap is a Grid restricted to the {Low, High} colour domain.
type Bitmap = Grid[Color]

const methodNewBitmap = "NewBitmap"

// NewBitmap builds a Bitmap, applying New's shape checks first.
// Returns ErrInvalidArgument naming the first value outside {Low, High}.
// Complexity: O(R×C).
func NewBitmap(rows, cols int, values []Color) (*Bitmap, error) {
	b, err := build(methodNewBitmap, rows, cols, values)
	if err != nil {
		return nil, err
	}
	for i, v := range values {
		if !v.Valid() {
			return nil, gridErrorf(methodNewBitmap, "'%d' at %v is not a valid bitmap color", v, b.Coordinate(i))
		}
	}

	return b, nil
}

// BitmapFactory converts parsed integers into a Bitmap. It matches the
// reader.Factory signature and is what the command-line tool feeds the
// stream reader. Any integer other than 0 or 1 is rejected with
// ErrInvalidArgument.
func BitmapFactory(rows, cols int, values []int) (*Bitmap, error) {
	if _, err := build(methodNewBitmap, rows, cols, values); err != nil {
		return nil, err
	}
	colors := make([]Color, len(values))
	for i, v := range values {
		if v != int(Low) && v != int(High) {
			return nil, gridErrorf(methodNewBitmap, "'%d' at (%d,%d) is not a valid bitmap color", v, i%cols, i/cols)
		}
		colors[i] = Color(v)
	}

	return NewBitmap(rows, cols, colors)
}

// IntFactory is the default reader factory: a plain numeric Grid[int].
func IntFactory(rows, cols int, values []int) (*Grid[int], error) {
	return New(rows, cols, values)
}
