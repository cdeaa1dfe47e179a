package reader_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/distgrid/reader"
)

func TestParseLine(t *testing.T) {
	cases := []struct {
		name    string
		line    string
		strict  bool
		want    []int
		wantErr bool
	}{
		{"Blank", "", false, []int{}, false},
		{"Spaces", "   \t ", false, []int{}, false},
		{"Plain", "1 2 3", false, []int{1, 2, 3}, false},
		{"ExtraSpaces", "  10   20 ", false, []int{10, 20}, false},
		{"LeadingZeros", "007", false, []int{7}, false},
		{"TrailingLetters", "12abc", false, []int{12}, false},
		{"Signed", "-3 +4", false, []int{-3, 4}, false},
		{"NoDigits", "abc", false, nil, true},
		{"SignOnly", "-", false, nil, true},
		{"DigitNotLeading", "a1", false, nil, true},
		{"OneBadToken", "1 x 2", false, nil, true},
		{"Overflow", "99999999999999999999999", false, nil, true},
		{"StrictPlain", "4 5", true, []int{4, 5}, false},
		{"StrictTrailingLetters", "12abc", true, nil, true},
		{"StrictSigned", "-3", true, nil, true},
		{"StrictOverflow", "99999999999999999999999", true, nil, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := reader.ParseLine(tc.line, tc.strict)
			if tc.wantErr {
				require.ErrorIs(t, err, reader.ErrParse)
				require.Nil(t, got)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}
