package lattice

import (
	"strconv"
	"strings"
)

const (
	activeCell   = '#'
	inactiveCell = '.'
)

// ParseGrid reads a rectangular block of '#' (active) and '.' (inactive)
// rows and embeds it into d-dimensional space: column i of row j becomes
// (i, j, 0, ..., 0). One trailing newline and CRLF line endings are
// accepted. Empty text yields the empty state. d must lie in
// [2, MaxDimension]; anything else is an ErrConfig.
func ParseGrid(text string, d int) (*State, error) {
	if err := CheckDimension(d); err != nil {
		return nil, err
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return Empty(d)
	}
	return FromRows(strings.Split(text, "\n"), d)
}

// FromRows is ParseGrid for input already split into rows.
func FromRows(rows []string, d int) (*State, error) {
	if err := CheckDimension(d); err != nil {
		return nil, err
	}

	cells := make(map[Coord]struct{})
	width := -1
	for y, row := range rows {
		if width < 0 {
			width = len(row)
		} else if len(row) != width {
			return nil, &ParseError{Row: y, Col: min(len(row), width), Reason: "row length differs from first row"}
		}
		for x := 0; x < len(row); x++ {
			switch row[x] {
			case activeCell:
				c := Origin(d)
				c.v[0] = int32(x)
				c.v[1] = int32(y)
				cells[c] = struct{}{}
			case inactiveCell:
			default:
				return nil, &ParseError{Row: y, Col: x, Reason: "unexpected character " + strconv.QuoteRune(rune(row[x]))}
			}
		}
	}
	return FromSet(d, cells), nil
}
