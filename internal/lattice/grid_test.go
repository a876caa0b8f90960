package lattice

import (
	"errors"
	"testing"
)

const glider = ".#.\n..#\n###"

func TestParseGrid(t *testing.T) {
	s, err := ParseGrid(glider, 3)
	if err != nil {
		t.Fatalf("ParseGrid failed: %v", err)
	}

	if s.Dimension() != 3 {
		t.Errorf("expected dimension 3, got %d", s.Dimension())
	}
	if s.ActiveCount() != 5 {
		t.Errorf("expected 5 active cells, got %d", s.ActiveCount())
	}

	for _, c := range []Coord{
		MustCoord(1, 0, 0),
		MustCoord(2, 1, 0),
		MustCoord(0, 2, 0),
		MustCoord(1, 2, 0),
		MustCoord(2, 2, 0),
	} {
		if ok, _ := s.IsActive(c); !ok {
			t.Errorf("expected %v active", c)
		}
	}
}

func TestParseGrid_HigherAxesZero(t *testing.T) {
	s, err := ParseGrid(glider, 4)
	if err != nil {
		t.Fatalf("ParseGrid failed: %v", err)
	}
	s.Each(func(c Coord) {
		if c.At(2) != 0 || c.At(3) != 0 {
			t.Errorf("cell %v off the embedding plane", c)
		}
	})
}

func TestParseGrid_LineEndings(t *testing.T) {
	a, err := ParseGrid(glider+"\n", 3)
	if err != nil {
		t.Fatalf("trailing newline rejected: %v", err)
	}
	b, err := ParseGrid(".#.\r\n..#\r\n###\r\n", 3)
	if err != nil {
		t.Fatalf("CRLF rejected: %v", err)
	}
	if !a.Equal(b) {
		t.Error("line ending changed parsed state")
	}
}

func TestParseGrid_Empty(t *testing.T) {
	s, err := ParseGrid("", 3)
	if err != nil {
		t.Fatalf("ParseGrid failed: %v", err)
	}
	if s.ActiveCount() != 0 {
		t.Errorf("expected empty state, got %d cells", s.ActiveCount())
	}
}

func TestParseGrid_Errors(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		dim     int
		target  error
		row     int
		col     int
		checkAt bool
	}{
		{"ragged rows", ".#.\n..\n###", 3, ErrParse, 1, 2, true},
		{"bad character", ".#.\n.x#\n###", 3, ErrParse, 1, 1, true},
		{"blank middle line", ".#.\n\n###", 3, ErrParse, 1, 0, true},
		{"dimension one", glider, 1, ErrConfig, 0, 0, false},
		{"dimension too large", glider, MaxDimension + 1, ErrConfig, 0, 0, false},
		{"bad dimension wins over bad grid", "x", 0, ErrConfig, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseGrid(tt.text, tt.dim)
			if !errors.Is(err, tt.target) {
				t.Fatalf("expected %v, got %v", tt.target, err)
			}
			if !tt.checkAt {
				return
			}
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("expected *ParseError, got %T", err)
			}
			if pe.Row != tt.row || pe.Col != tt.col {
				t.Errorf("error at row %d col %d, want row %d col %d", pe.Row, pe.Col, tt.row, tt.col)
			}
		})
	}
}
