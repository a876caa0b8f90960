package export

import (
	"bytes"
	"strings"
	"testing"
)

func TestPopulationSVG(t *testing.T) {
	svg := PopulationSVG([]int{5, 11, 21, 38}, 100, 50, "#fff")
	if !strings.HasPrefix(svg, "<?xml") {
		t.Fatalf("missing xml header: %q", svg)
	}
	if !strings.Contains(svg, `width="100" height="50"`) {
		t.Error("size not applied")
	}
	if !strings.Contains(svg, `stroke="#fff"`) {
		t.Error("stroke not applied")
	}
	if got := strings.Count(svg, " L"); got != 3 {
		t.Errorf("expected 3 line segments, got %d", got)
	}
	if !strings.HasSuffix(svg, "</svg>") {
		t.Error("svg not closed")
	}
}

func TestPopulationSVGDefaults(t *testing.T) {
	svg := PopulationSVG([]int{5, 5}, 0, 0, "")
	if !strings.Contains(svg, `width="640" height="320"`) {
		t.Error("default size not applied")
	}
	if !strings.Contains(svg, DefaultStroke) {
		t.Error("default stroke not applied")
	}
}

func TestPopulationSVGTooShort(t *testing.T) {
	if svg := PopulationSVG([]int{5}, 10, 10, ""); svg != "" {
		t.Errorf("expected empty output, got %q", svg)
	}
	var buf bytes.Buffer
	if err := WritePopulationSVG(&buf, nil); err == nil {
		t.Error("expected error for empty series")
	}
}

func TestWritePopulationSVG(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePopulationSVG(&buf, []int{1, 2, 3}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "<path") {
		t.Error("missing path element")
	}
}
