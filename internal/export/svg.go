package export

import (
	"fmt"
	"io"
	"strings"
)

// Chart dimensions and stroke used by PopulationSVG when zero values are passed.
const (
	DefaultWidth  = 640
	DefaultHeight = 320
	DefaultStroke = "#00ff00"
)

// PopulationSVG draws a population series as a polyline, one vertex per
// generation. Series shorter than two points produce an empty string.
func PopulationSVG(populations []int, width, height int, stroke string) string {
	if len(populations) < 2 {
		return ""
	}
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	if stroke == "" {
		stroke = DefaultStroke
	}

	minY, maxY := populations[0], populations[0]
	for _, p := range populations {
		if p < minY {
			minY = p
		}
		if p > maxY {
			maxY = p
		}
	}

	lo := float64(minY)
	rangeY := float64(maxY - minY)
	if rangeY == 0 {
		rangeY = 1
	}
	// 10% headroom above and below
	lo -= rangeY * 0.1
	rangeY *= 1.2
	rangeX := float64(len(populations) - 1)

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, stroke)

	for i, p := range populations {
		x := float64(i) / rangeX * float64(width)
		y := float64(height) - (float64(p)-lo)/rangeY*float64(height)
		if i == 0 {
			fmt.Fprintf(&sb, "%.1f,%.1f", x, y)
		} else {
			fmt.Fprintf(&sb, " L%.1f,%.1f", x, y)
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}

// WritePopulationSVG writes PopulationSVG output with the default size and stroke.
func WritePopulationSVG(w io.Writer, populations []int) error {
	svg := PopulationSVG(populations, 0, 0, "")
	if svg == "" {
		return fmt.Errorf("[WritePopulationSVG] need at least 2 generations, got %d", len(populations))
	}
	_, err := io.WriteString(w, svg+"\n")
	return err
}
