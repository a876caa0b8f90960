package metrics

import (
	"github.com/san-kum/pocketdim/internal/lattice"
)

type PeakPopulation struct {
	name string
	peak int
}

func NewPeakPopulation() *PeakPopulation {
	return &PeakPopulation{name: "peak_population"}
}

func (p *PeakPopulation) Name() string { return p.name }

func (p *PeakPopulation) Observe(gen int, s *lattice.State) {
	p.peak = max(p.peak, s.ActiveCount())
}

func (p *PeakPopulation) Value() float64 { return float64(p.peak) }

func (p *PeakPopulation) Reset() { p.peak = 0 }

type MeanPopulation struct {
	name    string
	total   int
	samples int
}

func NewMeanPopulation() *MeanPopulation {
	return &MeanPopulation{name: "mean_population"}
}

func (m *MeanPopulation) Name() string { return m.name }

func (m *MeanPopulation) Observe(gen int, s *lattice.State) {
	m.total += s.ActiveCount()
	m.samples++
}

func (m *MeanPopulation) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return float64(m.total) / float64(m.samples)
}

func (m *MeanPopulation) Reset() {
	m.total = 0
	m.samples = 0
}

// Growth is the ratio of the last observed population to the first.
// It is 0 when the first population was empty.
type Growth struct {
	name    string
	initial int
	current int
	samples int
}

func NewGrowth() *Growth {
	return &Growth{name: "growth"}
}

func (g *Growth) Name() string { return g.name }

func (g *Growth) Observe(gen int, s *lattice.State) {
	if g.samples == 0 {
		g.initial = s.ActiveCount()
	}
	g.current = s.ActiveCount()
	g.samples++
}

func (g *Growth) Value() float64 {
	if g.initial == 0 {
		return 0
	}
	return float64(g.current) / float64(g.initial)
}

func (g *Growth) Reset() {
	g.initial = 0
	g.current = 0
	g.samples = 0
}
