package sim_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/pocketdim/internal/engine"
	"github.com/san-kum/pocketdim/internal/lattice"
	"github.com/san-kum/pocketdim/internal/sim"
)

const glider = ".#.\n..#\n###"

func parse(text string, d int) *lattice.State {
	s, err := lattice.ParseGrid(text, d)
	Expect(err).NotTo(HaveOccurred())
	return s
}

var _ = Describe("Simulation properties", func() {
	DescribeTable("reference scenarios",
		func(d, rounds, expected int) {
			count, err := sim.Simulate(parse(glider, d), rounds)
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(Equal(expected))
		},
		Entry("three dimensions", 3, 6, 112),
		Entry("four dimensions", 4, 6, 848),
	)

	DescribeTable("zero rounds return the initial population",
		func(grid string, d int) {
			s := parse(grid, d)
			count, err := sim.Simulate(s, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(Equal(s.ActiveCount()))
		},
		Entry("glider in 3-D", glider, 3),
		Entry("block in 4-D", "##\n##", 4),
		Entry("empty grid", "", 5),
	)

	It("keeps the empty state fixed in every dimension", func() {
		for d := 2; d <= 6; d++ {
			empty, err := lattice.Empty(d)
			Expect(err).NotTo(HaveOccurred())

			next := engine.Advance(empty)
			Expect(next.Equal(empty)).To(BeTrue(), "dimension %d", d)

			count, err := sim.Simulate(empty, 10)
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(BeZero())
		}
	})

	It("is deterministic across distinct but equal inputs", func() {
		a := parse(glider, 4)
		b := parse(glider, 4)
		Expect(a).NotTo(BeIdenticalTo(b))

		Expect(engine.Advance(a).Cells()).To(Equal(engine.Advance(b).Cells()))
		Expect(engine.New(engine.WithMinChunk(1)).Advance(a).Cells()).To(Equal(engine.Advance(b).Cells()))
	})

	It("matches the dense reference every generation", func() {
		for d := 2; d <= 4; d++ {
			cfg := sim.Config{Rounds: 4, Reference: sim.StepFunc(engine.AdvanceDense)}
			_, err := sim.New(engine.New()).Run(context.Background(), parse(glider, d), cfg)
			Expect(err).NotTo(HaveOccurred(), "dimension %d", d)
		}
	})

	Describe("malformed input", func() {
		It("rejects ragged rows", func() {
			_, err := lattice.ParseGrid(".#.\n.#\n###", 3)
			Expect(err).To(MatchError(lattice.ErrParse))
		})

		It("rejects dimension one", func() {
			_, err := lattice.ParseGrid(glider, 1)
			Expect(err).To(MatchError(lattice.ErrConfig))
		})

		It("rejects negative rounds", func() {
			_, err := sim.Simulate(parse(glider, 3), -1)
			Expect(err).To(MatchError(lattice.ErrConfig))
		})
	})
})
