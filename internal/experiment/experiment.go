package experiment

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/san-kum/pocketdim/internal/engine"
	"github.com/san-kum/pocketdim/internal/lattice"
	"github.com/san-kum/pocketdim/internal/sim"
)

type Config struct {
	Grid      string
	Dimension int
	Rounds    int
	Workers   int
	Engine    string
	// Verify checks every generation against the dense evaluator.
	Verify bool
}

type Experiment struct {
	cfg       Config
	initial   *lattice.State
	simulator *sim.Simulator
}

func New(cfg Config) *Experiment {
	if cfg.Engine == "" {
		cfg.Engine = DefaultEngine
	}
	return &Experiment{cfg: cfg}
}

// Setup parses the grid and wires the engine and metrics. Configuration
// errors surface here, before any generation is computed.
func (e *Experiment) Setup(registry *Registry, logger *slog.Logger) error {
	if err := lattice.CheckRounds(e.cfg.Rounds); err != nil {
		return err
	}

	initial, err := lattice.ParseGrid(e.cfg.Grid, e.cfg.Dimension)
	if err != nil {
		return err
	}

	stepper, err := registry.GetEngine(e.cfg.Engine, e.cfg.Workers)
	if err != nil {
		return err
	}

	e.initial = initial
	e.simulator = sim.New(stepper)
	e.simulator.SetLogger(logger)
	for _, m := range registry.DefaultMetrics() {
		e.simulator.AddMetric(m)
	}
	return nil
}

func (e *Experiment) Run(ctx context.Context) (*sim.Result, error) {
	if e.simulator == nil {
		return nil, fmt.Errorf("experiment not setup")
	}

	cfg := sim.Config{Rounds: e.cfg.Rounds}
	if e.cfg.Verify {
		cfg.Reference = sim.StepFunc(engine.AdvanceDense)
	}

	return e.simulator.Run(ctx, e.initial, cfg)
}

// Initial returns the parsed generation-zero state.
func (e *Experiment) Initial() *lattice.State {
	return e.initial
}
