package sim

import (
	"context"
	"log/slog"
	"time"

	"github.com/pkg/errors"

	"github.com/san-kum/pocketdim/internal/engine"
	"github.com/san-kum/pocketdim/internal/lattice"
	"github.com/san-kum/pocketdim/internal/logging"
)

type Simulator struct {
	stepper   Stepper
	metrics   []Metric
	observers []Observer
	logger    *slog.Logger
}

// New returns a Simulator driving stepper. A nil stepper selects the
// single-goroutine engine.Advance.
func New(stepper Stepper) *Simulator {
	if stepper == nil {
		stepper = StepFunc(engine.Advance)
	}
	return &Simulator{
		stepper:   stepper,
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
		logger:    logging.Discard(),
	}
}

func (s *Simulator) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }

// SetLogger replaces the discard logger. A nil logger is ignored.
func (s *Simulator) SetLogger(l *slog.Logger) {
	if l != nil {
		s.logger = l
	}
}

// Run applies the stepper cfg.Rounds times starting from initial. The
// context is checked between generations only; a cancelled run returns no
// result.
func (s *Simulator) Run(ctx context.Context, initial *lattice.State, cfg Config) (*Result, error) {
	if err := s.validate(initial, cfg); err != nil {
		return nil, err
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	result := &Result{
		Populations: make([]int, 0, cfg.Rounds+1),
		Metrics:     make(map[string]float64),
	}

	start := time.Now()
	s.logger.Info("simulation started",
		"dimension", initial.Dimension(),
		"rounds", cfg.Rounds,
		"active", initial.ActiveCount())

	cur := initial
	s.observe(ctx, 0, cur, result)

	for gen := 1; gen <= cfg.Rounds; gen++ {
		select {
		case <-ctx.Done():
			return nil, errors.Wrapf(ctx.Err(), "stopped before generation %d", gen)
		default:
		}

		next := s.stepper.Advance(cur)

		if cfg.Reference != nil {
			if ref := cfg.Reference.Advance(cur); !ref.Equal(next) {
				return nil, SimError{
					Generation: gen,
					Message:    "engine and reference disagree",
				}
			}
		}

		cur = next
		result.Generations++
		s.observe(ctx, gen, cur, result)
	}

	result.Final = cur
	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	s.logger.Info("simulation finished",
		"generations", result.Generations,
		"active", cur.ActiveCount(),
		"elapsed", time.Since(start))

	return result, nil
}

func (s *Simulator) observe(ctx context.Context, gen int, st *lattice.State, result *Result) {
	result.Populations = append(result.Populations, st.ActiveCount())
	s.logger.Debug("generation", "gen", gen, "active", st.ActiveCount())
	if s.logger.Enabled(ctx, logging.LevelTrace) {
		if b, ok := st.Bounds(); ok {
			s.logger.Log(ctx, logging.LevelTrace, "bounds",
				"gen", gen,
				"min", b.Min.String(),
				"max", b.Max.String(),
				"volume", b.Volume())
		}
	}

	for _, m := range s.metrics {
		m.Observe(gen, st)
	}
	for _, obs := range s.observers {
		obs.OnGeneration(gen, st)
	}
}

func (s *Simulator) validate(initial *lattice.State, cfg Config) error {
	if err := lattice.CheckRounds(cfg.Rounds); err != nil {
		return err
	}
	if initial == nil {
		return errors.Wrap(lattice.ErrConfig, "initial state is nil")
	}
	return nil
}

// Simulate advances initial by rounds generations with the default engine
// and returns the final active count.
func Simulate(initial *lattice.State, rounds int) (int, error) {
	result, err := New(nil).Run(context.Background(), initial, Config{Rounds: rounds})
	if err != nil {
		return 0, err
	}
	return result.ActiveCount(), nil
}
