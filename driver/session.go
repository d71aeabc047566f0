package driver

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridwalk/builder"
	"github.com/katalvlaran/gridwalk/grid"
	"github.com/katalvlaran/gridwalk/search"
)

// Event reports the outcome of one applied Command. Reached is true only for
// the Step that reached the end cell.
type Event struct {
	Command Command
	Reached bool
	Status  search.Status
}

// Session owns the active path finder and the grid it searches.
type Session struct {
	finder    search.PathFinder
	grid      *grid.Grid
	algorithm Algorithm
	layout    builder.Layout
	rng       *rand.Rand
	opts      []search.Option
	log       logrus.FieldLogger
}

// NewSession builds the configured layout and algorithm. The finder is wired
// with LogHooks(log) followed by extra.
func NewSession(cfg Config, log logrus.FieldLogger, extra ...search.Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	alg, _ := ParseAlgorithm(cfg.Algorithm)
	layout, _ := builder.ParseLayout(cfg.Layout)

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s := &Session{
		algorithm: alg,
		layout:    layout,
		rng:       rand.New(rand.NewSource(seed)),
		log:       log,
	}
	s.opts = append(LogHooks(log), extra...)

	g, err := builder.Build(layout, builder.WithRand(s.rng))
	if err != nil {
		return nil, fmt.Errorf("driver: build %v: %w", layout, err)
	}
	f, err := newFinder(alg, g, s.opts)
	if err != nil {
		return nil, err
	}
	s.finder, s.grid = f, g
	log.WithFields(logrus.Fields{"algorithm": alg, "layout": layout, "seed": seed}).Info("session started")

	return s, nil
}

// Apply executes cmd against the session.
//
// Step is a no-op once the search settled. Use* commands keep the grid and
// restart the search with another algorithm. Load* commands keep the
// algorithm and restart it over a newly built grid. Quit returns ErrQuit.
func (s *Session) Apply(cmd Command) (Event, error) {
	ev := Event{Command: cmd}
	var err error

	switch cmd {
	case Step:
		if !s.finder.Status().Terminal() {
			ev.Reached, err = s.finder.Step()
		}
	case Reset:
		s.finder.Reset()
	case UseBFS:
		err = s.use(BFS)
	case UseDijkstra:
		err = s.use(Dijkstra)
	case UseHeuristic:
		err = s.use(Heuristic)
	case LoadPredefined1:
		err = s.load(builder.Predefined1)
	case LoadPredefined2:
		err = s.load(builder.Predefined2)
	case LoadRandom:
		err = s.load(builder.Random)
	case Quit:
		err = ErrQuit
	default:
		err = fmt.Errorf("%v: %w", cmd, ErrUnknownCommand)
	}

	ev.Status = s.finder.Status()
	return ev, err
}

// use swaps in a fresh finder for a over a clone of the current grid.
func (s *Session) use(a Algorithm) error {
	g := s.grid.Clone()
	f, err := newFinder(a, g, s.opts)
	if err != nil {
		return err
	}
	s.finder, s.grid, s.algorithm = f, g, a

	return nil
}

// load rebuilds the active finder over a new grid for layout.
func (s *Session) load(layout builder.Layout) error {
	g, err := builder.Build(layout, builder.WithRand(s.rng))
	if err != nil {
		s.log.WithError(err).WithField("layout", layout).Warn("layout build failed")
		return fmt.Errorf("driver: build %v: %w", layout, err)
	}
	if err := s.finder.ResetWith(g); err != nil {
		return err
	}
	s.grid, s.layout = g, layout

	return nil
}

// Finder returns the active path finder.
func (s *Session) Finder() search.PathFinder { return s.finder }

// Algorithm returns the active algorithm.
func (s *Session) Algorithm() Algorithm { return s.algorithm }

// Layout returns the layout the current grid was built from.
func (s *Session) Layout() builder.Layout { return s.layout }
