package driver_test

import (
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridwalk/builder"
	"github.com/katalvlaran/gridwalk/driver"
	"github.com/katalvlaran/gridwalk/grid"
	"github.com/katalvlaran/gridwalk/search"
)

var predefined1 = []string{
	"S..3.....E",
	"01.3......",
	"...1......",
	".323..3210",
	"...3......",
	"...3......",
	"...3......",
	"...3123...",
	"...3......",
	"..........",
}

var predefined2 = []string{
	"..........",
	"........E.",
	"...33333..",
	".......3..",
	".......3..",
	".......3..",
	".......3..",
	".......3..",
	"S..33333..",
	"..........",
}

// newSession starts a session on the defaults with a recording logger.
func newSession(t *testing.T, mutate func(*driver.Config)) (*driver.Session, *test.Hook) {
	t.Helper()
	cfg := driver.DefaultConfig()
	cfg.Seed = 1
	if mutate != nil {
		mutate(&cfg)
	}
	log, hook := test.NewNullLogger()
	s, err := driver.NewSession(cfg, log)
	require.NoError(t, err)
	return s, hook
}

// apply runs cmd and fails the test on error.
func apply(t *testing.T, s *driver.Session, cmd driver.Command) driver.Event {
	t.Helper()
	ev, err := s.Apply(cmd)
	require.NoError(t, err, cmd.String())
	assert.Equal(t, cmd, ev.Command)
	return ev
}

// stepToEnd applies Step until the search settles and returns the number of
// events that reported reaching the end.
func stepToEnd(t *testing.T, s *driver.Session) int {
	t.Helper()
	reached := 0
	for i := 0; i < 1000 && !s.Finder().Status().Terminal(); i++ {
		if apply(t, s, driver.Step).Reached {
			reached++
		}
	}
	require.True(t, s.Finder().Status().Terminal())
	return reached
}

func marked(v grid.View) int {
	n := 0
	for y := 0; y < v.Height(); y++ {
		for x := 0; x < v.Width(); x++ {
			if v.CellAt(grid.Coord{X: x, Y: y}).Marked() {
				n++
			}
		}
	}
	return n
}

func TestNewSession_Defaults(t *testing.T) {
	s, hook := newSession(t, nil)

	assert.Equal(t, driver.Dijkstra, s.Algorithm())
	assert.Equal(t, builder.Predefined1, s.Layout())
	assert.Equal(t, "dijkstra", s.Finder().Name())
	assert.Equal(t, search.StatusIdle, s.Finder().Status())

	var msgs []string
	for _, e := range hook.AllEntries() {
		msgs = append(msgs, e.Message)
	}
	assert.Contains(t, msgs, "search created")
	assert.Contains(t, msgs, "session started")
}

func TestNewSession_BadConfig(t *testing.T) {
	cfg := driver.DefaultConfig()
	cfg.Algorithm = "astar"
	log, _ := test.NewNullLogger()
	_, err := driver.NewSession(cfg, log)
	assert.ErrorIs(t, err, driver.ErrBadConfig)
}

func TestApply_StepToCompletion(t *testing.T) {
	for _, alg := range []string{"bfs", "dijkstra", "heuristic"} {
		t.Run(alg, func(t *testing.T) {
			s, hook := newSession(t, func(c *driver.Config) { c.Algorithm = alg })

			assert.Equal(t, 1, stepToEnd(t, s))
			assert.Equal(t, search.StatusCompleted, s.Finder().Status())

			p, ok := s.Finder().Path()
			require.True(t, ok)
			assert.Equal(t, grid.Coord{X: 0, Y: 0}, p.Start)
			assert.Equal(t, grid.Coord{X: 9, Y: 0}, p.End)

			last := hook.LastEntry()
			require.NotNil(t, last)
			assert.Equal(t, logrus.InfoLevel, last.Level)
			assert.True(t, strings.HasPrefix(last.Message, "path (0,0) -> (9,0)"), last.Message)

			visited := s.Finder().Visited()
			ev := apply(t, s, driver.Step)
			assert.False(t, ev.Reached)
			assert.Equal(t, search.StatusCompleted, ev.Status)
			assert.Equal(t, visited, s.Finder().Visited())
		})
	}
}

func TestApply_Reset(t *testing.T) {
	s, _ := newSession(t, nil)
	before := s.Snapshot()

	stepToEnd(t, s)
	require.NotZero(t, marked(s.Finder().Grid()))

	ev := apply(t, s, driver.Reset)
	assert.Equal(t, search.StatusIdle, ev.Status)
	assert.Zero(t, s.Finder().Visited())
	assert.Zero(t, marked(s.Finder().Grid()))
	assert.Equal(t, before, s.Snapshot())
}

func TestApply_SwitchAlgorithm(t *testing.T) {
	s, _ := newSession(t, nil)
	for i := 0; i < 5; i++ {
		apply(t, s, driver.Step)
	}
	old := s.Finder()
	oldMarks := marked(old.Grid())
	require.NotZero(t, oldMarks)

	tests := []struct {
		cmd  driver.Command
		want driver.Algorithm
	}{
		{driver.UseBFS, driver.BFS},
		{driver.UseHeuristic, driver.Heuristic},
		{driver.UseDijkstra, driver.Dijkstra},
	}
	for _, tt := range tests {
		ev := apply(t, s, tt.cmd)
		assert.Equal(t, search.StatusIdle, ev.Status)
		assert.Equal(t, tt.want, s.Algorithm())
		assert.Equal(t, tt.want.String(), s.Finder().Name())
		assert.Zero(t, marked(s.Finder().Grid()), "switching starts from a restored grid")
		assert.Equal(t, predefined1, s.Snapshot().Cells)
		assert.Equal(t, builder.Predefined1, s.Layout())
	}

	// The discarded finder's grid is a separate copy.
	assert.Equal(t, oldMarks, marked(old.Grid()))
}

func TestApply_LoadLayout(t *testing.T) {
	s, _ := newSession(t, func(c *driver.Config) { c.Algorithm = "bfs" })
	stepToEnd(t, s)

	ev := apply(t, s, driver.LoadPredefined2)
	assert.Equal(t, search.StatusIdle, ev.Status)
	assert.Equal(t, builder.Predefined2, s.Layout())
	assert.Equal(t, driver.BFS, s.Algorithm())
	assert.Equal(t, predefined2, s.Snapshot().Cells)

	apply(t, s, driver.LoadPredefined1)
	assert.Equal(t, predefined1, s.Snapshot().Cells)

	apply(t, s, driver.LoadRandom)
	assert.Equal(t, builder.Random, s.Layout())
	snap := s.Snapshot()
	assert.Equal(t, 1, strings.Count(strings.Join(snap.Cells, ""), "S"))
	assert.Equal(t, 1, strings.Count(strings.Join(snap.Cells, ""), "E"))
}

func TestApply_LoadRandomIsSeeded(t *testing.T) {
	a, _ := newSession(t, func(c *driver.Config) { c.Seed = 42 })
	b, _ := newSession(t, func(c *driver.Config) { c.Seed = 42 })

	for i := 0; i < 3; i++ {
		apply(t, a, driver.LoadRandom)
		apply(t, b, driver.LoadRandom)
		assert.Equal(t, a.Snapshot().Cells, b.Snapshot().Cells)
	}
}

func TestApply_Errors(t *testing.T) {
	s, _ := newSession(t, nil)

	_, err := s.Apply(driver.Quit)
	assert.ErrorIs(t, err, driver.ErrQuit)

	_, err = s.Apply(driver.Command(99))
	assert.ErrorIs(t, err, driver.ErrUnknownCommand)

	assert.Equal(t, search.StatusIdle, s.Finder().Status())
}
