package driver_test

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridwalk/bfs"
	"github.com/katalvlaran/gridwalk/driver"
	"github.com/katalvlaran/gridwalk/grid"
	"github.com/katalvlaran/gridwalk/search"
)

func TestNewLogger_Level(t *testing.T) {
	cfg := driver.DefaultConfig()
	assert.Equal(t, logrus.InfoLevel, driver.NewLogger(cfg).GetLevel())

	cfg.LogLevel = "debug"
	assert.Equal(t, logrus.DebugLevel, driver.NewLogger(cfg).GetLevel())

	cfg.LogLevel = "nonsense"
	assert.Equal(t, logrus.InfoLevel, driver.NewLogger(cfg).GetLevel())
}

func TestLogHooks_Completed(t *testing.T) {
	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)

	f, err := bfs.New(grid.MustParse("S.E"), driver.LogHooks(log)...)
	require.NoError(t, err)

	created := hook.LastEntry()
	require.NotNil(t, created)
	assert.Equal(t, "search created", created.Message)
	assert.Equal(t, "bfs", created.Data["algorithm"])
	assert.Equal(t, "(0,0)", created.Data["start"])
	assert.Equal(t, "(2,0)", created.Data["end"])

	_, err = search.Run(f, 10)
	require.NoError(t, err)

	var expands int
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.DebugLevel {
			assert.Equal(t, "expand", e.Message)
			assert.Contains(t, e.Data, "cost")
			expands++
		}
	}
	assert.NotZero(t, expands)

	done := hook.LastEntry()
	assert.Equal(t, logrus.InfoLevel, done.Level)
	assert.Equal(t, "path (0,0) -> (2,0): length=2 hops=2 visited=1", done.Message)
	assert.Equal(t, 2, done.Data["length"])
}

func TestLogHooks_Exhausted(t *testing.T) {
	log, hook := test.NewNullLogger()

	f, err := bfs.New(grid.MustParse("S.X\nXXE"), driver.LogHooks(log)...)
	require.NoError(t, err)
	_, err = search.Run(f, 10)
	require.NoError(t, err)

	last := hook.LastEntry()
	require.NotNil(t, last)
	assert.Equal(t, "Completed. Path is not found", last.Message)
	assert.Equal(t, 1, last.Data["visited"])

	for _, e := range hook.AllEntries() {
		assert.NotEqual(t, logrus.DebugLevel, e.Level, "expansions stay below info")
	}
}
