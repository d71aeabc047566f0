package driver

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridwalk/grid"
	"github.com/katalvlaran/gridwalk/search"
)

// NewLogger returns a text logger on stderr at cfg.LogLevel.
// An unparsable level falls back to info.
func NewLogger(cfg Config) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	return log
}

// LogHooks returns search options that report finder events to log.
// Expansions are logged at debug level, everything else at info.
func LogHooks(log logrus.FieldLogger) []search.Option {
	return []search.Option{
		search.WithOnCreate(func(name string, start, end grid.Coord) {
			log.WithFields(logrus.Fields{
				"algorithm": name,
				"start":     start.String(),
				"end":       end.String(),
			}).Info("search created")
		}),
		search.WithOnExpand(func(c grid.Coord, cost int) {
			log.WithFields(logrus.Fields{"x": c.X, "y": c.Y, "cost": cost}).Debug("expand")
		}),
		search.WithOnComplete(func(p search.Path) {
			log.WithFields(logrus.Fields{
				"length":  p.Length,
				"hops":    p.Hops(),
				"visited": p.Visited,
			}).Info(p.String())
		}),
		search.WithOnExhausted(func(visited int) {
			log.WithField("visited", visited).Info("Completed. Path is not found")
		}),
	}
}
