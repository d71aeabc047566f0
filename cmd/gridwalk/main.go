// Command gridwalk opens a window that visualizes the path finders step by
// step.
//
// Keys:
//
//	s  step (hold to repeat)
//	r  reset the current search
//	b  breadth-first search
//	d  Dijkstra
//	h  heuristic best-first search
//	1  first predefined layout
//	2  second predefined layout
//	-  random layout
//	q  quit
package main

import (
	"errors"
	"flag"

	"github.com/hajimehoshi/ebiten"
	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridwalk/driver"
	"github.com/katalvlaran/gridwalk/render"
)

const title = "Graph pathfinding visualization"

func main() {
	path := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	cfg, err := driver.LoadConfig(*path)
	if err != nil {
		log.Fatalln(err)
	}
	logger := driver.NewLogger(cfg)

	s, err := driver.NewSession(cfg, logger)
	if err != nil {
		logger.Fatalln(err)
	}
	w := newWindow(s, cfg.Autostep, logger)

	err = ebiten.Run(w.update, render.Width, render.Height, 1, title)
	if err != nil && !errors.Is(err, driver.ErrQuit) {
		logger.Fatalln(err)
	}
}
