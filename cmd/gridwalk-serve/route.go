package main

import (
	"encoding/json"
	"net/http"

	"github.com/matryer/way"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridwalk/builder"
	"github.com/katalvlaran/gridwalk/driver"
	"github.com/katalvlaran/gridwalk/grid"
	"github.com/katalvlaran/gridwalk/stream"
)

const (
	uriStream = "/stream"
	uriLayout = "/layouts/:name"
)

type server struct {
	router *way.Router
	stream *stream.Handler
	log    logrus.FieldLogger
}

func newServer(cfg driver.Config, log logrus.FieldLogger) *server {
	s := &server{stream: stream.NewHandler(cfg, log), log: log}
	s.routes()
	return s
}

func (s *server) routes() {
	s.router = way.NewRouter()
	s.router.Handle("GET", uriStream, s.stream)
	s.router.HandleFunc("GET", uriLayout, s.handleLayout())
}

// handleLayout returns the cells of a predefined layout in layout symbols.
// Random layouts are only produced inside a session.
func (s *server) handleLayout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		layout, err := builder.ParseLayout(way.Param(r.Context(), "name"))
		if err != nil || layout == builder.Random {
			http.NotFound(w, r)
			return
		}
		g, err := builder.Build(layout)
		if err != nil {
			s.log.WithError(err).Error("layout build failed")
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		rows := make([]string, g.Height())
		for i := range rows {
			row := make([]byte, g.Width())
			for x := range row {
				row[x] = g.CellAt(grid.Coord{X: x, Y: i}).LayoutSymbol()
			}
			rows[i] = string(row)
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(rows); err != nil {
			s.log.WithError(err).Warn("layout write failed")
		}
	}
}
