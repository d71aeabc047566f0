// Command gridwalk-serve exposes gridwalk sessions over websockets.
//
// Each client connecting to GET /stream gets its own session and drives it
// with JSON commands such as {"command":"step"}.
package main

import (
	"flag"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridwalk/driver"
)

func main() {
	path := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	cfg, err := driver.LoadConfig(*path)
	if err != nil {
		log.Fatalln(err)
	}
	logger := driver.NewLogger(cfg)

	s := newServer(cfg, logger)
	logger.Infof("listening on %s", cfg.Listen)
	logger.Fatalln(http.ListenAndServe(cfg.Listen, s.router))
}
