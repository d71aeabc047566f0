package stream

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridwalk/driver"
)

const writeWait = time.Second

// Handler upgrades HTTP requests to websocket sessions.
type Handler struct {
	cfg      driver.Config
	log      logrus.FieldLogger
	upgrader *websocket.Upgrader
}

var _ http.Handler = (*Handler)(nil)

// NewHandler returns a handler that starts every connection from cfg.
func NewHandler(cfg driver.Config, log logrus.FieldLogger) *Handler {
	return &Handler{cfg: cfg, log: log, upgrader: &websocket.Upgrader{}}
}

// ServeHTTP upgrades the connection and runs its session until the client
// disconnects or sends "quit".
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log := h.log.WithField("remote", r.RemoteAddr)
	ws, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already replied with an HTTP error.
		log.WithError(err).Warn("websocket upgrade failed")
		return
	}
	defer ws.Close()

	s, err := driver.NewSession(h.cfg, log)
	if err != nil {
		log.WithError(err).Error("session start failed")
		_ = send(ws, ServerMessage{Error: err.Error()})
		return
	}
	log.Info("connection open")
	newConn(ws, s, h.cfg.Autostep, log).loop()
	log.Info("connection closed")
}

// conn runs one session. Only the loop goroutine touches the session and
// writes to the socket; readLoop only reads.
type conn struct {
	ws       *websocket.Conn
	session  *driver.Session
	autostep int
	log      logrus.FieldLogger
	commands chan ClientMessage
	done     chan struct{}
}

func newConn(ws *websocket.Conn, s *driver.Session, autostep int, log logrus.FieldLogger) *conn {
	return &conn{
		ws:       ws,
		session:  s,
		autostep: autostep,
		log:      log,
		commands: make(chan ClientMessage),
		done:     make(chan struct{}),
	}
}

func (c *conn) loop() {
	defer close(c.done)
	go c.readLoop()

	var tick <-chan time.Time
	if c.autostep > 0 {
		t := time.NewTicker(time.Second / time.Duration(c.autostep))
		defer t.Stop()
		tick = t.C
	}

	if err := c.push(ServerMessage{}); err != nil {
		return
	}
	for {
		select {
		case msg, ok := <-c.commands:
			if !ok {
				return
			}
			if quit := c.handle(msg); quit {
				_ = c.ws.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, "quit"),
					time.Now().Add(writeWait))
				return
			}
		case <-tick:
			if c.session.Finder().Status().Terminal() {
				continue
			}
			ev, err := c.session.Apply(driver.Step)
			out := ServerMessage{Reached: ev.Reached}
			if err != nil {
				out.Error = err.Error()
			}
			if err := c.push(out); err != nil {
				return
			}
		}
	}
}

// handle applies one client command and reports whether the client quit.
func (c *conn) handle(msg ClientMessage) bool {
	out := ServerMessage{Event: msg.Command}
	cmd, err := driver.ParseCommand(msg.Command)
	if err == nil {
		var ev driver.Event
		ev, err = c.session.Apply(cmd)
		out.Reached = ev.Reached
	}
	quit := errors.Is(err, driver.ErrQuit)
	if err != nil && !quit {
		c.log.WithError(err).WithField("command", msg.Command).Warn("command rejected")
		out.Error = err.Error()
	}
	if err := c.push(out); err != nil {
		return true
	}

	return quit
}

// push attaches the current snapshot to out and writes it.
func (c *conn) push(out ServerMessage) error {
	snap := c.session.Snapshot()
	out.Snapshot = &snap
	if err := send(c.ws, out); err != nil {
		c.log.WithError(err).Warn("write failed")
		return err
	}

	return nil
}

func send(ws *websocket.Conn, out ServerMessage) error {
	if err := ws.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return ws.WriteJSON(out)
}

// readLoop decodes client frames into c.commands until the socket fails.
// Undecodable frames are answered through the loop as unknown commands.
func (c *conn) readLoop() {
	defer close(c.commands)
	for {
		_, r, err := c.ws.NextReader()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				c.log.WithError(err).Warn("read failed")
			}
			return
		}
		var msg ClientMessage
		if err := json.NewDecoder(r).Decode(&msg); err != nil {
			c.log.WithError(err).Warn("cannot decode client message")
			msg = ClientMessage{}
		}
		select {
		case c.commands <- msg:
		case <-c.done:
			return
		}
	}
}
