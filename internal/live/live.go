// Package live evaluates calculators over a WebSocket so a page can
// recompute on every keystroke.
package live

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"Handbook/internal/calc"
	"Handbook/internal/middleware"

	"github.com/gorilla/websocket"
)

// Message is a request from the client. Type names a registered calculator.
type Message struct {
	Type    string          `json:"type"`
	ID      string          `json:"id"`
	Payload json.RawMessage `json:"payload"`
}

type Reply struct {
	Type   string `json:"type"`
	ID     string `json:"id"`
	Result any    `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
}

type Server struct {
	upgrader websocket.Upgrader
	reg      calc.Registry
	log      *slog.Logger
}

// NewServer accepts connections whose Origin passes checkOrigin; nil allows
// any origin.
func NewServer(reg calc.Registry, log *slog.Logger, checkOrigin func(*http.Request) bool) *Server {
	if checkOrigin == nil {
		checkOrigin = func(*http.Request) bool { return true }
	}
	return &Server{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     checkOrigin,
		},
		reg: reg,
		log: log,
	}
}

// Handle evaluates one message. It never fails: errors travel in the reply.
func (s *Server) Handle(msg Message) Reply {
	reply := Reply{Type: msg.Type, ID: msg.ID}
	res, err := s.reg.Eval(msg.Type, msg.Payload)
	switch {
	case err == nil:
		reply.Result = res
	case errors.Is(err, calc.ErrInvalidInput), errors.Is(err, calc.ErrNotFound):
		reply.Error = err.Error()
	default:
		reply.Error = "Calculation error"
	}
	return reply
}

func (s *Server) ServeWs(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("websocket upgrade", "request_id", middleware.RequestID(r.Context()), "err", err)
		return
	}
	defer conn.Close()

	h := newHub(conn, s.log)
	go h.handleResponse()
	defer h.close()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.log.Warn("websocket read", "request_id", middleware.RequestID(r.Context()), "err", err)
			}
			return
		}
		var msg Message
		if err := json.Unmarshal(data, &msg); err != nil {
			h.replies <- Reply{Type: "error", Error: "Invalid message"}
			continue
		}
		h.replies <- s.Handle(msg)
	}
}
