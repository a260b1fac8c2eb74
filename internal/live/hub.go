package live

import (
	"encoding/json"
	"log/slog"
	"time"

	"Handbook/internal/calc"

	"github.com/gorilla/websocket"
)

// writeWait bounds a single write to the peer.
var writeWait = 10 * time.Second

// hub owns the write side of one connection; gorilla connections allow a
// single concurrent writer.
type hub struct {
	conn    *websocket.Conn
	log     *slog.Logger
	replies chan Reply
	done    chan struct{}
}

func newHub(conn *websocket.Conn, log *slog.Logger) *hub {
	return &hub{
		conn:    conn,
		log:     log,
		replies: make(chan Reply, 16),
		done:    make(chan struct{}),
	}
}

// encode marshals reply, replacing a result that cannot be encoded with an
// error so the client still gets an answer for its id.
func encode(reply Reply) []byte {
	b, err := calc.Encode(reply)
	if err == nil {
		return b
	}
	b, _ = json.Marshal(Reply{Type: reply.Type, ID: reply.ID, Error: err.Error()})
	return b
}

// handleResponse writes replies in order. A failed write closes the
// connection, which ends the read loop, and the remaining replies are dropped.
func (h *hub) handleResponse() {
	defer close(h.done)
	for reply := range h.replies {
		h.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := h.conn.WriteMessage(websocket.TextMessage, encode(reply)); err != nil {
			h.log.Warn("websocket write", "err", err)
			h.conn.Close()
			for range h.replies {
			}
			return
		}
	}
}

// close stops the writer after it has flushed every queued reply.
func (h *hub) close() {
	close(h.replies)
	<-h.done
}
