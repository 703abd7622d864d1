package web

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"github.com/tomz197/invaders/internal/effect"
	"github.com/tomz197/invaders/internal/input"
	"github.com/tomz197/invaders/internal/loop"
)

const (
	writeWait    = 5 * time.Second
	maxMessage   = 1 << 10
	closeMessage = "game over"
)

// clientMessage is what the page sends: key transitions, the on-screen fire
// button, focus loss, and a request for the next frame.
type clientMessage struct {
	Type string `json:"type"`
	Code int    `json:"code,omitempty"`
}

// frameMessage carries one tick's commands to the page.
type frameMessage struct {
	Status   string           `json:"status"`
	Commands []effect.Command `json:"commands"`
}

// frameRequests is a FrameScheduler fed by the page's animation-frame callback.
// Requests that arrive while a frame is pending are coalesced.
type frameRequests struct {
	ch  chan struct{}
	now func() time.Time
}

func newFrameRequests() *frameRequests {
	return &frameRequests{ch: make(chan struct{}, 1), now: time.Now}
}

func (f *frameRequests) request() {
	select {
	case f.ch <- struct{}{}:
	default:
	}
}

// Next waits for the page to ask for a frame.
func (f *frameRequests) Next(ctx context.Context) (time.Time, error) {
	select {
	case <-ctx.Done():
		return time.Time{}, ctx.Err()
	case <-f.ch:
		return f.now(), nil
	}
}

// readPump turns page messages into input and frame requests until the socket fails.
func readPump(ws *websocket.Conn, in *input.Adapter, frames *frameRequests) error {
	ws.SetReadLimit(maxMessage)
	for {
		_, payload, err := ws.ReadMessage()
		if err != nil {
			return err
		}
		var msg clientMessage
		if err := json.Unmarshal(payload, &msg); err != nil {
			continue
		}
		switch strings.ToLower(msg.Type) {
		case "keydown":
			in.KeyDown(msg.Code)
		case "keyup":
			in.KeyUp(msg.Code)
		case "fire":
			in.FireButton()
		case "blur":
			in.Release()
		case "frame":
			frames.request()
		}
	}
}

// presenter writes each frame to the socket. Only the session goroutine writes.
type presenter struct {
	ws   *websocket.Conn
	sess *loop.Session
}

func (p *presenter) Present(cmds []effect.Command) error {
	if cmds == nil {
		cmds = []effect.Command{}
	}
	_ = p.ws.SetWriteDeadline(time.Now().Add(writeWait))
	return p.ws.WriteJSON(frameMessage{
		Status:   p.sess.Status().String(),
		Commands: cmds,
	})
}
