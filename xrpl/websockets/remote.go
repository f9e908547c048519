// Package websockets is a websocket client for rippled servers.
package websockets

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/aqrl/xrpl-toolkit/log"
	"github.com/aqrl/xrpl-toolkit/xrpl/models"
	"github.com/gorilla/websocket"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Time allowed to connect to server.
	dialTimeout = 5 * time.Second

	incomingBuffer = 1000
)

// ErrClosed is returned for requests on a closed or broken connection
var ErrClosed = errors.New("Connection Closed")

var counter uint64

type callResult struct {
	resp *models.Response
	err  error
}

type call struct {
	id   uint64
	msg  []byte
	done chan callResult
}

func (c *call) finish(resp *models.Response, err error) {
	c.done <- callResult{resp: resp, err: err}
}

// Remote is a session with one server. Stream messages (ledger closes,
// transactions) are delivered raw on Incoming and dropped when it is full.
type Remote struct {
	Incoming chan json.RawMessage

	endpoint  string
	outgoing  chan *call
	quit      chan struct{}
	done      chan struct{}
	closeOnce sync.Once
	ws        *websocket.Conn
}

// NewRemote returns a new remote session connected to the specified
// server endpoint URI. To close the connection, use Close().
func NewRemote(endpoint string) (*Remote, error) {
	return Dial(context.Background(), endpoint)
}

// Dial is NewRemote with a context bounding the connection handshake
func Dial(ctx context.Context, endpoint string) (*Remote, error) {
	dialer := &websocket.Dialer{
		Proxy:            http.ProxyFromEnvironment,
		HandshakeTimeout: dialTimeout,
	}
	ws, _, err := dialer.DialContext(ctx, endpoint, nil)
	if err != nil {
		return nil, err
	}
	log.Debug("connected to remote", "endpoint", endpoint)
	r := &Remote{
		Incoming: make(chan json.RawMessage, incomingBuffer),
		endpoint: endpoint,
		outgoing: make(chan *call),
		quit:     make(chan struct{}),
		done:     make(chan struct{}),
		ws:       ws,
	}

	go r.run()
	return r, nil
}

// URL returns the server endpoint
func (r *Remote) URL() string {
	return r.endpoint
}

// Close shuts down the Remote session and blocks until all internal
// goroutines have been cleaned up.
// Any commands that are pending a response will return with an error.
func (r *Remote) Close() {
	r.closeOnce.Do(func() {
		close(r.quit)
	})

	// Drain the Incoming channel and block until it is closed,
	// indicating that this Remote is fully cleaned up.
	for range r.Incoming {
	}
	<-r.done
}

// Request sends req and waits for its response
func (r *Remote) Request(ctx context.Context, req models.Request) (*models.Response, error) {
	id := atomic.AddUint64(&counter, 1)
	msg, err := encodeCommand(id, req)
	if err != nil {
		return nil, err
	}
	c := &call{id: id, msg: msg, done: make(chan callResult, 1)}

	select {
	case r.outgoing <- c:
	case <-r.done:
		return nil, ErrClosed
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	select {
	case res := <-c.done:
		return res.resp, res.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// run spawns the read/write pumps and then runs until Close() is called.
func (r *Remote) run() {
	outbound := make(chan []byte)
	inbound := make(chan []byte)
	writerDone := make(chan struct{})
	pending := make(map[uint64]*call)

	defer func() {
		close(outbound) // Shuts down the writePump
		close(r.Incoming)

		// Cancel all pending commands with an error
		for _, c := range pending {
			c.finish(nil, ErrClosed)
		}

		// Drain the inbound channel and block until it is closed,
		// indicating that the readPump has returned.
		for range inbound {
		}
		close(r.done)
	}()

	// Spawn read/write goroutines
	go func() {
		defer close(writerDone)
		defer r.ws.Close()
		r.writePump(outbound)
	}()
	go func() {
		defer close(inbound)
		r.readPump(inbound)
	}()

	// Main run loop
	for {
		select {
		case <-r.quit:
			return

		case c := <-r.outgoing:
			select {
			case outbound <- c.msg:
				pending[c.id] = c
			case <-writerDone:
				c.finish(nil, ErrClosed)
				return
			}

		case in, ok := <-inbound:
			if !ok {
				log.Warn("Connection closed by server", "endpoint", r.endpoint)
				return
			}
			r.dispatch(in, pending)
		}
	}
}

func (r *Remote) dispatch(in []byte, pending map[uint64]*call) {
	var header struct {
		ID   *uint64             `json:"id"`
		Type models.ResponseType `json:"type"`
	}
	if err := json.Unmarshal(in, &header); err != nil {
		log.Error("Unparsable message", "endpoint", r.endpoint, "err", err)
		return
	}

	// Stream message
	if header.Type != "" && header.Type != models.TypeResponse {
		select {
		case r.Incoming <- json.RawMessage(in):
		default:
			log.Warn("Incoming stream is full, dropping message", "type", header.Type)
		}
		return
	}

	// Command response message
	if header.ID == nil {
		log.Error("Unexpected message without id", "message", string(in))
		return
	}
	c, ok := pending[*header.ID]
	if !ok {
		log.Error("Unexpected message", "id", *header.ID)
		return
	}
	delete(pending, *header.ID)
	c.finish(models.ParseWebsocketResponse(in))
}

// readPump reads from the websocket and sends to inbound channel.
// Expects to receive PONGs at specified interval, or logs an error and returns.
func (r *Remote) readPump(inbound chan<- []byte) {
	_ = r.ws.SetReadDeadline(time.Now().Add(pongWait))
	r.ws.SetPongHandler(func(string) error { return r.ws.SetReadDeadline(time.Now().Add(pongWait)) })
	for {
		_, message, err := r.ws.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				log.Debug("websocket read stopped", "endpoint", r.endpoint, "err", err)
			}
			return
		}
		if log.IsDebugEnabled() {
			log.Debugln(dump(message))
		}
		_ = r.ws.SetReadDeadline(time.Now().Add(pongWait))
		inbound <- message
	}
}

// Consumes from the outbound channel and sends them over the websocket.
// Also sends PING messages at the specified interval.
// Returns when outbound channel is closed, or an error is encountered.
func (r *Remote) writePump(outbound <-chan []byte) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {

		// An outbound message is available to send
		case message, ok := <-outbound:
			_ = r.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = r.ws.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}
			if log.IsDebugEnabled() {
				log.Debugln(dump(message))
			}
			if err := r.ws.WriteMessage(websocket.TextMessage, message); err != nil {
				log.Error("websocket write failed", "endpoint", r.endpoint, "err", err)
				return
			}

		// Time to send a ping
		case <-ticker.C:
			_ = r.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := r.ws.WriteMessage(websocket.PingMessage, []byte{}); err != nil {
				log.Error("websocket ping failed", "endpoint", r.endpoint, "err", err)
				return
			}
		}
	}
}

// encodeCommand merges the request parameters with the command name and id
func encodeCommand(id uint64, req models.Request) ([]byte, error) {
	params, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}
	fields := make(map[string]json.RawMessage)
	if err := json.Unmarshal(params, &fields); err != nil {
		return nil, err
	}
	fields["id"], _ = json.Marshal(id)
	fields["command"], _ = json.Marshal(req.Method())
	return json.Marshal(fields)
}

func dump(b []byte) string {
	var v map[string]interface{}
	_ = json.Unmarshal(b, &v)
	out, _ := json.MarshalIndent(v, "", "  ")
	return string(out)
}
