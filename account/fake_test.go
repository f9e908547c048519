package account

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"

	"github.com/aqrl/xrpl-toolkit/xrpl/models"
)

const genesisSeed = "snoPBrXtMeMyMHUVTgbuqAfg1SUTb"

var errTransport = errors.New("transport broken")

// fakeConn answers requests from a method table
type fakeConn struct {
	mu       sync.Mutex
	url      string
	answers  map[string]string
	fail     bool
	requests []models.Request
	closed   int
}

func (c *fakeConn) URL() string { return c.url }

func (c *fakeConn) Request(ctx context.Context, req models.Request) (*models.Response, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.requests = append(c.requests, req)
	if c.fail {
		return nil, errTransport
	}
	answer, ok := c.answers[req.Method()]
	if !ok {
		answer = `{"error":"unknownCmd","error_code":32,"error_message":"Unknown method.","status":"error"}`
	}
	status := models.StatusSuccess
	if strings.Contains(answer, `"status":"error"`) {
		status = models.StatusError
	}
	return &models.Response{Status: status, Result: json.RawMessage(answer)}, nil
}

func (c *fakeConn) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed++
}

func (c *fakeConn) dialer() Dialer {
	return func(ctx context.Context, url string) (Conn, error) {
		c.url = url
		return c, nil
	}
}

func (c *fakeConn) lastRequest() models.Request {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.requests) == 0 {
		return nil
	}
	return c.requests[len(c.requests)-1]
}
