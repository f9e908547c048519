// Package jsonrpc is an http json-rpc client for rippled servers.
package jsonrpc

import (
	"context"
	"fmt"

	"github.com/aqrl/xrpl-toolkit/log"
	"github.com/aqrl/xrpl-toolkit/rpc/client"
	"github.com/aqrl/xrpl-toolkit/xrpl/models"
)

// RequestBody is the json-rpc envelope rippled expects
type RequestBody struct {
	Method string        `json:"method"`
	Params []interface{} `json:"params"`
}

// Client sends requests to one json-rpc endpoint
type Client struct {
	url     string
	timeout int
}

// NewClient returns a client for url, timeout is in seconds (0 for the default)
func NewClient(url string, timeout int) *Client {
	return &Client{url: url, timeout: timeout}
}

// URL returns the server endpoint
func (c *Client) URL() string {
	return c.url
}

// Request implements models.Client
func (c *Client) Request(ctx context.Context, req models.Request) (*models.Response, error) {
	body := &RequestBody{
		Method: req.Method(),
		Params: []interface{}{req},
	}
	resp, err := client.HTTPPost(ctx, c.url, body, nil, nil, c.timeout)
	if err != nil {
		return nil, fmt.Errorf("%v request error: %w", req.Method(), err)
	}
	data, err := client.ReadBody(resp)
	if err != nil {
		return nil, fmt.Errorf("%v request error: %w", req.Method(), err)
	}
	log.Trace("json-rpc response", "url", c.url, "method", req.Method(), "body", string(data))
	return models.ParseJSONRPCResponse(data)
}
