package models

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
)

// ResponseStatus is the status field of a ledger response
type ResponseStatus string

// response statuses
const (
	StatusSuccess ResponseStatus = "success"
	StatusError   ResponseStatus = "error"
)

// ResponseType is the type field of a websocket message
type ResponseType string

// message types
const (
	TypeResponse    ResponseType = "response"
	TypeLedger      ResponseType = "ledgerClosed"
	TypeTransaction ResponseType = "transaction"
)

// errors
var (
	ErrNoResult      = errors.New("response has no result")
	ErrInvalidStatus = errors.New("response has unknown status")
)

// Warning is a server warning attached to a response
type Warning struct {
	ID      int    `json:"id"`
	Message string `json:"message"`
}

// Response is a ledger response, Result is kept as the raw json the server sent
type Response struct {
	Status   ResponseStatus  `json:"status"`
	Result   json.RawMessage `json:"result"`
	ID       interface{}     `json:"id,omitempty"`
	Type     ResponseType    `json:"type,omitempty"`
	Warnings []Warning       `json:"warnings,omitempty"`
}

// IsSuccessful is true if the server reported success
func (r *Response) IsSuccessful() bool {
	return r != nil && r.Status == StatusSuccess
}

// Get returns the value at a gjson path of the result
func (r *Response) Get(path string) gjson.Result {
	if r == nil {
		return gjson.Result{}
	}
	return gjson.GetBytes(r.Result, path)
}

// Decode unmarshals the result into v
func (r *Response) Decode(v interface{}) error {
	if r == nil || len(r.Result) == 0 {
		return ErrNoResult
	}
	return json.Unmarshal(r.Result, v)
}

// Err describes a ledger-level error, nil for successful responses
func (r *Response) Err() error {
	if r.IsSuccessful() {
		return nil
	}
	return &LedgerError{
		Name:    r.Get("error").String(),
		Code:    int(r.Get("error_code").Int()),
		Message: r.Get("error_message").String(),
	}
}

// LedgerError is the error a server reports in an error response
type LedgerError struct {
	Name    string `json:"error"`
	Code    int    `json:"error_code"`
	Message string `json:"error_message"`
}

func (e *LedgerError) Error() string {
	return fmt.Sprintf("%s %d %s", e.Name, e.Code, e.Message)
}

// IsLedgerError reports whether err is a ledger error with the given name
func IsLedgerError(err error, name string) bool {
	var le *LedgerError
	return errors.As(err, &le) && le.Name == name
}

// ParseWebsocketResponse builds a response from a websocket message.
// Error messages carry their fields at the top level, they become the result.
func ParseWebsocketResponse(msg []byte) (*Response, error) {
	var resp Response
	if err := json.Unmarshal(msg, &resp); err != nil {
		return nil, err
	}
	switch resp.Status {
	case StatusSuccess:
		if len(resp.Result) == 0 {
			return nil, ErrNoResult
		}
	case StatusError:
		resp.Result = append(json.RawMessage{}, msg...)
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, resp.Status)
	}
	return &resp, nil
}

// ParseJSONRPCResponse builds a response from a json-rpc http body,
// where the status is a field of the result.
func ParseJSONRPCResponse(body []byte) (*Response, error) {
	result := gjson.GetBytes(body, "result")
	if !result.IsObject() {
		return nil, ErrNoResult
	}
	resp := &Response{
		Status: ResponseStatus(result.Get("status").String()),
		Result: json.RawMessage(result.Raw),
	}
	if id := gjson.GetBytes(body, "id"); id.Exists() {
		resp.ID = id.Value()
	}
	if w := result.Get("warnings"); w.IsArray() {
		if err := json.Unmarshal([]byte(w.Raw), &resp.Warnings); err != nil {
			return nil, err
		}
	}
	if resp.Status != StatusSuccess && resp.Status != StatusError {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, resp.Status)
	}
	return resp, nil
}
