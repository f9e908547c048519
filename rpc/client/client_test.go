package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPPost(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-type"))
		assert.Equal(t, "v", r.URL.Query().Get("k"))
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		_, _ = w.Write([]byte(`{"echo":"` + body["destination"] + `"}`))
	}))
	defer srv.Close()

	resp, err := HTTPPost(context.Background(), srv.URL, map[string]string{"destination": "rHb9"}, map[string]string{"k": "v"}, nil, 0)
	require.NoError(t, err)
	body, err := ReadBody(resp)
	require.NoError(t, err)
	assert.JSONEq(t, `{"echo":"rHb9"}`, string(body))
}

func TestHTTPGetStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "token", r.Header.Get("X-Test"))
		http.Error(w, "busy", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	resp, err := HTTPGet(context.Background(), srv.URL, nil, map[string]string{"X-Test": "token"}, 5)
	require.NoError(t, err)
	_, err = ReadBody(resp)
	assert.EqualError(t, err, "wrong response status 503. message: busy\n")
}
