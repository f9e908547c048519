package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWebsocketResponse(t *testing.T) {
	msg := []byte(`{"id":7,"status":"success","type":"response","result":{"account_data":{"Account":"rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh","Balance":"1000"},"validated":true}}`)
	resp, err := ParseWebsocketResponse(msg)
	require.NoError(t, err)
	assert.True(t, resp.IsSuccessful())
	assert.Equal(t, TypeResponse, resp.Type)
	assert.Equal(t, float64(7), resp.ID)
	assert.Equal(t, "1000", resp.Get("account_data.Balance").String())
	assert.NoError(t, resp.Err())

	var result struct {
		Validated bool `json:"validated"`
	}
	require.NoError(t, resp.Decode(&result))
	assert.True(t, result.Validated)
}

func TestParseWebsocketErrorResponse(t *testing.T) {
	msg := []byte(`{"id":8,"status":"error","type":"response","error":"actNotFound","error_code":19,"error_message":"Account not found.","request":{"account":"rBad","command":"account_info","id":8}}`)
	resp, err := ParseWebsocketResponse(msg)
	require.NoError(t, err)
	assert.False(t, resp.IsSuccessful())
	assert.Equal(t, "account_info", resp.Get("request.command").String())

	lerr := resp.Err()
	require.Error(t, lerr)
	assert.True(t, IsLedgerError(lerr, "actNotFound"))
	assert.Equal(t, "actNotFound 19 Account not found.", lerr.Error())
}

func TestParseWebsocketResponseInvalid(t *testing.T) {
	_, err := ParseWebsocketResponse([]byte(`{"id":1,"status":"success"}`))
	assert.ErrorIs(t, err, ErrNoResult)
	_, err = ParseWebsocketResponse([]byte(`{"id":1,"status":"queued","result":{}}`))
	assert.ErrorIs(t, err, ErrInvalidStatus)
	_, err = ParseWebsocketResponse([]byte(`not json`))
	assert.Error(t, err)
}

func TestParseJSONRPCResponse(t *testing.T) {
	body := []byte(`{"result":{"account_data":{"Balance":"42"},"status":"success","warnings":[{"id":1004,"message":"This is a clio server."}]}}`)
	resp, err := ParseJSONRPCResponse(body)
	require.NoError(t, err)
	assert.True(t, resp.IsSuccessful())
	assert.Equal(t, int64(42), resp.Get("account_data.Balance").Int())
	require.Len(t, resp.Warnings, 1)
	assert.Equal(t, 1004, resp.Warnings[0].ID)

	body = []byte(`{"result":{"error":"txnNotFound","error_code":29,"status":"error"}}`)
	resp, err = ParseJSONRPCResponse(body)
	require.NoError(t, err)
	assert.False(t, resp.IsSuccessful())
	assert.True(t, IsLedgerError(resp.Err(), "txnNotFound"))

	_, err = ParseJSONRPCResponse([]byte(`{"error":"bad"}`))
	assert.ErrorIs(t, err, ErrNoResult)
}

func TestRequestParams(t *testing.T) {
	min, max := int64(-1), int64(-1)
	reqs := map[Request]string{
		&AccountInfo{Account: "r1", LedgerIndex: LedgerValidated, Strict: true}: `{"account":"r1","ledger_index":"validated","strict":true}`,
		&AccountNFTs{Account: "r1", Limit: 100}:                                 `{"account":"r1","limit":100}`,
		&AccountOffers{Account: "r1", Limit: 100, Marker: "m"}:                   `{"account":"r1","limit":100,"marker":"m"}`,
		&AccountTx{Account: "r1", LedgerIndexMin: &min, LedgerIndexMax: &max}:    `{"account":"r1","ledger_index_min":-1,"ledger_index_max":-1}`,
		&Tx{Transaction: "ABCD"}:                                                 `{"transaction":"ABCD","binary":false}`,
		&ServerInfo{}:                                                           `{}`,
	}
	for req, want := range reqs {
		b, err := json.Marshal(req)
		require.NoError(t, err)
		assert.JSONEq(t, want, string(b), req.Method())
	}
	assert.Equal(t, "account_nfts", (&AccountNFTs{}).Method())
	assert.Equal(t, "ledger", (&Ledger{}).Method())
}

func TestNilResponse(t *testing.T) {
	var resp *Response
	assert.False(t, resp.IsSuccessful())
	assert.False(t, resp.Get("status").Exists())
	assert.ErrorIs(t, resp.Decode(&struct{}{}), ErrNoResult)
}
