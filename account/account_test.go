package account

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aqrl/xrpl-toolkit/xrpl/models"
	"github.com/fatih/color"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const nftsAnswer = `{"account":"rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh","account_nfts":[` +
	`{"Flags":8,"Issuer":"rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh","NFTokenID":"000B0000B","NFTokenTaxon":0,"nft_serial":2},` +
	`{"Flags":8,"Issuer":"rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh","TokenID":"000A0000A","TokenTaxon":0,"nft_serial":1}` +
	`],"validated":true,"status":"success"}`

func newTestAccount(t *testing.T, conn *fakeConn) (*Account, *bytes.Buffer) {
	a, err := NewAccount(genesisSeed, "wss://s.altnet.rippletest.net:443/")
	require.NoError(t, err)
	var buf bytes.Buffer
	a.SetDialer(conn.dialer())
	a.SetOutput(&buf)
	old := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = old })
	return a, &buf
}

func TestNewAccount(t *testing.T) {
	a, err := NewAccount(genesisSeed, "wss://example.net")
	require.NoError(t, err)
	assert.Equal(t, "ACCOUNT: rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh", a.String())
	assert.Equal(t, "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh", a.Address())
	assert.Equal(t, a.Address(), a.GetWallet().ClassicAddress)
	assert.Equal(t, "wss://example.net", a.NetworkURL())
	assert.Empty(t, a.NFTs())

	_, err = NewAccount("bad seed", "wss://example.net")
	assert.Error(t, err)
}

func TestGetNFTsAndParse(t *testing.T) {
	conn := &fakeConn{answers: map[string]string{"account_nfts": nftsAnswer}}
	a, out := newTestAccount(t, conn)

	assert.ErrorIs(t, a.ParseGetNFTsResponse(), ErrNoNFTResponse)

	resp, err := a.GetNFTs(context.Background(), &QueryOptions{Marker: "page2", Debug: true})
	require.NoError(t, err)
	assert.Same(t, resp, a.NFTsResponse())
	assert.Equal(t, 1, conn.closed)
	assert.Equal(t, a.NetworkURL(), conn.url)

	req, ok := conn.lastRequest().(*models.AccountNFTs)
	require.True(t, ok)
	assert.Equal(t, a.Address(), req.Account)
	assert.Equal(t, DefaultLimit, req.Limit)
	assert.Equal(t, "page2", req.Marker)
	assert.True(t, strings.HasPrefix(out.String(), "status: success\n"))

	require.NoError(t, a.ParseGetNFTsResponse())
	nfts := a.NFTs()
	require.Len(t, nfts, 2)
	assert.JSONEq(t, `{"Flags":8,"Issuer":"rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh","NFTokenID":"000B0000B","NFTokenTaxon":0,"nft_serial":2}`, string(nfts["000B0000B"]))
	assert.Contains(t, string(nfts["000A0000A"]), `"TokenID":"000A0000A"`)

	// the copy does not alias the account state
	delete(nfts, "000A0000A")
	assert.Len(t, a.NFTs(), 2)

	out.Reset()
	a.ListNFTs()
	lines := out.String()
	assert.True(t, strings.HasPrefix(lines, "000A0000A -> {"))
	assert.Contains(t, lines, "\n000B0000B -> {")
}

func TestParseGetNFTsErrorResponse(t *testing.T) {
	conn := &fakeConn{answers: map[string]string{
		"account_nfts": `{"error":"actNotFound","error_code":19,"error_message":"Account not found.","status":"error"}`,
	}}
	a, out := newTestAccount(t, conn)
	resp, err := a.GetNFTs(context.Background(), nil)
	require.NoError(t, err)
	assert.False(t, resp.IsSuccessful())
	assert.Empty(t, out.String())

	err = a.ParseGetNFTsResponse()
	assert.True(t, models.IsLedgerError(err, "actNotFound"))
	assert.Empty(t, a.NFTs())
}

func TestGetOffersAndTxs(t *testing.T) {
	conn := &fakeConn{answers: map[string]string{
		"account_offers": `{"account":"rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh","offers":[],"status":"success"}`,
		"account_tx":     `{"account":"rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh","transactions":[],"marker":{"ledger":5,"seq":1},"status":"success"}`,
	}}
	a, _ := newTestAccount(t, conn)

	offers, err := a.GetOffers(context.Background(), &QueryOptions{Limit: 10})
	require.NoError(t, err)
	assert.Same(t, offers, a.OffersResponse())
	req, ok := conn.lastRequest().(*models.AccountOffers)
	require.True(t, ok)
	assert.Equal(t, 10, req.Limit)

	txs, err := a.GetTxs(context.Background(), nil)
	require.NoError(t, err)
	assert.Same(t, txs, a.TxsResponse())
	txReq, ok := conn.lastRequest().(*models.AccountTx)
	require.True(t, ok)
	assert.Equal(t, DefaultLimit, txReq.Limit)
	assert.Nil(t, txReq.Marker)

	marker := txs.Get("marker").Value()
	_, err = a.GetTxs(context.Background(), &QueryOptions{Marker: marker})
	require.NoError(t, err)
	txReq = conn.lastRequest().(*models.AccountTx)
	assert.Equal(t, marker, txReq.Marker)

	assert.Equal(t, 3, conn.closed)
}

func TestQueryClosesOnError(t *testing.T) {
	conn := &fakeConn{fail: true}
	a, _ := newTestAccount(t, conn)
	_, err := a.GetNFTs(context.Background(), nil)
	assert.ErrorIs(t, err, errTransport)
	_, err = a.GetOffers(context.Background(), nil)
	assert.ErrorIs(t, err, errTransport)
	assert.Equal(t, 2, conn.closed)
	assert.Nil(t, a.NFTsResponse())
}

func TestDialFailure(t *testing.T) {
	conn := &fakeConn{}
	a, _ := newTestAccount(t, conn)
	errDial := errors.New("dial refused")
	a.SetDialer(func(ctx context.Context, url string) (Conn, error) { return nil, errDial })
	_, err := a.GetTxs(context.Background(), nil)
	assert.ErrorIs(t, err, errDial)
	_, err = a.GetTxInfo(context.Background(), strings.Repeat("AB", 32), false)
	assert.ErrorIs(t, err, errDial)
}

func TestGetTxInfo(t *testing.T) {
	conn := &fakeConn{answers: map[string]string{
		"tx": `{"hash":"` + strings.Repeat("AB", 32) + `","meta":{"TransactionResult":"tesSUCCESS"},"validated":true,"status":"success"}`,
	}}
	a, out := newTestAccount(t, conn)
	resp, err := a.GetTxInfo(context.Background(), strings.Repeat("ab", 32), true)
	require.NoError(t, err)
	assert.True(t, resp.IsSuccessful())
	tx, ok := conn.lastRequest().(*models.Tx)
	require.True(t, ok)
	assert.Equal(t, strings.Repeat("ab", 32), tx.Transaction)
	assert.Contains(t, out.String(), "tesSUCCESS")
	assert.Equal(t, 1, conn.closed)

	// a malformed hash is sent as is and the server's answer comes back
	conn.answers["tx"] = `{"error":"notImpl","error_code":9,"error_message":"Not implemented.","status":"error"}`
	resp, err = a.GetTxInfo(context.Background(), "nothex", false)
	require.NoError(t, err)
	assert.False(t, resp.IsSuccessful())
	assert.True(t, models.IsLedgerError(resp.Err(), "notImpl"))
	assert.Equal(t, "nothex", conn.lastRequest().(*models.Tx).Transaction)
	assert.Equal(t, 2, conn.closed)
}

func TestWebsocketDialer(t *testing.T) {
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ws, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer ws.Close()
		for {
			var cmd map[string]interface{}
			if err := ws.ReadJSON(&cmd); err != nil {
				return
			}
			var result json.RawMessage = []byte(nftsAnswer)
			_ = ws.WriteJSON(map[string]interface{}{
				"id":     cmd["id"],
				"status": "success",
				"type":   "response",
				"result": result,
			})
		}
	}))
	defer srv.Close()

	a, err := NewAccount(genesisSeed, "ws"+strings.TrimPrefix(srv.URL, "http"))
	require.NoError(t, err)
	a.SetOutput(&bytes.Buffer{})
	resp, err := a.GetNFTs(context.Background(), nil)
	require.NoError(t, err)
	assert.True(t, resp.IsSuccessful())
	require.NoError(t, a.ParseGetNFTsResponse())
	assert.Len(t, a.NFTs(), 2)
}
