package account

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/aqrl/xrpl-toolkit/log"
	"github.com/aqrl/xrpl-toolkit/terminal"
	"github.com/aqrl/xrpl-toolkit/xrpl/models"
	"github.com/aqrl/xrpl-toolkit/xrpl/transaction"
	"github.com/aqrl/xrpl-toolkit/xrpl/wallet"
	"github.com/aqrl/xrpl-toolkit/xrpl/websockets"
	"github.com/tidwall/gjson"
)

// DefaultLimit is the page size of account queries
const DefaultLimit = 100

// ErrNoNFTResponse is returned when parsing before any NFTs were fetched
var ErrNoNFTResponse = errors.New("no account_nfts response fetched")

// Conn is a connection opened for a single query
type Conn interface {
	models.Client
	Close()
}

// Dialer opens a connection to a network endpoint
type Dialer func(ctx context.Context, url string) (Conn, error)

// WebsocketDialer connects with a websocket remote
func WebsocketDialer(ctx context.Context, url string) (Conn, error) {
	remote, err := websockets.Dial(ctx, url)
	if err != nil {
		return nil, err
	}
	return remote, nil
}

// QueryOptions page and print account queries
type QueryOptions struct {
	Limit  int         // DefaultLimit if zero
	Marker interface{} // from the previous page
	Debug  bool        // print status and result
}

func (o *QueryOptions) limit() int {
	if o == nil || o.Limit <= 0 {
		return DefaultLimit
	}
	return o.Limit
}

func (o *QueryOptions) marker() interface{} {
	if o == nil {
		return nil
	}
	return o.Marker
}

func (o *QueryOptions) debug() bool {
	return o != nil && o.Debug
}

// Account is an account bound to its secret and a network endpoint
type Account struct {
	secret     string
	networkURL string
	wallet     *wallet.Wallet
	address    string

	dialer Dialer
	out    io.Writer

	mu             sync.Mutex
	nfts           map[string]json.RawMessage
	nftsResponse   *models.Response
	offersResponse *models.Response
	txsResponse    *models.Response
}

// NewAccount derives the wallet of secret
func NewAccount(secret, networkURL string) (*Account, error) {
	w, err := wallet.NewWallet(secret, 0)
	if err != nil {
		return nil, err
	}
	return &Account{
		secret:     secret,
		networkURL: networkURL,
		wallet:     w,
		address:    w.ClassicAddress,
		dialer:     WebsocketDialer,
		out:        Output,
		nfts:       make(map[string]json.RawMessage),
	}, nil
}

// SetDialer replaces the websocket dialer
func (a *Account) SetDialer(d Dialer) {
	a.dialer = d
}

// SetOutput sets where debug output and NFT lists are printed
func (a *Account) SetOutput(w io.Writer) {
	a.out = w
}

func (a *Account) String() string {
	return "ACCOUNT: " + a.address
}

// Address classic address
func (a *Account) Address() string {
	return a.address
}

// NetworkURL endpoint queries are sent to
func (a *Account) NetworkURL() string {
	return a.networkURL
}

// GetWallet returns the derived wallet
func (a *Account) GetWallet() *wallet.Wallet {
	return a.wallet
}

func (a *Account) query(ctx context.Context, req models.Request, debug bool) (*models.Response, error) {
	conn, err := a.dialer(ctx, a.networkURL)
	if err != nil {
		return nil, fmt.Errorf("connect to %v: %w", a.networkURL, err)
	}
	defer conn.Close()

	resp, err := conn.Request(ctx, req)
	if err != nil {
		log.Debug("account query failed", "method", req.Method(), "account", a.address, "err", err)
		return nil, err
	}
	if debug {
		terminal.Fprintln(a.out, resp, terminal.Default)
	}
	return resp, nil
}

// GetNFTs fetches one page of account_nfts
func (a *Account) GetNFTs(ctx context.Context, opts *QueryOptions) (*models.Response, error) {
	resp, err := a.query(ctx, &models.AccountNFTs{
		Account: a.address,
		Limit:   opts.limit(),
		Marker:  opts.marker(),
	}, opts.debug())
	if err != nil {
		return nil, err
	}
	a.mu.Lock()
	a.nftsResponse = resp
	a.mu.Unlock()
	return resp, nil
}

// GetOffers fetches one page of account_offers
func (a *Account) GetOffers(ctx context.Context, opts *QueryOptions) (*models.Response, error) {
	resp, err := a.query(ctx, &models.AccountOffers{
		Account: a.address,
		Limit:   opts.limit(),
		Marker:  opts.marker(),
	}, opts.debug())
	if err != nil {
		return nil, err
	}
	a.mu.Lock()
	a.offersResponse = resp
	a.mu.Unlock()
	return resp, nil
}

// GetTxs fetches one page of account_tx
func (a *Account) GetTxs(ctx context.Context, opts *QueryOptions) (*models.Response, error) {
	resp, err := a.query(ctx, &models.AccountTx{
		Account: a.address,
		Limit:   opts.limit(),
		Marker:  opts.marker(),
	}, opts.debug())
	if err != nil {
		return nil, err
	}
	a.mu.Lock()
	a.txsResponse = resp
	a.mu.Unlock()
	return resp, nil
}

// NFTsResponse last account_nfts response
func (a *Account) NFTsResponse() *models.Response {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.nftsResponse
}

// OffersResponse last account_offers response
func (a *Account) OffersResponse() *models.Response {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.offersResponse
}

// TxsResponse last account_tx response
func (a *Account) TxsResponse() *models.Response {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.txsResponse
}

// ParseGetNFTsResponse adds the records of the last account_nfts response to
// the NFT map, keyed by token id. Existing entries are overwritten, never removed.
func (a *Account) ParseGetNFTsResponse() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.nftsResponse == nil {
		return ErrNoNFTResponse
	}
	if err := a.nftsResponse.Err(); err != nil {
		return err
	}
	a.nftsResponse.Get("account_nfts").ForEach(func(_, record gjson.Result) bool {
		id := record.Get("NFTokenID").String()
		if id == "" {
			id = record.Get("TokenID").String()
		}
		if id == "" {
			log.Warn("skip nft without token id", "record", record.Raw)
			return true
		}
		a.nfts[id] = json.RawMessage(record.Raw)
		return true
	})
	return nil
}

// NFTs returns a copy of the NFT map
func (a *Account) NFTs() map[string]json.RawMessage {
	a.mu.Lock()
	defer a.mu.Unlock()
	nfts := make(map[string]json.RawMessage, len(a.nfts))
	for id, record := range a.nfts {
		nfts[id] = record
	}
	return nfts
}

// ListNFTs prints one "id -> record" entry per NFT, ordered by id
func (a *Account) ListNFTs() {
	a.mu.Lock()
	nfts := make(map[string][]byte, len(a.nfts))
	for id, record := range a.nfts {
		nfts[id] = record
	}
	a.mu.Unlock()
	terminal.PrintNFTs(a.out, nfts)
}

// GetTxInfo looks up a transaction by hash
func (a *Account) GetTxInfo(ctx context.Context, txHash string, debug bool) (*models.Response, error) {
	conn, err := a.dialer(ctx, a.networkURL)
	if err != nil {
		return nil, fmt.Errorf("connect to %v: %w", a.networkURL, err)
	}
	defer conn.Close()

	resp, err := transaction.GetTransactionFromHash(ctx, txHash, conn)
	if err != nil {
		return nil, err
	}
	if debug {
		terminal.Fprintln(a.out, resp, terminal.Default)
	}
	return resp, nil
}
