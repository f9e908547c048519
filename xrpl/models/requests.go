package models

import "context"

// Request is a typed ledger request, its json fields are the request parameters
type Request interface {
	Method() string
}

// Client sends one request and returns the unmodified response.
// Ledger-level failures are returned as error responses, not errors.
type Client interface {
	Request(ctx context.Context, req Request) (*Response, error)
}

// ledger index shortcuts
const (
	LedgerValidated = "validated"
	LedgerCurrent   = "current"
	LedgerClosed    = "closed"
)

// AccountInfo requests the account root of an account
type AccountInfo struct {
	Account     string      `json:"account"`
	LedgerIndex interface{} `json:"ledger_index,omitempty"`
	LedgerHash  string      `json:"ledger_hash,omitempty"`
	Queue       bool        `json:"queue,omitempty"`
	SignerLists bool        `json:"signer_lists,omitempty"`
	Strict      bool        `json:"strict,omitempty"`
}

// Method implements Request
func (*AccountInfo) Method() string { return "account_info" }

// AccountNFTs requests the NFTs owned by an account
type AccountNFTs struct {
	Account     string      `json:"account"`
	LedgerIndex interface{} `json:"ledger_index,omitempty"`
	Limit       int         `json:"limit,omitempty"`
	Marker      interface{} `json:"marker,omitempty"`
}

// Method implements Request
func (*AccountNFTs) Method() string { return "account_nfts" }

// AccountOffers requests the offers placed by an account
type AccountOffers struct {
	Account     string      `json:"account"`
	LedgerIndex interface{} `json:"ledger_index,omitempty"`
	Limit       int         `json:"limit,omitempty"`
	Marker      interface{} `json:"marker,omitempty"`
	Strict      bool        `json:"strict,omitempty"`
}

// Method implements Request
func (*AccountOffers) Method() string { return "account_offers" }

// AccountTx requests the transactions of an account.
// Use -1 ledger bounds for the earliest and most recent validated ledgers.
type AccountTx struct {
	Account        string      `json:"account"`
	LedgerIndexMin *int64      `json:"ledger_index_min,omitempty"`
	LedgerIndexMax *int64      `json:"ledger_index_max,omitempty"`
	LedgerIndex    interface{} `json:"ledger_index,omitempty"`
	Binary         bool        `json:"binary,omitempty"`
	Forward        bool        `json:"forward,omitempty"`
	Limit          int         `json:"limit,omitempty"`
	Marker         interface{} `json:"marker,omitempty"`
}

// Method implements Request
func (*AccountTx) Method() string { return "account_tx" }

// Tx requests a transaction by hash
type Tx struct {
	Transaction string `json:"transaction"`
	Binary      bool   `json:"binary"`
	MinLedger   *int64 `json:"min_ledger,omitempty"`
	MaxLedger   *int64 `json:"max_ledger,omitempty"`
}

// Method implements Request
func (*Tx) Method() string { return "tx" }

// Ledger requests a ledger header
type Ledger struct {
	LedgerIndex  interface{} `json:"ledger_index,omitempty"`
	Transactions bool        `json:"transactions,omitempty"`
	Expand       bool        `json:"expand,omitempty"`
}

// Method implements Request
func (*Ledger) Method() string { return "ledger" }

// ServerInfo requests the server status
type ServerInfo struct{}

// Method implements Request
func (*ServerInfo) Method() string { return "server_info" }
