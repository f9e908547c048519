package wallet

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aqrl/xrpl-toolkit/log"
	"github.com/aqrl/xrpl-toolkit/xrpl/crypto"
	"github.com/aqrl/xrpl-toolkit/xrpl/models"
	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

// faucet endpoints
const (
	AltnetFaucetURL = "https://faucet.altnet.rippletest.net/accounts"
	DevnetFaucetURL = "https://faucet.devnet.rippletest.net/accounts"
)

const (
	defaultPollInterval = time.Second
	defaultMaxAttempts  = 40
	faucetTimeout       = 30 * time.Second
)

// errors
var (
	ErrUnknownFaucet  = errors.New("cannot derive a faucet URL from the client URL")
	ErrFaucetRequest  = errors.New("faucet request failed")
	ErrFundingTimeout = errors.New("unable to fund address with faucet")
)

// FaucetOptions tune GenerateFaucetWallet, the zero value is usable
type FaucetOptions struct {
	// Wallet to fund, a new one is created when nil
	Wallet *Wallet
	// Algorithm of the created wallet, default ed25519
	Algorithm crypto.Algorithm
	// FaucetURL overrides the faucet chosen from the client URL
	FaucetURL    string
	PollInterval time.Duration
	MaxAttempts  int
	// Debug logs progress at info level instead of debug
	Debug bool
}

// URLProvider is implemented by clients that know their endpoint
type URLProvider interface {
	URL() string
}

// GetFaucetURL picks the faucet matching a network endpoint
func GetFaucetURL(networkURL string) (string, error) {
	lower := strings.ToLower(networkURL)
	switch {
	case strings.Contains(lower, "altnet"), strings.Contains(lower, "testnet"):
		return AltnetFaucetURL, nil
	case strings.Contains(lower, "devnet"):
		return DevnetFaucetURL, nil
	default:
		return "", fmt.Errorf("%w: %v", ErrUnknownFaucet, networkURL)
	}
}

// GetBalance returns the validated XRP balance in drops, zero for accounts
// not yet on the ledger
func GetBalance(ctx context.Context, client models.Client, address string) (uint64, error) {
	resp, err := client.Request(ctx, &models.AccountInfo{
		Account:     address,
		LedgerIndex: models.LedgerValidated,
	})
	if err != nil {
		return 0, err
	}
	if err := resp.Err(); err != nil {
		if models.IsLedgerError(err, "actNotFound") {
			return 0, nil
		}
		return 0, err
	}
	return resp.Get("account_data.Balance").Uint(), nil
}

// GenerateFaucetWallet funds a wallet from the faucet and waits until the
// funding shows up in a validated ledger
func GenerateFaucetWallet(ctx context.Context, client models.Client, opts *FaucetOptions) (*Wallet, error) {
	if opts == nil {
		opts = &FaucetOptions{}
	}
	logf := log.Debug
	if opts.Debug {
		logf = log.Info
	}

	faucetURL := opts.FaucetURL
	if faucetURL == "" {
		p, ok := client.(URLProvider)
		if !ok {
			return nil, ErrUnknownFaucet
		}
		var err error
		if faucetURL, err = GetFaucetURL(p.URL()); err != nil {
			return nil, err
		}
	}

	w := opts.Wallet
	if w == nil {
		var err error
		if w, err = CreateWallet(opts.Algorithm); err != nil {
			return nil, err
		}
	}
	address := w.ClassicAddress

	startingBalance, err := GetBalance(ctx, client, address)
	if err != nil {
		return nil, err
	}

	logf("Attempting to fund address", "address", address, "faucet", faucetURL)
	if err := requestFunding(ctx, faucetURL, address, logf); err != nil {
		return nil, err
	}
	logf("Faucet fund successful.", "address", address)

	interval := opts.PollInterval
	if interval <= 0 {
		interval = defaultPollInterval
	}
	attempts := opts.MaxAttempts
	if attempts <= 0 {
		attempts = defaultMaxAttempts
	}
	for i := 0; i < attempts; i++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(interval):
		}
		balance, err := GetBalance(ctx, client, address)
		if err != nil {
			log.Warn("query balance while funding failed", "address", address, "err", err)
			continue
		}
		if balance > startingBalance {
			logf("Wallet funded", "address", address, "balance", balance, "attempts", i+1)
			if seq, err := nextSequence(ctx, client, address); err == nil {
				w.Sequence = seq
			}
			return w, nil
		}
	}
	return nil, fmt.Errorf("%w %v after %d attempts", ErrFundingTimeout, address, attempts)
}

func requestFunding(ctx context.Context, faucetURL, address string, logf func(string, ...interface{})) error {
	resp, err := resty.New().SetTimeout(faucetTimeout).R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"destination": address}).
		Post(faucetURL)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFaucetRequest, err)
	}
	if !resp.IsSuccess() {
		return fmt.Errorf("%w: status %v, body %v", ErrFaucetRequest, resp.StatusCode(), string(resp.Body()))
	}
	body := gjson.ParseBytes(resp.Body())
	logf("Faucet response", "amount", body.Get("amount").Value(), "account", body.Get("account.classicAddress").String())
	return nil
}

func nextSequence(ctx context.Context, client models.Client, address string) (uint32, error) {
	resp, err := client.Request(ctx, &models.AccountInfo{
		Account:     address,
		LedgerIndex: models.LedgerCurrent,
	})
	if err != nil {
		return 0, err
	}
	if err := resp.Err(); err != nil {
		return 0, err
	}
	return uint32(resp.Get("account_data.Sequence").Uint()), nil
}
