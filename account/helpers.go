// Package account holds convenience helpers for test network accounts.
package account

import (
	"context"
	"io"

	"github.com/aqrl/xrpl-toolkit/log"
	"github.com/aqrl/xrpl-toolkit/params"
	"github.com/aqrl/xrpl-toolkit/terminal"
	"github.com/aqrl/xrpl-toolkit/xrpl/addresscodec"
	"github.com/aqrl/xrpl-toolkit/xrpl/jsonrpc"
	"github.com/aqrl/xrpl-toolkit/xrpl/models"
	"github.com/aqrl/xrpl-toolkit/xrpl/wallet"
)

// XAddressTag is the destination tag of addresses built by CreateXAddress
const XAddressTag uint32 = 12345

// Output receives everything the helpers print
var Output io.Writer = terminal.Output

// CreateAltnetFaucet creates and funds a wallet on the altnet
func CreateAltnetFaucet(ctx context.Context) (*wallet.Wallet, error) {
	return CreateFaucet(ctx, jsonrpc.NewClient(params.GetAltnetJSONRPCURL(), 0))
}

// CreateFaucet creates and funds a wallet on the network of client
func CreateFaucet(ctx context.Context, client models.Client) (*wallet.Wallet, error) {
	return CreateFaucetWithOptions(ctx, client, &wallet.FaucetOptions{Debug: true})
}

// CreateFaucetWithOptions is CreateFaucet with explicit faucet options
func CreateFaucetWithOptions(ctx context.Context, client models.Client, opts *wallet.FaucetOptions) (*wallet.Wallet, error) {
	w, err := wallet.GenerateFaucetWallet(ctx, client, opts)
	if err != nil {
		log.Warn("create faucet wallet failed", "err", err)
		return nil, err
	}
	return w, nil
}

// CreateAccount returns the classic address of w
func CreateAccount(w *wallet.Wallet) string {
	return w.ClassicAddress
}

// CreateXAddress encodes account as a test network x-address tagged XAddressTag
func CreateXAddress(account string) (string, error) {
	tag := XAddressTag
	xAddress, err := addresscodec.ClassicAddressToXAddress(account, &tag, true)
	if err != nil {
		return "", err
	}
	terminal.Fprintln(Output, terminal.Address{Label: "Classic address", Address: account}, terminal.Default)
	terminal.Fprintln(Output, terminal.Address{Label: "X-address", Address: xAddress}, terminal.Default)
	return xAddress, nil
}

// LookupAccountInfo prints the validated account_info result of account and
// reports whether the server answered with success. Only transport failures
// are returned as errors.
func LookupAccountInfo(ctx context.Context, client models.Client, account string) (bool, error) {
	resp, err := client.Request(ctx, &models.AccountInfo{
		Account:     account,
		LedgerIndex: models.LedgerValidated,
		Strict:      true,
	})
	if err != nil {
		return false, err
	}
	terminal.Fprintln(Output, terminal.JSON(resp.Result), terminal.Default)
	return resp.IsSuccessful(), nil
}

// LookupAltnetAccountInfo is LookupAccountInfo over the altnet json-rpc endpoint
func LookupAltnetAccountInfo(ctx context.Context, account string) (bool, error) {
	return LookupAccountInfo(ctx, jsonrpc.NewClient(params.GetAltnetJSONRPCURL(), 0), account)
}
