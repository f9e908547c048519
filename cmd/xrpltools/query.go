package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aqrl/xrpl-toolkit/account"
	"github.com/aqrl/xrpl-toolkit/cmd/utils"
	"github.com/aqrl/xrpl-toolkit/log"
	"github.com/aqrl/xrpl-toolkit/terminal"
	"github.com/aqrl/xrpl-toolkit/xrpl/jsonrpc"
	"github.com/aqrl/xrpl-toolkit/xrpl/transaction"
	"github.com/aqrl/xrpl-toolkit/xrpl/websockets"
	"github.com/urfave/cli/v2"
)

var (
	limitFlag = &cli.IntFlag{
		Name:  "limit",
		Usage: "page size",
		Value: account.DefaultLimit,
	}
	markerFlag = &cli.StringFlag{
		Name:  "marker",
		Usage: "marker of the next page (json)",
	}
	quietFlag = &cli.BoolFlag{
		Name:  "quiet",
		Usage: "do not print the response",
	}

	queryFlags = []cli.Flag{
		utils.SeedFlag,
		utils.WalletFlag,
		limitFlag,
		markerFlag,
		quietFlag,
	}

	accountInfoCommand = &cli.Command{
		Action:    accountInfoAction,
		Name:      "accountinfo",
		Usage:     "print the validated account info of an address",
		ArgsUsage: "<address>",
	}
	nftsCommand = &cli.Command{
		Action: nftsAction,
		Name:   "nfts",
		Usage:  "list the NFTs of an account",
		Flags:  queryFlags,
	}
	offersCommand = &cli.Command{
		Action: offersAction,
		Name:   "offers",
		Usage:  "list the offers of an account",
		Flags:  queryFlags,
	}
	txsCommand = &cli.Command{
		Action: txsAction,
		Name:   "txs",
		Usage:  "list the transactions of an account",
		Flags:  queryFlags,
	}
	txCommand = &cli.Command{
		Action:    txAction,
		Name:      "tx",
		Usage:     "look up a transaction by hash",
		ArgsUsage: "<txhash>",
		Flags:     []cli.Flag{utils.SeedFlag, utils.WalletFlag},
	}
)

func accountInfoAction(ctx *cli.Context) error {
	address := ctx.Args().Get(0)
	if address == "" {
		return errors.New("empty address argument")
	}
	config, err := utils.LoadConfig(ctx)
	if err != nil {
		return err
	}
	rootCtx, cancel := utils.SignalContext(ctx.Context)
	defer cancel()
	client := jsonrpc.NewClient(config.Remote.JSONRPCURL, config.RPCTimeout)
	ok, err := account.LookupAccountInfo(rootCtx, client, address)
	if err != nil {
		return err
	}
	log.Info("account info", "address", address, "success", ok)
	return nil
}

func openAccount(ctx *cli.Context) (*account.Account, error) {
	w, err := loadWallet(ctx, ctx.String(utils.SeedFlag.Name))
	if err != nil {
		return nil, err
	}
	config, err := utils.LoadConfig(ctx)
	if err != nil {
		return nil, err
	}
	return account.NewAccount(w.Seed, config.Remote.WebsocketURL)
}

func queryOptions(ctx *cli.Context) *account.QueryOptions {
	opts := &account.QueryOptions{
		Limit: ctx.Int(limitFlag.Name),
		Debug: !ctx.Bool(quietFlag.Name),
	}
	if marker := ctx.String(markerFlag.Name); marker != "" {
		if err := json.Unmarshal([]byte(marker), &opts.Marker); err != nil {
			// markers of account_nfts and account_offers are plain strings
			opts.Marker = marker
		}
	}
	return opts
}

type queryFunc func(*account.Account, *cli.Context, *account.QueryOptions) error

func runQuery(ctx *cli.Context, query queryFunc) error {
	a, err := openAccount(ctx)
	if err != nil {
		return err
	}
	opts := queryOptions(ctx)
	log.Debug("query account", "account", a, "remote", a.NetworkURL())
	return query(a, ctx, opts)
}

func nftsAction(ctx *cli.Context) error {
	return runQuery(ctx, func(a *account.Account, ctx *cli.Context, opts *account.QueryOptions) error {
		rootCtx, cancel := utils.SignalContext(ctx.Context)
		defer cancel()
		// the list below replaces the raw response
		debug := opts.Debug
		opts.Debug = false
		if _, err := a.GetNFTs(rootCtx, opts); err != nil {
			return err
		}
		if err := a.ParseGetNFTsResponse(); err != nil {
			return err
		}
		if debug {
			a.ListNFTs()
		}
		printMarker(a.NFTsResponse().Get("marker").Raw)
		return nil
	})
}

func offersAction(ctx *cli.Context) error {
	return runQuery(ctx, func(a *account.Account, ctx *cli.Context, opts *account.QueryOptions) error {
		rootCtx, cancel := utils.SignalContext(ctx.Context)
		defer cancel()
		resp, err := a.GetOffers(rootCtx, opts)
		if err != nil {
			return err
		}
		printMarker(resp.Get("marker").Raw)
		return nil
	})
}

func txsAction(ctx *cli.Context) error {
	return runQuery(ctx, func(a *account.Account, ctx *cli.Context, opts *account.QueryOptions) error {
		rootCtx, cancel := utils.SignalContext(ctx.Context)
		defer cancel()
		resp, err := a.GetTxs(rootCtx, opts)
		if err != nil {
			return err
		}
		printMarker(resp.Get("marker").Raw)
		return nil
	})
}

func printMarker(marker string) {
	if marker != "" {
		fmt.Printf("next marker: %v\n", marker)
	}
}

func txAction(ctx *cli.Context) error {
	txHash := ctx.Args().Get(0)
	if txHash == "" {
		return errors.New("empty tx hash argument")
	}
	rootCtx, cancel := utils.SignalContext(ctx.Context)
	defer cancel()

	if ctx.String(utils.SeedFlag.Name) != "" || ctx.String(utils.WalletFlag.Name) != "" {
		a, err := openAccount(ctx)
		if err != nil {
			return err
		}
		_, err = a.GetTxInfo(rootCtx, txHash, true)
		return err
	}

	config, err := utils.LoadConfig(ctx)
	if err != nil {
		return err
	}
	remote, err := websockets.Dial(rootCtx, config.Remote.WebsocketURL)
	if err != nil {
		return err
	}
	defer remote.Close()
	resp, err := transaction.GetTransactionFromHash(rootCtx, txHash, remote)
	if err != nil {
		return err
	}
	terminal.Println(resp, terminal.Default)
	result, validated := transaction.Result(resp)
	log.Info("transaction", "hash", txHash, "result", result, "validated", validated)
	return nil
}
