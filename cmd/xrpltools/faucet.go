package main

import (
	"fmt"

	"github.com/aqrl/xrpl-toolkit/account"
	"github.com/aqrl/xrpl-toolkit/cmd/utils"
	"github.com/aqrl/xrpl-toolkit/log"
	"github.com/aqrl/xrpl-toolkit/xrpl/crypto"
	"github.com/aqrl/xrpl-toolkit/xrpl/jsonrpc"
	"github.com/aqrl/xrpl-toolkit/xrpl/wallet"
	"github.com/urfave/cli/v2"
)

var (
	saveFlag = &cli.StringFlag{
		Name:  "save",
		Usage: "save the funded wallet under this name",
	}
	algorithmFlag = &cli.StringFlag{
		Name:  "algorithm",
		Usage: "key algorithm of the new wallet (ed25519, secp256k1)",
	}

	faucetCommand = &cli.Command{
		Action: faucetAction,
		Name:   "faucet",
		Usage:  "create a wallet and fund it from the test network faucet",
		Flags: []cli.Flag{
			saveFlag,
			algorithmFlag,
			utils.SeedFlag,
		},
	}
)

func faucetAction(ctx *cli.Context) error {
	config, err := utils.LoadConfig(ctx)
	if err != nil {
		return err
	}
	algorithm := ctx.String(algorithmFlag.Name)
	if algorithm == "" {
		algorithm = config.Faucet.Algorithm
	}
	algo, err := crypto.ParseAlgorithm(algorithm)
	if err != nil {
		return err
	}
	opts := &wallet.FaucetOptions{
		Algorithm:    algo,
		FaucetURL:    config.Remote.FaucetURL,
		PollInterval: config.Faucet.GetPollInterval(),
		MaxAttempts:  config.Faucet.MaxAttempts,
		Debug:        true,
	}
	if seed := ctx.String(utils.SeedFlag.Name); seed != "" {
		if opts.Wallet, err = wallet.NewWallet(seed, 0); err != nil {
			return err
		}
	}

	rootCtx, cancel := utils.SignalContext(ctx.Context)
	defer cancel()
	client := jsonrpc.NewClient(config.Remote.JSONRPCURL, config.RPCTimeout)
	w, err := account.CreateFaucetWithOptions(rootCtx, client, opts)
	if err != nil {
		return err
	}
	fmt.Printf("address: %v\n", account.CreateAccount(w))
	fmt.Printf("seed: %v\n", w.Seed)
	fmt.Printf("sequence: %v\n", w.Sequence)

	if name := ctx.String(saveFlag.Name); name != "" {
		store, err := openStore(config)
		if err != nil {
			return err
		}
		defer store.Close()
		if err := store.Save(name, w); err != nil {
			return err
		}
		log.Info("wallet saved", "name", name, "network", config.Network)
	}
	return nil
}
