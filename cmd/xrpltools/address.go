package main

import (
	"fmt"

	"github.com/aqrl/xrpl-toolkit/account"
	"github.com/aqrl/xrpl-toolkit/cmd/utils"
	"github.com/aqrl/xrpl-toolkit/xrpl/addresscodec"
	"github.com/urfave/cli/v2"
)

var (
	addressCommand = &cli.Command{
		Action:    addressAction,
		Name:      "address",
		Usage:     "derive the keys and classic address of a seed",
		ArgsUsage: "[seed]",
		Flags: []cli.Flag{
			utils.SeedFlag,
			utils.WalletFlag,
		},
	}

	xaddressCommand = &cli.Command{
		Action:    xaddressAction,
		Name:      "xaddress",
		Usage:     "encode a classic address as a test network x-address",
		ArgsUsage: "<classic address>",
	}
)

func addressAction(ctx *cli.Context) error {
	seed := ctx.Args().Get(0)
	if seed == "" {
		seed = ctx.String(utils.SeedFlag.Name)
	}
	w, err := loadWallet(ctx, seed)
	if err != nil {
		return err
	}
	fmt.Printf("algorithm: %v\n", w.Algorithm)
	fmt.Printf("public key: %v\n", w.PublicKey)
	fmt.Printf("address: %v\n", account.CreateAccount(w))
	return nil
}

func xaddressAction(ctx *cli.Context) error {
	classic := ctx.Args().Get(0)
	if !addresscodec.IsValidClassicAddress(classic) {
		return fmt.Errorf("invalid classic address %q", classic)
	}
	_, err := account.CreateXAddress(classic)
	return err
}
