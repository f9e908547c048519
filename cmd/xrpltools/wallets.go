package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/aqrl/xrpl-toolkit/cmd/utils"
	"github.com/aqrl/xrpl-toolkit/params"
	"github.com/aqrl/xrpl-toolkit/walletstore"
	"github.com/aqrl/xrpl-toolkit/xrpl/wallet"
	"github.com/urfave/cli/v2"
)

var (
	walletsCommand = &cli.Command{
		Name:  "wallets",
		Usage: "manage the local wallet store",
		Subcommands: []*cli.Command{
			{
				Action: listWalletsAction,
				Name:   "list",
				Usage:  "list stored wallets",
			},
			{
				Action:    deleteWalletAction,
				Name:      "delete",
				Usage:     "delete a stored wallet",
				ArgsUsage: "<name>",
			},
			{
				Action:    findWalletAction,
				Name:      "find",
				Usage:     "print the name of the stored wallet with an address",
				ArgsUsage: "<address>",
			},
		},
		Action: listWalletsAction,
	}
)

func openStore(config *params.ToolConfig) (*walletstore.Store, error) {
	return walletstore.Open(config.GetWalletDir(), config.Network)
}

// loadWallet derives the wallet of seed, or loads the one named by --wallet
func loadWallet(ctx *cli.Context, seed string) (*wallet.Wallet, error) {
	if seed != "" {
		return wallet.NewWallet(seed, 0)
	}
	name := ctx.String(utils.WalletFlag.Name)
	if name == "" {
		return nil, errors.New("please specify '--seed' or '--wallet'")
	}
	config, err := utils.LoadConfig(ctx)
	if err != nil {
		return nil, err
	}
	store, err := openStore(config)
	if err != nil {
		return nil, err
	}
	defer store.Close()
	return store.Load(name)
}

func listWalletsAction(ctx *cli.Context) error {
	config, err := utils.LoadConfig(ctx)
	if err != nil {
		return err
	}
	store, err := openStore(config)
	if err != nil {
		return err
	}
	defer store.Close()
	records, err := store.List()
	if err != nil {
		return err
	}
	for _, r := range records {
		fmt.Printf("%-20s %-34s %-9s %s\n", r.Name, r.Wallet.ClassicAddress, r.Wallet.Algorithm,
			time.Unix(r.Created, 0).Format(time.RFC3339))
	}
	return nil
}

func deleteWalletAction(ctx *cli.Context) error {
	name := ctx.Args().Get(0)
	if name == "" {
		return errors.New("empty wallet name argument")
	}
	config, err := utils.LoadConfig(ctx)
	if err != nil {
		return err
	}
	store, err := openStore(config)
	if err != nil {
		return err
	}
	defer store.Close()
	return store.Delete(name)
}

func findWalletAction(ctx *cli.Context) error {
	address := ctx.Args().Get(0)
	if address == "" {
		return errors.New("empty address argument")
	}
	config, err := utils.LoadConfig(ctx)
	if err != nil {
		return err
	}
	store, err := openStore(config)
	if err != nil {
		return err
	}
	defer store.Close()
	name, err := store.FindByAddress(address)
	if err != nil {
		return err
	}
	fmt.Println(name)
	return nil
}
