// Command xrpltools creates test network wallets and queries accounts.
package main

import (
	"fmt"
	"os"

	"github.com/aqrl/xrpl-toolkit/cmd/utils"
	"github.com/aqrl/xrpl-toolkit/log"
	"github.com/urfave/cli/v2"
)

var (
	clientIdentifier = "xrpltools"
	// Git SHA1 commit hash of the release (set via linker flags)
	gitCommit = ""
	gitDate   = ""
	// The app that holds all commands and flags.
	app = utils.NewApp(clientIdentifier, gitCommit, gitDate, "the xrpltools command line interface")
)

func initApp() {
	app.Action = xrptools
	app.HideVersion = true
	app.Copyright = "Copyright 2022 The xrpl-toolkit Authors"
	app.Commands = []*cli.Command{
		faucetCommand,
		addressCommand,
		xaddressCommand,
		accountInfoCommand,
		nftsCommand,
		offersCommand,
		txsCommand,
		txCommand,
		walletsCommand,
		utils.VersionCommand,
	}
	app.Flags = utils.CommonFlags
	app.Before = func(ctx *cli.Context) error {
		utils.SetLogger(ctx)
		return nil
	}
}

func main() {
	initApp()
	if err := app.Run(os.Args); err != nil {
		log.Error("xrpltools failed", "err", err)
		os.Exit(1)
	}
}

func xrptools(ctx *cli.Context) error {
	if ctx.NArg() > 0 {
		return fmt.Errorf("invalid command: %q", ctx.Args().Get(0))
	}
	_ = cli.ShowAppHelp(ctx)
	fmt.Println()
	return fmt.Errorf("please specify a sub command to run")
}
