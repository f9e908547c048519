package utils

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/aqrl/xrpl-toolkit/params"
	"github.com/urfave/cli/v2"
)

var (
	// VersionCommand version subcommand
	VersionCommand = &cli.Command{
		Action:    version,
		Name:      "version",
		Usage:     "Print version numbers",
		ArgsUsage: " ",
		Description: `
The output of this command is supposed to be machine-readable.
`,
	}
)

func version(ctx *cli.Context) error {
	fmt.Println(strings.Title(clientIdentifier))
	fmt.Println("Version:", params.VersionWithMeta)
	if gitCommit != "" {
		fmt.Println("Git Commit:", gitCommit)
	}
	if gitDate != "" {
		fmt.Println("Git Commit Date:", gitDate)
	}
	fmt.Println("Architecture:", runtime.GOARCH)
	fmt.Println("Go Version:", runtime.Version())
	fmt.Println("Operating System:", runtime.GOOS)
	for _, net := range []string{params.NetMain, params.NetTest, params.NetDev} {
		if cfg, err := params.GetNetworkConfig(net); err == nil {
			fmt.Printf("Network %v: %v\n", net, cfg.WebsocketURL)
		}
	}
	return nil
}
