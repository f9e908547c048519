package utils

import (
	"github.com/aqrl/xrpl-toolkit/log"
	"github.com/aqrl/xrpl-toolkit/params"
	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
)

var (
	// ConfigFileFlag --config
	ConfigFileFlag = &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Specify config file",
	}
	// NetFlag --net
	NetFlag = &cli.StringFlag{
		Name:  "net",
		Usage: "network to use (mainnet, testnet, devnet)",
	}
	// RemoteFlag --remote
	RemoteFlag = &cli.StringFlag{
		Name:  "remote",
		Usage: "websocket api provider, override the network default",
	}
	// JSONRPCFlag --rpc
	JSONRPCFlag = &cli.StringFlag{
		Name:  "rpc",
		Usage: "json-rpc api provider, override the network default",
	}
	// VerbosityFlag --verbosity
	VerbosityFlag = &cli.Uint64Flag{
		Name:    "verbosity",
		Aliases: []string{"v"},
		Usage:   "log verbosity (0:panic, 1:fatal, 2:error, 3:warn, 4:info, 5:debug, 6:trace)",
		Value:   4,
	}
	// JSONFormatFlag --json
	JSONFormatFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "output log in json format",
	}
	// ColorFormatFlag --color
	ColorFormatFlag = &cli.BoolFlag{
		Name:  "color",
		Usage: "output log and results in color text format",
		Value: true,
	}
	// LogFileFlag --logfile
	LogFileFlag = &cli.StringFlag{
		Name:  "logfile",
		Usage: "Specify log file, support rotate",
	}
	// LogRotationFlag --rotate
	LogRotationFlag = &cli.Uint64Flag{
		Name:  "rotate",
		Usage: "log rotation time (unit hour)",
		Value: 24,
	}
	// LogMaxAgeFlag --maxage
	LogMaxAgeFlag = &cli.Uint64Flag{
		Name:  "maxage",
		Usage: "log max age (unit hour)",
		Value: 720,
	}

	// SeedFlag --seed
	SeedFlag = &cli.StringFlag{
		Name:  "seed",
		Usage: "family seed of the account",
	}
	// WalletFlag --wallet
	WalletFlag = &cli.StringFlag{
		Name:  "wallet",
		Usage: "name of a wallet in the wallet store",
	}

	// CommonFlags are accepted by every command
	CommonFlags = []cli.Flag{
		ConfigFileFlag,
		NetFlag,
		RemoteFlag,
		JSONRPCFlag,
		VerbosityFlag,
		JSONFormatFlag,
		ColorFormatFlag,
		LogFileFlag,
		LogRotationFlag,
		LogMaxAgeFlag,
	}
)

// SetLogger set log level, json format, color format, logfile
func SetLogger(ctx *cli.Context) {
	logLevel := ctx.Uint64(VerbosityFlag.Name)
	jsonFormat := ctx.Bool(JSONFormatFlag.Name)
	colorFormat := ctx.Bool(ColorFormatFlag.Name)
	log.SetLogger(uint32(logLevel), jsonFormat, colorFormat)
	color.NoColor = color.NoColor || !colorFormat

	logFile := ctx.String(LogFileFlag.Name)
	if logFile != "" {
		logRotation := ctx.Uint64(LogRotationFlag.Name)
		logMaxAge := ctx.Uint64(LogMaxAgeFlag.Name)
		if err := log.SetLogFile(logFile, logRotation, logMaxAge); err != nil {
			log.Warn("set log file failed", "logfile", logFile, "err", err)
		}
	}
}

// GetConfigFilePath specified by `-c|--config`
func GetConfigFilePath(ctx *cli.Context) string {
	return ctx.String(ConfigFileFlag.Name)
}

// LoadConfig loads the config file and applies the endpoint flags
func LoadConfig(ctx *cli.Context) (*params.ToolConfig, error) {
	config, err := params.LoadConfig(GetConfigFilePath(ctx), ctx.String(NetFlag.Name))
	if err != nil {
		return nil, err
	}
	if remote := ctx.String(RemoteFlag.Name); remote != "" {
		config.Remote.WebsocketURL = remote
	}
	if rpc := ctx.String(JSONRPCFlag.Name); rpc != "" {
		config.Remote.JSONRPCURL = rpc
	}
	if err := config.CheckConfig(); err != nil {
		return nil, err
	}
	return config, nil
}
