package params

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/aqrl/xrpl-toolkit/common"
	"github.com/aqrl/xrpl-toolkit/log"
	"github.com/aqrl/xrpl-toolkit/xrpl/wallet"
)

// network names
const (
	NetMain = "mainnet"
	NetTest = "testnet"
	NetDev  = "devnet"
)

const (
	defaultRPCTimeout         = 60 // seconds
	defaultWalletDir          = "~/.xrpltools/wallets"
	defaultFaucetPollInterval = 1000 // milliseconds
	defaultFaucetMaxAttempts  = 40
)

var (
	toolConfig *ToolConfig

	defaultNetworks = map[string]NetworkConfig{
		NetMain: {
			WebsocketURL: "wss://s2.ripple.com:443/",
			JSONRPCURL:   "https://s2.ripple.com:51234/",
		},
		NetTest: {
			WebsocketURL: "wss://s.altnet.rippletest.net:443/",
			JSONRPCURL:   "https://s.altnet.rippletest.net:51234/",
			FaucetURL:    wallet.AltnetFaucetURL,
		},
		NetDev: {
			WebsocketURL: "wss://s.devnet.rippletest.net:443/",
			JSONRPCURL:   "https://s.devnet.rippletest.net:51234/",
			FaucetURL:    wallet.DevnetFaucetURL,
		},
	}
)

// ToolConfig config items (decode from toml file)
type ToolConfig struct {
	Network    string
	Remote     *NetworkConfig `toml:",omitempty" json:",omitempty"`
	WalletDir  string         `toml:",omitempty" json:",omitempty"`
	RPCTimeout int            `toml:",omitempty" json:",omitempty"`
	Faucet     *FaucetConfig  `toml:",omitempty" json:",omitempty"`
}

// NetworkConfig ledger endpoints of a network
type NetworkConfig struct {
	WebsocketURL string
	JSONRPCURL   string
	FaucetURL    string `toml:",omitempty" json:",omitempty"`
}

// FaucetConfig faucet funding config
type FaucetConfig struct {
	PollInterval uint64 // milliseconds
	MaxAttempts  int
	Algorithm    string `toml:",omitempty" json:",omitempty"`
}

// NormalizeNetwork maps a network name or alias to its canonical name
func NormalizeNetwork(name string) (string, error) {
	switch strings.ToLower(name) {
	case "mainnet", "main":
		return NetMain, nil
	case "testnet", "test", "altnet", "":
		return NetTest, nil
	case "devnet", "dev":
		return NetDev, nil
	default:
		return "", fmt.Errorf("unknown network: %v", name)
	}
}

// GetNetworkConfig returns the default endpoints of network
func GetNetworkConfig(network string) (*NetworkConfig, error) {
	name, err := NormalizeNetwork(network)
	if err != nil {
		return nil, err
	}
	cfg := defaultNetworks[name]
	return &cfg, nil
}

// GetAltnetJSONRPCURL returns the public altnet json-rpc endpoint
func GetAltnetJSONRPCURL() string {
	return defaultNetworks[NetTest].JSONRPCURL
}

// DefaultConfig returns the built-in config of network
func DefaultConfig(network string) (*ToolConfig, error) {
	config := &ToolConfig{Network: network}
	if err := config.fillDefaults(); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *ToolConfig) fillDefaults() error {
	name, err := NormalizeNetwork(c.Network)
	if err != nil {
		return err
	}
	c.Network = name
	defaults := defaultNetworks[name]
	if c.Remote == nil {
		c.Remote = &NetworkConfig{}
	}
	if c.Remote.WebsocketURL == "" {
		c.Remote.WebsocketURL = defaults.WebsocketURL
	}
	if c.Remote.JSONRPCURL == "" {
		c.Remote.JSONRPCURL = defaults.JSONRPCURL
	}
	if c.Remote.FaucetURL == "" {
		c.Remote.FaucetURL = defaults.FaucetURL
	}
	if c.WalletDir == "" {
		c.WalletDir = defaultWalletDir
	}
	if c.RPCTimeout == 0 {
		c.RPCTimeout = defaultRPCTimeout
	}
	if c.Faucet == nil {
		c.Faucet = &FaucetConfig{}
	}
	if c.Faucet.PollInterval == 0 {
		c.Faucet.PollInterval = defaultFaucetPollInterval
	}
	if c.Faucet.MaxAttempts == 0 {
		c.Faucet.MaxAttempts = defaultFaucetMaxAttempts
	}
	return nil
}

// GetConfig get tool config
func GetConfig() *ToolConfig {
	return toolConfig
}

// SetConfig set tool config
func SetConfig(config *ToolConfig) {
	toolConfig = config
}

// LoadConfig loads configFile, or the defaults of network if configFile is empty.
// A non empty network overrides the one in the file.
func LoadConfig(configFile, network string) (*ToolConfig, error) {
	config := &ToolConfig{}
	if configFile != "" {
		log.Println("Config file is", configFile)
		if !common.FileExist(configFile) {
			return nil, fmt.Errorf("LoadConfig error: config file %v not exist", configFile)
		}
		if _, err := toml.DecodeFile(configFile, config); err != nil {
			return nil, fmt.Errorf("LoadConfig error (toml DecodeFile): %w", err)
		}
	}
	if network != "" {
		config.Network = network
	}
	if err := config.fillDefaults(); err != nil {
		return nil, err
	}
	if err := config.CheckConfig(); err != nil {
		return nil, fmt.Errorf("check config failed. %w", err)
	}

	SetConfig(config)
	var bs []byte
	if log.JSONFormat {
		bs, _ = json.Marshal(config)
	} else {
		bs, _ = json.MarshalIndent(config, "", "  ")
	}
	log.Debug("LoadConfig finished.", "config", string(bs))
	return config, nil
}

// GetWalletDir returns the wallet dir as an absolute path
func (c *ToolConfig) GetWalletDir() string {
	currDir, err := common.CurrentDir()
	if err != nil {
		log.Warn("get current dir failed", "err", err)
	}
	return common.AbsolutePath(currDir, c.WalletDir)
}

// GetPollInterval faucet poll interval
func (c *FaucetConfig) GetPollInterval() time.Duration {
	return time.Duration(c.PollInterval) * time.Millisecond
}
