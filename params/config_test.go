package params

import (
	"io/ioutil"
	"path/filepath"
	"testing"
	"time"

	"github.com/aqrl/xrpl-toolkit/xrpl/wallet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, ioutil.WriteFile(path, []byte(content), 0600))
	return path
}

func TestNormalizeNetwork(t *testing.T) {
	for name, want := range map[string]string{
		"main": NetMain, "MainNet": NetMain,
		"test": NetTest, "altnet": NetTest, "": NetTest,
		"dev": NetDev, "devnet": NetDev,
	} {
		got, err := NormalizeNetwork(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}
	_, err := NormalizeNetwork("moon")
	assert.Error(t, err)
}

func TestDefaultConfig(t *testing.T) {
	config, err := DefaultConfig("dev")
	require.NoError(t, err)
	assert.Equal(t, NetDev, config.Network)
	assert.Equal(t, "wss://s.devnet.rippletest.net:443/", config.Remote.WebsocketURL)
	assert.Equal(t, wallet.DevnetFaucetURL, config.Remote.FaucetURL)
	assert.Equal(t, defaultRPCTimeout, config.RPCTimeout)
	assert.Equal(t, time.Second, config.Faucet.GetPollInterval())
	assert.Equal(t, 40, config.Faucet.MaxAttempts)
	assert.NoError(t, config.CheckConfig())

	assert.Equal(t, "https://s.altnet.rippletest.net:51234/", GetAltnetJSONRPCURL())
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
Network = "testnet"
WalletDir = "/tmp/wallets"

[Remote]
WebsocketURL = "ws://127.0.0.1:6006"

[Faucet]
PollInterval = 250
MaxAttempts = 5
Algorithm = "secp256k1"
`)
	config, err := LoadConfig(path, "")
	require.NoError(t, err)
	assert.Same(t, config, GetConfig())
	assert.Equal(t, NetTest, config.Network)
	assert.Equal(t, "ws://127.0.0.1:6006", config.Remote.WebsocketURL)
	assert.Equal(t, "https://s.altnet.rippletest.net:51234/", config.Remote.JSONRPCURL)
	assert.Equal(t, wallet.AltnetFaucetURL, config.Remote.FaucetURL)
	assert.Equal(t, "/tmp/wallets", config.GetWalletDir())
	assert.Equal(t, 250*time.Millisecond, config.Faucet.GetPollInterval())
	assert.Equal(t, 5, config.Faucet.MaxAttempts)

	config, err = LoadConfig(path, "devnet")
	require.NoError(t, err)
	assert.Equal(t, NetDev, config.Network)
	assert.Equal(t, "ws://127.0.0.1:6006", config.Remote.WebsocketURL)
}

func TestLoadConfigWithoutFile(t *testing.T) {
	config, err := LoadConfig("", "main")
	require.NoError(t, err)
	assert.Equal(t, NetMain, config.Network)
	assert.Empty(t, config.Remote.FaucetURL)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"), "")
	assert.Error(t, err)

	_, err = LoadConfig(writeConfig(t, `Network = [`), "")
	assert.Error(t, err)

	_, err = LoadConfig(writeConfig(t, "[Remote]\nWebsocketURL = \"http://example.com\"\n"), "")
	assert.Error(t, err)

	_, err = LoadConfig(writeConfig(t, "[Faucet]\nAlgorithm = \"rsa\"\n"), "")
	assert.Error(t, err)

	_, err = LoadConfig(writeConfig(t, `Network = "moon"`), "")
	assert.Error(t, err)
}
