package main

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func newQueryContext(t *testing.T, args ...string) *cli.Context {
	set := flag.NewFlagSet("test", flag.ContinueOnError)
	for _, f := range queryFlags {
		require.NoError(t, f.Apply(set))
	}
	require.NoError(t, set.Parse(args))
	return cli.NewContext(cli.NewApp(), set, nil)
}

func TestQueryOptions(t *testing.T) {
	opts := queryOptions(newQueryContext(t))
	assert.Equal(t, 100, opts.Limit)
	assert.Nil(t, opts.Marker)
	assert.True(t, opts.Debug)

	opts = queryOptions(newQueryContext(t, "--limit", "5", "--quiet", "--marker", `{"ledger":5,"seq":1}`))
	assert.Equal(t, 5, opts.Limit)
	assert.False(t, opts.Debug)
	assert.Equal(t, map[string]interface{}{"ledger": float64(5), "seq": float64(1)}, opts.Marker)

	opts = queryOptions(newQueryContext(t, "--marker", "ABCDEF"))
	assert.Equal(t, "ABCDEF", opts.Marker)
}

func TestLoadWalletNeedsSeedOrName(t *testing.T) {
	_, err := loadWallet(newQueryContext(t), "")
	assert.Error(t, err)

	w, err := loadWallet(newQueryContext(t), "snoPBrXtMeMyMHUVTgbuqAfg1SUTb")
	require.NoError(t, err)
	assert.Equal(t, "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh", w.ClassicAddress)
}

func TestAppCommands(t *testing.T) {
	initApp()
	var names []string
	for _, c := range app.Commands {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"faucet", "address", "xaddress", "accountinfo", "nfts", "offers", "txs", "tx", "wallets", "version"}, names)
}
