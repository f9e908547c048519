package walletstore

import (
	"testing"

	"github.com/aqrl/xrpl-toolkit/leveldb"
	"github.com/aqrl/xrpl-toolkit/xrpl/wallet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const genesisSeed = "snoPBrXtMeMyMHUVTgbuqAfg1SUTb"

func newStore(t *testing.T) *Store {
	db, err := leveldb.NewMemory()
	require.NoError(t, err)
	s, err := New(db, "testnet")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSaveLoad(t *testing.T) {
	s := newStore(t)
	w, err := wallet.NewWallet(genesisSeed, 3)
	require.NoError(t, err)
	require.NoError(t, s.Save("genesis", w))

	got, err := s.Load("genesis")
	require.NoError(t, err)
	assert.Equal(t, w, got)

	_, err = s.Load("nobody")
	assert.ErrorIs(t, err, ErrWalletNotFound)
}

func TestSaveInvalidName(t *testing.T) {
	s := newStore(t)
	w, err := wallet.NewWallet(genesisSeed, 0)
	require.NoError(t, err)
	for _, name := range []string{"", "has space", "wallet:x"} {
		assert.ErrorIs(t, s.Save(name, w), ErrInvalidName, name)
	}
}

func TestListSortedAndDelete(t *testing.T) {
	s := newStore(t)
	for _, name := range []string{"charlie", "alice", "bob"} {
		w, err := wallet.CreateWallet("")
		require.NoError(t, err)
		require.NoError(t, s.Save(name, w))
	}

	records, err := s.List()
	require.NoError(t, err)
	var names []string
	for _, r := range records {
		names = append(names, r.Name)
		assert.Equal(t, "testnet", r.Network)
	}
	assert.Equal(t, []string{"alice", "bob", "charlie"}, names)

	require.NoError(t, s.Delete("bob"))
	assert.ErrorIs(t, s.Delete("bob"), ErrWalletNotFound)
	records, err = s.List()
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestNetworkMismatch(t *testing.T) {
	db, err := leveldb.NewMemory()
	require.NoError(t, err)
	defer db.Close()
	_, err = New(db, "testnet")
	require.NoError(t, err)
	_, err = New(db, "devnet")
	assert.ErrorIs(t, err, ErrNetworkMismatch)
	_, err = New(db, "testnet")
	assert.NoError(t, err)
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(dir, "devnet")
	require.NoError(t, err)
	w, err := wallet.NewWallet(genesisSeed, 0)
	require.NoError(t, err)
	require.NoError(t, s.Save("genesis", w))
	require.NoError(t, s.Close())

	s, err = Open(dir, "devnet")
	require.NoError(t, err)
	defer s.Close()
	got, err := s.Load("genesis")
	require.NoError(t, err)
	assert.Equal(t, w.ClassicAddress, got.ClassicAddress)
}

func TestAddressIndex(t *testing.T) {
	s := newStore(t)
	first, err := wallet.NewWallet(genesisSeed, 0)
	require.NoError(t, err)
	require.NoError(t, s.Save("main", first))

	name, err := s.FindByAddress(first.ClassicAddress)
	require.NoError(t, err)
	assert.Equal(t, "main", name)

	// replacing the wallet moves the index to the new address
	second, err := wallet.CreateWallet("")
	require.NoError(t, err)
	require.NoError(t, s.Save("main", second))
	_, err = s.FindByAddress(first.ClassicAddress)
	assert.ErrorIs(t, err, ErrWalletNotFound)
	name, err = s.FindByAddress(second.ClassicAddress)
	require.NoError(t, err)
	assert.Equal(t, "main", name)

	records, err := s.List()
	require.NoError(t, err)
	assert.Len(t, records, 1)

	require.NoError(t, s.Delete("main"))
	_, err = s.FindByAddress(second.ClassicAddress)
	assert.ErrorIs(t, err, ErrWalletNotFound)
}
