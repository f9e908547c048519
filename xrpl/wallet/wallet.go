// Package wallet derives wallets from seeds and funds them from test network faucets.
package wallet

import (
	"fmt"
	"strings"

	"github.com/aqrl/xrpl-toolkit/xrpl/addresscodec"
	"github.com/aqrl/xrpl-toolkit/xrpl/crypto"
)

// Wallet is a key pair and its classic address. Sequence is the next
// transaction sequence of the account, it does not affect key derivation.
type Wallet struct {
	Seed           string           `json:"seed"`
	Algorithm      crypto.Algorithm `json:"algorithm"`
	PublicKey      string           `json:"public_key"`
	PrivateKey     string           `json:"private_key"`
	ClassicAddress string           `json:"classic_address"`
	Sequence       uint32           `json:"sequence"`
}

// NewWallet derives the wallet of seed, keys are taken at account index 0
func NewWallet(seed string, sequence uint32) (*Wallet, error) {
	key, algorithm, err := crypto.ImportKeyFromSeed(seed)
	if err != nil {
		return nil, err
	}
	var index uint32
	address, err := addresscodec.EncodeClassicAddress(key.Id(&index))
	if err != nil {
		return nil, err
	}

	var private string
	switch algorithm {
	case crypto.ED25519:
		private = fmt.Sprintf("%X%X", crypto.ED25519Prefix, key.Private(&index)[:32])
	default:
		private = fmt.Sprintf("00%X", key.Private(&index))
	}
	return &Wallet{
		Seed:           seed,
		Algorithm:      algorithm,
		PublicKey:      fmt.Sprintf("%X", key.Public(&index)),
		PrivateKey:     private,
		ClassicAddress: address,
		Sequence:       sequence,
	}, nil
}

// CreateWallet creates a wallet from a new random seed
func CreateWallet(algorithm crypto.Algorithm) (*Wallet, error) {
	if algorithm == "" {
		algorithm = crypto.ED25519
	}
	seed, err := crypto.GenerateSeed(algorithm)
	if err != nil {
		return nil, err
	}
	return NewWallet(seed, 0)
}

// XAddress encodes the classic address with an optional tag
func (w *Wallet) XAddress(tag *uint32, isTestNetwork bool) (string, error) {
	return addresscodec.ClassicAddressToXAddress(w.ClassicAddress, tag, isTestNetwork)
}

// String does not include the seed or private key
func (w *Wallet) String() string {
	return strings.Join([]string{
		"public_key: " + w.PublicKey,
		"private_key: -HIDDEN-",
		"classic_address: " + w.ClassicAddress,
	}, "\n")
}
