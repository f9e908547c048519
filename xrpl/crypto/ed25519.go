package crypto

import (
	"crypto/ed25519"
	"crypto/rand"
)

// ED25519Prefix marks ed25519 public and private keys
const ED25519Prefix byte = 0xED

type ed25519key struct {
	priv ed25519.PrivateKey
}

func checkSequenceIsNil(seq *uint32) {
	if seq != nil && *seq != 0 {
		panic("Ed25519 keys do not support account families")
	}
}

func (e *ed25519key) Id(seq *uint32) []byte {
	return Sha256RipeMD160(e.Public(seq))
}

func (e *ed25519key) Public(seq *uint32) []byte {
	checkSequenceIsNil(seq)
	return append([]byte{ED25519Prefix}, e.priv[32:]...)
}

func (e *ed25519key) Private(seq *uint32) []byte {
	checkSequenceIsNil(seq)
	return e.priv[:]
}

// NewEd25519Key derives an ed25519 key from seed entropy.
// If seed is nil, generate a random one
func NewEd25519Key(seed []byte) (Key, error) {
	if seed == nil {
		_, priv, err := ed25519.GenerateKey(rand.Reader)
		if err != nil {
			return nil, err
		}
		return &ed25519key{priv: priv}, nil
	}
	return &ed25519key{priv: ed25519.NewKeyFromSeed(Sha512Half(seed))}, nil
}
