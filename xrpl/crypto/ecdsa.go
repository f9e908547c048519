package crypto

import (
	"crypto/rand"
	"encoding/binary"
	"math/big"

	"github.com/btcsuite/btcd/btcec"
)

var (
	order = btcec.S256().N
	zero  = big.NewInt(0)
)

type ecdsaKey struct {
	*btcec.PrivateKey
}

// newKey hashes seed||counter until the result is a valid scalar
func newKey(seed []byte) *big.Int {
	buf := make([]byte, len(seed)+4)
	copy(buf, seed)
	for i := uint32(0); ; i++ {
		binary.BigEndian.PutUint32(buf[len(seed):], i)
		key := new(big.Int).SetBytes(Sha512Half(buf))
		if key.Cmp(zero) > 0 && key.Cmp(order) < 0 {
			return key
		}
	}
}

func privKeyFromScalar(d *big.Int) *btcec.PrivateKey {
	priv, _ := btcec.PrivKeyFromBytes(btcec.S256(), paddedBytes(d, btcec.PrivKeyBytesLen))
	return priv
}

// NewECDSAKey derives the secp256k1 root key of a family seed.
// If seed is nil, generate a random one
func NewECDSAKey(seed []byte) (Key, error) {
	if seed == nil {
		seed = make([]byte, 16)
		if _, err := rand.Read(seed); err != nil {
			return nil, err
		}
	}
	return &ecdsaKey{privKeyFromScalar(newKey(seed))}, nil
}

// generateKey derives the account key at index sequence
func (k *ecdsaKey) generateKey(sequence uint32) *btcec.PrivateKey {
	seed := make([]byte, btcec.PubKeyBytesLenCompressed+4)
	copy(seed, k.PubKey().SerializeCompressed())
	binary.BigEndian.PutUint32(seed[btcec.PubKeyBytesLenCompressed:], sequence)
	d := newKey(seed)
	d.Add(d, k.D).Mod(d, order)
	return privKeyFromScalar(d)
}

func (k *ecdsaKey) Id(sequence *uint32) []byte {
	return Sha256RipeMD160(k.Public(sequence))
}

func (k *ecdsaKey) Private(sequence *uint32) []byte {
	if sequence == nil {
		return paddedBytes(k.D, btcec.PrivKeyBytesLen)
	}
	return paddedBytes(k.generateKey(*sequence).D, btcec.PrivKeyBytesLen)
}

func (k *ecdsaKey) Public(sequence *uint32) []byte {
	if sequence == nil {
		return k.PubKey().SerializeCompressed()
	}
	return k.generateKey(*sequence).PubKey().SerializeCompressed()
}

func paddedBytes(v *big.Int, size int) []byte {
	b := v.Bytes()
	if len(b) >= size {
		return b
	}
	out := make([]byte, size)
	copy(out[size-len(b):], b)
	return out
}
