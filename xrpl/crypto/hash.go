package crypto

import (
	"fmt"
	"math/big"
)

// First byte is the version
// Remaining bytes are the payload
type hash []byte

// NewRippleHash decodes a base58 check encoded value
func NewRippleHash(s string) (Hash, error) {
	// Special case which will deal short addresses
	switch s {
	case "0":
		return newHashFromString(ACCOUNT_ZERO)
	case "1":
		return newHashFromString(ACCOUNT_ONE)
	default:
		return newHashFromString(s)
	}
}

// NewRippleHashCheck checks hash matches expected version
func NewRippleHashCheck(s string, version HashVersion) (Hash, error) {
	hash, err := NewRippleHash(s)
	if err != nil {
		return nil, err
	}
	if hash.Version() != version {
		return nil, fmt.Errorf("Bad version for: %s expected: %s got: %s", s, describe(version), describe(hash.Version()))
	}
	if want := hashTypes[version].Payload; len(hash.Payload()) != want {
		return nil, fmt.Errorf("Bad payload length for: %s expected: %d got: %d", s, want, len(hash.Payload()))
	}
	return hash, nil
}

// NewAccountId wraps a 20 byte account id
func NewAccountId(b []byte) (Hash, error) {
	return newHash(b, RIPPLE_ACCOUNT_ID)
}

// NewAccountPublicKey wraps an account public key
func NewAccountPublicKey(b []byte) (Hash, error) {
	return newHash(b, RIPPLE_ACCOUNT_PUBLIC)
}

// NewAccountPrivateKey wraps an account private key
func NewAccountPrivateKey(b []byte) (Hash, error) {
	return newHash(b, RIPPLE_ACCOUNT_PRIVATE)
}

// NewNodePublicKey wraps a node public key
func NewNodePublicKey(b []byte) (Hash, error) {
	return newHash(b, RIPPLE_NODE_PUBLIC)
}

// NewFamilySeed wraps 16 bytes of secp256k1 seed entropy
func NewFamilySeed(b []byte) (Hash, error) {
	return newHash(b, RIPPLE_FAMILY_SEED)
}

// AccountId derives the account id of key
func AccountId(key Key, sequence *uint32) (Hash, error) {
	return NewAccountId(key.Id(sequence))
}

// AccountPublicKey derives the account public key of key
func AccountPublicKey(key Key, sequence *uint32) (Hash, error) {
	return NewAccountPublicKey(key.Public(sequence))
}

// AccountPrivateKey derives the account private key of key
func AccountPrivateKey(key Key, sequence *uint32) (Hash, error) {
	return NewAccountPrivateKey(key.Private(sequence))
}

// NodePublicKey is the root public key of key
func NodePublicKey(key Key) (Hash, error) {
	return NewNodePublicKey(key.Public(nil))
}

// GenerateFamilySeed derives a seed from a passphrase
func GenerateFamilySeed(password string) (Hash, error) {
	return NewFamilySeed(Sha512Quarter([]byte(password)))
}

func newHash(b []byte, version HashVersion) (Hash, error) {
	n := hashTypes[version].Payload
	if len(b) > n {
		return nil, fmt.Errorf("Hash is wrong size, expected: %d got: %d", n, len(b))
	}
	return append(hash{byte(version)}, b...), nil
}

func newHashFromString(s string) (Hash, error) {
	decoded, err := Base58CheckDecode(s)
	if err != nil {
		return nil, err
	}
	if len(decoded) < 2 {
		return nil, fmt.Errorf("Hash is too short: %s", s)
	}
	return hash(decoded), nil
}

func (h hash) String() string {
	return Base58CheckEncode(h)
}

func (h hash) Version() HashVersion {
	return HashVersion(h[0])
}

func (h hash) Payload() []byte {
	return h[1:]
}

// PayloadTrimmed returns a slice of the payload with leading zeroes omitted
func (h hash) PayloadTrimmed() []byte {
	payload := h.Payload()
	for i := range payload {
		if payload[i] != 0 {
			return payload[i:]
		}
	}
	return payload[len(payload)-1:]
}

func (h hash) Value() *big.Int {
	return big.NewInt(0).SetBytes(h.Payload())
}

func (h hash) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

func (h hash) Clone() Hash {
	c := make(hash, len(h))
	copy(c, h)
	return c
}
