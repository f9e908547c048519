package crypto

import "math/big"

// Key is a key pair able to derive account keys by family sequence.
// A nil sequence means the root key.
type Key interface {
	Private(*uint32) []byte
	Id(*uint32) []byte
	Public(*uint32) []byte
}

// Hash is a versioned value with a base58 string form
type Hash interface {
	Version() HashVersion
	Payload() []byte
	PayloadTrimmed() []byte
	Value() *big.Int
	String() string
	Clone() Hash
	MarshalText() ([]byte, error)
}
