package crypto

import (
	"bytes"
	"crypto/rand"
	"errors"
	"fmt"
	"strings"
)

// Algorithm is the signing algorithm a seed derives keys for
type Algorithm string

// supported algorithms
const (
	ED25519   Algorithm = "ed25519"
	SECP256K1 Algorithm = "secp256k1"
)

// SeedLength is the length of seed entropy
const SeedLength = 16

// ed25519 seeds share one base58 form starting with "sEd"
var ed25519SeedPrefix = []byte{0x01, 0xE1, 0x4B}

// ErrInvalidSeed is returned for seeds with a bad length or prefix
var ErrInvalidSeed = errors.New("invalid seed")

// ParseAlgorithm parses an algorithm name, "ecdsa" is accepted for secp256k1
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(s) {
	case "", string(ED25519):
		return ED25519, nil
	case string(SECP256K1), "ecdsa":
		return SECP256K1, nil
	default:
		return "", fmt.Errorf("invalid crypto type %v", s)
	}
}

// EncodeSeed encodes 16 bytes of entropy as a base58 seed
func EncodeSeed(entropy []byte, algorithm Algorithm) (string, error) {
	if len(entropy) != SeedLength {
		return "", fmt.Errorf("%w: entropy must be %d bytes, got %d", ErrInvalidSeed, SeedLength, len(entropy))
	}
	switch algorithm {
	case ED25519:
		return Base58CheckEncode(append(append([]byte{}, ed25519SeedPrefix...), entropy...)), nil
	case SECP256K1:
		h, err := NewFamilySeed(entropy)
		if err != nil {
			return "", err
		}
		return h.String(), nil
	default:
		return "", fmt.Errorf("invalid crypto type %v", algorithm)
	}
}

// DecodeSeed returns the entropy and algorithm of a base58 seed
func DecodeSeed(seed string) ([]byte, Algorithm, error) {
	decoded, err := Base58CheckDecode(seed)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrInvalidSeed, err)
	}
	switch {
	case len(decoded) == len(ed25519SeedPrefix)+SeedLength && bytes.HasPrefix(decoded, ed25519SeedPrefix):
		return decoded[len(ed25519SeedPrefix):], ED25519, nil
	case len(decoded) == 1+SeedLength && HashVersion(decoded[0]) == RIPPLE_FAMILY_SEED:
		return decoded[1:], SECP256K1, nil
	default:
		return nil, "", fmt.Errorf("%w: %s", ErrInvalidSeed, seed)
	}
}

// GenerateSeed returns a new random seed
func GenerateSeed(algorithm Algorithm) (string, error) {
	entropy := make([]byte, SeedLength)
	if _, err := rand.Read(entropy); err != nil {
		return "", err
	}
	return EncodeSeed(entropy, algorithm)
}

// ImportKeyFromSeed converts a base58 seed to its root key
func ImportKeyFromSeed(seed string) (Key, Algorithm, error) {
	entropy, algorithm, err := DecodeSeed(seed)
	if err != nil {
		return nil, "", err
	}
	var key Key
	switch algorithm {
	case ED25519:
		key, err = NewEd25519Key(entropy)
	default:
		key, err = NewECDSAKey(entropy)
	}
	if err != nil {
		return nil, "", err
	}
	return key, algorithm, nil
}
