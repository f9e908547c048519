package crypto

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/mr-tron/base58"
)

var rippleAlphabet = base58.NewAlphabet(ALPHABET)

// ErrBadChecksum is returned when the trailing checksum does not match
var ErrBadChecksum = errors.New("Bad Base58 checksum")

// Base58Encode encodes b with the given alphabet, no checksum is added
func Base58Encode(b []byte, alphabet string) string {
	return base58.EncodeAlphabet(b, alphabetFor(alphabet))
}

// Base58Decode decodes s with the given alphabet, no checksum is checked
func Base58Decode(s, alphabet string) ([]byte, error) {
	return base58.DecodeAlphabet(s, alphabetFor(alphabet))
}

// Base58CheckEncode appends the 4 byte double sha256 checksum and encodes
// with the ripple alphabet
func Base58CheckEncode(b []byte) string {
	buf := make([]byte, 0, len(b)+4)
	buf = append(buf, b...)
	buf = append(buf, DoubleSha256(b)[:4]...)
	return Base58Encode(buf, ALPHABET)
}

// Base58CheckDecode decodes s with the ripple alphabet and strips the
// verified checksum
func Base58CheckDecode(s string) ([]byte, error) {
	decoded, err := Base58Decode(s, ALPHABET)
	if err != nil {
		return nil, err
	}
	if len(decoded) < 5 {
		return nil, fmt.Errorf("%w: %s is too short", ErrBadChecksum, s)
	}
	payload, checksum := decoded[:len(decoded)-4], decoded[len(decoded)-4:]
	if !bytes.Equal(DoubleSha256(payload)[:4], checksum) {
		return nil, fmt.Errorf("%w: %s", ErrBadChecksum, s)
	}
	return payload, nil
}

func alphabetFor(alphabet string) *base58.Alphabet {
	if alphabet == ALPHABET {
		return rippleAlphabet
	}
	return base58.NewAlphabet(alphabet)
}
