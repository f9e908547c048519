// Package addresscodec encodes and decodes classic addresses and x-addresses.
package addresscodec

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"regexp"

	"github.com/aqrl/xrpl-toolkit/xrpl/crypto"
)

// AccountIDLength is the length of a decoded classic address
const AccountIDLength = 20

var (
	rAddressReg = regexp.MustCompile("^r[1-9a-km-zA-HJ-NP-Z]{24,34}$")

	mainnetPrefix = []byte{0x05, 0x44}
	testnetPrefix = []byte{0x04, 0x93}
)

// errors
var (
	ErrInvalidClassicAddress = errors.New("invalid classic address")
	ErrInvalidXAddress       = errors.New("invalid x-address")
	ErrUnsupportedTag        = errors.New("unsupported x-address tag")
)

// EncodeClassicAddress encodes a 20 byte account id
func EncodeClassicAddress(accountID []byte) (string, error) {
	if len(accountID) != AccountIDLength {
		return "", fmt.Errorf("%w: account id must be %d bytes, got %d", ErrInvalidClassicAddress, AccountIDLength, len(accountID))
	}
	h, err := crypto.NewAccountId(accountID)
	if err != nil {
		return "", err
	}
	return h.String(), nil
}

// DecodeClassicAddress returns the account id of a classic address
func DecodeClassicAddress(addr string) ([]byte, error) {
	if !rAddressReg.MatchString(addr) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidClassicAddress, addr)
	}
	h, err := crypto.NewRippleHashCheck(addr, crypto.RIPPLE_ACCOUNT_ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidClassicAddress, err)
	}
	return h.Payload(), nil
}

// IsValidClassicAddress check address
func IsValidClassicAddress(addr string) bool {
	_, err := DecodeClassicAddress(addr)
	return err == nil
}

// ClassicAddressToXAddress encodes a classic address with an optional tag
func ClassicAddressToXAddress(addr string, tag *uint32, isTestNetwork bool) (string, error) {
	accountID, err := DecodeClassicAddress(addr)
	if err != nil {
		return "", err
	}
	return EncodeXAddress(accountID, tag, isTestNetwork)
}

// EncodeXAddress encodes an account id with an optional tag
func EncodeXAddress(accountID []byte, tag *uint32, isTestNetwork bool) (string, error) {
	if len(accountID) != AccountIDLength {
		return "", fmt.Errorf("%w: account id must be %d bytes, got %d", ErrInvalidXAddress, AccountIDLength, len(accountID))
	}
	buf := make([]byte, 0, 31)
	if isTestNetwork {
		buf = append(buf, testnetPrefix...)
	} else {
		buf = append(buf, mainnetPrefix...)
	}
	buf = append(buf, accountID...)

	// flag, 32 bit little endian tag, 32 reserved bits for 64 bit tags
	var flag byte
	var tagBytes [8]byte
	if tag != nil {
		flag = 1
		binary.LittleEndian.PutUint32(tagBytes[:4], *tag)
	}
	buf = append(buf, flag)
	buf = append(buf, tagBytes[:]...)
	return crypto.Base58CheckEncode(buf), nil
}

// XAddressToClassicAddress returns the classic address, tag and network of an x-address
func XAddressToClassicAddress(xaddr string) (addr string, tag *uint32, isTestNetwork bool, err error) {
	accountID, tag, isTestNetwork, err := DecodeXAddress(xaddr)
	if err != nil {
		return "", nil, false, err
	}
	addr, err = EncodeClassicAddress(accountID)
	if err != nil {
		return "", nil, false, err
	}
	return addr, tag, isTestNetwork, nil
}

// DecodeXAddress returns the account id, tag and network of an x-address
func DecodeXAddress(xaddr string) (accountID []byte, tag *uint32, isTestNetwork bool, err error) {
	decoded, err := crypto.Base58CheckDecode(xaddr)
	if err != nil {
		return nil, nil, false, fmt.Errorf("%w: %v", ErrInvalidXAddress, err)
	}
	if len(decoded) != 31 {
		return nil, nil, false, fmt.Errorf("%w: wrong length %d", ErrInvalidXAddress, len(decoded))
	}
	switch {
	case bytes.Equal(decoded[:2], mainnetPrefix):
	case bytes.Equal(decoded[:2], testnetPrefix):
		isTestNetwork = true
	default:
		return nil, nil, false, fmt.Errorf("%w: unknown network prefix %X", ErrInvalidXAddress, decoded[:2])
	}
	accountID = decoded[2:22]
	flag, tagBytes := decoded[22], decoded[23:]
	switch flag {
	case 0:
		if !bytes.Equal(tagBytes, make([]byte, 8)) {
			return nil, nil, false, fmt.Errorf("%w: tag bytes set without tag flag", ErrInvalidXAddress)
		}
	case 1:
		if !bytes.Equal(tagBytes[4:], make([]byte, 4)) {
			return nil, nil, false, ErrUnsupportedTag
		}
		t := binary.LittleEndian.Uint32(tagBytes[:4])
		tag = &t
	default:
		return nil, nil, false, fmt.Errorf("%w: flag %d", ErrUnsupportedTag, flag)
	}
	return accountID, tag, isTestNetwork, nil
}

// IsValidXAddress check x-address
func IsValidXAddress(xaddr string) bool {
	_, _, _, err := DecodeXAddress(xaddr)
	return err == nil
}
