package crypto

import (
	"crypto/sha256"
	"crypto/sha512"

	"golang.org/x/crypto/ripemd160"
)

// Write operations in a hash.Hash never return an error

// Sha512Half returns first 32 bytes of a SHA512 of the input bytes
func Sha512Half(b []byte) []byte {
	hasher := sha512.New()
	hasher.Write(b)
	return hasher.Sum(nil)[:32]
}

// Sha512Quarter returns first 16 bytes of a SHA512 of the input bytes
func Sha512Quarter(b []byte) []byte {
	hasher := sha512.New()
	hasher.Write(b)
	return hasher.Sum(nil)[:16]
}

// DoubleSha256 returns sha256(sha256(b))
func DoubleSha256(b []byte) []byte {
	first := sha256.Sum256(b)
	second := sha256.Sum256(first[:])
	return second[:]
}

// Sha256RipeMD160 returns ripemd160(sha256(b)), the account id hash
func Sha256RipeMD160(b []byte) []byte {
	ripe := ripemd160.New()
	sha := sha256.Sum256(b)
	ripe.Write(sha[:])
	return ripe.Sum(nil)
}
