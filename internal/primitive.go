// Package internal provides the hashing building blocks for Balloon.
// This package wraps golang.org/x/crypto and crypto/* packages.
package internal

import (
	"crypto/sha256"
	"crypto/sha512"
	"hash"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// NewSHA256 returns a SHA-256 state (32-byte blocks).
func NewSHA256() hash.Hash {
	return sha256.New()
}

// NewSHA512 returns a SHA-512 state (64-byte blocks).
func NewSHA512() hash.Hash {
	return sha512.New()
}

// NewBlake2b256 returns an unkeyed Blake2b state with a 32-byte output.
func NewBlake2b256() hash.Hash {
	h, err := blake2b.New256(nil)
	if err != nil {
		// Only reachable with a key longer than 64 bytes.
		panic("internal: blake2b: " + err.Error())
	}
	return h
}

// NewSHA3_256 returns a SHA3-256 state (32-byte blocks).
func NewSHA3_256() hash.Hash {
	return sha3.New256()
}
