package internal

import (
	"errors"
	"fmt"
	"math/big"
	"math/bits"
)

var (
	// ErrInvalidParameter reports a cost parameter or modulus outside its
	// valid range.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrInvalidDigest reports digest text that is not hexadecimal.
	ErrInvalidDigest = errors.New("invalid digest")
)

// ModReduce interprets hexDigest as a big-endian unsigned integer of any
// length and returns it modulo modulus.
//
// Digits are folded in left to right as acc = (acc*16 + digit) mod modulus.
// acc*16 is carried in 128 bits, so the result is exact for every uint64
// modulus; nothing is truncated to a machine word first.
func ModReduce(hexDigest string, modulus uint64) (uint64, error) {
	if modulus == 0 {
		return 0, fmt.Errorf("%w: modulus must be positive", ErrInvalidParameter)
	}

	var acc uint64
	for i := 0; i < len(hexDigest); i++ {
		d, ok := hexValue(hexDigest[i])
		if !ok {
			return 0, fmt.Errorf("%w: %q at offset %d", ErrInvalidDigest, hexDigest[i], i)
		}

		// acc < modulus, so hi = acc>>60 < modulus and Div64 cannot panic.
		// The low nibble of lo is zero, so adding d never carries.
		hi, lo := bits.Mul64(acc, 16)
		lo |= uint64(d)
		_, acc = bits.Div64(hi, lo, modulus)
	}

	return acc, nil
}

// ModReduceBig is ModReduce for arbitrary-size moduli. It builds the whole
// integer with math/big and reduces once.
func ModReduceBig(hexDigest string, modulus *big.Int) (*big.Int, error) {
	if modulus == nil || modulus.Sign() <= 0 {
		return nil, fmt.Errorf("%w: modulus must be positive", ErrInvalidParameter)
	}
	if hexDigest == "" {
		return new(big.Int), nil
	}

	// SetString also accepts a sign and underscores; a digest has neither.
	for i := 0; i < len(hexDigest); i++ {
		if _, ok := hexValue(hexDigest[i]); !ok {
			return nil, fmt.Errorf("%w: %q at offset %d", ErrInvalidDigest, hexDigest[i], i)
		}
	}

	n, ok := new(big.Int).SetString(hexDigest, 16)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDigest, hexDigest)
	}

	return n.Mod(n, modulus), nil
}

func hexValue(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
