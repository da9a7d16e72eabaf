// Package evm implements the numeric and ABI word-level primitives shared by
// every chainflow action: hex/decimal base conversion, exact fixed-point unit
// conversion between wei and human-readable amounts, 32-byte-word ABI
// encoding and decoding for static types, and address/hash format checks.
//
// All functions are pure and stateless. Amounts are handled exclusively as
// arbitrary-precision integers (math/big); no value ever passes through
// binary floating point, since results can represent real funds.
package evm

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// ErrInvalidEncoding is returned when an input string cannot be parsed as a
// hexadecimal or decimal number.
var ErrInvalidEncoding = errors.New("invalid numeric encoding")

// normalizeHex strips an optional "0x"/"0X" prefix and lowercases the rest.
func normalizeHex(s string) string {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
	}
	return strings.ToLower(s)
}

// HexToDecimal converts a hexadecimal quantity (with or without the "0x"
// prefix) to its unsigned decimal string representation.
//
// Empty input and the bare prefix "0x" both represent "no data" on the EVM
// wire and convert to "0". Any other unparsable input returns
// ErrInvalidEncoding. The result is always unsigned: EVM quantities carry no
// sign bit at this layer.
func HexToDecimal(hex string) (string, error) {
	digits := normalizeHex(hex)
	if digits == "" {
		return "0", nil
	}

	// big.Int.SetString accepts a leading sign, which would let a signed
	// result escape. Quantities at this layer are unsigned hex digits only.
	if !isHexDigits(digits) {
		return "", fmt.Errorf("%w: %q is not a hexadecimal number", ErrInvalidEncoding, hex)
	}

	n, ok := new(big.Int).SetString(digits, 16)
	if !ok {
		return "", fmt.Errorf("%w: %q is not a hexadecimal number", ErrInvalidEncoding, hex)
	}

	return n.String(), nil
}

// DecimalToHex converts an unsigned decimal string to its minimal "0x"
// prefixed lowercase hexadecimal representation (no leading zeros, no
// padding; zero renders as "0x0").
func DecimalToHex(decimal string) (string, error) {
	n, err := parseDecimal(decimal)
	if err != nil {
		return "", err
	}

	return "0x" + n.Text(16), nil
}

// parseDecimal parses an unsigned decimal string into a big.Int.
func parseDecimal(s string) (*big.Int, error) {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok || n.Sign() < 0 {
		return nil, fmt.Errorf("%w: %q is not an unsigned decimal number", ErrInvalidEncoding, s)
	}
	return n, nil
}

// parseHexBig parses a hexadecimal quantity into a big.Int, treating empty
// input and "0x" as zero.
func parseHexBig(s string) (*big.Int, error) {
	digits := normalizeHex(s)
	if digits == "" {
		return new(big.Int), nil
	}

	if !isHexDigits(digits) {
		return nil, fmt.Errorf("%w: %q is not a hexadecimal number", ErrInvalidEncoding, s)
	}

	n, ok := new(big.Int).SetString(digits, 16)
	if !ok {
		return nil, fmt.Errorf("%w: %q is not a hexadecimal number", ErrInvalidEncoding, s)
	}
	return n, nil
}
