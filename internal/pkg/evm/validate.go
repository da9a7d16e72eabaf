package evm

import (
	"errors"
	"strings"
)

const (
	// addressChars is the width of a 20-byte address in hex characters.
	addressChars = 40

	// hashChars is the width of a 32-byte hash in hex characters.
	hashChars = 64
)

// Sentinel errors surfaced to action handlers when a user-supplied
// identifier fails the format check.
var (
	ErrInvalidAddress = errors.New("invalid address")
	ErrInvalidHash    = errors.New("invalid transaction hash")
)

// IsValidAddress reports whether s is "0x" followed by exactly 40 hex
// digits. This is a purely syntactic check; no EIP-55 checksum validation
// and no on-chain existence check.
func IsValidAddress(s string) bool {
	return isPrefixedHex(s, addressChars)
}

// IsValidTxHash reports whether s is "0x" followed by exactly 64 hex digits.
func IsValidTxHash(s string) bool {
	return isPrefixedHex(s, hashChars)
}

// isPrefixedHex reports whether s is "0x" followed by exactly n hex digits.
func isPrefixedHex(s string, n int) bool {
	if len(s) != n+2 || !strings.HasPrefix(s, "0x") {
		return false
	}
	return isHexDigits(strings.ToLower(s[2:]))
}

// isHexDigits reports whether s consists solely of lowercase hex digits.
func isHexDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}

// AddressToTopic left-pads a 20-byte address to a full 32-byte log topic,
// the form indexed address parameters take in event filters.
func AddressToTopic(address string) (string, error) {
	if !IsValidAddress(address) {
		return "", ErrInvalidAddress
	}
	return "0x" + leftPadWord(strings.ToLower(address[2:])), nil
}
