package evm

import (
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"strings"
)

var oneBig = big.NewInt(1)

const (
	// wordChars is the width of one ABI word in hex characters (32 bytes).
	wordChars = 64

	// selectorChars is the width of a 4-byte function selector in hex characters.
	selectorChars = 8
)

// ErrUnsupportedType is returned when a parameter or return type falls
// outside the static subset handled here (address, uint*/int*, bool,
// bytes32). Encoding used to silently drop such parameters, which corrupts
// call data one word at a time; failing loudly is the only safe behavior.
var ErrUnsupportedType = errors.New("unsupported abi type")

// Param is a typed value to be ABI-encoded into a single 32-byte word.
type Param struct {
	Type  string // declared type: address, uint256/uint*/int*, bool, bytes32
	Value string // textual value appropriate to the type
}

// isIntegerType reports whether the declared type is any sized or unsized
// uint/int variant (uint, uint8..uint256, int, int8..int256).
func isIntegerType(t string) bool {
	return strings.HasPrefix(t, "uint") || strings.HasPrefix(t, "int")
}

// EncodeCall builds call data from a 4-byte function selector and an ordered
// list of static typed parameters. Each parameter contributes exactly one
// 64-character word, so the result is selector + 64*len(params) hex
// characters.
//
// selector may be empty (no prefix) or a "0x"-prefixed 8-hex-digit string.
// Negative integer values are rejected: two's-complement encoding is out of
// scope, and a silently mis-encoded amount is worse than an error.
func EncodeCall(selector string, params []Param) (string, error) {
	prefix, err := normalizeSelector(selector)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("0x")
	b.WriteString(prefix)

	for i, p := range params {
		word, err := encodeWord(p)
		if err != nil {
			return "", fmt.Errorf("param %d (%s): %w", i, p.Type, err)
		}
		b.WriteString(word)
	}

	return b.String(), nil
}

// normalizeSelector validates and strips the selector prefix. An empty
// selector is allowed and yields an empty prefix.
func normalizeSelector(selector string) (string, error) {
	if selector == "" {
		return "", nil
	}

	s := normalizeHex(selector)
	if len(s) != selectorChars || !isHexDigits(s) {
		return "", fmt.Errorf("%w: selector %q must be 4 bytes", ErrInvalidEncoding, selector)
	}
	return s, nil
}

// encodeWord encodes a single static parameter into one 64-character word.
func encodeWord(p Param) (string, error) {
	switch t := p.Type; {
	case t == "address":
		addr := normalizeHex(p.Value)
		if len(addr) != addressChars || !isHexDigits(addr) {
			return "", fmt.Errorf("%w: %q", ErrInvalidAddress, p.Value)
		}
		return leftPadWord(addr), nil

	case isIntegerType(t):
		n, err := parseQuantity(p.Value)
		if err != nil {
			return "", err
		}
		if n.Sign() < 0 {
			return "", fmt.Errorf("%w: negative integers are not supported", ErrUnsupportedType)
		}
		digits := n.Text(16)
		if len(digits) > wordChars {
			return "", fmt.Errorf("%w: %q does not fit in 32 bytes", ErrInvalidEncoding, p.Value)
		}
		return leftPadWord(digits), nil

	case t == "bool":
		if isTruthy(p.Value) {
			return leftPadWord("1"), nil
		}
		return leftPadWord("0"), nil

	case t == "bytes32":
		content := normalizeHex(p.Value)
		if len(content) > wordChars || !isHexDigits(content) {
			return "", fmt.Errorf("%w: %q is not a bytes32 value", ErrInvalidEncoding, p.Value)
		}
		return rightPadWord(content), nil

	default:
		return "", ErrUnsupportedType
	}
}

// parseQuantity parses a textual amount as an unsigned big integer,
// accepting both decimal and "0x"-prefixed hexadecimal forms.
func parseQuantity(s string) (*big.Int, error) {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return parseHexBig(s)
	}
	return parseDecimal(s)
}

// isTruthy reports whether a value represents boolean true for encoding
// purposes: "true" (any case) or "1".
func isTruthy(v string) bool {
	return strings.EqualFold(v, "true") || v == "1"
}

// DecodeWords splits ABI-encoded hex data into consecutive 64-character
// words and decodes each against the corresponding declared type. Word i is
// decoded with types[i]; when fewer types than words are supplied, the
// remaining words decode as unsigned integers. A short trailing word is
// right-padded with zeros before interpretation, never dropped.
//
// The data must not carry a function selector; use DecodeCallData for call
// contexts.
func DecodeWords(data string, types []string) ([]string, error) {
	return decodeWords(normalizeHex(data), types)
}

// DecodeCallData behaves like DecodeWords but strips a leading 4-byte
// function selector first. Data shorter than a selector is rejected.
func DecodeCallData(data string, types []string) ([]string, error) {
	digits := normalizeHex(data)
	if len(digits) < selectorChars {
		return nil, fmt.Errorf("%w: call data %q is shorter than a selector", ErrInvalidEncoding, data)
	}
	return decodeWords(digits[selectorChars:], types)
}

func decodeWords(digits string, types []string) ([]string, error) {
	words := splitWords(digits)

	out := make([]string, len(words))
	for i, word := range words {
		declared := "uint256"
		if i < len(types) {
			declared = types[i]
		}

		value, err := decodeWord(word, declared)
		if err != nil {
			return nil, fmt.Errorf("word %d (%s): %w", i, declared, err)
		}
		out[i] = value
	}

	return out, nil
}

// splitWords partitions hex digits into 64-character words, right-padding
// the final word with zeros when the input is not word-aligned.
func splitWords(digits string) []string {
	if digits == "" {
		return nil
	}

	words := make([]string, 0, (len(digits)+wordChars-1)/wordChars)
	for start := 0; start < len(digits); start += wordChars {
		end := start + wordChars
		if end > len(digits) {
			words = append(words, rightPadWord(digits[start:]))
		} else {
			words = append(words, digits[start:end])
		}
	}
	return words
}

// decodeWord decodes one 64-character word per its declared type.
func decodeWord(word, declared string) (string, error) {
	if !isHexDigits(word) {
		return "", fmt.Errorf("%w: %q is not a hexadecimal word", ErrInvalidEncoding, word)
	}

	switch t := declared; {
	case t == "address":
		return "0x" + word[wordChars-addressChars:], nil

	case isIntegerType(t):
		n, err := parseHexBig(word)
		if err != nil {
			return "", err
		}
		return n.String(), nil

	case t == "bool":
		n, err := parseHexBig(word)
		if err != nil {
			return "", err
		}
		if n.Cmp(oneBig) == 0 {
			return "true", nil
		}
		return "false", nil

	case t == "bytes32":
		return "0x" + word, nil

	default:
		return "", ErrUnsupportedType
	}
}

// DecodeSingleDynamicString decodes return data consisting of exactly one
// dynamic string value (the ERC-20 name()/symbol() and ERC-721 tokenURI()
// shape): the first word holds the byte offset of the payload, the word at
// that offset holds the byte length, and the UTF-8 payload follows
// immediately. Null bytes are dropped and surrounding whitespace trimmed.
//
// This is deliberately not a general dynamic-ABI decoder; it assumes a
// single dynamic return value and performs no offset-table resolution.
func DecodeSingleDynamicString(data string) (string, error) {
	digits := normalizeHex(data)
	if digits == "" {
		return "", nil
	}
	if !isHexDigits(digits) {
		return "", fmt.Errorf("%w: %q is not hexadecimal data", ErrInvalidEncoding, data)
	}
	if len(digits) < wordChars {
		return "", fmt.Errorf("%w: dynamic string data is shorter than one word", ErrInvalidEncoding)
	}

	offsetWord, err := parseHexBig(digits[:wordChars])
	if err != nil {
		return "", err
	}
	if !offsetWord.IsInt64() {
		return "", fmt.Errorf("%w: dynamic string offset %s is out of range", ErrInvalidEncoding, offsetWord)
	}

	// Byte offset to hex-character offset.
	offset := int(offsetWord.Int64()) * 2
	if offset < 0 || offset+wordChars > len(digits) {
		return "", fmt.Errorf("%w: dynamic string offset %s is out of range", ErrInvalidEncoding, offsetWord)
	}

	lengthWord, err := parseHexBig(digits[offset : offset+wordChars])
	if err != nil {
		return "", err
	}
	if !lengthWord.IsInt64() {
		return "", fmt.Errorf("%w: dynamic string length %s is out of range", ErrInvalidEncoding, lengthWord)
	}

	payloadStart := offset + wordChars
	payloadLen := int(lengthWord.Int64()) * 2
	if payloadLen < 0 || payloadStart+payloadLen > len(digits) {
		return "", fmt.Errorf("%w: dynamic string length %s is out of range", ErrInvalidEncoding, lengthWord)
	}

	raw, err := hex.DecodeString(digits[payloadStart : payloadStart+payloadLen])
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}

	cleaned := make([]byte, 0, len(raw))
	for _, b := range raw {
		if b != 0 {
			cleaned = append(cleaned, b)
		}
	}

	return strings.TrimSpace(string(cleaned)), nil
}

// leftPadWord left-pads hex digits with zeros to a full word (numeric types:
// content is right-aligned).
func leftPadWord(digits string) string {
	return strings.Repeat("0", wordChars-len(digits)) + digits
}

// rightPadWord right-pads hex digits with zeros to a full word (bytes32 and
// trailing partial words: content is left-aligned).
func rightPadWord(digits string) string {
	return digits + strings.Repeat("0", wordChars-len(digits))
}
