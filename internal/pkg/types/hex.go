package types

import (
	"encoding/json"
	"fmt"
	"math/big"
	"strings"
)

// Hex represents a hexadecimal-encoded quantity as a string (e.g., "0x1a").
// It provides validation, JSON marshaling/unmarshaling, and numeric
// conversion. Values are unbounded: balances and total supplies routinely
// exceed 64 bits, so validation and conversion go through math/big.
type Hex string

// HexFromString validates the input string and returns a Hex value if valid.
func HexFromString(s string) (Hex, error) {
	if err := validateHex(s); err != nil {
		return "", err
	}
	return Hex(s), nil
}

// HexFromInt renders an int64 as a Hex quantity.
func HexFromInt(n int64) Hex {
	return Hex(fmt.Sprintf("0x%x", n))
}

// validateHex checks whether a string is a valid hexadecimal number starting
// with "0x" or "0X". The digit count is unrestricted.
func validateHex(s string) error {
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		return fmt.Errorf("hex string must start with 0x")
	}

	if _, ok := new(big.Int).SetString(s[2:], 16); !ok {
		return fmt.Errorf("invalid hexadecimal value: %q", s)
	}

	return nil
}

// MarshalJSON encodes the Hex as a JSON string.
func (h Hex) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(h))
}

// UnmarshalJSON parses and validates a JSON-encoded hexadecimal string. A
// JSON null decodes as the empty Hex: nodes report pending transactions with
// "blockNumber": null.
func (h *Hex) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*h = ""
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("invalid hex string: %w", err)
	}

	if err := validateHex(s); err != nil {
		return err
	}

	*h = Hex(s)
	return nil
}

// Add returns a new Hex representing the result of adding n to the current value.
// If the original value is invalid, it treats it as zero.
func (h Hex) Add(n int64) Hex {
	sum := new(big.Int).Add(h.Big(), big.NewInt(n))
	return Hex("0x" + sum.Text(16))
}

// Int returns the decoded int64 value from the hexadecimal string. Values
// that are invalid or do not fit in an int64 yield zero; use Big for
// unbounded quantities.
func (h Hex) Int() int64 {
	v := h.Big()
	if !v.IsInt64() {
		return 0
	}
	return v.Int64()
}

// Big returns the decoded arbitrary-precision value of the hexadecimal
// string. Invalid values decode as zero.
func (h Hex) Big() *big.Int {
	if len(h) < 2 {
		return new(big.Int)
	}

	v, ok := new(big.Int).SetString(string(h)[2:], 16)
	if !ok {
		return new(big.Int)
	}
	return v
}
