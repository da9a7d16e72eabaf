// Package utility exposes the conversion and encoding helpers directly as
// plugin actions: base conversion, unit conversion, ABI encode/decode, and
// address/hash validation. Everything here delegates to the evm package;
// the service exists so the workflow host sees these as ordinary actions.
package utility

import (
	"github.com/gabapcia/chainflow/internal/pkg/evm"
)

// Service exposes the utility actions. All operations are pure and safe
// for concurrent use.
type Service interface {
	// HexToDecimal converts a hex quantity to a decimal string. Empty and
	// "0x" inputs convert to "0".
	HexToDecimal(hex string) (string, error)

	// DecimalToHex converts a decimal string to a 0x-prefixed hex
	// quantity without leading zeros.
	DecimalToHex(decimal string) (string, error)

	// WeiToHuman renders a wei amount at the given decimal count with
	// exact integer arithmetic.
	WeiToHuman(wei string, decimals uint) (string, error)

	// HumanToWei parses a human-readable amount into wei at the given
	// decimal count, truncating extra fractional digits.
	HumanToWei(human string, decimals uint) (string, error)

	// IsValidAddress reports whether s is a 0x-prefixed 20-byte hex
	// address. Purely syntactic, no checksum validation.
	IsValidAddress(s string) bool

	// IsValidTxHash reports whether s is a 0x-prefixed 32-byte hex hash.
	IsValidTxHash(s string) bool

	// EncodeCall builds call data from a selector and static typed
	// parameters.
	EncodeCall(selector string, params []evm.Param) (string, error)

	// DecodeWords decodes raw return or log data against declared types.
	DecodeWords(data string, types []string) ([]string, error)

	// DecodeCallData decodes call data, stripping the leading selector.
	DecodeCallData(data string, types []string) ([]string, error)

	// DecodeSingleDynamicString decodes return data holding exactly one
	// dynamic string value.
	DecodeSingleDynamicString(data string) (string, error)
}

// service is the concrete Service implementation.
type service struct{}

// Ensure compile-time compliance with the Service interface.
var _ Service = (*service)(nil)

// NewService creates the utility service.
func NewService() *service {
	return &service{}
}

func (*service) HexToDecimal(hex string) (string, error) {
	return evm.HexToDecimal(hex)
}

func (*service) DecimalToHex(decimal string) (string, error) {
	return evm.DecimalToHex(decimal)
}

func (*service) WeiToHuman(wei string, decimals uint) (string, error) {
	return evm.WeiToHuman(wei, decimals)
}

func (*service) HumanToWei(human string, decimals uint) (string, error) {
	return evm.HumanToWei(human, decimals)
}

func (*service) IsValidAddress(s string) bool {
	return evm.IsValidAddress(s)
}

func (*service) IsValidTxHash(s string) bool {
	return evm.IsValidTxHash(s)
}

func (*service) EncodeCall(selector string, params []evm.Param) (string, error) {
	return evm.EncodeCall(selector, params)
}

func (*service) DecodeWords(data string, types []string) ([]string, error) {
	return evm.DecodeWords(data, types)
}

func (*service) DecodeCallData(data string, types []string) ([]string, error) {
	return evm.DecodeCallData(data, types)
}

func (*service) DecodeSingleDynamicString(data string) (string, error) {
	return evm.DecodeSingleDynamicString(data)
}
