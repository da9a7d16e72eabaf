package evm

import (
	"fmt"
	"math/big"
	"strings"
)

// WeiToHuman converts an unsigned wei amount (decimal string) to a
// human-readable decimal string at the given number of fractional digits.
//
// The value is split with exact integer division: whole = value / 10^decimals,
// fraction = value mod 10^decimals. The fraction is rendered left-zero-padded
// to exactly `decimals` digits and trailing zeros are stripped; when the
// fraction is zero only the whole part is emitted, with no decimal point.
//
// decimals = 0 means the amount has no fractional part at all.
func WeiToHuman(wei string, decimals uint) (string, error) {
	n, err := parseDecimal(wei)
	if err != nil {
		return "", err
	}

	if decimals == 0 {
		return n.String(), nil
	}

	scale := pow10(decimals)
	whole, frac := new(big.Int).QuoRem(n, scale, new(big.Int))

	fracDigits := strings.TrimRight(fmt.Sprintf("%0*s", decimals, frac.String()), "0")
	if fracDigits == "" {
		return whole.String(), nil
	}

	return whole.String() + "." + fracDigits, nil
}

// HumanToWei converts a human-readable decimal amount to its unsigned wei
// representation (decimal string) at the given number of fractional digits.
//
// The input is split on the first "."; the fractional component is
// right-padded with zeros or truncated to exactly `decimals` digits (no
// rounding: precision beyond `decimals` is discarded). The concatenated
// whole+fraction digit string is then parsed as a single unsigned integer.
func HumanToWei(human string, decimals uint) (string, error) {
	whole, frac, _ := strings.Cut(human, ".")
	if whole == "" {
		whole = "0"
	}

	if uint(len(frac)) > decimals {
		frac = frac[:decimals]
	} else {
		frac += strings.Repeat("0", int(decimals)-len(frac))
	}

	n, err := parseDecimal(whole + frac)
	if err != nil {
		return "", fmt.Errorf("%w: %q is not a decimal amount", ErrInvalidEncoding, human)
	}

	return n.String(), nil
}

// TransactionFee computes the exact fee paid by a transaction from its hex
// gasUsed and gasPrice quantities, rendered in human units at the native
// coin's decimal count (18). The multiplication and conversion are exact.
func TransactionFee(gasUsedHex, gasPriceHex string) (string, error) {
	gasUsed, err := parseHexBig(gasUsedHex)
	if err != nil {
		return "", err
	}

	gasPrice, err := parseHexBig(gasPriceHex)
	if err != nil {
		return "", err
	}

	fee := new(big.Int).Mul(gasUsed, gasPrice)
	return WeiToHuman(fee.String(), NativeDecimals)
}

// Well-known decimal counts for EVM amounts.
const (
	// NativeDecimals is the fractional digit count of the native coin.
	NativeDecimals uint = 18

	// GweiDecimals is the fractional digit count of gwei relative to wei,
	// the conventional unit for gas prices.
	GweiDecimals uint = 9
)

// pow10 returns 10^n as a big.Int.
func pow10(n uint) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
}
