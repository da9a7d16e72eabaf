package evm

import (
	"encoding/hex"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const balanceOfSelector = "0x70a08231"

func TestEncodeCall(t *testing.T) {
	t.Run("balanceOf with one address parameter", func(t *testing.T) {
		got, err := EncodeCall(balanceOfSelector, []Param{
			{Type: "address", Value: "0x5C7F8A570d578ED84E63fdFA7b1eE72dEae1AE23"},
		})
		require.NoError(t, err)

		// 2 prefix + 8 selector + 64 word characters.
		require.Len(t, got, 74)
		assert.True(t, strings.HasPrefix(got, balanceOfSelector))
		assert.Equal(t, strings.Repeat("0", 24), got[10:34])
		assert.Equal(t, "5c7f8a570d578ed84e63fdfa7b1ee72deae1ae23", got[34:])
	})

	t.Run("every static parameter occupies exactly one word", func(t *testing.T) {
		got, err := EncodeCall(balanceOfSelector, []Param{
			{Type: "address", Value: "0x5c7f8a570d578ed84e63fdfa7b1ee72deae1ae23"},
			{Type: "uint256", Value: "1000000000000000000"},
			{Type: "bool", Value: "true"},
			{Type: "bytes32", Value: "0xdeadbeef"},
		})
		require.NoError(t, err)
		assert.Len(t, got, 2+8+4*64)
	})

	t.Run("empty selector yields bare words", func(t *testing.T) {
		got, err := EncodeCall("", []Param{{Type: "uint256", Value: "16"}})
		require.NoError(t, err)
		assert.Equal(t, "0x"+strings.Repeat("0", 62)+"10", got)
	})

	t.Run("uint accepts hex quantities", func(t *testing.T) {
		got, err := EncodeCall("", []Param{{Type: "uint256", Value: "0xff"}})
		require.NoError(t, err)
		assert.Equal(t, "0x"+strings.Repeat("0", 62)+"ff", got)
	})

	t.Run("bool false encodes as zero word", func(t *testing.T) {
		got, err := EncodeCall("", []Param{{Type: "bool", Value: "0"}})
		require.NoError(t, err)
		assert.Equal(t, "0x"+strings.Repeat("0", 64), got)
	})

	t.Run("bool truthy forms encode as one", func(t *testing.T) {
		for _, v := range []string{"true", "True", "1"} {
			got, err := EncodeCall("", []Param{{Type: "bool", Value: v}})
			require.NoError(t, err)
			assert.Equal(t, "0x"+strings.Repeat("0", 63)+"1", got, "value %q", v)
		}
	})

	t.Run("bytes32 content is left aligned", func(t *testing.T) {
		got, err := EncodeCall("", []Param{{Type: "bytes32", Value: "0xdeadbeef"}})
		require.NoError(t, err)
		assert.Equal(t, "0xdeadbeef"+strings.Repeat("0", 56), got)
	})

	t.Run("unsupported type fails loudly", func(t *testing.T) {
		_, err := EncodeCall(balanceOfSelector, []Param{{Type: "string", Value: "hello"}})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnsupportedType)
	})

	t.Run("negative integer is rejected", func(t *testing.T) {
		_, err := EncodeCall("", []Param{{Type: "int256", Value: "-1"}})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnsupportedType)
	})

	t.Run("oversized integer is rejected", func(t *testing.T) {
		tooBig := "0x1" + strings.Repeat("0", 64)
		_, err := EncodeCall("", []Param{{Type: "uint256", Value: tooBig}})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidEncoding)
	})

	t.Run("malformed address is rejected", func(t *testing.T) {
		_, err := EncodeCall("", []Param{{Type: "address", Value: "0x123"}})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidAddress)
	})

	t.Run("malformed selector is rejected", func(t *testing.T) {
		_, err := EncodeCall("0x70a0", nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidEncoding)
	})
}

func TestDecodeWords(t *testing.T) {
	t.Run("address takes the low 20 bytes", func(t *testing.T) {
		word := strings.Repeat("0", 24) + "5c7f8a570d578ed84e63fdfa7b1ee72deae1ae23"

		got, err := DecodeWords("0x"+word, []string{"address"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "0x5c7f8a570d578ed84e63fdfa7b1ee72deae1ae23", got[0])
	})

	t.Run("uint decodes to decimal", func(t *testing.T) {
		word := strings.Repeat("0", 62) + "ff"

		got, err := DecodeWords("0x"+word, []string{"uint256"})
		require.NoError(t, err)
		assert.Equal(t, []string{"255"}, got)
	})

	t.Run("bool is true only for one", func(t *testing.T) {
		one := strings.Repeat("0", 63) + "1"
		two := strings.Repeat("0", 63) + "2"

		got, err := DecodeWords("0x"+one+two, []string{"bool", "bool"})
		require.NoError(t, err)
		assert.Equal(t, []string{"true", "false"}, got)
	})

	t.Run("bytes32 passes through verbatim", func(t *testing.T) {
		word := "deadbeef" + strings.Repeat("0", 56)

		got, err := DecodeWords("0x"+word, []string{"bytes32"})
		require.NoError(t, err)
		assert.Equal(t, []string{"0x" + word}, got)
	})

	t.Run("missing types default to uint decoding", func(t *testing.T) {
		data := "0x" + strings.Repeat("0", 62) + "10" + strings.Repeat("0", 62) + "ff"

		got, err := DecodeWords(data, []string{"uint256"})
		require.NoError(t, err)
		assert.Equal(t, []string{"16", "255"}, got)
	})

	t.Run("trailing partial word is right padded", func(t *testing.T) {
		got, err := DecodeWords("0xdead", []string{"bytes32"})
		require.NoError(t, err)
		assert.Equal(t, []string{"0xdead" + strings.Repeat("0", 60)}, got)
	})

	t.Run("empty data decodes to nothing", func(t *testing.T) {
		got, err := DecodeWords("0x", []string{"uint256"})
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("word order is preserved", func(t *testing.T) {
		a := strings.Repeat("0", 63) + "1"
		b := strings.Repeat("0", 63) + "2"
		c := strings.Repeat("0", 63) + "3"

		got, err := DecodeWords("0x"+a+b+c, []string{"uint256", "uint256", "uint256"})
		require.NoError(t, err)
		assert.Equal(t, []string{"1", "2", "3"}, got)
	})

	t.Run("unsupported declared type fails loudly", func(t *testing.T) {
		word := strings.Repeat("0", 64)

		_, err := DecodeWords("0x"+word, []string{"string"})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnsupportedType)
	})

	t.Run("non-hex data fails", func(t *testing.T) {
		_, err := DecodeWords("0x"+strings.Repeat("z", 64), []string{"uint256"})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidEncoding)
	})
}

func TestDecodeCallData(t *testing.T) {
	t.Run("strips the leading selector", func(t *testing.T) {
		word := strings.Repeat("0", 24) + "5c7f8a570d578ed84e63fdfa7b1ee72deae1ae23"

		got, err := DecodeCallData(balanceOfSelector+word, []string{"address"})
		require.NoError(t, err)
		assert.Equal(t, []string{"0x5c7f8a570d578ed84e63fdfa7b1ee72deae1ae23"}, got)
	})

	t.Run("data shorter than a selector is rejected", func(t *testing.T) {
		_, err := DecodeCallData("0x70a0", nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidEncoding)
	})
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	params := []Param{
		{Type: "address", Value: "0x5c7f8a570d578ed84e63fdfa7b1ee72deae1ae23"},
		{Type: "uint256", Value: "1000000000000000000"},
		{Type: "bool", Value: "true"},
	}

	encoded, err := EncodeCall(balanceOfSelector, params)
	require.NoError(t, err)

	decoded, err := DecodeCallData(encoded, []string{"address", "uint256", "bool"})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"0x5c7f8a570d578ed84e63fdfa7b1ee72deae1ae23",
		"1000000000000000000",
		"true",
	}, decoded)
}

func TestDecodeSingleDynamicString(t *testing.T) {
	// Builds the canonical single-string return shape: offset word,
	// length word, then the right-padded UTF-8 payload.
	encodeString := func(s string) string {
		payload := hex.EncodeToString([]byte(s))
		if rem := len(payload) % 64; rem != 0 {
			payload += strings.Repeat("0", 64-rem)
		}

		offset := fmt.Sprintf("%064x", 32) // payload begins right after the offset word
		length := fmt.Sprintf("%064x", len(s))
		return "0x" + offset + length + payload
	}

	t.Run("decodes a token symbol", func(t *testing.T) {
		got, err := DecodeSingleDynamicString(encodeString("CRO"))
		require.NoError(t, err)
		assert.Equal(t, "CRO", got)
	})

	t.Run("decodes a token URI longer than one word", func(t *testing.T) {
		uri := "https://example.com/metadata/1234567890.json"
		got, err := DecodeSingleDynamicString(encodeString(uri))
		require.NoError(t, err)
		assert.Equal(t, uri, got)
	})

	t.Run("drops null bytes and trims whitespace", func(t *testing.T) {
		got, err := DecodeSingleDynamicString(encodeString(" Wrapped CRO \x00\x00"))
		require.NoError(t, err)
		assert.Equal(t, "Wrapped CRO", got)
	})

	t.Run("empty data yields empty string", func(t *testing.T) {
		got, err := DecodeSingleDynamicString("0x")
		require.NoError(t, err)
		assert.Equal(t, "", got)
	})

	t.Run("empty payload yields empty string", func(t *testing.T) {
		got, err := DecodeSingleDynamicString(encodeString(""))
		require.NoError(t, err)
		assert.Equal(t, "", got)
	})

	t.Run("offset beyond data is rejected", func(t *testing.T) {
		data := "0x" + strings.Repeat("0", 62) + "ff"
		_, err := DecodeSingleDynamicString(data)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidEncoding)
	})

	t.Run("length beyond data is rejected", func(t *testing.T) {
		offset := strings.Repeat("0", 62) + "20"
		length := strings.Repeat("0", 62) + "ff"
		_, err := DecodeSingleDynamicString("0x" + offset + length)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidEncoding)
	})

	t.Run("offset wider than 64 bits is rejected", func(t *testing.T) {
		// 2^64 + 32: would truncate into range as a bare int64.
		offset := strings.Repeat("0", 47) + "10000000000000020"
		length := fmt.Sprintf("%064x", 3)
		payload := hex.EncodeToString([]byte("CRO")) + strings.Repeat("0", 58)

		_, err := DecodeSingleDynamicString("0x" + offset + length + payload)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidEncoding)
	})

	t.Run("length wider than 64 bits is rejected", func(t *testing.T) {
		offset := fmt.Sprintf("%064x", 32)
		length := strings.Repeat("f", 64)

		_, err := DecodeSingleDynamicString("0x" + offset + length)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidEncoding)
	})
}
