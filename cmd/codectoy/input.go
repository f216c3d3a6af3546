package main

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/ethereum/go-ethereum/common"
)

// parseInput auto-detects the encoding of a CLI argument and returns its
// raw bytes. It tries, in order: lowercase hex (optional "0x" prefix, even
// length), whitespace-separated decimal bytes, then falls back to the raw
// UTF-8 text.
func parseInput(s string) ([]byte, error) {
	if b, ok := tryHex(s); ok {
		return b, nil
	}
	if b, ok := tryByteList(s); ok {
		return b, nil
	}
	return []byte(s), nil
}

func tryHex(s string) ([]byte, bool) {
	trimmed := strings.TrimPrefix(s, "0x")
	if trimmed == "" || len(trimmed)%2 != 0 {
		return nil, false
	}
	for _, r := range trimmed {
		if !isHexDigit(r) {
			return nil, false
		}
	}
	return common.FromHex(s), true
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f')
}

func tryByteList(s string) ([]byte, bool) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil, false
	}
	out := make([]byte, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.ParseUint(f, 10, 8)
		if err != nil {
			return nil, false
		}
		out = append(out, byte(n))
	}
	return out, true
}

// formatOutput renders data per format, one of "hex", "text" or "auto".
// "auto" prints as text when every byte is a printable ASCII character or
// common whitespace, hex otherwise.
func formatOutput(data []byte, format string) (string, error) {
	switch format {
	case "hex":
		return common.Bytes2Hex(data), nil
	case "text":
		return string(data), nil
	case "auto":
		if isPrintable(data) {
			return string(data), nil
		}
		return common.Bytes2Hex(data), nil
	default:
		return "", fmt.Errorf("unknown output format %q", format)
	}
}

func isPrintable(data []byte) bool {
	for _, b := range data {
		r := rune(b)
		if r == '\n' || r == '\t' || r == '\r' {
			continue
		}
		if b >= 0x80 || !unicode.IsPrint(r) {
			return false
		}
	}
	return true
}
