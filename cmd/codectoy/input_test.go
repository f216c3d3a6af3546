package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInputHex(t *testing.T) {
	b, err := parseInput("0xdeadbeef")
	require.NoError(t, err)
	assert.Equal(t, []byte{0xde, 0xad, 0xbe, 0xef}, b)
}

func TestParseInputRejectsUppercaseHex(t *testing.T) {
	// spec.md's CLI surface defines the hex path as lowercase only;
	// uppercase input falls through to the byte-list/text stages instead
	// of being treated as hex.
	b, err := parseInput("DEADBEEF")
	require.NoError(t, err)
	assert.Equal(t, []byte("DEADBEEF"), b)
}

func TestParseInputByteList(t *testing.T) {
	b, err := parseInput("10 20 255")
	require.NoError(t, err)
	assert.Equal(t, []byte{10, 20, 255}, b)
}

func TestParseInputFallsBackToText(t *testing.T) {
	b, err := parseInput("hello world")
	require.NoError(t, err)
	assert.Equal(t, []byte("hello world"), b)
}

func TestFormatOutputHex(t *testing.T) {
	s, err := formatOutput([]byte{0xde, 0xad}, "hex")
	require.NoError(t, err)
	assert.Equal(t, "dead", s)
}

func TestFormatOutputAutoPrefersText(t *testing.T) {
	s, err := formatOutput([]byte("hello"), "auto")
	require.NoError(t, err)
	assert.Equal(t, "hello", s)
}

func TestFormatOutputUnknownFormat(t *testing.T) {
	_, err := formatOutput([]byte("x"), "bogus")
	assert.Error(t, err)
}
