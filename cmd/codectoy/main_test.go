package main

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureOutput(t *testing.T, fn func()) (stdout, stderr string) {
	t.Helper()
	oldOut, oldErr := os.Stdout, os.Stderr
	outR, outW, err := os.Pipe()
	require.NoError(t, err)
	errR, errW, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout, os.Stderr = outW, errW

	fn()

	outW.Close()
	errW.Close()
	os.Stdout, os.Stderr = oldOut, oldErr

	var outBuf, errBuf bytes.Buffer
	outBuf.ReadFrom(outR)
	errBuf.ReadFrom(errR)
	return outBuf.String(), errBuf.String()
}

func runCapturing(t *testing.T, args []string) (string, int) {
	t.Helper()
	var code int
	stdout, _ := captureOutput(t, func() {
		code = run(args)
	})
	return trimNewline(stdout), code
}

func TestHuffmanRoundTripViaCLI(t *testing.T) {
	encoded, code := runCapturing(t, []string{"huffman", "encode", "--output-format", "hex", "hello hello hello world"})
	require.Equal(t, 0, code)

	decoded, code := runCapturing(t, []string{"huffman", "decode", "--output-format", "text", encoded})
	require.Equal(t, 0, code)
	assert.Equal(t, "hello hello hello world", decoded)
}

func TestRSRoundTripViaCLI(t *testing.T) {
	input := "deadbeef00112233445566778899aabb"
	encoded, code := runCapturing(t, []string{"rs", "encode", "--parity", "4", "--output-format", "hex", input})
	require.Equal(t, 0, code)

	decoded, code := runCapturing(t, []string{"rs", "decode", "--parity", "4", "--output-format", "hex", encoded})
	require.Equal(t, 0, code)
	assert.Equal(t, input, decoded)
}

func TestRSEncodePrintsRunSummaryToStderr(t *testing.T) {
	var code int
	stdout, stderr := captureOutput(t, func() {
		code = run([]string{"rs", "encode", "--parity", "4", "--output-format", "hex", "deadbeef"})
	})
	require.Equal(t, 0, code)
	assert.Contains(t, stderr, "rs encode complete")
	assert.Contains(t, stderr, "parity=4")
	assert.NotContains(t, stdout, "rs encode complete", "summary must not leak into the payload stream")
}

func TestUnknownCodecExitsNonZero(t *testing.T) {
	_, code := runCapturing(t, []string{"zzz", "encode", "abc"})
	assert.NotEqual(t, 0, code)
}

func TestMissingArgsExitsNonZero(t *testing.T) {
	_, code := runCapturing(t, []string{"huffman"})
	assert.NotEqual(t, 0, code)
}

func trimNewline(s string) string {
	if len(s) > 0 && s[len(s)-1] == '\n' {
		return s[:len(s)-1]
	}
	return s
}
