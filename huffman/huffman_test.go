package huffman

import (
	"bytes"
	"errors"
	"io"
	"math"
	"testing"
)

// S1: symbols [1,2,3], probabilities [0.5,0.25,0.25] -> lengths [1,2,2],
// mean length 1.5.
func TestS1OptimalCodes(t *testing.T) {
	cs := BuildOptimalCodes([]byte{1, 2, 3}, []float64{0.5, 0.25, 0.25})

	lengths := make(map[byte]int)
	for i, sym := range cs.Symbols {
		lengths[sym] = len(cs.Codes[i])
	}
	if lengths[1] != 1 {
		t.Fatalf("len(code[1]) = %d, want 1", lengths[1])
	}
	if lengths[2] != 2 || lengths[3] != 2 {
		t.Fatalf("len(code[2])=%d len(code[3])=%d, want 2,2", lengths[2], lengths[3])
	}
	if mean := cs.MeanCodeLength(); math.Abs(mean-1.5) > 1e-9 {
		t.Fatalf("mean code length = %f, want 1.5", mean)
	}
}

// S2: 8 symbols with the given probabilities yield lengths
// [2,3,3,3,3,3,4,4], mean length ~2.875.
func TestS2OptimalCodes(t *testing.T) {
	symbols := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	probs := []float64{0.170, 0.168, 0.166, 0.140, 0.118, 0.110, 0.083, 0.045}
	cs := BuildOptimalCodes(symbols, probs)

	wantLengths := map[byte]int{1: 2, 2: 3, 3: 3, 4: 3, 5: 3, 6: 3, 7: 4, 8: 4}
	for i, sym := range cs.Symbols {
		if got := len(cs.Codes[i]); got != wantLengths[sym] {
			t.Fatalf("len(code[%d]) = %d, want %d", sym, got, wantLengths[sym])
		}
	}
	if mean := cs.MeanCodeLength(); math.Abs(mean-2.875) > 0.1 {
		t.Fatalf("mean code length = %f, want ~2.875", mean)
	}
}

// S3: code table {1:"1", 2:"11", 3:"1110"}, mean length 100 serializes to
// the literal byte sequence given in the scenario.
func TestS3ArchiveLayout(t *testing.T) {
	table := Table{
		1: mustCode("1"),
		2: mustCode("11"),
		3: mustCode("1110"),
	}

	var buf bytes.Buffer
	if err := WriteArchive(&buf, table, 100, 0, nil); err != nil {
		t.Fatalf("WriteArchive failed: %v", err)
	}

	all := buf.Bytes()
	stateLen := all[:8]
	wantStateLen := []byte{14, 0, 0, 0, 0, 0, 0, 0}
	if !bytes.Equal(stateLen, wantStateLen) {
		t.Fatalf("state_len bytes = %v, want %v", stateLen, wantStateLen)
	}

	state := all[8:22]
	want := []byte{1, 1, 1, 0, 2, 2, 3, 0, 3, 4, 14, 0, 100, 0}
	if !bytes.Equal(state, want) {
		t.Fatalf("state bytes = %v, want %v", state, want)
	}
}

func mustCode(bits string) Code {
	c, err := codeFromBits(bits)
	if err != nil {
		panic(err)
	}
	return c
}

func TestRoundTrip(t *testing.T) {
	data := []byte("the quick brown fox jumps over the lazy dog, repeatedly, to build skew")
	probs := buildProbabilities(data)
	symbols := make([]byte, 0, len(probs))
	probList := make([]float64, 0, len(probs))
	for sym, p := range probs {
		symbols = append(symbols, sym)
		probList = append(probList, p)
	}

	cs := BuildOptimalCodes(symbols, probList)
	table := cs.Table()

	encoded, err := Encode(table, data)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	var buf bytes.Buffer
	if err := WriteArchive(&buf, table, uint16(math.Ceil(cs.MeanCodeLength())), uint64(len(data)), encoded); err != nil {
		t.Fatalf("WriteArchive failed: %v", err)
	}

	gotTable, _, originalSize, payload, err := ReadArchive(&buf)
	if err != nil {
		t.Fatalf("ReadArchive failed: %v", err)
	}

	decoded, err := Decode(gotTable, payload, originalSize)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if !bytes.Equal(decoded, data) {
		t.Fatalf("round trip mismatch:\ngot  %q\nwant %q", decoded, data)
	}
}

func TestPrefixProperty(t *testing.T) {
	data := []byte("aaaaaaabbbbccd")
	probs := buildProbabilities(data)
	symbols := make([]byte, 0, len(probs))
	probList := make([]float64, 0, len(probs))
	for sym, p := range probs {
		symbols = append(symbols, sym)
		probList = append(probList, p)
	}
	cs := BuildOptimalCodes(symbols, probList)

	for i, a := range cs.Codes {
		for j, b := range cs.Codes {
			if i == j {
				continue
			}
			if len(a) <= len(b) && b[:len(a)] == a {
				t.Fatalf("code %q is a prefix of code %q", a, b)
			}
		}
	}
}

func TestEncodeUnknownSymbol(t *testing.T) {
	table := Table{1: mustCode("0")}
	_, err := Encode(table, []byte{2})
	if err != ErrUnknownSymbol {
		t.Fatalf("err = %v, want ErrUnknownSymbol", err)
	}
}

func archiveOf(t *testing.T, data []byte) []byte {
	t.Helper()
	probs := buildProbabilities(data)
	symbols := make([]byte, 0, len(probs))
	probList := make([]float64, 0, len(probs))
	for sym, p := range probs {
		symbols = append(symbols, sym)
		probList = append(probList, p)
	}
	cs := BuildOptimalCodes(symbols, probList)
	table := cs.Table()

	encoded, err := Encode(table, data)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	var buf bytes.Buffer
	if err := WriteArchive(&buf, table, uint16(math.Ceil(cs.MeanCodeLength())), uint64(len(data)), encoded); err != nil {
		t.Fatalf("WriteArchive failed: %v", err)
	}
	return buf.Bytes()
}

func TestDecodeArchivesBatch(t *testing.T) {
	inputs := [][]byte{
		[]byte("the first archive in the batch"),
		[]byte("a second, differently skewed archive"),
	}
	readers := make([]io.Reader, len(inputs))
	for i, data := range inputs {
		readers[i] = bytes.NewReader(archiveOf(t, data))
	}

	decoded, err := DecodeArchives(readers)
	if err != nil {
		t.Fatalf("DecodeArchives failed: %v", err)
	}
	if len(decoded) != len(inputs) {
		t.Fatalf("got %d decoded archives, want %d", len(decoded), len(inputs))
	}
	for i, want := range inputs {
		if !bytes.Equal(decoded[i], want) {
			t.Fatalf("archive %d: got %q, want %q", i, decoded[i], want)
		}
	}
}

func TestDecodeArchivesReportsFailingIndex(t *testing.T) {
	readers := []io.Reader{
		bytes.NewReader(archiveOf(t, []byte("fine"))),
		bytes.NewReader([]byte{1, 2, 3}), // too short to be a valid archive
	}

	_, err := DecodeArchives(readers)
	if err == nil {
		t.Fatal("expected an error for the truncated second archive")
	}
	var blockErr *BlockError
	if !errors.As(err, &blockErr) {
		t.Fatalf("err = %v, want *BlockError", err)
	}
	if blockErr.Index != 1 || blockErr.Total != 2 {
		t.Fatalf("blockErr = %+v, want Index=1 Total=2", blockErr)
	}
}

func TestReconstructPrefixConflict(t *testing.T) {
	table := Table{
		1: mustCode("1"),
		2: mustCode("10"),
	}
	_, err := reconstructTree(table)
	if err != ErrPrefixConflict {
		t.Fatalf("err = %v, want ErrPrefixConflict", err)
	}
}

func buildProbabilities(data []byte) map[byte]float64 {
	counts := make(map[byte]int)
	for _, b := range data {
		counts[b]++
	}
	out := make(map[byte]float64)
	for b, c := range counts {
		out[b] = float64(c) / float64(len(data))
	}
	return out
}
