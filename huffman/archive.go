// Archive container layout (see codec.go for the bit-packing it wraps):
//
//  1. state_len      8 bytes, little-endian: length of the state blob.
//  2. state          state_len bytes: one 4-byte entry per symbol
//                     ([symbol][code_len][code_value low][code_value high]),
//                     followed by a 2-byte little-endian mean_code_length.
//  3. original_size  8 bytes, little-endian: length of the decompressed
//                     content.
//  4. payload        bit-packed, zero-padded encoded symbols.
package huffman

import (
	"encoding/binary"
	"fmt"
	"io"
	"sort"
)

const entrySize = 4 // symbol, code_len, code_value (2 bytes LE)

// WriteArchive serializes table, meanCodeLength, originalSize and payload
// to w in the container layout above. Entries are written in ascending
// symbol order for a deterministic byte stream.
func WriteArchive(w io.Writer, table Table, meanCodeLength uint16, originalSize uint64, payload []byte) error {
	symbols := make([]byte, 0, len(table))
	for sym := range table {
		symbols = append(symbols, sym)
	}
	sort.Slice(symbols, func(i, j int) bool { return symbols[i] < symbols[j] })

	state := make([]byte, len(symbols)*entrySize+2)
	for i, sym := range symbols {
		code := table[sym]
		off := i * entrySize
		state[off] = sym
		state[off+1] = code.Len
		binary.LittleEndian.PutUint16(state[off+2:], code.Value)
	}
	binary.LittleEndian.PutUint16(state[len(state)-2:], meanCodeLength)

	var header [8]byte
	binary.LittleEndian.PutUint64(header[:], uint64(len(state)))
	if _, err := w.Write(header[:]); err != nil {
		return fmt.Errorf("writing state_len: %w", err)
	}
	if _, err := w.Write(state); err != nil {
		return fmt.Errorf("writing state: %w", err)
	}

	var sizeField [8]byte
	binary.LittleEndian.PutUint64(sizeField[:], originalSize)
	if _, err := w.Write(sizeField[:]); err != nil {
		return fmt.Errorf("writing original_size: %w", err)
	}
	if _, err := w.Write(payload); err != nil {
		return fmt.Errorf("writing payload: %w", err)
	}
	return nil
}

// ReadArchive parses the container layout, returning the code table, the
// informational mean code length, the original uncompressed size, and the
// remaining payload bytes. Any field shorter than its length prefix claims
// is ErrTruncatedArchive.
func ReadArchive(r io.Reader) (table Table, meanCodeLength uint16, originalSize uint64, payload []byte, err error) {
	var header [8]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return nil, 0, 0, nil, fmt.Errorf("%w: reading state_len: %v", ErrTruncatedArchive, err)
	}
	stateLen := binary.LittleEndian.Uint64(header[:])
	if stateLen < 2 || (stateLen-2)%entrySize != 0 {
		return nil, 0, 0, nil, fmt.Errorf("%w: state_len %d is not entrySize-aligned plus mean field", ErrTruncatedArchive, stateLen)
	}

	state := make([]byte, stateLen)
	if _, err := io.ReadFull(r, state); err != nil {
		return nil, 0, 0, nil, fmt.Errorf("%w: reading state: %v", ErrTruncatedArchive, err)
	}

	numEntries := (len(state) - 2) / entrySize
	table = make(Table, numEntries)
	for i := 0; i < numEntries; i++ {
		off := i * entrySize
		sym := state[off]
		codeLen := state[off+1]
		value := binary.LittleEndian.Uint16(state[off+2:])
		if codeLen == 0 || codeLen > 16 {
			return nil, 0, 0, nil, fmt.Errorf("%w: code length %d out of range", ErrCodeTooLong, codeLen)
		}
		table[sym] = Code{Len: codeLen, Value: value}
	}
	meanCodeLength = binary.LittleEndian.Uint16(state[len(state)-2:])

	var sizeField [8]byte
	if _, err := io.ReadFull(r, sizeField[:]); err != nil {
		return nil, 0, 0, nil, fmt.Errorf("%w: reading original_size: %v", ErrTruncatedArchive, err)
	}
	originalSize = binary.LittleEndian.Uint64(sizeField[:])

	payload, err = io.ReadAll(r)
	if err != nil {
		return nil, 0, 0, nil, fmt.Errorf("%w: reading payload: %v", ErrTruncatedArchive, err)
	}

	return table, meanCodeLength, originalSize, payload, nil
}

// DecodeArchives reads and decodes a sequence of independent archives, one
// per reader, returning their decoded contents in order. A failure on any
// archive is wrapped in a BlockError naming its position in the batch,
// mirroring rs.BlockError for RS's multi-block decode.
func DecodeArchives(readers []io.Reader) ([][]byte, error) {
	total := len(readers)
	out := make([][]byte, 0, total)
	for i, r := range readers {
		table, _, originalSize, payload, err := ReadArchive(r)
		if err != nil {
			return nil, &BlockError{Index: i, Total: total, Err: err}
		}
		decoded, err := Decode(table, payload, originalSize)
		if err != nil {
			return nil, &BlockError{Index: i, Total: total, Err: err}
		}
		out = append(out, decoded)
	}
	return out, nil
}
