package huffman

import (
	"errors"
	"fmt"
)

// ErrUnknownSymbol is returned by Encode when a byte has no entry in the
// code table.
var ErrUnknownSymbol = errors.New("huffman: unknown byte has no code")

// ErrMalformedBitstream is returned by Decode when the bit stream runs out
// before reaching a leaf, or a walk steps into a nil child.
var ErrMalformedBitstream = errors.New("huffman: malformed bit stream")

// ErrCodeTooLong is returned when a code table entry's bit length exceeds
// the archive format's 16-bit limit, or is zero-length.
var ErrCodeTooLong = errors.New("huffman: code length must be 1..16 bits")

// ErrPrefixConflict is returned when reconstructing a tree from a code
// table finds one code that is a prefix of another.
var ErrPrefixConflict = errors.New("huffman: code table has a prefix conflict")

// ErrTruncatedArchive is returned when an archive's state or payload bytes
// are shorter than its own length fields claim.
var ErrTruncatedArchive = errors.New("huffman: archive is truncated")

// BlockError wraps a failure with the index of the failing unit, mirroring
// rs.BlockError for batch operations over multiple archives.
type BlockError struct {
	Index int
	Total int
	Err   error
}

func (e *BlockError) Error() string {
	return fmt.Sprintf("block %d of %d: %v", e.Index, e.Total, e.Err)
}

func (e *BlockError) Unwrap() error { return e.Err }
