package huffman

import (
	"strings"

	"codectoy/bitutil"
)

// Encode concatenates each input byte's code from table into a bit
// sequence, pads it to a byte boundary with trailing zero bits, and packs
// it MSB-first into bytes. Any byte absent from table is ErrUnknownSymbol.
func Encode(table Table, data []byte) ([]byte, error) {
	var sb strings.Builder
	for _, b := range data {
		code, ok := table[b]
		if !ok {
			return nil, ErrUnknownSymbol
		}
		sb.WriteString(code.Bits())
	}
	padded := bitutil.AddZeroPadding(sb.String())
	return bitutil.BitsToBytes(padded), nil
}

// Decode walks the tree reconstructed from table over packed, bit by bit
// (MSB-first within each byte), emitting a symbol each time a leaf is
// reached and returning to the root. It stops once originalSize bytes have
// been produced, discarding any trailing padding bits. Running out of bits,
// or walking into a nil child, before reaching originalSize bytes is
// ErrMalformedBitstream.
func Decode(table Table, packed []byte, originalSize uint64) ([]byte, error) {
	root, err := reconstructTree(table)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, originalSize)
	cur := root
	bits := bitutil.BytesToBits(packed)

	for _, bit := range bits {
		if uint64(len(out)) == originalSize {
			break
		}
		var next *node
		if bit == '0' {
			next = cur.left
		} else {
			next = cur.right
		}
		if next == nil {
			return nil, ErrMalformedBitstream
		}
		cur = next
		if cur.isLeaf {
			out = append(out, cur.symbol)
			cur = root
		}
	}

	if uint64(len(out)) != originalSize {
		return nil, ErrMalformedBitstream
	}
	return out, nil
}
