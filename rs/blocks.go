package rs

import "fmt"

// EncodeBlocks splits data into consecutive blockSize chunks (the last may
// be short), encodes each chunk independently, and concatenates the
// resulting codewords. Each codeword is emitted as a contiguous run; no
// interleaving is performed here, that is strictly a caller concern.
func (c *Codec) EncodeBlocks(data []byte, blockSize int) ([]byte, error) {
	if blockSize <= 0 {
		panic(fmt.Sprintf("rs: block size must be positive: %d", blockSize))
	}

	total := (len(data) + blockSize - 1) / blockSize
	if total == 0 {
		return nil, nil
	}

	out := make([]byte, 0, total*(blockSize+c.parity))
	for i := 0; i < total; i++ {
		start := i * blockSize
		end := start + blockSize
		if end > len(data) {
			end = len(data)
		}
		out = append(out, c.Encode(data[start:end])...)
	}
	return out, nil
}

// DecodeBlocks splits data into consecutive n-byte chunks and decodes each
// independently, concatenating the recovered messages. len(data) must be a
// multiple of n (empty input decodes to nothing); a short or misaligned
// final chunk is MalformedInput, never silently padded or truncated.
func (c *Codec) DecodeBlocks(data []byte, n int) ([]byte, error) {
	if n <= 0 {
		panic(fmt.Sprintf("rs: codeword size must be positive: %d", n))
	}
	if len(data) == 0 {
		return nil, nil
	}
	if len(data)%n != 0 {
		return nil, fmt.Errorf("%w: length %d, block size %d", ErrBlockLengthMismatch, len(data), n)
	}

	total := len(data) / n
	out := make([]byte, 0, total*(n-c.parity))
	for i := 0; i < total; i++ {
		block := data[i*n : (i+1)*n]
		decoded, err := c.Decode(block)
		if err != nil {
			return nil, &BlockError{Index: i, Total: total, Err: err}
		}
		out = append(out, decoded...)
	}
	return out, nil
}
