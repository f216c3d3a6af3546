// Package freqmap computes per-byte frequency probabilities by streaming an
// io.Reader through a fixed-size buffer, the input to Huffman tree
// construction.
package freqmap

import "io"

const bufferSize = 1024 * 1024 // 1 MiB

// Map accumulates byte counts across one or more Consume calls.
type Map struct {
	counts [256]uint64
	total  uint64
}

// New returns an empty frequency accumulator.
func New() *Map {
	return &Map{}
}

// Consume adds buf's bytes to the running counts.
func (m *Map) Consume(buf []byte) {
	m.total += uint64(len(buf))
	for _, b := range buf {
		m.counts[b]++
	}
}

// Build returns the probability of each byte value that occurred at least
// once. An empty accumulator (total == 0) returns an empty map.
func (m *Map) Build() map[byte]float64 {
	out := make(map[byte]float64)
	if m.total == 0 {
		return out
	}
	for b, count := range m.counts {
		if count > 0 {
			out[byte(b)] = float64(count) / float64(m.total)
		}
	}
	return out
}

// Analyze streams r through a 1 MiB buffer and returns the resulting
// byte-probability map.
func Analyze(r io.Reader) (map[byte]float64, error) {
	m := New()
	buf := make([]byte, bufferSize)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			m.Consume(buf[:n])
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
	}
	return m.Build(), nil
}
