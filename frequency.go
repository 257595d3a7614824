package huffc

import (
	"fmt"
	"io"
	"math"
)

// EOFSymbol is the reserved traditional-variant symbol that terminates
// decoding. It has no byte representation and only appears as a leaf in
// the traditional code table.
const EOFSymbol = 256

// numSymbols is the size of a traditional-variant frequency/leaf table:
// 256 byte values plus EOFSymbol.
const numSymbols = 257

// countFrequencies makes a single linear pass over r, returning a
// 257-entry saturating uint32 count table (index 256 unused here; the
// caller sets it for the traditional variant). If a symbol's count would
// overflow uint32, it returns ErrInputTooLarge.
func countFrequencies(r ByteReader) ([numSymbols]uint32, error) {
	var counts [numSymbols]uint32
	err := countFrequenciesInto(r, &counts)
	return counts, err
}

// countFrequenciesInto accumulates into a caller-supplied counts table
// rather than a fresh one, so the near-saturation boundary case can be
// exercised directly in tests without looping 2^32 times.
func countFrequenciesInto(r ByteReader, counts *[numSymbols]uint32) error {
	for {
		b, err := r.ReadByte()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return wrapIO(err)
		}
		if counts[b] == math.MaxUint32 {
			return fmt.Errorf("%w: symbol %d", ErrInputTooLarge, b)
		}
		counts[b]++
	}
}
