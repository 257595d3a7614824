package huffc

import (
	"encoding/binary"
	"fmt"
)

// writeTraditionalHeader writes one (symbol byte, little-endian uint32
// count) pair per active leaf of root, in left-first tree-walk order,
// skipping EOFSymbol (which the decoder re-inserts with count 1), and
// terminates with the (0x00, 0x00000000) sentinel pair.
//
// A real symbol 0 with a genuine count of 0 would be indistinguishable
// from the terminator, but count-zero symbols are never active leaves,
// so the collision never actually occurs.
func writeTraditionalHeader(bw *BitWriter, root *huffmanNode) error {
	for _, leaf := range leftFirstLeaves(root) {
		if leaf.symbol == EOFSymbol {
			continue
		}
		if err := bw.PutByte(byte(leaf.symbol)); err != nil {
			return err
		}
		var buf [4]byte
		binary.LittleEndian.PutUint32(buf[:], leaf.count)
		for _, b := range buf {
			if err := bw.PutByte(b); err != nil {
				return err
			}
		}
	}
	if err := bw.PutByte(0); err != nil {
		return err
	}
	var zero [4]byte
	for _, b := range zero {
		if err := bw.PutByte(b); err != nil {
			return err
		}
	}
	return nil
}

// readTraditionalHeader reads (symbol, count) pairs until the terminator
// pair, returning a 257-entry count table (EOFSymbol's slot always 0;
// the driver sets it). Returns ErrMalformedHeader if the stream ends
// before the terminator.
func readTraditionalHeader(br *BitReader) ([numSymbols]uint32, error) {
	var counts [numSymbols]uint32
	for {
		sym, err := br.GetByte()
		if err != nil {
			return counts, fmt.Errorf("%w: %v", ErrMalformedHeader, err)
		}
		var buf [4]byte
		for i := range buf {
			b, err := br.GetByte()
			if err != nil {
				return counts, fmt.Errorf("%w: %v", ErrMalformedHeader, err)
			}
			buf[i] = b
		}
		count := binary.LittleEndian.Uint32(buf[:])
		if sym == 0 && count == 0 {
			break
		}
		counts[sym] = count
	}
	return counts, nil
}

// writeCanonicalHeader writes exactly 256 bytes (one code length per
// symbol 0..255, in order, 0 for an unused symbol) followed by an
// 8-byte little-endian total, the exact number of bytes the payload
// decodes to. The total is the length frame that lets DecodeCanonical
// stop precisely instead of guessing at the boundary between real codes
// and the trailing zero padding BitWriter.Close appends (see engine.go).
func writeCanonicalHeader(bw *BitWriter, lengths [256]byte, total uint64) error {
	for _, l := range lengths {
		if err := bw.PutByte(l); err != nil {
			return err
		}
	}
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], total)
	for _, b := range buf {
		if err := bw.PutByte(b); err != nil {
			return err
		}
	}
	return nil
}

// readCanonicalHeader reads the 256 code-length bytes plus the 8-byte
// little-endian total payload length written by writeCanonicalHeader.
func readCanonicalHeader(br *BitReader) ([256]byte, uint64, error) {
	var lengths [256]byte
	for i := range lengths {
		b, err := br.GetByte()
		if err != nil {
			return lengths, 0, fmt.Errorf("%w: %v", ErrMalformedHeader, err)
		}
		lengths[i] = b
	}
	var buf [8]byte
	for i := range buf {
		b, err := br.GetByte()
		if err != nil {
			return lengths, 0, fmt.Errorf("%w: %v", ErrMalformedHeader, err)
		}
		buf[i] = b
	}
	total := binary.LittleEndian.Uint64(buf[:])
	return lengths, total, nil
}
