// Package huffc implements a byte-oriented lossless file compressor
// built on Huffman coding. It offers two coding variants: a traditional
// variant that persists per-symbol frequency counts and rebuilds the
// Huffman tree on decode, and a canonical variant that persists only
// per-symbol code lengths and rebuilds a canonical code.
package huffc

import (
	"fmt"
	"io"
)

// leavesFromCounts returns one leaf node per non-zero entry of counts,
// in ascending symbol order (the order in which counts itself is
// indexed).
func leavesFromCounts(counts []uint32) []*huffmanNode {
	leaves := make([]*huffmanNode, 0, len(counts))
	for sym, c := range counts {
		if c > 0 {
			leaves = append(leaves, &huffmanNode{kind: nodeLeaf, symbol: sym, count: c})
		}
	}
	return leaves
}

// EncodeTraditional reads all of r, builds a Huffman tree including the
// reserved EOFSymbol, writes the traditional header (symbol/count pairs)
// followed by the bit-packed payload and EOF code, to w.
func EncodeTraditional(r ByteReader, w ByteWriter) error {
	counts, err := countFrequencies(r)
	if err != nil {
		return err
	}
	counts[EOFSymbol] = 1

	root := buildHuffmanTree(leavesFromCounts(counts[:]))
	table := codeTableFromTree(root)

	bw := NewBitWriter(w)
	if err := writeTraditionalHeader(bw, root); err != nil {
		return err
	}

	if err := wrapIO(r.Rewind()); err != nil {
		return err
	}
	for {
		b, err := r.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return wrapIO(err)
		}
		entry := table[int(b)]
		if err := bw.PutBits(entry.Code.RawBytes(), int(entry.CodeLen)); err != nil {
			return err
		}
	}

	eof := table[EOFSymbol]
	if err := bw.PutBits(eof.Code.RawBytes(), int(eof.CodeLen)); err != nil {
		return err
	}

	return bw.Close()
}

// DecodeTraditional parses a traditional header from r, rebuilds the
// same Huffman tree the encoder built, and decodes the bit-packed
// payload to w, stopping at the EOF symbol.
func DecodeTraditional(r ByteReader, w ByteWriter) error {
	br := NewBitReader(r)
	counts, err := readTraditionalHeader(br)
	if err != nil {
		return err
	}
	counts[EOFSymbol] = 1

	root := buildHuffmanTree(leavesFromCounts(counts[:]))
	if root == nil {
		return fmt.Errorf("%w: no active symbols", ErrMalformedHeader)
	}

	for {
		sym, err := decodeOneSymbol(br, root)
		if err != nil {
			return err
		}
		if sym == EOFSymbol {
			break
		}
		if err := w.WriteByte(byte(sym)); err != nil {
			return wrapIO(err)
		}
	}
	return wrapIO(w.Close())
}

// decodeOneSymbol walks root bit-by-bit from r (left on 0, right on 1)
// until it reaches a leaf, returning that leaf's symbol. The single-leaf
// tree is a special case: exactly one bit (always 0, per the encoder's
// depth-1 assignment) is consumed and the sole symbol returned.
func decodeOneSymbol(br *BitReader, root *huffmanNode) (int, error) {
	if root.kind == nodeLeaf {
		if _, err := br.GetBit(); err != nil {
			return 0, fmt.Errorf("%w: %v", ErrTruncatedStream, err)
		}
		return root.symbol, nil
	}
	node := root
	for node.kind == nodeInternal {
		bit, err := br.GetBit()
		if err != nil {
			return 0, fmt.Errorf("%w: %v", ErrTruncatedStream, err)
		}
		if bit == 0 {
			node = node.left
		} else {
			node = node.right
		}
	}
	return node.symbol, nil
}

// EncodeCanonical reads all of r, builds a Huffman tree over the 256
// byte symbols (no EOF leaf), derives canonical codes from the code
// lengths, writes the 256-byte canonical header (plus the 8-byte
// payload-length frame described below) followed by the bit-packed
// payload, to w.
//
// Canonical streams carry no in-band EOF marker: with every byte value
// a legal payload symbol, there is no spare alphabet entry to reserve
// for one, and every canonical table gives some symbol a code made only
// of zero bits (buildCanonicalCode's accumulator always starts at 0),
// so the zero padding BitWriter.Close appends to reach a byte boundary
// would otherwise be indistinguishable from real trailing codes. This implementation resolves that the way spec.md's design
// notes offer as option (a): the header carries the exact decoded
// length, and DecodeCanonical stops after emitting exactly that many
// bytes rather than reading until the stream is exhausted.
func EncodeCanonical(r ByteReader, w ByteWriter) error {
	counts, err := countFrequencies(r)
	if err != nil {
		return err
	}

	var total uint64
	for _, c := range counts[:256] {
		total += uint64(c)
	}

	root := buildHuffmanTree(leavesFromCounts(counts[:256]))
	lengths := canonicalLengths(root)
	code := buildCanonicalCode(lengths)

	bw := NewBitWriter(w)
	if err := writeCanonicalHeader(bw, lengths, total); err != nil {
		return err
	}

	if err := wrapIO(r.Rewind()); err != nil {
		return err
	}
	for {
		b, err := r.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return wrapIO(err)
		}
		entry := code[b]
		if err := bw.PutBits(entry.code.RawBytes(), int(entry.codeLen)); err != nil {
			return err
		}
	}

	return bw.Close()
}

// DecodeCanonical parses the canonical header (256 code lengths plus
// the 8-byte payload-length frame EncodeCanonical writes) from r,
// rebuilds the canonical code, and decodes bits until exactly that many
// bytes have been emitted. Decoding never reads past the last real code:
// the length frame makes the trailing zero padding BitWriter.Close
// appends unambiguous, rather than relying on the underlying byte stream
// running out (which a zero-valued shortest code would make ambiguous;
// see the note on EncodeCanonical).
func DecodeCanonical(r ByteReader, w ByteWriter) error {
	br := NewBitReader(r)
	lengths, total, err := readCanonicalHeader(br)
	if err != nil {
		return err
	}

	code := buildCanonicalCode(lengths)
	idx := buildCanonicalLenIndex(code)
	dec := newCanonicalDecoder(idx)

	var emitted uint64
	for emitted < total {
		bit, err := br.GetBit()
		if err != nil {
			return fmt.Errorf("%w: %v", ErrTruncatedStream, err)
		}
		sym, matched, err := dec.pushBit(bit)
		if err != nil {
			return err
		}
		if matched {
			if err := w.WriteByte(byte(sym)); err != nil {
				return wrapIO(err)
			}
			emitted++
		}
	}
	return wrapIO(w.Close())
}

// ShowTreeTraditional writes a human-readable listing of
// (symbol, count, code) for the tree that would be built over r's
// contents, to l. It does not consume r beyond one full pass.
func ShowTreeTraditional(r ByteReader, l io.Writer) error {
	counts, err := countFrequencies(r)
	if err != nil {
		return err
	}
	counts[EOFSymbol] = 1

	root := buildHuffmanTree(leavesFromCounts(counts[:]))
	table := codeTableFromTree(root)

	fmt.Fprintf(l, "symbol  count       code\n")
	for sym := 0; sym <= EOFSymbol; sym++ {
		entry, ok := table[sym]
		if !ok {
			continue
		}
		fmt.Fprintf(l, "%3d     %-10d  %s\n", sym, counts[sym], codeBitString(entry.Code, int(entry.CodeLen)))
	}
	return nil
}

// ShowTreeCanonical writes a human-readable listing of
// (symbol, code_len, code) for the canonical code that would be built
// over r's contents, to l.
func ShowTreeCanonical(r ByteReader, l io.Writer) error {
	counts, err := countFrequencies(r)
	if err != nil {
		return err
	}

	root := buildHuffmanTree(leavesFromCounts(counts[:256]))
	lengths := canonicalLengths(root)
	code := buildCanonicalCode(lengths)

	fmt.Fprintf(l, "symbol  code_len    code\n")
	for sym := 0; sym < 256; sym++ {
		if lengths[sym] == 0 {
			continue
		}
		e := code[sym]
		fmt.Fprintf(l, "%3d     %-10d  %s\n", sym, e.codeLen, codeBitString(e.code, int(e.codeLen)))
	}
	return nil
}

func codeBitString(code *BitArray, n int) string {
	buf := make([]byte, n)
	for i := 0; i < n; i++ {
		bit, _ := code.Test(i)
		if bit {
			buf[i] = '1'
		} else {
			buf[i] = '0'
		}
	}
	return string(buf)
}
