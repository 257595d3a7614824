package huffc

import "slices"

// canonicalEntry is one symbol's entry in a canonical code table.
type canonicalEntry struct {
	symbol  int
	codeLen byte
	code    *BitArray // left-justified to 256 bits; nil/zero-length entries have codeLen 0
}

// canonicalLengths walks root (a tree built over the 256 byte symbols,
// no EOF leaf) and returns a 256-entry code-length table indexed by
// symbol, 0 for any symbol absent from the tree.
func canonicalLengths(root *huffmanNode) [256]byte {
	var lengths [256]byte
	codeLengthWalk(root, func(symbol int, codeLen int, _ *[32]byte) {
		lengths[symbol] = byte(codeLen)
	})
	return lengths
}

// buildCanonicalCode converts a 256-entry code-length table into
// canonical codes: sort by (codeLen asc, symbol asc), then walk the
// same-length runs from the longest down to the shortest, maintaining a
// 256-bit accumulator that is right-justified during accumulation and
// left-justified (to 256 bits) when stored. Within each run, entries are
// assigned in ascending symbol order, so that — as spec.md's canonical
// ordering property requires — ascending symbol implies ascending code
// value for every tied code length. (Visiting the sorted slice strictly
// back-to-front one entry at a time would instead assign codes to each
// run's symbols in descending order, since the slice itself is sorted
// ascending; that is wrong and is not done here.) The result is re-sorted
// by symbol so lookup is table[symbol].
func buildCanonicalCode(lengths [256]byte) [256]canonicalEntry {
	entries := make([]canonicalEntry, 256)
	for i := 0; i < 256; i++ {
		entries[i] = canonicalEntry{symbol: i, codeLen: lengths[i]}
	}

	slices.SortFunc(entries, func(a, b canonicalEntry) int {
		if a.codeLen != b.codeLen {
			return int(a.codeLen) - int(b.codeLen)
		}
		return a.symbol - b.symbol
	})

	n := len(entries)
	currentLen := int(entries[n-1].codeLen)
	acc := NewBitArray(256)

	i := n - 1
	for i >= 0 {
		if entries[i].codeLen == 0 {
			break // everything from here to the front is unused
		}
		runLen := int(entries[i].codeLen)
		start := i
		for start-1 >= 0 && int(entries[start-1].codeLen) == runLen {
			start--
		}

		if runLen < currentLen {
			acc.ShiftRight(currentLen - runLen)
			currentLen = runLen
		}
		for k := start; k <= i; k++ {
			code := acc.Dup()
			code.ShiftLeft(256 - currentLen)
			entries[k].code = code
			acc.Increment()
		}

		i = start - 1
	}

	var out [256]canonicalEntry
	for _, e := range entries {
		out[e.symbol] = e
	}
	return out
}

// canonicalLenIndex maps a code length L (1..255) to the first index in
// codes-sorted-by-(len,symbol) whose codeLen == L, or 256 if no symbol
// has that length. It is the decoder's window lookup table.
type canonicalLenIndex struct {
	sorted  []canonicalEntry
	firstOf [257]int // an entry of 256 is the sentinel meaning "not found"
}

func buildCanonicalLenIndex(code [256]canonicalEntry) *canonicalLenIndex {
	sorted := make([]canonicalEntry, 256)
	copy(sorted, code[:])
	slices.SortFunc(sorted, func(a, b canonicalEntry) int {
		if a.codeLen != b.codeLen {
			return int(a.codeLen) - int(b.codeLen)
		}
		return a.symbol - b.symbol
	})

	idx := &canonicalLenIndex{sorted: sorted}
	for i := range idx.firstOf {
		idx.firstOf[i] = 256
	}
	for i := len(sorted) - 1; i >= 0; i-- {
		if sorted[i].codeLen == 0 {
			break
		}
		idx.firstOf[sorted[i].codeLen] = i
	}
	return idx
}

// match scans the contiguous window of codes with codeLen == length,
// returning the matching symbol if reg (left-justified, zero-padded
// below bit `length`) equals one of them.
func (idx *canonicalLenIndex) match(reg *BitArray, length int) (symbol int, ok bool, err error) {
	if length < 1 || length > 255 {
		return 0, false, nil
	}
	start := idx.firstOf[length]
	if start == 256 {
		return 0, false, nil
	}
	for i := start; i < len(idx.sorted) && idx.sorted[i].codeLen == byte(length); i++ {
		cmp, cmpErr := Compare(reg, idx.sorted[i].code)
		if cmpErr != nil {
			return 0, false, cmpErr
		}
		if cmp == 0 {
			return idx.sorted[i].symbol, true, nil
		}
	}
	return 0, false, nil
}

// canonicalDecoder holds the running state of a canonical-stream bit
// decode: a growing 256-bit register plus how many bits have been placed
// into it so far.
type canonicalDecoder struct {
	idx *canonicalLenIndex
	reg *BitArray
	n   int
}

func newCanonicalDecoder(idx *canonicalLenIndex) *canonicalDecoder {
	return &canonicalDecoder{idx: idx, reg: NewBitArray(256)}
}

// pushBit adds one bit to the register and attempts a match. If a code
// of the current length matches, it returns the symbol and resets the
// register for the next code. If the register grows past 255 bits
// without any match, it returns ErrInvalidCode.
func (d *canonicalDecoder) pushBit(bit byte) (symbol int, matched bool, err error) {
	if bit != 0 {
		if err := d.reg.Set(d.n); err != nil {
			return 0, false, err
		}
	}
	d.n++

	if d.n > 255 {
		return 0, false, ErrInvalidCode
	}

	sym, ok, err := d.idx.match(d.reg, d.n)
	if err != nil {
		return 0, false, err
	}
	if !ok {
		return 0, false, nil
	}

	d.reg = NewBitArray(256)
	d.n = 0
	return sym, true, nil
}
