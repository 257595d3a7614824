package huffc

import "testing"

func TestBitArraySetClearTest(t *testing.T) {
	b := NewBitArray(16)
	if err := b.Set(0); err != nil {
		t.Fatal(err)
	}
	if err := b.Set(15); err != nil {
		t.Fatal(err)
	}
	for _, i := range []int{0, 15} {
		ok, err := b.Test(i)
		if err != nil {
			t.Fatal(err)
		}
		if !ok {
			t.Fatalf("bit %d expected set", i)
		}
	}
	ok, err := b.Test(1)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatalf("bit 1 expected clear")
	}

	if raw := b.RawBytes(); raw[0] != 0x80 || raw[1] != 0x01 {
		t.Fatalf("unexpected raw bytes %08b %08b", raw[0], raw[1])
	}

	if err := b.Clear(0); err != nil {
		t.Fatal(err)
	}
	ok, _ = b.Test(0)
	if ok {
		t.Fatalf("bit 0 expected clear after Clear")
	}
}

func TestBitArrayOutOfRange(t *testing.T) {
	b := NewBitArray(8)
	if err := b.Set(8); err == nil {
		t.Fatal("expected OutOfRange error")
	}
	if _, err := b.Test(-1); err == nil {
		t.Fatal("expected OutOfRange error")
	}
}

func TestBitArrayLengthMismatch(t *testing.T) {
	a := NewBitArray(8)
	b := NewBitArray(16)
	dest := NewBitArray(8)
	if err := dest.And(a, b); err == nil {
		t.Fatal("expected LengthMismatch error")
	}
	if _, err := Compare(a, b); err == nil {
		t.Fatal("expected LengthMismatch error")
	}
}

func TestBitArrayBooleanOps(t *testing.T) {
	a := NewBitArray(8)
	b := NewBitArray(8)
	a.bytes[0] = 0b1100_1100
	b.bytes[0] = 0b1010_1010

	and := NewBitArray(8)
	if err := and.And(a, b); err != nil {
		t.Fatal(err)
	}
	if and.bytes[0] != 0b1000_1000 {
		t.Fatalf("And: got %08b", and.bytes[0])
	}

	or := NewBitArray(8)
	if err := or.Or(a, b); err != nil {
		t.Fatal(err)
	}
	if or.bytes[0] != 0b1110_1110 {
		t.Fatalf("Or: got %08b", or.bytes[0])
	}

	xor := NewBitArray(8)
	if err := xor.Xor(a, b); err != nil {
		t.Fatal(err)
	}
	if xor.bytes[0] != 0b0110_0110 {
		t.Fatalf("Xor: got %08b", xor.bytes[0])
	}

	not := NewBitArray(8)
	if err := not.Not(a); err != nil {
		t.Fatal(err)
	}
	if not.bytes[0] != 0b0011_0011 {
		t.Fatalf("Not: got %08b", not.bytes[0])
	}
}

func TestBitArrayShift(t *testing.T) {
	b := NewBitArray(16)
	b.bytes[0] = 0b0000_0001
	b.bytes[1] = 0b0000_0000

	b.ShiftLeft(1)
	if b.bytes[0] != 0b0000_0010 || b.bytes[1] != 0 {
		t.Fatalf("ShiftLeft(1): got %08b %08b", b.bytes[0], b.bytes[1])
	}

	b.ShiftLeft(8)
	if b.bytes[0] != 0 || b.bytes[1] != 0 {
		t.Fatalf("ShiftLeft(8) after previous shift: got %08b %08b", b.bytes[0], b.bytes[1])
	}

	c := NewBitArray(16)
	c.bytes[0] = 0b1000_0000
	c.ShiftRight(1)
	if c.bytes[0] != 0b0100_0000 {
		t.Fatalf("ShiftRight(1): got %08b %08b", c.bytes[0], c.bytes[1])
	}

	c.ShiftRight(100) // n >= Len(): all zero
	if c.bytes[0] != 0 || c.bytes[1] != 0 {
		t.Fatalf("ShiftRight(>=len) should zero the array, got %08b %08b", c.bytes[0], c.bytes[1])
	}
}

func TestBitArrayIncrementDecrement(t *testing.T) {
	b := NewBitArray(16)
	if overflow := b.Increment(); overflow {
		t.Fatal("unexpected overflow")
	}
	if b.bytes[0] != 0 || b.bytes[1] != 1 {
		t.Fatalf("Increment: got %08b %08b", b.bytes[0], b.bytes[1])
	}

	b.SetAll()
	if overflow := b.Increment(); !overflow {
		t.Fatal("expected overflow incrementing all-ones array")
	}
	if b.bytes[0] != 0 || b.bytes[1] != 0 {
		t.Fatalf("Increment overflow should wrap to zero, got %08b %08b", b.bytes[0], b.bytes[1])
	}

	if underflow := b.Decrement(); !underflow {
		t.Fatal("expected underflow decrementing all-zero array")
	}
	if b.bytes[0] != 0xff || b.bytes[1] != 0xff {
		t.Fatalf("Decrement underflow should wrap to all-ones, got %08b %08b", b.bytes[0], b.bytes[1])
	}
}

func TestBitArrayCompare(t *testing.T) {
	a := NewBitArray(16)
	b := NewBitArray(16)
	if cmp, err := Compare(a, b); err != nil || cmp != 0 {
		t.Fatalf("expected equal, got %d err %v", cmp, err)
	}
	b.Set(15)
	if cmp, err := Compare(a, b); err != nil || cmp >= 0 {
		t.Fatalf("expected a < b, got %d err %v", cmp, err)
	}
	if cmp, err := Compare(b, a); err != nil || cmp <= 0 {
		t.Fatalf("expected b > a, got %d err %v", cmp, err)
	}
}

func TestBitArrayDup(t *testing.T) {
	a := NewBitArray(8)
	a.Set(0)
	b := a.Dup()
	b.Set(7)
	ok, _ := a.Test(7)
	if ok {
		t.Fatal("Dup should be independent of the original")
	}
}
