package huffc

import (
	"errors"
	"fmt"
)

// Sentinel error kinds. Callers should compare with errors.Is, since
// most of these are wrapped with additional context before being
// returned from an Encode*/Decode* call.
var (
	// ErrIO is the sentinel kind for any failure surfaced by the
	// underlying ByteReader/ByteWriter itself (read, write, seek,
	// close) rather than by the compression engine's own logic.
	// Errors of this kind are reported as a *StreamError wrapping the
	// underlying cause.
	ErrIO = errors.New("huffc: i/o error")

	// ErrInputTooLarge is returned when a symbol's frequency would
	// overflow a saturating uint32 counter.
	ErrInputTooLarge = errors.New("huffc: input too large (symbol count overflow)")

	// ErrMalformedHeader is returned when a traditional header is
	// truncated or otherwise impossible to parse.
	ErrMalformedHeader = errors.New("huffc: malformed header")

	// ErrTruncatedStream is returned when the bit stream ends before
	// the EOF symbol (traditional) or before a complete code (canonical).
	ErrTruncatedStream = errors.New("huffc: truncated stream")

	// ErrInvalidCode is returned when the canonical decoder's register
	// grows past 255 bits (the longest possible code length) without
	// matching any known code.
	ErrInvalidCode = errors.New("huffc: invalid code")

	// ErrOutOfRange is returned by BitArray operations given an
	// out-of-bounds bit index.
	ErrOutOfRange = errors.New("huffc: bit index out of range")

	// ErrLengthMismatch is returned by BitArray binary operations
	// (And/Or/Xor/Compare) given operands of unequal length.
	ErrLengthMismatch = errors.New("huffc: bit array length mismatch")

	// ErrEndOfStream is returned by BitReader when no more bits are
	// available from the underlying ByteReader.
	ErrEndOfStream = errors.New("huffc: end of bit stream")
)

// StreamError wraps a sentinel error kind (one of the Err* values above)
// together with the underlying cause, when there is one. Callers compare
// against a kind with errors.Is; StreamError.Unwrap exposes the kind so
// that comparison works through any additional wrapping.
type StreamError struct {
	Kind  error
	Cause error
}

func (e *StreamError) Error() string {
	if e.Cause == nil {
		return e.Kind.Error()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Cause)
}

func (e *StreamError) Unwrap() error {
	return e.Kind
}

// wrapIO reports a raw failure from a ByteReader/ByteWriter (read,
// write, seek, close) as a *StreamError carrying ErrIO, so callers can
// errors.Is(err, ErrIO) regardless of which call site it came from. A
// nil err passes through unchanged.
func wrapIO(err error) error {
	if err == nil {
		return nil
	}
	return &StreamError{Kind: ErrIO, Cause: err}
}
