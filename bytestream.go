package huffc

import (
	"bufio"
	"io"
	"os"
)

// ByteReader is the byte-stream source the compression engine consumes.
// It is the only input abstraction the core depends on: it never sees a
// file name, only bytes and the ability to rewind to the start (needed
// because both encoders scan the input once to collect statistics and a
// second time to emit codes).
type ByteReader interface {
	io.ByteReader
	Rewind() error
}

// ByteWriter is the byte-stream sink the compression engine emits to.
type ByteWriter interface {
	io.ByteWriter
	Close() error
}

// fileByteReader adapts an *os.File to ByteReader.
type fileByteReader struct {
	f *os.File
	r *bufio.Reader
}

// NewFileByteReader returns a ByteReader backed by f, buffered with bufio.
func NewFileByteReader(f *os.File) ByteReader {
	return &fileByteReader{f: f, r: bufio.NewReader(f)}
}

func (b *fileByteReader) ReadByte() (byte, error) {
	return b.r.ReadByte()
}

func (b *fileByteReader) Rewind() error {
	if _, err := b.f.Seek(0, io.SeekStart); err != nil {
		return err
	}
	b.r.Reset(b.f)
	return nil
}

// fileByteWriter adapts an *os.File to ByteWriter.
type fileByteWriter struct {
	f *os.File
	w *bufio.Writer
}

// NewFileByteWriter returns a ByteWriter backed by f, buffered with bufio.
func NewFileByteWriter(f *os.File) ByteWriter {
	return &fileByteWriter{f: f, w: bufio.NewWriter(f)}
}

func (b *fileByteWriter) WriteByte(c byte) error {
	return b.w.WriteByte(c)
}

func (b *fileByteWriter) Close() error {
	return b.w.Flush()
}

// bufferByteReader adapts an in-memory byte slice to ByteReader.
type bufferByteReader struct {
	data []byte
	pos  int
}

// NewBufferByteReader returns a ByteReader over data, usable by library
// callers and tests that already hold their input in memory.
func NewBufferByteReader(data []byte) ByteReader {
	return &bufferByteReader{data: data}
}

func (b *bufferByteReader) ReadByte() (byte, error) {
	if b.pos >= len(b.data) {
		return 0, io.EOF
	}
	c := b.data[b.pos]
	b.pos++
	return c, nil
}

func (b *bufferByteReader) Rewind() error {
	b.pos = 0
	return nil
}

// bufferByteWriter adapts a growable in-memory buffer to ByteWriter.
type bufferByteWriter struct {
	buf *[]byte
}

// NewBufferByteWriter returns a ByteWriter that appends written bytes to
// *buf. Close is a no-op.
func NewBufferByteWriter(buf *[]byte) ByteWriter {
	return &bufferByteWriter{buf: buf}
}

func (b *bufferByteWriter) WriteByte(c byte) error {
	*b.buf = append(*b.buf, c)
	return nil
}

func (b *bufferByteWriter) Close() error {
	return nil
}
