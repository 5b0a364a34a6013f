package stream

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/cooldogedev/bedrockwire/internal"
)

// Writer writes frames prefixed with their big-endian uint32 length to an underlying writer.
type Writer struct {
	w       io.Writer
	maxSize uint32
}

// NewWriter creates a Writer writing to w. Frames longer than maxSize are refused.
func NewWriter(w io.Writer, maxSize uint32) *Writer {
	if maxSize == 0 {
		maxSize = DefaultMaxFrameSize
	}
	return &Writer{w: w, maxSize: maxSize}
}

// WriteFrame writes data as a single frame. The length prefix and data are written with a
// single call to the underlying writer.
func (w *Writer) WriteFrame(data []byte) (err error) {
	if uint64(len(data)) > uint64(w.maxSize) {
		return fmt.Errorf("%w: %v > %v", ErrFrameTooLarge, len(data), w.maxSize)
	}

	buf := internal.GetBuffer()
	defer internal.PutBuffer(buf)

	if err = binary.Write(buf, binary.BigEndian, uint32(len(data))); err != nil {
		return err
	}

	buf.Write(data)
	if _, err := w.w.Write(buf.Bytes()); err != nil {
		return err
	}
	return
}
