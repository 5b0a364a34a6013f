package stream

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

const (
	frameLengthSize = 4
	// DefaultMaxFrameSize is the maximum size of a frame used when none is configured.
	DefaultMaxFrameSize = 8 * 1024 * 1024
)

// ErrFrameTooLarge is returned when a frame exceeds the maximum frame size.
var ErrFrameTooLarge = errors.New("frame exceeds maximum size")

// Reader reads frames prefixed with their big-endian uint32 length from an underlying reader.
type Reader struct {
	r       io.Reader
	maxSize uint32
	length  [frameLengthSize]byte
}

// NewReader creates a Reader reading from r. Frames longer than maxSize are refused.
func NewReader(r io.Reader, maxSize uint32) *Reader {
	if maxSize == 0 {
		maxSize = DefaultMaxFrameSize
	}
	return &Reader{r: r, maxSize: maxSize}
}

// ReadFrame reads the next frame. It returns io.EOF if the reader ended before a new frame
// started, and io.ErrUnexpectedEOF if it ended halfway through one.
func (r *Reader) ReadFrame() ([]byte, error) {
	if _, err := io.ReadFull(r.r, r.length[:]); err != nil {
		return nil, err
	}

	length := binary.BigEndian.Uint32(r.length[:])
	if length > r.maxSize {
		return nil, fmt.Errorf("%w: %v > %v", ErrFrameTooLarge, length, r.maxSize)
	}
	frame := make([]byte, length)
	if _, err := io.ReadFull(r.r, frame); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.ErrUnexpectedEOF
		}
		return nil, err
	}
	return frame, nil
}
