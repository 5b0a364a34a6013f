package stream

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"github.com/cooldogedev/bedrockwire/packet"
	"github.com/golang/snappy"
	"github.com/klauspost/compress/flate"
)

// maxDecompressedSize is the maximum size a compressed frame may decompress to.
const maxDecompressedSize = 16 * 1024 * 1024

// Compression represents a compression algorithm that frames may be compressed with once it is
// negotiated using the NetworkSettings packet.
type Compression interface {
	// EncodeCompression returns the ID of the algorithm as sent in the NetworkSettings packet.
	EncodeCompression() uint16
	// Compress compresses the data passed and returns it.
	Compress(data []byte) ([]byte, error)
	// Decompress decompresses the data passed and returns it.
	Decompress(data []byte) ([]byte, error)
}

var (
	// FlateCompression is the raw deflate compression algorithm.
	FlateCompression Compression = flateCompression{}
	// SnappyCompression is the snappy compression algorithm.
	SnappyCompression Compression = snappyCompression{}
	// NopCompression leaves data as it is.
	NopCompression Compression = nopCompression{}
)

// CompressionByID returns the compression algorithm with the ID passed, as found in the
// CompressionAlgorithm field of the NetworkSettings packet.
func CompressionByID(id uint16) (Compression, bool) {
	switch id {
	case packet.CompressionAlgorithmFlate:
		return FlateCompression, true
	case packet.CompressionAlgorithmSnappy:
		return SnappyCompression, true
	case packet.CompressionAlgorithmNone:
		return NopCompression, true
	}
	return nil, false
}

// CompressionByName returns the compression algorithm with the name passed, which is one of
// "flate", "snappy" or "none".
func CompressionByName(name string) (Compression, error) {
	switch name {
	case "flate":
		return FlateCompression, nil
	case "snappy":
		return SnappyCompression, nil
	case "none":
		return NopCompression, nil
	}
	return nil, fmt.Errorf("unknown compression algorithm %q", name)
}

type flateCompression struct{}

var flateWriters = sync.Pool{
	New: func() any {
		w, _ := flate.NewWriter(io.Discard, flate.DefaultCompression)
		return w
	},
}

// EncodeCompression ...
func (flateCompression) EncodeCompression() uint16 {
	return packet.CompressionAlgorithmFlate
}

// Compress ...
func (flateCompression) Compress(data []byte) ([]byte, error) {
	buf := bytes.NewBuffer(make([]byte, 0, len(data)/2))
	w := flateWriters.Get().(*flate.Writer)
	defer flateWriters.Put(w)

	w.Reset(buf)
	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("compress flate: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("close flate writer: %w", err)
	}
	return buf.Bytes(), nil
}

// Decompress ...
func (flateCompression) Decompress(data []byte) ([]byte, error) {
	r := flate.NewReader(bytes.NewReader(data))
	defer r.Close()

	decompressed, err := io.ReadAll(io.LimitReader(r, maxDecompressedSize+1))
	if err != nil {
		return nil, fmt.Errorf("decompress flate: %w", err)
	}
	if len(decompressed) > maxDecompressedSize {
		return nil, fmt.Errorf("decompress flate: %w", ErrFrameTooLarge)
	}
	return decompressed, nil
}

type snappyCompression struct{}

// EncodeCompression ...
func (snappyCompression) EncodeCompression() uint16 {
	return packet.CompressionAlgorithmSnappy
}

// Compress ...
func (snappyCompression) Compress(data []byte) ([]byte, error) {
	return snappy.Encode(nil, data), nil
}

// Decompress ...
func (snappyCompression) Decompress(data []byte) ([]byte, error) {
	n, err := snappy.DecodedLen(data)
	if err != nil {
		return nil, fmt.Errorf("decompress snappy: %w", err)
	}
	if n > maxDecompressedSize {
		return nil, fmt.Errorf("decompress snappy: %w", ErrFrameTooLarge)
	}
	decompressed, err := snappy.Decode(nil, data)
	if err != nil {
		return nil, fmt.Errorf("decompress snappy: %w", err)
	}
	return decompressed, nil
}

type nopCompression struct{}

// EncodeCompression ...
func (nopCompression) EncodeCompression() uint16 {
	return packet.CompressionAlgorithmNone
}

// Compress ...
func (nopCompression) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress ...
func (nopCompression) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
