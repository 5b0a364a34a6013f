package stream

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"sync"
	"sync/atomic"

	"github.com/cooldogedev/bedrockwire/internal"
	"github.com/cooldogedev/bedrockwire/packet"
	"github.com/cooldogedev/bedrockwire/util"
)

// uncompressedMarker prefixes frames that are sent uncompressed after compression was enabled.
const uncompressedMarker = 0xff

// compressionSettings holds the compression negotiated for a Conn.
type compressionSettings struct {
	compression Compression
	threshold   uint16
}

// Conn reads and writes packets over a byte stream that the caller owns, such as an accepted
// connection. Every packet is sent in its own frame. Once compression is enabled, frames are
// prefixed with a byte that identifies the algorithm they were compressed with.
//
// WritePacket may be called concurrently. ReadPacket must only be called from one goroutine.
type Conn struct {
	rw io.ReadWriter

	reader *Reader

	writer  *Writer
	writeMu sync.Mutex

	encoder  packet.Encoder
	pool     packet.Pool
	decoder  *packet.Decoder
	settings atomic.Pointer[compressionSettings]

	logger *slog.Logger
	once   sync.Once
	closed chan struct{}
}

// NewConn creates a new Conn reading from and writing to rw. opts may be nil, in which case the
// default settings are used.
func NewConn(rw io.ReadWriter, opts *util.Opts, logger *slog.Logger) *Conn {
	if opts == nil {
		opts = util.DefaultOpts()
	}
	if logger == nil {
		logger = slog.Default()
	}

	pool := packet.NewPool()
	return &Conn{
		rw: rw,

		reader: NewReader(rw, opts.MaxFrameSize),
		writer: NewWriter(rw, opts.MaxFrameSize),

		encoder: packet.Encoder{SenderSubClient: opts.SenderSubClient, TargetSubClient: opts.TargetSubClient},
		pool:    pool,
		decoder: packet.NewDecoder(pool, nil),

		logger: logger,
		closed: make(chan struct{}),
	}
}

// SetCompression enables compression of frames larger than or equal to threshold using the
// compression passed. It is called automatically when a NetworkSettings packet is written or
// read.
func (c *Conn) SetCompression(compression Compression, threshold uint16) {
	c.settings.Store(&compressionSettings{compression: compression, threshold: threshold})
	c.logger.Debug("enabled compression", "algorithm", compression.EncodeCompression(), "threshold", threshold)
}

// WritePacket encodes pk and writes it to the connection in a single frame.
func (c *Conn) WritePacket(pk packet.Packet) error {
	select {
	case <-c.closed:
		return net.ErrClosed
	default:
	}

	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	buf := internal.GetBuffer()
	defer internal.PutBuffer(buf)
	if err := c.encoder.EncodeTo(buf, pk); err != nil {
		return fmt.Errorf("write %T: %w", pk, err)
	}

	data, err := c.compress(buf.Bytes())
	if err != nil {
		return fmt.Errorf("write %T: %w", pk, err)
	}
	if err := c.writer.WriteFrame(data); err != nil {
		return fmt.Errorf("write %T: %w", pk, err)
	}

	if settings, ok := pk.(*packet.NetworkSettings); ok {
		c.negotiate(settings)
	}
	return nil
}

// ReadPacket reads the next frame from the connection and decodes the packet it holds. Packets
// with an ID that is not known are returned as a *packet.UnknownPacketIDError, after which the
// connection may still be read from.
func (c *Conn) ReadPacket() (packet.Packet, error) {
	select {
	case <-c.closed:
		return nil, net.ErrClosed
	default:
	}

	frame, err := c.reader.ReadFrame()
	if err != nil {
		return nil, err
	}
	data, err := c.decompress(frame)
	if err != nil {
		return nil, err
	}

	pk, _, err := c.decoder.Decode(data)
	if err != nil {
		var unknown *packet.UnknownPacketIDError
		if errors.As(err, &unknown) {
			c.logger.Debug("skipped unknown packet", "id", unknown.ID, "len", len(data))
		}
		return nil, err
	}

	switch pk := pk.(type) {
	case *packet.NetworkSettings:
		c.negotiate(pk)
	case *packet.StartGame:
		c.decoder = packet.NewDecoder(c.pool, pk.ItemTable())
		c.logger.Debug("updated item table", "items", len(pk.Items))
	}
	return pk, nil
}

// Close closes the connection. The underlying stream is closed too if it implements io.Closer.
func (c *Conn) Close() (err error) {
	c.once.Do(func() {
		close(c.closed)
		if closer, ok := c.rw.(io.Closer); ok {
			err = closer.Close()
		}
	})
	return
}

// negotiate enables the compression held by pk.
func (c *Conn) negotiate(pk *packet.NetworkSettings) {
	compression, ok := CompressionByID(pk.CompressionAlgorithm)
	if !ok {
		c.logger.Warn("unknown compression algorithm", "algorithm", pk.CompressionAlgorithm)
		return
	}
	c.SetCompression(compression, pk.CompressionThreshold)
}

// compress compresses data if compression is enabled and data is large enough.
func (c *Conn) compress(data []byte) ([]byte, error) {
	settings := c.settings.Load()
	if settings == nil {
		return data, nil
	}
	if len(data) < int(settings.threshold) {
		return append([]byte{uncompressedMarker}, data...), nil
	}

	compressed, err := settings.compression.Compress(data)
	if err != nil {
		return nil, err
	}
	return append([]byte{byte(settings.compression.EncodeCompression())}, compressed...), nil
}

// decompress decompresses frame according to the marker it starts with, if compression is
// enabled.
func (c *Conn) decompress(frame []byte) ([]byte, error) {
	if c.settings.Load() == nil {
		return frame, nil
	}
	if len(frame) == 0 {
		return nil, errors.New("read frame: missing compression marker")
	}

	marker, data := frame[0], frame[1:]
	if marker == uncompressedMarker {
		return data, nil
	}
	compression, ok := CompressionByID(uint16(marker))
	if !ok {
		return nil, fmt.Errorf("read frame: unknown compression marker %#x", marker)
	}
	return compression.Decompress(data)
}
