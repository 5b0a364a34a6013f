package util

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Opts holds the settings of a packet stream.
type Opts struct {
	// CompressionAlgorithm is the algorithm frames are compressed with once compression is
	// enabled. It is one of "flate", "snappy" or "none".
	CompressionAlgorithm string `toml:"compression_algorithm"`
	// CompressionThreshold is the minimum size of a frame that is compressed. Smaller frames are
	// sent uncompressed.
	CompressionThreshold uint16 `toml:"compression_threshold"`
	// MaxFrameSize is the maximum size of a single frame in bytes.
	MaxFrameSize uint32 `toml:"max_frame_size"`
	// SenderSubClient and TargetSubClient are the sub client IDs written to the header of
	// every packet sent. They are only non-zero for split screen connections.
	SenderSubClient byte `toml:"sender_sub_client"`
	TargetSubClient byte `toml:"target_sub_client"`
}

// DefaultOpts returns the default settings.
func DefaultOpts() *Opts {
	return &Opts{
		CompressionAlgorithm: "flate",
		CompressionThreshold: 256,
		MaxFrameSize:         8 * 1024 * 1024,
	}
}

// LoadOpts reads the TOML file at path on top of the default settings.
func LoadOpts(path string) (*Opts, error) {
	opts := DefaultOpts()
	if _, err := toml.DecodeFile(path, opts); err != nil {
		return nil, fmt.Errorf("load opts from %v: %w", path, err)
	}
	if opts.SenderSubClient > 3 || opts.TargetSubClient > 3 {
		return nil, fmt.Errorf("load opts from %v: sub client IDs must be in the range 0-3", path)
	}
	return opts, nil
}
