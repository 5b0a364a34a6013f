package packet

import (
	"github.com/cooldogedev/bedrockwire/protocol"
)

const (
	CompressionAlgorithmFlate  uint16 = 0
	CompressionAlgorithmSnappy uint16 = 1
	CompressionAlgorithmNone   uint16 = 0xffff
)

// NetworkSettings is sent by the server to update a variety of network settings. These settings
// modify the way packets are sent over the network stack.
type NetworkSettings struct {
	// CompressionThreshold is the minimum size of a packet that is compressed when sent. If the
	// size of a packet is under this value, it is not compressed.
	CompressionThreshold uint16
	// CompressionAlgorithm is the algorithm that is used to compress packets. It is one of the
	// CompressionAlgorithm constants.
	CompressionAlgorithm uint16
	// ClientThrottle regulates whether the client should throttle players when exceeding of the
	// threshold.
	ClientThrottle bool
	// ClientThrottleThreshold is the threshold for client throttling.
	ClientThrottleThreshold uint8
	// ClientThrottleScalar is the scalar for client throttling.
	ClientThrottleScalar float32
}

// ID ...
func (*NetworkSettings) ID() uint32 {
	return IDNetworkSettings
}

// Marshal ...
func (pk *NetworkSettings) Marshal(io protocol.IO) {
	io.Uint16(&pk.CompressionThreshold)
	io.Uint16(&pk.CompressionAlgorithm)
	io.Bool(&pk.ClientThrottle)
	io.Uint8(&pk.ClientThrottleThreshold)
	io.Float32(&pk.ClientThrottleScalar)
}

// RequestNetworkSettings is sent by the client to request network settings, such as compression,
// from the server.
type RequestNetworkSettings struct {
	// ClientProtocol is the protocol version of the player.
	ClientProtocol int32
}

// ID ...
func (*RequestNetworkSettings) ID() uint32 {
	return IDRequestNetworkSettings
}

// Marshal ...
func (pk *RequestNetworkSettings) Marshal(io protocol.IO) {
	io.BEInt32(&pk.ClientProtocol)
}
