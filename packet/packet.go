package packet

import (
	"github.com/cooldogedev/bedrockwire/protocol"
)

// Packet represents a packet that may be sent over a Minecraft connection. Every packet has an ID
// that it is identified by on the wire, and a single Marshal method that lists its fields once
// and is used both to encode and to decode the packet.
type Packet interface {
	// ID returns the ID of the packet. It is written to the header of the packet.
	ID() uint32
	// Marshal encodes or decodes the fields of the packet, depending on the IO passed.
	Marshal(io protocol.IO)
}
