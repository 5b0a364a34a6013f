package packet

import (
	"github.com/cooldogedev/bedrockwire/protocol"
)

// TickSync is sent by the client and the server to maintain a synchronized, server-authoritative
// tick between the client and the server.
type TickSync struct {
	// ClientRequestTimestamp is the timestamp on which the client sent this packet to the server.
	// The server should fill out that same value when replying.
	ClientRequestTimestamp int64
	// ServerReceptionTimestamp is the timestamp on which the server received the packet sent by
	// the client.
	ServerReceptionTimestamp int64
}

// ID ...
func (*TickSync) ID() uint32 {
	return IDTickSync
}

// Marshal ...
func (pk *TickSync) Marshal(io protocol.IO) {
	io.Int64(&pk.ClientRequestTimestamp)
	io.Int64(&pk.ServerReceptionTimestamp)
}
