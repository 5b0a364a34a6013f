package packet

import (
	"github.com/cooldogedev/bedrockwire/protocol"
)

// BlockEvent is sent by the server to initiate a certain event that has something to do with
// blocks in specific, for example opening a chest.
type BlockEvent struct {
	// Position is the position of the block that an event occurred at.
	Position protocol.UBlockPos
	// EventType is the type of the block event.
	EventType int32
	// EventData holds event type specific data.
	EventData int32
}

// ID ...
func (*BlockEvent) ID() uint32 {
	return IDBlockEvent
}

// Marshal ...
func (pk *BlockEvent) Marshal(io protocol.IO) {
	pk.Position.Marshal(io)
	io.Varint32(&pk.EventType)
	io.Varint32(&pk.EventData)
}
