package packet

import (
	"github.com/cooldogedev/bedrockwire/protocol"
)

// PlayerAction is sent by the client when it executes any action, for example starting to sprint,
// swim, starting the breaking of a block, dropping an item, etc.
type PlayerAction struct {
	// EntityRuntimeID is the runtime ID of the player.
	EntityRuntimeID uint64
	// ActionType is the ID of the action that was executed by the player.
	ActionType int32
	// BlockPosition is the position of the target block, if the action has to do with a block.
	BlockPosition protocol.UBlockPos
	// ResultPosition is the position of the action's result.
	ResultPosition protocol.UBlockPos
	// BlockFace is the face of the target block that was touched.
	BlockFace int32
}

// ID ...
func (*PlayerAction) ID() uint32 {
	return IDPlayerAction
}

// Marshal ...
func (pk *PlayerAction) Marshal(io protocol.IO) {
	io.Varuint64(&pk.EntityRuntimeID)
	io.Varint32(&pk.ActionType)
	pk.BlockPosition.Marshal(io)
	pk.ResultPosition.Marshal(io)
	io.Varint32(&pk.BlockFace)
}
