package packet

import (
	"github.com/cooldogedev/bedrockwire/protocol"
)

const (
	BlockUpdateNeighbours = 1 << iota
	BlockUpdateNetwork
	BlockUpdateNoGraphics
	BlockUpdatePriority
)

// UpdateBlock is sent by the server to update a block client-side, without resending the entire
// chunk that the block is located in.
type UpdateBlock struct {
	// Position is the block position at which a block is updated.
	Position protocol.UBlockPos
	// NewBlockRuntimeID is the runtime ID of the block that is placed at Position.
	NewBlockRuntimeID uint32
	// Flags is a combination of the BlockUpdate constants.
	Flags uint32
	// Layer is the world layer on which the block is updated.
	Layer uint32
}

// ID ...
func (*UpdateBlock) ID() uint32 {
	return IDUpdateBlock
}

// Marshal ...
func (pk *UpdateBlock) Marshal(io protocol.IO) {
	pk.Position.Marshal(io)
	io.Varuint32(&pk.NewBlockRuntimeID)
	io.Varuint32(&pk.Flags)
	io.Varuint32(&pk.Layer)
}
