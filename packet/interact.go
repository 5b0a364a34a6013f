package packet

import (
	"github.com/cooldogedev/bedrockwire/protocol"
	"github.com/go-gl/mathgl/mgl32"
)

// Interact is sent by the client when it interacts with another entity in some way. It used to
// be used for normal entity and block interaction, but this is no longer the case now.
type Interact struct {
	// ActionType is the type of action that was executed by the player.
	ActionType protocol.InteractAction
	// TargetEntityRuntimeID is the runtime ID of the entity that the player interacted with.
	TargetEntityRuntimeID uint64
	// Position is the position at which the action was performed.
	Position mgl32.Vec3
}

// ID ...
func (*Interact) ID() uint32 {
	return IDInteract
}

// Marshal ...
func (pk *Interact) Marshal(io protocol.IO) {
	pk.ActionType.Marshal(io)
	io.Varuint64(&pk.TargetEntityRuntimeID)
	io.Vec3(&pk.Position)
}
