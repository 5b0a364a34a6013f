package packet

import (
	"github.com/cooldogedev/bedrockwire/protocol"
	"github.com/go-gl/mathgl/mgl32"
)

// MovePlayer is sent by players to send their movement to the server, and by the server to update
// the movement of player entities to other players.
type MovePlayer struct {
	// EntityRuntimeID is the runtime ID of the player.
	EntityRuntimeID uint64
	Position        mgl32.Vec3
	Pitch           float32
	Yaw             float32
	HeadYaw         float32
	// Mode is the mode of the movement.
	Mode     protocol.MovementMode
	OnGround bool
	// RiddenEntityRuntimeID is the runtime ID of the entity that the player might currently be
	// riding.
	RiddenEntityRuntimeID uint64
	// TeleportCause and TeleportSourceEntityType specify the cause of a teleport.
	TeleportCause            protocol.TeleportCause
	TeleportSourceEntityType int32
	// Tick is the server tick at which the packet was sent.
	Tick uint64
}

// ID ...
func (*MovePlayer) ID() uint32 {
	return IDMovePlayer
}

// Marshal ...
func (pk *MovePlayer) Marshal(io protocol.IO) {
	io.Varuint64(&pk.EntityRuntimeID)
	io.Vec3(&pk.Position)
	io.Float32(&pk.Pitch)
	io.Float32(&pk.Yaw)
	io.Float32(&pk.HeadYaw)
	pk.Mode.Marshal(io)
	io.Bool(&pk.OnGround)
	io.Varuint64(&pk.RiddenEntityRuntimeID)
	pk.TeleportCause.Marshal(io)
	io.Int32(&pk.TeleportSourceEntityType)
	io.Varuint64(&pk.Tick)
}
