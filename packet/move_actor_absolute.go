package packet

import (
	"github.com/cooldogedev/bedrockwire/protocol"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	MoveActorAbsoluteFlagGround = 1 << iota
	MoveActorAbsoluteFlagTeleport
	MoveActorAbsoluteFlagForceMovement
)

// MoveActorAbsolute is sent by the server to move an entity to an absolute position. It is
// typically used for movements where high accuracy is not needed, such as for long range
// teleporting.
type MoveActorAbsolute struct {
	// EntityRuntimeID is the runtime ID of the entity.
	EntityRuntimeID uint64
	// Flags is a combination of the MoveActorAbsoluteFlag constants.
	Flags    byte
	Position mgl32.Vec3
	// Rotation is the rotation of the entity. It is packed into a byte per axis, so it loses
	// precision when encoded.
	Rotation protocol.Rotation
}

// ID ...
func (*MoveActorAbsolute) ID() uint32 {
	return IDMoveActorAbsolute
}

// Marshal ...
func (pk *MoveActorAbsolute) Marshal(io protocol.IO) {
	io.Varuint64(&pk.EntityRuntimeID)
	io.Uint8(&pk.Flags)
	io.Vec3(&pk.Position)
	pk.Rotation.Marshal(io)
}
