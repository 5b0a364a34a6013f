package packet

import (
	"github.com/cooldogedev/bedrockwire/protocol"
	"github.com/go-gl/mathgl/mgl32"
)

// BlockPickRequest is sent by the client when it requests to pick a block in the world and place
// its item in their inventory.
type BlockPickRequest struct {
	Position mgl32.Vec3
	// AddBlockNBT specifies if the item should get all NBT tags from the block, meaning the item
	// places a block practically always equal to the one picked.
	AddBlockNBT bool
	// HotBarSlot is the hot bar slot that was held when the block was picked.
	HotBarSlot byte
}

// ID ...
func (*BlockPickRequest) ID() uint32 {
	return IDBlockPickRequest
}

// Marshal ...
func (pk *BlockPickRequest) Marshal(io protocol.IO) {
	io.Vec3(&pk.Position)
	io.Bool(&pk.AddBlockNBT)
	io.Uint8(&pk.HotBarSlot)
}

// ActorPickRequest is sent by the client when it tries to pick an entity, so that it gets a spawn
// egg which can spawn that entity.
type ActorPickRequest struct {
	EntityUniqueID int64
	HotBarSlot     byte
	// WithData is true if the pick request requests the entity metadata.
	WithData bool
}

// ID ...
func (*ActorPickRequest) ID() uint32 {
	return IDActorPickRequest
}

// Marshal ...
func (pk *ActorPickRequest) Marshal(io protocol.IO) {
	io.Int64(&pk.EntityUniqueID)
	io.Uint8(&pk.HotBarSlot)
	io.Bool(&pk.WithData)
}
