package packet

import (
	"github.com/cooldogedev/bedrockwire/protocol"
	"github.com/go-gl/mathgl/mgl32"
)

// AddPainting is sent by the server to the client to make a painting entity show up.
type AddPainting struct {
	EntityUniqueID  int64
	EntityRuntimeID uint64
	Position        mgl32.Vec3
	// Direction is the facing direction of the painting.
	Direction int32
	// Title is the title of the painting, which decides the motive shown.
	Title string
}

// ID ...
func (*AddPainting) ID() uint32 {
	return IDAddPainting
}

// Marshal ...
func (pk *AddPainting) Marshal(io protocol.IO) {
	io.Varint64(&pk.EntityUniqueID)
	io.Varuint64(&pk.EntityRuntimeID)
	io.Vec3(&pk.Position)
	io.Varint32(&pk.Direction)
	io.String(&pk.Title)
}
