package packet

import (
	"github.com/cooldogedev/bedrockwire/protocol"
)

// UpdateAttributes is sent by the server to update an amount of attributes of any entity in the
// world. These attributes include ones such as the health or the movement speed of the entity.
type UpdateAttributes struct {
	// EntityRuntimeID is the runtime ID of the entity.
	EntityRuntimeID uint64
	// Attributes is a slice of new attributes that the entity gets.
	Attributes []protocol.Attribute
	// Tick is the server tick at which the packet was sent.
	Tick uint64
}

// ID ...
func (*UpdateAttributes) ID() uint32 {
	return IDUpdateAttributes
}

// Marshal ...
func (pk *UpdateAttributes) Marshal(io protocol.IO) {
	io.Varuint64(&pk.EntityRuntimeID)
	protocol.Slice(io, &pk.Attributes)
	io.Varuint64(&pk.Tick)
}
