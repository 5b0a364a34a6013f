package packet

import (
	"github.com/cooldogedev/bedrockwire/protocol"
)

// TakeItemActor is sent by the server when a player picks up an item entity. It makes the item
// entity disappear to viewers and shows the pick-up animation.
type TakeItemActor struct {
	// ItemEntityRuntimeID is the entity runtime ID of the item that is being taken by another
	// entity.
	ItemEntityRuntimeID uint64
	// TakerEntityRuntimeID is the runtime ID of the entity that took the item.
	TakerEntityRuntimeID uint64
}

// ID ...
func (*TakeItemActor) ID() uint32 {
	return IDTakeItemActor
}

// Marshal ...
func (pk *TakeItemActor) Marshal(io protocol.IO) {
	io.Varuint64(&pk.ItemEntityRuntimeID)
	io.Varuint64(&pk.TakerEntityRuntimeID)
}
