package packet

import (
	"github.com/cooldogedev/bedrockwire/protocol"
)

// ActorEvent is sent by the server when a particular event happens that has to do with an
// entity. Some of these events are entity-specific, for example a wolf shaking itself dry.
type ActorEvent struct {
	// EntityRuntimeID is the runtime ID of the entity.
	EntityRuntimeID uint64
	// EventType is the type of event to be called.
	EventType protocol.ActorEventType
	// EventData is optional data associated with a particular event.
	EventData int32
}

// ID ...
func (*ActorEvent) ID() uint32 {
	return IDActorEvent
}

// Marshal ...
func (pk *ActorEvent) Marshal(io protocol.IO) {
	io.Varuint64(&pk.EntityRuntimeID)
	pk.EventType.Marshal(io)
	io.Varint32(&pk.EventData)
}
