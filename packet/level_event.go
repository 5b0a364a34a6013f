package packet

import (
	"github.com/cooldogedev/bedrockwire/protocol"
	"github.com/go-gl/mathgl/mgl32"
)

// LevelEvent is sent by the server to make a certain event in the level occur. It ranges from
// particles, to sounds, and other events such as starting rain and block breaking.
type LevelEvent struct {
	// EventType is the event that is being 'called'.
	EventType protocol.LevelEventType
	// Position is the position of the level event. Practically every event requires this field
	// to be filled out, as most events happen at a specific location.
	Position mgl32.Vec3
	// EventData is an integer holding additional data of the event. The type of data held
	// depends on the EventType.
	EventData int32
}

// ID ...
func (*LevelEvent) ID() uint32 {
	return IDLevelEvent
}

// Marshal ...
func (pk *LevelEvent) Marshal(io protocol.IO) {
	pk.EventType.Marshal(io)
	io.Vec3(&pk.Position)
	io.Varint32(&pk.EventData)
}
