package packet

import (
	"github.com/cooldogedev/bedrockwire/protocol"
)

// MobEffect is sent by the server to apply an effect to the player, for example an effect like
// poison. It may also be used to modify existing effects, or removing them completely.
type MobEffect struct {
	// EntityRuntimeID is the runtime ID of the entity.
	EntityRuntimeID uint64
	// Operation is the operation of the packet.
	Operation protocol.MobEffectOperation
	// EffectType is the ID of the effect to be added, removed or modified.
	EffectType protocol.MobEffectType
	// Amplifier is the amplifier of the effect. Take note that the amplifier is not the same as
	// the effect's level. The level is usually one higher than the amplifier.
	Amplifier int32
	// Particles specifies if viewers of the entity that gets the effect shows particles around
	// it.
	Particles bool
	// Duration is the duration of the effect in seconds.
	Duration int32
}

// ID ...
func (*MobEffect) ID() uint32 {
	return IDMobEffect
}

// Marshal ...
func (pk *MobEffect) Marshal(io protocol.IO) {
	io.Varuint64(&pk.EntityRuntimeID)
	pk.Operation.Marshal(io)
	pk.EffectType.Marshal(io)
	io.Varint32(&pk.Amplifier)
	io.Bool(&pk.Particles)
	io.Varint32(&pk.Duration)
}
