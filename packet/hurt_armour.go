package packet

import (
	"github.com/cooldogedev/bedrockwire/protocol"
)

// HurtArmour is sent by the server to damage the armour of a player.
type HurtArmour struct {
	// Cause is the cause of the damage dealt to the armour.
	Cause int32
	// Damage is the amount of damage points that was dealt to the player.
	Damage int32
}

// ID ...
func (*HurtArmour) ID() uint32 {
	return IDHurtArmour
}

// Marshal ...
func (pk *HurtArmour) Marshal(io protocol.IO) {
	io.Varint32(&pk.Cause)
	io.Varint32(&pk.Damage)
}
