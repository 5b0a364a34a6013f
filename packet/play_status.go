package packet

import (
	"github.com/cooldogedev/bedrockwire/protocol"
)

// PlayStatus is sent by the server to update a player on the play status. This includes failed
// statuses due to a mismatched version, but also success statuses.
type PlayStatus struct {
	// Status is the status of the packet. It is one of the PlayStatus constants in the protocol
	// package.
	Status protocol.PlayStatusType
}

// ID ...
func (*PlayStatus) ID() uint32 {
	return IDPlayStatus
}

// Marshal ...
func (pk *PlayStatus) Marshal(io protocol.IO) {
	pk.Status.Marshal(io)
}
