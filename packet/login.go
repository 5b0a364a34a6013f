package packet

import (
	"github.com/cooldogedev/bedrockwire/protocol"
)

// Login is sent when the client initially tries to join the server. It is the first packet sent
// after the network settings are agreed on, and holds the chain of the client and its client data.
type Login struct {
	// ClientProtocol is the protocol version of the player.
	ClientProtocol int32
	// ConnectionRequest is a string containing information about the player and JWTs that may be
	// used to verify if the player is connected to XBOX Live.
	ConnectionRequest []byte
}

// ID ...
func (*Login) ID() uint32 {
	return IDLogin
}

// Marshal ...
func (pk *Login) Marshal(io protocol.IO) {
	io.BEInt32(&pk.ClientProtocol)
	io.ByteSlice(&pk.ConnectionRequest)
}
