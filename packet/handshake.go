package packet

import (
	"github.com/cooldogedev/bedrockwire/protocol"
)

// ServerToClientHandshake is sent by the server to the client to complete the key exchange in
// order to initialise encryption on both sides.
type ServerToClientHandshake struct {
	// JWT is a raw JWT token containing the salt the client uses to compute the shared secret.
	JWT []byte
}

// ID ...
func (*ServerToClientHandshake) ID() uint32 {
	return IDServerToClientHandshake
}

// Marshal ...
func (pk *ServerToClientHandshake) Marshal(io protocol.IO) {
	io.ByteSlice(&pk.JWT)
}

// ClientToServerHandshake is sent by the client in response to a ServerToClientHandshake packet.
// It has no fields.
type ClientToServerHandshake struct{}

// ID ...
func (*ClientToServerHandshake) ID() uint32 {
	return IDClientToServerHandshake
}

// Marshal ...
func (*ClientToServerHandshake) Marshal(protocol.IO) {}
