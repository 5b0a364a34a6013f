package packet

import (
	"github.com/cooldogedev/bedrockwire/protocol"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

// AddPlayer is sent by the server to the client to make a player entity show up client-side. It
// is one of the few entities that cannot be sent using the AddActor packet.
type AddPlayer struct {
	// UUID is the UUID of the player. It is the same UUID that the client sent in the Login
	// packet at the start of the session.
	UUID uuid.UUID
	// Username is the name of the player. This username is the username that will be set as the
	// initial name tag of the player.
	Username string
	// EntityRuntimeID is the runtime ID of the player.
	EntityRuntimeID uint64
	// PlatformChatID is an identifier only set for particular platforms when chatting.
	PlatformChatID string
	Position       mgl32.Vec3
	Velocity       mgl32.Vec3
	Pitch          float32
	Yaw            float32
	HeadYaw        float32
	// HeldItem is the item that the player is holding. Decoding it requires an item table.
	HeldItem protocol.ItemInstance
	// GameType is the game type of the player.
	GameType protocol.GameType
	// DeviceID is the device ID set in one of the files found in the storage of the device of
	// the player.
	DeviceID      string
	BuildPlatform int32
}

// ID ...
func (*AddPlayer) ID() uint32 {
	return IDAddPlayer
}

// Marshal ...
func (pk *AddPlayer) Marshal(io protocol.IO) {
	io.UUID(&pk.UUID)
	io.String(&pk.Username)
	io.Varuint64(&pk.EntityRuntimeID)
	io.String(&pk.PlatformChatID)
	io.Vec3(&pk.Position)
	io.Vec3(&pk.Velocity)
	io.Float32(&pk.Pitch)
	io.Float32(&pk.Yaw)
	io.Float32(&pk.HeadYaw)
	pk.HeldItem.Marshal(io)
	pk.GameType.Marshal(io)
	io.String(&pk.DeviceID)
	io.Int32(&pk.BuildPlatform)
}
