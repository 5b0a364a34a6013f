package packet

import (
	"github.com/cooldogedev/bedrockwire/protocol"
)

// ResourcePacksInfo is sent by the server to inform the client on what resource packs the server
// has. It sends a list of the resource packs it has and basic information on them like the
// version and description.
type ResourcePacksInfo struct {
	// TexturePackRequired specifies if the client must accept the texture packs the server has in
	// order to join the server.
	TexturePackRequired bool
	// HasScripts specifies if any of the resource packs contain scripts in them.
	HasScripts bool
	// ForcingServerPacks specifies if the client is forced to use the packs of the server.
	ForcingServerPacks bool
	BehaviourPacks     []protocol.BehaviourPackInfo
	TexturePacks       []protocol.TexturePackInfo
	// PackURLs is a list of CDN URLs the client may download the packs from.
	PackURLs []protocol.PackURL
}

// ID ...
func (*ResourcePacksInfo) ID() uint32 {
	return IDResourcePacksInfo
}

// Marshal ...
func (pk *ResourcePacksInfo) Marshal(io protocol.IO) {
	io.Bool(&pk.TexturePackRequired)
	io.Bool(&pk.HasScripts)
	io.Bool(&pk.ForcingServerPacks)
	protocol.SliceUint16Length(io, &pk.BehaviourPacks)
	protocol.SliceUint16Length(io, &pk.TexturePacks)
	protocol.Slice(io, &pk.PackURLs)
}

// ResourcePackStack is sent by the server to send the order in which resource packs and behaviour
// packs should be applied (and downloaded) by the client.
type ResourcePackStack struct {
	TexturePackRequired bool
	BehaviourPacks      []protocol.StackResourcePack
	TexturePacks        []protocol.StackResourcePack
	// BaseGameVersion is the vanilla version that the client should set its resource pack stack
	// to.
	BaseGameVersion string
	// Experiments holds a list of experiments that are either enabled or disabled in the world
	// that the player spawns in.
	Experiments                  []protocol.ExperimentData
	ExperimentsPreviouslyToggled bool
}

// ID ...
func (*ResourcePackStack) ID() uint32 {
	return IDResourcePackStack
}

// Marshal ...
func (pk *ResourcePackStack) Marshal(io protocol.IO) {
	io.Bool(&pk.TexturePackRequired)
	protocol.Slice(io, &pk.BehaviourPacks)
	protocol.Slice(io, &pk.TexturePacks)
	io.String(&pk.BaseGameVersion)
	protocol.SliceUint32Length(io, &pk.Experiments)
	io.Bool(&pk.ExperimentsPreviouslyToggled)
}

// ResourcePackClientResponse is sent by the client in response to resource packets sent by the
// server. It is used to let the server know what action needs to be taken for the client to have
// all resource packs ready and set.
type ResourcePackClientResponse struct {
	// Response is the response type of the response.
	Response protocol.ResourcePackResponse
	// PacksToDownload is a list of resource pack UUIDs combined with their version that need to
	// be downloaded, if Response is PackResponseSendPacks.
	PacksToDownload []string
}

// ID ...
func (*ResourcePackClientResponse) ID() uint32 {
	return IDResourcePackClientResponse
}

// Marshal ...
func (pk *ResourcePackClientResponse) Marshal(io protocol.IO) {
	pk.Response.Marshal(io)
	protocol.FuncSliceOfLen(io, &pk.PacksToDownload, protocol.Uint16Length, io.String)
}
