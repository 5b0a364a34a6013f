package protocol

// ResourcePackResponse is the response of a client to the resource packs offered by a server.
type ResourcePackResponse uint8

const (
	PackResponseRefused ResourcePackResponse = iota + 1
	PackResponseSendPacks
	PackResponseAllPacksDownloaded
	PackResponseCompleted
	PackResponseInvalid
)

// ResourcePackResponses ...
var ResourcePackResponses = NewEnumSet("ResourcePackResponse", PackResponseInvalid, map[ResourcePackResponse]string{
	PackResponseRefused:            "Refused",
	PackResponseSendPacks:          "SendPacks",
	PackResponseAllPacksDownloaded: "AllPacksDownloaded",
	PackResponseCompleted:          "Completed",
	PackResponseInvalid:            "Invalid",
})

// Marshal ...
func (x *ResourcePackResponse) Marshal(io IO) { Uint8Enum(io, x, ResourcePackResponses) }

// String ...
func (x ResourcePackResponse) String() string { return ResourcePackResponses.Name(x) }

// BehaviourPackInfo describes a behaviour pack offered to a client.
type BehaviourPackInfo struct {
	UUID            string
	Version         string
	Size            uint64
	ContentKey      string
	SubPackName     string
	ContentIdentity string
	HasScripts      bool
}

// Marshal ...
func (x *BehaviourPackInfo) Marshal(io IO) {
	io.String(&x.UUID)
	io.String(&x.Version)
	io.Uint64(&x.Size)
	io.String(&x.ContentKey)
	io.String(&x.SubPackName)
	io.String(&x.ContentIdentity)
	io.Bool(&x.HasScripts)
}

// TexturePackInfo describes a texture pack offered to a client.
type TexturePackInfo struct {
	UUID            string
	Version         string
	Size            uint64
	ContentKey      string
	SubPackName     string
	ContentIdentity string
	HasScripts      bool
	RTXEnabled      bool
}

// Marshal ...
func (x *TexturePackInfo) Marshal(io IO) {
	io.String(&x.UUID)
	io.String(&x.Version)
	io.Uint64(&x.Size)
	io.String(&x.ContentKey)
	io.String(&x.SubPackName)
	io.String(&x.ContentIdentity)
	io.Bool(&x.HasScripts)
	io.Bool(&x.RTXEnabled)
}

// StackResourcePack is an entry of the resource pack stack applied by a client.
type StackResourcePack struct {
	UUID        string
	Version     string
	SubPackName string
}

// Marshal ...
func (x *StackResourcePack) Marshal(io IO) {
	io.String(&x.UUID)
	io.String(&x.Version)
	io.String(&x.SubPackName)
}

// PackURL points a client to a CDN it may download a pack from.
type PackURL struct {
	UUIDVersion string
	URL         string
}

// Marshal ...
func (x *PackURL) Marshal(io IO) {
	io.String(&x.UUIDVersion)
	io.String(&x.URL)
}
