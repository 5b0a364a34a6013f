package packet

import (
	"github.com/cooldogedev/bedrockwire/protocol"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
	"github.com/sandertv/gophertunnel/minecraft/nbt"
)

// StartGame is sent by the server to send information about the world the player will be spawned
// in. It contains information about the position the player spawns in, and information about the
// world in general such as its game rules.
type StartGame struct {
	// EntityUniqueID is the unique ID of the player. The unique ID is a value that remains
	// consistent across different sessions of the same world.
	EntityUniqueID int64
	// EntityRuntimeID is the runtime ID of the player. The runtime ID is unique for each world
	// session, and entities are generally identified in packets using this runtime ID.
	EntityRuntimeID uint64
	// PlayerGameMode is the game mode the player currently has.
	PlayerGameMode protocol.GameType
	// PlayerPosition is the spawn position of the player in the world.
	PlayerPosition mgl32.Vec3
	Pitch          float32
	Yaw            float32
	// WorldSeed is the seed used to generate the world.
	WorldSeed             int64
	SpawnBiomeType        protocol.SpawnBiomeType
	UserDefinedBiomeName  string
	Dimension             int32
	Generator             int32
	WorldGameMode         protocol.GameType
	Difficulty            int32
	WorldSpawn            protocol.UBlockPos
	AchievementsDisabled  bool
	EditorWorldType       protocol.EditorWorldType
	CreatedInEditor       bool
	ExportedFromEditor    bool
	DayCycleLockTime      int32
	EducationEditionOffer int32
	// EducationFeaturesEnabled specifies if the world has education edition features enabled.
	EducationFeaturesEnabled       bool
	EducationProductID             string
	RainLevel                      float32
	LightningLevel                 float32
	ConfirmedPlatformLockedContent bool
	MultiPlayerGame                bool
	LANBroadcastEnabled            bool
	XBLBroadcastMode               protocol.GamePublishSetting
	PlatformBroadcastMode          protocol.GamePublishSetting
	CommandsEnabled                bool
	TexturePackRequired            bool
	GameRules                      []protocol.GameRule
	Experiments                    []protocol.ExperimentData
	ExperimentsPreviouslyToggled   bool
	BonusChestEnabled              bool
	StartWithMapEnabled            bool
	PlayerPermissions              protocol.PlayerPermission
	ServerChunkTickRadius          int32
	HasLockedBehaviourPack         bool
	HasLockedTexturePack           bool
	FromLockedWorldTemplate        bool
	MSAGamerTagsOnly               bool
	FromWorldTemplate              bool
	WorldTemplateSettingsLocked    bool
	OnlySpawnV1Villagers           bool
	PersonaDisabled                bool
	CustomSkinsDisabled            bool
	EmoteChatMuted                 bool
	BaseGameVersion                string
	LimitedWorldWidth              int32
	LimitedWorldDepth              int32
	NewNether                      bool
	EducationSharedResourceURI     protocol.EducationSharedResourceURI
	ForceExperimentalGameplay      bool
	ChatRestrictionLevel           protocol.ChatRestriction
	DisablePlayerInteractions      bool
	LevelID                        string
	WorldName                      string
	TemplateContentIdentity        string
	Trial                          bool
	PlayerMovementSettings         protocol.PlayerMoveSettings
	Time                           int64
	EnchantmentSeed                int32
	// Blocks is a list of all custom blocks registered on the server.
	Blocks []protocol.BlockEntry
	// Items is a list of all items with their legacy IDs which are available in the game. The
	// item table used to decode item stacks is built from it.
	Items                        []protocol.ItemEntry
	MultiPlayerCorrelationID     string
	ServerAuthoritativeInventory bool
	GameVersion                  string
	// PropertyData contains properties that should be applied on the player.
	PropertyData             map[string]any
	ServerBlockStateChecksum uint64
	WorldTemplateID          uuid.UUID
	ClientSideGeneration     bool
	UseBlockNetworkIDHashes  bool
	ServerAuthoritativeSound bool
}

// ID ...
func (*StartGame) ID() uint32 {
	return IDStartGame
}

// ItemTable returns an item table built from the items announced by the packet.
func (pk *StartGame) ItemTable() protocol.ItemTable {
	return protocol.NewItemTable(pk.Items)
}

// Marshal ...
func (pk *StartGame) Marshal(io protocol.IO) {
	io.Varint64(&pk.EntityUniqueID)
	io.Varuint64(&pk.EntityRuntimeID)
	pk.PlayerGameMode.Marshal(io)
	io.Vec3(&pk.PlayerPosition)
	io.Float32(&pk.Pitch)
	io.Float32(&pk.Yaw)
	io.Int64(&pk.WorldSeed)
	pk.SpawnBiomeType.Marshal(io)
	io.String(&pk.UserDefinedBiomeName)
	io.Varint32(&pk.Dimension)
	io.Varint32(&pk.Generator)
	pk.WorldGameMode.Marshal(io)
	io.Varint32(&pk.Difficulty)
	pk.WorldSpawn.Marshal(io)
	io.Bool(&pk.AchievementsDisabled)
	pk.EditorWorldType.Marshal(io)
	io.Bool(&pk.CreatedInEditor)
	io.Bool(&pk.ExportedFromEditor)
	io.Varint32(&pk.DayCycleLockTime)
	io.Varint32(&pk.EducationEditionOffer)
	io.Bool(&pk.EducationFeaturesEnabled)
	io.String(&pk.EducationProductID)
	io.Float32(&pk.RainLevel)
	io.Float32(&pk.LightningLevel)
	io.Bool(&pk.ConfirmedPlatformLockedContent)
	io.Bool(&pk.MultiPlayerGame)
	io.Bool(&pk.LANBroadcastEnabled)
	pk.XBLBroadcastMode.Marshal(io)
	pk.PlatformBroadcastMode.Marshal(io)
	io.Bool(&pk.CommandsEnabled)
	io.Bool(&pk.TexturePackRequired)
	protocol.Slice(io, &pk.GameRules)
	protocol.SliceUint32Length(io, &pk.Experiments)
	io.Bool(&pk.ExperimentsPreviouslyToggled)
	io.Bool(&pk.BonusChestEnabled)
	io.Bool(&pk.StartWithMapEnabled)
	pk.PlayerPermissions.Marshal(io)
	io.Int32(&pk.ServerChunkTickRadius)
	io.Bool(&pk.HasLockedBehaviourPack)
	io.Bool(&pk.HasLockedTexturePack)
	io.Bool(&pk.FromLockedWorldTemplate)
	io.Bool(&pk.MSAGamerTagsOnly)
	io.Bool(&pk.FromWorldTemplate)
	io.Bool(&pk.WorldTemplateSettingsLocked)
	io.Bool(&pk.OnlySpawnV1Villagers)
	io.Bool(&pk.PersonaDisabled)
	io.Bool(&pk.CustomSkinsDisabled)
	io.Bool(&pk.EmoteChatMuted)
	io.String(&pk.BaseGameVersion)
	io.Int32(&pk.LimitedWorldWidth)
	io.Int32(&pk.LimitedWorldDepth)
	io.Bool(&pk.NewNether)
	pk.EducationSharedResourceURI.Marshal(io)
	io.Bool(&pk.ForceExperimentalGameplay)
	pk.ChatRestrictionLevel.Marshal(io)
	io.Bool(&pk.DisablePlayerInteractions)
	io.String(&pk.LevelID)
	io.String(&pk.WorldName)
	io.String(&pk.TemplateContentIdentity)
	io.Bool(&pk.Trial)
	pk.PlayerMovementSettings.Marshal(io)
	io.Int64(&pk.Time)
	io.Varint32(&pk.EnchantmentSeed)
	protocol.Slice(io, &pk.Blocks)
	protocol.Slice(io, &pk.Items)
	io.String(&pk.MultiPlayerCorrelationID)
	io.Bool(&pk.ServerAuthoritativeInventory)
	io.String(&pk.GameVersion)
	io.NBT(&pk.PropertyData, nbt.NetworkLittleEndian)
	io.Uint64(&pk.ServerBlockStateChecksum)
	io.UUID(&pk.WorldTemplateID)
	io.Bool(&pk.ClientSideGeneration)
	io.Bool(&pk.UseBlockNetworkIDHashes)
	io.Bool(&pk.ServerAuthoritativeSound)
}
