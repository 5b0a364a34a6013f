package protocol

import (
	"github.com/sandertv/gophertunnel/minecraft/nbt"
)

// GameType is the game mode of a player or a world.
type GameType int32

const (
	GameTypeSurvival GameType = iota
	GameTypeCreative
	GameTypeAdventure
	GameTypeSurvivalSpectator
	GameTypeCreativeSpectator
	GameTypeFallback
)

// GameTypes ...
var GameTypes = NewEnumSet("GameType", GameTypeFallback, map[GameType]string{
	GameTypeSurvival:          "Survival",
	GameTypeCreative:          "Creative",
	GameTypeAdventure:         "Adventure",
	GameTypeSurvivalSpectator: "SurvivalSpectator",
	GameTypeCreativeSpectator: "CreativeSpectator",
	GameTypeFallback:          "Fallback",
})

// Marshal ...
func (x *GameType) Marshal(io IO) { Varint32Enum(io, x, GameTypes) }

// String ...
func (x GameType) String() string { return GameTypes.Name(x) }

// SpawnBiomeType specifies if the spawn biome of a world is the default one or one defined by
// the world itself.
type SpawnBiomeType int16

const (
	SpawnBiomeTypeDefault SpawnBiomeType = iota
	SpawnBiomeTypeUserDefined
)

// SpawnBiomeTypes ...
var SpawnBiomeTypes = NewEnumSet("SpawnBiomeType", SpawnBiomeTypeDefault, map[SpawnBiomeType]string{
	SpawnBiomeTypeDefault:     "Default",
	SpawnBiomeTypeUserDefined: "UserDefined",
})

// Marshal ...
func (x *SpawnBiomeType) Marshal(io IO) { Int16Enum(io, x, SpawnBiomeTypes) }

// String ...
func (x SpawnBiomeType) String() string { return SpawnBiomeTypes.Name(x) }

// EditorWorldType ...
type EditorWorldType int32

const (
	EditorWorldTypeNotEditor EditorWorldType = iota
	EditorWorldTypeProject
	EditorWorldTypeTestLevel
	EditorWorldTypeInvalid
)

// EditorWorldTypes ...
var EditorWorldTypes = NewEnumSet("EditorWorldType", EditorWorldTypeInvalid, map[EditorWorldType]string{
	EditorWorldTypeNotEditor: "NotEditor",
	EditorWorldTypeProject:   "Project",
	EditorWorldTypeTestLevel: "TestLevel",
	EditorWorldTypeInvalid:   "Invalid",
})

// Marshal ...
func (x *EditorWorldType) Marshal(io IO) { Varint32Enum(io, x, EditorWorldTypes) }

// String ...
func (x EditorWorldType) String() string { return EditorWorldTypes.Name(x) }

// GamePublishSetting is the broadcast mode of a world over Xbox Live or the platform network.
type GamePublishSetting int32

const (
	GamePublishSettingNoMultiplayer GamePublishSetting = iota
	GamePublishSettingInviteOnly
	GamePublishSettingFriendsOnly
	GamePublishSettingFriendsOfFriends
	GamePublishSettingPublic
	GamePublishSettingInvalid
)

// GamePublishSettings ...
var GamePublishSettings = NewEnumSet("GamePublishSetting", GamePublishSettingInvalid, map[GamePublishSetting]string{
	GamePublishSettingNoMultiplayer:    "NoMultiplayer",
	GamePublishSettingInviteOnly:       "InviteOnly",
	GamePublishSettingFriendsOnly:      "FriendsOnly",
	GamePublishSettingFriendsOfFriends: "FriendsOfFriends",
	GamePublishSettingPublic:           "Public",
	GamePublishSettingInvalid:          "Invalid",
})

// Marshal ...
func (x *GamePublishSetting) Marshal(io IO) { Varint32Enum(io, x, GamePublishSettings) }

// String ...
func (x GamePublishSetting) String() string { return GamePublishSettings.Name(x) }

// PlayerPermission ...
type PlayerPermission int32

const (
	PlayerPermissionVisitor PlayerPermission = iota
	PlayerPermissionMember
	PlayerPermissionOperator
	PlayerPermissionCustom
	PlayerPermissionInvalid
)

// PlayerPermissions ...
var PlayerPermissions = NewEnumSet("PlayerPermission", PlayerPermissionInvalid, map[PlayerPermission]string{
	PlayerPermissionVisitor:  "Visitor",
	PlayerPermissionMember:   "Member",
	PlayerPermissionOperator: "Operator",
	PlayerPermissionCustom:   "Custom",
	PlayerPermissionInvalid:  "Invalid",
})

// Marshal ...
func (x *PlayerPermission) Marshal(io IO) { Varint32Enum(io, x, PlayerPermissions) }

// String ...
func (x PlayerPermission) String() string { return PlayerPermissions.Name(x) }

// ChatRestriction is the level of restriction applied to the chat of a world.
type ChatRestriction uint8

const (
	ChatRestrictionNone ChatRestriction = iota
	ChatRestrictionDropped
	ChatRestrictionDisabled
	ChatRestrictionInvalid
)

// ChatRestrictions ...
var ChatRestrictions = NewEnumSet("ChatRestriction", ChatRestrictionInvalid, map[ChatRestriction]string{
	ChatRestrictionNone:     "None",
	ChatRestrictionDropped:  "Dropped",
	ChatRestrictionDisabled: "Disabled",
	ChatRestrictionInvalid:  "Invalid",
})

// Marshal ...
func (x *ChatRestriction) Marshal(io IO) { Uint8Enum(io, x, ChatRestrictions) }

// String ...
func (x ChatRestriction) String() string { return ChatRestrictions.Name(x) }

// ExperimentData holds the name of an experiment and whether it is enabled.
type ExperimentData struct {
	Name    string
	Enabled bool
}

// Marshal ...
func (x *ExperimentData) Marshal(io IO) {
	io.String(&x.Name)
	io.Bool(&x.Enabled)
}

// GameRuleType is the type of the value held by a game rule.
type GameRuleType uint32

const (
	GameRuleTypeBool GameRuleType = iota
	GameRuleTypeInt
	GameRuleTypeFloat
	GameRuleTypeInvalid
)

// GameRuleTypes ...
var GameRuleTypes = NewEnumSet("GameRuleType", GameRuleTypeInvalid, map[GameRuleType]string{
	GameRuleTypeBool:    "Bool",
	GameRuleTypeInt:     "Int",
	GameRuleTypeFloat:   "Float",
	GameRuleTypeInvalid: "Invalid",
})

// String ...
func (x GameRuleType) String() string { return GameRuleTypes.Name(x) }

// GameRule is a rule of a world. Value is a bool, a uint32 or a float32. A rule decoded with a
// type that is not known holds a nil Value.
type GameRule struct {
	Name          string
	CanBeModified bool
	Value         any
}

// Type returns the type of the value held by the rule.
func (x *GameRule) Type() GameRuleType {
	switch x.Value.(type) {
	case bool:
		return GameRuleTypeBool
	case uint32:
		return GameRuleTypeInt
	case float32:
		return GameRuleTypeFloat
	}
	return GameRuleTypeInvalid
}

// Marshal ...
func (x *GameRule) Marshal(io IO) {
	io.String(&x.Name)
	io.Bool(&x.CanBeModified)

	t := x.Type()
	Varuint32Enum(io, &t, GameRuleTypes)
	switch t {
	case GameRuleTypeBool:
		v, _ := x.Value.(bool)
		io.Bool(&v)
		x.Value = v
	case GameRuleTypeInt:
		v, _ := x.Value.(uint32)
		io.Uint32(&v)
		x.Value = v
	case GameRuleTypeFloat:
		v, _ := x.Value.(float32)
		io.Float32(&v)
		x.Value = v
	default:
		if decoding(io) {
			x.Value = nil
		}
	}
}

// MovementType is the authority the server has over the movement of players.
type MovementType int32

const (
	MovementTypeClient MovementType = iota
	MovementTypeServer
	MovementTypeServerWithRewind
	MovementTypeInvalid
)

// MovementTypes ...
var MovementTypes = NewEnumSet("MovementType", MovementTypeInvalid, map[MovementType]string{
	MovementTypeClient:           "Client",
	MovementTypeServer:           "Server",
	MovementTypeServerWithRewind: "ServerWithRewind",
	MovementTypeInvalid:          "Invalid",
})

// Marshal ...
func (x *MovementType) Marshal(io IO) { Varint32Enum(io, x, MovementTypes) }

// String ...
func (x MovementType) String() string { return MovementTypes.Name(x) }

// PlayerMoveSettings ...
type PlayerMoveSettings struct {
	MovementType                     MovementType
	RewindHistorySize                int32
	ServerAuthoritativeBlockBreaking bool
}

// Marshal ...
func (x *PlayerMoveSettings) Marshal(io IO) {
	x.MovementType.Marshal(io)
	io.Varint32(&x.RewindHistorySize)
	io.Bool(&x.ServerAuthoritativeBlockBreaking)
}

// BlockEntry is a custom block sent to the client in the StartGame packet.
type BlockEntry struct {
	Name       string
	Properties map[string]any
}

// Marshal ...
func (x *BlockEntry) Marshal(io IO) {
	io.String(&x.Name)
	io.NBT(&x.Properties, nbt.NetworkLittleEndian)
}

// EducationSharedResourceURI ...
type EducationSharedResourceURI struct {
	ButtonName string
	LinkURI    string
}

// Marshal ...
func (x *EducationSharedResourceURI) Marshal(io IO) {
	io.String(&x.ButtonName)
	io.String(&x.LinkURI)
}

// EducationExternalLinkSettings ...
type EducationExternalLinkSettings struct {
	URL         string
	DisplayName string
}

// Marshal ...
func (x *EducationExternalLinkSettings) Marshal(io IO) {
	io.String(&x.URL)
	io.String(&x.DisplayName)
}
