package protocol

// PlayStatusType is the status sent to a client in a PlayStatus packet.
type PlayStatusType int32

const (
	PlayStatusLoginSuccess PlayStatusType = iota
	PlayStatusLoginFailedClient
	PlayStatusLoginFailedServer
	PlayStatusPlayerSpawn
	PlayStatusLoginFailedInvalidTenant
	PlayStatusLoginFailedVanillaEdu
	PlayStatusLoginFailedEduVanilla
	PlayStatusLoginFailedServerFull
	PlayStatusLoginFailedEditorVanilla
	PlayStatusLoginFailedVanillaEditor
	PlayStatusInvalid
)

// PlayStatusTypes ...
var PlayStatusTypes = NewEnumSet("PlayStatusType", PlayStatusInvalid, map[PlayStatusType]string{
	PlayStatusLoginSuccess:             "LoginSuccess",
	PlayStatusLoginFailedClient:        "LoginFailedClient",
	PlayStatusLoginFailedServer:        "LoginFailedServer",
	PlayStatusPlayerSpawn:              "PlayerSpawn",
	PlayStatusLoginFailedInvalidTenant: "LoginFailedInvalidTenant",
	PlayStatusLoginFailedVanillaEdu:    "LoginFailedVanillaEdu",
	PlayStatusLoginFailedEduVanilla:    "LoginFailedEduVanilla",
	PlayStatusLoginFailedServerFull:    "LoginFailedServerFull",
	PlayStatusLoginFailedEditorVanilla: "LoginFailedEditorVanilla",
	PlayStatusLoginFailedVanillaEditor: "LoginFailedVanillaEditor",
	PlayStatusInvalid:                  "Invalid",
})

// Marshal ...
func (x *PlayStatusType) Marshal(io IO) { BEInt32Enum(io, x, PlayStatusTypes) }

// String ...
func (x PlayStatusType) String() string { return PlayStatusTypes.Name(x) }

// TextType is the kind of message carried by a Text packet. It decides which of the optional
// fields of the packet are present.
type TextType uint8

const (
	TextTypeRaw TextType = iota
	TextTypeChat
	TextTypeTranslation
	TextTypePopup
	TextTypeJukeboxPopup
	TextTypeTip
	TextTypeSystem
	TextTypeWhisper
	TextTypeAnnouncement
	TextTypeObjectWhisper
	TextTypeObject
	TextTypeObjectAnnouncement
	TextTypeInvalid
)

// TextTypes ...
var TextTypes = NewEnumSet("TextType", TextTypeInvalid, map[TextType]string{
	TextTypeRaw:                "Raw",
	TextTypeChat:               "Chat",
	TextTypeTranslation:        "Translation",
	TextTypePopup:              "Popup",
	TextTypeJukeboxPopup:       "JukeboxPopup",
	TextTypeTip:                "Tip",
	TextTypeSystem:             "System",
	TextTypeWhisper:            "Whisper",
	TextTypeAnnouncement:       "Announcement",
	TextTypeObjectWhisper:      "ObjectWhisper",
	TextTypeObject:             "Object",
	TextTypeObjectAnnouncement: "ObjectAnnouncement",
	TextTypeInvalid:            "Invalid",
})

// Marshal ...
func (x *TextType) Marshal(io IO) { Uint8Enum(io, x, TextTypes) }

// String ...
func (x TextType) String() string { return TextTypes.Name(x) }

// InteractAction is the action a client performs on an entity in an Interact packet.
type InteractAction uint8

const (
	InteractActionLeaveVehicle InteractAction = iota + 3
	InteractActionMouseOverEntity
	InteractActionNPCOpen
	InteractActionOpenInventory
	InteractActionInvalid
)

// InteractActions ...
var InteractActions = NewEnumSet("InteractAction", InteractActionInvalid, map[InteractAction]string{
	InteractActionLeaveVehicle:    "LeaveVehicle",
	InteractActionMouseOverEntity: "MouseOverEntity",
	InteractActionNPCOpen:         "NPCOpen",
	InteractActionOpenInventory:   "OpenInventory",
	InteractActionInvalid:         "Invalid",
})

// Marshal ...
func (x *InteractAction) Marshal(io IO) { Uint8Enum(io, x, InteractActions) }

// String ...
func (x InteractAction) String() string { return InteractActions.Name(x) }
