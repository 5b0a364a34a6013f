package packet

import (
	"github.com/cooldogedev/bedrockwire/protocol"
)

// Text is sent by the client to the server to send chat messages, and by the server to the client
// to forward or send messages, which may be chat, popups, tips etc.
type Text struct {
	// TextType is the type of the text sent. It decides which of the optional fields below are
	// present.
	TextType protocol.TextType
	// NeedsTranslation specifies if any of the messages need to be translated.
	NeedsTranslation bool
	// SourceName is the name of the source of the message. It is only present for chat, whisper
	// and announcement texts.
	SourceName string
	// Message is the message of the packet. It is absent for text types that are not known.
	Message string
	// Parameters is a list of parameters that should be filled into the message. It is only
	// present for translation, popup and jukebox popup texts.
	Parameters []string
	// XUID is the XBOX Live user ID of the player that sent the message.
	XUID string
	// PlatformChatID is an identifier only set for particular platforms when chatting.
	PlatformChatID string
}

// ID ...
func (*Text) ID() uint32 {
	return IDText
}

// Marshal ...
func (pk *Text) Marshal(io protocol.IO) {
	pk.TextType.Marshal(io)
	io.Bool(&pk.NeedsTranslation)

	source, message, parameters := textLayout(pk.TextType)
	if source {
		io.String(&pk.SourceName)
	}
	if message {
		io.String(&pk.Message)
	}
	if parameters {
		protocol.FuncSlice(io, &pk.Parameters, io.String)
	}
	io.String(&pk.XUID)
	io.String(&pk.PlatformChatID)
}

// textLayout returns which of the optional fields of a Text packet are present for t.
func textLayout(t protocol.TextType) (source, message, parameters bool) {
	switch t {
	case protocol.TextTypeChat, protocol.TextTypeWhisper, protocol.TextTypeAnnouncement:
		return true, true, false
	case protocol.TextTypeRaw, protocol.TextTypeTip, protocol.TextTypeSystem, protocol.TextTypeObject, protocol.TextTypeObjectWhisper, protocol.TextTypeObjectAnnouncement:
		return false, true, false
	case protocol.TextTypeTranslation, protocol.TextTypePopup, protocol.TextTypeJukeboxPopup:
		return false, true, true
	}
	return false, false, false
}
