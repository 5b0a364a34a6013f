package packet

import (
	"io"

	"github.com/sandertv/gophertunnel/minecraft/protocol"
)

const (
	packetIDMask         = 0x3ff
	subClientIDMask      = 0x03
	senderSubClientShift = 10
	targetSubClientShift = 12
)

// Header is the header of a packet. It exists out of a single varuint32 which is composed of a
// packet ID and a sender and target sub client ID. These IDs are used for split screen
// functionality.
type Header struct {
	PacketID        uint32
	SenderSubClient byte
	TargetSubClient byte
}

// Write writes the header as a single varuint32 to w. The fields are combined as they are, so
// IDs that do not fit their bits are the responsibility of the caller.
func (header *Header) Write(w io.ByteWriter) error {
	return protocol.WriteVaruint32(w, header.PacketID|uint32(header.SenderSubClient)<<senderSubClientShift|uint32(header.TargetSubClient)<<targetSubClientShift)
}

// Read reads a varuint32 from r and sets the corresponding values to the Header.
func (header *Header) Read(r io.ByteReader) error {
	var value uint32
	if err := protocol.Varuint32(r, &value); err != nil {
		return err
	}
	header.PacketID = value & packetIDMask
	header.SenderSubClient = byte((value >> senderSubClientShift) & subClientIDMask)
	header.TargetSubClient = byte((value >> targetSubClientShift) & subClientIDMask)
	return nil
}
