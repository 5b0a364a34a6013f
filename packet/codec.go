package packet

import (
	"bytes"
	"fmt"
	"reflect"

	"github.com/cooldogedev/bedrockwire/internal"
	"github.com/cooldogedev/bedrockwire/protocol"
)

// UnknownPacketIDError is returned when data holding a packet with an ID that is not registered
// is decoded.
type UnknownPacketIDError struct {
	// ID is the packet ID found in the header.
	ID uint32
	// Offset is the offset in the data at which the body of the packet starts.
	Offset int
}

// Error ...
func (e *UnknownPacketIDError) Error() string {
	return fmt.Sprintf("unknown packet ID %#x (body at offset %v)", e.ID, e.Offset)
}

// Encoder encodes packets along with their header.
type Encoder struct {
	// SenderSubClient and TargetSubClient are written to the header of every packet encoded.
	SenderSubClient byte
	TargetSubClient byte
}

// EncodeTo writes the header and body of pk to buf. It fails if a field of pk cannot be
// represented on the wire, such as a list longer than its length prefix allows, in which case
// buf may hold part of the packet.
func (e Encoder) EncodeTo(buf *bytes.Buffer, pk Packet) error {
	header := Header{PacketID: pk.ID(), SenderSubClient: e.SenderSubClient, TargetSubClient: e.TargetSubClient}
	if err := header.Write(buf); err != nil {
		return fmt.Errorf("write header of %T: %w", pk, err)
	}
	return encodeBody(pk, buf)
}

// Encode encodes pk and returns the bytes of its header and body. It panics if pk cannot be
// encoded. Use EncodeTo to handle that case as an error.
func (e Encoder) Encode(pk Packet) []byte {
	buf := internal.GetBuffer()
	defer internal.PutBuffer(buf)

	if err := e.EncodeTo(buf, pk); err != nil {
		panic(err)
	}
	return bytes.Clone(buf.Bytes())
}

// encodeBody writes the body of pk to buf. The writer aborts by panicking with an error, which
// is recovered and returned.
func encodeBody(pk Packet, buf *bytes.Buffer) (err error) {
	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(error)
			if !ok {
				panic(r)
			}
			err = fmt.Errorf("encode %v: %w", reflect.TypeOf(pk).Elem().Name(), e)
		}
	}()
	pk.Marshal(protocol.NewWriter(buf))
	return nil
}

// Encode encodes pk with both sub client IDs set to 0.
func Encode(pk Packet) []byte {
	return Encoder{}.Encode(pk)
}

// Decoder decodes packets from their header and body.
type Decoder struct {
	pool  Pool
	items protocol.ItemTable
}

// NewDecoder creates a Decoder that decodes the packets in pool. items is used to decode item
// stacks and may be nil, in which case decoding packets holding an item stack fails.
func NewDecoder(pool Pool, items protocol.ItemTable) *Decoder {
	return &Decoder{pool: pool, items: items}
}

// Decode decodes the header of data and the packet it holds.
func (d *Decoder) Decode(data []byte) (pk Packet, header Header, err error) {
	buf := bytes.NewBuffer(data)
	if err := header.Read(buf); err != nil {
		return nil, header, fmt.Errorf("read packet header: %w", err)
	}

	factory, ok := d.pool[header.PacketID]
	if !ok {
		return nil, header, &UnknownPacketIDError{ID: header.PacketID, Offset: len(data) - buf.Len()}
	}
	pk = factory()
	if err := d.decodeBody(pk, buf); err != nil {
		return nil, header, err
	}
	return pk, header, nil
}

// decodeBody decodes buf into pk. The reader aborts by panicking, so the panic is recovered here
// and returned as an error.
func (d *Decoder) decodeBody(pk Packet, buf *bytes.Buffer) (err error) {
	defer func() {
		if r := recover(); r != nil {
			name := reflect.TypeOf(pk).Elem().Name()
			if e, ok := r.(error); ok {
				err = fmt.Errorf("decode %v: %w", name, e)
				return
			}
			err = fmt.Errorf("decode %v: %v", name, r)
		}
	}()
	pk.Marshal(protocol.NewReader(buf, d.items))
	return nil
}

// defaultDecoder decodes all registered packets without an item table.
var defaultDecoder = NewDecoder(NewPool(), nil)

// Decode decodes data using all registered packets and no item table.
func Decode(data []byte) (Packet, Header, error) {
	return defaultDecoder.Decode(data)
}
