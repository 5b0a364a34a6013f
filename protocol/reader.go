package protocol

import (
	"io"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
	"github.com/sandertv/gophertunnel/minecraft/nbt"
	"github.com/sandertv/gophertunnel/minecraft/protocol"
)

// Reader implements reading wire values from an underlying byte source. Like gophertunnel's
// reader, which it delegates primitive decoding to, a Reader panics with an error when the
// source runs out or holds invalid data. Callers decoding a full packet recover that panic
// at a single boundary and return it as an error.
type Reader struct {
	r interface {
		io.Reader
		io.ByteReader
	}
	pr    *protocol.Reader
	items ItemTable
}

// NewReader creates a new Reader reading from r. items is used to decode item stacks and may
// be nil, in which case decoding a packet holding an item stack fails with
// ErrItemTableRequired.
func NewReader(r interface {
	io.Reader
	io.ByteReader
}, items ItemTable) *Reader {
	return &Reader{r: r, pr: protocol.NewReader(r, 0, false), items: items}
}

// Uint8 ...
func (r *Reader) Uint8(x *uint8) { r.pr.Uint8(x) }

// Int16 ...
func (r *Reader) Int16(x *int16) { r.pr.Int16(x) }

// Uint16 ...
func (r *Reader) Uint16(x *uint16) { r.pr.Uint16(x) }

// Int32 ...
func (r *Reader) Int32(x *int32) { r.pr.Int32(x) }

// BEInt32 ...
func (r *Reader) BEInt32(x *int32) { r.pr.BEInt32(x) }

// Uint32 ...
func (r *Reader) Uint32(x *uint32) { r.pr.Uint32(x) }

// Int64 ...
func (r *Reader) Int64(x *int64) { r.pr.Int64(x) }

// Uint64 ...
func (r *Reader) Uint64(x *uint64) { r.pr.Uint64(x) }

// Float32 ...
func (r *Reader) Float32(x *float32) { r.pr.Float32(x) }

// Bool ...
func (r *Reader) Bool(x *bool) { r.pr.Bool(x) }

// Varint32 ...
func (r *Reader) Varint32(x *int32) { r.pr.Varint32(x) }

// Varuint32 ...
func (r *Reader) Varuint32(x *uint32) { r.pr.Varuint32(x) }

// Varint64 ...
func (r *Reader) Varint64(x *int64) { r.pr.Varint64(x) }

// Varuint64 ...
func (r *Reader) Varuint64(x *uint64) { r.pr.Varuint64(x) }

// String ...
func (r *Reader) String(x *string) { r.pr.String(x) }

// StringUTF ...
func (r *Reader) StringUTF(x *string) { r.pr.StringUTF(x) }

// ByteSlice reads a varuint32 prefixed byte slice. An empty slice is read as nil.
func (r *Reader) ByteSlice(x *[]byte) {
	r.pr.ByteSlice(x)
	if len(*x) == 0 {
		*x = nil
	}
}

// Vec3 ...
func (r *Reader) Vec3(x *mgl32.Vec3) { r.pr.Vec3(x) }

// UUID reads exactly 16 bytes into x.
func (r *Reader) UUID(x *uuid.UUID) {
	if _, err := io.ReadFull(r.r, x[:]); err != nil {
		r.fail(err)
	}
}

// NBT reads a compound tag into x. An empty compound is read as a nil map.
func (r *Reader) NBT(x *map[string]any, encoding nbt.Encoding) {
	r.pr.NBT(x, encoding)
	if len(*x) == 0 {
		*x = nil
	}
}

// Items returns the item table the Reader was created with, or nil.
func (r *Reader) Items() ItemTable {
	return r.items
}

// fail aborts decoding with err.
func (r *Reader) fail(err error) {
	panic(err)
}
