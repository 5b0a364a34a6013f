package protocol

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
	"github.com/sandertv/gophertunnel/minecraft/nbt"
)

// IO represents a packer/unpacker of wire values. It is implemented by Writer, which
// writes the values pointed to, and by Reader, which reads into them. Types that marshal
// themselves through IO therefore only declare their field order once, and the encoding
// and decoding directions cannot drift apart.
type IO interface {
	Uint8(x *uint8)
	Int16(x *int16)
	Uint16(x *uint16)
	Int32(x *int32)
	BEInt32(x *int32)
	Uint32(x *uint32)
	Int64(x *int64)
	Uint64(x *uint64)
	Float32(x *float32)
	Bool(x *bool)
	Varint32(x *int32)
	Varuint32(x *uint32)
	Varint64(x *int64)
	Varuint64(x *uint64)
	// String reads/writes a string prefixed with its varuint32 length.
	String(x *string)
	// StringUTF reads/writes a string prefixed with its int16 little-endian length.
	StringUTF(x *string)
	ByteSlice(x *[]byte)
	Vec3(x *mgl32.Vec3)
	// UUID reads/writes exactly 16 raw bytes.
	UUID(x *uuid.UUID)
	NBT(x *map[string]any, encoding nbt.Encoding)
}

// Marshaler is a type that can be written to and read from an IO.
type Marshaler interface {
	Marshal(io IO)
}

// decoding reports if io reads values rather than writing them. The encoding of a few
// values, such as item stacks and enumerations, depends on the direction.
func decoding(io IO) bool {
	_, ok := io.(*Reader)
	return ok
}
