package protocol

import (
	"io"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
	"github.com/sandertv/gophertunnel/minecraft/nbt"
	"github.com/sandertv/gophertunnel/minecraft/protocol"
)

// Writer implements writing wire values to an underlying byte sink. Fixed width, variable
// length and NBT encodings are delegated to gophertunnel's protocol writer.
type Writer struct {
	w interface {
		io.Writer
		io.ByteWriter
	}
	pw *protocol.Writer
}

// NewWriter creates a new Writer that writes to w.
func NewWriter(w interface {
	io.Writer
	io.ByteWriter
}) *Writer {
	return &Writer{w: w, pw: protocol.NewWriter(w, 0)}
}

// Uint8 ...
func (w *Writer) Uint8(x *uint8) { w.pw.Uint8(x) }

// Int16 ...
func (w *Writer) Int16(x *int16) { w.pw.Int16(x) }

// Uint16 ...
func (w *Writer) Uint16(x *uint16) { w.pw.Uint16(x) }

// Int32 ...
func (w *Writer) Int32(x *int32) { w.pw.Int32(x) }

// BEInt32 ...
func (w *Writer) BEInt32(x *int32) { w.pw.BEInt32(x) }

// Uint32 ...
func (w *Writer) Uint32(x *uint32) { w.pw.Uint32(x) }

// Int64 ...
func (w *Writer) Int64(x *int64) { w.pw.Int64(x) }

// Uint64 ...
func (w *Writer) Uint64(x *uint64) { w.pw.Uint64(x) }

// Float32 ...
func (w *Writer) Float32(x *float32) { w.pw.Float32(x) }

// Bool ...
func (w *Writer) Bool(x *bool) { w.pw.Bool(x) }

// Varint32 ...
func (w *Writer) Varint32(x *int32) { w.pw.Varint32(x) }

// Varuint32 ...
func (w *Writer) Varuint32(x *uint32) { w.pw.Varuint32(x) }

// Varint64 ...
func (w *Writer) Varint64(x *int64) { w.pw.Varint64(x) }

// Varuint64 ...
func (w *Writer) Varuint64(x *uint64) { w.pw.Varuint64(x) }

// String ...
func (w *Writer) String(x *string) { w.pw.String(x) }

// StringUTF ...
func (w *Writer) StringUTF(x *string) { w.pw.StringUTF(x) }

// ByteSlice ...
func (w *Writer) ByteSlice(x *[]byte) { w.pw.ByteSlice(x) }

// Vec3 ...
func (w *Writer) Vec3(x *mgl32.Vec3) { w.pw.Vec3(x) }

// UUID writes the 16 bytes of x as they are laid out in memory.
func (w *Writer) UUID(x *uuid.UUID) {
	_, _ = w.w.Write(x[:])
}

// NBT ...
func (w *Writer) NBT(x *map[string]any, encoding nbt.Encoding) { w.pw.NBT(x, encoding) }
