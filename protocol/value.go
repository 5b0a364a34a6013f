package protocol

// rotationStep is the size of a single step of a rotation angle packed into a byte.
const rotationStep = 360.0 / 256.0

// Rotation holds the rotation of an entity around the three axes, in degrees. It is packed into
// three bytes on the wire, each holding an angle in steps of 1/256 of a full circle, so a
// decoded rotation may differ from the encoded one by up to a single step. Angles outside of
// [0, 360) wrap around.
type Rotation struct {
	X, Y, Z float32
}

// Marshal ...
func (x *Rotation) Marshal(io IO) {
	rotationAngle(io, &x.X)
	rotationAngle(io, &x.Y)
	rotationAngle(io, &x.Z)
}

// rotationAngle reads/writes a single angle packed into a byte.
func rotationAngle(io IO, x *float32) {
	b := uint8(int64(*x / rotationStep))
	io.Uint8(&b)
	if decoding(io) {
		*x = float32(b) * rotationStep
	}
}

// BlockPos is the position of a block, with all three coordinates encoded as varint32s.
type BlockPos [3]int32

// X ...
func (pos BlockPos) X() int32 { return pos[0] }

// Y ...
func (pos BlockPos) Y() int32 { return pos[1] }

// Z ...
func (pos BlockPos) Z() int32 { return pos[2] }

// Marshal ...
func (pos *BlockPos) Marshal(io IO) {
	io.Varint32(&pos[0])
	io.Varint32(&pos[1])
	io.Varint32(&pos[2])
}

// UBlockPos is the position of a block whose Y coordinate is encoded as a varuint32, which is
// the layout used by packets that never address blocks below the world.
type UBlockPos struct {
	X int32
	Y uint32
	Z int32
}

// Marshal ...
func (pos *UBlockPos) Marshal(io IO) {
	io.Varint32(&pos.X)
	io.Varuint32(&pos.Y)
	io.Varint32(&pos.Z)
}
