package protocol

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
)

// ErrContainerTooLarge is the error an encode aborts with when a container holds more elements
// than its length prefix can express.
var ErrContainerTooLarge = errors.New("container too large for its length prefix")

// preallocLimit caps how many elements are allocated up front when decoding a prefixed
// container, so that a forged length cannot force a huge allocation before the input runs out.
const preallocLimit = 512

// LengthPrefix reads/writes the element count of a prefixed container. The same container
// shape is reused with different prefix encodings.
type LengthPrefix func(io IO, n *uint32)

var (
	// VaruintLength prefixes a container with a varuint32 count.
	VaruintLength LengthPrefix = func(io IO, n *uint32) {
		io.Varuint32(n)
	}
	// Uint16Length prefixes a container with a little-endian uint16 count.
	Uint16Length LengthPrefix = func(io IO, n *uint32) {
		if !decoding(io) && *n > math.MaxUint16 {
			panic(fmt.Errorf("%w: %v elements behind a uint16 prefix", ErrContainerTooLarge, *n))
		}
		l := uint16(*n)
		io.Uint16(&l)
		*n = uint32(l)
	}
	// Uint32Length prefixes a container with a little-endian uint32 count.
	Uint32Length LengthPrefix = func(io IO, n *uint32) {
		io.Uint32(n)
	}
)

// PtrMarshaler is a pointer to T that implements Marshaler.
type PtrMarshaler[T any] interface {
	Marshaler
	*T
}

// Slice reads/writes a varuint32 prefixed slice of T.
func Slice[T any, S PtrMarshaler[T]](io IO, x *[]T) {
	FuncSliceOfLen(io, x, VaruintLength, func(v *T) {
		S(v).Marshal(io)
	})
}

// SliceUint16Length reads/writes a slice of T prefixed with a uint16 count.
func SliceUint16Length[T any, S PtrMarshaler[T]](io IO, x *[]T) {
	FuncSliceOfLen(io, x, Uint16Length, func(v *T) {
		S(v).Marshal(io)
	})
}

// SliceUint32Length reads/writes a slice of T prefixed with a uint32 count.
func SliceUint32Length[T any, S PtrMarshaler[T]](io IO, x *[]T) {
	FuncSliceOfLen(io, x, Uint32Length, func(v *T) {
		S(v).Marshal(io)
	})
}

// FuncSlice reads/writes a varuint32 prefixed slice using f for every element.
func FuncSlice[T any](io IO, x *[]T, f func(*T)) {
	FuncSliceOfLen(io, x, VaruintLength, f)
}

// FuncSliceOfLen reads/writes a slice prefixed by prefix, using f for every element. A decoded
// empty slice is nil.
func FuncSliceOfLen[T any](io IO, x *[]T, prefix LengthPrefix, f func(*T)) {
	count := uint32(len(*x))
	prefix(io, &count)
	if !decoding(io) {
		for i := range *x {
			f(&(*x)[i])
		}
		return
	}

	if count == 0 {
		*x = nil
		return
	}
	s := make([]T, 0, min(count, preallocLimit))
	for i := uint32(0); i < count; i++ {
		var v T
		f(&v)
		s = append(s, v)
	}
	*x = s
}

// Optional is a value that may or may not be present on the wire. It is encoded as a bool
// followed by the value if the bool is true.
type Optional[T any] struct {
	set bool
	val T
}

// Option creates an Optional holding v.
func Option[T any](v T) Optional[T] {
	return Optional[T]{set: true, val: v}
}

// Value returns the value held and whether it is set.
func (o Optional[T]) Value() (T, bool) {
	return o.val, o.set
}

// MarshalJSON encodes the value held, or null if it is not set.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.set {
		return []byte("null"), nil
	}
	return json.Marshal(o.val)
}

// UnmarshalJSON sets the Optional to the value in data, or clears it if data is null.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*o = Optional[T]{}
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*o = Option(v)
	return nil
}

// OptionalFunc reads/writes an Optional, using f for the value if it is set.
func OptionalFunc[T any](io IO, x *Optional[T], f func(*T)) {
	io.Bool(&x.set)
	if x.set {
		f(&x.val)
	}
}
