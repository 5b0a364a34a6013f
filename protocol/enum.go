package protocol

import (
	"fmt"
)

// integer is the set of underlying types a wire enumeration may have.
type integer interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

// EnumSet describes a closed set of wire enumeration values. Every set carries a fallback
// value that undeclared tags decode to, so that decoding never fails on a tag the set does not
// know about.
type EnumSet[T integer] struct {
	name     string
	fallback T
	names    map[T]string
}

// NewEnumSet creates an EnumSet named name from the declared values in names. fallback must be
// one of the declared values.
func NewEnumSet[T integer](name string, fallback T, names map[T]string) EnumSet[T] {
	if _, ok := names[fallback]; !ok {
		panic(fmt.Sprintf("enum %v: fallback %d is not declared", name, fallback))
	}
	return EnumSet[T]{name: name, fallback: fallback, names: names}
}

// Declared reports if v is a declared value of the set.
func (s EnumSet[T]) Declared(v T) bool {
	_, ok := s.names[v]
	return ok
}

// Normalise returns v if it is declared, or the fallback of the set otherwise.
func (s EnumSet[T]) Normalise(v T) T {
	if s.Declared(v) {
		return v
	}
	return s.fallback
}

// Fallback returns the value undeclared tags decode to.
func (s EnumSet[T]) Fallback() T {
	return s.fallback
}

// Name returns the declared name of v, or a name of the form Set(v) if v is not declared.
func (s EnumSet[T]) Name(v T) string {
	if name, ok := s.names[v]; ok {
		return name
	}
	// %d does not consult the String method of T, which calls Name.
	return fmt.Sprintf("%v(%d)", s.name, v)
}

// Len returns the amount of declared values, fallback included.
func (s EnumSet[T]) Len() int {
	return len(s.names)
}

// resolve stores v in x. While decoding, v is normalised first.
func resolve[T integer](io IO, x *T, v T, set EnumSet[T]) {
	if decoding(io) {
		v = set.Normalise(v)
	}
	*x = v
}

// Uint8Enum reads/writes an enumeration value as a uint8.
func Uint8Enum[T ~uint8](io IO, x *T, set EnumSet[T]) {
	v := uint8(*x)
	io.Uint8(&v)
	resolve(io, x, T(v), set)
}

// Int16Enum reads/writes an enumeration value as a little-endian int16.
func Int16Enum[T ~int16](io IO, x *T, set EnumSet[T]) {
	v := int16(*x)
	io.Int16(&v)
	resolve(io, x, T(v), set)
}

// Uint16Enum reads/writes an enumeration value as a little-endian uint16.
func Uint16Enum[T ~uint16](io IO, x *T, set EnumSet[T]) {
	v := uint16(*x)
	io.Uint16(&v)
	resolve(io, x, T(v), set)
}

// Int32Enum reads/writes an enumeration value as a little-endian int32.
func Int32Enum[T ~int32](io IO, x *T, set EnumSet[T]) {
	v := int32(*x)
	io.Int32(&v)
	resolve(io, x, T(v), set)
}

// BEInt32Enum reads/writes an enumeration value as a big-endian int32.
func BEInt32Enum[T ~int32](io IO, x *T, set EnumSet[T]) {
	v := int32(*x)
	io.BEInt32(&v)
	resolve(io, x, T(v), set)
}

// Varint32Enum reads/writes an enumeration value as a varint32.
func Varint32Enum[T ~int32](io IO, x *T, set EnumSet[T]) {
	v := int32(*x)
	io.Varint32(&v)
	resolve(io, x, T(v), set)
}

// Varuint32Enum reads/writes an enumeration value as a varuint32.
func Varuint32Enum[T ~uint32](io IO, x *T, set EnumSet[T]) {
	v := uint32(*x)
	io.Varuint32(&v)
	resolve(io, x, T(v), set)
}
