package protocol

import (
	"errors"
	"fmt"
)

// ErrItemTableRequired is returned when an item stack is decoded by a Reader created without an
// item table. The layout of a stack depends on the item it holds, which only the table of items
// announced by the server describes.
var ErrItemTableRequired = errors.New("item stack decoding requires an item table")

// UnknownItemError is returned when an item stack decoded holds a network ID that is not present
// in the item table of the Reader.
type UnknownItemError struct {
	NetworkID int32
}

// Error ...
func (e UnknownItemError) Error() string {
	return fmt.Sprintf("unknown item network id %d", e.NetworkID)
}

// ItemEntry is an item announced to the client in the StartGame packet.
type ItemEntry struct {
	Name           string
	RuntimeID      int16
	ComponentBased bool
}

// Marshal ...
func (x *ItemEntry) Marshal(io IO) {
	io.String(&x.Name)
	io.Int16(&x.RuntimeID)
	io.Bool(&x.ComponentBased)
}

// ItemTable maps the network IDs of items to their entries.
type ItemTable map[int32]ItemEntry

// NewItemTable creates an ItemTable holding entries, keyed by their runtime IDs.
func NewItemTable(entries []ItemEntry) ItemTable {
	t := make(ItemTable, len(entries))
	for _, entry := range entries {
		t[int32(entry.RuntimeID)] = entry
	}
	return t
}

// ItemType is the type of an item.
type ItemType struct {
	NetworkID     int32
	MetadataValue uint32
}

// ItemStack is a stack of items. A stack with a zero NetworkID is empty and is encoded as that
// ID alone.
type ItemStack struct {
	ItemType
	BlockRuntimeID int32
	Count          uint16
	CanBePlacedOn  []string
	CanBreak       []string
}

// Empty reports if the stack holds no item.
func (x *ItemStack) Empty() bool {
	return x.NetworkID == 0
}

// Marshal ...
func (x *ItemStack) Marshal(io IO) {
	r, reading := io.(*Reader)
	if reading && r.items == nil {
		r.fail(ErrItemTableRequired)
	}
	io.Varint32(&x.NetworkID)
	if x.NetworkID == 0 {
		return
	}
	if reading {
		if _, ok := r.items[x.NetworkID]; !ok {
			r.fail(UnknownItemError{NetworkID: x.NetworkID})
		}
	}
	io.Uint16(&x.Count)
	io.Varuint32(&x.MetadataValue)
	io.Varint32(&x.BlockRuntimeID)
	FuncSliceOfLen(io, &x.CanBePlacedOn, Uint32Length, io.StringUTF)
	FuncSliceOfLen(io, &x.CanBreak, Uint32Length, io.StringUTF)
}

// ItemInstance is an item stack along with the network ID the server assigned to the stack, if
// any.
type ItemInstance struct {
	StackNetworkID Optional[int32]
	Stack          ItemStack
}

// Marshal ...
func (x *ItemInstance) Marshal(io IO) {
	OptionalFunc(io, &x.StackNetworkID, io.Varint32)
	x.Stack.Marshal(io)
}
