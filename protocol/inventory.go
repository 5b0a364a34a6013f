package protocol

// InventorySourceType is the type of the source of an inventory action.
type InventorySourceType uint32

const (
	InventorySourceContainer InventorySourceType = iota
	InventorySourceGlobal
	InventorySourceWorldInteraction
	InventorySourceCreative
	InventorySourceUntrackedInteractionUI
	InventorySourceNonImplemented InventorySourceType = 99999
	InventorySourceInvalid        InventorySourceType = 0xffffffff
)

// InventorySourceTypes ...
var InventorySourceTypes = NewEnumSet("InventorySourceType", InventorySourceNonImplemented, map[InventorySourceType]string{
	InventorySourceInvalid:                "Invalid",
	InventorySourceContainer:              "Container",
	InventorySourceGlobal:                 "Global",
	InventorySourceWorldInteraction:       "WorldInteraction",
	InventorySourceCreative:               "Creative",
	InventorySourceUntrackedInteractionUI: "UntrackedInteractionUI",
	InventorySourceNonImplemented:         "NonImplemented",
})

// Marshal ...
func (x *InventorySourceType) Marshal(io IO) { Varuint32Enum(io, x, InventorySourceTypes) }

// String ...
func (x InventorySourceType) String() string { return InventorySourceTypes.Name(x) }

// InventorySourceFlag ...
type InventorySourceFlag uint32

const (
	InventorySourceFlagDropItem InventorySourceFlag = iota
	InventorySourceFlagPickupItem
	InventorySourceFlagNone
)

// InventorySourceFlags ...
var InventorySourceFlags = NewEnumSet("InventorySourceFlag", InventorySourceFlagNone, map[InventorySourceFlag]string{
	InventorySourceFlagDropItem:   "DropItem",
	InventorySourceFlagPickupItem: "PickupItem",
	InventorySourceFlagNone:       "None",
})

// Marshal ...
func (x *InventorySourceFlag) Marshal(io IO) { Varuint32Enum(io, x, InventorySourceFlags) }

// String ...
func (x InventorySourceFlag) String() string { return InventorySourceFlags.Name(x) }

// InventorySource is the source of an inventory action.
type InventorySource struct {
	Type     InventorySourceType
	WindowID int32
	Flags    InventorySourceFlag
}

// Marshal ...
func (x *InventorySource) Marshal(io IO) {
	x.Type.Marshal(io)
	io.Varint32(&x.WindowID)
	x.Flags.Marshal(io)
}

// InventoryAction is a single action taken on a slot as part of an inventory transaction.
type InventoryAction struct {
	Source InventorySource
	Slot   uint32
}

// Marshal ...
func (x *InventoryAction) Marshal(io IO) {
	x.Source.Marshal(io)
	io.Varuint32(&x.Slot)
}

// LegacySetItemSlot ...
type LegacySetItemSlot struct {
	ContainerID uint8
	Slots       []byte
}

// Marshal ...
func (x *LegacySetItemSlot) Marshal(io IO) {
	io.Uint8(&x.ContainerID)
	io.ByteSlice(&x.Slots)
}

// InventoryTransactionType is the discriminant of the data of an inventory transaction.
type InventoryTransactionType uint32

const (
	InventoryTransactionNormal InventoryTransactionType = iota
	InventoryTransactionMismatch
	InventoryTransactionUseItem
	InventoryTransactionUseItemOnEntity
	InventoryTransactionReleaseItem
	InventoryTransactionInvalid
)

// InventoryTransactionTypes ...
var InventoryTransactionTypes = NewEnumSet("InventoryTransactionType", InventoryTransactionInvalid, map[InventoryTransactionType]string{
	InventoryTransactionNormal:          "Normal",
	InventoryTransactionMismatch:        "Mismatch",
	InventoryTransactionUseItem:         "UseItem",
	InventoryTransactionUseItemOnEntity: "UseItemOnEntity",
	InventoryTransactionReleaseItem:     "ReleaseItem",
	InventoryTransactionInvalid:         "Invalid",
})

// String ...
func (x InventoryTransactionType) String() string { return InventoryTransactionTypes.Name(x) }

// InventoryTransactionData is the variant specific data of an inventory transaction.
type InventoryTransactionData interface {
	Marshaler
	TransactionType() InventoryTransactionType
}

// transactionData holds a factory for every declared transaction type.
var transactionData = map[InventoryTransactionType]func() InventoryTransactionData{
	InventoryTransactionNormal:          func() InventoryTransactionData { return &NormalTransactionData{} },
	InventoryTransactionMismatch:        func() InventoryTransactionData { return &MismatchTransactionData{} },
	InventoryTransactionUseItem:         func() InventoryTransactionData { return &UseItemTransactionData{} },
	InventoryTransactionUseItemOnEntity: func() InventoryTransactionData { return &UseItemOnEntityTransactionData{} },
	InventoryTransactionReleaseItem:     func() InventoryTransactionData { return &ReleaseItemTransactionData{} },
	InventoryTransactionInvalid:         func() InventoryTransactionData { return &InvalidTransactionData{} },
}

// TransactionData reads/writes the discriminant of x followed by the fields of the variant it
// selects. A nil x is written as InvalidTransactionData. A discriminant that is not known is
// decoded into InvalidTransactionData, and nothing further is read.
func TransactionData(io IO, x *InventoryTransactionData) {
	t := InventoryTransactionInvalid
	if *x != nil {
		t = (*x).TransactionType()
	}
	Varuint32Enum(io, &t, InventoryTransactionTypes)
	if !decoding(io) && *x == nil {
		return
	}
	if decoding(io) {
		*x = transactionData[t]()
	}
	(*x).Marshal(io)
}

// NormalTransactionData ...
type NormalTransactionData struct{}

// TransactionType ...
func (*NormalTransactionData) TransactionType() InventoryTransactionType {
	return InventoryTransactionNormal
}

// Marshal ...
func (*NormalTransactionData) Marshal(IO) {}

// MismatchTransactionData ...
type MismatchTransactionData struct{}

// TransactionType ...
func (*MismatchTransactionData) TransactionType() InventoryTransactionType {
	return InventoryTransactionMismatch
}

// Marshal ...
func (*MismatchTransactionData) Marshal(IO) {}

// UseItemTransactionData is sent when a player uses an item on a block or in the air.
type UseItemTransactionData struct {
	ActionType uint32
	BlockFace  int32
	HotBarSlot int32
}

// TransactionType ...
func (*UseItemTransactionData) TransactionType() InventoryTransactionType {
	return InventoryTransactionUseItem
}

// Marshal ...
func (x *UseItemTransactionData) Marshal(io IO) {
	io.Varuint32(&x.ActionType)
	io.Varint32(&x.BlockFace)
	io.Varint32(&x.HotBarSlot)
}

// UseItemOnEntityTransactionData is sent when a player uses an item on an entity.
type UseItemOnEntityTransactionData struct {
	TargetEntityRuntimeID uint64
	ActionType            uint32
	HotBarSlot            int32
}

// TransactionType ...
func (*UseItemOnEntityTransactionData) TransactionType() InventoryTransactionType {
	return InventoryTransactionUseItemOnEntity
}

// Marshal ...
func (x *UseItemOnEntityTransactionData) Marshal(io IO) {
	io.Varuint64(&x.TargetEntityRuntimeID)
	io.Varuint32(&x.ActionType)
	io.Varint32(&x.HotBarSlot)
}

// ReleaseItemTransactionData is sent when a player releases an item it was using, such as a bow.
type ReleaseItemTransactionData struct {
	ActionType uint32
	HotBarSlot int32
	Item       int32
}

// TransactionType ...
func (*ReleaseItemTransactionData) TransactionType() InventoryTransactionType {
	return InventoryTransactionReleaseItem
}

// Marshal ...
func (x *ReleaseItemTransactionData) Marshal(io IO) {
	io.Varuint32(&x.ActionType)
	io.Varint32(&x.HotBarSlot)
	io.Varint32(&x.Item)
}

// InvalidTransactionData is the data of a transaction with a type that is not known. It holds
// no fields.
type InvalidTransactionData struct{}

// TransactionType ...
func (*InvalidTransactionData) TransactionType() InventoryTransactionType {
	return InventoryTransactionInvalid
}

// Marshal ...
func (*InvalidTransactionData) Marshal(IO) {}
