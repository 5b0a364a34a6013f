package packet

import (
	"github.com/cooldogedev/bedrockwire/protocol"
)

// InventoryTransaction is a packet sent by the client. It essentially exists out of multiple
// sub-packets, each of which have something to do with the inventory in one way or another.
type InventoryTransaction struct {
	// LegacyRequestID is an ID that is only non-zero at times when sent by the client. The
	// LegacySetItemSlots are only present when it is non-zero.
	LegacyRequestID    int32
	LegacySetItemSlots []protocol.LegacySetItemSlot
	// Actions is a list of actions that took place, that form the inventory transaction together.
	Actions []protocol.InventoryAction
	// TransactionData is the data of the transaction. It is nil or one of the TransactionData
	// types in the protocol package.
	TransactionData protocol.InventoryTransactionData
}

// ID ...
func (*InventoryTransaction) ID() uint32 {
	return IDInventoryTransaction
}

// Marshal ...
func (pk *InventoryTransaction) Marshal(io protocol.IO) {
	io.Varint32(&pk.LegacyRequestID)
	if pk.LegacyRequestID != 0 {
		protocol.Slice(io, &pk.LegacySetItemSlots)
	}
	protocol.Slice(io, &pk.Actions)
	protocol.TransactionData(io, &pk.TransactionData)
}
