package protocol

import (
	"bytes"
	"reflect"
	"testing"
)

type transaction struct {
	data InventoryTransactionData
}

func (x *transaction) Marshal(io IO) {
	TransactionData(io, &x.data)
}

func TestTransactionData(t *testing.T) {
	tests := []struct {
		desc string
		data InventoryTransactionData
		ser  []byte
	}{
		{
			desc: "Normal",
			data: &NormalTransactionData{},
			ser:  []byte{0x00},
		},
		{
			desc: "Mismatch",
			data: &MismatchTransactionData{},
			ser:  []byte{0x01},
		},
		{
			desc: "UseItem",
			data: &UseItemTransactionData{ActionType: 1, BlockFace: 1, HotBarSlot: 3},
			ser:  []byte{0x02, 0x01, 0x02, 0x06},
		},
		{
			desc: "UseItemOnEntity",
			data: &UseItemOnEntityTransactionData{TargetEntityRuntimeID: 300, ActionType: 2, HotBarSlot: -1},
			ser:  []byte{0x03, 0xac, 0x02, 0x02, 0x01},
		},
		{
			desc: "ReleaseItem",
			data: &ReleaseItemTransactionData{ActionType: 0, HotBarSlot: 8, Item: 2},
			ser:  []byte{0x04, 0x00, 0x10, 0x04},
		},
	}
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			got := encode(&transaction{data: tt.data})
			if !bytes.Equal(got, tt.ser) {
				t.Fatalf("got %x, want %x", got, tt.ser)
			}

			var decoded transaction
			if _, err := decode(got, nil, &decoded); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if !reflect.DeepEqual(decoded.data, tt.data) {
				t.Errorf("got %#v, want %#v", decoded.data, tt.data)
			}
		})
	}
}

func TestTransactionDataUnknownTag(t *testing.T) {
	var decoded transaction
	rest, err := decode([]byte{0x09, 0xaa, 0xbb}, nil, &decoded)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if _, ok := decoded.data.(*InvalidTransactionData); !ok {
		t.Errorf("got %T, want *InvalidTransactionData", decoded.data)
	}
	if !bytes.Equal(rest, []byte{0xaa, 0xbb}) {
		t.Errorf("got %x left unread, want aabb", rest)
	}
}

func TestInventoryAction(t *testing.T) {
	action := InventoryAction{
		Source: InventorySource{Type: InventorySourceWorldInteraction, WindowID: -1, Flags: InventorySourceFlagDropItem},
		Slot:   4,
	}
	got := encode(&action)
	if want := []byte{0x02, 0x01, 0x00, 0x04}; !bytes.Equal(got, want) {
		t.Fatalf("got %x, want %x", got, want)
	}

	var decoded InventoryAction
	if _, err := decode(got, nil, &decoded); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded != action {
		t.Errorf("got %+v, want %+v", decoded, action)
	}
}
