package packet

import (
	"reflect"
	"slices"
	"testing"

	"github.com/cooldogedev/bedrockwire/protocol"
)

func TestIDs(t *testing.T) {
	want := []uint32{
		0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0a, 0x0b, 0x0c,
		0x11, 0x12, 0x13, 0x14, 0x15, 0x16, 0x17,
		0x19, 0x1a, 0x1b, 0x1c, 0x1d, 0x1e,
		0x21, 0x22, 0x23, 0x24, 0x26,
		0x8f, 0xc1,
	}
	if got := IDs(); !slices.Equal(got, want) {
		t.Errorf("got %#x, want %#x", got, want)
	}
}

func TestPoolMatchesRegistry(t *testing.T) {
	pool := NewPool()
	if len(pool) != len(registry) {
		t.Fatalf("pool holds %v packets, registry %v", len(pool), len(registry))
	}
	for id, factory := range pool {
		if pk := factory(); IDOf(pk) != id {
			t.Errorf("%T registered with ID %#x reports ID %#x", pk, id, IDOf(pk))
		}
	}
}

func TestNewPoolReturnsCopy(t *testing.T) {
	pool := NewPool()
	delete(pool, IDLogin)
	if _, ok := NewPool()[IDLogin]; !ok {
		t.Error("modifying a pool changed the registry")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		desc          string
		registrations []registration
		valid         bool
	}{
		{
			desc:          "Registry",
			registrations: registry,
			valid:         true,
		},
		{
			desc: "Duplicate ID",
			registrations: []registration{
				{IDLogin, func() Packet { return &Login{} }},
				{IDLogin, func() Packet { return &PlayStatus{} }},
			},
		},
		{
			desc: "Duplicate type",
			registrations: []registration{
				{IDLogin, func() Packet { return &Login{} }},
				{IDLogin + 0x100, func() Packet { return &Login{} }},
			},
		},
		{
			desc: "Mismatched ID",
			registrations: []registration{
				{IDText, func() Packet { return &SetTime{} }},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			err := validate(tt.registrations)
			if tt.valid && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tt.valid && err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestName(t *testing.T) {
	if name, ok := Name(IDNetworkSettings); !ok || name != "NetworkSettings" {
		t.Errorf("got %q (%v), want NetworkSettings", name, ok)
	}
	if _, ok := Name(0x30); ok {
		t.Error("found a name for an unregistered ID")
	}
}

// TestEveryPacketRoundTrips encodes the zero value of every registered packet and checks that it
// decodes back unchanged. A few zero values hold a tag that is not declared, which decodes to the
// sentinel of its enumeration instead.
func TestEveryPacketRoundTrips(t *testing.T) {
	sentinels := map[uint32]Packet{
		IDResourcePackClientResponse: &ResourcePackClientResponse{Response: protocol.PackResponseInvalid},
		IDMobEffect:                  &MobEffect{Operation: protocol.MobEffectInvalid, EffectType: protocol.EffectInvalid},
		IDInventoryTransaction:       &InventoryTransaction{TransactionData: &protocol.InvalidTransactionData{}},
		IDInteract:                   &Interact{ActionType: protocol.InteractActionInvalid},
		IDLevelEvent:                 &LevelEvent{EventType: protocol.LevelEventInvalid},
		IDActorEvent:                 &ActorEvent{EventType: protocol.ActorEventInvalid},
	}

	decoder := NewDecoder(NewPool(), protocol.NewItemTable(nil))
	for _, id := range IDs() {
		pk := NewPool()[id]()
		decoded, header, err := decoder.Decode(Encode(pk))
		if err != nil {
			t.Errorf("decode %T: %v", pk, err)
			continue
		}
		if header.PacketID != id {
			t.Errorf("%T decoded with ID %#x", pk, header.PacketID)
		}
		want, ok := sentinels[id]
		if !ok {
			want = pk
		}
		if !reflect.DeepEqual(decoded, want) {
			t.Errorf("got %+v, want %+v", decoded, want)
		}
	}
}
