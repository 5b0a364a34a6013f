package packet

import (
	"bytes"
	"errors"
	"io"
	"reflect"
	"sync"
	"testing"

	"github.com/cooldogedev/bedrockwire/protocol"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

func TestEncodeWritesHeaderAndBody(t *testing.T) {
	tests := []struct {
		desc    string
		encoder Encoder
		pk      Packet
		ser     []byte
	}{
		{
			desc: "Default sub clients",
			pk:   &SetTime{Time: -1},
			ser:  []byte{0x0a, 0x01},
		},
		{
			desc:    "Sub clients",
			encoder: Encoder{SenderSubClient: 1, TargetSubClient: 2},
			pk:      &SetTime{Time: 1},
			ser:     []byte{0x8a, 0x48, 0x02},
		},
		{
			desc: "Empty body",
			pk:   &ClientToServerHandshake{},
			ser:  []byte{0x04},
		},
		{
			desc: "Big endian protocol",
			pk:   &RequestNetworkSettings{ClientProtocol: 0x0102},
			ser:  []byte{0xc1, 0x01, 0x00, 0x00, 0x01, 0x02},
		},
		{
			desc: "PlayStatus",
			pk:   &PlayStatus{Status: protocol.PlayStatusPlayerSpawn},
			ser:  []byte{0x02, 0x00, 0x00, 0x00, 0x03},
		},
		{
			desc: "NetworkSettings",
			pk:   &NetworkSettings{CompressionThreshold: 256, CompressionAlgorithm: CompressionAlgorithmSnappy, ClientThrottle: true, ClientThrottleThreshold: 5, ClientThrottleScalar: 1},
			ser:  []byte{0x8f, 0x01, 0x00, 0x01, 0x01, 0x00, 0x01, 0x05, 0x00, 0x00, 0x80, 0x3f},
		},
	}
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			if got := tt.encoder.Encode(tt.pk); !bytes.Equal(got, tt.ser) {
				t.Errorf("got %x, want %x", got, tt.ser)
			}
		})
	}
}

func TestDecodeUnknownPacketID(t *testing.T) {
	tests := []struct {
		desc   string
		data   []byte
		id     uint32
		offset int
	}{
		{desc: "Single byte header", data: []byte{0x30, 0xaa}, id: 0x30, offset: 1},
		{desc: "Two byte header", data: []byte{0xff, 0x07, 0xaa, 0xbb}, id: 0x3ff, offset: 2},
	}
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			_, header, err := Decode(tt.data)
			var unknown *UnknownPacketIDError
			if !errors.As(err, &unknown) {
				t.Fatalf("got error %v, want *UnknownPacketIDError", err)
			}
			if unknown.ID != tt.id || unknown.Offset != tt.offset {
				t.Errorf("got ID %#x at offset %v, want ID %#x at offset %v", unknown.ID, unknown.Offset, tt.id, tt.offset)
			}
			if header.PacketID != tt.id {
				t.Errorf("got header ID %#x, want %#x", header.PacketID, tt.id)
			}
		})
	}
}

func TestDecodeTruncatedBody(t *testing.T) {
	data := Encode(&Login{ClientProtocol: 712, ConnectionRequest: []byte("chain")})
	_, _, err := Decode(data[:1])
	if !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("got error %v, want an EOF", err)
	}
}

func TestDecodeEmpty(t *testing.T) {
	if _, _, err := Decode(nil); err == nil {
		t.Fatal("expected an error decoding no data")
	}
}

func TestDecodeItemStacks(t *testing.T) {
	pk := &AddPlayer{
		UUID:     uuid.New(),
		Username: "Steve",
		HeldItem: protocol.ItemInstance{
			StackNetworkID: protocol.Option[int32](1),
			Stack:          protocol.ItemStack{ItemType: protocol.ItemType{NetworkID: 5}, Count: 1},
		},
		GameType: protocol.GameTypeCreative,
	}
	data := Encode(pk)

	if _, _, err := Decode(data); !errors.Is(err, protocol.ErrItemTableRequired) {
		t.Errorf("got error %v, want ErrItemTableRequired", err)
	}

	unknown := NewDecoder(NewPool(), protocol.NewItemTable([]protocol.ItemEntry{{Name: "minecraft:apple", RuntimeID: 4}}))
	var itemErr protocol.UnknownItemError
	if _, _, err := unknown.Decode(data); !errors.As(err, &itemErr) {
		t.Errorf("got error %v, want UnknownItemError", err)
	}

	decoder := NewDecoder(NewPool(), protocol.NewItemTable([]protocol.ItemEntry{{Name: "minecraft:stone", RuntimeID: 5}}))
	decoded, _, err := decoder.Decode(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !reflect.DeepEqual(decoded, pk) {
		t.Errorf("got %+v, want %+v", decoded, pk)
	}
}

func TestDecodeRoundTrip(t *testing.T) {
	tests := []struct {
		desc string
		pk   Packet
	}{
		{
			desc: "Login",
			pk:   &Login{ClientProtocol: 712, ConnectionRequest: []byte(`{"chain":[]}`)},
		},
		{
			desc: "ResourcePacksInfo",
			pk: &ResourcePacksInfo{
				TexturePackRequired: true,
				BehaviourPacks:      []protocol.BehaviourPackInfo{{UUID: "a", Version: "1.0.0", Size: 1024, HasScripts: true}},
				TexturePacks:        []protocol.TexturePackInfo{{UUID: "b", Version: "2.0.0", Size: 99, RTXEnabled: true}},
				PackURLs:            []protocol.PackURL{{UUIDVersion: "b_2.0.0", URL: "https://cdn.example/b.zip"}},
			},
		},
		{
			desc: "ResourcePackStack",
			pk: &ResourcePackStack{
				BehaviourPacks:  []protocol.StackResourcePack{{UUID: "a", Version: "1.0.0"}},
				BaseGameVersion: "1.21.0",
				Experiments:     []protocol.ExperimentData{{Name: "gametest", Enabled: true}},
			},
		},
		{
			desc: "ResourcePackClientResponse",
			pk:   &ResourcePackClientResponse{Response: protocol.PackResponseSendPacks, PacksToDownload: []string{"a_1.0.0"}},
		},
		{
			desc: "MoveActorAbsolute",
			pk: &MoveActorAbsolute{
				EntityRuntimeID: 9,
				Flags:           MoveActorAbsoluteFlagGround | MoveActorAbsoluteFlagTeleport,
				Position:        mgl32.Vec3{1.5, 64, -3},
				Rotation:        protocol.Rotation{X: 90, Y: 180, Z: 45},
			},
		},
		{
			desc: "MovePlayer",
			pk: &MovePlayer{
				EntityRuntimeID: 1,
				Position:        mgl32.Vec3{0, 70, 0},
				Yaw:             12.5,
				Mode:            protocol.MovementModeTeleport,
				OnGround:        true,
				TeleportCause:   protocol.TeleportCauseChorusFruit,
				Tick:            400,
			},
		},
		{
			desc: "UpdateBlock",
			pk:   &UpdateBlock{Position: protocol.UBlockPos{X: -4, Y: 70, Z: 12}, NewBlockRuntimeID: 1234, Flags: BlockUpdateNetwork, Layer: 1},
		},
		{
			desc: "AddPainting",
			pk:   &AddPainting{EntityUniqueID: -5, EntityRuntimeID: 5, Direction: 2, Title: "Kebab"},
		},
		{
			desc: "TickSync",
			pk:   &TickSync{ClientRequestTimestamp: 100, ServerReceptionTimestamp: -1},
		},
		{
			desc: "LevelEvent",
			pk:   &LevelEvent{EventType: protocol.LevelEventStartRaining, Position: mgl32.Vec3{1, 2, 3}, EventData: 10000},
		},
		{
			desc: "BlockEvent",
			pk:   &BlockEvent{Position: protocol.UBlockPos{Y: 1}, EventType: 1, EventData: 2},
		},
		{
			desc: "ActorEvent",
			pk:   &ActorEvent{EntityRuntimeID: 3, EventType: protocol.ActorEventHurt},
		},
		{
			desc: "MobEffect",
			pk:   &MobEffect{EntityRuntimeID: 1, Operation: protocol.MobEffectAdd, EffectType: protocol.EffectRegeneration, Amplifier: 1, Particles: true, Duration: 200},
		},
		{
			desc: "UpdateAttributes",
			pk: &UpdateAttributes{
				EntityRuntimeID: 1,
				Attributes: []protocol.Attribute{{
					Max: 20, Value: 20, Default: 20, Name: "minecraft:health",
					Modifiers: []protocol.AttributeModifier{{ID: "x", Name: "boost", Amount: 2, Operation: protocol.AttributeOperationAdd, Operand: protocol.AttributeTargetOperandMax}},
				}},
				Tick: 12,
			},
		},
		{
			desc: "InventoryTransaction",
			pk: &InventoryTransaction{
				LegacyRequestID:    -2,
				LegacySetItemSlots: []protocol.LegacySetItemSlot{{ContainerID: 1, Slots: []byte{0, 1}}},
				Actions:            []protocol.InventoryAction{{Source: protocol.InventorySource{Type: protocol.InventorySourceContainer, Flags: protocol.InventorySourceFlagNone}, Slot: 3}},
				TransactionData:    &protocol.UseItemTransactionData{ActionType: 1, BlockFace: 2, HotBarSlot: 4},
			},
		},
		{
			desc: "Interact",
			pk:   &Interact{ActionType: protocol.InteractActionOpenInventory, TargetEntityRuntimeID: 1},
		},
		{
			desc: "BlockPickRequest",
			pk:   &BlockPickRequest{Position: mgl32.Vec3{1, 2, 3}, AddBlockNBT: true, HotBarSlot: 4},
		},
		{
			desc: "ActorPickRequest",
			pk:   &ActorPickRequest{EntityUniqueID: -1, HotBarSlot: 2, WithData: true},
		},
		{
			desc: "PlayerAction",
			pk:   &PlayerAction{EntityRuntimeID: 1, ActionType: 18, BlockPosition: protocol.UBlockPos{X: 1, Y: 2, Z: 3}, BlockFace: 1},
		},
		{
			desc: "HurtArmour",
			pk:   &HurtArmour{Cause: 2, Damage: 3},
		},
	}
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			decoded, _, err := Decode(Encode(tt.pk))
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if !reflect.DeepEqual(decoded, tt.pk) {
				t.Errorf("got %+v, want %+v", decoded, tt.pk)
			}
		})
	}
}

func TestInventoryTransactionLegacySlots(t *testing.T) {
	pk := &InventoryTransaction{
		LegacySetItemSlots: []protocol.LegacySetItemSlot{{ContainerID: 1}},
		TransactionData:    &protocol.NormalTransactionData{},
	}
	// Without a legacy request ID the slots are not written.
	if got, want := Encode(pk), []byte{0x1e, 0x00, 0x00, 0x00}; !bytes.Equal(got, want) {
		t.Fatalf("got %x, want %x", got, want)
	}
}

func TestStartGameRoundTrip(t *testing.T) {
	pk := &StartGame{
		EntityUniqueID:  -1,
		EntityRuntimeID: 1,
		PlayerGameMode:  protocol.GameTypeSurvival,
		PlayerPosition:  mgl32.Vec3{0, 64, 0},
		WorldSeed:       1234,
		WorldGameMode:   protocol.GameTypeCreative,
		WorldSpawn:      protocol.UBlockPos{Y: 64},
		GameRules: []protocol.GameRule{
			{Name: "dodaylightcycle", CanBeModified: true, Value: false},
			{Name: "spawnradius", Value: uint32(5)},
		},
		PlayerPermissions:      protocol.PlayerPermissionOperator,
		BaseGameVersion:        "*",
		PlayerMovementSettings: protocol.PlayerMoveSettings{MovementType: protocol.MovementTypeServerWithRewind, RewindHistorySize: 40},
		Blocks:                 []protocol.BlockEntry{{Name: "custom:block", Properties: map[string]any{"menu_category": map[string]any{"category": "none"}}}},
		Items:                  []protocol.ItemEntry{{Name: "minecraft:stone", RuntimeID: 1}},
		GameVersion:            "1.21.0",
		PropertyData:           map[string]any{"type": "minecraft:player"},
		WorldTemplateID:        uuid.MustParse("3f0e1a3e-6e39-4b8a-9d6c-1c2d3e4f5a6b"),
	}

	decoded, _, err := Decode(Encode(pk))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !reflect.DeepEqual(decoded, pk) {
		t.Errorf("got %+v, want %+v", decoded, pk)
	}
	if table := decoded.(*StartGame).ItemTable(); table[1].Name != "minecraft:stone" {
		t.Errorf("item table holds %v", table)
	}
}

func TestCodecConcurrentUse(t *testing.T) {
	decoder := NewDecoder(NewPool(), nil)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			pk := &SetTime{Time: int32(i)}
			decoded, _, err := decoder.Decode(Encode(pk))
			if err != nil {
				t.Errorf("decode: %v", err)
				return
			}
			if decoded.(*SetTime).Time != int32(i) {
				t.Errorf("got %v, want %v", decoded.(*SetTime).Time, i)
			}
		}(i)
	}
	wg.Wait()
}

func TestEncodeContainerTooLarge(t *testing.T) {
	pk := &ResourcePackClientResponse{Response: protocol.PackResponseSendPacks, PacksToDownload: make([]string, 0x10000)}

	if err := (Encoder{}).EncodeTo(bytes.NewBuffer(nil), pk); !errors.Is(err, protocol.ErrContainerTooLarge) {
		t.Fatalf("got error %v, want ErrContainerTooLarge", err)
	}

	defer func() {
		err, _ := recover().(error)
		if !errors.Is(err, protocol.ErrContainerTooLarge) {
			t.Errorf("got panic %v, want ErrContainerTooLarge", err)
		}
	}()
	Encode(pk)
}
