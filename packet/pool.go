package packet

import (
	"fmt"
	"reflect"
	"slices"

	"github.com/scylladb/go-set/strset"
	"github.com/scylladb/go-set/u32set"
)

// registration binds a packet ID to the factory creating packets of that ID.
type registration struct {
	id      uint32
	factory func() Packet
}

// registry holds every packet known. It is the single source of truth for both encoding and
// decoding, and is not modified after the package is initialised.
var registry = []registration{
	{IDLogin, func() Packet { return &Login{} }},
	{IDPlayStatus, func() Packet { return &PlayStatus{} }},
	{IDServerToClientHandshake, func() Packet { return &ServerToClientHandshake{} }},
	{IDClientToServerHandshake, func() Packet { return &ClientToServerHandshake{} }},
	{IDDisconnect, func() Packet { return &Disconnect{} }},
	{IDResourcePacksInfo, func() Packet { return &ResourcePacksInfo{} }},
	{IDResourcePackStack, func() Packet { return &ResourcePackStack{} }},
	{IDResourcePackClientResponse, func() Packet { return &ResourcePackClientResponse{} }},
	{IDText, func() Packet { return &Text{} }},
	{IDSetTime, func() Packet { return &SetTime{} }},
	{IDStartGame, func() Packet { return &StartGame{} }},
	{IDAddPlayer, func() Packet { return &AddPlayer{} }},
	{IDTakeItemActor, func() Packet { return &TakeItemActor{} }},
	{IDMoveActorAbsolute, func() Packet { return &MoveActorAbsolute{} }},
	{IDMovePlayer, func() Packet { return &MovePlayer{} }},
	{IDPassengerJump, func() Packet { return &PassengerJump{} }},
	{IDUpdateBlock, func() Packet { return &UpdateBlock{} }},
	{IDAddPainting, func() Packet { return &AddPainting{} }},
	{IDTickSync, func() Packet { return &TickSync{} }},
	{IDLevelEvent, func() Packet { return &LevelEvent{} }},
	{IDBlockEvent, func() Packet { return &BlockEvent{} }},
	{IDActorEvent, func() Packet { return &ActorEvent{} }},
	{IDMobEffect, func() Packet { return &MobEffect{} }},
	{IDUpdateAttributes, func() Packet { return &UpdateAttributes{} }},
	{IDInventoryTransaction, func() Packet { return &InventoryTransaction{} }},
	{IDInteract, func() Packet { return &Interact{} }},
	{IDBlockPickRequest, func() Packet { return &BlockPickRequest{} }},
	{IDActorPickRequest, func() Packet { return &ActorPickRequest{} }},
	{IDPlayerAction, func() Packet { return &PlayerAction{} }},
	{IDHurtArmour, func() Packet { return &HurtArmour{} }},
	{IDNetworkSettings, func() Packet { return &NetworkSettings{} }},
	{IDRequestNetworkSettings, func() Packet { return &RequestNetworkSettings{} }},
}

func init() {
	if err := validate(registry); err != nil {
		panic(err)
	}
}

// validate checks that registrations map IDs to packet types one to one, and that the packets
// created by every factory report the ID they are registered with.
func validate(registrations []registration) error {
	ids := u32set.NewWithSize(len(registrations))
	types := strset.NewWithSize(len(registrations))
	for _, r := range registrations {
		pk := r.factory()
		name := reflect.TypeOf(pk).String()
		if ids.Has(r.id) {
			return fmt.Errorf("packet ID %#x registered more than once", r.id)
		}
		if types.Has(name) {
			return fmt.Errorf("packet %v registered more than once", name)
		}
		if pk.ID() != r.id {
			return fmt.Errorf("packet %v registered with ID %#x but has ID %#x", name, r.id, pk.ID())
		}
		ids.Add(r.id)
		types.Add(name)
	}
	return nil
}

// Pool is a map holding packets indexed by a packet ID.
type Pool map[uint32]func() Packet

// NewPool returns a new pool with all packets known to the registry.
func NewPool() Pool {
	pool := make(Pool, len(registry))
	for _, r := range registry {
		pool[r.id] = r.factory
	}
	return pool
}

// IDs returns the IDs of all registered packets in ascending order.
func IDs() []uint32 {
	ids := make([]uint32, 0, len(registry))
	for _, r := range registry {
		ids = append(ids, r.id)
	}
	slices.Sort(ids)
	return ids
}

// IDOf returns the ID of pk. It is equal to pk.ID() for every registered packet.
func IDOf(pk Packet) uint32 {
	return pk.ID()
}

// Name returns the name of the packet registered with id, and false if no packet is registered
// with it.
func Name(id uint32) (string, bool) {
	for _, r := range registry {
		if r.id == id {
			return reflect.TypeOf(r.factory()).Elem().Name(), true
		}
	}
	return "", false
}
