package packet

const (
	IDLogin uint32 = iota + 0x01
	IDPlayStatus
	IDServerToClientHandshake
	IDClientToServerHandshake
	IDDisconnect
	IDResourcePacksInfo
	IDResourcePackStack
	IDResourcePackClientResponse
	IDText
	IDSetTime
	IDStartGame
	IDAddPlayer
)

const (
	IDTakeItemActor uint32 = iota + 0x11
	IDMoveActorAbsolute
	IDMovePlayer
	IDPassengerJump
	IDUpdateBlock
	IDAddPainting
	IDTickSync
)

const (
	IDLevelEvent uint32 = iota + 0x19
	IDBlockEvent
	IDActorEvent
	IDMobEffect
	IDUpdateAttributes
	IDInventoryTransaction
)

const (
	IDInteract uint32 = iota + 0x21
	IDBlockPickRequest
	IDActorPickRequest
	IDPlayerAction
)

const (
	IDHurtArmour             uint32 = 0x26
	IDNetworkSettings        uint32 = 0x8f
	IDRequestNetworkSettings uint32 = 0xc1
)
