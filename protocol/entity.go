package protocol

const (
	// BaseFlySpeed is the fly speed of an ability layer that does not change it.
	BaseFlySpeed float32 = 0.05
	// BaseWalkSpeed is the walk speed of an ability layer that does not change it.
	BaseWalkSpeed float32 = 0.1
)

// AbilityLayerType ...
type AbilityLayerType uint16

const (
	AbilityLayerTypeCache AbilityLayerType = iota
	AbilityLayerTypeBase
	AbilityLayerTypeSpectator
	AbilityLayerTypeCommands
	AbilityLayerTypeEditor
	AbilityLayerTypeInvalid
)

// AbilityLayerTypes ...
var AbilityLayerTypes = NewEnumSet("AbilityLayerType", AbilityLayerTypeInvalid, map[AbilityLayerType]string{
	AbilityLayerTypeCache:     "Cache",
	AbilityLayerTypeBase:      "Base",
	AbilityLayerTypeSpectator: "Spectator",
	AbilityLayerTypeCommands:  "Commands",
	AbilityLayerTypeEditor:    "Editor",
	AbilityLayerTypeInvalid:   "Invalid",
})

// Marshal ...
func (x *AbilityLayerType) Marshal(io IO) { Uint16Enum(io, x, AbilityLayerTypes) }

// String ...
func (x AbilityLayerType) String() string { return AbilityLayerTypes.Name(x) }

// AbilityData ...
type AbilityData struct {
	EntityUniqueID int64
}

// Marshal ...
func (x *AbilityData) Marshal(io IO) {
	io.Int64(&x.EntityUniqueID)
}

// AbilityLayer ...
type AbilityLayer struct {
	Type      AbilityLayerType
	FlySpeed  float32
	WalkSpeed float32
}

// Marshal ...
func (x *AbilityLayer) Marshal(io IO) {
	x.Type.Marshal(io)
	io.Float32(&x.FlySpeed)
	io.Float32(&x.WalkSpeed)
}

// AttributeOperation is the operation a modifier applies to an attribute.
type AttributeOperation int32

const (
	AttributeOperationAdd AttributeOperation = iota
	AttributeOperationMultiplyBase
	AttributeOperationMultiplyTotal
	AttributeOperationCap
	AttributeOperationInvalid
)

// AttributeOperations ...
var AttributeOperations = NewEnumSet("AttributeOperation", AttributeOperationInvalid, map[AttributeOperation]string{
	AttributeOperationAdd:           "Add",
	AttributeOperationMultiplyBase:  "MultiplyBase",
	AttributeOperationMultiplyTotal: "MultiplyTotal",
	AttributeOperationCap:           "Cap",
	AttributeOperationInvalid:       "Invalid",
})

// Marshal ...
func (x *AttributeOperation) Marshal(io IO) { Int32Enum(io, x, AttributeOperations) }

// String ...
func (x AttributeOperation) String() string { return AttributeOperations.Name(x) }

// AttributeTargetOperand is the value of an attribute a modifier applies to.
type AttributeTargetOperand int32

const (
	AttributeTargetOperandMin AttributeTargetOperand = iota
	AttributeTargetOperandMax
	AttributeTargetOperandCurrent
	AttributeTargetOperandInvalid
)

// AttributeTargetOperands ...
var AttributeTargetOperands = NewEnumSet("AttributeTargetOperand", AttributeTargetOperandInvalid, map[AttributeTargetOperand]string{
	AttributeTargetOperandMin:     "Min",
	AttributeTargetOperandMax:     "Max",
	AttributeTargetOperandCurrent: "Current",
	AttributeTargetOperandInvalid: "Invalid",
})

// Marshal ...
func (x *AttributeTargetOperand) Marshal(io IO) { Int32Enum(io, x, AttributeTargetOperands) }

// String ...
func (x AttributeTargetOperand) String() string { return AttributeTargetOperands.Name(x) }

// AttributeModifier temporarily changes the value of an attribute.
type AttributeModifier struct {
	ID           string
	Name         string
	Amount       float32
	Operation    AttributeOperation
	Operand      AttributeTargetOperand
	Serializable bool
}

// Marshal ...
func (x *AttributeModifier) Marshal(io IO) {
	io.String(&x.ID)
	io.String(&x.Name)
	io.Float32(&x.Amount)
	x.Operation.Marshal(io)
	x.Operand.Marshal(io)
	io.Bool(&x.Serializable)
}

// Attribute is an attribute of an entity, such as its health or movement speed.
type Attribute struct {
	Min       float32
	Max       float32
	Value     float32
	Default   float32
	Name      string
	Modifiers []AttributeModifier
}

// Marshal ...
func (x *Attribute) Marshal(io IO) {
	io.Float32(&x.Min)
	io.Float32(&x.Max)
	io.Float32(&x.Value)
	io.Float32(&x.Default)
	io.String(&x.Name)
	Slice(io, &x.Modifiers)
}

// MobEffectOperation is the operation of a MobEffect packet.
type MobEffectOperation uint8

const (
	MobEffectAdd MobEffectOperation = iota + 1
	MobEffectModify
	MobEffectRemove
	MobEffectInvalid
)

// MobEffectOperations ...
var MobEffectOperations = NewEnumSet("MobEffectOperation", MobEffectInvalid, map[MobEffectOperation]string{
	MobEffectAdd:     "Add",
	MobEffectModify:  "Modify",
	MobEffectRemove:  "Remove",
	MobEffectInvalid: "Invalid",
})

// Marshal ...
func (x *MobEffectOperation) Marshal(io IO) { Uint8Enum(io, x, MobEffectOperations) }

// String ...
func (x MobEffectOperation) String() string { return MobEffectOperations.Name(x) }

// MobEffectType is the type of an effect applied to an entity.
type MobEffectType int32

const (
	EffectSpeed MobEffectType = iota + 1
	EffectSlowness
	EffectHaste
	EffectMiningFatigue
	EffectStrength
	EffectInstantHealth
	EffectInstantDamage
	EffectJumpBoost
	EffectNausea
	EffectRegeneration
	EffectResistance
	EffectFireResistance
	EffectWaterBreathing
	EffectInvisibility
	EffectBlindness
	EffectNightVision
	EffectHunger
	EffectWeakness
	EffectPoison
	EffectWither
	EffectHealthBoost
	EffectAbsorption
	EffectSaturation
	EffectLevitation
	EffectFatalPoison
	EffectConduitPower
	EffectSlowFalling
	EffectInvalid
)

// MobEffectTypes ...
var MobEffectTypes = NewEnumSet("MobEffectType", EffectInvalid, map[MobEffectType]string{
	EffectSpeed:          "Speed",
	EffectSlowness:       "Slowness",
	EffectHaste:          "Haste",
	EffectMiningFatigue:  "MiningFatigue",
	EffectStrength:       "Strength",
	EffectInstantHealth:  "InstantHealth",
	EffectInstantDamage:  "InstantDamage",
	EffectJumpBoost:      "JumpBoost",
	EffectNausea:         "Nausea",
	EffectRegeneration:   "Regeneration",
	EffectResistance:     "Resistance",
	EffectFireResistance: "FireResistance",
	EffectWaterBreathing: "WaterBreathing",
	EffectInvisibility:   "Invisibility",
	EffectBlindness:      "Blindness",
	EffectNightVision:    "NightVision",
	EffectHunger:         "Hunger",
	EffectWeakness:       "Weakness",
	EffectPoison:         "Poison",
	EffectWither:         "Wither",
	EffectHealthBoost:    "HealthBoost",
	EffectAbsorption:     "Absorption",
	EffectSaturation:     "Saturation",
	EffectLevitation:     "Levitation",
	EffectFatalPoison:    "FatalPoison",
	EffectConduitPower:   "ConduitPower",
	EffectSlowFalling:    "SlowFalling",
	EffectInvalid:        "Invalid",
})

// Marshal ...
func (x *MobEffectType) Marshal(io IO) { Varint32Enum(io, x, MobEffectTypes) }

// String ...
func (x MobEffectType) String() string { return MobEffectTypes.Name(x) }

// NPCRequestType ...
type NPCRequestType uint8

const (
	NPCRequestSetAction NPCRequestType = iota
	NPCRequestExecuteCommandAction
	NPCRequestExecuteClosingCommands
	NPCRequestSetName
	NPCRequestSetSkin
	NPCRequestSetInteractionText
	NPCRequestExecuteOpeningCommands
	NPCRequestInvalid
)

// NPCRequestTypes ...
var NPCRequestTypes = NewEnumSet("NPCRequestType", NPCRequestInvalid, map[NPCRequestType]string{
	NPCRequestSetAction:              "SetAction",
	NPCRequestExecuteCommandAction:   "ExecuteCommandAction",
	NPCRequestExecuteClosingCommands: "ExecuteClosingCommands",
	NPCRequestSetName:                "SetName",
	NPCRequestSetSkin:                "SetSkin",
	NPCRequestSetInteractionText:     "SetInteractionText",
	NPCRequestExecuteOpeningCommands: "ExecuteOpeningCommands",
	NPCRequestInvalid:                "Invalid",
})

// Marshal ...
func (x *NPCRequestType) Marshal(io IO) { Uint8Enum(io, x, NPCRequestTypes) }

// String ...
func (x NPCRequestType) String() string { return NPCRequestTypes.Name(x) }

// MovementMode is the mode of a MovePlayer packet.
type MovementMode int32

const (
	MovementModeNormal MovementMode = iota
	MovementModeReset
	MovementModeTeleport
	MovementModeRotation
	MovementModeInvalid
)

// MovementModes ...
var MovementModes = NewEnumSet("MovementMode", MovementModeInvalid, map[MovementMode]string{
	MovementModeNormal:   "Normal",
	MovementModeReset:    "Reset",
	MovementModeTeleport: "Teleport",
	MovementModeRotation: "Rotation",
	MovementModeInvalid:  "Invalid",
})

// Marshal ...
func (x *MovementMode) Marshal(io IO) { Int32Enum(io, x, MovementModes) }

// String ...
func (x MovementMode) String() string { return MovementModes.Name(x) }

// TeleportCause is the cause of a teleport in a MovePlayer packet.
type TeleportCause uint8

const (
	TeleportCauseUnknown TeleportCause = iota
	TeleportCauseProjectile
	TeleportCauseChorusFruit
	TeleportCauseCommand
	TeleportCauseBehaviour
)

// TeleportCauses ...
var TeleportCauses = NewEnumSet("TeleportCause", TeleportCauseUnknown, map[TeleportCause]string{
	TeleportCauseUnknown:     "Unknown",
	TeleportCauseProjectile:  "Projectile",
	TeleportCauseChorusFruit: "ChorusFruit",
	TeleportCauseCommand:     "Command",
	TeleportCauseBehaviour:   "Behaviour",
})

// Marshal ...
func (x *TeleportCause) Marshal(io IO) { Uint8Enum(io, x, TeleportCauses) }

// String ...
func (x TeleportCause) String() string { return TeleportCauses.Name(x) }
