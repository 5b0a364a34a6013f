package protocol

// LevelEventType is the event of a LevelEvent packet.
type LevelEventType int32

const (
	LevelEventSoundClick LevelEventType = iota + 1000
	LevelEventSoundClickFail
	LevelEventSoundLaunch
	LevelEventSoundOpenDoor
	LevelEventSoundFizz
	LevelEventSoundFuse
	LevelEventSoundPlayRecording
	LevelEventSoundGhastWarning
	LevelEventSoundGhastFireball
	LevelEventSoundBlazeFireball
	LevelEventSoundZombieWoodenDoor
)

const (
	LevelEventParticlesShoot LevelEventType = iota + 2000
	LevelEventParticlesDestroyBlock
	LevelEventParticlesPotionSplash
	LevelEventParticlesEyeOfEnderDeath
	LevelEventParticlesMobBlockSpawn
	LevelEventParticleCropGrowth
	LevelEventParticleSoundGuardianGhost
	LevelEventParticleDeathSmoke
	LevelEventParticleDenyBlock
	LevelEventParticleGenericSpawn
)

const (
	LevelEventStartRaining LevelEventType = iota + 3001
	LevelEventStartThunderstorm
	LevelEventStopRaining
	LevelEventStopThunderstorm
	LevelEventGlobalPause
	LevelEventSimTimeStep
	LevelEventSimTimeScale
)

const (
	LevelEventStartBlockCracking LevelEventType = iota + 3600
	LevelEventStopBlockCracking
	LevelEventUpdateBlockCracking
)

const (
	LevelEventAllPlayersSleeping LevelEventType = 9800
	LevelEventSleepingPlayers    LevelEventType = 9801
	LevelEventJumpPrevented      LevelEventType = 9810
	LevelEventInvalid            LevelEventType = 9811
)

// LevelEventTypes ...
var LevelEventTypes = NewEnumSet("LevelEventType", LevelEventInvalid, map[LevelEventType]string{
	LevelEventSoundClick:                 "SoundClick",
	LevelEventSoundClickFail:             "SoundClickFail",
	LevelEventSoundLaunch:                "SoundLaunch",
	LevelEventSoundOpenDoor:              "SoundOpenDoor",
	LevelEventSoundFizz:                  "SoundFizz",
	LevelEventSoundFuse:                  "SoundFuse",
	LevelEventSoundPlayRecording:         "SoundPlayRecording",
	LevelEventSoundGhastWarning:          "SoundGhastWarning",
	LevelEventSoundGhastFireball:         "SoundGhastFireball",
	LevelEventSoundBlazeFireball:         "SoundBlazeFireball",
	LevelEventSoundZombieWoodenDoor:      "SoundZombieWoodenDoor",
	LevelEventParticlesShoot:             "ParticlesShoot",
	LevelEventParticlesDestroyBlock:      "ParticlesDestroyBlock",
	LevelEventParticlesPotionSplash:      "ParticlesPotionSplash",
	LevelEventParticlesEyeOfEnderDeath:   "ParticlesEyeOfEnderDeath",
	LevelEventParticlesMobBlockSpawn:     "ParticlesMobBlockSpawn",
	LevelEventParticleCropGrowth:         "ParticleCropGrowth",
	LevelEventParticleSoundGuardianGhost: "ParticleSoundGuardianGhost",
	LevelEventParticleDeathSmoke:         "ParticleDeathSmoke",
	LevelEventParticleDenyBlock:          "ParticleDenyBlock",
	LevelEventParticleGenericSpawn:       "ParticleGenericSpawn",
	LevelEventStartRaining:               "StartRaining",
	LevelEventStartThunderstorm:          "StartThunderstorm",
	LevelEventStopRaining:                "StopRaining",
	LevelEventStopThunderstorm:           "StopThunderstorm",
	LevelEventGlobalPause:                "GlobalPause",
	LevelEventSimTimeStep:                "SimTimeStep",
	LevelEventSimTimeScale:               "SimTimeScale",
	LevelEventStartBlockCracking:         "StartBlockCracking",
	LevelEventStopBlockCracking:          "StopBlockCracking",
	LevelEventUpdateBlockCracking:        "UpdateBlockCracking",
	LevelEventAllPlayersSleeping:         "AllPlayersSleeping",
	LevelEventSleepingPlayers:            "SleepingPlayers",
	LevelEventJumpPrevented:              "JumpPrevented",
	LevelEventInvalid:                    "Invalid",
})

// Marshal ...
func (x *LevelEventType) Marshal(io IO) { Varint32Enum(io, x, LevelEventTypes) }

// String ...
func (x LevelEventType) String() string { return LevelEventTypes.Name(x) }

// ActorEventType is the event of an ActorEvent packet.
type ActorEventType int32

const (
	ActorEventJump ActorEventType = iota + 1
	ActorEventHurt
	ActorEventDeath
	ActorEventStartAttacking
	ActorEventStopAttacking
	ActorEventTamingFailed
	ActorEventTamingSucceeded
	ActorEventShakeWetness
	_
	ActorEventEatGrass
	ActorEventFishhookBubble
	ActorEventFishhookFishPosition
	ActorEventFishhookHookTime
	ActorEventFishhookTease
	ActorEventSquidFleeing
	ActorEventZombieConverting
	ActorEventPlayAmbient
	ActorEventSpawnAlive
	ActorEventStartOfferFlower
	ActorEventStopOfferFlower
	ActorEventLoveHearts
	ActorEventVillagerAngry
	ActorEventVillagerHappy
	ActorEventWitchHatMagic
	ActorEventFireworksExplode
	ActorEventInLoveHearts
	ActorEventSilverfishMergeAnimation
	ActorEventGuardianAttackSound
	ActorEventDrinkPotion
	ActorEventThrowPotion
	ActorEventPrimeTNTCart
	ActorEventPrimeCreeper
	ActorEventAirSupply
	ActorEventAddPlayerLevels
	ActorEventGuardianMiningFatigue
	ActorEventAgentSwingArm
	ActorEventDragonStartDeathAnim
	ActorEventGroundDust
	ActorEventShake
)

const (
	ActorEventFeed ActorEventType = 57
)

const (
	ActorEventBabyAge ActorEventType = iota + 60
	ActorEventInstantDeath
	ActorEventNotifyTrade
	ActorEventLeashDestroyed
	ActorEventCaravanUpdated
	ActorEventTalismanActivate
	ActorEventUpdateStructureFeature
	ActorEventPlayerSpawnedMob
	ActorEventPuke
	ActorEventUpdateStackSize
	ActorEventStartSwimming
	ActorEventBalloonPop
	ActorEventTreasureHunt
	ActorEventSummonAgent
	ActorEventFinishedChargingItem
	ActorEventLandedOnGround
	ActorEventActorGrowUp
	ActorEventVibrationDetected
	ActorEventDrinkMilk
	ActorEventWetnessStop
	ActorEventInvalid
)

// ActorEventTypes ...
var ActorEventTypes = NewEnumSet("ActorEventType", ActorEventInvalid, map[ActorEventType]string{
	ActorEventJump:                     "Jump",
	ActorEventHurt:                     "Hurt",
	ActorEventDeath:                    "Death",
	ActorEventStartAttacking:           "StartAttacking",
	ActorEventStopAttacking:            "StopAttacking",
	ActorEventTamingFailed:             "TamingFailed",
	ActorEventTamingSucceeded:          "TamingSucceeded",
	ActorEventShakeWetness:             "ShakeWetness",
	ActorEventEatGrass:                 "EatGrass",
	ActorEventFishhookBubble:           "FishhookBubble",
	ActorEventFishhookFishPosition:     "FishhookFishPosition",
	ActorEventFishhookHookTime:         "FishhookHookTime",
	ActorEventFishhookTease:            "FishhookTease",
	ActorEventSquidFleeing:             "SquidFleeing",
	ActorEventZombieConverting:         "ZombieConverting",
	ActorEventPlayAmbient:              "PlayAmbient",
	ActorEventSpawnAlive:               "SpawnAlive",
	ActorEventStartOfferFlower:         "StartOfferFlower",
	ActorEventStopOfferFlower:          "StopOfferFlower",
	ActorEventLoveHearts:               "LoveHearts",
	ActorEventVillagerAngry:            "VillagerAngry",
	ActorEventVillagerHappy:            "VillagerHappy",
	ActorEventWitchHatMagic:            "WitchHatMagic",
	ActorEventFireworksExplode:         "FireworksExplode",
	ActorEventInLoveHearts:             "InLoveHearts",
	ActorEventSilverfishMergeAnimation: "SilverfishMergeAnimation",
	ActorEventGuardianAttackSound:      "GuardianAttackSound",
	ActorEventDrinkPotion:              "DrinkPotion",
	ActorEventThrowPotion:              "ThrowPotion",
	ActorEventPrimeTNTCart:             "PrimeTNTCart",
	ActorEventPrimeCreeper:             "PrimeCreeper",
	ActorEventAirSupply:                "AirSupply",
	ActorEventAddPlayerLevels:          "AddPlayerLevels",
	ActorEventGuardianMiningFatigue:    "GuardianMiningFatigue",
	ActorEventAgentSwingArm:            "AgentSwingArm",
	ActorEventDragonStartDeathAnim:     "DragonStartDeathAnim",
	ActorEventGroundDust:               "GroundDust",
	ActorEventShake:                    "Shake",
	ActorEventFeed:                     "Feed",
	ActorEventBabyAge:                  "BabyAge",
	ActorEventInstantDeath:             "InstantDeath",
	ActorEventNotifyTrade:              "NotifyTrade",
	ActorEventLeashDestroyed:           "LeashDestroyed",
	ActorEventCaravanUpdated:           "CaravanUpdated",
	ActorEventTalismanActivate:         "TalismanActivate",
	ActorEventUpdateStructureFeature:   "UpdateStructureFeature",
	ActorEventPlayerSpawnedMob:         "PlayerSpawnedMob",
	ActorEventPuke:                     "Puke",
	ActorEventUpdateStackSize:          "UpdateStackSize",
	ActorEventStartSwimming:            "StartSwimming",
	ActorEventBalloonPop:               "BalloonPop",
	ActorEventTreasureHunt:             "TreasureHunt",
	ActorEventSummonAgent:              "SummonAgent",
	ActorEventFinishedChargingItem:     "FinishedChargingItem",
	ActorEventLandedOnGround:           "LandedOnGround",
	ActorEventActorGrowUp:              "ActorGrowUp",
	ActorEventVibrationDetected:        "VibrationDetected",
	ActorEventDrinkMilk:                "DrinkMilk",
	ActorEventWetnessStop:              "WetnessStop",
	ActorEventInvalid:                  "Invalid",
})

// Marshal ...
func (x *ActorEventType) Marshal(io IO) { Varint32Enum(io, x, ActorEventTypes) }

// String ...
func (x ActorEventType) String() string { return ActorEventTypes.Name(x) }
