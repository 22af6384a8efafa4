package event

// EventType represents the type of game event
type EventType int

const (
	// EventGameReset returns every system to its start-of-session state
	// Trigger: Session restore, new game
	// Consumer: All stateful systems | Payload: nil
	EventGameReset EventType = iota

	// === Collision Event ===

	// EventCollisionBegin signals two colliders started overlapping
	// Trigger: CollisionSystem | Consumer: CombatSystem, CoinSystem, ShopSystem
	// Payload: *CollisionPayload
	EventCollisionBegin

	// EventCollisionEnd signals two colliders stopped overlapping or one was removed
	// Trigger: CollisionSystem | Consumer: CoinSystem, ShopSystem
	// Payload: *CollisionPayload
	EventCollisionEnd

	// === Intent Event ===

	// EventShopToggleRequest asks to open or close the shop panel
	// Trigger: InputSystem | Consumer: ShopSystem | Payload: nil
	EventShopToggleRequest

	// EventPurchaseRequest asks to buy the item in a slot of the nearby shop
	// Trigger: InputSystem | Consumer: ShopSystem | Payload: *PurchaseRequestPayload
	EventPurchaseRequest

	// EventWeaponCycleRequest asks to equip the next owned weapon
	// Trigger: InputSystem | Consumer: WeaponSystem | Payload: nil
	EventWeaponCycleRequest

	// === Economy Event ===

	// EventPurchaseCompleted reports a committed purchase
	// Trigger: ShopSystem | Consumer: AudioSystem, BroadcastSystem | Payload: *PurchasePayload
	EventPurchaseCompleted

	// EventPurchaseRejected reports a rejected purchase and why
	// Trigger: ShopSystem | Consumer: AudioSystem, BroadcastSystem | Payload: *PurchaseRejectedPayload
	EventPurchaseRejected

	// EventProximityChanged reports the player entered or left a shop zone
	// Trigger: ShopSystem | Consumer: BroadcastSystem | Payload: *ProximityPayload
	EventProximityChanged

	// EventWeaponChanged reports a new equipped weapon
	// Trigger: WeaponSystem | Consumer: AudioSystem, BroadcastSystem | Payload: *WeaponChangedPayload
	EventWeaponChanged

	// EventCoinAbsorbed reports a pickup converted into currency
	// Trigger: CoinSystem | Consumer: AudioSystem | Payload: *CoinPayload
	EventCoinAbsorbed

	// EventCoinRejected reports a pickup left in the world because the buffer is full
	// Trigger: CoinSystem | Consumer: AudioSystem | Payload: *CoinPayload
	EventCoinRejected

	// EventCoinLanded reports a pickup reaching the ground
	// Trigger: CoinSystem | Consumer: none by default | Payload: *CoinPayload
	EventCoinLanded

	// === Combat Event ===

	// EventShotFired reports a discrete weapon discharge
	// Trigger: WeaponSystem | Consumer: AudioSystem | Payload: *ShotPayload
	EventShotFired

	// EventBeamStarted and EventBeamStopped bracket a continuous beam
	// Trigger: WeaponSystem | Consumer: AudioSystem | Payload: *ShotPayload
	EventBeamStarted
	EventBeamStopped

	// EventTargetHit reports a credited hit and the coin burst it produced
	// Trigger: CombatSystem | Consumer: AudioSystem | Payload: *TargetHitPayload
	EventTargetHit

	// === Session Event ===

	// EventPauseToggle freezes or resumes the simulation
	// Trigger: Session | Consumer: TimerSystem, BroadcastSystem | Payload: nil
	EventPauseToggle

	// EventSessionRestored reports state loaded from a save
	// Trigger: Session | Consumer: BroadcastSystem | Payload: *SessionPayload
	EventSessionRestored

	// EventSessionSaved reports state written to a save slot
	// Trigger: Session | Consumer: BroadcastSystem | Payload: *SessionPayload
	EventSessionSaved

	eventTypeCount
)

// GameEvent represents a single game event with metadata
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}
