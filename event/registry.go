package event

var typeNames = [eventTypeCount]string{
	EventGameReset:          "GameReset",
	EventCollisionBegin:     "CollisionBegin",
	EventCollisionEnd:       "CollisionEnd",
	EventShopToggleRequest:  "ShopToggleRequest",
	EventPurchaseRequest:    "PurchaseRequest",
	EventWeaponCycleRequest: "WeaponCycleRequest",
	EventPurchaseCompleted:  "PurchaseCompleted",
	EventPurchaseRejected:   "PurchaseRejected",
	EventProximityChanged:   "ProximityChanged",
	EventWeaponChanged:      "WeaponChanged",
	EventCoinAbsorbed:       "CoinAbsorbed",
	EventCoinRejected:       "CoinRejected",
	EventCoinLanded:         "CoinLanded",
	EventShotFired:          "ShotFired",
	EventBeamStarted:        "BeamStarted",
	EventBeamStopped:        "BeamStopped",
	EventTargetHit:          "TargetHit",
	EventPauseToggle:        "PauseToggle",
	EventSessionRestored:    "SessionRestored",
	EventSessionSaved:       "SessionSaved",
}

// String returns the registered event name
func (t EventType) String() string {
	if t < 0 || t >= eventTypeCount {
		return "Unknown"
	}
	return typeNames[t]
}

// GetEventType resolves an event by name
func GetEventType(name string) (EventType, bool) {
	for t, n := range typeNames {
		if n == name {
			return EventType(t), true
		}
	}
	return 0, false
}
