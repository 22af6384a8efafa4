package parameter

import "time"

// HUD feed
const (
	// HUDBroadcastInterval throttles HUD snapshots pushed to feed clients
	HUDBroadcastInterval = 100 * time.Millisecond

	HUDClientSendQueue = 16
	HUDWriteTimeout    = 5 * time.Second
	HUDPingInterval    = 30 * time.Second
)
