package render

import (
	"time"

	"github.com/DanBellman/Wandern-to-kill-a-Box/network"
)

// Context provides frame state for renderers, passed by value
type Context struct {
	Camera Camera
	HUD    network.HUDState
	Now    time.Time
}
