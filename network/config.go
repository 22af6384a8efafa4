package network

import (
	"time"

	"github.com/DanBellman/Wandern-to-kill-a-Box/parameter"
)

// Config holds HUD feed configuration
type Config struct {
	// Address to bind; empty disables the feed
	Address string

	// Path serving the websocket upgrade
	Path string

	// Timing
	WriteTimeout time.Duration
	PingInterval time.Duration

	// Per-client outbound queue; slow clients beyond it are dropped
	SendQueueSize int

	ReadBufferSize  int
	WriteBufferSize int
}

// DefaultConfig returns defaults with the feed disabled
func DefaultConfig() *Config {
	return &Config{
		Address:         "",
		Path:            "/hud",
		WriteTimeout:    parameter.HUDWriteTimeout,
		PingInterval:    parameter.HUDPingInterval,
		SendQueueSize:   parameter.HUDClientSendQueue,
		ReadBufferSize:  1024,
		WriteBufferSize: 4096,
	}
}
