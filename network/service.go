package network

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

// Feed is the HUD websocket service
// It implements service.Service and Publisher
type Feed struct {
	config *Config
	log    zerolog.Logger
	runID  string

	hub      *Hub
	upgrader websocket.Upgrader
	server   *http.Server
	listener net.Listener

	initialized bool

	mu      sync.Mutex
	running bool
	done    chan struct{}
}

// NewFeed creates a feed service; a nil config uses defaults
func NewFeed(cfg *Config, log zerolog.Logger) *Feed {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Feed{
		config: cfg,
		log:    log.With().Str("service", "hud-feed").Logger(),
	}
}

func (f *Feed) Name() string { return "hud-feed" }

func (f *Feed) Dependencies() []string { return nil }

// Init accepts an optional *Config and an optional run id string
func (f *Feed) Init(args ...any) error {
	for _, arg := range args {
		switch v := arg.(type) {
		case *Config:
			f.config = v
		case string:
			f.runID = v
		}
	}
	f.initialized = true
	f.upgrader = websocket.Upgrader{
		ReadBufferSize:  f.config.ReadBufferSize,
		WriteBufferSize: f.config.WriteBufferSize,
		// Local read-only feed, any origin may watch
		CheckOrigin: func(r *http.Request) bool { return true },
	}
	return nil
}

// Enabled reports whether an address is configured
func (f *Feed) Enabled() bool {
	return f.config.Address != ""
}

// Start binds the listener and serves until ctx is cancelled or Stop is called
func (f *Feed) Start(ctx context.Context) error {
	if !f.Enabled() {
		return nil
	}
	if !f.initialized {
		return errors.New("hud feed: not initialized")
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.running {
		return nil
	}

	ln, err := net.Listen("tcp", f.config.Address)
	if err != nil {
		return fmt.Errorf("hud feed listen %s: %w", f.config.Address, err)
	}
	f.listener = ln
	f.hub = NewHub(f.log)

	mux := http.NewServeMux()
	mux.HandleFunc(f.config.Path, f.serveWs)
	f.server = &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	runCtx, cancel := context.WithCancel(ctx)
	hub := f.hub
	f.done = make(chan struct{})
	go func() {
		defer close(f.done)
		hub.Run(runCtx)
	}()
	go func() {
		defer cancel()
		if err := f.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			f.log.Error().Err(err).Msg("hud feed serve")
		}
	}()

	f.running = true
	f.log.Info().Str("addr", ln.Addr().String()).Msg("hud feed listening")
	return nil
}

// Addr returns the bound address, empty when not running
func (f *Feed) Addr() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listener == nil {
		return ""
	}
	return f.listener.Addr().String()
}

// Stop shuts the server down; idempotent
func (f *Feed) Stop() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.running {
		return nil
	}
	f.running = false

	ctx, cancel := context.WithTimeout(context.Background(), f.config.WriteTimeout)
	defer cancel()
	err := f.server.Shutdown(ctx)
	<-f.done
	f.listener = nil
	return err
}

func (f *Feed) serveWs(w http.ResponseWriter, r *http.Request) {
	conn, err := f.upgrader.Upgrade(w, r, nil)
	if err != nil {
		f.log.Debug().Err(err).Msg("hud feed upgrade")
		return
	}

	c := &Client{
		hub:          f.hub,
		conn:         conn,
		send:         make(chan []byte, f.config.SendQueueSize),
		remote:       r.RemoteAddr,
		writeTimeout: f.config.WriteTimeout,
		pingInterval: f.config.PingInterval,
	}
	if !f.hub.attach(c) {
		conn.Close()
		return
	}

	go c.writePump()
	go c.readPump()
}

// PublishHUD broadcasts a HUD frame; dropped when the feed is idle or congested
func (f *Feed) PublishHUD(state HUDState) {
	f.publish(MessageHUD, state)
}

// PublishEvent broadcasts a gameplay notice
func (f *Feed) PublishEvent(notice EventNotice) {
	f.publish(MessageEvent, notice)
}

func (f *Feed) publish(kind string, payload any) {
	f.mu.Lock()
	running, hub := f.running, f.hub
	f.mu.Unlock()
	if !running {
		return
	}

	data, err := json.Marshal(Message{Type: kind, Payload: payload, Sender: f.runID})
	if err != nil {
		f.log.Warn().Err(err).Str("type", kind).Msg("hud feed encode")
		return
	}
	hub.Broadcast(data)
}
