package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/DanBellman/Wandern-to-kill-a-Box/audio"
	"github.com/DanBellman/Wandern-to-kill-a-Box/config"
	"github.com/DanBellman/Wandern-to-kill-a-Box/core"
	"github.com/DanBellman/Wandern-to-kill-a-Box/game"
	"github.com/DanBellman/Wandern-to-kill-a-Box/input"
	"github.com/DanBellman/Wandern-to-kill-a-Box/network"
	"github.com/DanBellman/Wandern-to-kill-a-Box/render"
	"github.com/DanBellman/Wandern-to-kill-a-Box/save"
	"github.com/DanBellman/Wandern-to-kill-a-Box/service"
)

var (
	configFlag  = flag.String("config", "", "Balance YAML file layered over the preset")
	presetFlag  = flag.String("preset", "classic", "Balance preset: classic, wide")
	keysFlag    = flag.String("keys", "", "Key binding YAML file merged over the defaults")
	debugFlag   = flag.Bool("debug", false, "Write logs to logs/boxslayer.log and show the metrics line")
	muteFlag    = flag.Bool("mute", false, "Start with audio muted")
	hudAddrFlag = flag.String("hud-addr", "", "Serve the HUD websocket feed on this address (e.g. :8090)")
	savesFlag   = flag.String("saves", "saves", "Directory for JSON save slots")
	sqliteFlag  = flag.String("sqlite", "", "Use an SQLite save database instead of the JSON directory")
	listFlag    = flag.Bool("list", false, "List saved slots and exit")
	slotFlag    = flag.String("slot", "quick", "Slot written and read by the save/load keys: quick or a number")
	loadFlag    = flag.String("load", "", "Load a slot (quick or a number) before play starts")
	deleteFlag  = flag.String("delete", "", "Delete a slot (quick or a number) and exit")
)

func main() {
	flag.Parse()

	log, closeLog, err := openLog(*debugFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "log: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	balance, err := loadBalance(*configFlag, *presetFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	keys, err := loadKeys(*keysFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	store, err := openStore(*savesFlag, *sqliteFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "saves: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if *listFlag {
		if err := listSlots(store); err != nil {
			fmt.Fprintf(os.Stderr, "list: %v\n", err)
			os.Exit(1)
		}
		return
	}
	if *deleteFlag != "" {
		if err := deleteSlot(store, *deleteFlag); err != nil {
			fmt.Fprintf(os.Stderr, "delete: %v\n", err)
			os.Exit(1)
		}
		return
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse()
	screen.HideCursor()

	// Panic recovery restores the terminal before the trace is printed
	core.SetCrashRestorer(screen.Fini)
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()
	defer screen.Fini()

	session := game.NewSession(balance, log, nil, nil)
	if err := prepareSession(session, store, *slotFlag, *loadFlag); err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	// Services
	sound := audio.NewService(log)
	feedCfg := network.DefaultConfig()
	feedCfg.Address = *hudAddrFlag
	feed := network.NewFeed(feedCfg, log)

	hub := service.NewHub()
	if err := hub.Register(sound); err != nil {
		log.Error().Err(err).Msg("register audio")
	}
	if err := hub.Register(feed); err != nil {
		log.Error().Err(err).Msg("register hud feed")
	}
	if err := hub.InitAll(*muteFlag, feedCfg, session.RunID); err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "services: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := hub.StartAll(ctx); err != nil {
		// Audio and the feed are optional; the game runs without them
		log.Warn().Err(err).Msg("services start")
	}
	defer hub.StopAll()

	notices := render.NewNotices(feed)
	session.World.Resources.ServiceBridge(sound)
	session.World.Resources.ServiceBridge(notices)

	orch := render.NewOrchestrator(screen)
	debugLayer := render.NewDebugRenderer(session.World.Resources.Status)
	if *debugFlag {
		debugLayer.Toggle()
	}
	orch.Register(render.NewWorldRenderer(session.World), render.PriorityWorld)
	orch.Register(render.NewHUDRenderer(), render.PriorityHUD)
	orch.Register(render.NewShopRenderer(session.Economy), render.PriorityShop)
	orch.Register(render.NewMessageRenderer(notices), render.PriorityMessage)
	orch.Register(debugLayer, render.PriorityDebug)

	session.SetViewport(orch.Camera().Aspect())

	d := &driver{
		screen:  screen,
		session: session,
		orch:    orch,
		input:   input.NewCollector(keys, orch),
		sound:   sound,
		debug:   debugLayer,
		log:     log,
	}
	d.run(ctx)

	log.Info().Int("money", session.Economy.Wallet.Balance()).Msg("session ended")
}

// openLog writes to logs/boxslayer.log in debug mode and discards otherwise
func openLog(debug bool) (zerolog.Logger, func(), error) {
	if !debug {
		return zerolog.Nop(), func() {}, nil
	}
	if err := os.MkdirAll("logs", 0o755); err != nil {
		return zerolog.Nop(), nil, err
	}
	f, err := os.OpenFile(filepath.Join("logs", "boxslayer.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), nil, err
	}
	log := zerolog.New(f).With().Timestamp().Logger().Level(zerolog.DebugLevel)
	return log, func() { f.Close() }, nil
}

// loadBalance resolves the preset or file, then applies environment overrides
func loadBalance(path, preset string) (config.Balance, error) {
	var (
		b   config.Balance
		err error
	)
	if path != "" {
		b, err = config.Load(path)
		if err != nil {
			return config.Balance{}, err
		}
	} else {
		var ok bool
		b, ok = config.Preset(preset)
		if !ok {
			return config.Balance{}, fmt.Errorf("unknown preset %q", preset)
		}
	}

	b = config.FromEnv(b)
	if err := b.Validate(); err != nil {
		return config.Balance{}, fmt.Errorf("invalid balance: %w", err)
	}
	return b, nil
}

func loadKeys(path string) (*input.KeyTable, error) {
	if path == "" {
		return input.DefaultKeyTable(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read keymap: %w", err)
	}
	override, err := input.LoadKeyConfig(data)
	if err != nil {
		return nil, err
	}
	return input.MergeKeyTable(input.DefaultKeyTable(), override), nil
}

func openStore(dir, sqlitePath string) (save.Store, error) {
	if sqlitePath != "" {
		return save.OpenSQLite(context.Background(), sqlitePath)
	}
	return save.NewFileStore(dir)
}

func listSlots(store save.Store) error {
	infos, err := store.List(context.Background())
	if err != nil {
		return err
	}
	if len(infos) == 0 {
		fmt.Println("no saves")
		return nil
	}
	for _, info := range infos {
		fmt.Printf("%-12s %s  %s\n", info.Name, info.SavedAt.Format("2006-01-02 15:04:05"), info.RunID)
	}
	return nil
}

// prepareSession attaches the store, selects the key slot and applies -load
func prepareSession(session *game.Session, store save.Store, slotRef, loadRef string) error {
	session.AttachStore(store)

	slot, err := save.ParseSlot(slotRef)
	if err != nil {
		return fmt.Errorf("slot: %w", err)
	}
	if err := session.SetSaveSlot(slot); err != nil {
		return err
	}

	if loadRef == "" {
		return nil
	}
	load, err := save.ParseSlot(loadRef)
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}
	if err := session.Load(context.Background(), store, load); err != nil {
		return fmt.Errorf("load %s: %w", save.DisplayName(load), err)
	}
	return nil
}

func deleteSlot(store save.Store, ref string) error {
	slot, err := save.ParseSlot(ref)
	if err != nil {
		return err
	}
	if err := store.Delete(context.Background(), slot); err != nil {
		return err
	}
	fmt.Printf("deleted %s\n", save.DisplayName(slot))
	return nil
}
