package main

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/DanBellman/Wandern-to-kill-a-Box/audio"
	"github.com/DanBellman/Wandern-to-kill-a-Box/core"
	"github.com/DanBellman/Wandern-to-kill-a-Box/game"
	"github.com/DanBellman/Wandern-to-kill-a-Box/input"
	"github.com/DanBellman/Wandern-to-kill-a-Box/parameter"
	"github.com/DanBellman/Wandern-to-kill-a-Box/render"
)

// driver owns the terminal loop: events in, fixed ticks, one render per tick
type driver struct {
	screen  tcell.Screen
	session *game.Session
	orch    *render.Orchestrator
	input   *input.Collector
	sound   *audio.Service
	debug   *render.DebugRenderer
	log     zerolog.Logger
}

func (d *driver) run(ctx context.Context) {
	events := make(chan tcell.Event, 64)
	core.Go(func() {
		// PollEvent returns nil once the screen is finalized
		for {
			ev := d.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	})

	ticker := time.NewTicker(parameter.FrameUpdateInterval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return

		case ev, ok := <-events:
			if !ok {
				return
			}
			d.handle(ev)

		case now := <-ticker.C:
			frame := d.input.Frame(now)
			if frame.Quit {
				return
			}
			if frame.ToggleMute {
				d.sound.SetMuted(!d.sound.Muted())
				if !d.sound.Muted() {
					// Opens the speaker when the session started muted
					if err := d.sound.Start(ctx); err != nil {
						d.log.Warn().Err(err).Msg("audio start")
					}
				}
				d.log.Info().Bool("muted", d.sound.Muted()).Msg("audio toggled")
			}
			if frame.ToggleDebug {
				d.debug.Toggle()
			}

			dt := now.Sub(last)
			last = now
			d.session.Step(frame, dt)

			d.orch.RenderFrame(render.Context{
				Camera: d.orch.Camera(),
				HUD:    d.session.HUD(),
				Now:    now,
			})
		}
	}
}

func (d *driver) handle(ev tcell.Event) {
	switch ev.(type) {
	case *tcell.EventResize:
		d.screen.Sync()
		d.session.SetViewport(d.orch.Camera().Aspect())
		d.log.Debug().Float64("aspect", d.orch.Camera().Aspect()).Msg("resize")
	default:
		d.input.Handle(ev, time.Now())
	}
}
