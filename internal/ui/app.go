package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/gdamore/tcell/v2"
	"github.com/leonelquinteros/gotext"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/darkmine/internal/game"
	"github.com/samdwyer/darkmine/internal/gamedata"
	"github.com/samdwyer/darkmine/internal/telemetry"
)

// frameInterval paces redraws while effects are animating.
const frameInterval = 50 * time.Millisecond

// App runs the terminal game loop around an engine.
type App struct {
	screen   *Screen
	renderer *Renderer
	engine   *game.Engine
	powers   *gamedata.PowerRegistry
	clock    func() time.Time
	copyText func(string) error
	notice   string
	running  bool
}

// NewApp wires a screen and an engine together.
func NewApp(screen *Screen, engine *game.Engine, tiles *gamedata.TileRegistry, enemies *gamedata.EnemyRegistry, powers *gamedata.PowerRegistry) *App {
	return &App{
		screen:   screen,
		renderer: NewRenderer(screen, tiles, enemies, powers),
		engine:   engine,
		powers:   powers,
		clock:    time.Now,
		copyText: clipboard.WriteAll,
		running:  true,
	}
}

// Run executes the main game loop until the player quits or ctx is done.
// The screen is closed on return.
func (a *App) Run(ctx context.Context) error {
	defer a.screen.Close()

	events := make(chan tcell.Event)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for a.running {
		now := a.clock()
		a.engine.Purge(now)
		a.renderer.Render(a.engine.Snapshot(now), now, a.notice)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			a.handleEvent(ctx, ev)
		case <-ticker.C:
		}
	}
	return nil
}

// handleEvent processes a single input event.
func (a *App) handleEvent(ctx context.Context, ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		a.handleKey(ctx, DecodeKey(ev.Key(), ev.Rune(), a.powers))
	case *tcell.EventResize:
		a.screen.Sync()
	}
}

// handleKey applies one decoded key press according to the engine status.
func (a *App) handleKey(ctx context.Context, in Input) {
	if in.Command == CmdQuit {
		a.running = false
		return
	}

	switch a.engine.Status() {
	case game.StatusStart:
		a.engine.Start(ctx)
		a.notice = ""
		return
	case game.StatusGameOver:
		switch in.Command {
		case CmdRestart:
			a.engine.Restart(ctx)
			a.notice = ""
		case CmdCopy:
			a.copySummary(ctx)
		}
		return
	}

	a.notice = ""
	switch in.Command {
	case CmdMove:
		a.engine.HandleAction(ctx, in.Direction)
	case CmdPower:
		a.engine.HandlePower(ctx, in.Power)
	case CmdRestart:
		a.engine.Restart(ctx)
	}
}

func (a *App) copySummary(ctx context.Context) {
	_, span := telemetry.Tracer("ui").Start(ctx, "ui.copy_summary")
	defer span.End()

	summary := a.engine.Snapshot(a.clock()).Summary
	if summary == nil {
		return
	}
	text := "DarkMine " + summary.SessionID + "\n" + strings.Join(SummaryLines(summary), "\n")
	if err := a.copyText(text); err != nil {
		span.SetAttributes(attribute.String("error", err.Error()))
		a.notice = fmt.Sprintf("%s: %v", gotext.Get("Clipboard unavailable"), err)
		return
	}
	a.notice = gotext.Get("Summary copied to clipboard.")
}
