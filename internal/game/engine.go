package game

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/darkmine/internal/effects"
	"github.com/samdwyer/darkmine/internal/entity"
	"github.com/samdwyer/darkmine/internal/gamedata"
	"github.com/samdwyer/darkmine/internal/telemetry"
	"github.com/samdwyer/darkmine/internal/world"
)

// Engine owns one DarkMine session: the mine, the miner, the bats and the
// effect queue. Every change happens inside Start, Restart, HandleAction or
// HandlePower, and each call resolves completely before returning.
//
// An Engine is not safe for concurrent use.
type Engine struct {
	cfg    Config
	seed   int64
	rng    *rand.Rand
	tracer trace.Tracer

	sessionID string
	status    Status
	state     turnState
	effects   *effects.Queue
	turns     int
	summary   *Summary
}

// New creates an engine on the title screen. Call Start to generate a mine.
func New(cfg Config) (*Engine, error) {
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Engine{
		cfg:     cfg,
		seed:    seed,
		rng:     rand.New(rand.NewSource(seed)),
		tracer:  telemetry.Tracer("game"),
		status:  StatusStart,
		effects: effects.NewQueue(),
		state:   turnState{Message: MsgNotStarted},
	}, nil
}

// Seed returns the seed the engine's random source was created with.
func (e *Engine) Seed() int64 { return e.seed }

// Status returns where the session is in its lifecycle.
func (e *Engine) Status() Status { return e.status }

// SessionID identifies the current game. It changes on every Start and Restart.
func (e *Engine) SessionID() string { return e.sessionID }

// Start begins the first game. It does nothing while a game is in progress.
func (e *Engine) Start(ctx context.Context) {
	if e.status == StatusPlaying {
		return
	}
	e.begin(ctx)
}

// Restart throws away the current game and generates a fresh mine.
// Later games draw from the same random source, so they differ from the
// first one while staying reproducible for a fixed seed.
func (e *Engine) Restart(ctx context.Context) {
	e.begin(ctx)
}

func (e *Engine) begin(ctx context.Context) {
	ctx, span := e.tracer.Start(ctx, "game.start")
	defer span.End()

	e.sessionID = uuid.NewString()
	e.turns = 0
	e.summary = nil
	e.effects.Clear()

	start := world.Position{X: e.cfg.Width / 2, Y: e.cfg.Height / 2}
	grid := world.Generate(ctx, e.rng, e.cfg.Width, e.cfg.Height, start, e.cfg.Distribution)
	enemies := entity.SpawnEnemies(grid, start, e.rng, e.cfg.Enemies)

	e.state = applyVisibility(turnState{
		Grid:    grid,
		Player:  e.initialPlayer(start),
		Enemies: enemies,
		Message: MsgWelcome,
	})
	e.status = StatusPlaying

	span.SetAttributes(
		attribute.String("session.id", e.sessionID),
		attribute.Int64("session.seed", e.seed),
		attribute.Int("enemies.spawned", len(enemies)),
		attribute.Int("enemies.active", entity.ActiveCount(e.state.Enemies)),
	)
}

func (e *Engine) initialPlayer(start world.Position) entity.Player {
	return entity.NewPlayer(e.cfg.Player, start)
}

// HandleAction resolves one directional action and the enemy turn after it.
func (e *Engine) HandleAction(ctx context.Context, dir world.Direction) Result {
	ctx, span := e.tracer.Start(ctx, "game.action")
	defer span.End()
	span.SetAttributes(
		attribute.String("session.id", e.sessionID),
		attribute.String("action.direction", dir.String()),
	)

	if r, ok := e.rejectUnlessPlaying(); !ok {
		span.SetAttributes(attribute.String("action.outcome", r.Outcome.String()))
		return r
	}

	next, ev := applyMove(e.state, dir)
	span.SetAttributes(attribute.String("action.kind", ev.Kind.String()))
	if ev.Kind == moveRejected {
		e.state.Message = next.Message
		span.SetAttributes(attribute.String("action.outcome", OutcomeRejected.String()))
		return Result{Outcome: OutcomeRejected, Message: next.Message}
	}

	e.turns++
	now := e.cfg.Clock()
	if ev.Mined != nil {
		e.effects.AddSwing(ev.Target, dir, now)
		e.effects.AddParticle(ev.Mined.At, ev.Mined.Particle, now)
		span.SetAttributes(attribute.String("action.tile", ev.Mined.Tile.String()))
	}

	next = applyVisibility(next)

	result := e.finishTurn(ctx, next, next.Player)
	e.annotate(span, result)
	return result
}

// HandlePower spends coal on a power and runs the enemy turn after it.
// Without enough coal nothing changes apart from the message.
func (e *Engine) HandlePower(ctx context.Context, power PowerType) Result {
	ctx, span := e.tracer.Start(ctx, "game.power")
	defer span.End()
	span.SetAttributes(
		attribute.String("session.id", e.sessionID),
		attribute.String("power.type", power.String()),
	)

	if r, ok := e.rejectUnlessPlaying(); !ok {
		span.SetAttributes(attribute.String("action.outcome", r.Outcome.String()))
		return r
	}

	def := e.powerDef(power)
	if e.state.Inventory.Coal < def.Cost {
		e.state.Message = MsgNoCoal
		span.SetAttributes(
			attribute.String("action.outcome", OutcomeRejected.String()),
			attribute.Int("inventory.coal", e.state.Inventory.Coal),
		)
		return Result{Outcome: OutcomeRejected, Message: MsgNoCoal}
	}

	e.turns++
	next, mined, reactTo := applyPower(e.state, power, def)

	now := e.cfg.Clock()
	for _, cell := range mined {
		e.effects.AddParticle(cell.At, cell.Particle, now)
	}
	span.SetAttributes(
		attribute.Int("power.cost", def.Cost),
		attribute.Int("power.cells_mined", len(mined)),
	)

	next = applyVisibility(next)

	result := e.finishTurn(ctx, next, reactTo)
	e.annotate(span, result)
	return result
}

// finishTurn runs the terminal check and, when the player survives it, the
// enemy turn reacting to reactTo.
func (e *Engine) finishTurn(ctx context.Context, next turnState, reactTo entity.Player) Result {
	switch {
	case next.Player.IsDead():
		return e.gameOver(ctx, next, CauseInjury)
	case next.Player.IsExhausted():
		return e.gameOver(ctx, next, CauseExhaustion)
	}

	next, turn := applyEnemyTurn(next, reactTo)
	if turn.PlayerDied() {
		return e.gameOver(ctx, next, CauseEnemy)
	}

	e.state = next
	return Result{Outcome: OutcomeContinue, Message: next.Message}
}

// gameOver records the final tally and resets the miner. The mine stays
// in place so the adapter can still draw it behind the summary.
func (e *Engine) gameOver(ctx context.Context, final turnState, cause Cause) Result {
	_, span := e.tracer.Start(ctx, "game.over")
	defer span.End()

	summary := &Summary{
		SessionID:       e.sessionID,
		Seed:            e.seed,
		Score:           final.Player.Score,
		Inventory:       final.Inventory,
		EnemiesDefeated: final.Defeated,
		Turns:           e.turns,
		Cause:           cause,
	}

	span.SetAttributes(
		attribute.String("session.id", e.sessionID),
		attribute.String("game.cause", cause.String()),
		attribute.Int("game.score", summary.Score),
		attribute.Int("game.turns", summary.Turns),
		attribute.Int("game.enemies_defeated", summary.EnemiesDefeated),
		attribute.Int("inventory.coal", summary.Inventory.Coal),
		attribute.Int("inventory.ore", summary.Inventory.Ore),
		attribute.Int("inventory.diamond", summary.Inventory.Diamond),
		attribute.Int("inventory.total", summary.Inventory.Total()),
		attribute.Int("grid.explored", final.Grid.ExploredCount()),
	)

	final.Player = e.initialPlayer(final.Grid.Center())
	e.state = final
	e.status = StatusGameOver
	e.summary = summary

	return Result{Outcome: OutcomeGameOver, Message: final.Message, Summary: summary}
}

func (e *Engine) rejectUnlessPlaying() (Result, bool) {
	switch e.status {
	case StatusPlaying:
		return Result{}, true
	case StatusGameOver:
		return Result{Outcome: OutcomeRejected, Message: MsgGameOver}, false
	default:
		return Result{Outcome: OutcomeRejected, Message: MsgNotStarted}, false
	}
}

func (e *Engine) powerDef(power PowerType) *gamedata.PowerDef {
	def := e.cfg.Powers.GetByID(power.String())
	if def == nil {
		panic("game: no definition for power " + power.String())
	}
	return def
}

func (e *Engine) annotate(span trace.Span, r Result) {
	p := e.state.Player
	span.SetAttributes(
		attribute.String("action.outcome", r.Outcome.String()),
		attribute.Int("player.health", p.Health),
		attribute.Int("player.energy", p.Energy),
		attribute.Int("player.score", p.Score),
		attribute.Int("enemies.active", entity.ActiveCount(e.state.Enemies)),
	)
}

// Purge drops expired effects. Adapters call it once per frame.
func (e *Engine) Purge(now time.Time) int {
	return e.effects.Purge(now)
}
