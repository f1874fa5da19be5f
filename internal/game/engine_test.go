package game

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/samdwyer/darkmine/internal/entity"
	"github.com/samdwyer/darkmine/internal/gamedata"
	"github.com/samdwyer/darkmine/internal/world"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func newTestEngine(t *testing.T, seed int64) *Engine {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Seed = seed
	cfg.Clock = func() time.Time { return epoch }
	e, err := New(cfg)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	e.Start(context.Background())
	return e
}

// openState puts the player in the middle of a fully mined-out grid.
func openState() turnState {
	g := world.NewGrid(world.DefaultWidth, world.DefaultHeight)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			g.SetType(world.Position{X: x, Y: y}, world.TileEmpty)
		}
	}
	return turnState{
		Grid:   g,
		Player: entity.NewPlayer(gamedata.MustLoadPlayer(), g.Center()),
	}
}

func activeBat(id, x, y int) *entity.Enemy {
	e := entity.NewEnemy(id, entity.EnemyGloomBat, world.Position{X: x, Y: y})
	e.Active = true
	return e
}

func TestStartIsReproducible(t *testing.T) {
	a := newTestEngine(t, 42)
	b := newTestEngine(t, 42)

	if !a.state.Grid.Equal(b.state.Grid) {
		t.Fatal("same seed produced different grids")
	}
	if len(a.state.Enemies) != len(b.state.Enemies) {
		t.Fatalf("enemy counts differ: %d vs %d", len(a.state.Enemies), len(b.state.Enemies))
	}
	for i := range a.state.Enemies {
		if a.state.Enemies[i].Position != b.state.Enemies[i].Position {
			t.Errorf("enemy %d at %v vs %v", i, a.state.Enemies[i].Position, b.state.Enemies[i].Position)
		}
	}
	if a.SessionID() == b.SessionID() {
		t.Error("session ids should be unique")
	}
}

func TestStartState(t *testing.T) {
	e := newTestEngine(t, 1)
	snap := e.Snapshot(epoch)

	if snap.Status != StatusPlaying {
		t.Errorf("Status = %s, want playing", snap.Status)
	}
	if snap.Message != MsgWelcome {
		t.Errorf("Message = %q, want %q", snap.Message, MsgWelcome)
	}
	if snap.Player.Position != (world.Position{X: 12, Y: 12}) {
		t.Errorf("start position = %v, want (12,12)", snap.Player.Position)
	}
	if snap.Player.Health != 100 || snap.Player.Energy != 100 || snap.Player.VisionRange != 2 {
		t.Errorf("unexpected start stats: %+v", snap.Player)
	}
	if snap.Player.Direction != world.DirDown {
		t.Errorf("Direction = %s, want down", snap.Player.Direction)
	}
	if !snap.Grid.At(world.Position{X: 12, Y: 14}).Revealed {
		t.Error("cells within vision of the start should be revealed")
	}
	if snap.Grid.At(world.Position{X: 12, Y: 15}).Revealed {
		t.Error("cells outside vision of the start should stay dark")
	}
	for _, enemy := range snap.Enemies {
		if enemy.Position.Manhattan(snap.Player.Position) <= entity.SafeRadius {
			t.Errorf("enemy %d spawned inside the safe radius at %v", enemy.ID, enemy.Position)
		}
	}
}

func TestActionsBeforeStartAreRejected(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 3
	e, err := New(cfg)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	r := e.HandleAction(context.Background(), world.DirUp)
	if r.Outcome != OutcomeRejected || r.Message != MsgNotStarted {
		t.Errorf("HandleAction() before Start = %+v", r)
	}
	if snap := e.Snapshot(epoch); snap.Grid != nil {
		t.Error("Snapshot() before Start should have no grid")
	}
}

func TestOutOfBoundsMoveIsRejected(t *testing.T) {
	tests := []struct {
		pos world.Position
		dir world.Direction
	}{
		{world.Position{X: 0, Y: 5}, world.DirLeft},
		{world.Position{X: 24, Y: 5}, world.DirRight},
		{world.Position{X: 5, Y: 0}, world.DirUp},
		{world.Position{X: 5, Y: 24}, world.DirDown},
	}

	for _, tt := range tests {
		e := newTestEngine(t, 1)
		s := openState()
		s.Player.Position = tt.pos
		e.state = s

		before := e.state
		beforeGrid := before.Grid.Clone()

		r := e.HandleAction(context.Background(), tt.dir)

		if r.Outcome != OutcomeRejected {
			t.Errorf("%v %s: Outcome = %s, want rejected", tt.pos, tt.dir, r.Outcome)
		}
		if r.Message != MsgBlocked {
			t.Errorf("%v %s: Message = %q", tt.pos, tt.dir, r.Message)
		}
		if e.state.Player != before.Player {
			t.Errorf("%v %s: player changed to %+v", tt.pos, tt.dir, e.state.Player)
		}
		if !e.state.Grid.Equal(beforeGrid) {
			t.Errorf("%v %s: grid changed", tt.pos, tt.dir)
		}
		if e.turns != 0 {
			t.Errorf("%v %s: rejected move counted as a turn", tt.pos, tt.dir)
		}
	}
}

func TestPlayerStaysInBounds(t *testing.T) {
	e := newTestEngine(t, 99)
	rng := rand.New(rand.NewSource(5))
	ctx := context.Background()

	for i := 0; i < 2000; i++ {
		if e.Status() == StatusGameOver {
			e.Restart(ctx)
		}
		dir := world.Directions()[rng.Intn(4)]
		if rng.Intn(10) == 0 {
			e.HandlePower(ctx, PowerTypes()[rng.Intn(2)])
		} else {
			e.HandleAction(ctx, dir)
		}

		p := e.state.Player.Position
		if p.X < 0 || p.X >= 25 || p.Y < 0 || p.Y >= 25 {
			t.Fatalf("step %d: player at %v", i, p)
		}
	}
}

func TestWalkCostsOneEnergy(t *testing.T) {
	e := newTestEngine(t, 1)
	e.state = openState()

	r := e.HandleAction(context.Background(), world.DirLeft)

	if r.Outcome != OutcomeContinue || r.Message != MsgMoved {
		t.Fatalf("HandleAction() = %+v", r)
	}
	p := e.state.Player
	if p.Position != (world.Position{X: 11, Y: 12}) || p.Energy != 99 || p.Direction != world.DirLeft {
		t.Errorf("player = %+v", p)
	}
}

func TestMineCostsTwoFromEnergyBeforeDigging(t *testing.T) {
	e := newTestEngine(t, 1)
	s := openState()
	s.Player.Energy = 50
	s.Grid.SetType(world.Position{X: 12, Y: 11}, world.TileCoal)
	e.state = s

	r := e.HandleAction(context.Background(), world.DirUp)

	if r.Outcome != OutcomeContinue {
		t.Fatalf("Outcome = %s", r.Outcome)
	}
	p := e.state.Player
	if p.Energy != 48 {
		t.Errorf("Energy = %d, want 48 (coal found while digging does not refill)", p.Energy)
	}
	if p.Position != (world.Position{X: 12, Y: 11}) {
		t.Errorf("player at %v, want (12,11)", p.Position)
	}
	if e.state.Inventory.Coal != 1 || p.Score != 10 {
		t.Errorf("coal = %d score = %d", e.state.Inventory.Coal, p.Score)
	}
	if got := e.state.Grid.At(world.Position{X: 12, Y: 11}).Type; got != world.TileEmpty {
		t.Errorf("mined cell = %s, want empty", got)
	}

	snap := e.Snapshot(epoch)
	if len(snap.Swings) != 1 || len(snap.Particles) != 1 {
		t.Fatalf("effects = %d swings, %d particles", len(snap.Swings), len(snap.Particles))
	}
	if snap.Swings[0].Direction != world.DirUp {
		t.Errorf("swing direction = %s", snap.Swings[0].Direction)
	}
	if e.Purge(epoch.Add(2*time.Second)) != 2 {
		t.Error("Purge() should drop both effects after 2s")
	}
}

func TestDiggingCoalOnLastEnergyEndsGame(t *testing.T) {
	e := newTestEngine(t, 1)
	s := openState()
	s.Player.Energy = 1
	s.Grid.SetType(world.Position{X: 12, Y: 11}, world.TileCoal)
	e.state = s

	r := e.HandleAction(context.Background(), world.DirUp)

	if r.Outcome != OutcomeGameOver || r.Summary == nil {
		t.Fatalf("HandleAction() = %+v, want game over", r)
	}
	if r.Summary.Cause != CauseExhaustion {
		t.Errorf("Cause = %s, want %s", r.Summary.Cause, CauseExhaustion)
	}
	if r.Summary.Inventory.Coal != 1 || r.Summary.Score != 10 {
		t.Errorf("summary = %+v, want the dug coal counted", *r.Summary)
	}
	if e.Status() != StatusGameOver {
		t.Errorf("Status() = %s, want %s", e.Status(), StatusGameOver)
	}
}

func TestEnergyFloorEndsGameOnce(t *testing.T) {
	e := newTestEngine(t, 1)
	s := openState()
	s.Player.Energy = 1
	s.Player.Score = 37
	s.Inventory = entity.Inventory{Coal: 2, Ore: 1}
	s.Defeated = 4
	e.state = s

	ctx := context.Background()
	r := e.HandleAction(ctx, world.DirRight)

	if r.Outcome != OutcomeGameOver || r.Summary == nil {
		t.Fatalf("HandleAction() = %+v, want game over", r)
	}
	want := Summary{
		SessionID:       e.SessionID(),
		Seed:            1,
		Score:           37,
		Inventory:       entity.Inventory{Coal: 2, Ore: 1},
		EnemiesDefeated: 4,
		Turns:           1,
		Cause:           CauseExhaustion,
	}
	if *r.Summary != want {
		t.Errorf("Summary = %+v, want %+v", *r.Summary, want)
	}

	if e.state.Player.Energy != 100 || e.state.Player.Score != 0 {
		t.Errorf("player not reset: %+v", e.state.Player)
	}

	gameOvers := 1
	for _, dir := range world.Directions() {
		if e.HandleAction(ctx, dir).IsGameOver() {
			gameOvers++
		}
	}
	if e.HandlePower(ctx, PowerIlluminate).IsGameOver() {
		gameOvers++
	}
	if gameOvers != 1 {
		t.Errorf("game over reported %d times, want 1", gameOvers)
	}
	if r := e.HandleAction(ctx, world.DirUp); r.Message != MsgGameOver {
		t.Errorf("action after game over: %+v", r)
	}
}

func TestMiningScoreCountsTowardFinalScore(t *testing.T) {
	e := newTestEngine(t, 1)
	s := openState()
	s.Player.Energy = 2
	s.Grid.SetType(world.Position{X: 12, Y: 13}, world.TileOre)
	e.state = s

	r := e.HandleAction(context.Background(), world.DirDown)

	if !r.IsGameOver() {
		t.Fatalf("Outcome = %s, want game over", r.Outcome)
	}
	if r.Summary.Score != 50 || r.Summary.Inventory.Ore != 1 {
		t.Errorf("Summary = %+v, want the ore counted", *r.Summary)
	}
}

func TestTrapDeathSkipsEnemyTurn(t *testing.T) {
	e := newTestEngine(t, 1)
	s := openState()
	s.Player.Health = 20
	s.Grid.SetType(world.Position{X: 12, Y: 11}, world.TileTrap)
	s.Enemies = []*entity.Enemy{activeBat(0, 12, 9)}
	e.state = s

	r := e.HandleAction(context.Background(), world.DirUp)

	if !r.IsGameOver() || r.Summary.Cause != CauseInjury {
		t.Fatalf("HandleAction() = %+v, want injury game over", r)
	}
	if got := e.state.Enemies[0].Position; got != (world.Position{X: 12, Y: 9}) {
		t.Errorf("enemy moved to %v after the game ended", got)
	}
}

func TestAttackUntilDefeated(t *testing.T) {
	e := newTestEngine(t, 1)
	s := openState()
	s.Enemies = []*entity.Enemy{activeBat(0, 12, 11)}
	e.state = s
	ctx := context.Background()

	r := e.HandleAction(ctx, world.DirUp)
	if r.Message != "A Gloom Bat attacks you!" {
		t.Errorf("first hit message = %q", r.Message)
	}
	if got := e.state.Enemies[0].Health; got != 15 {
		t.Errorf("enemy health = %d, want 15", got)
	}
	if e.state.Player.Health != 90 || e.state.Player.Energy != 97 {
		t.Errorf("player after first exchange = %+v", e.state.Player)
	}
	if e.state.Player.Position != (world.Position{X: 12, Y: 12}) {
		t.Error("attacking should not move the player")
	}

	r = e.HandleAction(ctx, world.DirUp)
	if r.Message != "You defeated the Gloom Bat! +100 score." {
		t.Errorf("second hit message = %q", r.Message)
	}
	if len(e.state.Enemies) != 0 {
		t.Fatalf("enemy not removed after the second hit")
	}

	e.HandleAction(ctx, world.DirUp)

	snap := e.Snapshot(epoch)
	if snap.EnemiesDefeated != 1 {
		t.Errorf("EnemiesDefeated = %d, want 1", snap.EnemiesDefeated)
	}
	if snap.Player.Score != 100 {
		t.Errorf("Score = %d, want 100", snap.Player.Score)
	}
	if snap.Player.Position != (world.Position{X: 12, Y: 11}) {
		t.Errorf("third action should walk into the freed cell, player at %v", snap.Player.Position)
	}
}

func TestAttackUpdatesDirection(t *testing.T) {
	e := newTestEngine(t, 1)
	s := openState()
	s.Enemies = []*entity.Enemy{activeBat(0, 13, 12)}
	e.state = s

	e.HandleAction(context.Background(), world.DirRight)

	if e.state.Player.Direction != world.DirRight {
		t.Errorf("Direction = %s, want right", e.state.Player.Direction)
	}
}

func TestEnemyTurnFollowsMove(t *testing.T) {
	e := newTestEngine(t, 1)
	s := openState()
	s.Enemies = []*entity.Enemy{activeBat(0, 12, 7)}
	e.state = s

	e.HandleAction(context.Background(), world.DirUp)

	if got := e.state.Enemies[0].Position; got != (world.Position{X: 12, Y: 8}) {
		t.Errorf("enemy at %v, want (12,8)", got)
	}
}

func TestEnemyKillsPlayer(t *testing.T) {
	e := newTestEngine(t, 1)
	s := openState()
	s.Player.Health = 10
	s.Player.Score = 12
	s.Enemies = []*entity.Enemy{activeBat(0, 12, 10)}
	e.state = s

	r := e.HandleAction(context.Background(), world.DirUp)

	if !r.IsGameOver() {
		t.Fatalf("Outcome = %s, want game over", r.Outcome)
	}
	if r.Summary.Cause != CauseEnemy {
		t.Errorf("Cause = %s, want enemy", r.Summary.Cause)
	}
	if r.Summary.Score != 12 {
		t.Errorf("Score = %d, want 12", r.Summary.Score)
	}
	if e.Status() != StatusGameOver {
		t.Errorf("Status = %s, want game_over", e.Status())
	}
}

func TestPowerWithoutCoalChangesNothing(t *testing.T) {
	e := newTestEngine(t, 1)
	e.state.Inventory.Coal = 4

	before := e.Snapshot(epoch)
	r := e.HandlePower(context.Background(), PowerMegaMine)
	after := e.Snapshot(epoch)

	if r.Outcome != OutcomeRejected || r.Message != MsgNoCoal {
		t.Fatalf("HandlePower() = %+v", r)
	}
	if after.Message != MsgNoCoal {
		t.Errorf("Message = %q", after.Message)
	}
	if after.Player != before.Player {
		t.Errorf("player changed: %+v -> %+v", before.Player, after.Player)
	}
	if after.Inventory != before.Inventory {
		t.Errorf("inventory changed: %+v -> %+v", before.Inventory, after.Inventory)
	}
	if !after.Grid.Equal(before.Grid) {
		t.Error("grid changed")
	}
	if len(after.Enemies) != len(before.Enemies) {
		t.Fatal("enemy count changed")
	}
	for i := range after.Enemies {
		if *after.Enemies[i] != *before.Enemies[i] {
			t.Errorf("enemy %d changed", i)
		}
	}
	if after.Turns != before.Turns {
		t.Error("rejected power counted as a turn")
	}
}

func TestMegaMine(t *testing.T) {
	e := newTestEngine(t, 1)
	s := openState()
	s.Inventory.Coal = 5
	center := s.Grid.Center()
	for y := center.Y - 1; y <= center.Y+1; y++ {
		for x := center.X - 1; x <= center.X+1; x++ {
			if (world.Position{X: x, Y: y}) != center {
				s.Grid.SetType(world.Position{X: x, Y: y}, world.TileRock)
			}
		}
	}
	s.Grid.SetType(world.Position{X: 13, Y: 13}, world.TileCoal)
	s.Grid.SetType(world.Position{X: 11, Y: 12}, world.TileEmpty)
	e.state = s

	r := e.HandlePower(context.Background(), PowerMegaMine)

	if r.Outcome != OutcomeContinue || r.Message != MsgMegaMine {
		t.Fatalf("HandlePower() = %+v", r)
	}
	for y := center.Y - 1; y <= center.Y+1; y++ {
		for x := center.X - 1; x <= center.X+1; x++ {
			if got := e.state.Grid.At(world.Position{X: x, Y: y}).Type; got != world.TileEmpty {
				t.Errorf("(%d,%d) = %s, want empty", x, y, got)
			}
		}
	}
	if e.state.Inventory.Coal != 1 {
		t.Errorf("Coal = %d, want 1 (5 - 5 + 1 mined)", e.state.Inventory.Coal)
	}
	// Six rock cells and one coal; the pre-cleared cell is skipped.
	if e.state.Player.Score != 6*1+10 {
		t.Errorf("Score = %d, want 16", e.state.Player.Score)
	}
	if e.state.Player.Position != center {
		t.Error("mega mine should not move the player")
	}
	snap := e.Snapshot(epoch)
	if len(snap.Particles) != 7 || len(snap.Swings) != 0 {
		t.Errorf("effects = %d particles, %d swings; want 7, 0", len(snap.Particles), len(snap.Swings))
	}
}

func TestMegaMineAtCorner(t *testing.T) {
	e := newTestEngine(t, 1)
	s := openState()
	s.Player.Position = world.Position{X: 0, Y: 0}
	s.Inventory.Coal = 5
	for _, p := range []world.Position{{X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 2}} {
		s.Grid.SetType(p, world.TileOre)
	}
	e.state = s

	e.HandlePower(context.Background(), PowerMegaMine)

	if e.state.Inventory.Ore != 3 {
		t.Errorf("Ore = %d, want 3", e.state.Inventory.Ore)
	}
	if e.state.Grid.At(world.Position{X: 2, Y: 2}).Type != world.TileOre {
		t.Error("cell outside the 3x3 box was mined")
	}
}

func TestIlluminate(t *testing.T) {
	e := newTestEngine(t, 1)
	s := openState()
	s.Inventory.Coal = 3
	s.Enemies = []*entity.Enemy{
		entity.NewEnemy(0, entity.EnemyGloomBat, world.Position{X: 12, Y: 19}),
		entity.NewEnemy(1, entity.EnemyGloomBat, world.Position{X: 12, Y: 20}),
	}
	e.state = s

	r := e.HandlePower(context.Background(), PowerIlluminate)

	if r.Outcome != OutcomeContinue || r.Message != MsgIlluminate {
		t.Fatalf("HandlePower() = %+v", r)
	}
	if e.state.Inventory.Coal != 0 {
		t.Errorf("Coal = %d, want 0", e.state.Inventory.Coal)
	}
	if !e.state.Grid.At(world.Position{X: 12, Y: 19}).Revealed {
		t.Error("(12,19) should be revealed at radius 7")
	}
	if e.state.Grid.At(world.Position{X: 12, Y: 20}).Revealed {
		t.Error("(12,20) should stay dark")
	}

	woken := entity.FindEnemy(e.state.Enemies, 0)
	if !woken.Active {
		t.Fatal("enemy inside the flash should be active")
	}
	// Newly woken enemies act in the same turn.
	if woken.Position != (world.Position{X: 12, Y: 18}) {
		t.Errorf("woken enemy at %v, want (12,18)", woken.Position)
	}
	if entity.FindEnemy(e.state.Enemies, 1).Active {
		t.Error("enemy outside the flash should stay dormant")
	}
}

func TestRestartStartsNewSession(t *testing.T) {
	e := newTestEngine(t, 8)
	s := openState()
	s.Player.Energy = 1
	e.state = s
	ctx := context.Background()

	first := e.SessionID()
	if !e.HandleAction(ctx, world.DirUp).IsGameOver() {
		t.Fatal("expected game over")
	}

	e.Restart(ctx)

	if e.Status() != StatusPlaying {
		t.Errorf("Status = %s, want playing", e.Status())
	}
	if e.SessionID() == first {
		t.Error("Restart() should issue a new session id")
	}
	snap := e.Snapshot(epoch)
	if snap.Turns != 0 || snap.Summary != nil || snap.EnemiesDefeated != 0 {
		t.Errorf("snapshot not reset: turns=%d summary=%v defeated=%d", snap.Turns, snap.Summary, snap.EnemiesDefeated)
	}
	if snap.Inventory != (entity.Inventory{}) {
		t.Errorf("Inventory = %+v, want empty", snap.Inventory)
	}
	if snap.Message != MsgWelcome {
		t.Errorf("Message = %q", snap.Message)
	}
}

func TestStartDuringPlayIsNoop(t *testing.T) {
	e := newTestEngine(t, 8)
	id := e.SessionID()
	e.Start(context.Background())
	if e.SessionID() != id {
		t.Error("Start() while playing replaced the session")
	}
}

func TestSameSeedSameGame(t *testing.T) {
	a := newTestEngine(t, 2024)
	b := newTestEngine(t, 2024)
	ctx := context.Background()
	rng := rand.New(rand.NewSource(11))

	for i := 0; i < 300; i++ {
		dir := world.Directions()[rng.Intn(4)]
		ra := a.HandleAction(ctx, dir)
		rb := b.HandleAction(ctx, dir)
		if ra.Outcome != rb.Outcome || ra.Message != rb.Message {
			t.Fatalf("step %d diverged: %+v vs %+v", i, ra, rb)
		}
		if ra.IsGameOver() {
			break
		}
	}

	sa, sb := a.Snapshot(epoch), b.Snapshot(epoch)
	if sa.Player != sb.Player || sa.Inventory != sb.Inventory || !sa.Grid.Equal(sb.Grid) {
		t.Error("identical seeds and inputs produced different sessions")
	}
}

func TestExplorationIsMonotonic(t *testing.T) {
	e := newTestEngine(t, 77)
	ctx := context.Background()
	rng := rand.New(rand.NewSource(3))

	prev := e.Snapshot(epoch).Grid
	for i := 0; i < 400 && e.Status() == StatusPlaying; i++ {
		e.HandleAction(ctx, world.Directions()[rng.Intn(4)])
		cur := e.Snapshot(epoch).Grid
		for y := 0; y < cur.Height; y++ {
			for x := 0; x < cur.Width; x++ {
				p := world.Position{X: x, Y: y}
				if prev.At(p).Explored && !cur.At(p).Explored {
					t.Fatalf("step %d: %v lost its explored flag", i, p)
				}
			}
		}
		prev = cur
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	e := newTestEngine(t, 5)
	orig := e.state.Grid.Clone()
	snap := e.Snapshot(epoch)

	snap.Grid.Tiles[0][0] = world.Tile{Type: world.TileDiamond, Revealed: true, Explored: true}
	snap.Grid.Tiles[0][1] = world.Tile{Type: world.TileTrap, Revealed: true, Explored: true}
	snap.Player.Health = -5
	if len(snap.Enemies) > 0 {
		snap.Enemies[0].Position = world.Position{X: 12, Y: 12}
	}

	if !e.state.Grid.Equal(orig) {
		t.Error("snapshot grid aliases engine state")
	}
	if e.state.Player.Health != 100 {
		t.Error("snapshot player aliases engine state")
	}
	if len(e.state.Enemies) > 0 && e.state.Enemies[0].Position == (world.Position{X: 12, Y: 12}) {
		t.Error("snapshot enemies alias engine state")
	}
}

func TestVisibleEnemies(t *testing.T) {
	s := openState()
	s.Grid.Set(world.Position{X: 3, Y: 3}, world.Tile{Type: world.TileEmpty, Revealed: true, Explored: true})
	snap := Snapshot{
		Grid: s.Grid,
		Enemies: []*entity.Enemy{
			activeBat(0, 3, 3),
			activeBat(1, 4, 4),
			entity.NewEnemy(2, entity.EnemyGloomBat, world.Position{X: 3, Y: 3}),
		},
	}

	got := snap.VisibleEnemies()
	if len(got) != 1 || got[0].ID != 0 {
		t.Errorf("VisibleEnemies() = %v, want only enemy 0", got)
	}
}

func TestApplyPowerWithoutCoalPanics(t *testing.T) {
	s := openState()
	s.Inventory.Coal = 2
	def := gamedata.MustLoadPowerRegistry().GetByID(PowerIlluminate.String())

	defer func() {
		if recover() == nil {
			t.Error("applyPower() with too little coal should panic")
		}
	}()
	applyPower(s, PowerIlluminate, def)
}
