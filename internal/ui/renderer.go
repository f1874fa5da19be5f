package ui

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/leonelquinteros/gotext"

	"github.com/samdwyer/darkmine/internal/effects"
	"github.com/samdwyer/darkmine/internal/game"
	"github.com/samdwyer/darkmine/internal/gamedata"
	"github.com/samdwyer/darkmine/internal/world"
)

// dynamicGet looks up engine messages, which are not constant strings.
// Without a loaded catalog it returns the message unchanged.
var dynamicGet = gotext.Get

const (
	mapLeft = 1
	mapTop  = 1
	hudLeft = mapLeft + world.DefaultWidth + 3
)

var (
	styleDefault = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	styleTitle   = styleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleLabel   = styleDefault.Foreground(tcell.ColorGray)
	styleMessage = styleDefault.Foreground(tcell.ColorWhite)
	styleNotice  = styleDefault.Foreground(tcell.ColorLightGreen)
	stylePlayer  = styleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleSwing   = styleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorYellow).Bold(true)
	styleBorder  = styleDefault.Foreground(tcell.ColorDarkGray)
	styleDanger  = styleDefault.Foreground(tcell.ColorRed).Bold(true)
)

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen  *Screen
	tiles   *gamedata.TileRegistry
	enemies *gamedata.EnemyRegistry
	powers  *gamedata.PowerRegistry
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen, tiles *gamedata.TileRegistry, enemies *gamedata.EnemyRegistry, powers *gamedata.PowerRegistry) *Renderer {
	return &Renderer{screen: screen, tiles: tiles, enemies: enemies, powers: powers}
}

// Render draws one frame. notice is an app-level line shown under the message.
func (r *Renderer) Render(snap game.Snapshot, now time.Time, notice string) {
	r.screen.Clear()

	if snap.Status == game.StatusStart || snap.Grid == nil {
		r.renderTitle()
		r.screen.Show()
		return
	}

	r.renderBorder(snap.Grid)
	r.renderGrid(snap)
	r.renderParticles(snap, now)
	r.renderEnemies(snap)
	r.renderPlayer(snap, now)
	r.renderHUD(snap)

	msgY := mapTop + snap.Grid.Height + 1
	r.screen.DrawText(mapLeft, msgY, dynamicGet(snap.Message), styleMessage)
	if notice != "" {
		r.screen.DrawText(mapLeft, msgY+1, notice, styleNotice)
	}

	if snap.Status == game.StatusGameOver && snap.Summary != nil {
		r.renderGameOver(snap.Summary)
	}

	r.screen.Show()
}

func (r *Renderer) renderTitle() {
	r.screen.DrawText(2, 2, "DarkMine", styleTitle)
	r.screen.DrawText(2, 4, gotext.Get("Dig deep, collect coal, ore and diamonds."), styleMessage)
	r.screen.DrawText(2, 5, gotext.Get("Beware the Gloom Bats lurking in the dark."), styleMessage)
	r.screen.DrawText(2, 7, gotext.Get("Press any key to start, q to quit."), styleLabel)
}

func (r *Renderer) renderBorder(g *world.Grid) {
	for x := mapLeft - 1; x <= mapLeft+g.Width; x++ {
		r.screen.SetContent(x, mapTop-1, '─', styleBorder)
		r.screen.SetContent(x, mapTop+g.Height, '─', styleBorder)
	}
	for y := mapTop; y < mapTop+g.Height; y++ {
		r.screen.SetContent(mapLeft-1, y, '│', styleBorder)
		r.screen.SetContent(mapLeft+g.Width, y, '│', styleBorder)
	}
	r.screen.SetContent(mapLeft-1, mapTop-1, '┌', styleBorder)
	r.screen.SetContent(mapLeft+g.Width, mapTop-1, '┐', styleBorder)
	r.screen.SetContent(mapLeft-1, mapTop+g.Height, '└', styleBorder)
	r.screen.SetContent(mapLeft+g.Width, mapTop+g.Height, '┘', styleBorder)
}

// renderGrid draws lit cells at full color, remembered cells dimmed,
// and leaves never-seen cells blank.
func (r *Renderer) renderGrid(snap game.Snapshot) {
	g := snap.Grid
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			p := world.Position{X: x, Y: y}
			tile := g.At(p)
			if !tile.Explored {
				continue
			}
			glyph, style := r.tileLook(tile.Type, tile.Revealed)
			r.screen.SetContent(mapLeft+x, mapTop+y, glyph, style)
		}
	}
}

func (r *Renderer) tileLook(tt world.TileType, lit bool) (rune, tcell.Style) {
	def := r.tileDef(tt.String())
	if def == nil {
		return '?', styleDefault
	}
	if lit {
		return def.GlyphRune(), styleDefault.Foreground(def.TCellColor())
	}
	return def.GlyphRune(), styleDefault.Foreground(def.TCellDimColor())
}

func (r *Renderer) tileDef(id string) *gamedata.TileDef {
	if r.tiles == nil {
		return nil
	}
	return r.tiles.GetByID(id)
}

func (r *Renderer) renderParticles(snap game.Snapshot, now time.Time) {
	for _, p := range snap.Particles {
		color := tcell.ColorWhite
		if def := r.tileDef(p.Kind.String()); def != nil {
			color = def.TCellColor()
		}
		r.screen.SetContent(mapLeft+p.Position.X, mapTop+p.Position.Y, particleRune(p, now), styleDefault.Foreground(color))
	}
}

// particleRune fades a burst from heavy debris to dust.
func particleRune(p effects.Particle, now time.Time) rune {
	switch progress := p.Progress(now); {
	case progress < 0.33:
		return '%'
	case progress < 0.66:
		return ':'
	default:
		return '.'
	}
}

func (r *Renderer) renderEnemies(snap game.Snapshot) {
	for _, e := range snap.VisibleEnemies() {
		glyph, color := 'b', tcell.ColorPurple
		def := e.Def
		if def == nil && r.enemies != nil {
			def = r.enemies.GetByID(e.Type.String())
		}
		if def != nil {
			glyph, color = def.GlyphRune(), def.TCellColor()
		}
		r.screen.SetContent(mapLeft+e.Position.X, mapTop+e.Position.Y, glyph, styleDefault.Foreground(color).Bold(true))
	}
}

func (r *Renderer) renderPlayer(snap game.Snapshot, now time.Time) {
	style := stylePlayer
	for _, s := range snap.Swings {
		if s.Position == snap.Player.Position && !s.Expired(now) {
			style = styleSwing
		}
	}
	p := snap.Player.Position
	r.screen.SetContent(mapLeft+p.X, mapTop+p.Y, '@', style)
}

func (r *Renderer) renderHUD(snap game.Snapshot) {
	p := snap.Player
	inv := snap.Inventory
	y := mapTop - 1

	r.screen.DrawText(hudLeft, y, "DarkMine", styleTitle)
	y += 2

	healthStyle := styleMessage
	if p.Health <= 30 {
		healthStyle = styleDanger
	}
	r.hudLine(y, gotext.Get("Health"), fmt.Sprintf("%d", p.Health), healthStyle)
	y++
	energyStyle := styleMessage
	if p.Energy <= 20 {
		energyStyle = styleDanger
	}
	r.hudLine(y, gotext.Get("Energy"), fmt.Sprintf("%d/%d", p.Energy, p.MaxEnergy), energyStyle)
	y++
	r.hudLine(y, gotext.Get("Score"), fmt.Sprintf("%d", p.Score), styleMessage)
	y++
	r.hudLine(y, gotext.Get("Vision"), fmt.Sprintf("%d", p.VisionRange), styleMessage)
	y += 2

	r.hudLine(y, gotext.Get("Coal"), fmt.Sprintf("%d", inv.Coal), styleMessage)
	y++
	r.hudLine(y, gotext.Get("Ore"), fmt.Sprintf("%d", inv.Ore), styleMessage)
	y++
	r.hudLine(y, gotext.Get("Diamonds"), fmt.Sprintf("%d", inv.Diamond), styleMessage)
	y++
	r.hudLine(y, gotext.Get("Bats defeated"), fmt.Sprintf("%d", snap.EnemiesDefeated), styleMessage)
	y += 2

	r.screen.DrawText(hudLeft, y, gotext.Get("Powers"), styleLabel)
	y++
	if r.powers != nil {
		for _, def := range r.powers.All() {
			style := styleLabel
			if inv.Coal >= def.Cost {
				style = styleMessage
			}
			line := fmt.Sprintf("[%s] %s (%d %s)", def.Key, dynamicGet(def.Name), def.Cost, gotext.Get("coal"))
			r.screen.DrawText(hudLeft, y, line, style)
			y++
		}
	}
	y++
	r.screen.DrawText(hudLeft, y, gotext.Get("Move: arrows/WASD  r: restart  q: quit"), styleLabel)
}

func (r *Renderer) hudLine(y int, label, value string, valueStyle tcell.Style) {
	x := r.screen.DrawText(hudLeft, y, label+": ", styleLabel)
	r.screen.DrawText(x, y, value, valueStyle)
}

func (r *Renderer) renderGameOver(s *game.Summary) {
	lines := SummaryLines(s)
	lines = append(lines, "", gotext.Get("r: play again  c: copy summary  q: quit"))

	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	left := mapLeft + 2
	top := mapTop + 4

	for y := top - 1; y <= top+len(lines); y++ {
		for x := left - 2; x <= left+width+1; x++ {
			r.screen.SetContent(x, y, ' ', styleDefault)
		}
	}
	r.screen.DrawText(left, top-1, gotext.Get("GAME OVER"), styleDanger)
	for i, l := range lines {
		r.screen.DrawText(left, top+1+i, l, styleMessage)
	}
}

// SummaryLines formats a finished game for display and for the clipboard.
func SummaryLines(s *game.Summary) []string {
	return []string{
		fmt.Sprintf("%s: %d", gotext.Get("Score"), s.Score),
		fmt.Sprintf("%s: %d  %s: %d  %s: %d", gotext.Get("Coal"), s.Inventory.Coal, gotext.Get("Ore"), s.Inventory.Ore, gotext.Get("Diamonds"), s.Inventory.Diamond),
		fmt.Sprintf("%s: %d", gotext.Get("Bats defeated"), s.EnemiesDefeated),
		fmt.Sprintf("%s: %d", gotext.Get("Turns"), s.Turns),
		fmt.Sprintf("%s: %s", gotext.Get("Cause"), dynamicGet(s.Cause.String())),
		fmt.Sprintf("%s: %d", gotext.Get("Seed"), s.Seed),
	}
}
