// Package tetris adapts the falling-block engine to the terminal platform.
// The game derives time from its own frame counter, so two runs with the same
// seed and the same inputs produce identical boards.
package tetris

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/termtris/internal/config"
	"github.com/vovakirdan/termtris/internal/core"
	"github.com/vovakirdan/termtris/internal/games/tetris/engine"
	"github.com/vovakirdan/termtris/internal/registry"
)

// ID is the registry identifier of the game.
const ID = "tetris"

// epoch is the frame clock origin. Any fixed instant works.
var epoch = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// Game implements registry.Game on top of engine.Board.
type Game struct {
	board *engine.Board
	rng   *rand.Rand

	runtime core.RuntimeConfig
	cfg     config.TetrisConfig

	frame    uint64        // frames simulated while running
	frameDur time.Duration // wall time covered by one frame
	paused   bool
	gameOver bool

	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// New creates a new game instance. Call Reset before stepping it.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Tetris"
}

// Reset starts a fresh game on an empty board.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadTetris(configPath)
	if err != nil {
		log.Warn("using default config", "err", err)
		cfg = config.DefaultTetrisConfig()
	}
	g.cfg = cfg

	tickRate := runtime.TickRate
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	g.frameDur = time.Second / time.Duration(tickRate)

	gravity := runtime.Gravity
	if gravity <= 0 {
		gravity = cfg.Gravity.Interval()
	}

	g.frame = 0
	g.paused = false
	g.gameOver = false
	g.rng = rand.New(rand.NewSource(runtime.Seed)) //#nosec G404 -- deterministic gameplay
	g.board = engine.NewBoard(g.rng, engine.ClockFunc(g.now), gravity)

	g.minScreenW, g.minScreenH = g.layoutSize()
	g.screenTooSmall = runtime.ScreenW < g.minScreenW || runtime.ScreenH < g.minScreenH

	log.Debug("game reset", "seed", runtime.Seed, "gravity", gravity, "fps", tickRate)
}

// now is the engine clock: the epoch plus the frames simulated so far.
func (g *Game) now() time.Time {
	return epoch.Add(time.Duration(g.frame) * g.frameDur)
}

// Step applies the frame's input in arrival order, then advances one frame
// and lets gravity tick when its interval has elapsed.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall || g.gameOver {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	for _, a := range in.Actions {
		g.apply(a)
	}

	g.frame++
	if outcome, ticked := g.board.MaybeTick(); ticked && outcome == engine.GameOver {
		g.gameOver = true
	}

	return core.StepResult{State: g.State()}
}

// apply forwards one player intent to the board. Rejected moves are ignored.
func (g *Game) apply(a core.Action) {
	switch a {
	case core.ActionLeft:
		g.board.Move(engine.Left)
	case core.ActionRight:
		g.board.Move(engine.Right)
	case core.ActionSoftDrop:
		g.board.Move(engine.Down)
	case core.ActionRotateCW:
		g.board.Rotate(engine.Clockwise)
	case core.ActionRotateCCW:
		g.board.Rotate(engine.Counterclockwise)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
	if g.board != nil {
		stats := g.board.Stats()
		st.Pieces = stats.Pieces
		st.RowsCleared = stats.RowsCleared
	}
	return st
}

// Board exposes the engine board for read-only inspection.
func (g *Game) Board() *engine.Board {
	return g.board
}

// Register the game with the global registry.
func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}
