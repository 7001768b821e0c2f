package engine

import (
	"time"

	"github.com/charmbracelet/log"
)

// DefaultGravity is the interval between automatic drops.
const DefaultGravity = 200 * time.Millisecond

// Clock supplies the current time for gravity gating.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock. time.Now carries a monotonic reading,
// so elapsed-time comparisons are immune to wall clock jumps.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time {
	return time.Now()
}

// ClockFunc adapts a function to the Clock interface.
type ClockFunc func() time.Time

// Now calls f.
func (f ClockFunc) Now() time.Time {
	return f()
}

// GravityClock remembers when the board last ticked.
type GravityClock struct {
	clock    Clock
	interval time.Duration
	last     time.Time
}

// NewGravityClock starts a gravity clock at the clock's current time.
func NewGravityClock(clock Clock, interval time.Duration) *GravityClock {
	if clock == nil {
		clock = SystemClock{}
	}
	if interval <= 0 {
		interval = DefaultGravity
	}
	return &GravityClock{
		clock:    clock,
		interval: interval,
		last:     clock.Now(),
	}
}

// Interval returns the time between automatic drops.
func (g *GravityClock) Interval() time.Duration {
	return g.interval
}

// LastTick returns the time of the most recent tick.
func (g *GravityClock) LastTick() time.Time {
	return g.last
}

// Due reports whether strictly more than one interval has passed since the last tick.
func (g *GravityClock) Due() bool {
	return g.clock.Now().Sub(g.last) > g.interval
}

// Stamp records the current time as the last tick.
func (g *GravityClock) Stamp() {
	g.last = g.clock.Now()
}

// Outcome is the result of a tick.
type Outcome uint8

const (
	// Continue means play goes on.
	Continue Outcome = iota
	// GameOver means a new piece could not be spawned.
	GameOver
)

// String returns the outcome name.
func (o Outcome) String() string {
	if o == GameOver {
		return "game_over"
	}
	return "continue"
}

// Tick advances the board by one discrete step.
//
// With no falling piece it spawns a random kind at its start position; if that
// spot is blocked the result is GameOver and nothing is placed. With a falling
// piece it drops the piece one row, or, when the row below is blocked, locks
// it and clears completed rows. Locking never reports GameOver by itself: a
// full board is noticed by the spawn on the next tick.
func (b *Board) Tick() Outcome {
	b.gravity.Stamp()

	if !b.hasActive {
		return b.spawn()
	}

	next := b.active.Shifted(1, 0)
	if b.CanPlace(next) {
		b.Place(next)
		return Continue
	}

	locked := b.active
	cleared := b.FreezeAndClear()
	b.hasActive = false
	b.active = Piece{}
	b.stats.Locked++
	b.stats.RowsCleared += cleared
	log.Debug("piece locked", "piece", locked, "cleared", cleared)
	return Continue
}

func (b *Board) spawn() Outcome {
	kind := Kinds[b.rng.Intn(kindCount)]
	p := Spawn(kind)
	if !b.CanPlace(p) {
		log.Debug("spawn blocked", "piece", p)
		return GameOver
	}
	b.Place(p)
	b.stats.Pieces++
	log.Debug("piece spawned", "piece", p)
	return Continue
}

// MaybeTick runs exactly one Tick when the gravity interval has elapsed and
// reports whether it did. It is the only time-driven entry point; callers poll
// it once per frame.
func (b *Board) MaybeTick() (Outcome, bool) {
	if !b.gravity.Due() {
		return Continue, false
	}
	return b.Tick(), true
}
