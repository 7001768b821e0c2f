package engine

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/termtris/internal/core"
)

func TestTickSpawnsAtStartPosition(t *testing.T) {
	b, _ := newTestBoard(t)

	require.Equal(t, Continue, b.Tick())

	p, ok := b.Active()
	require.True(t, ok)
	assert.Equal(t, p.Kind.StartPosition(), p.Pos)
	assert.Equal(t, R0, p.Rotation)
	assert.Equal(t, 4, countState(b, Active))
	assert.Equal(t, 1, b.Stats().Pieces)
}

func TestTickDropsOneRow(t *testing.T) {
	b, _ := newTestBoard(t)
	b.Tick()
	start, _ := b.Active()

	require.Equal(t, Continue, b.Tick())

	p, ok := b.Active()
	require.True(t, ok)
	assert.Equal(t, start.Shifted(1, 0), p)
}

func TestTickLocksAtBottom(t *testing.T) {
	b, _ := newTestBoard(t)
	b.Place(Piece{Kind: KindO, Pos: Pos{Row: 38, Col: 0}})

	require.Equal(t, Continue, b.Tick())

	_, ok := b.Active()
	assert.False(t, ok, "a blocked drop locks the piece")
	assert.Equal(t, 4, countState(b, Filled))
	assert.Equal(t, 0, countState(b, Active))
	assert.Equal(t, 1, b.Stats().Locked)
}

func TestTickLockClearsRows(t *testing.T) {
	b, _ := newTestBoard(t)
	fillRow(b, 39, core.ColorPieceT, 1, 2)
	fillRow(b, 38, core.ColorPieceT, 1, 2)
	b.Place(Piece{Kind: KindO, Pos: Pos{Row: 38, Col: 0}})

	b.Tick()

	assert.Equal(t, 2, b.Stats().RowsCleared)
	assert.Equal(t, 0, countState(b, Filled))
}

func TestTickGameOverWhenSpawnBlocked(t *testing.T) {
	b, _ := newTestBoard(t)
	for r := 20; r < 24; r++ {
		fillRow(b, r, core.ColorPieceZ)
	}
	before := b.cells

	for i := 0; i < 3; i++ {
		assert.Equal(t, GameOver, b.Tick())
		_, ok := b.Active()
		assert.False(t, ok, "no piece is set when the spawn fails")
	}
	assert.Equal(t, before, b.cells)
	assert.Zero(t, b.Stats().Pieces)
}

func TestGameOverIsReportedOneTickAfterLock(t *testing.T) {
	b, _ := newTestBoard(t)
	// Every R0 shape bottoms out on row 21 at spawn, so a partial row 22
	// under the spawn columns stops the first piece where it appears.
	fillRow(b, 22, core.ColorPieceI, 9)

	require.Equal(t, Continue, b.Tick(), "spawn")
	require.Equal(t, Continue, b.Tick(), "lock is not game over")
	_, ok := b.Active()
	require.False(t, ok)

	assert.Equal(t, GameOver, b.Tick(), "next spawn collides")
}

func TestTickStampsClock(t *testing.T) {
	b, clock := newTestBoard(t)
	for r := 20; r < 24; r++ {
		fillRow(b, r, core.ColorPieceZ)
	}

	clock.Advance(time.Second)
	b.Tick()
	assert.Equal(t, clock.Now(), b.Gravity().LastTick(), "stamped even on game over")
}

func TestMaybeTickGating(t *testing.T) {
	b, clock := newTestBoard(t)

	_, ticked := b.MaybeTick()
	assert.False(t, ticked)

	clock.Advance(DefaultGravity)
	_, ticked = b.MaybeTick()
	assert.False(t, ticked, "exactly one interval is not enough")

	clock.Advance(time.Millisecond)
	outcome, ticked := b.MaybeTick()
	assert.True(t, ticked)
	assert.Equal(t, Continue, outcome)
	_, ok := b.Active()
	assert.True(t, ok)

	_, ticked = b.MaybeTick()
	assert.False(t, ticked, "at most one tick per interval")

	// A long stall still yields a single tick.
	clock.Advance(10 * DefaultGravity)
	_, ticked = b.MaybeTick()
	assert.True(t, ticked)
	_, ticked = b.MaybeTick()
	assert.False(t, ticked)
}

func TestGravityClockDefaults(t *testing.T) {
	g := NewGravityClock(nil, 0)
	assert.Equal(t, DefaultGravity, g.Interval())
	assert.False(t, g.LastTick().IsZero())

	custom := NewGravityClock(ClockFunc(func() time.Time { return time.Unix(10, 0) }), time.Second)
	assert.Equal(t, time.Second, custom.Interval())
	assert.Equal(t, time.Unix(10, 0), custom.LastTick())
}

func TestSpawnKindsAreUniform(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	counts := make(map[Kind]int)
	const spawns = 7000

	for i := 0; i < spawns; i++ {
		b := NewBoard(rng, &fakeClock{}, DefaultGravity)
		b.Tick()
		p, ok := b.Active()
		require.True(t, ok)
		counts[p.Kind]++
	}

	for _, k := range Kinds {
		assert.InDelta(t, spawns/kindCount, counts[k], 150, "kind %s", k)
	}
}

func TestSameSeedSameSequence(t *testing.T) {
	sequence := func() []Kind {
		rng := rand.New(rand.NewSource(42))
		var kinds []Kind
		for i := 0; i < 20; i++ {
			b := NewBoard(rng, &fakeClock{}, DefaultGravity)
			b.Tick()
			p, _ := b.Active()
			kinds = append(kinds, p.Kind)
		}
		return kinds
	}
	assert.Equal(t, sequence(), sequence())
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "continue", Continue.String())
	assert.Equal(t, "game_over", GameOver.String())
}
