package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsSessions(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveSession(Session{GameID: "tetris", EndReason: EndGameOver}); err != nil {
		t.Fatalf("SaveSession() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	n, err := store.SessionCount("tetris")
	if err != nil {
		t.Fatalf("SessionCount() failed: %v", err)
	}
	if n != 1 {
		t.Errorf("Expected 1 session after reopen, got %d", n)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	first := Session{
		GameID:      "tetris",
		Player:      "alice",
		Pieces:      42,
		RowsCleared: 7,
		Duration:    95 * time.Second,
		EndReason:   EndGameOver,
	}
	id, err := store.SaveSession(first)
	if err != nil {
		t.Fatalf("SaveSession() failed: %v", err)
	}
	if id <= 0 {
		t.Errorf("Expected positive ID, got %d", id)
	}

	// Player defaults to local; sub-second durations are truncated.
	if _, err := store.SaveSession(Session{
		GameID:    "tetris",
		Pieces:    3,
		Duration:  1500 * time.Millisecond,
		EndReason: EndQuit,
	}); err != nil {
		t.Fatalf("SaveSession() failed: %v", err)
	}

	sessions, err := store.RecentSessions(10)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("Expected 2 sessions, got %d", len(sessions))
	}

	// Newest first
	latest := sessions[0]
	if latest.Player != "local" || latest.EndReason != EndQuit || latest.Duration != time.Second {
		t.Errorf("Unexpected latest session: %+v", latest)
	}

	got := sessions[1]
	if got.ID != id || got.Player != "alice" || got.Pieces != 42 || got.RowsCleared != 7 {
		t.Errorf("Unexpected first session: %+v", got)
	}
	if got.Duration != 95*time.Second {
		t.Errorf("Expected duration 95s, got %v", got.Duration)
	}
	if got.CreatedAt.IsZero() {
		t.Error("Expected created_at to be set")
	}
}

func TestStoreSaveSessionRejectsInvalid(t *testing.T) {
	store := openTestStore(t)

	tests := []struct {
		name string
		sess Session
	}{
		{"no game", Session{EndReason: EndQuit}},
		{"no reason", Session{GameID: "tetris"}},
		{"unknown reason", Session{GameID: "tetris", EndReason: "crashed"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := store.SaveSession(tt.sess); err == nil {
				t.Error("Expected error")
			}
		})
	}

	n, err := store.SessionCount("tetris")
	if err != nil {
		t.Fatalf("SessionCount() failed: %v", err)
	}
	if n != 0 {
		t.Errorf("Expected nothing saved, got %d", n)
	}
}

func TestStoreRecentSessionsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 25; i++ {
		if _, err := store.SaveSession(Session{GameID: "tetris", Pieces: i, EndReason: EndGameOver}); err != nil {
			t.Fatalf("SaveSession() failed: %v", err)
		}
	}

	sessions, err := store.RecentSessions(5)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(sessions) != 5 {
		t.Fatalf("Expected 5 sessions, got %d", len(sessions))
	}
	if sessions[0].Pieces != 24 {
		t.Errorf("Expected newest session first, got pieces=%d", sessions[0].Pieces)
	}

	// Non-positive limit falls back to 20
	sessions, err = store.RecentSessions(0)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(sessions) != 20 {
		t.Errorf("Expected 20 sessions, got %d", len(sessions))
	}
}

func TestStoreClearSessions(t *testing.T) {
	store := openTestStore(t)

	for _, game := range []string{"tetris", "tetris", "other"} {
		if _, err := store.SaveSession(Session{GameID: game, EndReason: EndQuit}); err != nil {
			t.Fatalf("SaveSession() failed: %v", err)
		}
	}

	if err := store.ClearSessions("tetris"); err != nil {
		t.Fatalf("ClearSessions() failed: %v", err)
	}

	if n, _ := store.SessionCount("tetris"); n != 0 {
		t.Errorf("Expected 0 tetris sessions after clear, got %d", n)
	}
	if n, _ := store.SessionCount("other"); n != 1 {
		t.Errorf("Other games should be untouched, got %d", n)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats("tetris")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.Sessions != 0 || empty.BestRows != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Expected zero stats, got %+v", empty)
	}

	for _, s := range []Session{
		{GameID: "tetris", Pieces: 10, RowsCleared: 2, EndReason: EndGameOver},
		{GameID: "tetris", Pieces: 30, RowsCleared: 9, EndReason: EndGameOver},
		{GameID: "tetris", Pieces: 5, RowsCleared: 0, EndReason: EndQuit},
	} {
		if _, err := store.SaveSession(s); err != nil {
			t.Fatalf("SaveSession() failed: %v", err)
		}
	}

	stats, err := store.Stats("tetris")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Sessions != 3 {
		t.Errorf("Expected 3 sessions, got %d", stats.Sessions)
	}
	if stats.BestRows != 9 {
		t.Errorf("Expected best 9 rows, got %d", stats.BestRows)
	}
	if stats.TotalRows != 11 || stats.TotalPieces != 45 {
		t.Errorf("Unexpected totals: rows=%d pieces=%d", stats.TotalRows, stats.TotalPieces)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("Expected last played to be set")
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.termtris/history.db")
	if err != nil {
		t.Fatalf("Open() with ~ path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".termtris", "history.db")); err != nil {
		t.Errorf("Database not created under home: %v", err)
	}
}
