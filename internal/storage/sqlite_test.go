package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
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

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreOpenEmptyPath(t *testing.T) {
	if _, err := Open(""); err == nil {
		t.Error("Open(\"\") should fail")
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestSaveRunAssignsID(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRun(Run{Player: "local", Score: 3, Level: 1, Duration: 4200 * time.Millisecond})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("SaveRun() returned %q, expected a UUID", id)
	}

	runs, err := store.RecentRuns(5)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("Expected 1 run, got %d", len(runs))
	}
	r := runs[0]
	if r.ID != id || r.Player != "local" || r.Score != 3 || r.Level != 1 {
		t.Errorf("Unexpected run: %+v", r)
	}
	if r.Duration != 4200*time.Millisecond {
		t.Errorf("Duration = %s, expected 4.2s", r.Duration)
	}
}

func TestSaveRunKeepsGivenID(t *testing.T) {
	store := openTestStore(t)

	want := uuid.NewString()
	got, err := store.SaveRun(Run{ID: want, Player: "p", Score: 1, Level: 1})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if got != want {
		t.Errorf("SaveRun() = %q, expected %q", got, want)
	}

	// Same run twice is rejected by the unique index
	if _, err := store.SaveRun(Run{ID: want, Player: "p", Score: 1, Level: 1}); err == nil {
		t.Error("Duplicate run ID should be rejected")
	}
}

func TestSaveRunRejectsBadInput(t *testing.T) {
	store := openTestStore(t)

	tests := []struct {
		name string
		run  Run
	}{
		{"malformed id", Run{ID: "not-a-uuid", Player: "p"}},
		{"negative score", Run{Player: "p", Score: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := store.SaveRun(tt.run); err == nil {
				t.Error("SaveRun() should fail")
			}
		})
	}
}

func TestTopRunsOrderAndLimit(t *testing.T) {
	store := openTestStore(t)

	for i, score := range []int{5, 20, 1, 20, 12} {
		if _, err := store.SaveRun(Run{Player: "p", Score: score, Level: levelFor(score), Duration: time.Duration(i) * time.Second}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.TopRuns(3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(runs))
	}
	if runs[0].Score != 20 || runs[1].Score != 20 || runs[2].Score != 12 {
		t.Errorf("Runs not in expected order: %+v", runs)
	}
	// Ties go to the earlier run
	if runs[0].Duration != time.Second || runs[1].Duration != 3*time.Second {
		t.Errorf("Tie order wrong: %s then %s", runs[0].Duration, runs[1].Duration)
	}
}

func TestRecentRunsNewestFirst(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{1, 2, 3} {
		store.SaveRun(Run{Player: "p", Score: score, Level: 1})
	}

	runs, err := store.RecentRuns(0)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 3 || runs[0].Score != 3 || runs[2].Score != 1 {
		t.Errorf("Unexpected recent runs: %+v", runs)
	}
}

func TestPlayerRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{Player: "alice", Score: 4, Level: 1})
	store.SaveRun(Run{Player: "bob", Score: 9, Level: 2})
	store.SaveRun(Run{Player: "alice", Score: 7, Level: 2})

	runs, err := store.PlayerRuns("alice", 10)
	if err != nil {
		t.Fatalf("PlayerRuns() failed: %v", err)
	}
	if len(runs) != 2 || runs[0].Score != 7 || runs[1].Score != 4 {
		t.Errorf("Unexpected runs for alice: %+v", runs)
	}
}

func TestStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 0 || stats.BestScore != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", stats)
	}

	store.SaveRun(Run{Player: "p", Score: 4, Level: 1, Duration: 2 * time.Second})
	store.SaveRun(Run{Player: "p", Score: 16, Level: 3, Duration: 8 * time.Second})

	stats, err = store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 2 || stats.BestScore != 16 || stats.TotalScore != 20 || stats.BestLevel != 3 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
	if stats.AvgScore != 10 {
		t.Errorf("AvgScore = %v, expected 10", stats.AvgScore)
	}
	if stats.PlayTime != 10*time.Second {
		t.Errorf("PlayTime = %s, expected 10s", stats.PlayTime)
	}
}

func TestClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{Player: "p", Score: 1, Level: 1})
	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, _ := store.TopRuns(10)
	if len(runs) != 0 {
		t.Errorf("Expected no runs after clear, got %d", len(runs))
	}
}

// levelFor mirrors the game's level bands so test rows look realistic.
func levelFor(score int) int {
	switch {
	case score < 5:
		return 1
	case score < 15:
		return 2
	default:
		return 3
	}
}
