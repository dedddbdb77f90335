package storage

import (
	"os"
	"path/filepath"
	"testing"

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
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore("breakout", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("breakout_endless", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("breakout", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	expected := []int{200, 100, 50}
	for i, want := range expected {
		if scores[i].Score != want {
			t.Errorf("scores[%d] = %d, expected %d", i, scores[i].Score, want)
		}
		if scores[i].GameID != "breakout" {
			t.Errorf("scores[%d].GameID = %q, expected breakout", i, scores[i].GameID)
		}
	}

	endless, err := store.TopScores("breakout_endless", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(endless) != 1 {
		t.Errorf("Expected 1 endless score, got %d", len(endless))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("test", (i+1)*100)
	}

	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}

	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("breakout")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("breakout", 100)
	store.SaveScore("breakout", 300)
	store.SaveScore("breakout", 200)

	high, err = store.HighScore("breakout")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("breakout", 100)
	store.SaveScore("breakout", 200)
	store.SaveScore("breakout_endless", 300)

	if err := store.ClearScores("breakout"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	campaign, _ := store.TopScores("breakout", 10)
	if len(campaign) != 0 {
		t.Errorf("Expected 0 breakout scores after clear, got %d", len(campaign))
	}

	endless, _ := store.TopScores("breakout_endless", 10)
	if len(endless) != 1 {
		t.Errorf("Endless scores should not be affected by clearing breakout")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("breakout")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	store.SaveScore("breakout", 100)
	store.SaveScore("breakout", 300)

	stats, err := store.GetGameStats("breakout")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.TotalScore != 400 || stats.AvgScore != 200 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestStoreRuns(t *testing.T) {
	store := openTestStore(t)

	fixed := uuid.MustParse("6f1c2a9e-3b4d-4c5e-8f70-112233445566")
	first := RunResult{
		RunID:      fixed,
		GameID:     "breakout",
		Seed:       42,
		Steps:      1000,
		Score:      55,
		Level:      1,
		BlocksLeft: 89,
		BallsLeft:  2,
		LivesLeft:  3,
		StateHash:  "00ff",
	}
	id, err := store.SaveRun(first)
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if id != fixed {
		t.Errorf("SaveRun() = %v, expected %v", id, fixed)
	}

	generated, err := store.SaveRun(RunResult{GameID: "breakout", Seed: 7, Steps: 10})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if generated == uuid.Nil {
		t.Error("SaveRun() should assign a run ID")
	}

	if _, err := store.SaveRun(first); err == nil {
		t.Error("SaveRun() with duplicate run ID should fail")
	}

	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("Expected 2 runs, got %d", len(runs))
	}
	if runs[0].RunID != generated || runs[1].RunID != fixed {
		t.Errorf("runs not newest first: %v, %v", runs[0].RunID, runs[1].RunID)
	}

	got := runs[1]
	if got.Seed != 42 || got.Steps != 1000 || got.Score != 55 || got.BlocksLeft != 89 ||
		got.BallsLeft != 2 || got.LivesLeft != 3 || got.StateHash != "00ff" {
		t.Errorf("stored run = %+v", got)
	}

	limited, err := store.RecentRuns(1)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("Expected 1 run with limit, got %d", len(limited))
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
