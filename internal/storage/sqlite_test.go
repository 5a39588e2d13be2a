package storage

import (
	"os"
	"path/filepath"
	"testing"
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

	if err := store.Close(); err != nil {
		t.Errorf("Close() failed: %v", err)
	}

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveScore("shooter", 1200, 2)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	if id <= 0 {
		t.Errorf("Expected positive ID, got %d", id)
	}

	if _, err := store.SaveScoreAs("alice", "shooter", 300, 1); err != nil {
		t.Fatalf("SaveScoreAs() failed: %v", err)
	}

	scores, err := store.TopScores("shooter", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 2 {
		t.Fatalf("Expected 2 scores, got %d", len(scores))
	}

	best := scores[0]
	if best.Score != 1200 || best.Level != 2 || best.Player != "" || best.GameID != "shooter" {
		t.Errorf("best run = %+v", best)
	}
	if best.CreatedAt.IsZero() {
		t.Error("CreatedAt was not parsed")
	}
	if scores[1].Player != "alice" {
		t.Errorf("second run player = %q, expected alice", scores[1].Player)
	}
}

func TestStoreLevelFloor(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveScore("shooter", 0, 0); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, _ := store.TopScores("shooter", 1)
	if len(scores) != 1 || scores[0].Level != 1 {
		t.Errorf("level below 1 should be stored as 1, got %+v", scores)
	}
}

func TestStoreTopScoresOrdering(t *testing.T) {
	store := openTestStore(t)

	runs := []struct {
		score, level int
	}{
		{500, 1},
		{2000, 3},
		{500, 2},
		{100, 1},
	}
	for _, r := range runs {
		if _, err := store.SaveScore("shooter", r.score, r.level); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores("shooter", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}

	expected := []struct{ score, level int }{{2000, 3}, {500, 2}, {500, 1}}
	for i, want := range expected {
		if scores[i].Score != want.score || scores[i].Level != want.level {
			t.Errorf("scores[%d] = %d/LV%d, expected %d/LV%d",
				i, scores[i].Score, scores[i].Level, want.score, want.level)
		}
	}
}

func TestStoreTopScoresDefaultLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 15; i++ {
		store.SaveScore("shooter", i*100, 1)
	}

	scores, err := store.TopScores("shooter", 0)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 10 {
		t.Errorf("Expected default limit of 10, got %d", len(scores))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("shooter")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("shooter", 100, 1)
	store.SaveScore("shooter", 3000, 4)
	store.SaveScore("shooter", 200, 1)

	high, err = store.HighScore("shooter")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 3000 {
		t.Errorf("Expected high score of 3000, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("shooter", 100, 1)
	store.SaveScore("shooter", 200, 1)
	store.SaveScore("other", 300, 1)

	if err := store.ClearScores("shooter"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores("shooter", 10); len(scores) != 0 {
		t.Errorf("Expected 0 shooter scores after clear, got %d", len(scores))
	}
	if scores, _ := store.TopScores("other", 10); len(scores) != 1 {
		t.Errorf("other game's scores should not be affected by clearing shooter")
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		store.SaveScore("shooter", i*10, 1)
	}

	scores, err := store.AllScores("shooter")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
	if scores[0].Score != 190 {
		t.Errorf("AllScores()[0] = %d, expected the best run first", scores[0].Score)
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetGameStats("shooter")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", stats)
	}

	store.SaveScore("shooter", 1000, 2)
	store.SaveScore("shooter", 3000, 4)

	stats, err = store.GetGameStats("shooter")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 3000 || stats.TotalScore != 4000 || stats.MaxLevel != 4 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.AvgScore != 2000 {
		t.Errorf("AvgScore = %v, expected 2000", stats.AvgScore)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed was not set")
	}
}

func TestStoreReopenKeepsScores(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	store.SaveScore("shooter", 700, 1)
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	if high, _ := store.HighScore("shooter"); high != 700 {
		t.Errorf("HighScore() after reopen = %d, expected 700", high)
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
