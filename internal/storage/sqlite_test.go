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

func TestStoreOpenCreatesNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "scores.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreOpenExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.solitaire/scores.db")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".solitaire", "scores.db")); err != nil {
		t.Errorf("database not created under HOME: %v", err)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore("klondike", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("klondike3", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("klondike", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	want := []int{200, 100, 50}
	for i, s := range scores {
		if s.Score != want[i] {
			t.Errorf("scores[%d] = %d, want %d", i, s.Score, want[i])
		}
		if s.GameID != "klondike" {
			t.Errorf("scores[%d].GameID = %q", i, s.GameID)
		}
	}

	other, err := store.TopScores("klondike3", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(other) != 1 {
		t.Errorf("Expected 1 draw-three score, got %d", len(other))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("klondike", (i+1)*100)
	}

	scores, err := store.TopScores("klondike", 3)
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

	high, err := store.HighScore("klondike")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("klondike", 100)
	store.SaveScore("klondike", 300)
	store.SaveScore("klondike", 200)

	high, err = store.HighScore("klondike")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("klondike", 100)
	store.SaveScore("klondike3", 300)
	store.SaveGameResult(GameResult{Variant: "klondike", Score: 100})
	store.SaveGameResult(GameResult{Variant: "klondike3", Score: 300})

	if err := store.ClearScores("klondike"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores("klondike", 10); len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	if results, _ := store.RecentResults("klondike", 10); len(results) != 0 {
		t.Errorf("Expected 0 results after clear, got %d", len(results))
	}
	if scores, _ := store.TopScores("klondike3", 10); len(scores) != 1 {
		t.Error("draw-three scores should not be affected")
	}
}

func TestStoreSaveGameResult(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveGameResult(GameResult{
		Variant:  "klondike3",
		Score:    230,
		Won:      true,
		Moves:    141,
		Duration: 7*time.Minute + 12*time.Second + 400*time.Millisecond,
		Seed:     42,
	})
	if err != nil {
		t.Fatalf("SaveGameResult() failed: %v", err)
	}
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("SaveGameResult() id %q is not a uuid: %v", id, err)
	}

	got, err := store.GameResultByID(id)
	if err != nil {
		t.Fatalf("GameResultByID() failed: %v", err)
	}
	if got == nil {
		t.Fatal("GameResultByID() = nil")
	}
	if got.Variant != "klondike3" || got.Score != 230 || !got.Won || got.Moves != 141 || got.Seed != 42 {
		t.Errorf("GameResultByID() = %+v", got)
	}
	if got.Duration != 7*time.Minute+12*time.Second {
		t.Errorf("Duration = %v, want 7m12s", got.Duration)
	}

	missing, err := store.GameResultByID(uuid.NewString())
	if err != nil || missing != nil {
		t.Errorf("GameResultByID(unknown) = %v, %v, want nil, nil", missing, err)
	}
}

func TestStoreSaveGameResultRejectsBadID(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveGameResult(GameResult{ID: "not-a-uuid", Variant: "klondike"}); err == nil {
		t.Error("SaveGameResult() with malformed id should fail")
	}
}

func TestStoreRecentResults(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveGameResult(GameResult{Variant: "klondike", Score: i})
	}
	store.SaveGameResult(GameResult{Variant: "klondike3", Score: 99})

	results, err := store.RecentResults("klondike", 3)
	if err != nil {
		t.Fatalf("RecentResults() failed: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(results))
	}
	// Same-second inserts fall back to insertion order
	if results[0].Score != 4 || results[2].Score != 2 {
		t.Errorf("results not newest first: %+v", results)
	}

	all, err := store.RecentResults("", 0)
	if err != nil {
		t.Fatalf("RecentResults() failed: %v", err)
	}
	if len(all) != 6 {
		t.Errorf("Expected 6 results across variants, got %d", len(all))
	}
}

func TestStoreWinStats(t *testing.T) {
	store := openTestStore(t)

	w, err := store.GetWinStats("klondike")
	if err != nil {
		t.Fatalf("GetWinStats() failed: %v", err)
	}
	if w.Played != 0 || w.WinRate() != 0 {
		t.Errorf("empty stats = %+v", w)
	}

	store.SaveGameResult(GameResult{Variant: "klondike", Won: true, Moves: 120, Duration: 5 * time.Minute})
	store.SaveGameResult(GameResult{Variant: "klondike", Won: true, Moves: 150, Duration: 4 * time.Minute})
	store.SaveGameResult(GameResult{Variant: "klondike", Moves: 40, Duration: time.Minute})
	store.SaveGameResult(GameResult{Variant: "klondike", Moves: 10, Duration: time.Minute})

	w, err = store.GetWinStats("klondike")
	if err != nil {
		t.Fatalf("GetWinStats() failed: %v", err)
	}
	if w.Played != 4 || w.Won != 2 {
		t.Errorf("Played/Won = %d/%d, want 4/2", w.Played, w.Won)
	}
	if w.WinRate() != 0.5 {
		t.Errorf("WinRate() = %v, want 0.5", w.WinRate())
	}
	if w.BestTime != 4*time.Minute || w.FewestMoves != 120 {
		t.Errorf("BestTime/FewestMoves = %v/%d, want 4m0s/120", w.BestTime, w.FewestMoves)
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("klondike", 100)
	store.SaveScore("klondike", 300)
	store.SaveScore("klondike3", 50)

	stats, err := store.GetGameStats("klondike")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.AvgScore != 200 || stats.TotalScore != 400 {
		t.Errorf("GetGameStats() = %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed not set")
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 || all["klondike3"].HighScore != 50 {
		t.Errorf("GetAllGamesStats() = %v", all)
	}
}
