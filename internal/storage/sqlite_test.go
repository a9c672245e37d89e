package storage

import (
	"sync"
	"testing"
	"time"

	"github.com/vovakirdan/pong/internal/engine"
	"github.com/vovakirdan/pong/internal/games/pong"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open()
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func result(session string, winner pong.Side, left, right int) engine.MatchResult {
	return engine.MatchResult{
		Session:  session,
		Frontend: "tui",
		Winner:   winner,
		Score:    pong.Score{Left: left, Right: right},
		Frames:   1200,
		Duration: 20 * time.Second,
	}
}

func TestStoreStartsEmpty(t *testing.T) {
	store := openStore(t)

	records, err := store.RecentMatches(10)
	if err != nil {
		t.Fatalf("RecentMatches() failed: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("Expected empty ledger, got %d matches", len(records))
	}

	tally, err := store.Tally("")
	if err != nil {
		t.Fatalf("Tally() failed: %v", err)
	}
	if tally.Matches != 0 || tally.LeftWins != 0 || tally.RightWins != 0 {
		t.Errorf("Expected zero tally, got %+v", tally)
	}
}

func TestStoresAreIndependent(t *testing.T) {
	a := openStore(t)
	b := openStore(t)

	if _, err := a.SaveMatch(result("s", pong.SideLeft, 10, 2)); err != nil {
		t.Fatalf("SaveMatch() failed: %v", err)
	}

	records, err := b.RecentMatches(10)
	if err != nil {
		t.Fatalf("RecentMatches() failed: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("Expected second store to be empty, got %d", len(records))
	}
}

func TestSaveAndRecentNewestFirst(t *testing.T) {
	store := openStore(t)

	finished := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	first := result("alice", pong.SideLeft, 10, 4)
	first.FinishedAt = finished
	if _, err := store.SaveMatch(first); err != nil {
		t.Fatalf("SaveMatch() failed: %v", err)
	}
	if err := store.SaveMatchResult(result("bob", pong.SideRight, 7, 10)); err != nil {
		t.Fatalf("SaveMatchResult() failed: %v", err)
	}
	if err := store.SaveMatchResult(result("alice", pong.SideRight, 9, 10)); err != nil {
		t.Fatalf("SaveMatchResult() failed: %v", err)
	}

	records, err := store.RecentMatches(10)
	if err != nil {
		t.Fatalf("RecentMatches() failed: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("Expected 3 matches, got %d", len(records))
	}
	if records[0].Score.Left != 9 || records[1].Session != "bob" || records[2].Score.Left != 10 {
		t.Errorf("Unexpected order: %+v", records)
	}

	oldest := records[2]
	if oldest.Winner != pong.SideLeft {
		t.Errorf("Winner = %v, want Left", oldest.Winner)
	}
	if oldest.Frames != 1200 || oldest.Duration != 20*time.Second || oldest.Frontend != "tui" {
		t.Errorf("Round trip lost fields: %+v", oldest)
	}
	if !oldest.FinishedAt.Equal(finished) {
		t.Errorf("FinishedAt = %v, want %v", oldest.FinishedAt, finished)
	}
	if records[0].FinishedAt.IsZero() {
		t.Error("Expected zero FinishedAt to be stamped")
	}

	limited, err := store.RecentMatches(1)
	if err != nil {
		t.Fatalf("RecentMatches() failed: %v", err)
	}
	if len(limited) != 1 || limited[0].ID != records[0].ID {
		t.Errorf("Limit 1 returned %+v", limited)
	}
}

func TestTally(t *testing.T) {
	store := openStore(t)

	for _, r := range []engine.MatchResult{
		result("alice", pong.SideLeft, 10, 1),
		result("alice", pong.SideLeft, 10, 8),
		result("alice", pong.SideRight, 3, 10),
		result("bob", pong.SideRight, 0, 10),
	} {
		if err := store.SaveMatchResult(r); err != nil {
			t.Fatalf("SaveMatchResult() failed: %v", err)
		}
	}

	tests := []struct {
		session string
		want    Tally
	}{
		{"alice", Tally{Session: "alice", Matches: 3, LeftWins: 2, RightWins: 1, Frames: 3600}},
		{"bob", Tally{Session: "bob", Matches: 1, RightWins: 1, Frames: 1200}},
		{"carol", Tally{Session: "carol"}},
		{"", Tally{Matches: 4, LeftWins: 2, RightWins: 2, Frames: 4800}},
	}
	for _, tt := range tests {
		t.Run(tt.session, func(t *testing.T) {
			got, err := store.Tally(tt.session)
			if err != nil {
				t.Fatalf("Tally() failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("Tally(%q) = %+v, want %+v", tt.session, got, tt.want)
			}
		})
	}
}

func TestConcurrentSaves(t *testing.T) {
	store := openStore(t)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := store.SaveMatchResult(result("ssh", pong.SideLeft, 10, 0)); err != nil {
				t.Errorf("SaveMatchResult() failed: %v", err)
			}
		}()
	}
	wg.Wait()

	tally, err := store.Tally("ssh")
	if err != nil {
		t.Fatalf("Tally() failed: %v", err)
	}
	if tally.Matches != 8 {
		t.Errorf("Expected 8 matches, got %d", tally.Matches)
	}
}
