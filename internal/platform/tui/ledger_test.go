package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/pong/internal/engine"
	"github.com/vovakirdan/pong/internal/games/pong"
	"github.com/vovakirdan/pong/internal/storage"
)

func TestRenderLedgerEmpty(t *testing.T) {
	out := RenderLedger(nil, 20)
	if !strings.Contains(out, "No finished matches yet") {
		t.Errorf("unexpected output: %q", out)
	}
}

func TestRenderLedgerRows(t *testing.T) {
	records := []storage.MatchRecord{
		{ID: 2, MatchResult: engine.MatchResult{
			Winner:     pong.SideRight,
			Score:      pong.Score{Left: 7, Right: 10},
			Duration:   95 * time.Second,
			FinishedAt: time.Date(2024, 1, 1, 13, 5, 9, 0, time.Local),
		}},
		{ID: 1, MatchResult: engine.MatchResult{
			Winner: pong.SideLeft,
			Score:  pong.Score{Left: 10, Right: 0},
		}},
	}

	out := RenderLedger(records, 20)
	for _, want := range []string{"Matches this session", "Winner", "Right", "7-10", "1m35s", "13:05:09", "10-0"} {
		if !strings.Contains(out, want) {
			t.Errorf("ledger missing %q:\n%s", want, out)
		}
	}
}
