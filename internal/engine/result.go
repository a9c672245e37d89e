package engine

import (
	"time"

	"github.com/vovakirdan/pong/internal/games/pong"
)

// MatchResult describes a finished match.
type MatchResult struct {
	Session    string
	Frontend   string
	Winner     pong.Side
	Score      pong.Score
	Frames     int
	Duration   time.Duration
	FinishedAt time.Time
}

// ResultSaver stores finished matches.
// This lets the loop record results without a direct storage dependency.
type ResultSaver interface {
	SaveMatchResult(result MatchResult) error
}
