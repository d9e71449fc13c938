package redis

import (
	"context"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
)

func TestLeaderboardSubmitsToSortedSet(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	ctx := context.Background()
	board := NewLeaderboard(newClient(mr))

	board.SubmitScore(ctx, "total-score", "p1", 70)
	board.SubmitScore(ctx, "total-score", "p2", 120)
	board.SubmitScore(ctx, "daily-streak", "p1", 3)

	score, err := mr.ZScore("skyspotter:board:total-score", "p1")
	if err != nil || score != 70 {
		t.Fatalf("expected p1 total 70, got %v err %v", score, err)
	}
	score, err = mr.ZScore("skyspotter:board:total-score", "p2")
	if err != nil || score != 120 {
		t.Fatalf("expected p2 total 120, got %v err %v", score, err)
	}
	score, err = mr.ZScore("skyspotter:board:daily-streak", "p1")
	if err != nil || score != 3 {
		t.Fatalf("expected p1 streak 3, got %v err %v", score, err)
	}

	// Resubmission overwrites, last writer wins.
	board.SubmitScore(ctx, "total-score", "p1", 140)
	score, err = mr.ZScore("skyspotter:board:total-score", "p1")
	if err != nil || score != 140 {
		t.Fatalf("expected p1 total 140 after resubmit, got %v err %v", score, err)
	}
}
