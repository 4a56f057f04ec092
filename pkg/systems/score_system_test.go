package systems

import (
	"testing"

	"github.com/decker502/lanedrive/pkg/config"
	"github.com/decker502/lanedrive/pkg/game"
)

func TestScoreSystem(t *testing.T) {
	tuning := config.DefaultTuning()
	session := game.NewSessionState(tuning)
	sys := NewScoreSystem(session, &tuning.Score)

	// 0.25 秒一步，每 4 步加一次分
	for i := 0; i < 3; i++ {
		sys.Update(0.25)
	}
	if session.Score != 0 {
		t.Fatalf("Score = %d before the first interval, want 0", session.Score)
	}

	sys.Update(0.25)
	if session.Score != 10 {
		t.Fatalf("Score = %d after 1s, want 10", session.Score)
	}
	if session.ScoreTimer.CurrentTime != 0 {
		t.Errorf("ScoreTimer should reset, got %.2f", session.ScoreTimer.CurrentTime)
	}

	for i := 0; i < 8; i++ {
		sys.Update(0.25)
	}
	if session.Score != 30 {
		t.Errorf("Score = %d after 3s, want 30", session.Score)
	}
}

func TestScoreSystemFollowsConfig(t *testing.T) {
	tuning := config.DefaultTuning()
	session := game.NewSessionState(tuning)
	sys := NewScoreSystem(session, &tuning.Score)

	tuning.Score.Interval = 0.5
	tuning.Score.Points = 3
	sys.Update(0.5)

	if session.Score != 3 {
		t.Errorf("Score = %d, want 3 with reloaded config", session.Score)
	}
}
