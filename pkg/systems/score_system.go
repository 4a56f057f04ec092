package systems

import (
	"github.com/decker502/lanedrive/pkg/config"
	"github.com/decker502/lanedrive/pkg/game"
)

// ScoreSystem 按存活时间加分
type ScoreSystem struct {
	session *game.SessionState
	cfg     *config.ScoreConfig
}

// NewScoreSystem 创建计分系统
func NewScoreSystem(session *game.SessionState, cfg *config.ScoreConfig) *ScoreSystem {
	return &ScoreSystem{session: session, cfg: cfg}
}

// Update 每经过一个计分间隔加一次分，计时器归零
func (s *ScoreSystem) Update(deltaTime float64) {
	s.session.ScoreTimer.TargetTime = s.cfg.Interval
	if s.session.ScoreTimer.Tick(deltaTime) {
		s.session.Score += s.cfg.Points
		s.session.ScoreTimer.Reset(s.cfg.Interval)
	}
}
