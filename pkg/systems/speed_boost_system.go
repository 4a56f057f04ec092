package systems

import (
	"log"

	"github.com/decker502/lanedrive/pkg/game"
)

// SpeedBoostSystem 管理加速持续时间
type SpeedBoostSystem struct {
	session *game.SessionState
}

// NewSpeedBoostSystem 创建加速计时系统
func NewSpeedBoostSystem(session *game.SessionState) *SpeedBoostSystem {
	return &SpeedBoostSystem{session: session}
}

// Update 递减剩余时间，到期后恢复基础滚动速度
func (s *SpeedBoostSystem) Update(deltaTime float64) {
	if !s.session.SpeedBoostActive {
		return
	}

	s.session.SpeedBoostTimer -= deltaTime
	if s.session.SpeedBoostTimer <= 0 {
		s.session.SpeedBoostTimer = 0
		s.session.SpeedBoostActive = false
		s.session.ScrollSpeed = s.session.OriginalScrollSpeed
		log.Printf("[SpeedBoostSystem] Speed boost expired, scroll speed %.1f", s.session.ScrollSpeed)
	}
}
