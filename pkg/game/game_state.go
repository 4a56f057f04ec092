package game

import (
	"log"

	"github.com/decker502/lanedrive/pkg/components"
	"github.com/decker502/lanedrive/pkg/config"
)

// Status 一局游戏所处的阶段
type Status int

const (
	// StatusPlaying 正常进行（可能处于暂停）
	StatusPlaying Status = iota
	// StatusGameOver 生命值耗尽，本局结束
	StatusGameOver
)

// String 返回阶段名称，用于日志
func (s Status) String() string {
	if s == StatusGameOver {
		return "gameOver"
	}
	return "playing"
}

// SessionState 存储一局游戏的全局状态
// 由各个系统共享读写，每帧只在游戏循环所在的 goroutine 中访问
type SessionState struct {
	Score      int                        // 当前分数
	ScoreTimer components.TimerComponent // 加分计时器

	// 两张背景图的纵坐标，始终相差一个屏幕高度
	BackgroundY1 float64
	BackgroundY2 float64

	ScrollSpeed         float64 // 当前滚动速度（像素/秒），加速期间大于基础速度
	OriginalScrollSpeed float64 // 基础滚动速度，加速结束后恢复到这个值

	SpeedBoostActive bool    // 加速是否生效
	SpeedBoostTimer  float64 // 加速剩余时间（秒）

	Paused bool   // 暂停时整帧模拟都被跳过
	Status Status // 游戏阶段
}

// NewSessionState 按调参配置创建一局新游戏的状态
func NewSessionState(tuning *config.TuningConfig) *SessionState {
	s := &SessionState{
		BackgroundY1:        0,
		BackgroundY2:        -float64(tuning.Screen.Height),
		ScrollSpeed:         tuning.Scroll.Speed,
		OriginalScrollSpeed: tuning.Scroll.Speed,
		Status:              StatusPlaying,
	}
	s.ScoreTimer = components.TimerComponent{Name: "score", TargetTime: tuning.Score.Interval}
	return s
}

// IsGameOver 本局是否已结束
func (s *SessionState) IsGameOver() bool {
	return s.Status == StatusGameOver
}

// TogglePause 切换暂停状态
// 游戏结束后暂停被锁定，返回 false 表示没有切换
func (s *SessionState) TogglePause() bool {
	if s.IsGameOver() {
		return false
	}
	s.Paused = !s.Paused
	log.Printf("[SessionState] Paused = %v", s.Paused)
	return true
}

// EnterGameOver 进入结束阶段，并锁定为暂停
// 重复调用是安全的，返回值表示是否是第一次进入
func (s *SessionState) EnterGameOver() bool {
	if s.IsGameOver() {
		return false
	}
	s.Status = StatusGameOver
	s.Paused = true
	log.Printf("[SessionState] Game over, final score %d", s.Score)
	return true
}

// SetBaseScrollSpeed 调整基础滚动速度（热重载使用）
// 加速生效期间只更新基础值，当前速度保持基础值加增量的关系
func (s *SessionState) SetBaseScrollSpeed(speed float64) {
	delta := s.ScrollSpeed - s.OriginalScrollSpeed
	s.OriginalScrollSpeed = speed
	if s.SpeedBoostActive {
		s.ScrollSpeed = speed + delta
	} else {
		s.ScrollSpeed = speed
	}
}
