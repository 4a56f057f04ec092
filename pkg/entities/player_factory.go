package entities

import (
	"github.com/decker502/lanedrive/pkg/components"
	"github.com/decker502/lanedrive/pkg/config"
)

// PlayerFrames 三个方向精灵表的单帧尺寸
type PlayerFrames struct {
	Straight components.FrameSize
	Left     components.FrameSize
	Right    components.FrameSize
}

// NewPlayer 创建满血、位于起始位置、直行状态的玩家
//
// 参数:
//   - cfg: 玩家调参配置
//   - frames: 三张精灵表的帧尺寸（通常由 SpriteSheet.FrameSize 计算）
func NewPlayer(cfg config.PlayerConfig, frames PlayerFrames) *components.PlayerComponent {
	start := components.Vec2{X: cfg.StartX, Y: cfg.StartY}

	p := &components.PlayerComponent{
		Position:   start,
		Speed:      cfg.Speed,
		LeftBound:  cfg.LeftBound,
		RightBound: cfg.RightBound,
		Health: components.HealthComponent{
			CurrentHealth: cfg.MaxHealth,
			MaxHealth:     cfg.MaxHealth,
		},
		Steering: components.SteeringStraight,
		Straight: components.NewAnimatedSprite(frames.Straight, cfg.FrameDuration),
		Left:     components.NewAnimatedSprite(frames.Left, cfg.FrameDuration),
		Right:    components.NewAnimatedSprite(frames.Right, cfg.FrameDuration),
	}
	p.Straight.Position = start
	p.Left.Position = start
	p.Right.Position = start

	return p
}
