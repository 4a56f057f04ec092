package systems

import (
	"github.com/decker502/lanedrive/pkg/components"
	"github.com/decker502/lanedrive/pkg/config"
	"github.com/decker502/lanedrive/pkg/utils"
)

// PlayerControlSystem 处理玩家赛车的横向移动和方向动画
type PlayerControlSystem struct {
	player           *components.PlayerComponent
	straightMaxFrame int
	turnMaxFrame     int
}

// NewPlayerControlSystem 创建玩家控制系统
func NewPlayerControlSystem(player *components.PlayerComponent, cfg config.PlayerConfig) *PlayerControlSystem {
	return &PlayerControlSystem{
		player:           player,
		straightMaxFrame: cfg.StraightMaxFrame,
		turnMaxFrame:     cfg.TurnMaxFrame,
	}
}

// ApplyConfig 应用热重载后的玩家参数
// 位置和生命值不受影响
func (s *PlayerControlSystem) ApplyConfig(cfg config.PlayerConfig) {
	s.player.Speed = cfg.Speed
	s.player.LeftBound = cfg.LeftBound
	s.player.RightBound = cfg.RightBound
	s.player.Health.MaxHealth = cfg.MaxHealth
	s.player.Health.Apply(0)
	s.straightMaxFrame = cfg.StraightMaxFrame
	s.turnMaxFrame = cfg.TurnMaxFrame
	s.player.Straight.FrameDuration = cfg.FrameDuration
	s.player.Left.FrameDuration = cfg.FrameDuration
	s.player.Right.FrameDuration = cfg.FrameDuration
}

// HandleInput 根据键盘意图移动赛车
//
// 左键优先于右键。到达护栏后不再移动（不做事后截断），
// 但转向精灵仍然跟随按键切换。
func (s *PlayerControlSystem) HandleInput(input utils.KeyboardState, deltaTime float64) {
	p := s.player
	switch {
	case input.Left:
		p.Steering = components.SteeringLeft
		if p.Position.X > p.LeftBound {
			p.Position.X -= p.Speed * deltaTime
		}
	case input.Right:
		p.Steering = components.SteeringRight
		if p.Position.X < p.RightBound {
			p.Position.X += p.Speed * deltaTime
		}
	default:
		p.Steering = components.SteeringStraight
	}
}

// Update 推进三个方向的动画并同步绘制位置
// 三个动画每帧都推进，切换方向时不会从第 0 帧重新开始
func (s *PlayerControlSystem) Update(deltaTime float64) {
	p := s.player
	p.Straight = AdvanceAnimation(p.Straight, deltaTime, s.straightMaxFrame)
	p.Left = AdvanceAnimation(p.Left, deltaTime, s.turnMaxFrame)
	p.Right = AdvanceAnimation(p.Right, deltaTime, s.turnMaxFrame)

	p.Straight.Position = p.Position
	p.Left.Position = p.Position
	p.Right.Position = p.Position
}
