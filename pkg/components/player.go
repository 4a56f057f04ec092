package components

// Steering 玩家当前的转向方向，决定绘制哪一张精灵表
type Steering int

const (
	SteeringStraight Steering = iota
	SteeringLeft
	SteeringRight
)

// PlayerComponent 玩家赛车状态
// 三个方向精灵共享同一个位置，它们只是被选择绘制，从不单独移动
type PlayerComponent struct {
	Position   Vec2
	Speed      float64 // 横向移动速度（像素/秒）
	LeftBound  float64 // 到达后不再向左移动
	RightBound float64 // 到达后不再向右移动
	Health     HealthComponent
	Steering   Steering

	Straight AnimatedSprite
	Left     AnimatedSprite
	Right    AnimatedSprite
}

// CollisionRect 返回玩家的碰撞矩形
// 无论当前绘制哪个方向，都使用直行精灵的帧尺寸
func (p *PlayerComponent) CollisionRect() Rect {
	return Rect{
		X:      p.Position.X,
		Y:      p.Position.Y,
		Width:  p.Straight.FrameRect.Width,
		Height: p.Straight.FrameRect.Height,
	}
}

// TakeDamage 扣除生命值，最低为 0
func (p *PlayerComponent) TakeDamage(amount int) {
	p.Health.Apply(-amount)
}

// Heal 恢复生命值，最高为上限
func (p *PlayerComponent) Heal(amount int) {
	p.Health.Apply(amount)
}

// CurrentSprite 返回当前转向对应的精灵
func (p *PlayerComponent) CurrentSprite() *AnimatedSprite {
	switch p.Steering {
	case SteeringLeft:
		return &p.Left
	case SteeringRight:
		return &p.Right
	default:
		return &p.Straight
	}
}
