package components

// AnimatedSprite 基于横向精灵表的帧动画状态
// 玩家的三个方向精灵和每个道具都持有一份
type AnimatedSprite struct {
	FrameRect     Rect    // 精灵表中的源矩形，X 每帧前进一个帧宽，Y 固定
	Position      Vec2    // 世界坐标中的绘制位置（左上角）
	FrameIndex    int     // 当前帧索引，范围 [0, maxFrame]
	FrameDuration float64 // 每帧持续时间(秒)
	Elapsed       float64 // 距上次换帧累计的时间(秒)
}

// NewAnimatedSprite 创建一个位于精灵表第 0 帧的动画
func NewAnimatedSprite(size FrameSize, frameDuration float64) AnimatedSprite {
	return AnimatedSprite{
		FrameRect:     Rect{Width: size.Width, Height: size.Height},
		FrameDuration: frameDuration,
	}
}

// Bounds 返回精灵在世界坐标中的包围盒
func (a AnimatedSprite) Bounds() Rect {
	return Rect{
		X:      a.Position.X,
		Y:      a.Position.Y,
		Width:  a.FrameRect.Width,
		Height: a.FrameRect.Height,
	}
}
