package systems

import "github.com/decker502/lanedrive/pkg/components"

// AdvanceAnimation 推进精灵表动画，返回更新后的精灵
//
// 累计 deltaTime；达到 FrameDuration 时清零计时，把源矩形移动到当前帧，
// 再把帧索引加一，超过 maxFrame 时回到 0。
// 函数不修改入参，相同输入总是得到相同输出。
func AdvanceAnimation(sprite components.AnimatedSprite, deltaTime float64, maxFrame int) components.AnimatedSprite {
	sprite.Elapsed += deltaTime
	if sprite.Elapsed < sprite.FrameDuration {
		return sprite
	}

	sprite.Elapsed = 0
	sprite.FrameRect.X = float64(sprite.FrameIndex) * sprite.FrameRect.Width
	sprite.FrameIndex++
	if sprite.FrameIndex > maxFrame {
		sprite.FrameIndex = 0
	}
	return sprite
}
