package systems

import "github.com/decker502/lanedrive/pkg/game"

// ScrollBackground 移动两张纵向拼接的背景图
//
// 两个偏移都先加上 speed*dt，之后再分别检查：到达 screenHeight 的那一张
// 被放到另一张的正上方，因此两张图始终相差一个屏幕高度，没有接缝。
func ScrollBackground(y1, y2, speed, deltaTime, screenHeight float64) (float64, float64) {
	y1 += speed * deltaTime
	y2 += speed * deltaTime

	if y1 >= screenHeight {
		y1 = y2 - screenHeight
	}
	if y2 >= screenHeight {
		y2 = y1 - screenHeight
	}
	return y1, y2
}

// BackgroundScrollSystem 按当前滚动速度更新会话中的背景偏移
type BackgroundScrollSystem struct {
	session      *game.SessionState
	screenHeight float64
}

// NewBackgroundScrollSystem 创建背景滚动系统
func NewBackgroundScrollSystem(session *game.SessionState, screenHeight int) *BackgroundScrollSystem {
	return &BackgroundScrollSystem{
		session:      session,
		screenHeight: float64(screenHeight),
	}
}

// Update 推进背景
func (s *BackgroundScrollSystem) Update(deltaTime float64) {
	s.session.BackgroundY1, s.session.BackgroundY2 = ScrollBackground(
		s.session.BackgroundY1,
		s.session.BackgroundY2,
		s.session.ScrollSpeed,
		deltaTime,
		s.screenHeight,
	)
}
