package components

import "github.com/hajimehoshi/ebiten/v2"

// SpriteSheet 横向排列的精灵表
type SpriteSheet struct {
	Image   *ebiten.Image
	Columns int // 帧数（列数），小于等于 1 视为单帧
}

// FrameSize 返回单帧尺寸
func (s SpriteSheet) FrameSize() FrameSize {
	if s.Image == nil {
		return FrameSize{}
	}
	b := s.Image.Bounds()
	cols := s.Columns
	if cols < 1 {
		cols = 1
	}
	return FrameSize{
		Width:  float64(b.Dx()) / float64(cols),
		Height: float64(b.Dy()),
	}
}
