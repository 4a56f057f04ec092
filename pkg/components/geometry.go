package components

// Vec2 二维坐标（像素）
type Vec2 struct {
	X, Y float64
}

// FrameSize 精灵表中单帧的尺寸（像素）
type FrameSize struct {
	Width, Height float64
}

// Rect 轴对齐矩形，(X, Y) 为左上角
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Intersects 检查两个矩形是否重叠（AABB）
// 两个轴上都必须严格重叠，仅边缘相接不算碰撞
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}
