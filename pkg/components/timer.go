package components

// TimerComponent 通用计时器组件
// 用于生成间隔等需要时间累计的行为
type TimerComponent struct {
	Name        string  // 计时器名称，如 "prop_spawn"
	TargetTime  float64 // 目标时间（秒）
	CurrentTime float64 // 当前已过时间（秒）
	IsReady     bool    // 计时器是否已完成
}

// Tick 累计时间并更新 IsReady
func (t *TimerComponent) Tick(deltaTime float64) bool {
	t.CurrentTime += deltaTime
	t.IsReady = t.CurrentTime >= t.TargetTime
	return t.IsReady
}

// Reset 以新的目标时间重新开始计时
func (t *TimerComponent) Reset(target float64) {
	t.TargetTime = target
	t.CurrentTime = 0
	t.IsReady = false
}
