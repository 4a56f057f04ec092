package components

// PropKind 道具类型
type PropKind int

const (
	// PropNone 空槽位
	PropNone PropKind = iota
	// PropRoadblock 路障：扣血
	PropRoadblock
	// PropPickup 苹果：回血
	PropPickup
	// PropSpeedBoost 加速带：临时提升滚动速度
	PropSpeedBoost
)

// String 返回类型名称，用于日志
func (k PropKind) String() string {
	switch k {
	case PropRoadblock:
		return "roadblock"
	case PropPickup:
		return "pickup"
	case PropSpeedBoost:
		return "speedBoost"
	default:
		return "none"
	}
}

// Animated 报告该类型的精灵表是否有多帧动画
// 只有苹果会播放动画，其余道具为静态单帧
func (k PropKind) Animated() bool {
	return k == PropPickup
}

// PropComponent 对象池中的一个道具槽位
// 槽位在启动时预分配，之后只覆盖字段，从不删除
type PropComponent struct {
	AnimatedSprite
	Kind   PropKind // 道具类型
	Active bool     // 是否在屏幕上；未激活的槽位不参与更新、绘制和碰撞
}

// PropPool 固定容量的道具对象池
// 按槽位下标索引，容量在创建后不再改变
type PropPool struct {
	Slots []PropComponent
}

// NewPropPool 预分配 capacity 个未激活的槽位
func NewPropPool(capacity int) *PropPool {
	return &PropPool{Slots: make([]PropComponent, capacity)}
}

// Capacity 返回槽位总数
func (p *PropPool) Capacity() int {
	return len(p.Slots)
}

// FirstInactive 线性扫描返回第一个空闲槽位下标，池满时返回 -1
func (p *PropPool) FirstInactive() int {
	for i := range p.Slots {
		if !p.Slots[i].Active {
			return i
		}
	}
	return -1
}

// ActiveCount 返回激活槽位数量
func (p *PropPool) ActiveCount() int {
	n := 0
	for i := range p.Slots {
		if p.Slots[i].Active {
			n++
		}
	}
	return n
}
