package entities

import "github.com/decker502/lanedrive/pkg/components"

// ActivateProp 复用一个空闲槽位
// 只覆盖类型、位置和精灵字段，槽位本身不会重新分配
func ActivateProp(slot *components.PropComponent, kind components.PropKind, pos components.Vec2, size components.FrameSize, frameDuration float64) {
	slot.AnimatedSprite = components.NewAnimatedSprite(size, frameDuration)
	slot.Position = pos
	slot.Kind = kind
	slot.Active = true
}

// DeactivateProp 释放槽位，保留其余字段直到下次复用
func DeactivateProp(slot *components.PropComponent) {
	slot.Active = false
}
