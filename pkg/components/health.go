package components

// HealthComponent 存储生命值信息
type HealthComponent struct {
	CurrentHealth int // 当前生命值
	MaxHealth     int // 最大生命值
}

// Apply 按 delta 调整生命值并限制在 [0, MaxHealth]
func (h *HealthComponent) Apply(delta int) {
	h.CurrentHealth += delta
	if h.CurrentHealth < 0 {
		h.CurrentHealth = 0
	}
	if h.CurrentHealth > h.MaxHealth {
		h.CurrentHealth = h.MaxHealth
	}
}

// IsDepleted 生命值是否已耗尽
func (h *HealthComponent) IsDepleted() bool {
	return h.CurrentHealth <= 0
}
