package components

import "testing"

func TestHealthApplyClamps(t *testing.T) {
	tests := []struct {
		name  string
		start int
		delta int
		want  int
	}{
		{"扣血", 100, -10, 90},
		{"扣到负数截断为0", 5, -10, 0},
		{"回血", 50, 10, 60},
		{"回血超过上限截断", 95, 10, 100},
		{"零变化", 40, 0, 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &HealthComponent{CurrentHealth: tt.start, MaxHealth: 100}
			h.Apply(tt.delta)
			if h.CurrentHealth != tt.want {
				t.Errorf("got %d, want %d", h.CurrentHealth, tt.want)
			}
		})
	}
}

func TestHealthIsDepleted(t *testing.T) {
	h := &HealthComponent{CurrentHealth: 10, MaxHealth: 100}
	if h.IsDepleted() {
		t.Error("10 HP should not be depleted")
	}
	h.Apply(-10)
	if !h.IsDepleted() {
		t.Error("0 HP should be depleted")
	}
}

func TestTimerComponent(t *testing.T) {
	timer := &TimerComponent{Name: "test"}
	timer.Reset(1.0)

	if timer.Tick(0.5) {
		t.Error("timer should not be ready after 0.5s")
	}
	if !timer.Tick(0.5) {
		t.Error("timer should be ready after 1.0s")
	}

	timer.Reset(2.0)
	if timer.IsReady || timer.CurrentTime != 0 || timer.TargetTime != 2.0 {
		t.Errorf("Reset did not restart timer: %+v", timer)
	}
}
