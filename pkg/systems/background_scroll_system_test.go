package systems

import (
	"math"
	"testing"

	"github.com/decker502/lanedrive/pkg/config"
	"github.com/decker502/lanedrive/pkg/game"
)

const floatEpsilon = 1e-6

func TestScrollBackground(t *testing.T) {
	tests := []struct {
		name   string
		y1, y2 float64
		speed  float64
		dt     float64
		want1  float64
		want2  float64
	}{
		{"普通滚动", 0, -720, 500, 0.5, 250, -470},
		{"第一张到达底部后移到上方", 700, -20, 100, 0.5, -690, 30},
		{"第二张到达底部后移到上方", -20, 700, 100, 0.5, 30, -690},
		{"恰好到达屏幕高度也会回绕", 620, -100, 100, 1, -720, 0},
		{"速度为零不移动", 10, -710, 0, 1, 10, -710},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got1, got2 := ScrollBackground(tt.y1, tt.y2, tt.speed, tt.dt, 720)
			if math.Abs(got1-tt.want1) > floatEpsilon || math.Abs(got2-tt.want2) > floatEpsilon {
				t.Errorf("ScrollBackground = (%.3f, %.3f), want (%.3f, %.3f)", got1, got2, tt.want1, tt.want2)
			}
		})
	}
}

// TestScrollBackgroundNoSeam 两张背景在任何时刻都相差一个屏幕高度
func TestScrollBackgroundNoSeam(t *testing.T) {
	const (
		screenHeight = 720.0
		speed        = 500.0
		dt           = 1.0 / 60.0
	)

	y1, y2 := 0.0, -screenHeight
	for i := 0; i < 100; i++ {
		y1, y2 = ScrollBackground(y1, y2, speed, dt, screenHeight)
		if diff := math.Abs(y2 - y1); math.Abs(diff-screenHeight) > floatEpsilon {
			t.Fatalf("step %d: |y2-y1| = %.9f, want %.1f", i, diff, screenHeight)
		}
		if y1 >= screenHeight || y2 >= screenHeight {
			t.Fatalf("step %d: offset left the loop (%.3f, %.3f)", i, y1, y2)
		}
	}
}

func TestBackgroundScrollSystemUsesSessionSpeed(t *testing.T) {
	session := game.NewSessionState(config.DefaultTuning())
	session.ScrollSpeed = 525
	sys := NewBackgroundScrollSystem(session, 720)

	sys.Update(1.0 / 60.0)

	want := 525.0 / 60.0
	if math.Abs(session.BackgroundY1-want) > floatEpsilon {
		t.Errorf("BackgroundY1 = %.4f, want %.4f", session.BackgroundY1, want)
	}
	if math.Abs(session.BackgroundY2-(want-720)) > floatEpsilon {
		t.Errorf("BackgroundY2 = %.4f, want %.4f", session.BackgroundY2, want-720)
	}
}
