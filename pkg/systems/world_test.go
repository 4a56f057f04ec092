package systems

import (
	"math/rand"
	"testing"

	"github.com/decker502/lanedrive/pkg/components"
	"github.com/decker502/lanedrive/pkg/config"
	"github.com/decker502/lanedrive/pkg/entities"
	"github.com/decker502/lanedrive/pkg/game"
	"github.com/decker502/lanedrive/pkg/utils"
)

// newTestWorld 创建使用默认配置的 World
// 生成间隔固定抽到接近上限（约 2.48 秒），测试期间的短时间模拟不会生成新道具
func newTestWorld(t *testing.T) (*World, *audioRecorder) {
	t.Helper()
	rec := &audioRecorder{}
	rng := &fixedRandom{floats: []float64{0.99, 0.99, 0.99}}
	return NewWorld(config.DefaultTuning(), testPlayerFrames, testPropSheets, rec, rng), rec
}

// placeOnPlayer 在槽位 0 激活一个与玩家重叠的道具
func placeOnPlayer(w *World, kind components.PropKind, offsetY float64) {
	prop := &w.Pool.Slots[0]
	pos := components.Vec2{X: w.Player.Position.X, Y: w.Player.Position.Y + offsetY}
	entities.ActivateProp(prop, kind, pos, w.Sheets[kind].Size, w.Tuning.Spawn.FrameDuration)
}

// TestRoadblockScenario 满血开始，连续撞路障直到游戏结束
func TestRoadblockScenario(t *testing.T) {
	w, rec := newTestWorld(t)
	const dt = 1.0 / 60.0

	hit := func() {
		placeOnPlayer(w, components.PropRoadblock, 0)
		w.Step(utils.KeyboardState{}, dt)
	}

	if w.Player.Health.CurrentHealth != 100 {
		t.Fatalf("start health = %d, want 100", w.Player.Health.CurrentHealth)
	}

	hit()
	if w.Player.Health.CurrentHealth != 90 {
		t.Fatalf("health after 1 hit = %d, want 90", w.Player.Health.CurrentHealth)
	}

	for i := 0; i < 3; i++ {
		hit()
	}
	if w.Player.Health.CurrentHealth != 60 {
		t.Fatalf("health after 4 hits = %d, want 60", w.Player.Health.CurrentHealth)
	}
	if w.Session.IsGameOver() {
		t.Fatal("game over too early")
	}

	for i := 0; i < 6; i++ {
		hit()
	}
	if w.Player.Health.CurrentHealth != 0 {
		t.Fatalf("health after 10 hits = %d, want 0", w.Player.Health.CurrentHealth)
	}
	if w.Session.Status != game.StatusGameOver {
		t.Errorf("Status = %v, want gameOver", w.Session.Status)
	}
	if !w.Session.Paused {
		t.Error("game over must force pause")
	}
	if rec.musicStopped != 1 {
		t.Errorf("StopMusic called %d times, want 1", rec.musicStopped)
	}
	if len(rec.stopped) != 1 || rec.stopped[0] != config.SoundEngine {
		t.Errorf("stopped sounds = %v, want [%s]", rec.stopped, config.SoundEngine)
	}
	if rec.count(config.SoundRoadblockHit) != 10 {
		t.Errorf("hit cue played %d times, want 10", rec.count(config.SoundRoadblockHit))
	}
}

// TestSpeedBoostScenario 加速不叠加、再次命中刷新时间、到期后恢复
func TestSpeedBoostScenario(t *testing.T) {
	w, _ := newTestWorld(t)
	const dt = 0.25
	original := w.Session.OriginalScrollSpeed
	boosted := original + w.Tuning.Effects.SpeedBoostDelta

	// 道具在碰撞检测前会先下移 speed*dt，放在玩家上方使移动后仍与玩家重叠
	placeOnPlayer(w, components.PropSpeedBoost, -100)
	w.Step(utils.KeyboardState{}, dt)

	if w.Session.ScrollSpeed != boosted {
		t.Fatalf("ScrollSpeed = %.1f, want %.1f", w.Session.ScrollSpeed, boosted)
	}
	// 同一帧内先结算碰撞再递减计时器
	if w.Session.SpeedBoostTimer != 2.0-dt {
		t.Fatalf("SpeedBoostTimer = %.2f, want %.2f", w.Session.SpeedBoostTimer, 2.0-dt)
	}

	w.Step(utils.KeyboardState{}, dt)
	if w.Session.SpeedBoostTimer != 2.0-2*dt {
		t.Fatalf("SpeedBoostTimer = %.2f, want %.2f", w.Session.SpeedBoostTimer, 2.0-2*dt)
	}

	placeOnPlayer(w, components.PropSpeedBoost, -100)
	w.Step(utils.KeyboardState{}, dt)
	if w.Session.ScrollSpeed != boosted {
		t.Errorf("second boost stacked: ScrollSpeed = %.1f, want %.1f", w.Session.ScrollSpeed, boosted)
	}
	if w.Session.SpeedBoostTimer != 2.0-dt {
		t.Errorf("SpeedBoostTimer = %.2f, want refreshed %.2f", w.Session.SpeedBoostTimer, 2.0-dt)
	}

	// 剩余 1.75 秒，再走 7 步到期
	for i := 0; i < 6; i++ {
		w.Step(utils.KeyboardState{}, dt)
		if !w.Session.SpeedBoostActive {
			t.Fatalf("boost expired early at step %d", i)
		}
	}
	w.Step(utils.KeyboardState{}, dt)

	if w.Session.SpeedBoostActive {
		t.Error("boost should have expired")
	}
	if w.Session.ScrollSpeed != original {
		t.Errorf("ScrollSpeed = %.1f, want original %.1f", w.Session.ScrollSpeed, original)
	}
}

func TestPauseSuspendsSimulation(t *testing.T) {
	w, _ := newTestWorld(t)
	const dt = 0.25

	w.Step(utils.KeyboardState{PausePressed: true}, dt)
	if !w.Session.Paused {
		t.Fatal("P should pause")
	}

	before := *w.Session
	playerBefore := w.Player.Position
	for i := 0; i < 20; i++ {
		w.Step(utils.KeyboardState{Left: true}, dt)
	}
	if w.Session.Score != before.Score || w.Session.BackgroundY1 != before.BackgroundY1 || w.Session.ScoreTimer != before.ScoreTimer {
		t.Error("session advanced while paused")
	}
	if w.Player.Position != playerBefore {
		t.Error("player moved while paused")
	}
	if w.Pool.ActiveCount() != 0 {
		t.Error("props spawned while paused")
	}

	w.Step(utils.KeyboardState{PausePressed: true}, dt)
	if w.Session.Paused {
		t.Fatal("second P should resume")
	}
	if w.Session.BackgroundY1 == before.BackgroundY1 {
		t.Error("resumed frame should advance the simulation")
	}
}

func TestPauseLockedAfterGameOver(t *testing.T) {
	w, _ := newTestWorld(t)
	w.Player.Health.CurrentHealth = 10

	placeOnPlayer(w, components.PropRoadblock, 0)
	w.Step(utils.KeyboardState{}, 1.0/60.0)
	if !w.Session.IsGameOver() {
		t.Fatal("expected game over")
	}

	for i := 0; i < 3; i++ {
		w.Step(utils.KeyboardState{PausePressed: true}, 1.0/60.0)
		if !w.Session.Paused {
			t.Fatalf("press %d unpaused a finished game", i)
		}
	}
}

func TestWorldSpawnsOverTime(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	w := NewWorld(config.DefaultTuning(), testPlayerFrames, testPropSheets, nil, rng)

	// 10 秒内计时器至少到期 3 次（间隔最多 2.5 秒，留出浮点累计误差）
	spawns := 0
	everActive := 0
	for i := 0; i < 600; i++ {
		before := w.spawnSystem.timer.CurrentTime
		w.Step(utils.KeyboardState{}, 1.0/60.0)
		if w.spawnSystem.timer.CurrentTime < before {
			spawns++
		}
		if n := w.Pool.ActiveCount(); n > everActive {
			everActive = n
		}
	}
	if spawns < 3 {
		t.Errorf("observed %d spawns in 10s, want at least 3", spawns)
	}
	if everActive == 0 {
		t.Error("no prop was ever active")
	}
}

func TestApplyTuning(t *testing.T) {
	w, _ := newTestWorld(t)

	next := config.DefaultTuning()
	next.Scroll.Speed = 650
	next.Player.Speed = 300
	next.Spawn.Weights = config.SpawnWeights{Roadblock: 100}
	if err := w.ApplyTuning(next); err != nil {
		t.Fatalf("ApplyTuning: %v", err)
	}
	if w.Session.ScrollSpeed != 650 || w.Session.OriginalScrollSpeed != 650 {
		t.Errorf("scroll speeds = (%.1f, %.1f), want 650", w.Session.ScrollSpeed, w.Session.OriginalScrollSpeed)
	}
	if w.Player.Speed != 300 {
		t.Errorf("player speed = %.1f, want 300", w.Player.Speed)
	}
	if w.spawnSystem.cfg.Weights.Roadblock != 100 {
		t.Error("spawn system should see reloaded weights")
	}

	next.Spawn.Lanes[0] = 1
	if w.Tuning.Spawn.Lanes[0] == 1 {
		t.Error("World must not alias the caller's lane slice")
	}

	bad := config.DefaultTuning()
	bad.Spawn.PoolCapacity = 30
	if err := w.ApplyTuning(bad); err == nil {
		t.Error("pool capacity change should be rejected")
	}
	if w.Pool.Capacity() != 15 {
		t.Errorf("pool capacity changed to %d", w.Pool.Capacity())
	}
}
