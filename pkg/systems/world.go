package systems

import (
	"fmt"
	"log"

	"github.com/decker502/lanedrive/pkg/components"
	"github.com/decker502/lanedrive/pkg/config"
	"github.com/decker502/lanedrive/pkg/entities"
	"github.com/decker502/lanedrive/pkg/game"
	"github.com/decker502/lanedrive/pkg/utils"
)

// World 一局游戏的全部模拟状态及其系统
//
// 所有字段只在游戏循环中访问。Step 按固定顺序运行各个系统，
// 渲染只读取这里的状态。
type World struct {
	Tuning  *config.TuningConfig
	Session *game.SessionState
	Player  *components.PlayerComponent
	Pool    *components.PropPool
	Sheets  PropSheets

	audio AudioSink

	scoreSystem      *ScoreSystem
	playerSystem     *PlayerControlSystem
	scrollSystem     *BackgroundScrollSystem
	spawnSystem      *SpawnSystem
	collisionSystem  *CollisionSystem
	speedBoostSystem *SpeedBoostSystem
}

// NewWorld 按调参配置创建一局新游戏
// 参数:
//   - tuning: 调参配置，World 持有它的副本，热重载通过 ApplyTuning 更新
//   - playerFrames: 玩家三张精灵表的帧尺寸
//   - sheets: 各类道具的精灵表帧信息
//   - audio: 音效输出，可以为 nil
//   - rng: 生成系统的随机数来源
func NewWorld(tuning *config.TuningConfig, playerFrames entities.PlayerFrames, sheets PropSheets, audio AudioSink, rng RandomSource) *World {
	cfg := *tuning
	cfg.Spawn.Lanes = append([]float64(nil), tuning.Spawn.Lanes...)

	w := &World{
		Tuning:  &cfg,
		Session: game.NewSessionState(&cfg),
		Player:  entities.NewPlayer(cfg.Player, playerFrames),
		Pool:    components.NewPropPool(cfg.Spawn.PoolCapacity),
		Sheets:  sheets,
		audio:   audioOrSilent(audio),
	}

	w.scoreSystem = NewScoreSystem(w.Session, &w.Tuning.Score)
	w.playerSystem = NewPlayerControlSystem(w.Player, w.Tuning.Player)
	w.scrollSystem = NewBackgroundScrollSystem(w.Session, w.Tuning.Screen.Height)
	w.spawnSystem = NewSpawnSystem(w.Pool, sheets, &w.Tuning.Spawn, rng)
	w.collisionSystem = NewCollisionSystem(w.Session, w.Player, w.Pool, sheets, &w.Tuning.Effects, w.audio, w.Tuning.Screen.Height)
	w.speedBoostSystem = NewSpeedBoostSystem(w.Session)

	return w
}

// Step 推进一帧模拟
//
// 先处理暂停键；暂停中（包括游戏结束后）直接返回。
// 否则依次运行：计分、玩家输入与动画、背景滚动、生成、碰撞结算、加速计时，
// 最后检查生命值是否耗尽。
func (w *World) Step(input utils.KeyboardState, deltaTime float64) {
	if input.PausePressed {
		w.Session.TogglePause()
	}
	if w.Session.Paused {
		return
	}

	w.scoreSystem.Update(deltaTime)
	w.playerSystem.HandleInput(input, deltaTime)
	w.playerSystem.Update(deltaTime)
	w.scrollSystem.Update(deltaTime)
	w.spawnSystem.Update(deltaTime)
	w.collisionSystem.Update(deltaTime)
	w.speedBoostSystem.Update(deltaTime)

	if w.Player.Health.IsDepleted() {
		w.enterGameOver()
	}
}

func (w *World) enterGameOver() {
	if !w.Session.EnterGameOver() {
		return
	}
	w.audio.StopMusic()
	w.audio.StopSound(config.SoundEngine)
}

// ApplyTuning 在运行中应用新的调参配置
// 对象池容量、屏幕尺寸和车道数量不能在一局内改变，这类变更返回错误且不做任何修改。
func (w *World) ApplyTuning(next *config.TuningConfig) error {
	if err := next.HotReloadable(w.Tuning); err != nil {
		return fmt.Errorf("tuning not applied: %w", err)
	}

	lanes := append([]float64(nil), next.Spawn.Lanes...)
	*w.Tuning = *next
	w.Tuning.Spawn.Lanes = lanes

	w.playerSystem.ApplyConfig(w.Tuning.Player)
	w.Session.SetBaseScrollSpeed(w.Tuning.Scroll.Speed)

	log.Printf("[World] Tuning applied: scroll=%.1f, interval=%.1f-%.1fs, weights=%+v",
		w.Tuning.Scroll.Speed, w.Tuning.Spawn.MinInterval, w.Tuning.Spawn.MaxInterval, w.Tuning.Spawn.Weights)
	return nil
}
