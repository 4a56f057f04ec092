package scenes

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/decker502/lanedrive/pkg/config"
	"github.com/decker502/lanedrive/pkg/game"
	"github.com/decker502/lanedrive/pkg/systems"
	"github.com/decker502/lanedrive/pkg/utils"
	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
)

// GameScene 是唯一的游戏场景
//
// 它把键盘输入交给 World 推进模拟，再按 World 的状态
// 驱动引擎音、背景音乐、HUD 和暂停/结束界面。
type GameScene struct {
	resourceManager *game.ResourceManager
	audioManager    *game.AudioManager
	watcher         *config.TuningWatcher

	world    *systems.World
	renderer *systems.RenderSystem
	hud      *HUD

	pauseOverlay    *ebitenui.UI
	gameOverOverlay *ebitenui.UI

	// wasPaused 上一帧的暂停状态，用于在切换时暂停/恢复音乐
	wasPaused bool
}

// NewGameScene 加载资源并开始新的一局
//
// 参数:
//   - rm: 已加载资源配置的资源管理器
//   - am: 音频管理器
//   - tuning: 调参配置
//   - watcher: 调参文件监听器，不需要热重载时为 nil
func NewGameScene(rm *game.ResourceManager, am *game.AudioManager, tuning *config.TuningConfig, watcher *config.TuningWatcher) (*GameScene, error) {
	assets, err := loadSceneAssets(rm)
	if err != nil {
		return nil, fmt.Errorf("failed to load game scene assets: %w", err)
	}

	applyAudioGains(am, tuning.Audio)

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	world := systems.NewWorld(tuning, assets.playerFrames, assets.propSheets, am, rng)

	s := &GameScene{
		resourceManager: rm,
		audioManager:    am,
		watcher:         watcher,
		world:           world,
		renderer:        systems.NewRenderSystem(world, assets.images),
		hud:             NewHUD(),
		pauseOverlay:    NewOverlay(config.PauseMessage, pauseTextColor),
		gameOverOverlay: NewOverlay(config.GameOverMessage, gameOverTextColor),
	}

	am.PreloadSounds(cueSoundIDs)
	am.PreloadMusic([]string{config.MusicBackground})

	am.PlayMusic(config.MusicBackground)
	am.KeepSoundPlaying(config.SoundEngine)

	log.Printf("[GameScene] Started: pool=%d, lanes=%d, scroll=%.1f",
		tuning.Spawn.PoolCapacity, len(tuning.Spawn.Lanes), tuning.Scroll.Speed)
	return s, nil
}

// cueSoundIDs 场景开始前预加载的音效
var cueSoundIDs = []string{config.SoundEngine, config.SoundRoadblockHit, config.SoundPickup, config.SoundSpeedBoost}

// volumeStep 每次按音量键调整的幅度
const volumeStep = 0.1

// applyAudioGains 把调参中的增益设置到各个音频
func applyAudioGains(am *game.AudioManager, gains config.AudioConfig) {
	am.SetGain(config.SoundEngine, gains.EngineGain)
	am.SetGain(config.MusicBackground, gains.MusicGain)
	for _, id := range []string{config.SoundRoadblockHit, config.SoundPickup, config.SoundSpeedBoost} {
		am.SetGain(id, gains.CueGain)
	}
}

// adjustVolume 同时调整音乐和音效音量，设置在退出时保存
func adjustVolume(am *game.AudioManager, input utils.KeyboardState) {
	delta := 0.0
	if input.VolumeUp {
		delta += volumeStep
	}
	if input.VolumeDown {
		delta -= volumeStep
	}
	if delta == 0 {
		return
	}
	am.SetMusicVolume(am.GetMusicVolume() + delta)
	am.SetSoundVolume(am.GetSoundVolume() + delta)
	log.Printf("[GameScene] Volume: music=%.1f, sound=%.1f", am.GetMusicVolume(), am.GetSoundVolume())
}

// Update 推进一帧
func (s *GameScene) Update(deltaTime float64) {
	s.pollTuning()

	input := utils.ReadKeyboardState()
	adjustVolume(s.audioManager, input)
	s.world.Step(input, deltaTime)

	session := s.world.Session
	switch {
	case session.IsGameOver():
		// 游戏结束时 World 已经停止了音乐和引擎音
	case session.Paused && !s.wasPaused:
		s.audioManager.PauseMusic()
		s.audioManager.StopSound(config.SoundEngine)
	case !session.Paused:
		if s.wasPaused {
			s.audioManager.ResumeMusic()
		}
		s.audioManager.KeepSoundPlaying(config.SoundEngine)
	}
	s.wasPaused = session.Paused

	if overlay := s.activeOverlay(); overlay != nil {
		overlay.Update()
	}
}

// pollTuning 应用监听器送来的新配置
func (s *GameScene) pollTuning() {
	if s.watcher == nil {
		return
	}
	next, ok := s.watcher.Poll()
	if !ok {
		return
	}
	if err := s.world.ApplyTuning(next); err != nil {
		log.Printf("[GameScene] Warning: %v", err)
		return
	}
	applyAudioGains(s.audioManager, next.Audio)
}

// activeOverlay 返回当前应显示的覆盖层，正常游戏时为 nil
func (s *GameScene) activeOverlay() *ebitenui.UI {
	switch overlayFor(s.world.Session) {
	case overlayGameOver:
		return s.gameOverOverlay
	case overlayPause:
		return s.pauseOverlay
	default:
		return nil
	}
}

// Draw 绘制场景
// 暂停或结束时整个屏幕由覆盖层接管
func (s *GameScene) Draw(screen *ebiten.Image) {
	if overlay := s.activeOverlay(); overlay != nil {
		overlay.Draw(screen)
		return
	}

	s.renderer.Draw(screen)
	s.hud.Draw(screen, s.world.Session.Score, s.world.Player.Health.CurrentHealth)
}

// Close 停止音频和调参监听
func (s *GameScene) Close() error {
	s.audioManager.StopMusic()
	s.audioManager.StopSound(config.SoundEngine)
	if s.watcher != nil {
		return s.watcher.Close()
	}
	return nil
}
