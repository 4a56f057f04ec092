// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来：创建音频上下文、
// 资源和设置管理器、加载调参配置，然后启动游戏场景。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"os"

	"github.com/decker502/lanedrive/pkg/config"
	"github.com/decker502/lanedrive/pkg/game"
	"github.com/decker502/lanedrive/pkg/scenes"
	"github.com/decker502/lanedrive/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// audioSampleRate 音频上下文采样率
const audioSampleRate = 48000

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// TuningPath 从磁盘读取调参文件，为空则使用嵌入的 data/tuning.yaml
	TuningPath string
	// Watch 监听 TuningPath 并热重载，需要同时设置 TuningPath
	Watch bool
	// AssetRoot 资源根目录，为空则从工作目录向上查找 resources/
	AssetRoot string
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	settingsManager          *game.SettingsManager
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入数据。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	if cfg.Watch && cfg.TuningPath == "" {
		return nil, fmt.Errorf("-watch requires -tuning <path>")
	}

	tuning, err := config.LoadStartupTuning(cfg.TuningPath)
	if err != nil {
		return nil, fmt.Errorf("调参配置加载失败: %w", err)
	}

	assetRoot := cfg.AssetRoot
	if assetRoot == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		assetRoot = utils.FindAssetRoot(wd)
	}
	log.Printf("[App] Asset root: %s", assetRoot)

	// 初始化音频上下文
	audioContext := audio.NewContext(audioSampleRate)

	// 创建资源管理器并加载资源配置
	resourceManager := game.NewResourceManager(audioContext, assetRoot)
	if err := resourceManager.LoadResourceConfig(config.ResourceConfigPath); err != nil {
		return nil, fmt.Errorf("资源配置加载失败: %w", err)
	}

	// 设置存储不可用时降级为内存设置
	store, err := game.OpenSettingsStore(game.SettingsAppName)
	if err != nil {
		log.Printf("[App] Warning: %v (settings will not persist)", err)
		store = nil
	}
	settingsManager := game.NewSettingsManager(store)
	ebiten.SetFullscreen(settingsManager.GetSettings().Fullscreen)

	audioManager := game.NewAudioManager(resourceManager, settingsManager)
	log.Printf("[App] AudioManager initialized")

	var watcher *config.TuningWatcher
	if cfg.Watch {
		watcher, err = config.NewTuningWatcher(cfg.TuningPath)
		if err != nil {
			log.Printf("[App] Warning: hot reload disabled: %v", err)
			watcher = nil
		}
	}

	gameScene, err := scenes.NewGameScene(resourceManager, audioManager, tuning, watcher)
	if err != nil {
		if watcher != nil {
			_ = watcher.Close()
		}
		return nil, err
	}

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(gameScene)

	return &App{
		sceneManager:    sceneManager,
		settingsManager: settingsManager,
	}, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)
	return nil
}

func (a *App) toggleFullscreen() {
	if ebiten.IsFullscreen() {
		// 退出全屏
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
	} else {
		ebiten.SetFullscreen(true)
	}
	a.settingsManager.SetFullscreen(ebiten.IsFullscreen())
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	// 先填充黑色背景（全屏时左右两边为黑色）
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// Close 保存设置并关闭当前场景
func (a *App) Close() error {
	if err := a.settingsManager.Save(); err != nil {
		log.Printf("[App] Warning: failed to save settings: %v", err)
	}
	a.sceneManager.Close()
	return nil
}
