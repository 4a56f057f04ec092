package config

// 布局配置常量
// 本文件定义窗口尺寸和 HUD 元素位置，所有坐标均为逻辑屏幕坐标

// 窗口配置
const (
	// GameWindowWidth 是逻辑屏幕宽度（像素）
	GameWindowWidth = 1280

	// GameWindowHeight 是逻辑屏幕高度（像素）
	GameWindowHeight = 720

	// GameWindowTitle 是窗口标题
	GameWindowTitle = "CarGame"
)

// HUD 配置
const (
	// ScoreTextX, ScoreTextY 是分数文字的位置
	ScoreTextX = 10
	ScoreTextY = 10

	// HealthTextX, HealthTextY 是生命值文字的位置
	HealthTextX = 10
	HealthTextY = 40

	// HealthBarX, HealthBarY 是生命条左上角位置，宽度等于当前生命值
	HealthBarX      = 12
	HealthBarY      = 60
	HealthBarHeight = 25

	// HUDTextScale 是 HUD 文字相对基础字体的缩放
	// basicfont 为 13px，放大后接近 20px
	HUDTextScale = 1.5

	// OverlayTextScale 是暂停/结束提示文字的缩放
	OverlayTextScale = 3.0

	// FPSTextOffsetX 是 FPS 文字距离右边缘的距离
	FPSTextOffsetX = 165
)

// 提示文字
const (
	PauseMessage    = "Game Paused. Press 'P' to Resume"
	GameOverMessage = "GAME OVER"
)
