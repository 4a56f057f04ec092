// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// KeyboardState 存储当前帧的键盘输入
// 游戏逻辑只依赖这个结构体，不直接轮询 ebiten，便于测试
type KeyboardState struct {
	// Left 左转意图（A 或 ←）
	Left bool
	// Right 右转意图（D 或 →）
	Right bool
	// PausePressed P 键在本帧刚刚按下
	PausePressed bool
	// VolumeDown / VolumeUp 音量键（- 和 =）在本帧刚刚按下
	VolumeDown bool
	VolumeUp   bool
}

// 按键绑定
var (
	leftKeys  = []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft}
	rightKeys = []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight}
	pauseKey  = ebiten.KeyP

	volumeDownKey = ebiten.KeyMinus
	volumeUpKey   = ebiten.KeyEqual
)

// ReadKeyboardState 获取当前帧的键盘状态
func ReadKeyboardState() KeyboardState {
	return KeyboardState{
		Left:         anyKeyPressed(leftKeys),
		Right:        anyKeyPressed(rightKeys),
		PausePressed: inpututil.IsKeyJustPressed(pauseKey),
		VolumeDown:   inpututil.IsKeyJustPressed(volumeDownKey),
		VolumeUp:     inpututil.IsKeyJustPressed(volumeUpKey),
	}
}

func anyKeyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}
