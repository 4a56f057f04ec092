package config

import (
	"fmt"
	"log"
	"os"

	"github.com/decker502/lanedrive/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// TuningConfig 游戏玩法调参配置
// 对应 data/tuning.yaml，所有数值均可在不改代码的情况下调整
type TuningConfig struct {
	Screen  ScreenConfig  `yaml:"screen"`  // 逻辑屏幕尺寸
	Player  PlayerConfig  `yaml:"player"`  // 玩家赛车参数
	Scroll  ScrollConfig  `yaml:"scroll"`  // 背景滚动参数
	Spawn   SpawnConfig   `yaml:"spawn"`   // 道具对象池与生成参数
	Effects EffectsConfig `yaml:"effects"` // 碰撞效果参数
	Score   ScoreConfig   `yaml:"score"`   // 计分参数
	Audio   AudioConfig   `yaml:"audio"`   // 各音频的增益
}

// ScreenConfig 逻辑屏幕尺寸（像素）
type ScreenConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PlayerConfig 玩家赛车参数
type PlayerConfig struct {
	StartX           float64 `yaml:"startX"`           // 初始X坐标
	StartY           float64 `yaml:"startY"`           // 初始Y坐标（整局固定）
	Speed            float64 `yaml:"speed"`            // 横向移动速度（像素/秒）
	LeftBound        float64 `yaml:"leftBound"`        // 左侧护栏
	RightBound       float64 `yaml:"rightBound"`       // 右侧护栏
	MaxHealth        int     `yaml:"maxHealth"`        // 生命值上限
	FrameDuration    float64 `yaml:"frameDuration"`    // 每帧持续时间（秒）
	StraightMaxFrame int     `yaml:"straightMaxFrame"` // 直行动画最大帧索引
	TurnMaxFrame     int     `yaml:"turnMaxFrame"`     // 转向动画最大帧索引
}

// ScrollConfig 背景滚动参数
type ScrollConfig struct {
	Speed float64 `yaml:"speed"` // 基础滚动速度（像素/秒）
}

// SpawnWeights 道具类型的权重（合计必须为 100）
type SpawnWeights struct {
	Roadblock  int `yaml:"roadblock"`
	Pickup     int `yaml:"pickup"`
	SpeedBoost int `yaml:"speedBoost"`
}

// SpawnConfig 对象池与生成参数
type SpawnConfig struct {
	PoolCapacity  int          `yaml:"poolCapacity"`  // 对象池容量（固定）
	MinInterval   float64      `yaml:"minInterval"`   // 生成间隔下限（秒）
	MaxInterval   float64      `yaml:"maxInterval"`   // 生成间隔上限（秒）
	SpawnY        float64      `yaml:"spawnY"`        // 生成行（屏幕上方）
	Lanes         []float64    `yaml:"lanes"`         // 车道X坐标表
	Weights       SpawnWeights `yaml:"weights"`       // 道具类型权重
	FrameDuration float64      `yaml:"frameDuration"` // 道具动画每帧时间（秒）
}

// EffectsConfig 碰撞效果参数
type EffectsConfig struct {
	RoadblockDamage    int     `yaml:"roadblockDamage"`    // 路障伤害
	PickupHeal         int     `yaml:"pickupHeal"`         // 苹果回血
	SpeedBoostDelta    float64 `yaml:"speedBoostDelta"`    // 加速增量（像素/秒）
	SpeedBoostDuration float64 `yaml:"speedBoostDuration"` // 加速持续时间（秒）
}

// ScoreConfig 计分参数
type ScoreConfig struct {
	Interval float64 `yaml:"interval"` // 加分间隔（秒）
	Points   int     `yaml:"points"`   // 每次加分
}

// AudioConfig 各音频的增益（与设置中的音量相乘）
type AudioConfig struct {
	EngineGain float64 `yaml:"engineGain"`
	CueGain    float64 `yaml:"cueGain"`
	MusicGain  float64 `yaml:"musicGain"`
}

// DefaultLanes 默认的 10 条车道X坐标
var DefaultLanes = []float64{239, 322, 397, 475, 557, 640, 725, 810, 885, 964}

// DefaultTuning 返回与 data/tuning.yaml 一致的默认配置
func DefaultTuning() *TuningConfig {
	lanes := make([]float64, len(DefaultLanes))
	copy(lanes, DefaultLanes)

	return &TuningConfig{
		Screen: ScreenConfig{Width: GameWindowWidth, Height: GameWindowHeight},
		Player: PlayerConfig{
			StartX:           GameWindowWidth / 2,
			StartY:           576,
			Speed:            200,
			LeftBound:        180,
			RightBound:       1034,
			MaxHealth:        100,
			FrameDuration:    1.0 / 12.0,
			StraightMaxFrame: 6,
			TurnMaxFrame:     1,
		},
		Scroll: ScrollConfig{Speed: 500},
		Spawn: SpawnConfig{
			PoolCapacity:  15,
			MinInterval:   0.5,
			MaxInterval:   2.5,
			SpawnY:        -144,
			Lanes:         lanes,
			Weights:       SpawnWeights{Roadblock: 50, Pickup: 30, SpeedBoost: 20},
			FrameDuration: 0.1,
		},
		Effects: EffectsConfig{
			RoadblockDamage:    10,
			PickupHeal:         10,
			SpeedBoostDelta:    25,
			SpeedBoostDuration: 2.0,
		},
		Score: ScoreConfig{Interval: 1.0, Points: 10},
		Audio: AudioConfig{EngineGain: 0.10, CueGain: 0.5, MusicGain: 0.35},
	}
}

// LoadTuning 从 YAML 文件加载调参配置
func LoadTuning(filePath string) (*TuningConfig, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read tuning file: %w", err)
	}
	return ParseTuning(data)
}

// LoadStartupTuning 加载启动时使用的调参配置
//
// overridePath 非空时从磁盘读取（-tuning 参数）；
// 否则读取嵌入的 data/tuning.yaml；嵌入文件不可用时退回 DefaultTuning。
func LoadStartupTuning(overridePath string) (*TuningConfig, error) {
	if overridePath != "" {
		cfg, err := LoadTuning(overridePath)
		if err != nil {
			return nil, err
		}
		log.Printf("[Config] Loaded tuning from %s", overridePath)
		return cfg, nil
	}

	if embedded.IsInitialized() && embedded.Exists(TuningConfigPath) {
		data, err := embedded.ReadFile(TuningConfigPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read embedded tuning: %w", err)
		}
		return ParseTuning(data)
	}

	log.Printf("[Config] Embedded tuning unavailable, using defaults")
	return DefaultTuning(), nil
}

// ParseTuning 解析 YAML 数据
// 文件中缺省的字段保留 DefaultTuning 中的值
func ParseTuning(data []byte) (*TuningConfig, error) {
	cfg := DefaultTuning()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse tuning YAML: %w", err)
	}

	if err := validateTuning(cfg); err != nil {
		return nil, fmt.Errorf("invalid tuning config: %w", err)
	}

	return cfg, nil
}

// validateTuning 验证配置的有效性
func validateTuning(cfg *TuningConfig) error {
	if cfg.Screen.Width <= 0 || cfg.Screen.Height <= 0 {
		return fmt.Errorf("screen size must be positive, got %dx%d", cfg.Screen.Width, cfg.Screen.Height)
	}

	// 玩家
	if cfg.Player.Speed < 0 {
		return fmt.Errorf("player.speed must be >= 0, got %.2f", cfg.Player.Speed)
	}
	if cfg.Player.LeftBound >= cfg.Player.RightBound {
		return fmt.Errorf("player.leftBound (%.1f) must be less than player.rightBound (%.1f)",
			cfg.Player.LeftBound, cfg.Player.RightBound)
	}
	if cfg.Player.MaxHealth <= 0 {
		return fmt.Errorf("player.maxHealth must be > 0, got %d", cfg.Player.MaxHealth)
	}
	if cfg.Player.FrameDuration <= 0 {
		return fmt.Errorf("player.frameDuration must be > 0, got %.3f", cfg.Player.FrameDuration)
	}
	if cfg.Player.StraightMaxFrame < 0 || cfg.Player.TurnMaxFrame < 0 {
		return fmt.Errorf("player max frames must be >= 0")
	}

	if cfg.Scroll.Speed < 0 {
		return fmt.Errorf("scroll.speed must be >= 0, got %.2f", cfg.Scroll.Speed)
	}

	// 生成
	if cfg.Spawn.PoolCapacity <= 0 {
		return fmt.Errorf("spawn.poolCapacity must be > 0, got %d", cfg.Spawn.PoolCapacity)
	}
	if cfg.Spawn.MinInterval <= 0 {
		return fmt.Errorf("spawn.minInterval must be > 0, got %.2f", cfg.Spawn.MinInterval)
	}
	if cfg.Spawn.MaxInterval < cfg.Spawn.MinInterval {
		return fmt.Errorf("spawn.maxInterval (%.2f) must be >= spawn.minInterval (%.2f)",
			cfg.Spawn.MaxInterval, cfg.Spawn.MinInterval)
	}
	if len(cfg.Spawn.Lanes) == 0 {
		return fmt.Errorf("spawn.lanes cannot be empty")
	}
	w := cfg.Spawn.Weights
	if w.Roadblock < 0 || w.Pickup < 0 || w.SpeedBoost < 0 {
		return fmt.Errorf("spawn.weights must be >= 0")
	}
	if sum := w.Roadblock + w.Pickup + w.SpeedBoost; sum != 100 {
		return fmt.Errorf("spawn.weights must sum to 100, got %d", sum)
	}
	if cfg.Spawn.FrameDuration <= 0 {
		return fmt.Errorf("spawn.frameDuration must be > 0, got %.3f", cfg.Spawn.FrameDuration)
	}

	// 效果
	if cfg.Effects.RoadblockDamage < 0 || cfg.Effects.PickupHeal < 0 {
		return fmt.Errorf("effects damage/heal must be >= 0")
	}
	if cfg.Effects.SpeedBoostDuration <= 0 {
		return fmt.Errorf("effects.speedBoostDuration must be > 0, got %.2f", cfg.Effects.SpeedBoostDuration)
	}

	if cfg.Score.Interval <= 0 {
		return fmt.Errorf("score.interval must be > 0, got %.2f", cfg.Score.Interval)
	}

	return nil
}

// HotReloadable 报告从 old 切换到 cfg 是否只涉及可在运行中调整的字段
// 对象池容量、屏幕尺寸和车道数量在一局内固定
func (cfg *TuningConfig) HotReloadable(old *TuningConfig) error {
	if cfg.Spawn.PoolCapacity != old.Spawn.PoolCapacity {
		return fmt.Errorf("spawn.poolCapacity cannot change at runtime (%d -> %d)",
			old.Spawn.PoolCapacity, cfg.Spawn.PoolCapacity)
	}
	if cfg.Screen != old.Screen {
		return fmt.Errorf("screen size cannot change at runtime")
	}
	if len(cfg.Spawn.Lanes) != len(old.Spawn.Lanes) {
		return fmt.Errorf("lane count cannot change at runtime (%d -> %d)",
			len(old.Spawn.Lanes), len(cfg.Spawn.Lanes))
	}
	return nil
}
