package systems

import (
	"log"

	"github.com/decker502/lanedrive/pkg/components"
	"github.com/decker502/lanedrive/pkg/config"
	"github.com/decker502/lanedrive/pkg/entities"
)

// RandomSource 生成系统使用的随机数来源
// *rand.Rand 满足该接口；测试中用固定种子保证可重复
type RandomSource interface {
	Intn(n int) int
	Float64() float64
}

// PropSheet 某一种道具精灵表的帧信息
type PropSheet struct {
	Size     components.FrameSize // 单帧尺寸
	MaxFrame int                  // 最大帧索引，单帧精灵为 0
}

// PropSheets 按道具类型索引的精灵表信息
type PropSheets map[components.PropKind]PropSheet

// RollPropKind 按权重抽取道具类型
//
// 在 1..100 上抽一个数，按累计阈值划分：
// 默认权重 50/30/20 时，<=50 为路障，<=80 为苹果，其余为加速带。
func RollPropKind(rng RandomSource, weights config.SpawnWeights) components.PropKind {
	r := rng.Intn(100) + 1
	switch {
	case r <= weights.Roadblock:
		return components.PropRoadblock
	case r <= weights.Roadblock+weights.Pickup:
		return components.PropPickup
	default:
		return components.PropSpeedBoost
	}
}

// SpawnSystem 管理道具的定时生成
type SpawnSystem struct {
	pool   *components.PropPool
	sheets PropSheets
	rng    RandomSource
	cfg    *config.SpawnConfig

	timer components.TimerComponent

	// exhausted 记录对象池是否处于已满状态，只在进入该状态时记录一次日志
	exhausted bool
}

// NewSpawnSystem 创建道具生成系统
// 参数:
//   - pool: 预分配的对象池
//   - sheets: 各类道具的精灵表帧信息
//   - cfg: 生成参数（热重载时原地更新）
//   - rng: 随机数来源
func NewSpawnSystem(pool *components.PropPool, sheets PropSheets, cfg *config.SpawnConfig, rng RandomSource) *SpawnSystem {
	s := &SpawnSystem{
		pool:   pool,
		sheets: sheets,
		rng:    rng,
		cfg:    cfg,
		timer:  components.TimerComponent{Name: "prop_spawn"},
	}
	s.timer.Reset(s.rollInterval())

	log.Printf("[SpawnSystem] Initialized with pool=%d, interval=%.1f-%.1fs, lanes=%d",
		pool.Capacity(), cfg.MinInterval, cfg.MaxInterval, len(cfg.Lanes))
	return s
}

// Update 累计生成计时器，到达间隔时尝试生成一个道具并重新抽取间隔
func (s *SpawnSystem) Update(deltaTime float64) {
	if !s.timer.Tick(deltaTime) {
		return
	}
	s.TrySpawn()
	s.timer.Reset(s.rollInterval())
}

// TrySpawn 激活第一个空闲槽位
//
// 对象池已满时直接跳过，这不是错误。返回被激活的槽位下标，未生成时返回 -1。
func (s *SpawnSystem) TrySpawn() int {
	index := s.pool.FirstInactive()
	if index < 0 {
		if !s.exhausted {
			log.Printf("[SpawnSystem] Pool exhausted (%d slots active), skipping spawns", s.pool.Capacity())
			s.exhausted = true
		}
		return -1
	}
	s.exhausted = false

	kind := RollPropKind(s.rng, s.cfg.Weights)
	lane := s.cfg.Lanes[s.rng.Intn(len(s.cfg.Lanes))]
	pos := components.Vec2{X: lane, Y: s.cfg.SpawnY}

	entities.ActivateProp(&s.pool.Slots[index], kind, pos, s.sheets[kind].Size, s.cfg.FrameDuration)
	return index
}

// NextInterval 返回当前生成间隔（秒）
func (s *SpawnSystem) NextInterval() float64 {
	return s.timer.TargetTime
}

// rollInterval 在 [MinInterval, MaxInterval] 上均匀抽取
func (s *SpawnSystem) rollInterval() float64 {
	return s.cfg.MinInterval + s.rng.Float64()*(s.cfg.MaxInterval-s.cfg.MinInterval)
}
