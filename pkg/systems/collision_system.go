package systems

import (
	"log"

	"github.com/decker502/lanedrive/pkg/components"
	"github.com/decker502/lanedrive/pkg/config"
	"github.com/decker502/lanedrive/pkg/entities"
	"github.com/decker502/lanedrive/pkg/game"
)

// CollisionSystem 移动道具、剔除离开屏幕的道具，并结算与玩家的碰撞效果
type CollisionSystem struct {
	session        *game.SessionState
	player         *components.PlayerComponent
	pool           *components.PropPool
	sheets         PropSheets
	effects        *config.EffectsConfig
	audio          AudioSink
	viewportHeight float64
}

// NewCollisionSystem 创建碰撞结算系统
func NewCollisionSystem(session *game.SessionState, player *components.PlayerComponent, pool *components.PropPool,
	sheets PropSheets, effects *config.EffectsConfig, audio AudioSink, viewportHeight int) *CollisionSystem {
	return &CollisionSystem{
		session:        session,
		player:         player,
		pool:           pool,
		sheets:         sheets,
		effects:        effects,
		audio:          audioOrSilent(audio),
		viewportHeight: float64(viewportHeight),
	}
}

// Update 按槽位顺序处理每个激活的道具
//
// 每个道具依次：随背景下移；超出屏幕底部则回收（不结算效果）；
// 与玩家重叠则结算效果并回收；否则推进动画。
// 回收保证同一个道具在一次激活期间最多生效一次。
func (s *CollisionSystem) Update(deltaTime float64) {
	playerRect := s.player.CollisionRect()

	for i := range s.pool.Slots {
		prop := &s.pool.Slots[i]
		if !prop.Active {
			continue
		}

		prop.Position.Y += s.session.ScrollSpeed * deltaTime

		if prop.Position.Y > s.viewportHeight {
			entities.DeactivateProp(prop)
			continue
		}

		if prop.Bounds().Intersects(playerRect) {
			s.applyEffect(prop.Kind)
			entities.DeactivateProp(prop)
			continue
		}

		if prop.Kind.Animated() {
			prop.AnimatedSprite = AdvanceAnimation(prop.AnimatedSprite, deltaTime, s.sheets[prop.Kind].MaxFrame)
		}
	}
}

func (s *CollisionSystem) applyEffect(kind components.PropKind) {
	switch kind {
	case components.PropRoadblock:
		s.player.TakeDamage(s.effects.RoadblockDamage)
		s.audio.PlaySound(config.SoundRoadblockHit)
	case components.PropPickup:
		s.player.Heal(s.effects.PickupHeal)
		s.audio.PlaySound(config.SoundPickup)
	case components.PropSpeedBoost:
		s.startSpeedBoost()
		s.audio.PlaySound(config.SoundSpeedBoost)
	}
}

// startSpeedBoost 加速不叠加：只有从未激活进入激活时才提高速度，
// 激活期间再次命中只刷新持续时间
func (s *CollisionSystem) startSpeedBoost() {
	if !s.session.SpeedBoostActive {
		s.session.ScrollSpeed += s.effects.SpeedBoostDelta
		s.session.SpeedBoostActive = true
		log.Printf("[CollisionSystem] Speed boost started, scroll speed %.1f", s.session.ScrollSpeed)
	}
	s.session.SpeedBoostTimer = s.effects.SpeedBoostDuration
}
