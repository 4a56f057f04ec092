package config

// 资源ID，与 data/resources.yaml 中的 id 一一对应
const (
	ImageBackground     = "IMAGE_BACKGROUND"
	ImageCarStraight    = "IMAGE_CAR_STRAIGHT"
	ImageCarLeft        = "IMAGE_CAR_LEFT"
	ImageCarRight       = "IMAGE_CAR_RIGHT"
	ImagePropRoadblock  = "IMAGE_PROP_ROADBLOCK"
	ImagePropPickup     = "IMAGE_PROP_APPLE"
	ImagePropSpeedBoost = "IMAGE_PROP_SPEEDUP"

	SoundEngine        = "SOUND_ENGINE"
	SoundRoadblockHit  = "SOUND_ROADBLOCK_HIT"
	SoundPickup        = "SOUND_PICKUP"
	SoundSpeedBoost    = "SOUND_SPEED_BOOST"
	MusicBackground    = "MUSIC_BACKGROUND"
	ResourceGroupGame  = "game"
	ResourceConfigPath = "data/resources.yaml"
	TuningConfigPath   = "data/tuning.yaml"
)
