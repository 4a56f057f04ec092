package systems

// AudioSink 模拟逻辑触发音效时使用的接口
// 由 game.AudioManager 实现；测试中用记录器替代
type AudioSink interface {
	PlaySound(soundID string) bool
	StopSound(soundID string)
	StopMusic()
}

// silentAudio 在没有音频设备时使用
type silentAudio struct{}

func (silentAudio) PlaySound(string) bool { return false }
func (silentAudio) StopSound(string)      {}
func (silentAudio) StopMusic()            {}

func audioOrSilent(sink AudioSink) AudioSink {
	if sink == nil {
		return silentAudio{}
	}
	return sink
}
