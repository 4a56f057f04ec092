package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioManager 音频管理器
// 职责：
//   - 统一管理游戏中所有音效和背景音乐的播放
//   - 实现音量控制（设置中的音量 × 每个音频的增益）
//   - 提供通过资源ID播放的接口
type AudioManager struct {
	resourceManager *ResourceManager         // 资源管理器（用于加载音频）
	settingsManager *SettingsManager         // 设置管理器（用于读取音量设置，可为 nil）
	soundPlayers    map[string]*audio.Player // 音效播放器缓存（资源ID -> 播放器）
	musicPlayers    map[string]*audio.Player // 背景音乐播放器缓存（资源ID -> 播放器）
	gains           map[string]float64       // 每个资源ID的增益，未设置时为 1.0
	currentMusic    *audio.Player            // 当前播放的背景音乐
	currentMusicID  string                   // 当前播放的背景音乐ID
}

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - rm: ResourceManager 实例（用于加载音频文件）
//   - sm: SettingsManager 实例（用于读取音量设置，可为 nil）
func NewAudioManager(rm *ResourceManager, sm *SettingsManager) *AudioManager {
	return &AudioManager{
		resourceManager: rm,
		settingsManager: sm,
		soundPlayers:    make(map[string]*audio.Player),
		musicPlayers:    make(map[string]*audio.Player),
		gains:           make(map[string]float64),
	}
}

// SetGain 设置某个音频的增益 (0.0 ~ 1.0)
// 立即应用到已加载的播放器
func (am *AudioManager) SetGain(id string, gain float64) {
	am.gains[id] = clampVolume(gain)
	if player, ok := am.soundPlayers[id]; ok {
		player.SetVolume(am.soundVolumeFor(id))
	}
	if player, ok := am.musicPlayers[id]; ok {
		player.SetVolume(am.musicVolumeFor(id))
	}
}

// PlaySound 从头播放音效
//
// 返回：
//   - bool: 是否成功播放（音效被禁用或资源缺失时返回 false）
func (am *AudioManager) PlaySound(soundID string) bool {
	if !am.soundEnabled() {
		return false
	}

	player := am.getSoundPlayer(soundID)
	if player == nil {
		return false
	}

	player.SetVolume(am.soundVolumeFor(soundID))
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind sound %s: %v", soundID, err)
	}
	player.Play()

	return true
}

// KeepSoundPlaying 音效没有在播放时重新开始播放
// 用于引擎声这种每帧检查、播完即重启的持续音效
func (am *AudioManager) KeepSoundPlaying(soundID string) bool {
	if !am.soundEnabled() {
		return false
	}
	player := am.getSoundPlayer(soundID)
	if player == nil {
		return false
	}
	if player.IsPlaying() {
		return true
	}
	return am.PlaySound(soundID)
}

// StopSound 停止音效
func (am *AudioManager) StopSound(soundID string) {
	if player, ok := am.soundPlayers[soundID]; ok {
		player.Pause()
	}
}

// IsSoundPlaying 音效是否正在播放
func (am *AudioManager) IsSoundPlaying(soundID string) bool {
	player, ok := am.soundPlayers[soundID]
	return ok && player.IsPlaying()
}

// PlayMusic 播放背景音乐
// 同一时间只能播放一首背景音乐；已在播放同一首时不重复播放
func (am *AudioManager) PlayMusic(musicID string) bool {
	if am.settingsManager != nil && !am.settingsManager.GetSettings().MusicEnabled {
		return false
	}

	if am.currentMusicID == musicID && am.currentMusic != nil && am.currentMusic.IsPlaying() {
		return true
	}

	am.StopMusic()

	player := am.getMusicPlayer(musicID)
	if player == nil {
		return false
	}

	volume := am.musicVolumeFor(musicID)
	player.SetVolume(volume)
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind music %s: %v", musicID, err)
	}
	player.Play()

	am.currentMusic = player
	am.currentMusicID = musicID

	log.Printf("[AudioManager] Playing music: %s (volume: %.2f)", musicID, volume)
	return true
}

// StopMusic 停止当前背景音乐
func (am *AudioManager) StopMusic() {
	if am.currentMusic != nil {
		am.currentMusic.Pause()
		am.currentMusic = nil
		am.currentMusicID = ""
	}
}

// PauseMusic 暂停当前背景音乐
func (am *AudioManager) PauseMusic() {
	if am.currentMusic != nil {
		am.currentMusic.Pause()
	}
}

// ResumeMusic 恢复当前背景音乐
func (am *AudioManager) ResumeMusic() {
	if am.currentMusic == nil || am.currentMusicID == "" {
		return
	}
	if am.settingsManager != nil && !am.settingsManager.GetSettings().MusicEnabled {
		return
	}
	am.currentMusic.Play()
}

// SetMusicVolume 设置音乐音量并立即应用
func (am *AudioManager) SetMusicVolume(volume float64) {
	if am.settingsManager != nil {
		am.settingsManager.SetMusicVolume(volume)
	}
	for id, player := range am.musicPlayers {
		player.SetVolume(am.musicVolumeFor(id))
	}
}

// SetSoundVolume 设置音效音量并立即应用
func (am *AudioManager) SetSoundVolume(volume float64) {
	if am.settingsManager != nil {
		am.settingsManager.SetSoundVolume(volume)
	}
	for id, player := range am.soundPlayers {
		player.SetVolume(am.soundVolumeFor(id))
	}
}

// GetMusicVolume 获取当前音乐音量
func (am *AudioManager) GetMusicVolume() float64 {
	return am.getMusicVolume()
}

// GetSoundVolume 获取当前音效音量
func (am *AudioManager) GetSoundVolume() float64 {
	return am.getSoundVolume()
}

// getSoundPlayer 获取或加载音效播放器
func (am *AudioManager) getSoundPlayer(soundID string) *audio.Player {
	if player, exists := am.soundPlayers[soundID]; exists {
		return player
	}

	filePath, exists := am.resourceManager.ResolvePath(soundID)
	if !exists {
		log.Printf("[AudioManager] Warning: Sound not found: %s", soundID)
		return nil
	}
	if player := am.resourceManager.GetAudioPlayer(filePath); player != nil {
		am.soundPlayers[soundID] = player
		return player
	}

	player, err := am.resourceManager.LoadSoundEffect(filePath)
	if err != nil {
		log.Printf("[AudioManager] Warning: Failed to load sound %s: %v", soundID, err)
		return nil
	}
	am.soundPlayers[soundID] = player
	return player
}

// getMusicPlayer 获取或加载音乐播放器
func (am *AudioManager) getMusicPlayer(musicID string) *audio.Player {
	if player, exists := am.musicPlayers[musicID]; exists {
		return player
	}

	filePath, exists := am.resourceManager.ResolvePath(musicID)
	if !exists {
		log.Printf("[AudioManager] Warning: Music not found: %s", musicID)
		return nil
	}
	if player := am.resourceManager.GetAudioPlayer(filePath); player != nil {
		am.musicPlayers[musicID] = player
		return player
	}

	player, err := am.resourceManager.LoadAudio(filePath)
	if err != nil {
		log.Printf("[AudioManager] Warning: Failed to load music %s: %v", musicID, err)
		return nil
	}
	am.musicPlayers[musicID] = player
	return player
}

func (am *AudioManager) soundEnabled() bool {
	return am.settingsManager == nil || am.settingsManager.GetSettings().SoundEnabled
}

func (am *AudioManager) gain(id string) float64 {
	if g, ok := am.gains[id]; ok {
		return g
	}
	return 1.0
}

func (am *AudioManager) soundVolumeFor(id string) float64 {
	return am.getSoundVolume() * am.gain(id)
}

func (am *AudioManager) musicVolumeFor(id string) float64 {
	return am.getMusicVolume() * am.gain(id)
}

// getMusicVolume 获取音乐音量设置
func (am *AudioManager) getMusicVolume() float64 {
	if am.settingsManager != nil {
		return am.settingsManager.GetSettings().MusicVolume
	}
	return 0.7 // 默认值
}

// getSoundVolume 获取音效音量设置
func (am *AudioManager) getSoundVolume() float64 {
	if am.settingsManager != nil {
		return am.settingsManager.GetSettings().SoundVolume
	}
	return 0.8 // 默认值
}

// PreloadSounds 预加载音效，避免首次播放时的延迟
func (am *AudioManager) PreloadSounds(soundIDs []string) {
	for _, soundID := range soundIDs {
		am.getSoundPlayer(soundID)
	}
	log.Printf("[AudioManager] Preloaded %d sounds", len(soundIDs))
}

// PreloadMusic 预加载背景音乐
func (am *AudioManager) PreloadMusic(musicIDs []string) {
	for _, musicID := range musicIDs {
		am.getMusicPlayer(musicID)
	}
	log.Printf("[AudioManager] Preloaded %d music tracks", len(musicIDs))
}
