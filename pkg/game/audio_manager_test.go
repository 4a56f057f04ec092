package game

import (
	"testing"
)

func TestAudioManagerMissingResources(t *testing.T) {
	am := NewAudioManager(NewResourceManager(nil, ""), nil)

	if am.PlaySound("SOUND_UNKNOWN") {
		t.Error("PlaySound should fail for an unknown ID")
	}
	if am.KeepSoundPlaying("SOUND_UNKNOWN") {
		t.Error("KeepSoundPlaying should fail for an unknown ID")
	}
	if am.PlayMusic("MUSIC_UNKNOWN") {
		t.Error("PlayMusic should fail for an unknown ID")
	}
	if am.IsSoundPlaying("SOUND_UNKNOWN") {
		t.Error("unknown sound cannot be playing")
	}

	// 没有加载任何播放器时这些调用都是空操作
	am.StopSound("SOUND_UNKNOWN")
	am.StopMusic()
	am.PauseMusic()
	am.ResumeMusic()
}

func TestAudioManagerDisabledChannels(t *testing.T) {
	sm := NewSettingsManager(nil)
	sm.SetSoundEnabled(false)
	sm.SetMusicEnabled(false)
	am := NewAudioManager(NewResourceManager(nil, ""), sm)

	if am.PlaySound("SOUND_ANY") {
		t.Error("disabled sound should not play")
	}
	if am.PlayMusic("MUSIC_ANY") {
		t.Error("disabled music should not play")
	}
}

func TestAudioManagerEffectiveVolume(t *testing.T) {
	sm := NewSettingsManager(nil)
	am := NewAudioManager(NewResourceManager(nil, ""), sm)

	am.SetGain("SOUND_ENGINE", 0.10)
	am.SetGain("MUSIC_BACKGROUND", 0.35)
	am.SetGain("SOUND_TOO_LOUD", 4)

	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"engine gain × sound volume", am.soundVolumeFor("SOUND_ENGINE"), 0.10 * 0.8},
		{"music gain × music volume", am.musicVolumeFor("MUSIC_BACKGROUND"), 0.35 * 0.7},
		{"unset gain defaults to 1", am.soundVolumeFor("SOUND_PICKUP"), 0.8},
		{"gain is clamped", am.soundVolumeFor("SOUND_TOO_LOUD"), 0.8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := tt.got - tt.want; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("volume = %v, want %v", tt.got, tt.want)
			}
		})
	}

	am.SetSoundVolume(0.5)
	if v := am.soundVolumeFor("SOUND_ENGINE"); v < 0.0499 || v > 0.0501 {
		t.Errorf("after SetSoundVolume(0.5) engine volume = %v, want 0.05", v)
	}
	if am.GetSoundVolume() != 0.5 {
		t.Errorf("GetSoundVolume = %v, want 0.5", am.GetSoundVolume())
	}
}
