package scenes

import (
	"math"
	"testing"

	"github.com/decker502/lanedrive/pkg/components"
	"github.com/decker502/lanedrive/pkg/config"
	"github.com/decker502/lanedrive/pkg/game"
	"github.com/decker502/lanedrive/pkg/utils"
)

func TestPropSheetFor(t *testing.T) {
	tests := []struct {
		name         string
		columns      int
		wantMaxFrame int
	}{
		{"animated pickup sheet", 3, 2},
		{"single frame", 1, 0},
		{"columns not set", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := propSheetFor(components.SpriteSheet{Columns: tt.columns})
			if got.MaxFrame != tt.wantMaxFrame {
				t.Errorf("MaxFrame = %d, want %d", got.MaxFrame, tt.wantMaxFrame)
			}
		})
	}
}

func TestPropImageIDsCoverEveryKind(t *testing.T) {
	for _, kind := range []components.PropKind{components.PropRoadblock, components.PropPickup, components.PropSpeedBoost} {
		if _, ok := propImageIDs[kind]; !ok {
			t.Errorf("no image for prop kind %s", kind)
		}
	}
}

func TestNewGameSceneMissingAssets(t *testing.T) {
	rm := game.NewResourceManager(nil, t.TempDir())
	am := game.NewAudioManager(rm, nil)

	if _, err := NewGameScene(rm, am, config.DefaultTuning(), nil); err == nil {
		t.Fatal("expected error when the resource config was never loaded")
	}
}

func TestAdjustVolume(t *testing.T) {
	tests := []struct {
		name      string
		input     utils.KeyboardState
		wantMusic float64
		wantSound float64
	}{
		{"no key", utils.KeyboardState{}, 0.7, 0.8},
		{"volume up", utils.KeyboardState{VolumeUp: true}, 0.8, 0.9},
		{"volume down", utils.KeyboardState{VolumeDown: true}, 0.6, 0.7},
		{"both keys cancel", utils.KeyboardState{VolumeUp: true, VolumeDown: true}, 0.7, 0.8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			am := game.NewAudioManager(game.NewResourceManager(nil, ""), game.NewSettingsManager(nil))
			adjustVolume(am, tt.input)
			if math.Abs(am.GetMusicVolume()-tt.wantMusic) > 1e-9 {
				t.Errorf("music volume = %v, want %v", am.GetMusicVolume(), tt.wantMusic)
			}
			if math.Abs(am.GetSoundVolume()-tt.wantSound) > 1e-9 {
				t.Errorf("sound volume = %v, want %v", am.GetSoundVolume(), tt.wantSound)
			}
		})
	}
}

func TestAdjustVolumeClamps(t *testing.T) {
	am := game.NewAudioManager(game.NewResourceManager(nil, ""), game.NewSettingsManager(nil))
	for i := 0; i < 20; i++ {
		adjustVolume(am, utils.KeyboardState{VolumeUp: true})
	}
	if am.GetMusicVolume() != 1.0 || am.GetSoundVolume() != 1.0 {
		t.Errorf("volumes should clamp at 1.0, got music=%v sound=%v", am.GetMusicVolume(), am.GetSoundVolume())
	}
}

func TestPreloadWithoutAudioIsHarmless(t *testing.T) {
	am := game.NewAudioManager(game.NewResourceManager(nil, ""), nil)
	am.PreloadSounds(cueSoundIDs)
	am.PreloadMusic([]string{config.MusicBackground})
	if am.PlaySound(config.SoundEngine) {
		t.Error("sound without a resource config should not play")
	}
}
