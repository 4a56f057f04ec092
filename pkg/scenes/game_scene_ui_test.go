package scenes

import (
	"testing"

	"github.com/decker502/lanedrive/pkg/config"
	"github.com/decker502/lanedrive/pkg/game"
)

func TestHUDText(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"initial score", scoreText(0), "Score : 0"},
		{"score after ticks", scoreText(120), "Score : 120"},
		{"full health", healthText(100), "Health: 100"},
		{"depleted health", healthText(0), "Health: 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestHealthBarWidth(t *testing.T) {
	tests := []struct {
		health int
		want   float32
	}{
		{100, 100},
		{60, 60},
		{0, 0},
		{-10, 0},
	}

	for _, tt := range tests {
		if got := healthBarWidth(tt.health); got != tt.want {
			t.Errorf("healthBarWidth(%d) = %v, want %v", tt.health, got, tt.want)
		}
	}
}

func TestOverlayFor(t *testing.T) {
	newSession := func() *game.SessionState {
		return game.NewSessionState(config.DefaultTuning())
	}

	playing := newSession()
	if got := overlayFor(playing); got != overlayNone {
		t.Errorf("playing: got overlay %d, want none", got)
	}

	paused := newSession()
	paused.TogglePause()
	if got := overlayFor(paused); got != overlayPause {
		t.Errorf("paused: got overlay %d, want pause", got)
	}

	over := newSession()
	over.EnterGameOver()
	if got := overlayFor(over); got != overlayGameOver {
		t.Errorf("game over: got overlay %d, want game over", got)
	}
}

func TestLabelSize(t *testing.T) {
	tests := []struct {
		name         string
		w, h, scale  float64
		wantW, wantH int
	}{
		{"exact", 70, 13, 3, 210, 39},
		{"rounds up", 10.5, 13, 1, 11, 13},
		{"empty text", 0, 0, 3, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := labelSize(tt.w, tt.h, tt.scale)
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("labelSize = %dx%d, want %dx%d", w, h, tt.wantW, tt.wantH)
			}
		})
	}
}
