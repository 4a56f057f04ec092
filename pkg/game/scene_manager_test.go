package game

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// MockScene is a mock implementation of the Scene interface for testing.
type MockScene struct {
	updateCalled bool
	drawCalled   bool
	deltaTime    float64
}

// Update records that Update was called and stores the deltaTime.
func (m *MockScene) Update(deltaTime float64) {
	m.updateCalled = true
	m.deltaTime = deltaTime
}

// Draw records that Draw was called.
func (m *MockScene) Draw(screen *ebiten.Image) {
	m.drawCalled = true
}

// closingScene also implements Closer.
type closingScene struct {
	MockScene
	closed int
	err    error
}

func (c *closingScene) Close() error {
	c.closed++
	return c.err
}

func TestSceneManagerUpdateAndDraw(t *testing.T) {
	sm := NewSceneManager()
	mockScene := &MockScene{}
	sm.SwitchTo(mockScene)

	if sm.currentScene != mockScene {
		t.Fatal("SwitchTo did not set the current scene correctly")
	}

	sm.Update(1.0 / 60.0)
	sm.Draw(nil)

	if !mockScene.updateCalled || mockScene.deltaTime != 1.0/60.0 {
		t.Errorf("Update not forwarded correctly: %+v", mockScene)
	}
	if !mockScene.drawCalled {
		t.Error("Scene's Draw method was not called")
	}
}

// TestSceneManagerNoScene 没有场景时 Update/Draw 不 panic
func TestSceneManagerNoScene(t *testing.T) {
	sm := NewSceneManager()
	sm.Update(0.016)
	sm.Draw(nil)
	sm.Close()
}

func TestSceneManagerClosesPreviousScene(t *testing.T) {
	sm := NewSceneManager()
	first := &closingScene{}
	second := &closingScene{err: errors.New("watcher already closed")}

	sm.SwitchTo(first)
	sm.SwitchTo(second)

	if first.closed != 1 {
		t.Errorf("first scene closed %d times, want 1", first.closed)
	}
	if second.closed != 0 {
		t.Error("active scene should not be closed")
	}

	// Close 的错误只记录日志
	sm.Close()
	if second.closed != 1 {
		t.Errorf("second scene closed %d times, want 1", second.closed)
	}
	if sm.currentScene != nil {
		t.Error("Close should clear the current scene")
	}
}
