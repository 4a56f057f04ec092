package scenes

import (
	"fmt"
	"image/color"

	"github.com/decker502/lanedrive/pkg/config"
	"github.com/decker502/lanedrive/pkg/game"
	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

var (
	scoreTextColor    color.Color = colornames.White
	healthTextColor   color.Color = colornames.Red
	healthBarColor    color.Color = colornames.Red
	pauseTextColor    color.Color = colornames.Green
	gameOverTextColor color.Color = colornames.Red
)

// basicFace 内置的 7x13 位图字体，无需加载字体文件
func basicFace() text.Face {
	return text.NewGoXFace(basicfont.Face7x13)
}

// HUD 绘制分数、生命值、生命条和 FPS
type HUD struct {
	face text.Face
}

// NewHUD 创建 HUD
func NewHUD() *HUD {
	return &HUD{face: basicFace()}
}

func scoreText(score int) string {
	return fmt.Sprintf("Score : %d", score)
}

func healthText(health int) string {
	return fmt.Sprintf("Health: %d", health)
}

// healthBarWidth 生命条宽度等于当前生命值（像素），不会为负
func healthBarWidth(health int) float32 {
	if health < 0 {
		return 0
	}
	return float32(health)
}

// Draw 绘制 HUD
func (h *HUD) Draw(screen *ebiten.Image, score, health int) {
	h.drawText(screen, scoreText(score), config.ScoreTextX, config.ScoreTextY, scoreTextColor)
	h.drawText(screen, healthText(health), config.HealthTextX, config.HealthTextY, healthTextColor)

	if w := healthBarWidth(health); w > 0 {
		vector.FillRect(screen,
			config.HealthBarX, config.HealthBarY,
			w, config.HealthBarHeight,
			healthBarColor, false)
	}

	fps := fmt.Sprintf("FPS: %.0f", ebiten.ActualFPS())
	ebitenutil.DebugPrintAt(screen, fps, screen.Bounds().Dx()-config.FPSTextOffsetX, config.ScoreTextY)
}

func (h *HUD) drawText(screen *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(config.HUDTextScale, config.HUDTextScale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, h.face, op)
}

// overlayKind 当前需要显示的覆盖层
type overlayKind int

const (
	overlayNone overlayKind = iota
	overlayPause
	overlayGameOver
)

// overlayFor 根据会话状态选择覆盖层
// 游戏结束优先于暂停（结束时会话同时处于暂停状态）
func overlayFor(session *game.SessionState) overlayKind {
	switch {
	case session.IsGameOver():
		return overlayGameOver
	case session.Paused:
		return overlayPause
	default:
		return overlayNone
	}
}

// NewOverlay 创建全屏黑底、居中显示一行提示文字的界面
//
// 文字先按 OverlayTextScale 放大绘制到一张图片上，再作为 Graphic 控件放进锚点布局，
// 这样不需要加载矢量字体也能显示大号文字。
func NewOverlay(message string, textColor color.Color) *ebitenui.UI {
	background := imageui.NewNineSliceColor(color.NRGBA{A: 0xff})

	label := widget.NewGraphic(
		widget.GraphicOpts.Image(renderLabel(message, textColor, config.OverlayTextScale)),
		widget.GraphicOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	root := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(background),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(label)

	return &ebitenui.UI{Container: root}
}

// renderLabel 把文字按比例放大绘制到一张刚好容纳它的图片上
func renderLabel(message string, clr color.Color, scale float64) *ebiten.Image {
	face := basicFace()
	w, h := text.Measure(message, face, 0)
	width, height := labelSize(w, h, scale)

	img := ebiten.NewImage(width, height)
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(img, message, face, op)
	return img
}

// labelSize 放大后的文字尺寸，向上取整且至少为 1 像素
func labelSize(w, h, scale float64) (int, int) {
	width := int(w*scale + 0.999)
	height := int(h*scale + 0.999)
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return width, height
}
