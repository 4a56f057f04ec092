package systems

import (
	"image"

	"github.com/decker502/lanedrive/pkg/components"
	"github.com/hajimehoshi/ebiten/v2"
)

// RenderImages 渲染游戏世界所需的图片
type RenderImages struct {
	Background *ebiten.Image
	Straight   *ebiten.Image
	Left       *ebiten.Image
	Right      *ebiten.Image
	Props      map[components.PropKind]*ebiten.Image
}

// RenderSystem 绘制背景、道具和玩家赛车
//
// 只读取 World 的状态，不做任何修改。HUD 和暂停界面由场景单独绘制。
type RenderSystem struct {
	world  *World
	images RenderImages
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(world *World, images RenderImages) *RenderSystem {
	return &RenderSystem{world: world, images: images}
}

// Draw 按 背景 -> 道具 -> 玩家 的顺序绘制
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	s.drawBackground(screen)

	for i := range s.world.Pool.Slots {
		prop := &s.world.Pool.Slots[i]
		if !prop.Active {
			continue
		}
		drawFrame(screen, s.images.Props[prop.Kind], prop.AnimatedSprite)
	}

	player := s.world.Player
	var sheet *ebiten.Image
	switch player.Steering {
	case components.SteeringLeft:
		sheet = s.images.Left
	case components.SteeringRight:
		sheet = s.images.Right
	default:
		sheet = s.images.Straight
	}
	drawFrame(screen, sheet, *player.CurrentSprite())
}

func (s *RenderSystem) drawBackground(screen *ebiten.Image) {
	if s.images.Background == nil {
		return
	}
	for _, y := range []float64{s.world.Session.BackgroundY1, s.world.Session.BackgroundY2} {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(0, y)
		screen.DrawImage(s.images.Background, op)
	}
}

// drawFrame 从精灵表中裁出当前帧并绘制到精灵位置
func drawFrame(screen, sheet *ebiten.Image, sprite components.AnimatedSprite) {
	if sheet == nil {
		return
	}
	rect := WrapFrameBounds(FrameBounds(sprite.FrameRect), sheet.Bounds().Dx())
	frame, ok := sheet.SubImage(rect).(*ebiten.Image)
	if !ok || rect.Empty() {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(sprite.Position.X, sprite.Position.Y)
	screen.DrawImage(frame, op)
}

// WrapFrameBounds 把超出精灵表宽度的源矩形平移回贴图内
// 源矩形宽度等于整张贴图时（直行赛车），任何帧都落回第 0 帧的位置，
// 效果与平铺重复的贴图相同
func WrapFrameBounds(rect image.Rectangle, sheetWidth int) image.Rectangle {
	if sheetWidth <= 0 || rect.Min.X < sheetWidth {
		return rect
	}
	offset := rect.Min.X % sheetWidth
	return rect.Add(image.Pt(offset-rect.Min.X, 0))
}

// FrameBounds 把浮点源矩形转换为像素矩形
func FrameBounds(r components.Rect) image.Rectangle {
	x0, y0 := int(r.X), int(r.Y)
	return image.Rect(x0, y0, x0+int(r.Width), y0+int(r.Height))
}
