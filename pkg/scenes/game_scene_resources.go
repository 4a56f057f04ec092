package scenes

import (
	"fmt"
	"log"

	"github.com/decker502/lanedrive/pkg/components"
	"github.com/decker502/lanedrive/pkg/config"
	"github.com/decker502/lanedrive/pkg/entities"
	"github.com/decker502/lanedrive/pkg/game"
	"github.com/decker502/lanedrive/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

// sceneAssets 游戏场景用到的图片及其帧信息
type sceneAssets struct {
	images       systems.RenderImages
	playerFrames entities.PlayerFrames
	propSheets   systems.PropSheets
}

// propImageIDs 道具类型到图片资源ID的映射
var propImageIDs = map[components.PropKind]string{
	components.PropRoadblock:  config.ImagePropRoadblock,
	components.PropPickup:     config.ImagePropPickup,
	components.PropSpeedBoost: config.ImagePropSpeedBoost,
}

// loadSceneAssets 加载资源组并计算每张精灵表的帧尺寸
// 任何图片缺失都是致命错误
func loadSceneAssets(rm *game.ResourceManager) (*sceneAssets, error) {
	if err := rm.LoadResourceGroup(config.ResourceGroupGame); err != nil {
		return nil, err
	}

	background, err := rm.LoadImageByID(config.ImageBackground)
	if err != nil {
		return nil, err
	}

	straight, err := rm.LoadSpriteSheet(config.ImageCarStraight)
	if err != nil {
		return nil, err
	}
	left, err := rm.LoadSpriteSheet(config.ImageCarLeft)
	if err != nil {
		return nil, err
	}
	right, err := rm.LoadSpriteSheet(config.ImageCarRight)
	if err != nil {
		return nil, err
	}

	assets := &sceneAssets{
		images: systems.RenderImages{
			Background: background,
			Straight:   straight.Image,
			Left:       left.Image,
			Right:      right.Image,
			Props:      make(map[components.PropKind]*ebiten.Image, len(propImageIDs)),
		},
		playerFrames: entities.PlayerFrames{
			Straight: straight.FrameSize(),
			Left:     left.FrameSize(),
			Right:    right.FrameSize(),
		},
		propSheets: make(systems.PropSheets, len(propImageIDs)),
	}

	for kind, id := range propImageIDs {
		sheet, err := rm.LoadSpriteSheet(id)
		if err != nil {
			return nil, fmt.Errorf("prop %s: %w", kind, err)
		}
		assets.images.Props[kind] = sheet.Image
		assets.propSheets[kind] = propSheetFor(sheet)
		log.Printf("[GameScene] Prop %s: frame %.0fx%.0f, %d frames",
			kind, assets.propSheets[kind].Size.Width, assets.propSheets[kind].Size.Height, assets.propSheets[kind].MaxFrame+1)
	}

	return assets, nil
}

// propSheetFor 由精灵表计算道具的帧尺寸和最大帧索引
func propSheetFor(sheet components.SpriteSheet) systems.PropSheet {
	maxFrame := sheet.Columns - 1
	if maxFrame < 0 {
		maxFrame = 0
	}
	return systems.PropSheet{Size: sheet.FrameSize(), MaxFrame: maxFrame}
}
