package main

import (
	"flag"
	"log"
	"os"

	"github.com/decker502/lanedrive/pkg/app"
	"github.com/decker502/lanedrive/pkg/config"
	"github.com/decker502/lanedrive/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	verbose := flag.Bool("verbose", false, "Enable verbose logging")
	tuningPath := flag.String("tuning", "", "Load tuning from this YAML file instead of the embedded copy")
	watch := flag.Bool("watch", false, "Hot reload the -tuning file when it changes")
	assetRoot := flag.String("assets", "", "Directory containing resources/ (default: search from the working directory)")
	flag.Parse()

	embedded.Init(dataFS)

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle(config.GameWindowTitle)

	a, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		TuningPath: *tuningPath,
		Watch:      *watch,
		AssetRoot:  *assetRoot,
	})
	if err != nil {
		// NewApp 在非 verbose 模式下会关闭日志输出
		log.SetOutput(os.Stderr)
		log.Fatalf("failed to start: %v", err)
	}
	defer func() {
		if err := a.Close(); err != nil {
			log.Printf("[main] close: %v", err)
		}
	}()

	if err := ebiten.RunGame(a); err != nil {
		log.SetOutput(os.Stderr)
		log.Printf("game loop: %v", err)
	}
}
