// Desktop entrypoint for Train Color Matcher.
package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/trainmatch/pkg/app"
)

func main() {
	verbose := flag.Bool("verbose", false, "enable log output")
	configPath := flag.String("config", "config.json", "path to the tuning config")
	levelsPath := flag.String("levels", "levels.yaml", "path to the level list")
	skipMenu := flag.Bool("skip-menu", false, "start playing immediately")
	flag.Parse()

	a, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
		LevelsPath: *levelsPath,
		SkipMenu:   *skipMenu,
	})
	if err != nil {
		log.Fatal(err)
	}

	cfg := a.State().Config
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if settings := a.State().Settings; settings != nil && settings.Get().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	if err := ebiten.RunGame(a); err != nil {
		log.Fatal(err)
	}

	// RunGame returns nil when the window is closed; save before exit.
	a.Shutdown()
}
