package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/ufo-shooter/constants"
	"github.com/lixenwraith/ufo-shooter/session"
)

var (
	configFlag   = flag.String("config", "", "YAML tuning file")
	logFlag      = flag.String("log", "", "Log file path, empty disables logging")
	logLevelFlag = flag.String("log-level", "", "Log level override: debug, info, warn, error")
	seedFlag     = flag.Uint64("seed", 0, "Spawn seed, 0 uses the config or the wall clock")
	muteFlag     = flag.Bool("mute", false, "Start with audio muted")
)

func main() {
	flag.Parse()

	s, err := session.Open(session.Options{
		ConfigPath: *configFlag,
		LogPath:    *logFlag,
		LogLevel:   *logLevelFlag,
		Seed:       *seedFlag,
		Mute:       *muteFlag,
	}, float32(constants.WindowWidth)/float32(constants.WindowHeight))
	if err != nil {
		log.Fatal(err)
	}
	defer s.Close()

	game := NewGame(s)
	ebiten.SetWindowSize(constants.WindowWidth, constants.WindowHeight)
	ebiten.SetWindowTitle("UFO Shooter")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(constants.WindowTPS)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		s.Close()
		log.Fatal(err)
	}
}
