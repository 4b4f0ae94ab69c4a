package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/ufo-shooter/constants"
	"github.com/lixenwraith/ufo-shooter/engine"
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
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "ufo-shooter: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	screen.EnableMouse()
	screen.HideCursor()

	// Panic Recovery: restore the terminal before printing the trace
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mUFO-SHOOTER CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	s, err := session.Open(session.Options{
		ConfigPath: *configFlag,
		LogPath:    *logFlag,
		LogLevel:   *logLevelFlag,
		Seed:       *seedFlag,
		Mute:       *muteFlag,
	}, 1)
	if err != nil {
		return err
	}
	defer s.Close()

	events := make(chan tcell.Event, constants.EventChannelSize)
	go func() {
		for {
			ev := screen.PollEvent()
			events <- ev
			if ev == nil {
				return
			}
		}
	}()

	frontend := newTerminalFrontend(screen, s, events, constants.KeyHoldFrames)
	loop := engine.NewLoop(s.Sim, frontend, s.Config.FrameInterval(), s.Log.Named("loop"))
	loop.SetFrameHook(s.OnFrame)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := loop.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		s.Log.Error("frame loop failed", zap.Error(err))
		return err
	}
	return nil
}
