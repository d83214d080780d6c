/*
Arena renders an animated basketball arena in the terminal.
*/
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/spaghettifunk/arena/arena"
	"github.com/spaghettifunk/arena/engine"
	"github.com/spaghettifunk/arena/engine/config"
	"github.com/spaghettifunk/arena/engine/core"
)

func main() {
	configPath := flag.String("config", "", "path to arena.toml; defaults are used when empty")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	// the terminal belongs to the renderer while the arena runs
	if cfg.App.LogFile != "" {
		f, err := os.OpenFile(cfg.App.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		core.SetLogOutput(f)
	} else {
		core.SetLogOutput(io.Discard)
	}

	game, err := arena.NewArenaGame(cfg, configPath)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}

	e, err := engine.New(game.Game, screen)
	if err != nil {
		return err
	}

	if err := e.Initialize(); err != nil {
		_ = e.Shutdown()
		return err
	}

	// signal channel to capture system calls
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer signal.Stop(sigCh)

	// ask the frame loop to stop; it owns all engine state
	done := make(chan struct{})
	go func() {
		select {
		case <-sigCh:
		case <-done:
			return
		}
		if err := core.EventPost(core.EventContext{Type: core.EVENT_CODE_APPLICATION_QUIT}); err != nil {
			core.LogError("quit not posted: %s", err)
		}
	}()

	runErr := e.Run()
	close(done)
	if err := e.Shutdown(); err != nil && runErr == nil {
		runErr = err
	}
	return runErr
}
