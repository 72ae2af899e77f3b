//go:build ebiten

package main

import (
	"errors"
	"flag"

	"oledcaster/internal/app"
	_ "oledcaster/internal/levels"
	"oledcaster/pkg/logger"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	logger.Init()

	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	session, err := app.NewSession(cfg)
	if err != nil {
		logger.Log.Fatalf("start session: %v", err)
	}

	game := app.New(session, cfg.Scale)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("oledcaster - " + session.Level.Name)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Log.Fatal(err)
	}
	logger.Log.WithField("frames", session.Frames()).Info("bye")
}
