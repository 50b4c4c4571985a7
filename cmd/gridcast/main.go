//go:build ebiten

package main

import (
	"errors"
	"flag"

	"gridcast/internal/app"
	_ "gridcast/internal/maps/arena"
	_ "gridcast/internal/maps/pillars"
	_ "gridcast/internal/maps/reference"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	log := app.ConsoleLogger()

	session, err := app.NewSession(cfg.Map, cfg.Overrides(), log)
	if err != nil {
		log.Fatal().Err(err).Str("map", cfg.Map).Msg("cannot start")
	}

	game := app.New(session, cfg.Scale, cfg.HUDWidth)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("gridcast - " + session.Layout().Name)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal().Err(err).Msg("game loop")
	}
}
