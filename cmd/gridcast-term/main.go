package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"gridcast/internal/app"
	"gridcast/internal/core"
	_ "gridcast/internal/maps/arena"
	_ "gridcast/internal/maps/pillars"
	_ "gridcast/internal/maps/reference"
	"gridcast/internal/render"
	"gridcast/internal/term"
	"gridcast/pkg/raycast"

	"github.com/gdamore/tcell/v2"
)

const statusRows = 1

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	logPath := flag.String("log", "", "write logs to this file (discarded when empty)")
	flag.Parse()

	var logOut io.Writer
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "open log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logOut = f
	}
	log := app.Logger(logOut)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to start tcell: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to init screen: %v\n", err)
		os.Exit(1)
	}
	screen.HideCursor()
	screen.Clear()

	overrides := fitToScreen(cfg.Overrides(), screen)
	session, err := app.NewSession(cfg.Map, overrides, log)
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "cannot start: %v\n", err)
		os.Exit(1)
	}
	err = run(screen, session, cfg.TPS)
	screen.Fini()
	if err != nil {
		log.Error().Err(err).Msg("terminal loop")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// fitToScreen renders one ray per terminal column unless the size was set
// explicitly.
func fitToScreen(overrides map[string]string, s tcell.Screen) map[string]string {
	cols, rows := s.Size()
	rows -= statusRows
	if cols <= 0 || rows <= 0 {
		return overrides
	}
	if _, ok := overrides["w"]; !ok {
		overrides["w"] = strconv.Itoa(cols)
		if _, ok := overrides["rays"]; !ok {
			overrides["rays"] = strconv.Itoa(cols)
		}
	}
	if _, ok := overrides["h"]; !ok {
		overrides["h"] = strconv.Itoa(rows * 2)
	}
	return overrides
}

func run(screen tcell.Screen, session *app.Session, tps int) error {
	rc := session.Raycaster().Config()
	fb := render.NewFramebuffer(rc.ScreenWidth, rc.ScreenHeight)

	done := make(chan struct{})
	defer close(done)
	events := term.Poll(screen, done)

	ticker := core.NewFixedStep(tps).Ticker()
	defer ticker.Stop()

	var pending raycast.Controls
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
			case *tcell.EventKey:
				c, action := term.Key(ev)
				switch action {
				case term.ActionQuit:
					return nil
				case term.ActionToggleStrategy:
					if err := session.ToggleStrategy(); err != nil {
						return err
					}
				case term.ActionReset:
					session.Reset()
				}
				pending = term.Merge(pending, c)
			}
		case <-ticker.C:
			if pending.Any() {
				session.Tick(pending)
				pending = raycast.Controls{}
			}
			stats := session.Render(fb)
			_, rows := screen.Size()
			term.Blit(screen, fb, statusRows)
			term.Status(screen, rows-statusRows, statusLine(session, stats))
			screen.Show()
		}
	}
}

func statusLine(s *app.Session, stats raycast.FrameStats) string {
	p := s.Player()
	return fmt.Sprintf(" %s | %s | pos %.2f,%.2f | heading %d | sweep %s | escaped %d | arrows move, s strategy, r reset, q quit",
		s.Layout().Name, s.Raycaster().Strategy(), p.X, p.Y, p.Heading(), s.Timer().Average(), stats.Escaped)
}
