// Package term draws frames into a character terminal and reads its keys.
//
// Each terminal cell shows two framebuffer rows with the upper half block:
// the foreground is the top pixel and the background the bottom one.
package term

import (
	"gridcast/internal/render"
	"gridcast/pkg/raycast"

	"github.com/gdamore/tcell/v2"
)

const halfBlock = '▀'

// Action is a key's effect beyond movement.
type Action uint8

const (
	ActionNone Action = iota
	ActionQuit
	ActionToggleStrategy
	ActionReset
)

// Key maps a key event to movement and an action. Terminals report key
// repeats rather than held keys, so each event drives one tick of movement.
func Key(ev *tcell.EventKey) (raycast.Controls, Action) {
	var c raycast.Controls
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return c, ActionQuit
	case tcell.KeyLeft:
		c.RotateLeft = true
	case tcell.KeyRight:
		c.RotateRight = true
	case tcell.KeyUp:
		c.Forward = true
	case tcell.KeyDown:
		c.Backward = true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return c, ActionQuit
		case 's':
			return c, ActionToggleStrategy
		case 'r':
			return c, ActionReset
		}
	}
	return c, ActionNone
}

// Poll forwards screen events on the returned channel until the screen is
// finalized or done is closed. The channel is closed when polling stops.
func Poll(s tcell.Screen, done <-chan struct{}) <-chan tcell.Event {
	events := make(chan tcell.Event, 16)
	go func() {
		defer close(events)
		for {
			ev := s.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()
	return events
}

// Merge ORs two control sets.
func Merge(a, b raycast.Controls) raycast.Controls {
	return raycast.Controls{
		RotateLeft:  a.RotateLeft || b.RotateLeft,
		RotateRight: a.RotateRight || b.RotateRight,
		Forward:     a.Forward || b.Forward,
		Backward:    a.Backward || b.Backward,
	}
}

// Blit scales fb to the screen with nearest sampling, leaving the last
// statusRows rows free.
func Blit(s tcell.Screen, fb *render.Framebuffer, statusRows int) {
	cols, rows := s.Size()
	rows -= statusRows
	if cols <= 0 || rows <= 0 {
		return
	}
	fw, fh := fb.Size()
	for cy := 0; cy < rows; cy++ {
		top := (2 * cy) * fh / (2 * rows)
		bottom := (2*cy + 1) * fh / (2 * rows)
		for cx := 0; cx < cols; cx++ {
			fx := cx * fw / cols
			style := tcell.StyleDefault.
				Foreground(cellColor(fb.At(fx, top))).
				Background(cellColor(fb.At(fx, bottom)))
			s.SetContent(cx, cy, halfBlock, nil, style)
		}
	}
}

// Status writes text on row y, padding the rest of the row.
func Status(s tcell.Screen, y int, text string) {
	cols, _ := s.Size()
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	x := 0
	for _, r := range text {
		if x >= cols {
			return
		}
		s.SetContent(x, y, r, nil, style)
		x++
	}
	for ; x < cols; x++ {
		s.SetContent(x, y, ' ', nil, style)
	}
}

func cellColor(v uint16) tcell.Color {
	c := render.Decode565(v)
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
