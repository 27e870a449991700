// Package main is a terminal demo host for the textbox widget. It owns
// the text buffer, feeds batched tcell events to the widget each pass,
// draws the emitted frame, and hot-reloads style from a TOML file.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/dshills/textbox/internal/config"
	"github.com/dshills/textbox/internal/engine/buffer"
	"github.com/dshills/textbox/internal/engine/line"
	"github.com/dshills/textbox/internal/geom"
	"github.com/dshills/textbox/internal/glyph"
	"github.com/dshills/textbox/internal/input"
	"github.com/dshills/textbox/internal/render"
	"github.com/dshills/textbox/internal/widget/textbox"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "textbox.toml", "path to the style configuration file")
	text := flag.String("text", "hello world", "initial buffer content")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Printf("config: %v (using defaults)", err)
		cfg = config.Default()
	}

	watcher, err := config.NewWatcher(*configPath)
	if err != nil {
		log.Printf("config watcher: %v (live reload disabled)", err)
	} else {
		defer watcher.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to init screen: %v\n", err)
		return 1
	}
	defer screen.Fini()
	screen.EnableMouse()

	tb := textbox.New(glyph.Monospace{Aspect: 1}, textbox.WithStyle(terminalStyle(cfg)))
	tb.SetFocused(true)
	buf := buffer.New(*text)

	adapter := input.NewAdapter()

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go screen.ChannelEvents(events, quit)
	defer close(quit)

	pass := func(batch []input.Event) {
		w, h := screen.Size()
		rect := geom.Rect{X: 0, Y: 0, W: float64(w), H: float64(h)}
		frame := tb.Update(buf, rect, batch)
		draw(screen, frame)
		screen.Show()
	}
	pass(nil)

	var watchEvents <-chan config.Event
	var watchErrors <-chan error
	if watcher != nil {
		watchEvents = watcher.Events()
		watchErrors = watcher.Errors()
	}

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return 0
			}
			if key, isKey := ev.(*tcell.EventKey); isKey {
				if key.Key() == tcell.KeyEscape || key.Key() == tcell.KeyCtrlC {
					return 0
				}
			}
			if _, isResize := ev.(*tcell.EventResize); isResize {
				screen.Sync()
				pass(nil)
				continue
			}
			pass(adapter.Translate(ev))

		case <-watchEvents:
			if cfg, err := config.Load(*configPath); err == nil {
				tb.SetStyle(terminalStyle(cfg))
				pass(nil)
			}

		case <-watchErrors:
			// Reload keeps working off the last good config.
		}
	}
}

// terminalStyle maps the configuration onto terminal cell units: one
// cell per glyph column, one row per line.
func terminalStyle(cfg config.Config) textbox.Style {
	s := textbox.StyleFromConfig(cfg)
	s.FontSize = 1
	s.LineSpacing = 0
	s.Padding = 1
	return s
}

func draw(s tcell.Screen, f textbox.Frame) {
	s.Clear()

	bg := toTcell(f.Background.Color)
	fg := toTcell(f.Text.Color)
	fillRect(s, f.Background.Rect, tcell.StyleDefault.Background(bg))

	st := tcell.StyleDefault.Foreground(fg).Background(bg)
	rects := line.Rects(f.Text.Layout, f.Text.FontSize, f.Text.Rect, f.Text.XAlign, f.Text.YAlign, f.Text.LineSpacing)
	for i, in := range f.Text.Layout {
		if i >= len(rects) {
			break
		}
		x, y := int(rects[i].X), int(rects[i].Y)
		for _, r := range in.Text(f.Text.Text) {
			s.SetContent(x, y, r, nil, st)
			x += runewidth.RuneWidth(r)
		}
	}

	// Terminal cells have no alpha; show highlights as reverse video.
	for _, h := range f.Highlights {
		reverseRect(s, h.Rect)
	}
	if f.HasCaret {
		reverseCell(s, int(f.Caret.Start.X), int(f.Caret.Start.Y))
	}
}

func fillRect(s tcell.Screen, r geom.Rect, st tcell.Style) {
	for y := int(r.Top()); y < int(r.Bottom()); y++ {
		for x := int(r.Left()); x < int(r.Right()); x++ {
			s.SetContent(x, y, ' ', nil, st)
		}
	}
}

func reverseRect(s tcell.Screen, r geom.Rect) {
	for y := int(r.Top()); y < int(r.Bottom()); y++ {
		for x := int(r.Left()); x < int(r.Right()); x++ {
			reverseCell(s, x, y)
		}
	}
}

func reverseCell(s tcell.Screen, x, y int) {
	mainc, combc, st, _ := s.GetContent(x, y)
	s.SetContent(x, y, mainc, combc, st.Reverse(true))
}

func toTcell(c render.Color) tcell.Color {
	return tcell.NewRGBColor(
		int32(c.R*255+0.5),
		int32(c.G*255+0.5),
		int32(c.B*255+0.5),
	)
}
