package main

import (
	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/katalvlaran/mazegrid/symbol"
)

// kindStyle maps symbol kinds to the classic maze palette: walls
// black, corridors white, solution path and openings magenta.
func kindStyle(k symbol.Kind) tcell.Style {
	switch k {
	case symbol.Wall:
		return tcell.StyleDefault.Background(tcell.ColorBlack)
	case symbol.Open:
		return tcell.StyleDefault.Background(tcell.ColorWhite)
	default: // Path, Entrance, Exit
		return tcell.StyleDefault.Background(tcell.ColorFuchsia)
	}
}

// viewMaze renders the symbolic grid full-screen until the user quits
// with q, Esc, or Ctrl-C. Each raster position spans two terminal
// columns so cells come out roughly square.
func viewMaze(sg symbol.Grid2D) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "create screen")
	}
	if err = screen.Init(); err != nil {
		return errors.Wrap(err, "init screen")
	}
	defer screen.Fini()

	draw := func() {
		screen.Clear()
		for y, row := range sg {
			for x, k := range row {
				st := kindStyle(k)
				screen.SetContent(2*x, y, ' ', nil, st)
				screen.SetContent(2*x+1, y, ' ', nil, st)
			}
		}
		screen.Show()
	}
	draw()

	for {
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
			draw()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				return nil
			}
		}
	}
}
