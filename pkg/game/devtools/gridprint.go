// Package devtools provides developer tools for inspecting generated levels
// and running sessions.
package devtools

import (
	"fmt"
	"strings"

	"github.com/gookit/color"

	"gridfall/pkg/engine/terminal"
	"gridfall/pkg/engine/world"
)

// cellSymbol returns the single-character symbol for a cell.
func cellSymbol(c world.Cell) string {
	switch c.Kind {
	case world.Wall:
		return "#"
	case world.DoorCell:
		if c.Door.State == world.DoorTemporaryOpen {
			return "O"
		}
		return "D"
	case world.PickupSpawn:
		return "w"
	case world.HostileSpawn:
		return "h"
	case world.PlayerSpawn:
		return "@"
	case world.Empty:
		return "."
	default:
		return "?"
	}
}

var cellStyles = map[world.CellKind]color.Style{
	world.Empty:        {color.FgGray},
	world.Wall:         {color.FgGray, color.OpBold},
	world.DoorCell:     {color.FgYellow, color.OpBold},
	world.PickupSpawn:  {color.FgMagenta},
	world.HostileSpawn: {color.FgRed, color.OpBold},
	world.PlayerSpawn:  {color.FgGreen, color.OpBold},
}

// PrintGrid writes a level layout to stdout. When stdout is a terminal the
// cells are colorized and, if the terminal is wide enough, spaced apart for
// readability.
func PrintGrid(g *world.Grid) {
	interactive := terminal.IsInteractive()

	sep := ""
	if width, _ := terminal.GetSize(); interactive && width >= g.Size()*2 {
		sep = " "
	}

	var line strings.Builder
	for row := 0; row < g.Size(); row++ {
		line.Reset()
		for col := 0; col < g.Size(); col++ {
			c := g.At(row, col)
			sym := cellSymbol(c)
			if interactive {
				sym = cellStyles[c.Kind].Sprint(sym)
			}
			if col > 0 {
				line.WriteString(sep)
			}
			line.WriteString(sym)
		}
		fmt.Println(line.String())
	}
}
