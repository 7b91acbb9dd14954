package model

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "··"

	clearCmd = "clear"
)

// Sink receives one generation per completed tick and owns its presentation.
// Implementations must not retain alive past the call.
type Sink interface {
	Render(generation int, dims Dimensions, alive []Coord)
}

// TerminalRenderer prints each z-slice of a generation side by side
type TerminalRenderer struct {
	Out io.Writer
}

// NewTerminalRenderer creates a renderer writing to stdout
func NewTerminalRenderer() *TerminalRenderer {
	return &TerminalRenderer{Out: os.Stdout}
}

// Render draws the generation as z-slices laid out left to right
func (r *TerminalRenderer) Render(generation int, dims Dimensions, alive []Coord) {
	live := make(map[Coord]struct{}, len(alive))
	for _, c := range alive {
		live[c] = struct{}{}
	}

	var b strings.Builder
	for y := dims.Y - 1; y >= 0; y-- {
		for z := range dims.Z {
			if z > 0 {
				b.WriteString("  ")
			}
			for x := range dims.X {
				if _, ok := live[Coord{X: x, Y: y, Z: z}]; ok {
					b.WriteString(gridPosBlock)
				} else {
					b.WriteString(gridPosEmpty)
				}
			}
		}
		b.WriteByte('\n')
	}
	fmt.Fprint(r.Out, b.String())
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() error {
	cmd := exec.Command(clearCmd)
	cmd.Stdout = r.Out
	return cmd.Run()
}
