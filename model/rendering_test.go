package model

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTerminalRendererRender(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	r := &TerminalRenderer{Out: &out}
	r.Render(0, Dimensions{X: 2, Y: 2, Z: 2}, []Coord{{0, 0, 0}, {1, 1, 1}})

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	assert.Equal(t, []string{
		"····  ····██",
		"██··  ····",
	}, lines)
}
