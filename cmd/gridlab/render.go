package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"charm.land/lipgloss/v2"
	"golang.org/x/term"

	"github.com/katalvlaran/gridlab/grid"
	"github.com/katalvlaran/gridlab/search"
)

// palette draws one character per cell, styled when color is on.
type palette struct {
	color   bool
	wall    lipgloss.Style
	marker  lipgloss.Style
	path    lipgloss.Style
	visited lipgloss.Style
	weight  lipgloss.Style
}

func newPalette(color bool) palette {
	return palette{
		color:   color,
		wall:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		marker:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
		path:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		visited: lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		weight:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	}
}

func (p palette) paint(s lipgloss.Style, ch byte) string {
	if !p.color {
		return string(ch)
	}
	return s.Render(string(ch))
}

// render prints g row by row: '#' wall, 'S'/'E' endpoints, '*' path,
// ':' explored, a digit (or '+') for weights and '.' for the rest.
func (p palette) render(g *grid.Grid, res *search.Result) string {
	const (
		onPath = 1 << iota
		seen
	)
	marks := make([]uint8, g.Len())
	if res != nil {
		for _, c := range res.Visited {
			marks[g.Index(c.Pos)] |= seen
		}
		for _, c := range res.Path {
			marks[g.Index(c.Pos)] |= onPath
		}
	}

	var sb strings.Builder
	for i := 0; i < g.Len(); i++ {
		if i > 0 && i%g.Cols() == 0 {
			sb.WriteByte('\n')
		}
		c := g.CellAt(i)
		switch {
		case c.Kind == grid.Start:
			sb.WriteString(p.paint(p.marker, 'S'))
		case c.Kind == grid.End:
			sb.WriteString(p.paint(p.marker, 'E'))
		case marks[i]&onPath != 0:
			sb.WriteString(p.paint(p.path, '*'))
		case c.Kind == grid.Wall:
			sb.WriteString(p.paint(p.wall, '#'))
		case c.Weight > 9:
			sb.WriteString(p.paint(p.weight, '+'))
		case c.Weight > 1:
			sb.WriteString(p.paint(p.weight, byte('0'+c.Weight)))
		case marks[i]&seen != 0:
			sb.WriteString(p.paint(p.visited, ':'))
		default:
			sb.WriteByte('.')
		}
	}
	return sb.String()
}

// useColor resolves the -color flag. "auto" colors only a terminal and
// honors NO_COLOR.
func useColor(mode string, w io.Writer) (bool, error) {
	switch mode {
	case "always":
		return true, nil
	case "never":
		return false, nil
	case "auto":
	default:
		return false, fmt.Errorf("-color: unknown mode %q (want auto, always or never)", mode)
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false, nil
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd())), nil
}
