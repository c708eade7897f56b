package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Rect is a screen region in cells.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Empty reports whether r covers no cells.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Overlay draws fg on top of bg with its top-left corner at (x, y). Both
// strings may contain ANSI styling. bg is padded to height lines of width
// columns first so the result always has the full screen size.
func Overlay(bg, fg string, x, y, width, height int) string {
	bgLines := fitLines(bg, width, height)
	fgLines := strings.Split(fg, "\n")

	fgW := 0
	for _, ln := range fgLines {
		fgW = max(fgW, ansi.StringWidth(ln))
	}
	if fgW == 0 {
		return strings.Join(bgLines, "\n")
	}
	x = max(x, 0)
	y = max(y, 0)
	if x+fgW > width {
		fgW = max(width-x, 0)
	}

	for i := 0; i < len(fgLines) && y+i < len(bgLines); i++ {
		bgLine := bgLines[y+i]
		left := ansi.Cut(bgLine, 0, x)
		right := ansi.Cut(bgLine, x+fgW, width)

		fgLine := fgLines[i]
		if n := ansi.StringWidth(fgLine); n < fgW {
			fgLine += strings.Repeat(" ", fgW-n)
		} else if n > fgW {
			fgLine = ansi.Cut(fgLine, 0, fgW)
		}
		bgLines[y+i] = left + fgLine + right
	}
	return strings.Join(bgLines, "\n")
}

// Dim strips styling from s and renders it in the backdrop style, keeping
// the layout identical.
func Dim(s string) string {
	lines := strings.Split(ansi.Strip(s), "\n")
	for i, ln := range lines {
		lines[i] = BackdropStyle.Render(ln)
	}
	return strings.Join(lines, "\n")
}

func fitLines(s string, width, height int) []string {
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i, ln := range lines {
		if n := ansi.StringWidth(ln); n < width {
			lines[i] = ln + strings.Repeat(" ", width-n)
		}
	}
	return lines
}
