// Package textutil lays out help text: word wrapping and two-column tables.
package textutil

import (
	"strings"

	"github.com/mitchellh/go-wordwrap"
)

// Wrap breaks text into lines no longer than width. Runs of whitespace collapse to a single space
// and words longer than width are kept whole on their own line.
func Wrap(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	if width < 1 {
		width = 1
	}
	return strings.Split(wordwrap.WrapString(strings.Join(words, " "), uint(width)), "\n")
}

// Row is one entry of a two-column table.
type Row struct {
	Left, Right string
}

// Columns renders rows as an indented two-column table that fits into width. The left column is
// as wide as the longest left cell; right cells wrap and continuation lines are aligned with the
// start of the right column.
func Columns(rows []Row, indent, gap, width int) []string {
	maxLeft := 0
	for _, r := range rows {
		maxLeft = max(maxLeft, len(r.Left))
	}
	leftWidth := indent + maxLeft + gap
	wrapWidth := max(width-leftWidth, 20)

	var lines []string
	for _, r := range rows {
		head := strings.Repeat(" ", indent) + r.Left
		wrapped := Wrap(r.Right, wrapWidth)
		if len(wrapped) == 0 {
			lines = append(lines, head)
			continue
		}
		lines = append(lines, head+strings.Repeat(" ", leftWidth-len(head))+wrapped[0])
		pad := strings.Repeat(" ", leftWidth)
		for _, line := range wrapped[1:] {
			lines = append(lines, pad+line)
		}
	}
	return lines
}
