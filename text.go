package flex

import (
	"math"
	"strings"

	"github.com/rivo/uniseg"
)

// TextMeasure returns a MeasureFunc that word-wraps text to the available
// width. Widths are counted in terminal cells per grapheme cluster, so wide
// and combining characters measure the way a terminal draws them. Height is
// the number of wrapped lines.
func TextMeasure(text string) MeasureFunc {
	return func(width float64, widthMode MeasureMode, _ float64, _ MeasureMode) Size {
		limit := math.MaxInt
		if widthMode != MeasureUndefined && !math.IsNaN(width) {
			limit = max(1, int(math.Floor(width)))
		}
		lines := WrapText(text, limit)
		w := 0
		for _, line := range lines {
			w = max(w, uniseg.StringWidth(line))
		}
		return Size{Width: float64(w), Height: float64(len(lines))}
	}
}

// WrapText breaks text into lines no wider than width cells. Lines break at
// Unicode line-break opportunities; a word wider than a whole line is split
// between grapheme clusters. Explicit newlines always break, trailing spaces
// are dropped from each line and empty text yields no lines.
func WrapText(text string, width int) []string {
	if text == "" {
		return nil
	}
	width = max(1, width)

	var (
		lines []string
		line  strings.Builder
		col   int
	)
	flush := func() {
		lines = append(lines, strings.TrimRight(line.String(), " "))
		line.Reset()
		col = 0
	}

	state := -1
	rest := text
	for len(rest) > 0 {
		var (
			segment   string
			mustBreak bool
		)
		segment, rest, mustBreak, state = uniseg.FirstLineSegmentInString(rest, state)
		word := strings.TrimRight(segment, "\r\n")
		visible := uniseg.StringWidth(strings.TrimRight(word, " "))

		if col > 0 && col+visible > width {
			flush()
		}
		if visible > width {
			col = splitClusters(&line, word, col, width, flush)
		} else {
			line.WriteString(word)
			col += uniseg.StringWidth(word)
		}

		if mustBreak && len(rest) > 0 {
			flush()
		}
	}
	if line.Len() > 0 {
		flush()
	}
	return lines
}

// splitClusters writes word one grapheme cluster at a time, starting a new
// line whenever the next cluster would cross width.
func splitClusters(line *strings.Builder, word string, col, width int, flush func()) int {
	state := -1
	for len(word) > 0 {
		var (
			cluster string
			w       int
		)
		cluster, word, w, state = uniseg.FirstGraphemeClusterInString(word, state)
		if col > 0 && col+w > width {
			if strings.TrimSpace(cluster) == "" {
				continue
			}
			flush()
			col = 0
		}
		line.WriteString(cluster)
		col += w
	}
	return col
}
