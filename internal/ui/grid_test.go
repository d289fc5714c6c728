package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/typednotes/livemd/pkg/preview/widget"
)

func TestGridWidths_FitContent(t *testing.T) {
	view := widget.TableView{
		Header: []string{"name", "n"},
		Rows:   [][]string{{"alpha", "1"}, {"beta", "22"}},
	}

	widths := gridWidths(view, 80)

	assert.Equal(t, []int{5, 3}, widths) // "alpha"=5, min cell width 3
}

func TestGridWidths_ShrinksWidestToLimit(t *testing.T) {
	view := widget.TableView{
		Header: []string{"short", "a very long header cell"},
	}

	widths := gridWidths(view, 20)

	assert.Equal(t, 20, gridTotal(widths))
	assert.Equal(t, 5, widths[0])
}

func TestGridWidths_StopsAtMinimum(t *testing.T) {
	view := widget.TableView{
		Header: []string{"aaaa", "bbbb", "cccc"},
	}

	// Impossible limit: all columns bottom out at the minimum.
	widths := gridWidths(view, 5)

	for _, w := range widths {
		assert.Equal(t, minCellWidth, w)
	}
}

func TestPadCell_Alignments(t *testing.T) {
	assert.Equal(t, "ab   ", padCell("ab", 5, widget.AlignLeft))
	assert.Equal(t, "   ab", padCell("ab", 5, widget.AlignRight))
	assert.Equal(t, " ab  ", padCell("ab", 5, widget.AlignCenter))
}

func TestPadCell_TruncatesLongCells(t *testing.T) {
	assert.Equal(t, "lengt...", padCell("lengthy content", 8, widget.AlignLeft))
	assert.Equal(t, "len", padCell("lengthy", 3, widget.AlignRight))
}

func TestGridRow_MissingAndExtraCells(t *testing.T) {
	widths := []int{3, 3}

	assert.Equal(t, " one  two ", gridRow([]string{"one", "two", "extra"}, nil, widths))
	assert.Equal(t, " one      ", gridRow([]string{"one"}, nil, widths))
}

func TestTruncateString(t *testing.T) {
	assert.Equal(t, "short", truncateString("short", 10))
	assert.Equal(t, "exact", truncateString("exact", 5))
	assert.Equal(t, "lo...", truncateString("longer text", 5))
	assert.Equal(t, "lo", truncateString("longer", 2))
}
