package wishlist

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/markmahoney/the-grid/internal/grid"
)

func TestEncodeLine(t *testing.T) {
	m := Match{Weapon: 1, Perk1: 10, Perk2: 11}
	assert.Equal(t, "dimwishlist:item=1&perks=10,11#notes: god roll", EncodeLine(m, "god roll"))
}

func TestEncodeLine_CommentStaysOnOneLine(t *testing.T) {
	m := Match{Weapon: 1, Perk1: 10, Perk2: 11}
	line := EncodeLine(m, "first\r\nsecond\nthird")
	assert.Equal(t, "dimwishlist:item=1&perks=10,11#notes: first second third", line)
	assert.NotContains(t, line, "\n")
}

func TestComment_UsesOriginalFields(t *testing.T) {
	m := Match{Row: grid.Row{Weapon: "Mythoclast", Perk1: "Rampage!", Perk2: "Zen Moment"}}
	assert.Equal(t, "Rampage! + Zen Moment", Comment(m))
}

func TestWrite_HeadersThenDirectives(t *testing.T) {
	matches := []Match{
		{Weapon: 1, Perk1: 10, Perk2: 11, Row: grid.Row{Perk1: "Rampage", Perk2: "Zen Moment"}},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, "The Grid", "matched rolls", matches))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "title:The Grid", lines[0])
	assert.Equal(t, "description:matched rolls", lines[1])
	assert.Equal(t, "dimwishlist:item=1&perks=10,11#notes: Rampage + Zen Moment", lines[2])
}

func TestEndToEnd_RowToDirective(t *testing.T) {
	ix := testIndex(t)
	rows := []grid.Row{
		{Weapon: "Mythoclast", Perk1: "Rampage", Perk2: "Zen Moment"},
		{Weapon: "Mythoclast", Perk1: "Rampage", Perk2: "Unknown Perk"},
	}

	var diag bytes.Buffer
	matches := MatchRows(rows, ix, zerolog.New(&diag))

	var out bytes.Buffer
	require.NoError(t, Write(&out, "t", "d", matches))

	assert.Contains(t, out.String(), "dimwishlist:item=1&perks=10,11#notes: Rampage + Zen Moment\n")
	assert.Equal(t, 1, strings.Count(out.String(), "dimwishlist:"))
	assert.Contains(t, diag.String(), "Unknown Perk")
}
