package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/vocabtrainer/internal/domain"
)

func init() {
	color.NoColor = true
}

func TestTable_AlignsWideRunes(t *testing.T) {
	t.Parallel()

	tb := newTable("word", "n")
	tb.add("кошка", "1")
	tb.add("猫", "22")

	var buf bytes.Buffer
	tb.render(&buf)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "word   n", lines[0])
	assert.Equal(t, "кошка  1", lines[1])
	assert.Equal(t, "猫     22", lines[2])
}

func TestTable_TruncatesLongCells(t *testing.T) {
	t.Parallel()

	tb := newTable("example")
	tb.add(strings.Repeat("a", 60))

	var buf bytes.Buffer
	tb.render(&buf)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasSuffix(lines[1], "…"))
}

func TestMappingCells(t *testing.T) {
	t.Parallel()

	m := domain.RoleMapping{Eng: domain.ColumnAt(2), Rus: domain.ColumnAt(0)}
	assert.Equal(t, []string{"2", "-", "-", "0", "-"}, mappingCells(m))
	assert.Equal(t, []string{"Eng", "engT", "EngEx", "Rus", "RusEx"}, roleHeader())
}

func TestPrintCard(t *testing.T) {
	t.Parallel()

	eng, rus, ex := "cat", "кот", "a cat sat"
	card := domain.Word{Eng: &eng, Rus: &rus, EngEx: &ex}

	var hidden bytes.Buffer
	printCard(&hidden, 1, card, false)
	assert.Contains(t, hidden.String(), "кот")
	assert.NotContains(t, hidden.String(), "cat")

	var shown bytes.Buffer
	printCard(&shown, 1, card, true)
	assert.Contains(t, shown.String(), "cat")
	assert.Contains(t, shown.String(), "a cat sat")
}

func TestParseID(t *testing.T) {
	t.Parallel()

	_, err := parseID("nope")
	require.Error(t, err)

	id, err := parseID("2f1b9f7a-4a8e-4f7e-9a56-7d6b1c3f0e11")
	require.NoError(t, err)
	assert.Equal(t, "2f1b9f7a-4a8e-4f7e-9a56-7d6b1c3f0e11", id.String())
}
