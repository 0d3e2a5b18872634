package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/melib/pkg/errors"
	"github.com/matzehuels/melib/pkg/grid"
	"github.com/matzehuels/melib/pkg/lookup"
)

func materials() *grid.Memory {
	return grid.MustFromRows([][]any{
		{nil, nil, "Table", 3, "Materials"},
		{nil, nil, nil, nil, nil, "Density", "E"},
		{nil, nil, nil, nil, nil, "kg/m3", "GPa"},
		{},
		{},
		{nil, nil, "STEEL", nil, "Carbon steel", 7850, 207},
		{nil, nil, "ALUM", nil, "Al 6061|T6", 2700, nil},
		{nil, nil, "TI", nil, "Ti-6Al-4V", 4430, "=G6"},
	})
}

func TestMarkdown(t *testing.T) {
	var b bytes.Buffer
	err := Markdown(&b, materials(), 3, Options{Layout: lookup.WorkbookLayout})
	require.NoError(t, err)

	want := "|Description|Density|E|\n" +
		"|:---|:--:|:--:|\n" +
		"|Carbon steel|7850|207|\n" +
		"|Al 6061\\|T6|2700| |\n" +
		"|Ti-6Al-4V|4430|207|\n"
	assert.Equal(t, want, b.String())
}

func TestMarkdownLabelAndColumns(t *testing.T) {
	var b bytes.Buffer
	err := Markdown(&b, materials(), 3, Options{
		Layout:       lookup.WorkbookLayout,
		ShowLabel:    true,
		Columns:      []string{"E"},
		NumberFormat: "%.1f",
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(b.String(), "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "|Label|Description|E|", lines[0])
	assert.Equal(t, "|:---|:---|:--:|", lines[1])
	assert.Equal(t, "|STEEL|Carbon steel|207.0|", lines[2])
}

func TestMarkdownErrors(t *testing.T) {
	var b bytes.Buffer
	err := Markdown(&b, materials(), 9, Options{Layout: lookup.WorkbookLayout})
	assert.True(t, errors.Is(err, errors.ErrCodeTableNotFound), "got %v", err)

	err = Markdown(&b, materials(), 3, Options{Layout: lookup.WorkbookLayout, Columns: []string{"nu"}})
	assert.True(t, errors.Is(err, errors.ErrCodeColumnNotFound), "got %v", err)
	assert.Empty(t, b.String())
}

func TestHTML(t *testing.T) {
	var b bytes.Buffer
	err := HTML(&b, materials(), 3, Options{Layout: lookup.WorkbookLayout, ShowLabel: true})
	require.NoError(t, err)

	out := b.String()
	assert.Contains(t, out, "<table>")
	assert.Contains(t, out, "Density</th>")
	assert.Contains(t, out, ">STEEL</td>")
	assert.Contains(t, out, `align="center">7850</td>`)

	err = HTML(&b, materials(), 4, Options{Layout: lookup.WorkbookLayout})
	assert.True(t, errors.IsNotFound(err), "got %v", err)
}

func TestText(t *testing.T) {
	s, err := Text(materials(), 3, Options{Layout: lookup.WorkbookLayout, ShowLabel: true})
	require.NoError(t, err)

	for _, want := range []string{"Label", "Description", "Density", "STEEL", "Carbon steel", "7850", "4430"} {
		assert.Contains(t, s, want)
	}
	// header, separator, three rows and the top and bottom borders
	assert.Len(t, strings.Split(strings.TrimSpace(s), "\n"), 7)
}

func TestTextDefaultLayout(t *testing.T) {
	g := grid.MustFromRows([][]any{
		{"Table", 1},
		{"SIZE", "pitch"},
		{"M6", 1.0},
		{"M8", 1.25},
	})
	s, err := Text(g, 1, Options{})
	require.NoError(t, err)
	assert.Contains(t, s, "M8")
	assert.Contains(t, s, "1.25")
	assert.NotContains(t, s, "Description")

	for _, opts := range []Options{{}, {ShowLabel: true}} {
		var b bytes.Buffer
		require.NoError(t, Markdown(&b, g, 1, opts))
		assert.Equal(t, "|Label|pitch|\n|:---|:--:|\n|M6|1|\n|M8|1.25|\n", b.String(),
			"label column appears once, ShowLabel=%v", opts.ShowLabel)
	}
}
