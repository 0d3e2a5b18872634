package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"github.com/matzehuels/melib/pkg/errors"
	"github.com/matzehuels/melib/pkg/grid"
	"github.com/matzehuels/melib/pkg/lookup"
)

// Options controls which parts of a table are rendered.
type Options struct {
	// Layout locates the table; the zero Layout means lookup.DefaultLayout.
	Layout lookup.Layout

	// ShowLabel adds the row label as the first column. Layouts without a
	// separate description column always show it, once.
	ShowLabel bool

	// Columns selects and orders the value columns by header. Nil renders
	// every header.
	Columns []string

	// NumberFormat is a printf verb for numeric cells, e.g. "%.3g". Empty
	// prints numbers in their shortest form.
	NumberFormat string
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// rendered is a table flattened to strings.
type rendered struct {
	headers []string
	rows    [][]string
	lead    int // label and description columns
}

func collect(g grid.Grid, tag int, opts Options) (rendered, error) {
	t, err := lookup.FindTable(g, tag, opts.Layout)
	if err != nil {
		return rendered{}, err
	}
	columns := opts.Columns
	if columns == nil {
		columns = t.Headers(g)
	}
	cols := make([]int, len(columns))
	for i, name := range columns {
		if cols[i], err = lookup.FindColumn(g, t, name); err != nil {
			return rendered{}, err
		}
	}

	// Without a separate description column the label stands in for it.
	hasDesc := t.Layout.HasDescription()
	showLabel := opts.ShowLabel || !hasDesc

	var out rendered
	if showLabel {
		out.headers = append(out.headers, "Label")
	}
	if hasDesc {
		out.headers = append(out.headers, "Description")
	}
	out.lead = len(out.headers)
	out.headers = append(out.headers, columns...)

	descCol := t.Layout.DescriptionColumn()
	rows := t.Rows(g)
	for ref, ok := rows.Next(); ok; ref, ok = rows.Next() {
		var line []string
		if showLabel {
			line = append(line, ref.Label)
		}
		if hasDesc {
			line = append(line, grid.At(g, ref.Row, descCol).Text())
		}
		for _, c := range cols {
			line = append(line, formatCell(grid.At(g, ref.Row, c), opts.NumberFormat))
		}
		out.rows = append(out.rows, line)
	}
	return out, nil
}

func formatCell(v grid.Value, format string) string {
	if n, ok := v.Num(); ok && format != "" {
		return fmt.Sprintf(format, n)
	}
	return v.Text()
}

// Markdown writes table tag of g to w as a Markdown table.
func Markdown(w io.Writer, g grid.Grid, tag int, opts Options) error {
	md, err := markdownTable(g, tag, opts)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, md); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write markdown table %d", tag)
	}
	return nil
}

// HTML writes table tag of g to w as an HTML table, converted from the
// Markdown form.
func HTML(w io.Writer, g grid.Grid, tag int, opts Options) error {
	md, err := markdownTable(g, tag, opts)
	if err != nil {
		return err
	}
	p := parser.NewWithExtensions(parser.CommonExtensions)
	r := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	if _, err := w.Write(markdown.ToHTML([]byte(md), p, r)); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write html table %d", tag)
	}
	return nil
}

func markdownTable(g grid.Grid, tag int, opts Options) (string, error) {
	tb, err := collect(g, tag, opts)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	writeMarkdownRow(&b, tb.headers)
	b.WriteString("|")
	for i := range tb.headers {
		if i < tb.lead {
			b.WriteString(":---|")
		} else {
			b.WriteString(":--:|")
		}
	}
	b.WriteString("\n")
	for _, row := range tb.rows {
		writeMarkdownRow(&b, row)
	}
	return b.String(), nil
}

func writeMarkdownRow(b *strings.Builder, cells []string) {
	b.WriteString("|")
	for _, c := range cells {
		if c == "" {
			c = " "
		}
		b.WriteString(strings.ReplaceAll(c, "|", `\|`))
		b.WriteString("|")
	}
	b.WriteString("\n")
}

// Text returns table tag of g drawn with box borders.
func Text(g grid.Grid, tag int, opts Options) (string, error) {
	tb, err := collect(g, tag, opts)
	if err != nil {
		return "", err
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(tb.headers...).
		Rows(tb.rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	return t.String(), nil
}
