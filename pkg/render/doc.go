// Package render turns a located design table into text for reports and
// terminals.
//
// # Markdown
//
// [Markdown] writes the table as a GitHub Markdown table: a Description
// column, optionally preceded by a Label column, then one centred column per
// header. Layouts without a separate description column, such as
// [lookup.DefaultLayout], get a single Label column instead. Empty cells are
// written as a single space.
//
//	var b strings.Builder
//	err := render.Markdown(&b, g, 1, render.Options{ShowLabel: true})
//
// [HTML] converts that Markdown to an HTML table with gomarkdown, for notes
// published as web pages.
//
// # Terminal
//
// [Text] draws the same table with box borders using lipgloss, for printing
// lookup results in a terminal.
//
//	s, err := render.Text(g, 1, render.Options{Columns: []string{"Dmin", "Dmax"}})
//	fmt.Println(s)
package render
