// Package report renders an analysis result as a markdown document and its
// HTML form. The report is a downloadable companion to the interactive view,
// built from the same rendered sections.
package report

import (
	"fmt"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"coanalyst/domain/analysis"
	"coanalyst/internal/render"
)

// Markdown builds the report document for a result. datasetName may be empty
// when the upload name was not kept.
func Markdown(datasetName string, result *analysis.Result) string {
	view := render.Render(result)

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", view.Title)
	if datasetName != "" {
		fmt.Fprintf(&b, "Dataset: %s\n\n", datasetName)
	}
	fmt.Fprintf(&b, "Generated: %s\n\n", view.GeneratedAt)

	if len(view.Tiles) > 0 {
		b.WriteString("## Summary\n\n")
		for _, tile := range view.Tiles {
			fmt.Fprintf(&b, "- **%s**: %s\n", tile.Label, tile.Value)
		}
		b.WriteString("\n")
	}

	for _, section := range view.Sections {
		fmt.Fprintf(&b, "## %s\n\n", section.Title)
		writeTable(&b, section)
		b.WriteString("\n")
	}

	b.WriteString("## Interpretation\n\n")
	fmt.Fprintf(&b, "%s\n\n", view.Interpretation.Summary)
	for _, detail := range view.Interpretation.Details {
		fmt.Fprintf(&b, "- %s\n", detail)
	}
	if len(view.Interpretation.Recommendations) > 0 {
		b.WriteString("\n### Recommendations\n\n")
		for _, rec := range view.Interpretation.Recommendations {
			fmt.Fprintf(&b, "- %s\n", rec)
		}
	}
	return b.String()
}

// HTML converts the markdown report into a standalone HTML fragment
func HTML(datasetName string, result *analysis.Result) string {
	doc := Markdown(datasetName, result)

	p := parser.NewWithExtensions(
		parser.CommonExtensions | parser.AutoHeadingIDs | parser.Tables)
	renderer := html.NewRenderer(html.RendererOptions{
		Flags: html.CommonFlags,
	})
	return string(markdown.ToHTML([]byte(doc), p, renderer))
}

func writeTable(b *strings.Builder, section render.Section) {
	b.WriteString("| " + strings.Join(section.Columns, " | ") + " |\n")

	separators := make([]string, len(section.Columns))
	for i := range separators {
		separators[i] = "---"
	}
	b.WriteString("| " + strings.Join(separators, " | ") + " |\n")

	for _, row := range section.Rows {
		b.WriteString("| " + strings.Join(row, " | ") + " |\n")
	}
}
