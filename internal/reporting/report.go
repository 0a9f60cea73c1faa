package reporting

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Section is the report entry for one figure.
type Section struct {
	Figure string
	// Output is where the figure was written, if anywhere.
	Output string
	Tables []Table
}

// Report collects sections across figures in the order they ran.
type Report struct {
	Title    string
	Sections []Section
}

// Add appends a section.
func (r *Report) Add(s Section) {
	r.Sections = append(r.Sections, s)
}

// Markdown renders the report as GitHub-flavoured Markdown.
func (r *Report) Markdown() string {
	var b strings.Builder
	title := r.Title
	if title == "" {
		title = "agentplot report"
	}
	fmt.Fprintf(&b, "# %s\n", title)
	for _, s := range r.Sections {
		fmt.Fprintf(&b, "\n## %s\n", s.Figure)
		if s.Output != "" {
			fmt.Fprintf(&b, "\nFigure: `%s`\n", s.Output)
		}
		for _, t := range s.Tables {
			b.WriteString("\n")
			writeMarkdownTable(&b, t)
		}
	}
	return b.String()
}

func writeMarkdownTable(b *strings.Builder, t Table) {
	if t.Title != "" {
		fmt.Fprintf(b, "### %s\n\n", t.Title)
	}
	b.WriteString("| " + strings.Join(escapeCells(t.Header), " | ") + " |\n")
	b.WriteString("|")
	for i := range t.Header {
		if i < t.KeyColumns {
			b.WriteString(" --- |")
		} else {
			b.WriteString(" ---: |")
		}
	}
	b.WriteString("\n")
	for _, row := range t.Rows {
		b.WriteString("| " + strings.Join(escapeCells(row), " | ") + " |\n")
	}
}

func escapeCells(cells []string) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = strings.ReplaceAll(c, "|", `\|`)
	}
	return out
}

// HTML renders the report through goldmark with table support.
func (r *Report) HTML() ([]byte, error) {
	md := goldmark.New(goldmark.WithExtensions(extension.Table))
	var body bytes.Buffer
	if err := md.Convert([]byte(r.Markdown()), &body); err != nil {
		return nil, fmt.Errorf("converting report to HTML: %w", err)
	}
	var out bytes.Buffer
	out.WriteString("<!DOCTYPE html>\n<html>\n<head><meta charset=\"utf-8\"><title>agentplot report</title></head>\n<body>\n")
	out.Write(body.Bytes())
	out.WriteString("</body>\n</html>\n")
	return out.Bytes(), nil
}

// Write saves the report to path: HTML when the extension is .html or
// .htm, Markdown otherwise.
func (r *Report) Write(path string) error {
	var data []byte
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		html, err := r.HTML()
		if err != nil {
			return err
		}
		data = html
	default:
		data = []byte(r.Markdown())
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating report directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}
