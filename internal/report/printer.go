// SPDX-License-Identifier: MIT

package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/term"
)

// Format selects the output encoding.
type Format string

const (
	// FormatAuto renders with glamour on a terminal and prints raw Markdown otherwise.
	FormatAuto Format = "auto"
	// FormatMarkdown prints the raw Markdown document.
	FormatMarkdown Format = "markdown"
	// FormatJSON prints the full-precision result as indented JSON.
	FormatJSON Format = "json"
)

// ParseFormat accepts auto, markdown (or md) and json, case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return FormatAuto, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("report: unknown format %q (want auto, markdown or json)", s)
}

// Printer writes documents to one destination in one format.
type Printer struct {
	w      io.Writer
	format Format
	render func(string) (string, error) // nil: print Markdown as-is
}

// NewPrinter resolves format for w. FormatAuto picks glamour when w is a
// terminal and plain Markdown otherwise.
func NewPrinter(w io.Writer, format Format) (*Printer, error) {
	p := &Printer{w: w, format: format}
	if format != FormatAuto {
		return p, nil
	}

	p.format = FormatMarkdown
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
		if err != nil {
			return nil, fmt.Errorf("report: renderer: %w", err)
		}
		p.render = r.Render
	}

	return p, nil
}

// Styled reports whether Markdown goes through the terminal renderer.
func (p *Printer) Styled() bool { return p.render != nil }

// Print writes v as JSON or the Markdown document md, depending on the format.
func (p *Printer) Print(md string, v any) error {
	if p.format == FormatJSON {
		enc := json.NewEncoder(p.w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}

	out := md
	if p.render != nil {
		var err error
		if out, err = p.render(md); err != nil {
			return fmt.Errorf("report: render: %w", err)
		}
	}
	_, err := io.WriteString(p.w, out)
	return err
}
