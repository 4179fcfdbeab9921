// Package report prints directory listings and renames as diagnostics.
// Nothing in it is needed for renaming to work.
package report

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/goccy/go-yaml"

	"github.com/kxue43/redate/renamer"
)

type (
	Format string

	Printer struct {
		w      io.Writer
		format Format
		header lipgloss.Style
		faint  lipgloss.Style
	}

	listingDoc struct {
		Stage   string   `yaml:"stage"`
		Dir     string   `yaml:"dir"`
		Entries []string `yaml:"entries"`
	}

	renamesDoc struct {
		Renamed []renamer.Rename `yaml:"renamed"`
	}
)

const (
	Text Format = "text"
	YAML Format = "yaml"
	None Format = "none"
)

var (
	ErrUnknownFormat = errors.New("unknown report format")
)

func NewPrinter(w io.Writer, format Format) *Printer {
	r := lipgloss.NewRenderer(w)

	return &Printer{
		w:      w,
		format: format,
		header: r.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		faint:  r.NewStyle().Faint(true),
	}
}

func (p *Printer) Listing(stage, dir string, names []string) error {
	switch p.format {
	case None:
		return nil
	case YAML:
		return p.document(listingDoc{Stage: stage, Dir: dir, Entries: nonNil(names)})
	case Text:
		var b strings.Builder

		b.WriteString(p.header.Render(fmt.Sprintf("%s %s", stage, dir)))
		b.WriteString(p.faint.Render(fmt.Sprintf(" (%d entries)", len(names))))
		b.WriteString("\n")

		for _, name := range names {
			b.WriteString("  " + name + "\n")
		}

		return p.write(b.String())
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, p.format)
	}
}

func (p *Printer) Renames(renamed []renamer.Rename) error {
	switch p.format {
	case None:
		return nil
	case YAML:
		if renamed == nil {
			renamed = []renamer.Rename{}
		}

		return p.document(renamesDoc{Renamed: renamed})
	case Text:
		var b strings.Builder

		b.WriteString(p.header.Render("renamed"))
		b.WriteString(p.faint.Render(fmt.Sprintf(" (%d entries)", len(renamed))))
		b.WriteString("\n")

		for _, item := range renamed {
			b.WriteString("  " + item.Old + p.faint.Render(" -> ") + item.New + "\n")
		}

		return p.write(b.String())
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, p.format)
	}
}

func (p *Printer) document(v any) error {
	contents, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal report to YAML: %w", err)
	}

	return p.write("---\n" + string(contents))
}

func (p *Printer) write(s string) error {
	if _, err := io.WriteString(p.w, s); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	return nil
}

func nonNil(names []string) []string {
	if names == nil {
		return []string{}
	}

	return names
}
