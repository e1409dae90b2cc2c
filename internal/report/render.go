// Package report renders discovered rc files and their option lines as text,
// tables, JSON or YAML.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	xxhash "github.com/cespare/xxhash/v2"
	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"

	"github.com/varalys/ackrc/internal/discovery"
)

// Format selects an output encoding.
type Format string

const (
	FormatText  Format = "text"
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatText, nil
	case FormatText, FormatTable, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown format %q (want text|table|json|yaml)", s)
	}
}

type PrintOptions struct {
	NoColor bool
	Format  Format
}

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	projectStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	scopeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Entry describes one discovered rc file for listings.
type Entry struct {
	Path        string          `json:"path" yaml:"path"`
	Scope       discovery.Scope `json:"scope" yaml:"scope"`
	Project     bool            `json:"project" yaml:"project"`
	Size        int64           `json:"size" yaml:"size"`
	Fingerprint string          `json:"fingerprint,omitempty" yaml:"fingerprint,omitempty"`
}

// Describe stats and fingerprints each ref. A file that cannot be read keeps
// an empty fingerprint.
func Describe(refs []discovery.FileRef) []Entry {
	out := make([]Entry, 0, len(refs))
	for _, r := range refs {
		e := Entry{Path: r.Path, Scope: r.Scope, Project: r.Project}
		if b, err := os.ReadFile(r.Path); err == nil {
			e.Size = int64(len(b))
			e.Fingerprint = fmt.Sprintf("%016x", xxhash.Sum64(b))
		}
		out = append(out, e)
	}
	return out
}

// PrintFiles writes the file listing in the requested format.
func PrintFiles(w io.Writer, entries []Entry, opts PrintOptions) error {
	switch opts.Format {
	case FormatJSON:
		return writeJSON(w, entries)
	case FormatYAML:
		return writeYAML(w, entries)
	case FormatTable:
		return printFilesTable(w, entries)
	default:
		printFilesText(w, entries, opts)
		return nil
	}
}

func printFilesText(w io.Writer, entries []Entry, opts PrintOptions) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No rc files found")
		return
	}
	for _, e := range entries {
		scope := fmt.Sprintf("%-8s", e.Scope)
		path := e.Path
		if !opts.NoColor {
			scope = scopeStyle.Render(scope)
			if e.Project {
				path = projectStyle.Render(path)
			}
		}
		fmt.Fprintf(w, "%s %s\n", scope, path)
	}
}

func printFilesTable(w io.Writer, entries []Entry) error {
	table := tablewriter.NewWriter(w)
	table.Header("SCOPE", "PATH", "PROJECT", "SIZE", "FINGERPRINT")
	for _, e := range entries {
		project := ""
		if e.Project {
			project = "yes"
		}
		row := []string{e.Scope.String(), e.Path, project, fmt.Sprintf("%d", e.Size), e.Fingerprint}
		if err := table.Append(row); err != nil {
			return err
		}
	}
	return table.Render()
}

// Section is one rc file and the option lines read from it.
type Section struct {
	Path    string          `json:"path" yaml:"path"`
	Scope   discovery.Scope `json:"scope" yaml:"scope"`
	Project bool            `json:"project" yaml:"project"`
	Lines   []string        `json:"lines" yaml:"lines"`
}

// PrintDump writes every section in order. The text layout is the path, an
// underline of '=' and each line indented by two spaces.
func PrintDump(w io.Writer, sections []Section, opts PrintOptions) error {
	for i := range sections {
		if sections[i].Lines == nil {
			sections[i].Lines = []string{}
		}
	}
	switch opts.Format {
	case FormatJSON:
		return writeJSON(w, sections)
	case FormatYAML:
		return writeYAML(w, sections)
	}
	for i, s := range sections {
		if i > 0 {
			fmt.Fprintln(w)
		}
		heading := s.Path
		underline := strings.Repeat("=", len(heading))
		if !opts.NoColor {
			heading = headingStyle.Render(heading)
		}
		fmt.Fprintln(w, heading)
		fmt.Fprintln(w, underline)
		for _, line := range s.Lines {
			fmt.Fprintf(w, "  %s\n", line)
		}
	}
	return nil
}

// PrintLines writes bare option lines, one per line in text mode.
func PrintLines(w io.Writer, lines []string, opts PrintOptions) error {
	if lines == nil {
		lines = []string{}
	}
	switch opts.Format {
	case FormatJSON:
		return writeJSON(w, lines)
	case FormatYAML:
		return writeYAML(w, lines)
	}
	for _, line := range lines {
		fmt.Fprintln(w, line)
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
