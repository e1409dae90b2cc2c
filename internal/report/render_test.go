package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	xxhash "github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/varalys/ackrc/internal/discovery"
)

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"": FormatText, "TEXT": FormatText, "table": FormatTable, "json": FormatJSON, " yaml ": FormatYAML} {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseFormat("xml")
	assert.Error(t, err)
}

func TestDescribe_Fingerprint(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, ".ackrc")
	body := []byte("--smart-case\n")
	require.NoError(t, os.WriteFile(p, body, 0o644))
	gone := filepath.Join(dir, "gone")

	entries := Describe([]discovery.FileRef{
		{Path: p, Scope: discovery.ScopeProject, Project: true},
		{Path: gone, Scope: discovery.ScopeUser},
	})
	require.Len(t, entries, 2)
	assert.Equal(t, int64(len(body)), entries[0].Size)
	assert.Equal(t, fmtHash(body), entries[0].Fingerprint)
	assert.True(t, entries[0].Project)
	assert.Empty(t, entries[1].Fingerprint)
}

func fmtHash(b []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(b))
}

func TestPrintFiles_Text(t *testing.T) {
	var buf bytes.Buffer
	err := PrintFiles(&buf, []Entry{
		{Path: "/etc/ackrc", Scope: discovery.ScopeSystem},
		{Path: "/w/.ackrc", Scope: discovery.ScopeProject, Project: true},
	}, PrintOptions{NoColor: true})
	require.NoError(t, err)
	assert.Equal(t, "system   /etc/ackrc\nproject  /w/.ackrc\n", buf.String())
}

func TestPrintFiles_TextEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintFiles(&buf, nil, PrintOptions{NoColor: true}))
	assert.Contains(t, buf.String(), "No rc files found")
}

func TestPrintFiles_JSON(t *testing.T) {
	var buf bytes.Buffer
	err := PrintFiles(&buf, []Entry{{Path: "/h/.ackrc", Scope: discovery.ScopeUser, Fingerprint: "abc"}}, PrintOptions{Format: FormatJSON})
	require.NoError(t, err)

	var got []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "user", got[0]["scope"])
	assert.Equal(t, "/h/.ackrc", got[0]["path"])
	assert.Equal(t, false, got[0]["project"])
}

func TestPrintFiles_Table(t *testing.T) {
	var buf bytes.Buffer
	err := PrintFiles(&buf, []Entry{{Path: "/w/_ackrc", Scope: discovery.ScopeProject, Project: true}}, PrintOptions{Format: FormatTable})
	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "SCOPE")
	assert.Contains(t, out, "/w/_ackrc")
	assert.Contains(t, out, "yes")
}

func TestPrintDump_Text(t *testing.T) {
	var buf bytes.Buffer
	err := PrintDump(&buf, []Section{
		{Path: "/etc/ackrc", Scope: discovery.ScopeSystem, Lines: []string{"--sort-files"}},
		{Path: "/w/.ackrc", Scope: discovery.ScopeProject, Project: true, Lines: []string{"--ignore-dir=vendor", "--smart-case"}},
	}, PrintOptions{NoColor: true})
	require.NoError(t, err)

	want := strings.Join([]string{
		"/etc/ackrc",
		"==========",
		"  --sort-files",
		"",
		"/w/.ackrc",
		"=========",
		"  --ignore-dir=vendor",
		"  --smart-case",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}

func TestPrintDump_YAML(t *testing.T) {
	var buf bytes.Buffer
	err := PrintDump(&buf, []Section{{Path: "/h/.ackrc", Scope: discovery.ScopeUser}}, PrintOptions{Format: FormatYAML})
	require.NoError(t, err)

	var got []struct {
		Path  string   `yaml:"path"`
		Scope string   `yaml:"scope"`
		Lines []string `yaml:"lines"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "user", got[0].Scope)
	assert.Empty(t, got[0].Lines)
}

func TestPrintLines(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintLines(&buf, []string{"--a", "--b c"}, PrintOptions{}))
	assert.Equal(t, "--a\n--b c\n", buf.String())

	buf.Reset()
	require.NoError(t, PrintLines(&buf, nil, PrintOptions{Format: FormatJSON}))
	assert.Equal(t, "[]\n", buf.String())
}
