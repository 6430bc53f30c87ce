package report

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/exemplars/core"
	"github.com/npillmayer/exemplars/core/catalog"
	"github.com/npillmayer/exemplars/core/dataset"
	"github.com/npillmayer/exemplars/core/exemplar"
	"github.com/npillmayer/exemplars/core/writingsystem"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTwoLanguagesSharingAScript(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "exemplars.report")
	defer teardown()
	//
	langs := catalog.NewLanguages(catalog.LanguageDef{Name: "A"}, catalog.LanguageDef{Name: "B"})
	scripts := catalog.NewScripts(catalog.ScriptDef{Name: "S"})
	a, _ := langs.Lookup("A")
	b, _ := langs.Lookup("B")
	s, _ := scripts.Lookup("S")
	reg := writingsystem.NewRegistry()
	reg.Register(b, s, "", exemplar.Blocks{}) // registration order must not matter
	reg.Register(a, s, "", exemplar.Blocks{Main: "xyx y"})
	//
	lines := Lines(reg, DefaultOptions())
	assert.Equal(t, []string{
		"# Exemplars",
		"",
		"This \"README\" is generated by `exemplars`.",
		"",
		"## A in S",
		"",
		"- Language: A",
		"- Script: S (also used for B)",
		"- Exemplar set \"main\": [x y]",
		"",
		"## B in S",
		"",
		"- Language: B",
		"- Script: S (also used for A)",
		"- Exemplar set \"main\": []",
	}, lines)
}

func TestSingleLanguageScriptHasNoAlsoClause(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "exemplars.report")
	defer teardown()
	//
	langs := catalog.NewLanguages(catalog.LanguageDef{Name: "Tamil"})
	scripts := catalog.NewScripts(catalog.ScriptDef{Name: "Tamil"})
	l, _ := langs.Lookup("Tamil")
	s, _ := scripts.Lookup("Tamil")
	reg := writingsystem.NewRegistry()
	reg.Register(l, s, "", exemplar.Blocks{Main: "க ங"})
	reg.Register(l, s, "Old Tamil", exemplar.Blocks{})
	lines := Lines(reg, DefaultOptions())
	assert.Contains(t, lines, "## Tamil")
	assert.Contains(t, lines, "## Old Tamil")
	for _, line := range lines {
		assert.NotContains(t, line, "also used for")
	}
}

func TestRenderTerminatesEveryLine(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "exemplars.report")
	defer teardown()
	//
	opts := Options{Marker: "EXEMPLARS", Generator: "gen", Path: "unused"}
	doc := Render(writingsystem.NewRegistry(), opts)
	assert.Equal(t, "# Exemplars\n\nThis \"EXEMPLARS\" is generated by `gen`.\n", doc.String())
}

func TestLineLeaf(t *testing.T) {
	l := Line("- Language: Hindi\n")
	assert.Equal(t, uint64(18), l.Weight())
	left, right := l.Split(2)
	assert.Equal(t, "- ", left.String())
	assert.Equal(t, "Language: Hindi\n", right.String())
	assert.Equal(t, []byte("Lang"), l.Substring(2, 6))
}

func TestEmbeddedDatasetMatchesGolden(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "exemplars.report")
	defer teardown()
	//
	db, err := dataset.Open()
	require.NoError(t, err)
	golden, err := os.ReadFile(filepath.Join("testdata", "README.golden.md"))
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, Render(db.Systems, DefaultOptions())))
	assert.Equal(t, string(golden), buf.String())
	assert.False(t, bytes.HasPrefix(buf.Bytes(), []byte{0xEF, 0xBB, 0xBF}), "no BOM")
}

func TestWriteFileIsIdempotent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "exemplars.report")
	defer teardown()
	//
	db, err := dataset.Open()
	require.NoError(t, err)
	opts := DefaultOptions()
	opts.Path = filepath.Join(t.TempDir(), "README.md")
	require.NoError(t, os.WriteFile(opts.Path, []byte("stale content that is longer than nothing"), 0644))
	//
	require.NoError(t, WriteFile(db.Systems, opts))
	first, err := os.ReadFile(opts.Path)
	require.NoError(t, err)
	require.NoError(t, WriteFile(db.Systems, opts))
	second, err := os.ReadFile(opts.Path)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.True(t, strings.HasPrefix(string(first), "# Exemplars\n"))
	assert.True(t, strings.HasSuffix(string(first), "]\n"))
}

func TestWriteFileFailure(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "exemplars.report")
	defer teardown()
	//
	opts := DefaultOptions()
	opts.Path = filepath.Join(t.TempDir(), "no", "such", "dir", "README.md")
	err := WriteFile(writingsystem.NewRegistry(), opts)
	require.Error(t, err)
	assert.Equal(t, core.EOUTPUT, core.Code(err))
}

func TestFailedReplaceKeepsExistingFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "exemplars.report")
	defer teardown()
	//
	db, err := dataset.Open()
	require.NoError(t, err)
	dir := t.TempDir()
	opts := DefaultOptions()
	opts.Path = filepath.Join(dir, "README.md")
	previous := []byte("# Exemplars\n\nprevious run\n")
	require.NoError(t, os.WriteFile(opts.Path, previous, 0644))
	//
	rename = func(string, string) error { return errors.New("device busy") }
	defer func() { rename = os.Rename }()
	err = WriteFile(db.Systems, opts)
	require.Error(t, err)
	assert.Equal(t, core.EOUTPUT, core.Code(err))
	//
	content, err := os.ReadFile(opts.Path)
	require.NoError(t, err)
	assert.Equal(t, previous, content, "existing file must survive a failed write")
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "no temporary file left behind")
	assert.Equal(t, "README.md", entries[0].Name())
}

func TestWriteFileOntoDirectory(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "exemplars.report")
	defer teardown()
	//
	dir := t.TempDir()
	opts := DefaultOptions()
	opts.Path = filepath.Join(dir, "README.md")
	require.NoError(t, os.Mkdir(opts.Path, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(opts.Path, "keep"), nil, 0644))
	err := WriteFile(writingsystem.NewRegistry(), opts)
	require.Error(t, err)
	assert.Equal(t, core.EOUTPUT, core.Code(err))
	info, err := os.Stat(opts.Path)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
