package report

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/npillmayer/cords"
	"github.com/npillmayer/exemplars/core"
	"github.com/npillmayer/exemplars/core/writingsystem"
)

// Options control the document preamble and the output location.
type Options struct {
	Marker    string // what the document calls itself in the preamble
	Generator string // name of the generating program
	Path      string // output file
}

// DefaultOptions renders to README.md in the current working directory.
func DefaultOptions() Options {
	return Options{
		Marker:    "README",
		Generator: "exemplars",
		Path:      "README.md",
	}
}

// Lines renders the writing systems of a registry, sorted by script and
// language rank. Lines do not contain line terminators.
func Lines(reg *writingsystem.Registry, opts Options) []string {
	lines := []string{
		"# Exemplars",
		"",
		"This \"" + opts.Marker + "\" is generated by `" + opts.Generator + "`.",
	}
	for _, ws := range reg.Sorted() {
		lines = append(lines,
			"",
			"## "+ws.Name(),
			"",
			"- Language: "+ws.Language().Name(),
			scriptLine(reg, ws),
			`- Exemplar set "main": `+ws.Exemplars().Main.String(),
		)
	}
	return lines
}

func scriptLine(reg *writingsystem.Registry, ws *writingsystem.WritingSystem) string {
	line := "- Script: " + ws.Script().Name()
	langs := reg.LanguagesOf(ws.Script())
	if len(langs) <= 1 {
		return line
	}
	others := make([]string, 0, len(langs)-1)
	for _, l := range langs {
		if l != ws.Language() {
			others = append(others, l.Name())
		}
	}
	return line + " (also used for " + strings.Join(others, ", ") + ")"
}

// Render creates the document for a registry as a cord, one leaf per line.
func Render(reg *writingsystem.Registry, opts Options) cords.Cord {
	b := cords.NewBuilder()
	for _, line := range Lines(reg, opts) {
		b.Append(Line(line + "\n"))
	}
	return b.Cord()
}

// Write writes a document as UTF-8, without byte order mark.
func Write(w io.Writer, doc cords.Cord) error {
	_, err := io.WriteString(w, doc.String())
	return err
}

// rename replaces the target of WriteFile.
var rename = os.Rename

// WriteFile renders the registry to the file named in opts, replacing an
// existing file. The document is written to a temporary file in the same
// directory first, so a failing write leaves an existing file untouched.
// Errors carry code core.EOUTPUT.
func WriteFile(reg *writingsystem.Registry, opts Options) error {
	doc := Render(reg, opts)
	tmp, err := os.CreateTemp(filepath.Dir(opts.Path), "."+filepath.Base(opts.Path)+"-*")
	if err != nil {
		return core.WrapError(err, core.EOUTPUT, "cannot create %s", opts.Path)
	}
	tmpPath := tmp.Name()
	if err = Write(tmp, doc); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return core.WrapError(err, core.EOUTPUT, "cannot write %s", opts.Path)
	}
	if err = tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return core.WrapError(err, core.EOUTPUT, "cannot close %s", opts.Path)
	}
	if err = os.Chmod(tmpPath, 0644); err != nil {
		os.Remove(tmpPath)
		return core.WrapError(err, core.EOUTPUT, "cannot write %s", opts.Path)
	}
	if err = rename(tmpPath, opts.Path); err != nil {
		os.Remove(tmpPath)
		return core.WrapError(err, core.EOUTPUT, "cannot replace %s", opts.Path)
	}
	tracer().Infof("wrote %d writing systems to %s", reg.Len(), opts.Path)
	return nil
}

// --- Cord leafs ------------------------------------------------------------

// Line is a cord leaf holding one line of a document, including its
// terminating newline.
type Line string

// Weight of a line is its length in bytes.
func (l Line) Weight() uint64 {
	return uint64(len(l))
}

func (l Line) String() string {
	return string(l)
}

// Split splits a line at byte position i.
func (l Line) Split(i uint64) (cords.Leaf, cords.Leaf) {
	return l[:i], l[i:]
}

// Substring returns the bytes of the line between positions i and j.
func (l Line) Substring(i, j uint64) []byte {
	return []byte(l[i:j])
}

var _ cords.Leaf = Line("")
