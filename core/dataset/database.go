package dataset

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"

	"github.com/npillmayer/exemplars/core"
	"github.com/npillmayer/exemplars/core/catalog"
	"github.com/npillmayer/exemplars/core/exemplar"
	"github.com/npillmayer/exemplars/core/writingsystem"
	"gopkg.in/yaml.v3"
)

//go:embed writingsystems.yaml
var writingSystemsYAML []byte

// Database owns the catalogs and the writing system registry.
type Database struct {
	Languages *catalog.Catalog[*catalog.Language]
	Scripts   *catalog.Catalog[*catalog.Script]
	Systems   *writingsystem.Registry
}

// New creates a database for a pair of catalogs, without writing systems.
func New(langs *catalog.Catalog[*catalog.Language], scripts *catalog.Catalog[*catalog.Script]) *Database {
	return &Database{
		Languages: langs,
		Scripts:   scripts,
		Systems:   writingsystem.NewRegistry(),
	}
}

// Open creates the database from the built-in catalogs and the embedded
// writing systems.
func Open() (*Database, error) {
	db := New(catalog.Languages(), catalog.Scripts())
	if err := db.Load(writingSystemsYAML); err != nil {
		return nil, err
	}
	return db, nil
}

type entry struct {
	Language  string `yaml:"language"`
	Script    string `yaml:"script"`
	Name      string `yaml:"name"`
	Exemplars struct {
		Main        string `yaml:"main"`
		Auxiliary   string `yaml:"auxiliary"`
		Index       string `yaml:"index"`
		Punctuation string `yaml:"punctuation"`
	} `yaml:"exemplars"`
}

type document struct {
	WritingSystems []entry `yaml:"writing-systems"`
}

type resolved struct {
	lang   *catalog.Language
	script *catalog.Script
	entry  entry
}

// Load registers the writing systems of a YAML document. All entries are
// checked before the first one is registered, so a failing Load leaves the
// database unchanged.
//
// Unknown keys and missing fields result in errors with code core.EINVALID,
// unknown language or script names in errors with code core.EMISSING.
func (db *Database) Load(data []byte) error {
	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return core.Error(core.EINVALID, "dataset is empty")
		}
		return core.WrapError(err, core.EINVALID, "dataset cannot be decoded")
	}
	entries := make([]resolved, 0, len(doc.WritingSystems))
	for i, e := range doc.WritingSystems {
		if e.Language == "" || e.Script == "" {
			return core.Error(core.EINVALID, "writing system #%d needs a language and a script", i+1)
		}
		lang, err := db.Languages.Lookup(e.Language)
		if err != nil {
			return fmt.Errorf("writing system #%d: %w", i+1, err)
		}
		script, err := db.Scripts.Lookup(e.Script)
		if err != nil {
			return fmt.Errorf("writing system #%d: %w", i+1, err)
		}
		entries = append(entries, resolved{lang: lang, script: script, entry: e})
	}
	for _, r := range entries {
		db.Systems.Register(r.lang, r.script, r.entry.Name, exemplar.Blocks{
			Main:        r.entry.Exemplars.Main,
			Auxiliary:   r.entry.Exemplars.Auxiliary,
			Index:       r.entry.Exemplars.Index,
			Punctuation: r.entry.Exemplars.Punctuation,
		})
	}
	tracer().Infof("loaded %d writing systems", len(entries))
	return nil
}
