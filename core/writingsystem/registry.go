package writingsystem

import (
	"fmt"
	"sort"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/npillmayer/exemplars/core/catalog"
	"github.com/npillmayer/exemplars/core/exemplar"
)

// WritingSystem pairs a language with a script.
type WritingSystem struct {
	name      string
	language  *catalog.Language
	script    *catalog.Script
	exemplars exemplar.Characters
}

// Name returns the display name of the writing system.
func (ws *WritingSystem) Name() string { return ws.name }

// Language returns the language written.
func (ws *WritingSystem) Language() *catalog.Language { return ws.language }

// Script returns the script used.
func (ws *WritingSystem) Script() *catalog.Script { return ws.script }

// Exemplars returns the exemplar character sets.
func (ws *WritingSystem) Exemplars() exemplar.Characters { return ws.exemplars }

func (ws *WritingSystem) String() string {
	return fmt.Sprintf("<WritingSystem %s>", ws.name)
}

// DerivedName is the name of a writing system which has not been named
// explicitly: the language name if language and script are named alike,
// "<language> in <script>" otherwise.
func DerivedName(lang *catalog.Language, script *catalog.Script) string {
	if lang.Name() == script.Name() {
		return lang.Name()
	}
	return lang.Name() + " in " + script.Name()
}

// Less orders writing systems by script rank first and language rank second.
func Less(a, b *WritingSystem) bool {
	if a.script.Rank() != b.script.Rank() {
		return a.script.Rank() < b.script.Rank()
	}
	return a.language.Rank() < b.language.Rank()
}

// ---------------------------------------------------------------------------

// Registry owns the writing systems of a database and the cross references
// between languages and scripts they establish.
type Registry struct {
	systems     []*WritingSystem
	scriptsOf   map[*catalog.Language]*treeset.Set // of *catalog.Script
	languagesOf map[*catalog.Script]*treeset.Set   // of *catalog.Language
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		scriptsOf:   make(map[*catalog.Language]*treeset.Set),
		languagesOf: make(map[*catalog.Script]*treeset.Set),
	}
}

// Register creates a writing system for a language and a script, parsing
// the exemplar blocks. If name is empty, the derived name is used.
// Registering links lang and script with each other. A pair may be registered
// more than once; every registration creates a writing system of its own.
func (r *Registry) Register(lang *catalog.Language, script *catalog.Script, name string,
	blocks exemplar.Blocks) *WritingSystem {
	//
	if lang == nil || script == nil {
		panic("writing system needs a language and a script")
	}
	if name == "" {
		name = DerivedName(lang, script)
	}
	ws := &WritingSystem{
		name:      name,
		language:  lang,
		script:    script,
		exemplars: exemplar.ParseBlocks(blocks),
	}
	r.link(lang, script)
	r.systems = append(r.systems, ws)
	tracer().Debugf("registered writing system %q (%s, %s) with %d main exemplars",
		name, lang.Name(), script.Name(), ws.exemplars.Main.Len())
	return ws
}

// link updates both directions of the cross reference index.
func (r *Registry) link(lang *catalog.Language, script *catalog.Script) {
	scripts, ok := r.scriptsOf[lang]
	if !ok {
		scripts = treeset.NewWith(byRank)
		r.scriptsOf[lang] = scripts
	}
	langs, ok := r.languagesOf[script]
	if !ok {
		langs = treeset.NewWith(byRank)
		r.languagesOf[script] = langs
	}
	scripts.Add(script)
	langs.Add(lang)
}

func byRank(a, b interface{}) int {
	return a.(catalog.Entity).Rank() - b.(catalog.Entity).Rank()
}

// ScriptsOf returns the scripts linked to a language, sorted by rank.
func (r *Registry) ScriptsOf(lang *catalog.Language) []*catalog.Script {
	set, ok := r.scriptsOf[lang]
	if !ok {
		return []*catalog.Script{}
	}
	scripts := make([]*catalog.Script, 0, set.Size())
	for _, s := range set.Values() {
		scripts = append(scripts, s.(*catalog.Script))
	}
	return scripts
}

// LanguagesOf returns the languages linked to a script, sorted by rank.
func (r *Registry) LanguagesOf(script *catalog.Script) []*catalog.Language {
	set, ok := r.languagesOf[script]
	if !ok {
		return []*catalog.Language{}
	}
	langs := make([]*catalog.Language, 0, set.Size())
	for _, l := range set.Values() {
		langs = append(langs, l.(*catalog.Language))
	}
	return langs
}

// Len returns the number of registered writing systems.
func (r *Registry) Len() int {
	return len(r.systems)
}

// All returns the writing systems in registration order.
func (r *Registry) All() []*WritingSystem {
	all := make([]*WritingSystem, len(r.systems))
	copy(all, r.systems)
	return all
}

// Sorted returns the writing systems ordered by (script rank, language rank).
// Writing systems of equal rank keep their registration order.
func (r *Registry) Sorted() []*WritingSystem {
	sorted := r.All()
	sort.SliceStable(sorted, func(i, j int) bool {
		return Less(sorted[i], sorted[j])
	})
	return sorted
}
