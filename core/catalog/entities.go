package catalog

import (
	"fmt"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Language is a natural language of the language catalog.
type Language struct {
	name string
	rank int
	tag  language.Tag
}

// Name returns the catalog name of the language.
func (l *Language) Name() string { return l.name }

// Rank returns the position of the language in its catalog.
func (l *Language) Rank() int { return l.rank }

// Tag returns the BCP 47 tag of the language, or language.Und.
func (l *Language) Tag() language.Tag { return l.tag }

// DisplayName returns the English CLDR name of the language's tag.
func (l *Language) DisplayName() string {
	return display.English.Languages().Name(l.tag)
}

func (l *Language) String() string {
	return fmt.Sprintf("<Language %s>", l.name)
}

// Script is a writing script of the script catalog.
type Script struct {
	name string
	rank int
	code language.Script
	ucd  string // Unicode script property value
}

// Name returns the catalog name of the script.
func (s *Script) Name() string { return s.name }

// Rank returns the position of the script in its catalog.
func (s *Script) Rank() int { return s.rank }

// Code returns the ISO 15924 code of the script.
func (s *Script) Code() language.Script { return s.code }

// UnicodeName returns the value of the Unicode script property for characters
// of this script, e.g. "Bengali" for Bangla.
func (s *Script) UnicodeName() string { return s.ucd }

// RangeTable returns the Unicode range table of the script, or nil if the
// Unicode script name is unknown.
func (s *Script) RangeTable() *unicode.RangeTable {
	return unicode.Scripts[s.ucd]
}

func (s *Script) String() string {
	return fmt.Sprintf("<Script %s>", s.name)
}

// LanguageDef defines a catalog entry for a language.
type LanguageDef struct {
	Name string
	Tag  string // BCP 47
}

// ScriptDef defines a catalog entry for a script.
type ScriptDef struct {
	Name    string
	Code    string // ISO 15924
	Unicode string // Unicode script property value
}

// NewLanguages creates a language catalog from a list of definitions.
// Empty tags result in language.Und.
func NewLanguages(defs ...LanguageDef) *Catalog[*Language] {
	tags := make(map[string]language.Tag, len(defs))
	names := make([]string, len(defs))
	for i, d := range defs {
		names[i] = d.Name
		tags[d.Name] = language.Make(d.Tag)
	}
	return New("language", names, func(name string, rank int) *Language {
		return &Language{name: name, rank: rank, tag: tags[name]}
	})
}

// NewScripts creates a script catalog from a list of definitions.
func NewScripts(defs ...ScriptDef) *Catalog[*Script] {
	byName := make(map[string]ScriptDef, len(defs))
	names := make([]string, len(defs))
	for i, d := range defs {
		names[i] = d.Name
		byName[d.Name] = d
	}
	return New("script", names, func(name string, rank int) *Script {
		d := byName[name]
		s := &Script{name: name, rank: rank, ucd: d.Unicode}
		if d.Code != "" {
			code, err := language.ParseScript(d.Code)
			if err != nil {
				tracer().Errorf("script %s has invalid ISO 15924 code %q", name, d.Code)
			}
			s.code = code
		}
		return s
	})
}

// Languages creates the catalog of languages of the exemplar database.
func Languages() *Catalog[*Language] {
	return NewLanguages(
		LanguageDef{"Sanskrit", "sa"},
		LanguageDef{"Hindi", "hi"},
		LanguageDef{"Marathi", "mr"},
		LanguageDef{"Nepali", "ne"},
		LanguageDef{"Gujarati", "gu"},
		LanguageDef{"Punjabi", "pa"},
		LanguageDef{"Bangla", "bn"},
		LanguageDef{"Assamese", "as"},
		LanguageDef{"Odia", "or"},
		LanguageDef{"Telugu", "te"},
		LanguageDef{"Kannada", "kn"},
		LanguageDef{"Malayalam", "ml"},
		LanguageDef{"Tamil", "ta"},
		LanguageDef{"Sinhala", "si"},
	)
}

// Scripts creates the catalog of scripts of the exemplar database.
func Scripts() *Catalog[*Script] {
	return NewScripts(
		ScriptDef{"Devanagari", "Deva", "Devanagari"},
		ScriptDef{"Gujarati", "Gujr", "Gujarati"},
		ScriptDef{"Gurmukhi", "Guru", "Gurmukhi"},
		ScriptDef{"Bangla", "Beng", "Bengali"},
		ScriptDef{"Odia", "Orya", "Oriya"},
		ScriptDef{"Telugu", "Telu", "Telugu"},
		ScriptDef{"Kannada", "Knda", "Kannada"},
		ScriptDef{"Malayalam", "Mlym", "Malayalam"},
		ScriptDef{"Tamil", "Taml", "Tamil"},
		ScriptDef{"Sinhala", "Sinh", "Sinhala"},
	)
}
