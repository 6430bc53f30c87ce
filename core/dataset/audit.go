package dataset

import (
	"fmt"
	"unicode"

	"github.com/npillmayer/exemplars/core/exemplar"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Finding is a remark of an audit. Findings do not make a dataset unusable.
type Finding struct {
	Subject string // name of a writing system, language or script
	Remark  string
}

func (f Finding) String() string {
	return f.Subject + ": " + f.Remark
}

// Audit checks the database for questionable content:
//
//   - exemplar characters not belonging to the writing system's script
//     (characters of script Common or Inherited are accepted)
//   - exemplar characters not in Unicode normalization form C
//   - scripts which are not the most likely ones for a language
//   - languages and scripts without any writing system.
//
// Findings are reported in rendering order, followed by unused catalog entries.
func (db *Database) Audit() []Finding {
	var findings []Finding
	for _, ws := range db.Systems.Sorted() {
		remark := func(format string, v ...interface{}) {
			findings = append(findings, Finding{Subject: ws.Name(), Remark: fmt.Sprintf(format, v...)})
		}
		script := ws.Script()
		table := script.RangeTable()
		if table == nil {
			remark("script %s has no Unicode range table %q", script.Name(), script.UnicodeName())
		}
		ws.Exemplars().EachSlot(func(slot string, set exemplar.Set) {
			if table != nil {
				for _, r := range set.Outside(table, unicode.Common, unicode.Inherited) {
					remark("%s exemplar %U %q is not %s", slot, r, r, script.UnicodeName())
				}
			}
			for _, r := range set.Runes() {
				if !norm.NFC.IsNormalString(string(r)) {
					remark("%s exemplar %U is not NFC", slot, r)
				}
			}
		})
		lang := ws.Language()
		if !lang.Tag().IsRoot() {
			if likely, conf := lang.Tag().Script(); conf != language.No && likely != script.Code() {
				remark("%s is usually written in %s, not %s", lang.DisplayName(), likely, script.Code())
			}
		}
	}
	for _, lang := range db.Languages.All() {
		if len(db.Systems.ScriptsOf(lang)) == 0 {
			findings = append(findings, Finding{Subject: lang.Name(), Remark: "language has no writing system"})
		}
	}
	for _, script := range db.Scripts.All() {
		if len(db.Systems.LanguagesOf(script)) == 0 {
			findings = append(findings, Finding{Subject: script.Name(), Remark: "script has no writing system"})
		}
	}
	for _, f := range findings {
		tracer().Infof("audit: %s", f)
	}
	return findings
}
