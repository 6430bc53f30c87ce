/*
Package catalog holds the closed catalogs of languages and scripts the exemplar
database knows about.

A catalog is built once from a fixed, hand-ordered list of names. The position
of a name in its list is the rank of the entity and is used for sorting:
languages and scripts are listed roughly from north-west to south-east of the
Indian subcontinent, Sinhala coming last.

	langs := catalog.Languages()
	hindi, err := langs.Lookup("Hindi")   // hindi.Rank() == 1

Languages and scripts live in separate catalogs of distinct types, so the
language "Gujarati" and the script "Gujarati" never compare equal.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package catalog

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'exemplars.catalog'
func tracer() tracing.Trace {
	return tracing.Select("exemplars.catalog")
}

// mustHold panics on violated preconditions of compiled-in tables.
func mustHold(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
