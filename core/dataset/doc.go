/*
Package dataset holds the exemplar database: the catalogs of languages and
scripts, and the writing systems registered from an embedded YAML document.

A Database is built once at start-up and is not changed afterwards:

	db, err := dataset.Open()
	if err != nil {
	    ...   // the embedded dataset is broken
	}
	for _, ws := range db.Systems.Sorted() {
	    ...
	}

Every exemplar slot of the dataset is a YAML block scalar. Line breaks and
blanks inside a block are for legibility only.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package dataset

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'exemplars.dataset'
func tracer() tracing.Trace {
	return tracing.Select("exemplars.dataset")
}
