/*
Package report renders the writing systems of an exemplar database as a
Markdown document.

The document lists writing systems grouped by script, in catalog order of
scripts first and of languages second. Rendering is deterministic: the same
database always results in the same bytes.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package report

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'exemplars.report'
func tracer() tracing.Trace {
	return tracing.Select("exemplars.report")
}
