/*
Package exemplar parses exemplar character sets.

Exemplar characters are the representative character inventory of a writing
system, grouped into the slots main, auxiliary, index and punctuation.
In the dataset every slot is a free-form text block: whitespace, including
line breaks and indentation, only serves as a visual separator. Parsing
removes it and keeps every other code point once, in order of its first
occurrence:

	set := exemplar.Parse("b a a c b")   // => [b a c]

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package exemplar

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'exemplars.exemplar'
func tracer() tracing.Trace {
	return tracing.Select("exemplars.exemplar")
}
