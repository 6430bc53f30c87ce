/*
Package writingsystem registers writing systems, i.e. pairings of a language
with a script together with their exemplar characters.

Registering a writing system is the only way languages and scripts get linked:
the registry keeps a bidirectional index from languages to their scripts and
from scripts to their languages. Languages and scripts themselves are never
mutated.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package writingsystem

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'exemplars.ws'
func tracer() tracing.Trace {
	return tracing.Select("exemplars.ws")
}
