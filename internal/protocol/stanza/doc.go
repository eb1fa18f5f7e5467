// Package stanza owns the Openlink stanza kinds: their builders, renderers and
// tolerant parsers.
//
// Ownership boundary:
// - envelope addressing shared by iq and message stanzas
// - per-kind required fields and cross-entity invariants
// - rendering to and parsing from *etree.Element trees
//
// Build returns the first violated invariant as an error. Parse entry points
// never fail; they return a stanza whose ParseErrors lists every problem found.
package stanza
