// Package inspect checks raw documents against the Openlink stanza codec and
// reports their conformance. It is the shared core of inspectd and stanzalint.
package inspect
