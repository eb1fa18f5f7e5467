// Package protocol owns the stanza codec contract shared by every stanza kind.
//
// Ownership boundary:
// - diagnostics accumulation for tolerant parsing
// - required-field rules shared by the fatal and diagnostic build paths
// - bounded decode/encode of raw stanza bytes
package protocol
