// Package model holds the call-control value types and the entities built from them.
//
// Identifiers and vocabularies are plain values. Site, Party and Call are assembled by
// builders that share one rule set between Build (first violation is an error) and
// BuildDiagnostic (every violation is reported and a best-effort value is returned).
package model
