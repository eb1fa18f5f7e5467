package protocol

import "fmt"

// Diagnostics accumulates parse problems in the order they are encountered.
// A nil *Diagnostics discards everything, which lets optional reads skip reporting.
type Diagnostics struct {
	items []string
}

func NewDiagnostics() *Diagnostics {
	return &Diagnostics{}
}

func (d *Diagnostics) Addf(format string, args ...any) {
	if d == nil {
		return
	}
	d.items = append(d.items, fmt.Sprintf(format, args...))
}

// MissingField records an absent mandatory child element.
func (d *Diagnostics) MissingField(label, field string) {
	d.Addf("Invalid %s; missing '%s' field is mandatory", label, field)
}

// MissingAttribute records an absent mandatory attribute.
func (d *Diagnostics) MissingAttribute(label, attr string) {
	d.Addf("Invalid %s; missing '%s' attribute is mandatory", label, attr)
}

// Invalid records a value that is present but does not have the expected shape.
func (d *Diagnostics) Invalid(label, field, raw, expected string) {
	d.Addf("Invalid %s; invalid '%s' '%s'; %s", label, field, raw, expected)
}

func (d *Diagnostics) Len() int {
	if d == nil {
		return 0
	}
	return len(d.items)
}

func (d *Diagnostics) Empty() bool {
	return d.Len() == 0
}

// Items returns a copy of the accumulated messages.
func (d *Diagnostics) Items() []string {
	if d == nil || len(d.items) == 0 {
		return []string{}
	}
	out := make([]string, len(d.items))
	copy(out, d.items)
	return out
}
