package protocol

// FieldKind tells the diagnostic path which wording to use for a missing value.
type FieldKind int

const (
	FieldElement FieldKind = iota
	FieldAttribute
)

// Requirement is one required-field rule. A builder declares its rules once, in a
// fixed order, and both build paths evaluate that same slice.
type Requirement struct {
	Field      string
	Kind       FieldKind
	Present    bool
	Fatal      string
	Diagnostic string
}

// Require declares a mandatory child element.
func Require(field string, present bool, fatal string) Requirement {
	return Requirement{Field: field, Kind: FieldElement, Present: present, Fatal: fatal}
}

// RequireAttribute declares a mandatory attribute.
func RequireAttribute(field string, present bool, fatal string) Requirement {
	return Requirement{Field: field, Kind: FieldAttribute, Present: present, Fatal: fatal}
}

// WithDiagnostic replaces the default missing-field wording with msg.
func (r Requirement) WithDiagnostic(msg string) Requirement {
	r.Diagnostic = msg
	return r
}

// Enforce is the fatal path: it returns a *BuildError for the first rule that fails.
func Enforce(reqs []Requirement) error {
	for _, req := range reqs {
		if !req.Present {
			return MissingFieldError(req.Field, req.Fatal)
		}
	}
	return nil
}

// Report is the diagnostic path: one message per failed rule, in declaration order.
func Report(label string, reqs []Requirement, d *Diagnostics) {
	for _, req := range reqs {
		if req.Present {
			continue
		}
		switch {
		case req.Diagnostic != "":
			d.Addf("%s", req.Diagnostic)
		case req.Kind == FieldAttribute:
			d.MissingAttribute(label, req.Field)
		default:
			d.MissingField(label, req.Field)
		}
	}
}
