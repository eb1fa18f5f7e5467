package tree

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/beevik/etree"
	"github.com/danmuck/openlink/internal/protocol"
)

const (
	shapeInteger  = "please supply an integer"
	shapeBoolean  = "please supply 'true' or 'false'"
	shapeInstant  = "format should be compliant with XEP-0082"
	shapeMillis   = "please supply a non-negative number of milliseconds"
	InstantLayout = "2006-01-02T15:04:05.000Z07:00"
)

const maxMillis = math.MaxInt64 / int64(time.Millisecond)

// Int parses the named child as a 32-bit integer.
func Int(node *etree.Element, child string, required bool, label string, d *protocol.Diagnostics) (int, bool) {
	raw, ok := Text(node, child, required, label, d)
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		d.Invalid(label, child, raw, shapeInteger)
		return 0, false
	}
	return int(v), true
}

// Long parses the named child as a 64-bit integer.
func Long(node *etree.Element, child string, required bool, label string, d *protocol.Diagnostics) (int64, bool) {
	raw, ok := Text(node, child, required, label, d)
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		d.Invalid(label, child, raw, shapeInteger)
		return 0, false
	}
	return v, true
}

// Millis parses the named child as a count of milliseconds. Negative counts and
// counts too large for a time.Duration are reported as invalid.
func Millis(node *etree.Element, child string, required bool, label string, d *protocol.Diagnostics) (time.Duration, bool) {
	raw, ok := Text(node, child, required, label, d)
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		d.Invalid(label, child, raw, shapeInteger)
		return 0, false
	}
	if v < 0 || v > maxMillis {
		d.Invalid(label, child, raw, shapeMillis)
		return 0, false
	}
	return time.Duration(v) * time.Millisecond, true
}

// Bool parses the named child as an XML schema boolean.
func Bool(node *etree.Element, child string, required bool, label string, d *protocol.Diagnostics) (bool, bool) {
	raw, ok := Text(node, child, required, label, d)
	if !ok {
		return false, false
	}
	v, valid := parseBool(raw)
	if !valid {
		d.Invalid(label, child, raw, shapeBoolean)
		return false, false
	}
	return v, true
}

// Date parses the named child as a calendar date using a Go layout. shape is the
// human form of the layout used in diagnostics, e.g. "MM/dd/yyyy".
func Date(node *etree.Element, child, layout, shape string, required bool, label string, d *protocol.Diagnostics) (time.Time, bool) {
	raw, ok := Text(node, child, required, label, d)
	if !ok {
		return time.Time{}, false
	}
	v, err := time.Parse(layout, raw)
	if err != nil {
		d.Invalid(label, child, raw, fmt.Sprintf("date format is '%s'", shape))
		return time.Time{}, false
	}
	return v, true
}

// Instant parses the named child as an XEP-0082 date-time.
func Instant(node *etree.Element, child string, required bool, label string, d *protocol.Diagnostics) (time.Time, bool) {
	raw, ok := Text(node, child, required, label, d)
	if !ok {
		return time.Time{}, false
	}
	return parseInstant(raw, child, label, d)
}

// AttrLong parses attribute name as a 64-bit integer.
func AttrLong(node *etree.Element, name string, required bool, label string, d *protocol.Diagnostics) (int64, bool) {
	raw, ok := Attr(node, name, required, label, d)
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		d.Invalid(label, name, raw, shapeInteger)
		return 0, false
	}
	return v, true
}

// AttrBool parses attribute name as an XML schema boolean.
func AttrBool(node *etree.Element, name string, required bool, label string, d *protocol.Diagnostics) (bool, bool) {
	raw, ok := Attr(node, name, required, label, d)
	if !ok {
		return false, false
	}
	v, valid := parseBool(raw)
	if !valid {
		d.Invalid(label, name, raw, shapeBoolean)
		return false, false
	}
	return v, true
}

// AttrInstant parses attribute name as an XEP-0082 date-time.
func AttrInstant(node *etree.Element, name string, required bool, label string, d *protocol.Diagnostics) (time.Time, bool) {
	raw, ok := Attr(node, name, required, label, d)
	if !ok {
		return time.Time{}, false
	}
	return parseInstant(raw, name, label, d)
}

func parseInstant(raw, field, label string, d *protocol.Diagnostics) (time.Time, bool) {
	v, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		d.Invalid(label, field, raw, shapeInstant)
		return time.Time{}, false
	}
	return v, true
}

func parseBool(raw string) (bool, bool) {
	switch raw {
	case "true", "1":
		return true, true
	case "false", "0":
		return false, true
	default:
		return false, false
	}
}
