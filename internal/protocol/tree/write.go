package tree

import (
	"strconv"
	"time"

	"github.com/beevik/etree"
)

// AddNamespaced appends a child element declaring ns as its default namespace.
func AddNamespaced(parent *etree.Element, tag, ns string) *etree.Element {
	child := parent.CreateElement(tag)
	child.CreateAttr("xmlns", ns)
	return child
}

// AddText appends <name>value</name> when value is non-empty.
func AddText(parent *etree.Element, name, value string) *etree.Element {
	if value == "" {
		return nil
	}
	child := parent.CreateElement(name)
	child.SetText(value)
	return child
}

func AddInt(parent *etree.Element, name string, value int, present bool) {
	if present {
		AddText(parent, name, strconv.Itoa(value))
	}
}

func AddLong(parent *etree.Element, name string, value int64, present bool) {
	if present {
		AddText(parent, name, strconv.FormatInt(value, 10))
	}
}

// AddDate writes a calendar date using a Go layout; a zero time writes nothing.
func AddDate(parent *etree.Element, name string, value time.Time, layout string) {
	if !value.IsZero() {
		AddText(parent, name, value.Format(layout))
	}
}

// AddInstant writes an XEP-0082 date-time; see FormatInstant.
func AddInstant(parent *etree.Element, name string, value time.Time) {
	if !value.IsZero() {
		AddText(parent, name, FormatInstant(value))
	}
}

// AddAttr sets attribute name when value is non-empty.
func AddAttr(el *etree.Element, name, value string) {
	if value != "" {
		el.CreateAttr(name, value)
	}
}

func AddAttrLong(el *etree.Element, name string, value int64, present bool) {
	if present {
		el.CreateAttr(name, strconv.FormatInt(value, 10))
	}
}

func AddAttrBool(el *etree.Element, name string, value bool, present bool) {
	if present {
		el.CreateAttr(name, strconv.FormatBool(value))
	}
}

// FormatInstant renders value in UTC with millisecond precision, or with full
// nanosecond precision when value carries sub-millisecond digits.
func FormatInstant(value time.Time) string {
	value = value.UTC()
	if value.Nanosecond()%int(time.Millisecond) != 0 {
		return value.Format(time.RFC3339Nano)
	}
	return value.Format(InstantLayout)
}
