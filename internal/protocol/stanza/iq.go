package stanza

import (
	"github.com/beevik/etree"
	"github.com/danmuck/openlink/internal/protocol/schema"
	"github.com/danmuck/openlink/internal/protocol/tree"
)

// ioDirection is the iodata type attribute and the payload child it wraps.
type ioDirection struct {
	kind string
	tag  string
}

var (
	ioInput  = ioDirection{kind: "input", tag: schema.TagIn}
	ioOutput = ioDirection{kind: "output", tag: schema.TagOut}
)

// addCommand appends the ad-hoc command and iodata wrappers to iq and returns
// the payload element (<in> or <out>).
func addCommand(table schema.Table, iq *etree.Element, node schema.Concept, dir ioDirection) *etree.Element {
	command := tree.AddNamespaced(iq, schema.TagCommand, table.URI(schema.Commands))
	command.CreateAttr("node", table.URI(node))
	if dir == ioInput {
		command.CreateAttr("action", "execute")
	} else {
		command.CreateAttr("status", "completed")
	}
	iodata := tree.AddNamespaced(command, schema.TagIOData, table.URI(schema.IOData))
	iodata.CreateAttr("type", dir.kind)
	return iodata.CreateElement(dir.tag)
}

func commandElement(table schema.Table, iq *etree.Element) *etree.Element {
	return tree.ChildNS(iq, schema.TagCommand, table.URI(schema.Commands))
}

// commandPayload returns the <in> or <out> element below the command wrapper.
func commandPayload(table schema.Table, iq *etree.Element, dir ioDirection) *etree.Element {
	iodata := tree.ChildNS(commandElement(table, iq), schema.TagIOData, table.URI(schema.IOData))
	return tree.Descend(iodata, dir.tag)
}

// commandNode returns the concept named by the command node attribute, if any.
func commandNode(table schema.Table, iq *etree.Element) (schema.Concept, bool) {
	command := commandElement(table, iq)
	if command == nil {
		return "", false
	}
	return table.Concept(command.SelectAttrValue("node", ""))
}
