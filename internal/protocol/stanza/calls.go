package stanza

import (
	"strings"

	"github.com/beevik/etree"
	"github.com/danmuck/openlink/internal/protocol"
	"github.com/danmuck/openlink/internal/protocol/model"
	"github.com/danmuck/openlink/internal/protocol/schema"
	"github.com/danmuck/openlink/internal/protocol/tree"
)

const (
	tagSite      = "site"
	tagCaller    = "caller"
	tagCalled    = "called"
	tagNumber    = "number"
	tagName      = "name"
	tagActions   = "actions"
	tagDuration  = "duration"
	tagStartTime = "starttime"
	e164Sep      = ","
)

// renderCallStatus appends a call-status payload holding calls to parent.
func renderCallStatus(table schema.Table, parent *etree.Element, calls []model.Call, busy, hasBusy bool) {
	status := tree.AddNamespaced(parent, schema.TagCallStatus, table.URI(schema.CallStatus))
	tree.AddAttrBool(status, "busy", busy, hasBusy)
	for _, call := range calls {
		renderCall(status, call)
	}
}

func renderCall(parent *etree.Element, call model.Call) {
	el := parent.CreateElement(schema.TagCall)
	if id, ok := call.ID(); ok {
		tree.AddText(el, "id", id.String())
	}
	if site, ok := call.Site(); ok {
		renderSite(el, site)
	}
	if profile, ok := call.ProfileID(); ok {
		tree.AddText(el, "profile", profile.String())
	}
	if interest, ok := call.InterestID(); ok {
		tree.AddText(el, "interest", interest.String())
	}
	if changed, ok := call.Changed(); ok {
		tree.AddText(el, "changed", changed.Label())
	}
	if state, ok := call.State(); ok {
		tree.AddText(el, "state", state.Label())
	}
	if direction, ok := call.Direction(); ok {
		tree.AddText(el, "direction", direction.Label())
	}
	if caller, ok := call.Caller(); ok {
		renderParty(el, tagCaller, caller)
	}
	if called, ok := call.Called(); ok {
		renderParty(el, tagCalled, called)
	}
	if start, ok := call.StartTime(); ok {
		tree.AddInstant(el, tagStartTime, start)
	}
	if duration, ok := call.Duration(); ok {
		tree.AddLong(el, tagDuration, duration.Milliseconds(), true)
	}
	// Written even when the call has no actions.
	actions := el.CreateElement(tagActions)
	for _, action := range call.Actions() {
		actions.CreateElement(action.Label())
	}
}

func renderSite(parent *etree.Element, site model.Site) {
	el := parent.CreateElement(tagSite)
	id, hasID := site.ID()
	tree.AddAttrLong(el, "id", id, hasID)
	if siteType, ok := site.Type(); ok {
		el.CreateAttr("type", siteType.Label())
	}
	isDefault, hasDefault := site.Default()
	tree.AddAttrBool(el, "default", isDefault, hasDefault)
	if name, ok := site.Name(); ok {
		el.SetText(name)
	}
}

func renderParty(parent *etree.Element, tag string, party model.Party) {
	el := parent.CreateElement(tag)
	number := el.CreateElement(tagNumber)
	if e164 := party.E164(); len(e164) > 0 {
		number.CreateAttr("e164", strings.Join(e164, e164Sep))
	}
	if destination, ok := party.Destination(); ok {
		number.CreateAttr("destination", destination)
	}
	if value, ok := party.Number(); ok {
		number.SetText(value)
	}
	if name, ok := party.Name(); ok {
		tree.AddText(el, tagName, name)
	}
}

// parseCallStatus reads every call below a call-status element. A nil status
// yields no calls; the caller decides whether that is a violation.
func parseCallStatus(status *etree.Element, label string, d *protocol.Diagnostics) ([]model.Call, bool, bool) {
	if status == nil {
		return nil, false, false
	}
	busy, hasBusy := tree.AttrBool(status, "busy", false, label, d)
	var calls []model.Call
	for _, el := range status.SelectElements(schema.TagCall) {
		calls = append(calls, parseCall(el, label, d))
	}
	return calls, busy, hasBusy
}

// parseCall reads one <call>. Required fields are reported where they are read
// so a call's problems come out in element order.
func parseCall(el *etree.Element, label string, d *protocol.Diagnostics) model.Call {
	b := model.NewCallBuilder()
	if raw, ok := tree.Text(el, "id", true, label, d); ok {
		id, _ := model.CallIDFrom(raw)
		b.SetID(id)
	}
	if site := el.SelectElement(tagSite); site != nil {
		b.SetSite(parseSite(site, label+" "+tagSite, d))
	}
	if raw, ok := tree.Text(el, "profile", true, label, d); ok {
		id, _ := model.ProfileIDFrom(raw)
		b.SetProfileID(id)
	}
	if raw, ok := tree.Text(el, "interest", true, label, d); ok {
		id, _ := model.InterestIDFrom(raw)
		b.SetInterestID(id)
	}
	if raw, ok := tree.Text(el, "changed", false, label, d); ok {
		if changed, ok := model.ChangedFrom(raw); ok {
			b.SetChanged(changed)
		}
	}
	raw, _ := tree.Text(el, "state", false, label, d)
	if state, ok := model.CallStateFrom(raw); ok {
		b.SetState(state)
	} else {
		d.MissingField(label, "state")
	}
	raw, _ = tree.Text(el, "direction", false, label, d)
	if direction, ok := model.CallDirectionFrom(raw); ok {
		b.SetDirection(direction)
	} else {
		d.MissingField(label, "direction")
	}
	if caller := el.SelectElement(tagCaller); caller != nil {
		b.SetCaller(parseParty(caller, label, d))
	}
	if called := el.SelectElement(tagCalled); called != nil {
		b.SetCalled(parseParty(called, label, d))
	}
	if start, ok := tree.Instant(el, tagStartTime, false, label, d); ok {
		b.SetStartTime(start)
	}
	if duration, ok := tree.Millis(el, tagDuration, false, label, d); ok {
		b.SetDuration(duration)
	}
	if actions := el.SelectElement(tagActions); actions != nil {
		for _, action := range actions.ChildElements() {
			b.AddActionLabel(action.Tag)
		}
	}
	return b.Snapshot()
}

// parseSite reads a <site>. The site id and type attributes are mandatory on
// the wire; an unrecognised type reads as missing.
func parseSite(el *etree.Element, label string, d *protocol.Diagnostics) model.Site {
	b := model.NewSiteBuilder()
	if id, ok := tree.AttrLong(el, "id", true, label, d); ok {
		b.SetID(id)
	}
	if isDefault, ok := tree.AttrBool(el, "default", false, label, d); ok {
		b.SetDefault(isDefault)
	}
	raw, _ := tree.Attr(el, "type", false, label, d)
	if siteType, ok := model.SiteTypeFrom(raw); ok {
		b.SetType(siteType)
	} else {
		d.MissingAttribute(label, "type")
	}
	if name, ok := tree.OwnText(el); ok {
		b.SetName(name)
	}
	return b.BuildDiagnostic(label, d)
}

func parseParty(el *etree.Element, label string, d *protocol.Diagnostics) model.Party {
	b := model.NewPartyBuilder()
	if number := el.SelectElement(tagNumber); number != nil {
		if value, ok := tree.OwnText(number); ok {
			b.SetNumber(value)
		}
		if raw, ok := tree.Attr(number, "e164", false, label, d); ok {
			for _, e164 := range strings.Split(raw, e164Sep) {
				b.AddE164(strings.TrimSpace(e164))
			}
		}
		if destination, ok := tree.Attr(number, "destination", false, label, d); ok {
			b.SetDestination(destination)
		}
	}
	if name, ok := tree.Text(el, tagName, false, label, d); ok {
		b.SetName(name)
	}
	return b.BuildDiagnostic(label, d)
}
