package model

import (
	"time"

	"github.com/danmuck/openlink/internal/protocol"
)

// Call is one call as reported in call status payloads.
type Call struct {
	id          CallID
	site        Site
	hasSite     bool
	profileID   ProfileID
	interestID  InterestID
	changed     Changed
	state       CallState
	direction   CallDirection
	caller      Party
	hasCaller   bool
	called      Party
	hasCalled   bool
	startTime   time.Time
	duration    time.Duration
	hasDuration bool
	actions     []RequestAction
}

func (c Call) ID() (CallID, bool) {
	return c.id, !c.id.IsZero()
}

func (c Call) Site() (Site, bool) {
	return c.site, c.hasSite
}

func (c Call) ProfileID() (ProfileID, bool) {
	return c.profileID, !c.profileID.IsZero()
}

func (c Call) InterestID() (InterestID, bool) {
	return c.interestID, !c.interestID.IsZero()
}

func (c Call) Changed() (Changed, bool) {
	return c.changed, c.changed != ""
}

func (c Call) State() (CallState, bool) {
	return c.state, c.state != ""
}

func (c Call) Direction() (CallDirection, bool) {
	return c.direction, c.direction != ""
}

func (c Call) Caller() (Party, bool) {
	return c.caller, c.hasCaller
}

func (c Call) Called() (Party, bool) {
	return c.called, c.hasCalled
}

func (c Call) StartTime() (time.Time, bool) {
	return c.startTime, !c.startTime.IsZero()
}

func (c Call) Duration() (time.Duration, bool) {
	return c.duration, c.hasDuration
}

// Actions returns the actions available on the call in wire order.
func (c Call) Actions() []RequestAction {
	out := make([]RequestAction, len(c.actions))
	copy(out, c.actions)
	return out
}

// Busy reports whether this call occupies the user's line. ok is false when the
// call carries no state to derive it from.
func (c Call) Busy() (busy bool, ok bool) {
	if c.state == "" {
		return false, false
	}
	return c.state.Busy(c.direction), true
}

// AnyBusy folds the busy flag of every call that knows it. ok is false when no
// call does.
func AnyBusy(calls []Call) (busy bool, ok bool) {
	for _, call := range calls {
		b, known := call.Busy()
		if !known {
			continue
		}
		ok = true
		busy = busy || b
	}
	return busy, ok
}

// CallBuilder assembles a Call.
type CallBuilder struct {
	call Call
}

func NewCallBuilder() *CallBuilder {
	return &CallBuilder{}
}

func (b *CallBuilder) SetID(id CallID) *CallBuilder {
	b.call.id = id
	return b
}

func (b *CallBuilder) SetSite(site Site) *CallBuilder {
	b.call.site = site
	b.call.hasSite = true
	return b
}

func (b *CallBuilder) SetProfileID(id ProfileID) *CallBuilder {
	b.call.profileID = id
	return b
}

func (b *CallBuilder) SetInterestID(id InterestID) *CallBuilder {
	b.call.interestID = id
	return b
}

func (b *CallBuilder) SetChanged(changed Changed) *CallBuilder {
	b.call.changed = changed
	return b
}

func (b *CallBuilder) SetState(state CallState) *CallBuilder {
	b.call.state = state
	return b
}

func (b *CallBuilder) SetDirection(direction CallDirection) *CallBuilder {
	b.call.direction = direction
	return b
}

func (b *CallBuilder) SetCaller(caller Party) *CallBuilder {
	b.call.caller = caller
	b.call.hasCaller = true
	return b
}

func (b *CallBuilder) SetCalled(called Party) *CallBuilder {
	b.call.called = called
	b.call.hasCalled = true
	return b
}

func (b *CallBuilder) SetStartTime(start time.Time) *CallBuilder {
	b.call.startTime = start
	return b
}

// SetDuration records duration truncated to whole milliseconds, the unit it
// travels in. Negative durations are ignored.
func (b *CallBuilder) SetDuration(duration time.Duration) *CallBuilder {
	if duration < 0 {
		return b
	}
	b.call.duration = duration.Truncate(time.Millisecond)
	b.call.hasDuration = true
	return b
}

// AddAction appends action. Members outside the closed set are dropped.
func (b *CallBuilder) AddAction(action RequestAction) *CallBuilder {
	if action.IsValid() {
		b.call.actions = append(b.call.actions, action)
	}
	return b
}

// AddActionLabel appends the action named by label; unknown labels are dropped
// so newer servers can advertise actions this codec does not know yet.
func (b *CallBuilder) AddActionLabel(label string) *CallBuilder {
	if action, ok := RequestActionFrom(label); ok {
		b.call.actions = append(b.call.actions, action)
	}
	return b
}

func (b *CallBuilder) rules() []protocol.Requirement {
	c := b.call
	return []protocol.Requirement{
		protocol.Require("id", !c.id.IsZero(), "The call 'id' has not been set"),
		protocol.Require("profile", !c.profileID.IsZero(), "The call 'profile' has not been set"),
		protocol.Require("interest", !c.interestID.IsZero(), "The call 'interest' has not been set"),
		protocol.Require("state", c.state.IsValid(), "The call 'state' has not been set"),
		protocol.Require("direction", c.direction.IsValid(), "The call 'direction' has not been set"),
	}
}

func (b *CallBuilder) build() Call {
	c := b.call
	c.actions = append([]RequestAction(nil), b.call.actions...)
	return c
}

// Build returns the call or the first violated rule.
func (b *CallBuilder) Build() (Call, error) {
	if err := protocol.Enforce(b.rules()); err != nil {
		return Call{}, err
	}
	return b.build(), nil
}

// MustBuild is Build for callers that control every field, such as fixtures.
func (b *CallBuilder) MustBuild() Call {
	call, err := b.Build()
	if err != nil {
		panic(err)
	}
	return call
}

// Snapshot returns whatever was set without evaluating any rule. Parsers that
// report missing fields where they read them finish with it.
func (b *CallBuilder) Snapshot() Call {
	return b.build()
}

// BuildDiagnostic reports every violated rule to d under label and returns
// whatever was set.
func (b *CallBuilder) BuildDiagnostic(label string, d *protocol.Diagnostics) Call {
	protocol.Report(label, b.rules(), d)
	return b.build()
}
