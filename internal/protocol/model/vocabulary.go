package model

// vocabulary is a closed set of wire labels.
type vocabulary[T ~string] struct {
	members []T
	index   map[string]T
}

func newVocabulary[T ~string](members ...T) vocabulary[T] {
	index := make(map[string]T, len(members))
	for _, m := range members {
		index[string(m)] = m
	}
	return vocabulary[T]{members: members, index: index}
}

func (v vocabulary[T]) from(label string) (T, bool) {
	m, ok := v.index[label]
	return m, ok
}

func (v vocabulary[T]) all() []T {
	out := make([]T, len(v.members))
	copy(out, v.members)
	return out
}

func (v vocabulary[T]) contains(m T) bool {
	_, ok := v.index[string(m)]
	return ok
}

// CallState is the progress of a call as reported by the telephony system.
type CallState string

const (
	CallStateOriginated        CallState = "CallOriginated"
	CallStateDelivered         CallState = "CallDelivered"
	CallStateEstablished       CallState = "CallEstablished"
	CallStateFailed            CallState = "CallFailed"
	CallStateConferenced       CallState = "CallConferenced"
	CallStateBusy              CallState = "CallBusy"
	CallStateHeld              CallState = "CallHeld"
	CallStateHeldElsewhere     CallState = "CallHeldElsewhere"
	CallStateTransferring      CallState = "CallTransferring"
	CallStateTransferred       CallState = "CallTransferred"
	CallStateConnectionCleared CallState = "ConnectionCleared"
	CallStateMissed            CallState = "CallMissed"
)

var callStates = newVocabulary(
	CallStateOriginated,
	CallStateDelivered,
	CallStateEstablished,
	CallStateFailed,
	CallStateConferenced,
	CallStateBusy,
	CallStateHeld,
	CallStateHeldElsewhere,
	CallStateTransferring,
	CallStateTransferred,
	CallStateConnectionCleared,
	CallStateMissed,
)

// CallStateFrom matches label exactly against the closed set.
func CallStateFrom(label string) (CallState, bool) {
	return callStates.from(label)
}

func CallStates() []CallState {
	return callStates.all()
}

func (s CallState) Label() string {
	return string(s)
}

func (s CallState) IsValid() bool {
	return callStates.contains(s)
}

// Busy reports whether the user's line is occupied by a call in this state.
// A delivered call only occupies the line of the party that placed it.
func (s CallState) Busy(direction CallDirection) bool {
	switch s {
	case CallStateOriginated,
		CallStateEstablished,
		CallStateConferenced,
		CallStateBusy,
		CallStateHeld,
		CallStateTransferring:
		return true
	case CallStateDelivered:
		return direction == CallDirectionOutgoing
	default:
		return false
	}
}

// CallDirection tells whether the user placed or received the call.
type CallDirection string

const (
	CallDirectionIncoming CallDirection = "Incoming"
	CallDirectionOutgoing CallDirection = "Outgoing"
)

var callDirections = newVocabulary(CallDirectionIncoming, CallDirectionOutgoing)

func CallDirectionFrom(label string) (CallDirection, bool) {
	return callDirections.from(label)
}

func CallDirections() []CallDirection {
	return callDirections.all()
}

func (d CallDirection) Label() string {
	return string(d)
}

func (d CallDirection) IsValid() bool {
	return callDirections.contains(d)
}

// RequestAction is an action the user may request on a call.
type RequestAction string

const (
	ActionAnswerCall         RequestAction = "AnswerCall"
	ActionClearCall          RequestAction = "ClearCall"
	ActionClearConnection    RequestAction = "ClearConnection"
	ActionClearConference    RequestAction = "ClearConference"
	ActionHoldCall           RequestAction = "HoldCall"
	ActionRetrieveCall       RequestAction = "RetrieveCall"
	ActionTransferCall       RequestAction = "TransferCall"
	ActionConsultationCall   RequestAction = "ConsultationCall"
	ActionIntercomTransfer   RequestAction = "IntercomTransfer"
	ActionSingleStepTransfer RequestAction = "SingleStepTransfer"
	ActionJoinCall           RequestAction = "JoinCall"
	ActionPrivateCall        RequestAction = "PrivateCall"
	ActionPublicCall         RequestAction = "PublicCall"
	ActionSendDigit          RequestAction = "SendDigit"
	ActionAddThirdParty      RequestAction = "AddThirdParty"
	ActionRemoveThirdParty   RequestAction = "RemoveThirdParty"
	ActionStartVoiceDrop     RequestAction = "StartVoiceDrop"
	ActionStopVoiceDrop      RequestAction = "StopVoiceDrop"
)

var requestActions = newVocabulary(
	ActionAnswerCall,
	ActionClearCall,
	ActionClearConnection,
	ActionClearConference,
	ActionHoldCall,
	ActionRetrieveCall,
	ActionTransferCall,
	ActionConsultationCall,
	ActionIntercomTransfer,
	ActionSingleStepTransfer,
	ActionJoinCall,
	ActionPrivateCall,
	ActionPublicCall,
	ActionSendDigit,
	ActionAddThirdParty,
	ActionRemoveThirdParty,
	ActionStartVoiceDrop,
	ActionStopVoiceDrop,
)

func RequestActionFrom(label string) (RequestAction, bool) {
	return requestActions.from(label)
}

func RequestActions() []RequestAction {
	return requestActions.all()
}

func (a RequestAction) Label() string {
	return string(a)
}

func (a RequestAction) IsValid() bool {
	return requestActions.contains(a)
}

// Changed is the reason a call status event was published.
type Changed string

const (
	ChangedState         Changed = "State"
	ChangedDirection     Changed = "Direction"
	ChangedCallerDetails Changed = "CallerDetails"
	ChangedCalledDetails Changed = "CalledDetails"
	ChangedActions       Changed = "Actions"
	ChangedParticipant   Changed = "Participant"
	ChangedFeatures      Changed = "Features"
)

var changeReasons = newVocabulary(
	ChangedState,
	ChangedDirection,
	ChangedCallerDetails,
	ChangedCalledDetails,
	ChangedActions,
	ChangedParticipant,
	ChangedFeatures,
)

func ChangedFrom(label string) (Changed, bool) {
	return changeReasons.from(label)
}

func ChangeReasons() []Changed {
	return changeReasons.all()
}

func (c Changed) Label() string {
	return string(c)
}

func (c Changed) IsValid() bool {
	return changeReasons.contains(c)
}

// SiteType is the kind of telephony system hosting a site.
type SiteType string

const (
	SiteTypeBTSM  SiteType = "BTSM"
	SiteTypeCisco SiteType = "CISCO"
	SiteTypeITS   SiteType = "ITS"
	SiteTypeIPT   SiteType = "IPT"
)

var siteTypes = newVocabulary(SiteTypeBTSM, SiteTypeCisco, SiteTypeITS, SiteTypeIPT)

func SiteTypeFrom(label string) (SiteType, bool) {
	return siteTypes.from(label)
}

func SiteTypes() []SiteType {
	return siteTypes.all()
}

func (t SiteType) Label() string {
	return string(t)
}

func (t SiteType) IsValid() bool {
	return siteTypes.contains(t)
}

// HistoricalCallType filters call history by how the call ended up on the user's line.
type HistoricalCallType string

const (
	HistoricalCallIn     HistoricalCallType = "in"
	HistoricalCallOut    HistoricalCallType = "out"
	HistoricalCallMissed HistoricalCallType = "missed"
)

var historicalCallTypes = newVocabulary(HistoricalCallIn, HistoricalCallOut, HistoricalCallMissed)

func HistoricalCallTypeFrom(label string) (HistoricalCallType, bool) {
	return historicalCallTypes.from(label)
}

func HistoricalCallTypes() []HistoricalCallType {
	return historicalCallTypes.all()
}

func (t HistoricalCallType) Label() string {
	return string(t)
}

func (t HistoricalCallType) IsValid() bool {
	return historicalCallTypes.contains(t)
}
