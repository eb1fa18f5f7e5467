package model

// CallID identifies one call on a telephony system.
type CallID struct {
	value string
}

// CallIDFrom wraps raw verbatim; ok is false when raw is empty.
func CallIDFrom(raw string) (CallID, bool) {
	if raw == "" {
		return CallID{}, false
	}
	return CallID{value: raw}, true
}

func (id CallID) String() string {
	return id.value
}

func (id CallID) IsZero() bool {
	return id.value == ""
}

// FeatureID identifies a device or call feature.
type FeatureID struct {
	value string
}

func FeatureIDFrom(raw string) (FeatureID, bool) {
	if raw == "" {
		return FeatureID{}, false
	}
	return FeatureID{value: raw}, true
}

func (id FeatureID) String() string {
	return id.value
}

func (id FeatureID) IsZero() bool {
	return id.value == ""
}

// ProfileID identifies a user profile.
type ProfileID struct {
	value string
}

func ProfileIDFrom(raw string) (ProfileID, bool) {
	if raw == "" {
		return ProfileID{}, false
	}
	return ProfileID{value: raw}, true
}

func (id ProfileID) String() string {
	return id.value
}

func (id ProfileID) IsZero() bool {
	return id.value == ""
}

// InterestID identifies a subscribable call-control topic.
type InterestID struct {
	value string
}

func InterestIDFrom(raw string) (InterestID, bool) {
	if raw == "" {
		return InterestID{}, false
	}
	return InterestID{value: raw}, true
}

func (id InterestID) String() string {
	return id.value
}

func (id InterestID) IsZero() bool {
	return id.value == ""
}

// PubSubNodeID is the pubsub node that carries events for this interest.
// Every interest is published on the node of the same name.
func (id InterestID) PubSubNodeID() PubSubNodeID {
	return PubSubNodeID{value: id.value}
}

// ItemID identifies one published pubsub item.
type ItemID struct {
	value string
}

func ItemIDFrom(raw string) (ItemID, bool) {
	if raw == "" {
		return ItemID{}, false
	}
	return ItemID{value: raw}, true
}

func (id ItemID) String() string {
	return id.value
}

func (id ItemID) IsZero() bool {
	return id.value == ""
}

// PubSubNodeID identifies a pubsub node.
type PubSubNodeID struct {
	value string
}

func PubSubNodeIDFrom(raw string) (PubSubNodeID, bool) {
	if raw == "" {
		return PubSubNodeID{}, false
	}
	return PubSubNodeID{value: raw}, true
}

func (id PubSubNodeID) String() string {
	return id.value
}

func (id PubSubNodeID) IsZero() bool {
	return id.value == ""
}
