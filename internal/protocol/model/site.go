package model

import "github.com/danmuck/openlink/internal/protocol"

// Site is the telephony system a call or profile lives on.
type Site struct {
	id         int64
	hasID      bool
	isDefault  bool
	hasDefault bool
	siteType   SiteType
	name       string
}

func (s Site) ID() (int64, bool) {
	return s.id, s.hasID
}

func (s Site) Default() (bool, bool) {
	return s.isDefault, s.hasDefault
}

func (s Site) Type() (SiteType, bool) {
	return s.siteType, s.siteType != ""
}

func (s Site) Name() (string, bool) {
	return s.name, s.name != ""
}

// SiteBuilder assembles a Site. No field is mandatory at this level; the
// containing stanza decides which site attributes it requires.
type SiteBuilder struct {
	site Site
}

func NewSiteBuilder() *SiteBuilder {
	return &SiteBuilder{}
}

func (b *SiteBuilder) SetID(id int64) *SiteBuilder {
	b.site.id = id
	b.site.hasID = true
	return b
}

func (b *SiteBuilder) SetDefault(isDefault bool) *SiteBuilder {
	b.site.isDefault = isDefault
	b.site.hasDefault = true
	return b
}

func (b *SiteBuilder) SetType(siteType SiteType) *SiteBuilder {
	b.site.siteType = siteType
	return b
}

func (b *SiteBuilder) SetName(name string) *SiteBuilder {
	b.site.name = name
	return b
}

func (b *SiteBuilder) rules() []protocol.Requirement {
	return nil
}

func (b *SiteBuilder) Build() (Site, error) {
	if err := protocol.Enforce(b.rules()); err != nil {
		return Site{}, err
	}
	return b.site, nil
}

func (b *SiteBuilder) BuildDiagnostic(label string, d *protocol.Diagnostics) Site {
	protocol.Report(label, b.rules(), d)
	return b.site
}
