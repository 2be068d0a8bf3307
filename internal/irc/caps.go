package irc

// Capability identifies one supported IRCv3 protocol extension. The set is
// closed and each member maps to exactly one canonical wire string; the
// mapping is pinned by tests so an unmapped member fails before release.
type Capability int

const (
	CapMultiPrefix Capability = iota
	CapAccountNotify
	CapAwayNotify
	CapExtendedJoin
)

var capStrings = [...]string{
	CapMultiPrefix:   "multi-prefix",
	CapAccountNotify: "account-notify",
	CapAwayNotify:    "away-notify",
	CapExtendedJoin:  "extended-join",
}

// String returns the capability's canonical wire string as consumed by
// capability negotiation.
func (c Capability) String() string {
	if c < 0 || int(c) >= len(capStrings) {
		return ""
	}
	return capStrings[c]
}

// Capabilities enumerates the closed set of supported extensions.
func Capabilities() []Capability {
	caps := make([]Capability, len(capStrings))
	for i := range capStrings {
		caps[i] = Capability(i)
	}
	return caps
}
