// Package access implements the content entitlement gate: the decision of
// whether a caller may see full content, a redacted preview, or nothing.
package access

// Mode is the shaping instruction derived from an access decision.
type Mode string

const (
	ModeFull    Mode = "full"
	ModePreview Mode = "preview"
)

// IsValid checks if the mode is a known mode.
func (m Mode) IsValid() bool {
	switch m {
	case ModeFull, ModePreview:
		return true
	default:
		return false
	}
}

// String returns the string representation of the mode.
func (m Mode) String() string {
	return string(m)
}

// DenyReason classifies why access was denied. The values double as the wire
// error codes of the content endpoints.
type DenyReason string

const (
	ReasonNotAuthenticated DenyReason = "NOT_AUTHENTICATED"
	ReasonNotEntitled      DenyReason = "NOT_ENTITLED"
	ReasonNotPublished     DenyReason = "NOT_PUBLISHED"
)

// String returns the string representation of the reason.
func (r DenyReason) String() string {
	return string(r)
}

// Decision is the outcome of evaluating one (user, lesson) pair. It is
// constructed once per request and consumed immediately; it is never
// persisted.
type Decision struct {
	allowed bool
	mode    Mode
	reason  DenyReason
}

// AllowFull grants unredacted access.
func AllowFull() Decision {
	return Decision{allowed: true, mode: ModeFull}
}

// AllowPreview grants redacted preview access.
func AllowPreview() Decision {
	return Decision{allowed: true, mode: ModePreview}
}

// Denied refuses access for the given reason.
func Denied(reason DenyReason) Decision {
	return Decision{allowed: false, reason: reason}
}

// Allowed reports whether any access was granted.
func (d Decision) Allowed() bool {
	return d.allowed
}

// Mode returns the granted access mode. Only meaningful when Allowed.
func (d Decision) Mode() Mode {
	return d.mode
}

// Reason returns the denial reason. Only meaningful when not Allowed.
func (d Decision) Reason() DenyReason {
	return d.reason
}
