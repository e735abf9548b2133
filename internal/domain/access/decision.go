package access

// Reason is the closed set of denial causes. The value is stable and safe
// to persist in security-event records.
type Reason string

const (
	ReasonNotAuthenticated   Reason = "not_authenticated"
	ReasonProfileUnavailable Reason = "profile_unavailable"
	ReasonNoProfile          Reason = "no_profile"
	ReasonRoleNotAllowed     Reason = "role_not_allowed"
	ReasonNotVerified        Reason = "not_verified"
	ReasonAccessNotEnabled   Reason = "access_not_enabled"
	ReasonRoleMismatch       Reason = "role_mismatch"
)

// RedirectTarget tells the host where to send a denied principal.
// Authentication and data-integrity failures go back to the login surface;
// an authenticated but under-provisioned user goes to a neutral public
// surface instead, so they are not bounced into a re-auth loop.
type RedirectTarget string

const (
	RedirectLogin RedirectTarget = "login"
	RedirectHome  RedirectTarget = "home"
)

var redirectFor = map[Reason]RedirectTarget{
	ReasonNotAuthenticated:   RedirectLogin,
	ReasonProfileUnavailable: RedirectLogin,
	ReasonNoProfile:          RedirectHome,
	ReasonRoleNotAllowed:     RedirectHome,
	ReasonNotVerified:        RedirectHome,
	ReasonAccessNotEnabled:   RedirectHome,
	ReasonRoleMismatch:       RedirectLogin,
}

// Decision is an immutable evaluation outcome. It is constructed fresh per
// request and must never be cached: verification, role and the access flag
// can all change between requests.
type Decision struct {
	granted  bool
	reason   Reason
	redirect RedirectTarget
}

func Granted() Decision {
	return Decision{granted: true}
}

func Denied(reason Reason) Decision {
	return Decision{granted: false, reason: reason, redirect: redirectFor[reason]}
}

func (d Decision) IsGranted() bool          { return d.granted }
func (d Decision) Reason() Reason           { return d.reason }
func (d Decision) Redirect() RedirectTarget { return d.redirect }

// IsSecurityAnomaly distinguishes "the user failed a check" from
// "something suspicious happened". Only anomalies go to the event sink.
func (d Decision) IsSecurityAnomaly() bool {
	return !d.granted && d.reason == ReasonRoleMismatch
}
