package access

import (
	"franchise-store/internal/domain/user"
)

// Request is everything the policy chain evaluates: the principal, the
// already-fetched profile snapshot (nil when the lookup found nothing),
// the error from that lookup if it failed transiently, and the role the
// client asserted for itself, when it sent one.
//
// Fetching happens outside the engine so the chain is unit-testable
// without any database dependency.
type Request struct {
	Principal    user.Principal
	Profile      *user.ProfileSnapshot
	ProfileErr   error
	AssertedRole *user.Role
}

type predicate func(Request) (ok bool, onFailure Reason)

// The chain is ordered deliberately: cheaper and more security-critical
// checks run first, and evaluation stops at the first failure so nothing
// after a denial can leak information through side channels.
var chain = []predicate{
	authenticated,
	profileReadable,
	profileExists,
	roleAllowed,
	verified,
	accessEnabled,
	assertedRoleMatches,
}

// Evaluate runs the policy chain and returns the single Decision for this
// request. It is a pure function: no fetching, no retries, no side
// effects. Reporting a role mismatch to the security-event sink is the
// caller's job (see usecase.DashboardAccess).
func Evaluate(req Request) Decision {
	for _, check := range chain {
		if ok, reason := check(req); !ok {
			return Denied(reason)
		}
	}
	return Granted()
}

func authenticated(req Request) (bool, Reason) {
	return req.Principal.IsAuthenticated, ReasonNotAuthenticated
}

func profileReadable(req Request) (bool, Reason) {
	return req.ProfileErr == nil, ReasonProfileUnavailable
}

func profileExists(req Request) (bool, Reason) {
	return req.Profile != nil, ReasonNoProfile
}

func roleAllowed(req Request) (bool, Reason) {
	return req.Profile.Role.CanEnterDashboard(), ReasonRoleNotAllowed
}

func verified(req Request) (bool, Reason) {
	return req.Profile.IsVerified, ReasonNotVerified
}

// accessEnabled requires the explicit stored true; nil or false deny.
func accessEnabled(req Request) (bool, Reason) {
	return req.Profile.DashboardAccessEnabled(), ReasonAccessNotEnabled
}

// assertedRoleMatches catches a stale or tampered client-held role
// diverging from the authoritative stored role. Mismatches are never
// silently corrected.
func assertedRoleMatches(req Request) (bool, Reason) {
	if req.AssertedRole == nil {
		return true, ""
	}
	return *req.AssertedRole == req.Profile.Role, ReasonRoleMismatch
}
