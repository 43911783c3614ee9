package marketfolio

import "fmt"

// GuardAction is the outcome of an access-control evaluation. There is no
// "deny" terminal: a rejected navigation is always a redirect somewhere.
type GuardAction int

const (
	// Allow lets the navigation proceed.
	Allow GuardAction = iota
	// RedirectLanding sends the visitor to the public landing page with the
	// auth-required signal attached.
	RedirectLanding
	// RedirectOwnArea sends a logged-in user to their own private area.
	RedirectOwnArea
)

func (a GuardAction) String() string {
	switch a {
	case Allow:
		return "allow"
	case RedirectLanding:
		return "redirect-landing"
	case RedirectOwnArea:
		return "redirect-own-area"
	default:
		return fmt.Sprintf("GuardAction(%d)", int(a))
	}
}

// Decision is the result of guarding a navigation. Path is the redirect
// destination and is empty when the navigation is allowed.
type Decision struct {
	Action       GuardAction
	Path         string
	AuthRequired bool
}

// LandingPath is the public landing destination used for auth redirects.
const LandingPath = "/"

// EvaluateGuard decides whether the session may enter a destination owned by
// ownerID. Rules apply in order, first match wins:
//
//  1. not logged in: redirect to the landing page, auth required
//  2. admin: allow anything
//  3. user: allow their own area, redirect to it otherwise
//  4. any other role, corrupted storage included: same as logged out
//
// The function is total: every session/destination pair maps to exactly one
// decision.
func EvaluateGuard(s Session, ownerID int) Decision {
	if !s.LoggedIn() {
		return Decision{Action: RedirectLanding, Path: LandingPath, AuthRequired: true}
	}
	switch s.Role {
	case RoleAdmin:
		return Decision{Action: Allow}
	case RoleUser:
		if s.UserID == ownerID {
			return Decision{Action: Allow}
		}
		return Decision{Action: RedirectOwnArea, Path: fmt.Sprintf("/userPrivate/%d", s.UserID)}
	default:
		return Decision{Action: RedirectLanding, Path: LandingPath, AuthRequired: true}
	}
}
