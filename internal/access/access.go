// Package access decides what a client screen may show for the current
// session state. The portal API enforces authentication server-side;
// this gate only shapes the client experience, deciding between
// rendering a protected screen, bouncing to the public home screen, or
// raising the sign-in prompt.
package access

import (
	"github.com/domy-v-italii/portal/models"
)

// State is the client's view of the session at a point in time.
type State int

const (
	// StateChecking means the initial session lookup has not finished.
	// Protected content must not render yet.
	StateChecking State = iota

	// StateAnonymous means the lookup finished and found no user.
	StateAnonymous

	// StateAuthorized means a signed-in user is present.
	StateAuthorized
)

func (s State) String() string {
	switch s {
	case StateChecking:
		return "checking"
	case StateAnonymous:
		return "anonymous"
	case StateAuthorized:
		return "authorized"
	default:
		return "unknown"
	}
}

// AnonymousPolicy selects what happens when an anonymous visitor opens
// a protected area.
type AnonymousPolicy int

const (
	// Redirect bounces the visitor to the public home screen.
	Redirect AnonymousPolicy = iota

	// Prompt keeps the visitor in place and raises the sign-in modal.
	Prompt
)

// PremiumPolicy decides whether a signed-in user may enter a premium
// area. Profile may be nil when the profile row has not loaded yet.
type PremiumPolicy func(user *models.User, profile *models.Profile) bool

// AllowAuthenticated admits every signed-in user. Premium areas run
// with this permissive policy until paid membership tiers exist.
func AllowAuthenticated(user *models.User, _ *models.Profile) bool {
	return user != nil
}

// Area describes the gate configuration of one protected screen.
type Area struct {
	// Anonymous selects the anonymous-visitor behaviour.
	Anonymous AnonymousPolicy

	// Premium optionally restricts the area among signed-in users.
	// Nil means AllowAuthenticated.
	Premium PremiumPolicy

	// AdminOnly additionally requires the profile role to be admin.
	AdminOnly bool
}

// Decision is the gate's verdict for one render of an area.
type Decision struct {
	// Allowed reports whether the protected content may render.
	Allowed bool

	// ShowPrompt requests the sign-in modal.
	ShowPrompt bool

	// RedirectHome requests a bounce to the public home screen.
	RedirectHome bool

	// Waiting reports that the session is still being checked and the
	// screen should show its loading state.
	Waiting bool
}

// Evaluate gates one area against the current session state. The gate
// fails closed: unknown or still-checking states never render protected
// content, and a nil user is never admitted regardless of policy.
func (a Area) Evaluate(state State, user *models.User, profile *models.Profile) Decision {
	if state == StateChecking {
		return Decision{Waiting: true}
	}

	if state != StateAuthorized || user == nil {
		if a.Anonymous == Prompt {
			return Decision{ShowPrompt: true}
		}
		return Decision{RedirectHome: true}
	}

	if a.AdminOnly && (profile == nil || !profile.IsAdmin()) {
		return Decision{RedirectHome: true}
	}

	premium := a.Premium
	if premium == nil {
		premium = AllowAuthenticated
	}
	if !premium(user, profile) {
		return Decision{RedirectHome: true}
	}

	return Decision{Allowed: true}
}

// Areas of the client application.
var (
	// Dashboard bounces anonymous visitors to the home screen.
	Dashboard = Area{Anonymous: Redirect}

	// Club keeps anonymous visitors in place and asks them to sign in.
	Club = Area{Anonymous: Prompt}

	// Admin is only reachable with an admin profile role.
	Admin = Area{Anonymous: Redirect, AdminOnly: true}
)
