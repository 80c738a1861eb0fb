package model

// SessionState names the mutually exclusive states a resolved session
// can be in. Exactly one holds at any observation point after the
// session has been resolved for a request.
type SessionState int

const (
	// Anonymous means no usable token was found; only public pages are
	// reachable.
	Anonymous SessionState = iota
	// AuthenticatedNoProfile means a token is present but the user
	// profile has not been loaded yet. Token presence alone implies
	// provisional authentication; the profile is fetched lazily.
	AuthenticatedNoProfile
	// AuthenticatedWithProfile means both the token and the user are
	// known.
	AuthenticatedWithProfile
)

// Session is the per-request view of the authentication state. Views
// never mutate User directly; changes go through the session
// controller so the persisted copy stays in sync.
type Session struct {
	User  *User
	Token string
}

// State derives the session state from what is populated.
func (s Session) State() SessionState {
	switch {
	case s.Token == "":
		return Anonymous
	case s.User == nil:
		return AuthenticatedNoProfile
	default:
		return AuthenticatedWithProfile
	}
}

// IsAuthenticated reports whether a token is present, independently of
// whether the profile has been populated.
func (s Session) IsAuthenticated() bool { return s.Token != "" }
