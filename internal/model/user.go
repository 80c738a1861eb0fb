package model

// User holds the profile fields returned by the membership endpoints.
// The backend owns the record; this application only renders it and
// caches the last fetched copy for the session.
//
// Fields:
//  Email        – unique email address used as the login identity.
//  FirstName    – given name shown in the dashboard greeting.
//  LastName     – family name.
//  ProfileImage – absolute URL of the avatar, or empty when not set.
type User struct {
	Email        string `json:"email"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	ProfileImage string `json:"profile_image"`
}

// FullName joins first and last name for display.
func (u User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// Profile is a User extended with the current balance, as returned by
// GET /profile.
type Profile struct {
	User
	Balance int64 `json:"balance"`
}

// ProfilePatch carries the mutable profile fields accepted by
// PUT /profile/update.
type ProfilePatch struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// ApplyProfilePatch returns a copy of u with the patch applied. Callers
// apply it only after the backend confirmed the mutation, so the cached
// user never runs ahead of the server state.
func ApplyProfilePatch(u User, p ProfilePatch) User {
	u.FirstName = p.FirstName
	u.LastName = p.LastName
	return u
}
