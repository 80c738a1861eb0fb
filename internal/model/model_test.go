package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionState(t *testing.T) {
	u := &User{Email: "user@example.com"}

	assert.Equal(t, Anonymous, Session{}.State())
	assert.Equal(t, Anonymous, Session{User: u}.State(), "a user without a token is not a session")
	assert.Equal(t, AuthenticatedNoProfile, Session{Token: "tok"}.State())
	assert.Equal(t, AuthenticatedWithProfile, Session{Token: "tok", User: u}.State())

	assert.False(t, Session{}.IsAuthenticated())
	assert.True(t, Session{Token: "tok"}.IsAuthenticated(), "token presence implies provisional authentication")
}

func TestApplyProfilePatch(t *testing.T) {
	orig := User{
		Email:        "user@example.com",
		FirstName:    "Budi",
		LastName:     "Santoso",
		ProfileImage: "https://cdn/p.png",
	}
	got := ApplyProfilePatch(orig, ProfilePatch{FirstName: "Siti", LastName: "Aminah"})

	assert.Equal(t, "Siti", got.FirstName)
	assert.Equal(t, "Aminah", got.LastName)
	assert.Equal(t, orig.Email, got.Email, "patch must not touch the email")
	assert.Equal(t, orig.ProfileImage, got.ProfileImage, "patch must not touch the avatar")
	assert.Equal(t, "Budi", orig.FirstName, "reducer must not mutate its input")
}

func TestFullName(t *testing.T) {
	assert.Equal(t, "Budi Santoso", User{FirstName: "Budi", LastName: "Santoso"}.FullName())
	assert.Equal(t, "Budi", User{FirstName: "Budi"}.FullName())
}
