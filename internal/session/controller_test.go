package session

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bima595/SIMS-PPOB-Satria-Abimanyu/internal/gateway"
	"github.com/Bima595/SIMS-PPOB-Satria-Abimanyu/internal/model"
)

// newBackend serves GET /profile with the given status and profile,
// counting calls.
func newBackend(t *testing.T, status int, calls *int32) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(calls, 1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if status == http.StatusOK {
			_ = json.NewEncoder(w).Encode(map[string]any{
				"status": 0, "message": "", "data": map[string]any{
					"email": "user@example.com", "first_name": "Budi", "last_name": "Santoso",
					"profile_image": "", "balance": 10000,
				},
			})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"status": 108, "message": "Token tidak valid", "data": nil})
	}))
	t.Cleanup(ts.Close)
	return ts
}

func newController(baseURL string) (*Controller, *MemoryUserCache) {
	uc := NewMemoryUserCache()
	return NewController(gateway.New(baseURL), uc, time.Hour), uc
}

func TestCurrentFetchesProfileOnceWhenCacheEmpty(t *testing.T) {
	var calls int32
	ts := newBackend(t, http.StatusOK, &calls)
	sc, uc := newController(ts.URL)

	c, _ := newContext(t, "tok-1")
	// Before the fetch the session is authenticated but profile-less.
	assert.Equal(t, model.AuthenticatedNoProfile, sc.Resolve(c).State())

	s, err := sc.Current(c)
	require.NoError(t, err)
	assert.Equal(t, model.AuthenticatedWithProfile, s.State())
	assert.Equal(t, "Budi", s.User.FirstName)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "exactly one profile call")

	// The fetched profile was cached for the next request.
	cached, err := uc.Get(c.Request().Context(), "tok-1")
	require.NoError(t, err)
	require.NotNil(t, cached)
	assert.Equal(t, "user@example.com", cached.Email)
}

func TestCurrentUsesCachedUser(t *testing.T) {
	var calls int32
	ts := newBackend(t, http.StatusOK, &calls)
	sc, uc := newController(ts.URL)

	c, _ := newContext(t, "tok-1")
	require.NoError(t, uc.Set(c.Request().Context(), "tok-1", model.User{Email: "cached@example.com"}))

	s, err := sc.Current(c)
	require.NoError(t, err)
	assert.Equal(t, model.AuthenticatedWithProfile, s.State())
	assert.Equal(t, "cached@example.com", s.User.Email)
	assert.Zero(t, atomic.LoadInt32(&calls), "cached profile must not trigger a backend call")
}

func TestCurrentAnonymousWithoutToken(t *testing.T) {
	var calls int32
	ts := newBackend(t, http.StatusOK, &calls)
	sc, _ := newController(ts.URL)

	c, _ := newContext(t, "")
	s, err := sc.Current(c)
	require.NoError(t, err)
	assert.Equal(t, model.Anonymous, s.State())
	assert.Zero(t, atomic.LoadInt32(&calls))
}

func TestFetchProfileAuthErrorEndsSession(t *testing.T) {
	var calls int32
	ts := newBackend(t, http.StatusUnauthorized, &calls)
	sc, uc := newController(ts.URL)

	c, rec := newContext(t, "stale")
	require.NoError(t, uc.Set(c.Request().Context(), "other", model.User{Email: "x@y.z"}))

	s, err := sc.Current(c)
	var authErr *gateway.AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, model.Anonymous, s.State())

	// Both token surfaces were cleared.
	assert.Empty(t, Token(c, ""))
	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Negative(t, cookies[len(cookies)-1].MaxAge)
}

func TestFetchProfileTransientErrorKeepsToken(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close() // every call fails with a transport error

	sc, _ := newController(ts.URL)
	c, _ := newContext(t, "tok-1")

	s, err := sc.Current(c)
	var netErr *gateway.NetworkError
	require.ErrorAs(t, err, &netErr)

	// Policy: a transient failure does not log the user out.
	assert.Equal(t, model.AuthenticatedNoProfile, s.State())
	assert.Equal(t, "tok-1", Token(c, ""))
}

func TestLoginEstablishesBothSurfaces(t *testing.T) {
	sc, uc := newController("http://unused")
	c, rec := newContext(t, "")

	u := model.User{Email: "user@example.com", FirstName: "Budi"}
	s := sc.Login(c, "tok-1", u)

	assert.Equal(t, model.AuthenticatedWithProfile, s.State())
	assert.True(t, s.IsAuthenticated())
	assert.Equal(t, "tok-1", Token(c, ""))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "tok-1", cookies[0].Value)

	cached, err := uc.Get(c.Request().Context(), "tok-1")
	require.NoError(t, err)
	require.NotNil(t, cached)
	assert.Equal(t, u, *cached)
}

func TestLogoutIsIdempotent(t *testing.T) {
	sc, uc := newController("http://unused")
	c, _ := newContext(t, "tok-1")
	require.NoError(t, uc.Set(c.Request().Context(), "tok-1", model.User{Email: "a@b.c"}))

	sc.Logout(c)
	assert.Empty(t, Token(c, ""))
	cached, err := uc.Get(c.Request().Context(), "tok-1")
	require.NoError(t, err)
	assert.Nil(t, cached)

	// Second logout: same end state, no panic, still cleared.
	sc.Logout(c)
	assert.Empty(t, Token(c, ""))
	assert.Equal(t, model.Anonymous, sc.Resolve(c).State())
}

func TestUpdateUserRoundTrip(t *testing.T) {
	sc, uc := newController("http://unused")
	c, _ := newContext(t, "tok-1")

	s := model.Session{Token: "tok-1"}
	u := model.User{Email: "user@example.com", FirstName: "Siti", LastName: "Aminah", ProfileImage: "https://cdn/p.png"}
	s = sc.UpdateUser(c, s, u)

	assert.Equal(t, model.AuthenticatedWithProfile, s.State())
	cached, err := uc.Get(c.Request().Context(), "tok-1")
	require.NoError(t, err)
	require.NotNil(t, cached)
	assert.Equal(t, u, *cached, "persisted user must deep-equal the update")
}
