package backend

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCookieJar_ApplyTo verifies every collected Set-Cookie instruction
// is replayed onto the response with matching name, value, and options.
func TestCookieJar_ApplyTo(t *testing.T) {
	jar := NewCookieJar(nil)
	jar.Collect([]*http.Cookie{
		{Name: "sb-access-token", Value: "jwt-value", Path: "/", HttpOnly: true, MaxAge: 3600},
		{Name: "sb-refresh-token", Value: "refresh-value", Path: "/", HttpOnly: true},
	})

	rec := httptest.NewRecorder()
	jar.ApplyTo(rec)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 2)

	assert.Equal(t, "sb-access-token", cookies[0].Name)
	assert.Equal(t, "jwt-value", cookies[0].Value)
	assert.Equal(t, "/", cookies[0].Path)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, 3600, cookies[0].MaxAge)

	assert.Equal(t, "sb-refresh-token", cookies[1].Name)
	assert.Equal(t, "refresh-value", cookies[1].Value)
}

// TestCookieJar_CollectedSupersedesInbound verifies a freshly collected
// cookie overrides the inbound one of the same name for later calls.
func TestCookieJar_CollectedSupersedesInbound(t *testing.T) {
	jar := NewCookieJar([]*http.Cookie{
		{Name: "sb-access-token", Value: "stale"},
		{Name: "lang", Value: "cs"},
	})
	jar.Collect([]*http.Cookie{
		{Name: "sb-access-token", Value: "fresh"},
	})

	cookies := jar.Cookies()
	require.Len(t, cookies, 2)

	byName := map[string]string{}
	for _, c := range cookies {
		byName[c.Name] = c.Value
	}
	assert.Equal(t, "fresh", byName["sb-access-token"])
	assert.Equal(t, "cs", byName["lang"])
}

// TestCookieJar_EmptyApplyTo verifies an empty jar writes nothing.
func TestCookieJar_EmptyApplyTo(t *testing.T) {
	jar := NewCookieJar(nil)

	rec := httptest.NewRecorder()
	jar.ApplyTo(rec)

	assert.Empty(t, rec.Result().Cookies())
}
