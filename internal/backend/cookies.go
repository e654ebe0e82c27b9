package backend

import "net/http"

// CookieJar carries session cookies across the portal's HTTP hop to the
// backend service. The proxy handlers have no side-channel to set
// cookies mid-request, so every Set-Cookie instruction the backend
// issues during a call is collected here and replayed onto the portal's
// own response afterwards. Skipping the replay silently breaks session
// persistence even though the login call itself "succeeded".
//
// A jar is request-scoped and not safe for concurrent use.
type CookieJar struct {
	inbound  []*http.Cookie
	outbound []*http.Cookie
}

// NewCookieJar creates a jar pre-loaded with the cookies of the inbound
// portal request.
func NewCookieJar(inbound []*http.Cookie) *CookieJar {
	return &CookieJar{inbound: inbound}
}

// JarFromRequest creates a jar from the inbound request's cookie header.
func JarFromRequest(r *http.Request) *CookieJar {
	return NewCookieJar(r.Cookies())
}

// Collect records Set-Cookie instructions received from the backend so
// they can be replayed later. Collected cookies also supersede inbound
// ones of the same name for any further backend calls made with this
// jar (a login followed by a profile read must ride the fresh session).
func (j *CookieJar) Collect(cookies []*http.Cookie) {
	j.outbound = append(j.outbound, cookies...)
}

// Cookies returns the effective cookie set to attach to the next
// backend call: inbound cookies with later-collected ones overriding by
// name.
func (j *CookieJar) Cookies() []*http.Cookie {
	merged := make(map[string]*http.Cookie, len(j.inbound)+len(j.outbound))
	order := make([]string, 0, len(j.inbound)+len(j.outbound))

	for _, c := range j.inbound {
		if _, seen := merged[c.Name]; !seen {
			order = append(order, c.Name)
		}
		merged[c.Name] = c
	}
	for _, c := range j.outbound {
		if _, seen := merged[c.Name]; !seen {
			order = append(order, c.Name)
		}
		merged[c.Name] = c
	}

	result := make([]*http.Cookie, 0, len(order))
	for _, name := range order {
		result = append(result, merged[name])
	}
	return result
}

// Outbound returns the collected Set-Cookie instructions in arrival
// order.
func (j *CookieJar) Outbound() []*http.Cookie {
	return j.outbound
}

// ApplyTo replays every collected Set-Cookie instruction onto the
// outgoing portal response. Must be called on failure paths too, since
// a rejected login may still rotate or clear a cookie.
func (j *CookieJar) ApplyTo(w http.ResponseWriter) {
	for _, c := range j.outbound {
		http.SetCookie(w, c)
	}
}
