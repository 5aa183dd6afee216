package engine

import (
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/hyetube/hyemockd/pkg/session"
)

// RequestMeta carries the request metadata the transport adapter needs to
// read the body.
type RequestMeta struct {
	// ContentLength is 0 when the header is absent or non-numeric.
	ContentLength int

	// ContentEncoding defaults to utf-8.
	ContentEncoding string
}

var numericPattern = regexp.MustCompile(`^[0-9]+$`)

// ParseHeaders extracts content-length and content-encoding from the request
// headers. As a side effect it scans the Cookie header and flips the session
// login and cookie flags when the corresponding cookies are present. This is
// the only place login state is established; there is no credential check.
//
// http.Header lookups are case-insensitive, which covers both the canonical
// and lower-case spellings clients send.
func ParseHeaders(h http.Header, state *session.State) RequestMeta {
	meta := RequestMeta{ContentEncoding: "utf-8"}

	if v := h.Get("Content-Length"); numericPattern.MatchString(v) {
		if n, err := strconv.Atoi(v); err == nil {
			meta.ContentLength = n
		}
	}

	if v := h.Get("Content-Encoding"); v != "" {
		meta.ContentEncoding = v
	}

	if cookie := h.Get("Cookie"); cookie != "" {
		parseCookies(cookie, state)
	}

	return meta
}

// parseCookies splits a Cookie header into name=value pairs. Pairs without a
// "=" are ignored; comparisons are trimmed and lower-cased.
func parseCookies(raw string, state *session.State) {
	for _, pair := range strings.Split(raw, ";") {
		name, value, ok := strings.Cut(pair, "=")
		if !ok {
			continue
		}
		name = strings.ToLower(strings.TrimSpace(name))
		value = strings.ToLower(strings.TrimSpace(value))

		if name == "cookies" && value == "true" {
			state.SetHasCookies(true)
		}
		if name == "loggedin" && value == "true" {
			state.SetLoggedIn(true)
		}
	}
}
