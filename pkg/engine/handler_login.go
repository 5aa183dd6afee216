// Login handler. Not gated: this is the handshake that establishes login.

package engine

import (
	"github.com/hyetube/hyemockd/pkg/httputil"
	"github.com/hyetube/hyemockd/pkg/session"
)

func (rt *Router) getLogin(rest []string) *httputil.Response {
	if len(rest) < 2 {
		return httputil.NotFound()
	}

	if rest[0] == "auth" && rest[1] == "login" {
		// The session flag itself only flips when the client echoes the
		// cookie on a later request and the header parser observes it.
		return httputil.JSON(`{"agentid":"` + session.AgentID3 + `"}`).
			WithHeader("Set-Cookie", "loggedin=true; Path=/")
	}

	return httputil.NotFound()
}
