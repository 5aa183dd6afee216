// Recommendation engine handlers: the sharing opt-in and the alpha parameter.

package engine

import (
	"net/http"

	"github.com/hyetube/hyemockd/pkg/httputil"
)

func (rt *Router) getRecommendations(rest []string) *httputil.Response {
	if !rt.state.LoggedIn() {
		return httputil.Unauthorized()
	}

	if len(rest) == 0 || rest[0] == "" {
		return httputil.Text(http.StatusOK, "")
	}

	if rest[0] == "alpha" {
		// Alpha is only readable once the client has opted into sharing.
		if rt.state.RecommendationsShared() {
			return httputil.Text(http.StatusOK, rt.state.Alpha())
		}
		return httputil.NotFound()
	}

	return httputil.NotFound()
}

func (rt *Router) postRecommendations(rest []string, body string) *httputil.Response {
	if !rt.state.LoggedIn() {
		return httputil.Unauthorized()
	}

	if len(rest) == 0 || rest[0] == "" {
		rt.state.ShareRecommendations()
		return httputil.OK()
	}

	if rest[0] == "alpha" {
		// Stored verbatim, no numeric validation.
		rt.state.SetAlpha(body)
		return httputil.OK()
	}

	return httputil.NotFound()
}

func (rt *Router) deleteRecommendations(rest []string) *httputil.Response {
	if !rt.state.LoggedIn() {
		return httputil.Unauthorized()
	}

	if len(rest) == 0 || rest[0] == "" {
		rt.state.ResetAlpha()
		return httputil.OK()
	}

	// DELETE on alpha has always answered 404, not 405; clients depend on it.
	return httputil.NotFound()
}
