// Contact directory handlers. GET only; the router rejects other methods.

package engine

import (
	"encoding/json"
	"net/http"

	"github.com/hyetube/hyemockd/pkg/httputil"
	"github.com/hyetube/hyemockd/pkg/session"
)

func (rt *Router) getContacts(rest []string) *httputil.Response {
	if !rt.state.LoggedIn() {
		return httputil.Unauthorized()
	}

	if len(rest) == 0 || rest[0] == "" {
		return httputil.NotFound()
	}

	switch rest[0] {
	case "user":
		if len(rest) < 2 || rest[1] == "" {
			return httputil.BadRequest()
		}
		// Placeholder for the user image reference the real service returns.
		return httputil.Textf("{userImage=%s}", rest[1])

	case "addressbook":
		data, _ := json.Marshal(session.AddressBook())
		return httputil.JSON(string(data))

	case "name":
		if len(rest) < 2 {
			return httputil.NotFound()
		}
		if name, ok := session.LookupAgent(rest[1]); ok {
			return httputil.Text(http.StatusOK, name)
		}
		return httputil.NotFound()

	default:
		return httputil.NotFound()
	}
}
