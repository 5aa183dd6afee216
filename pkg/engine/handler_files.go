// File store handlers. GET only; serves <segment>.jpg from the asset store.

package engine

import (
	"github.com/hyetube/hyemockd/pkg/httputil"
)

func (rt *Router) getFiles(rest []string) *httputil.Response {
	if !rt.state.LoggedIn() {
		return httputil.Unauthorized()
	}

	if len(rest) == 0 || rest[0] == "" {
		return httputil.NotFound()
	}

	image, err := rt.assets.ReadBinary(rest[0] + ".jpg")
	if err != nil {
		rt.log.Error("image asset unavailable", "asset", rest[0], "error", err)
		return httputil.InternalError()
	}
	return httputil.Binary(image, httputil.ContentTypeJPEG)
}
