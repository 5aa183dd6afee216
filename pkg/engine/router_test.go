package engine

import (
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyetube/hyemockd/pkg/assets"
	"github.com/hyetube/hyemockd/pkg/logging"
	"github.com/hyetube/hyemockd/pkg/session"
)

const testCatalog = `[{"title":"First Video"}]`

// newTestRouter builds a router over a fresh session state and a temp asset
// dir seeded with a video catalog.
func newTestRouter(t *testing.T) (*Router, *session.State) {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, assets.VideoCatalog), []byte(testCatalog), 0o644))

	state := session.New()
	return NewRouter(state, assets.NewStore(dir), logging.Nop()), state
}

// newEmptyAssetStore returns a store over a directory with no assets.
func newEmptyAssetStore(t *testing.T) *assets.Store {
	t.Helper()
	return assets.NewStore(t.TempDir())
}

func TestRouteDispatch(t *testing.T) {
	t.Parallel()

	t.Run("unknown prefix", func(t *testing.T) {
		t.Parallel()
		rt, _ := newTestRouter(t)

		resp := rt.Route(http.MethodGet, "/nonexistent-service/x", "")
		assert.Equal(t, http.StatusNotFound, resp.Status)
	})

	t.Run("empty path", func(t *testing.T) {
		t.Parallel()
		rt, _ := newTestRouter(t)

		assert.Equal(t, http.StatusNotFound, rt.Route(http.MethodGet, "/", "").Status)
		assert.Equal(t, http.StatusNotFound, rt.Route(http.MethodGet, "", "").Status)
	})

	t.Run("prefix match is exact", func(t *testing.T) {
		t.Parallel()
		rt, state := newTestRouter(t)
		state.SetLoggedIn(true)

		// Query string glued to the prefix segment defeats the match.
		assert.Equal(t, http.StatusNotFound, rt.Route(http.MethodGet, "/hye-youtube?x=1", "").Status)
		assert.Equal(t, http.StatusNotFound, rt.Route(http.MethodGet, "/Hye-Youtube/watch", "").Status)
	})

	t.Run("post and delete on read-only services", func(t *testing.T) {
		t.Parallel()
		rt, _ := newTestRouter(t)

		assert.Equal(t, http.StatusMethodNotAllowed, rt.Route(http.MethodPost, "/contactservice/user/x", "").Status)
		assert.Equal(t, http.StatusMethodNotAllowed, rt.Route(http.MethodDelete, "/contactservice/user/x", "").Status)
		assert.Equal(t, http.StatusMethodNotAllowed, rt.Route(http.MethodPost, "/las2peer/auth/login", "").Status)
		assert.Equal(t, http.StatusMethodNotAllowed, rt.Route(http.MethodDelete, "/las2peer/auth/login", "").Status)
	})

	t.Run("files has no post or delete route", func(t *testing.T) {
		t.Parallel()
		rt, _ := newTestRouter(t)

		assert.Equal(t, http.StatusNotFound, rt.Route(http.MethodPost, "/files/avatar", "").Status)
		assert.Equal(t, http.StatusNotFound, rt.Route(http.MethodDelete, "/files/avatar", "").Status)
	})

	t.Run("unknown method on known prefix", func(t *testing.T) {
		t.Parallel()
		rt, state := newTestRouter(t)
		state.SetLoggedIn(true)

		assert.Equal(t, http.StatusNotFound, rt.Route(http.MethodPut, "/hye-youtube/watch", "").Status)
		assert.Equal(t, http.StatusNotFound, rt.Route(http.MethodPatch, "/hye-recommendations/alpha", "").Status)
	})
}

func TestGatedEndpointsRequireLogin(t *testing.T) {
	t.Parallel()

	rt, _ := newTestRouter(t)

	gated := []struct {
		method string
		target string
	}{
		{http.MethodGet, "/hye-youtube/watch"},
		{http.MethodGet, "/hye-youtube/consent"},
		{http.MethodPost, "/hye-youtube/preference"},
		{http.MethodDelete, "/hye-youtube/consent"},
		{http.MethodGet, "/hye-recommendations/alpha"},
		{http.MethodPost, "/hye-recommendations"},
		{http.MethodGet, "/contactservice/addressbook"},
		{http.MethodGet, "/files/avatar"},
	}

	for _, req := range gated {
		resp := rt.Route(req.method, req.target, "")
		assert.Equalf(t, http.StatusUnauthorized, resp.Status, "%s %s", req.method, req.target)
		assert.Equal(t, "Unauthorized", resp.Message)
	}

	// Login itself is not gated.
	assert.Equal(t, http.StatusOK, rt.Route(http.MethodGet, "/las2peer/auth/login", "").Status)
}
