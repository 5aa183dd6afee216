package engine

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/hyetube/hyemockd/pkg/assets"
	"github.com/hyetube/hyemockd/pkg/httputil"
	"github.com/hyetube/hyemockd/pkg/logging"
	"github.com/hyetube/hyemockd/pkg/session"
)

// Service prefixes, matched exactly and case-sensitively against the first
// path segment.
const (
	PrefixProxy           = "hye-youtube"
	PrefixRecommendations = "hye-recommendations"
	PrefixContacts        = "contactservice"
	PrefixFiles           = "files"
	PrefixLogin           = "las2peer"
)

// Router dispatches a request to the handler group owning its service prefix.
type Router struct {
	state  *session.State
	assets *assets.Store
	log    *slog.Logger
}

// NewRouter creates a Router operating on the given session state and asset
// store. A nil logger is replaced with a no-op logger.
func NewRouter(state *session.State, store *assets.Store, log *slog.Logger) *Router {
	if log == nil {
		log = logging.Nop()
	}
	return &Router{state: state, assets: store, log: log}
}

// Route dispatches method + request target to a handler group. The target is
// the raw path including any query string; only the proxy handlers strip the
// query, and only from the final segment.
func (rt *Router) Route(method, target, body string) *httputil.Response {
	segments := strings.Split(target, "/")
	if len(segments) < 2 || segments[1] == "" {
		return httputil.NotFound()
	}
	prefix, rest := segments[1], segments[2:]

	switch method {
	case http.MethodGet:
		return rt.routeGet(prefix, rest)
	case http.MethodPost:
		return rt.routePost(prefix, rest, body)
	case http.MethodDelete:
		return rt.routeDelete(prefix, rest, body)
	default:
		return httputil.NotFound()
	}
}

func (rt *Router) routeGet(prefix string, rest []string) *httputil.Response {
	switch prefix {
	case PrefixProxy:
		return rt.getProxy(rest)
	case PrefixRecommendations:
		return rt.getRecommendations(rest)
	case PrefixContacts:
		return rt.getContacts(rest)
	case PrefixFiles:
		return rt.getFiles(rest)
	case PrefixLogin:
		return rt.getLogin(rest)
	default:
		return httputil.NotFound()
	}
}

func (rt *Router) routePost(prefix string, rest []string, body string) *httputil.Response {
	switch prefix {
	case PrefixProxy:
		return rt.postProxy(rest, body)
	case PrefixRecommendations:
		return rt.postRecommendations(rest, body)
	case PrefixContacts, PrefixLogin:
		return httputil.MethodNotAllowed()
	default:
		return httputil.NotFound()
	}
}

func (rt *Router) routeDelete(prefix string, rest []string, body string) *httputil.Response {
	switch prefix {
	case PrefixProxy:
		return rt.deleteProxy(rest, body)
	case PrefixRecommendations:
		return rt.deleteRecommendations(rest)
	case PrefixContacts, PrefixLogin:
		return httputil.MethodNotAllowed()
	default:
		return httputil.NotFound()
	}
}
