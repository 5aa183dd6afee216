// Video proxy handlers: catalog, cookies, readers, consent, and preference.

package engine

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/hyetube/hyemockd/pkg/assets"
	"github.com/hyetube/hyemockd/pkg/httputil"
	"github.com/hyetube/hyemockd/pkg/session"
)

// trimQuery strips the query string from the last path segment only.
func trimQuery(rest []string) []string {
	if len(rest) == 0 {
		return rest
	}
	last, _, _ := strings.Cut(rest[len(rest)-1], "?")
	out := make([]string, len(rest))
	copy(out, rest)
	out[len(out)-1] = last
	return out
}

func (rt *Router) getProxy(rest []string) *httputil.Response {
	if !rt.state.LoggedIn() {
		return httputil.Unauthorized()
	}
	rest = trimQuery(rest)

	sub := ""
	if len(rest) > 0 {
		sub = rest[0]
	}

	switch sub {
	case "", "watch", "search":
		catalog, err := rt.assets.ReadText(assets.VideoCatalog)
		if err != nil {
			rt.log.Error("video catalog unavailable", "error", err)
			return httputil.InternalError()
		}
		return httputil.JSON(catalog)

	case "cookies":
		if rt.state.HasCookies() {
			return httputil.Text(http.StatusOK, "Cookies are valid.")
		}
		return httputil.Text(http.StatusOK, "No cookies found.")

	case "reader":
		data, _ := json.Marshal(rt.state.Readers())
		return httputil.JSON(string(data))

	case "consent":
		return httputil.JSON(encodeConsent(rt.state.Consent()))

	case "preference":
		return httputil.Text(http.StatusOK, rt.state.Preference())

	default:
		return httputil.NotFound()
	}
}

func (rt *Router) postProxy(rest []string, body string) *httputil.Response {
	if !rt.state.LoggedIn() {
		return httputil.Unauthorized()
	}
	rest = trimQuery(rest)

	sub := ""
	if len(rest) > 0 {
		sub = rest[0]
	}

	switch sub {
	case "", "watch", "search":
		return httputil.MethodNotAllowed()

	case "cookies":
		return httputil.OK().WithHeader("Set-Cookie", "cookies=true; Path=/; SameSite=Lax")

	case "reader":
		return httputil.OK()

	case "consent":
		reader, anonymous, errResp := parseConsentBody(body)
		if errResp != nil {
			return errResp
		}
		rt.state.AddConsent(reader, anonymous)
		return httputil.OK()

	case "preference":
		rt.state.SetPreference(body)
		return httputil.OK()

	default:
		return httputil.NotFound()
	}
}

func (rt *Router) deleteProxy(rest []string, body string) *httputil.Response {
	if !rt.state.LoggedIn() {
		return httputil.Unauthorized()
	}
	rest = trimQuery(rest)

	sub := ""
	if len(rest) > 0 {
		sub = rest[0]
	}

	switch sub {
	case "", "watch", "search":
		return httputil.MethodNotAllowed()

	case "cookies", "reader":
		return httputil.OK()

	case "consent":
		reader, anonymous, errResp := parseConsentBody(body)
		if errResp != nil {
			return errResp
		}
		rt.state.RemoveConsent(reader, anonymous)
		return httputil.OK()

	case "preference":
		rt.state.SetPreference("")
		return httputil.OK()

	default:
		return httputil.NotFound()
	}
}

// parseConsentBody validates a consent payload: the body must be a JSON
// object containing both a reader and an anonymous key. On failure the 400
// response to return is non-nil.
func parseConsentBody(body string) (reader string, anonymous bool, errResp *httputil.Response) {
	var payload map[string]any
	if err := json.Unmarshal([]byte(body), &payload); err != nil {
		return "", false, httputil.BadRequest()
	}

	readerVal, ok := payload["reader"]
	if !ok {
		return "", false, httputil.BadRequest()
	}
	anonVal, ok := payload["anonymous"]
	if !ok {
		return "", false, httputil.BadRequest()
	}

	return stringify(readerVal), truthy(anonVal), nil
}

func stringify(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

// truthy mirrors the loose typing of the real service: any non-empty,
// non-zero JSON value counts as true.
func truthy(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	case string:
		return val != ""
	case float64:
		return val != 0
	case []any:
		return len(val) > 0
	case map[string]any:
		return len(val) > 0
	default:
		return true
	}
}

// encodeConsent reproduces the consent wire format: each record is JSON
// encoded, then the encoded string is itself quoted and escaped, producing a
// JSON array of strings. Clients of the real service parse this exact shape;
// do not flatten it into plain objects.
func encodeConsent(records []session.ConsentRecord) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, rec := range records {
		data, _ := json.Marshal(rec)
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(string(data), `"`, `\"`))
		b.WriteByte('"')
	}
	b.WriteByte(']')
	return b.String()
}
