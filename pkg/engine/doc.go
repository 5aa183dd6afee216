// Package engine implements the mock server core: the transport adapter, the
// method+prefix router, and the five simulated service handler groups
// (video proxy, recommendations, contacts, files, login).
//
// Handlers never touch the network. They receive the request method, the
// path split into segments, and the body as a string, and return a
// *httputil.Response that the transport adapter writes back. All shared
// state lives in an injected *session.State.
package engine
