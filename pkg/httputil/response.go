// Package httputil provides the response envelope shared by all simulated services.
package httputil

import (
	"fmt"
	"net/http"
)

// Common content types served by the mock services.
const (
	ContentTypePlain = "text/plain"
	ContentTypeJSON  = "application/json"
	ContentTypeJPEG  = "image/jpeg"
)

// Response is the uniform envelope every handler produces. The transport
// adapter writes it back verbatim: headers first, then the status line, then
// the raw payload (if any), then the text message.
type Response struct {
	// Status is the HTTP status code.
	Status int

	// Message is the textual body. Always written, even when Raw is set.
	Message string

	// ContentType is injected into the headers on write, overwriting any
	// value already present.
	ContentType string

	// Headers holds additional response headers.
	Headers map[string]string

	// Raw is an optional binary payload, written before Message.
	Raw []byte
}

// OK returns a 200 response with the canonical "ok" body.
func OK() *Response {
	return Text(http.StatusOK, "ok")
}

// Text returns a text/plain response with the given status and message.
func Text(status int, message string) *Response {
	return &Response{
		Status:      status,
		Message:     message,
		ContentType: ContentTypePlain,
	}
}

// Textf returns a text/plain 200 response with a formatted message.
func Textf(format string, args ...any) *Response {
	return Text(http.StatusOK, fmt.Sprintf(format, args...))
}

// JSON returns an application/json 200 response with the given body.
// The body is trusted to be valid JSON; the consent endpoint depends on being
// able to pass its pre-built payload through unchanged.
func JSON(body string) *Response {
	return &Response{
		Status:      http.StatusOK,
		Message:     body,
		ContentType: ContentTypeJSON,
	}
}

// Binary returns a 200 response carrying a raw payload. The text message is
// still "ok" and is written after the payload.
func Binary(data []byte, contentType string) *Response {
	return &Response{
		Status:      http.StatusOK,
		Message:     "ok",
		ContentType: contentType,
		Raw:         data,
	}
}

// BadRequest returns the canonical 400 response.
func BadRequest() *Response {
	return Text(http.StatusBadRequest, "Bad request")
}

// Unauthorized returns the canonical 401 response.
func Unauthorized() *Response {
	return Text(http.StatusUnauthorized, "Unauthorized")
}

// Forbidden returns the canonical 403 response.
func Forbidden() *Response {
	return Text(http.StatusForbidden, "Not allowed")
}

// NotFound returns the canonical 404 response.
func NotFound() *Response {
	return Text(http.StatusNotFound, "Resource not found")
}

// MethodNotAllowed returns the canonical 405 response.
func MethodNotAllowed() *Response {
	return Text(http.StatusMethodNotAllowed, "Method not allowed")
}

// InternalError returns the canonical 500 response.
func InternalError() *Response {
	return Text(http.StatusInternalServerError, "Internal server error")
}

// WithHeader sets an additional response header and returns the response for
// chaining.
func (r *Response) WithHeader(name, value string) *Response {
	if r.Headers == nil {
		r.Headers = make(map[string]string)
	}
	r.Headers[name] = value
	return r
}

// Write serializes the response onto w. The Content-Type header always
// reflects r.ContentType, regardless of what r.Headers contains.
func (r *Response) Write(w http.ResponseWriter) {
	for name, value := range r.Headers {
		w.Header().Set(name, value)
	}
	w.Header().Set("Content-Type", r.ContentType)
	w.WriteHeader(r.Status)
	if r.Raw != nil {
		_, _ = w.Write(r.Raw)
	}
	_, _ = w.Write([]byte(r.Message))
}
