package transport

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"

	"github.com/iyasyr/iron-lms/internal/common"
)

// Classify maps a non-2xx REST response to the client's error taxonomy.
// The structured payload is the primary discriminant; the response body's
// "error"/"message" field is kept only for user-facing wording.
func Classify(resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}

	msg := errorMessage(resp.Body())

	switch resp.StatusCode() {
	case http.StatusUnauthorized:
		return wrap(common.ErrUnauthorized, msg)
	case http.StatusForbidden:
		return wrap(common.ErrAccessDenied, msg)
	case http.StatusNotFound:
		return wrap(common.ErrNotFound, msg)
	case http.StatusBadRequest, http.StatusConflict, http.StatusUnprocessableEntity:
		return wrap(common.ErrValidation, msg)
	default:
		return wrap(common.ErrInternal, msg)
	}
}

// classifyGraphQLError maps one entry of a GraphQL "errors" array to the
// taxonomy. The extensions' embedded status code is authoritative; message
// text matching is a legacy fallback for wording only and never drives the
// forced-logout path (the caller checks the status code for that).
func classifyGraphQLError(entry gjson.Result) error {
	msg := entry.Get("message").String()
	code := entry.Get("extensions.originalError.statusCode").Int()

	switch code {
	case http.StatusUnauthorized:
		return wrap(common.ErrUnauthorized, msg)
	case http.StatusForbidden:
		return wrap(common.ErrAccessDenied, msg)
	case http.StatusNotFound:
		return wrap(common.ErrNotFound, msg)
	case http.StatusBadRequest, http.StatusConflict, http.StatusUnprocessableEntity:
		return wrap(common.ErrValidation, msg)
	}

	// Legacy fallback: older backend versions carry no status code.
	switch {
	case strings.Contains(msg, "own courses"), strings.Contains(msg, "Access denied"):
		return wrap(common.ErrAccessDenied, msg)
	case strings.Contains(msg, "Not found"):
		return wrap(common.ErrNotFound, msg)
	default:
		return wrap(common.ErrInternal, msg)
	}
}

func errorMessage(body []byte) string {
	if m := gjson.GetBytes(body, "error"); m.Exists() {
		return m.String()
	}
	return gjson.GetBytes(body, "message").String()
}

func wrap(kind error, msg string) error {
	if msg == "" {
		return kind
	}
	return fmt.Errorf("%w: %s", kind, msg)
}
