package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sort"
	"strings"
	"syscall"

	"github.com/PaesslerAG/jsonpath"
)

// Transport error codes, set on Error.Code when no HTTP response was received.
const (
	CodeTimeout           = "ECONNABORTED"
	CodeConnectionRefused = "ECONNREFUSED"
	CodeDNS               = "ENOTFOUND"
	CodeNetwork           = "ERR_NETWORK"
	CodeCanceled          = "ERR_CANCELED"
)

// FieldDetail is one field level failure of a 422 response.
type FieldDetail struct {
	Field   string
	Message string
}

// Error is the error returned by every Client call that did not succeed.
// Either Status is set (the server answered) or Code is (transport failure).
type Error struct {
	Status int
	Code   string
	Detail string
	Fields []FieldDetail
	Err    error // underlying transport error, if any
}

func (e *Error) Error() string {
	switch {
	case e.Status != 0 && e.Detail != "":
		return fmt.Sprintf("api: %d %s: %s", e.Status, http.StatusText(e.Status), e.Detail)
	case e.Status != 0:
		return fmt.Sprintf("api: %d %s", e.Status, http.StatusText(e.Status))
	case e.Err != nil:
		return fmt.Sprintf("api: %s: %v", e.Code, e.Err)
	default:
		return "api: " + e.Code
	}
}

func (e *Error) Unwrap() error { return e.Err }

// Kind is the classification of an error.
type Kind int

const (
	KindUnknown Kind = iota
	KindBadRequest
	KindAuthentication
	KindAuthorization
	KindNotFound
	KindConflict
	KindValidation
	KindRateLimit
	KindServer
	KindTimeout
	KindConnectionRefused
	KindDNS
	KindNetwork
	KindCanceled
)

func (k Kind) String() string {
	switch k {
	case KindBadRequest:
		return "bad-request"
	case KindAuthentication:
		return "authentication"
	case KindAuthorization:
		return "authorization"
	case KindNotFound:
		return "not-found"
	case KindConflict:
		return "conflict"
	case KindValidation:
		return "validation"
	case KindRateLimit:
		return "rate-limit"
	case KindServer:
		return "server"
	case KindTimeout:
		return "timeout"
	case KindConnectionRefused:
		return "connection-refused"
	case KindDNS:
		return "dns"
	case KindNetwork:
		return "network"
	case KindCanceled:
		return "canceled"
	default:
		return "unknown"
	}
}

// Classify returns the Kind of err. Errors that are not *Error are unknown.
func Classify(err error) Kind {
	var e *Error
	if !errors.As(err, &e) {
		return KindUnknown
	}
	switch e.Code {
	case CodeTimeout:
		return KindTimeout
	case CodeConnectionRefused:
		return KindConnectionRefused
	case CodeDNS:
		return KindDNS
	case CodeNetwork:
		return KindNetwork
	case CodeCanceled:
		return KindCanceled
	}
	switch {
	case e.Status == http.StatusBadRequest:
		return KindBadRequest
	case e.Status == http.StatusUnauthorized:
		return KindAuthentication
	case e.Status == http.StatusForbidden:
		return KindAuthorization
	case e.Status == http.StatusNotFound:
		return KindNotFound
	case e.Status == http.StatusConflict:
		return KindConflict
	case e.Status == http.StatusUnprocessableEntity:
		return KindValidation
	case e.Status == http.StatusTooManyRequests:
		return KindRateLimit
	case e.Status >= 500:
		return KindServer
	}
	return KindUnknown
}

// StatusCode returns the HTTP status of err, or 0.
func StatusCode(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.Status
	}
	return 0
}

// IsCanceled reports whether err comes from a cancelled context.
func IsCanceled(err error) bool {
	return errors.Is(err, context.Canceled) || Classify(err) == KindCanceled
}

// IsRetryable reports whether repeating the request may succeed: server
// errors, rate limiting and transport failures. Nothing in this package
// retries on its own.
func IsRetryable(err error) bool {
	switch Classify(err) {
	case KindServer, KindRateLimit, KindTimeout, KindConnectionRefused, KindDNS, KindNetwork:
		return true
	}
	return false
}

// ConflictKind refines a 409 answer.
type ConflictKind int

const (
	ConflictNone ConflictKind = iota
	ConflictDuplicate
	ConflictConcurrentModification
)

// Conflict returns the ConflictKind of err.
func Conflict(err error) ConflictKind {
	if Classify(err) != KindConflict {
		return ConflictNone
	}
	var e *Error
	errors.As(err, &e)
	detail := strings.ToLower(e.Detail)
	for _, marker := range []string{"modified", "another user", "version", "stale"} {
		if strings.Contains(detail, marker) {
			return ConflictConcurrentModification
		}
	}
	return ConflictDuplicate
}

// Standard user facing messages.
const (
	MsgUnexpected        = "An unexpected error occurred. Please try again."
	MsgBadRequest        = "The request was invalid. Please check your input and try again."
	MsgAuthentication    = "Your session has expired. Please log in again."
	MsgAuthorization     = "You do not have permission to perform this action."
	MsgNotFound          = "The requested record was not found. It may have been deleted."
	MsgConflict          = "This record already exists. Please check for duplicates."
	MsgConcurrentChange  = "This record was modified by another user. Please refresh and try again."
	MsgValidation        = "Some fields are invalid. Please correct them and try again."
	MsgRateLimit         = "Too many requests. Please wait a moment and try again."
	MsgServer            = "A server error occurred. Please try again later."
	MsgUnavailable       = "The service is temporarily unavailable. Please try again later."
	MsgTimeout           = "The request timed out. Please check your connection and try again."
	MsgConnectionRefused = "Unable to connect to the server. Please try again later."
	MsgDNS               = "Unable to reach the server. Please check your network connection."
	MsgNetwork           = "A network error occurred. Please check your connection and try again."
	MsgCanceled          = "The request was cancelled."
)

// FormatError turns any error into one human readable message.
func FormatError(err error) string { return FormatErrorDetail(err, false) }

// FormatErrorDetail is FormatError; with devMode the raw error is appended
// to messages that would otherwise hide it.
func FormatErrorDetail(err error, devMode bool) string {
	if err == nil {
		return MsgUnexpected
	}
	var e *Error
	if !errors.As(err, &e) {
		if devMode {
			return MsgUnexpected + " (" + err.Error() + ")"
		}
		return MsgUnexpected
	}

	msg := MsgUnexpected
	switch Classify(err) {
	case KindBadRequest:
		msg = MsgBadRequest
		if e.Detail != "" {
			return e.Detail
		}
	case KindAuthentication:
		msg = MsgAuthentication
	case KindAuthorization:
		msg = MsgAuthorization
	case KindNotFound:
		msg = MsgNotFound
	case KindConflict:
		msg = MsgConflict
		if Conflict(err) == ConflictConcurrentModification {
			msg = MsgConcurrentChange
		}
	case KindValidation:
		if len(e.Fields) > 0 {
			parts := make([]string, 0, len(e.Fields))
			for _, f := range e.Fields {
				if f.Field == "" {
					parts = append(parts, f.Message)
					continue
				}
				parts = append(parts, f.Field+": "+f.Message)
			}
			return "Validation failed: " + strings.Join(parts, "; ")
		}
		if e.Detail != "" {
			return "Validation failed: " + e.Detail
		}
		msg = MsgValidation
	case KindRateLimit:
		msg = MsgRateLimit
	case KindServer:
		msg = MsgServer
		if e.Status == http.StatusServiceUnavailable {
			msg = MsgUnavailable
		}
	case KindTimeout:
		msg = MsgTimeout
	case KindConnectionRefused:
		msg = MsgConnectionRefused
	case KindDNS:
		msg = MsgDNS
	case KindNetwork:
		msg = MsgNetwork
	case KindCanceled:
		msg = MsgCanceled
	}
	if devMode {
		return msg + " (" + e.Error() + ")"
	}
	return msg
}

// FieldErrors returns the 422 field failures of err as a field -> message map.
func FieldErrors(err error) map[string]string {
	var e *Error
	if !errors.As(err, &e) || len(e.Fields) == 0 {
		return nil
	}
	m := make(map[string]string, len(e.Fields))
	for _, f := range e.Fields {
		m[f.Field] = f.Message
	}
	return m
}

// newHTTPError builds an Error from a non 2xx response body. The body is
// the usual {"detail": "..."} or {"detail": [{"loc": [...], "msg": "..."}]}
// payload, or anything else.
func newHTTPError(status int, body []byte) *Error {
	e := &Error{Status: status}
	var payload any
	if err := json.Unmarshal(body, &payload); err != nil {
		e.Detail = strings.TrimSpace(string(body))
		return e
	}

	detail, err := jsonpath.Get("$.detail", payload)
	if err != nil {
		// not a detail payload; try the other common shapes.
		for _, path := range []string{"$.message", "$.error"} {
			if v, err := jsonpath.Get(path, payload); err == nil {
				if s, ok := v.(string); ok {
					e.Detail = s
					return e
				}
			}
		}
		return e
	}

	switch d := detail.(type) {
	case string:
		e.Detail = d
	case []any:
		for _, item := range d {
			e.Fields = append(e.Fields, fieldDetail(item))
		}
		sort.SliceStable(e.Fields, func(i, j int) bool { return e.Fields[i].Field < e.Fields[j].Field })
	case map[string]any:
		if msg, err := jsonpath.Get("$.message", d); err == nil {
			e.Detail = fmt.Sprint(msg)
		}
	}
	return e
}

// fieldDetail reads {"loc": ["body", "email_1"], "msg": "..."} items. The
// field is the last element of loc.
func fieldDetail(item any) FieldDetail {
	var fd FieldDetail
	if msg, err := jsonpath.Get("$.msg", item); err == nil {
		fd.Message = fmt.Sprint(msg)
	}
	if loc, err := jsonpath.Get("$.loc", item); err == nil {
		if parts, ok := loc.([]any); ok && len(parts) > 0 {
			fd.Field = fmt.Sprint(parts[len(parts)-1])
		}
	}
	return fd
}

// transportError classifies errors returned by http.Client.Do.
func transportError(err error) *Error {
	e := &Error{Code: CodeNetwork, Err: err}
	var netErr net.Error
	var dnsErr *net.DNSError
	switch {
	case errors.Is(err, context.Canceled):
		e.Code = CodeCanceled
	case errors.Is(err, context.DeadlineExceeded):
		e.Code = CodeTimeout
	case errors.As(err, &dnsErr):
		e.Code = CodeDNS
	case errors.Is(err, syscall.ECONNREFUSED):
		e.Code = CodeConnectionRefused
	case errors.As(err, &netErr) && netErr.Timeout():
		e.Code = CodeTimeout
	}
	return e
}
