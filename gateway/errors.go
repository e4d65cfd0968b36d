package gateway

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/jrsteele09/go-gamehub-client/internal/utils"
	"github.com/pkg/errors"
)

// Kind classifies a failed request into one of a fixed set of outcomes.
type Kind string

const (
	KindAuthRejected   Kind = "auth_rejected"   // 401 without a credential on the request
	KindSessionExpired Kind = "session_expired" // 401 with a credential on the request
	KindForbidden      Kind = "forbidden"       // 403
	KindNotFound       Kind = "not_found"       // 404, never surfaced to the user
	KindValidation     Kind = "validation"      // 400 with an extractable field message
	KindServer         Kind = "server"          // 500
	KindNetwork        Kind = "network"         // no response received
	KindConfiguration  Kind = "configuration"   // request could not be constructed
	KindUnknown        Kind = "unknown"         // any other status
)

// APIError is the classified form of a failed request. It always propagates
// to the caller; user-visible notification is handled centrally by the
// Client before it is returned.
type APIError struct {
	Kind    Kind
	Status  int
	Message string

	// FieldErrors holds per-field validation messages extracted from a 400
	// response body, when the body carried them.
	FieldErrors map[string][]string
}

func (e *APIError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("%s (%d): %s", e.Kind, e.Status, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// KindOf extracts the classification from err, or KindUnknown when err is
// not an APIError.
func KindOf(err error) Kind {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return KindUnknown
}

// errorBody is the tagged result of resolving an unknown-shaped error
// payload once at the boundary: a field-error mapping, a message, a detail,
// or nothing.
type errorBody struct {
	fieldErrors map[string][]string
	message     string
	detail      string
}

// resolveErrorBody parses an error payload into its tagged form. Bodies that
// are not JSON objects resolve to the empty form.
func resolveErrorBody(data []byte) errorBody {
	var raw map[string]any
	if len(data) == 0 || json.Unmarshal(data, &raw) != nil {
		return errorBody{}
	}

	body := errorBody{}
	for key, value := range raw {
		switch key {
		case "message":
			if s, ok := value.(string); ok {
				body.message = s
			}
		case "detail":
			if s, ok := value.(string); ok {
				body.detail = s
			}
		default:
			var msgs []string
			switch v := value.(type) {
			case []any:
				msgs = utils.ToStringSlice(v)
			case string:
				msgs = []string{v}
			}
			if len(msgs) > 0 {
				if body.fieldErrors == nil {
					body.fieldErrors = make(map[string][]string)
				}
				body.fieldErrors[key] = msgs
			}
		}
	}
	return body
}

// firstFieldError returns the first extracted validation message, walking
// fields in sorted order so the choice is deterministic.
func (b errorBody) firstFieldError() string {
	keys := make([]string, 0, len(b.fieldErrors))
	for k := range b.fieldErrors {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if len(b.fieldErrors[k]) > 0 {
			return b.fieldErrors[k][0]
		}
	}
	return ""
}

// surfaceMessage returns the message or detail carried by the body, message
// taking priority.
func (b errorBody) surfaceMessage() string {
	if b.message != "" {
		return b.message
	}
	return b.detail
}
