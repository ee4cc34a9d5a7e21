// Package response builds the uniform success/failure envelope every
// endpoint returns: {status, message, data, timestamp}. Data is always
// list-shaped so clients can iterate without probing the payload type.
package response

import (
	"reflect"
	"time"

	"github.com/labstack/echo/v4"
)

// Status values used in the envelope.
const (
	StatusSuccess = "Success"
	StatusFailure = "Failure"
)

// Envelope is the wire shape of every response. Error detail is only
// attached outside production-like environments.
type Envelope struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Data      any    `json:"data"`
	Timestamp string `json:"timestamp"`
	Error     string `json:"error,omitempty"`
}

// production is set once at startup via Configure.
var production bool

// Configure records whether the service runs in a production-like
// environment. In production failures never expose raw error detail.
func Configure(env string) {
	production = env == "prod" || env == "production"
}

// Success writes a success envelope with the given HTTP status. Data
// that is not already a slice is wrapped into a one-element list; nil
// becomes an empty list.
func Success(c echo.Context, code int, message string, data any) error {
	return c.JSON(code, Envelope{
		Status:    StatusSuccess,
		Message:   message,
		Data:      listify(data),
		Timestamp: now(),
	})
}

// Error writes a failure envelope with the given HTTP status. The
// detail error is attached only when not running in production.
func Error(c echo.Context, code int, message string, detail error) error {
	env := Envelope{
		Status:    StatusFailure,
		Message:   message,
		Data:      []any{},
		Timestamp: now(),
	}
	if detail != nil && !production {
		env.Error = detail.Error()
	}
	return c.JSON(code, env)
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// listify wraps non-list payloads into a list. Maps keep their shape
// inside the single-element list; nil data yields an empty list.
func listify(data any) any {
	if data == nil {
		return []any{}
	}
	v := reflect.ValueOf(data)
	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return []any{}
		}
		v = v.Elem()
	}
	if v.Kind() == reflect.Slice || v.Kind() == reflect.Array {
		if v.Kind() == reflect.Slice && v.IsNil() {
			return []any{}
		}
		return v.Interface()
	}
	return []any{v.Interface()}
}
