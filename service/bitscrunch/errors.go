package bitscrunch

import (
	"encoding/json"
	"fmt"
)

type ErrorKind int

const (
	// ErrorKindTransport means no usable response came back: dial failure,
	// timeout, truncated body.
	ErrorKindTransport ErrorKind = iota
	// ErrorKindUpstream means the provider answered with a non 2xx status
	ErrorKindUpstream
)

func (k ErrorKind) String() string {
	switch k {
	case ErrorKindTransport:
		return "transport"
	case ErrorKindUpstream:
		return "upstream"
	default:
		return "unknown"
	}
}

// UpstreamError is the single failure value of Client. It encodes to JSON as
// the provider payload when there is one, otherwise as the message string.
type UpstreamError struct {
	Kind       ErrorKind
	Message    string
	StatusCode int
	Payload    json.RawMessage

	cause error
}

func newTransportError(err error) *UpstreamError {
	return &UpstreamError{
		Kind:    ErrorKindTransport,
		Message: err.Error(),
		cause:   err,
	}
}

// newUpstreamError keeps the body as payload unless it is empty or a falsy
// JSON value (null, false, 0, ""), in which case the status message stands in.
func newUpstreamError(statusCode int, body []byte) *UpstreamError {
	payload := asJson(body)
	if isFalsy(payload) {
		payload = nil
	}
	return &UpstreamError{
		Kind:       ErrorKindUpstream,
		Message:    fmt.Sprintf("Request failed with status code %d", statusCode),
		StatusCode: statusCode,
		Payload:    payload,
	}
}

func (e *UpstreamError) Error() string {
	if e.Kind == ErrorKindUpstream && len(e.Payload) > 0 {
		return fmt.Sprintf("%s: %s", e.Message, e.Payload)
	}
	return e.Message
}

func (e *UpstreamError) Unwrap() error {
	return e.cause
}

func (e *UpstreamError) MarshalJSON() ([]byte, error) {
	if len(e.Payload) > 0 {
		return e.Payload, nil
	}
	return json.Marshal(e.Message)
}

// asJson keeps a valid JSON body as is and quotes anything else, so a
// plain text or html body still ends up as a JSON value. Empty stays empty.
func asJson(body []byte) json.RawMessage {
	if len(body) == 0 {
		return nil
	}
	if json.Valid(body) {
		return json.RawMessage(body)
	}
	quoted, _ := json.Marshal(string(body))
	return json.RawMessage(quoted)
}

func isFalsy(payload json.RawMessage) bool {
	if len(payload) == 0 {
		return true
	}
	var v interface{}
	if err := json.Unmarshal(payload, &v); err != nil {
		return false
	}
	switch val := v.(type) {
	case nil:
		return true
	case bool:
		return !val
	case float64:
		return val == 0
	case string:
		return val == ""
	default:
		return false
	}
}
