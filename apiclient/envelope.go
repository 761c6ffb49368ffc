// Package apiclient talks to the titulación backend. Every mutating call
// is a JSON request stamped with a bearer token; responses arrive in one
// of two envelopes: a success envelope {status, message, data} or a
// failure envelope {error: [messages...]}.
package apiclient

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// ErrUnexpectedShape marks a response that is neither a success nor a
// failure envelope. It is surfaced like a remote rejection, never as a
// crash.
var ErrUnexpectedShape = errors.New("unexpected response shape")

// Ok is the success envelope of the backend.
type Ok struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Token   string          `json:"token,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// errEnvelope is the failure envelope of the backend.
type errEnvelope struct {
	Error []string `json:"error"`
}

// RemoteError carries the ordered list of error messages the server
// reported for a rejected request.
type RemoteError struct {
	StatusCode int
	Messages   []string
}

func (e *RemoteError) Error() string {
	if len(e.Messages) == 0 {
		return fmt.Sprintf("request rejected with status %d", e.StatusCode)
	}
	return strings.TrimSpace(JoinMessages(e.Messages))
}

// JoinMessages concatenates server-reported messages the way the client
// displays them: every message preceded by a single space.
func JoinMessages(messages []string) string {
	var b strings.Builder
	for _, m := range messages {
		b.WriteString(" ")
		b.WriteString(m)
	}
	return b.String()
}

// AsRemote unwraps err into a RemoteError when the failure came from the
// server rather than the transport.
func AsRemote(err error) (*RemoteError, bool) {
	var remote *RemoteError
	ok := errors.As(err, &remote)
	return remote, ok
}
