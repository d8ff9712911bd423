package panelclient

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// envelope is the uniform wrapper the panel puts around every response
type envelope struct {
	Success *bool           `json:"success"`
	Msg     string          `json:"msg"`
	Obj     json.RawMessage `json:"obj"`
}

// unwrap validates the response envelope and extracts the obj payload. A
// success=false envelope surfaces the panel's message as an APIError.
func unwrap(op string, body []byte) (json.RawMessage, error) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("%s: failed to parse response envelope: %w", op, err)
	}

	if env.Success == nil {
		return nil, fmt.Errorf("%s: malformed response envelope: missing success flag", op)
	}

	if !*env.Success {
		return nil, &APIError{Op: op, Msg: env.Msg}
	}

	return env.Obj, nil
}

// emptyObj reports whether the obj payload is absent or JSON null
func emptyObj(obj json.RawMessage) bool {
	return len(obj) == 0 || bytes.Equal(bytes.TrimSpace(obj), []byte("null"))
}

// stringObj extracts obj as a literal string. Some endpoints answer with an
// informational string (e.g. "No IP Record") instead of structured data.
func stringObj(obj json.RawMessage) (string, bool) {
	var s string
	if err := json.Unmarshal(obj, &s); err != nil {
		return "", false
	}
	return s, true
}
