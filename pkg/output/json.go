package output

import (
	"encoding/json"
	"io"

	"github.com/arthur-debert/docgen/pkg/errors"
)

// JSONRenderer provides machine-readable JSON output.
type JSONRenderer struct {
	encoder *json.Encoder
}

// NewJSONRenderer creates a JSON renderer writing to w.
func NewJSONRenderer(w io.Writer) *JSONRenderer {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return &JSONRenderer{encoder: encoder}
}

// RenderResult renders any result type as JSON.
func (r *JSONRenderer) RenderResult(result interface{}) error {
	return r.encoder.Encode(result)
}

// RenderError renders an error as JSON. Coded errors carry their code so
// scripts can branch without parsing messages.
func (r *JSONRenderer) RenderError(err error) error {
	errorObj := map[string]interface{}{
		"error": err.Error(),
	}
	if code := errors.GetErrorCode(err); code != errors.ErrUnknown {
		errorObj["code"] = string(code)
	}
	return r.encoder.Encode(errorObj)
}

// RenderMessage renders a simple message as JSON.
func (r *JSONRenderer) RenderMessage(msg string) error {
	messageObj := map[string]string{
		"message": msg,
	}
	return r.encoder.Encode(messageObj)
}
