// Package formatter pretty-prints JSON documents.
package formatter

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/custodia-labs/jsonbridge/internal/core/domain"
	"github.com/custodia-labs/jsonbridge/internal/core/ports/driven"
)

// Ensure Indenter implements the interface.
var _ driven.JSONFormatter = (*Indenter)(nil)

// Indenter re-serialises JSON with space indentation.
// Member order and number literals are preserved as written.
type Indenter struct{}

// New creates a new Indenter.
func New() *Indenter {
	return &Indenter{}
}

// Indent validates src and indents it with indent spaces per level.
// The result always ends with a newline.
func (f *Indenter) Indent(src []byte, indent int) ([]byte, error) {
	src = bytes.TrimSpace(src)
	if len(src) == 0 {
		return nil, fmt.Errorf("%w: empty document", domain.ErrMalformedJSON)
	}
	if !utf8.Valid(src) {
		return nil, fmt.Errorf("%w: invalid UTF-8", domain.ErrMalformedJSON)
	}
	if !json.Valid(src) {
		return nil, fmt.Errorf("%w: %s", domain.ErrMalformedJSON, syntaxError(src))
	}
	if indent < 0 {
		indent = 0
	}

	var buf bytes.Buffer
	buf.Grow(len(src) * 2)
	if err := json.Indent(&buf, src, "", strings.Repeat(" ", indent)); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedJSON, err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// syntaxError describes where src stops being valid JSON.
func syntaxError(src []byte) string {
	var v any
	err := json.Unmarshal(src, &v)
	var se *json.SyntaxError
	if errors.As(err, &se) {
		return fmt.Sprintf("%v (offset %d)", se, se.Offset)
	}
	if err != nil {
		return err.Error()
	}
	return "invalid document"
}
