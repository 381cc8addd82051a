package driven

// JSONFormatter validates and pretty-prints JSON text.
type JSONFormatter interface {
	// Indent parses src and re-serialises it with indent spaces per level
	// and a trailing newline. Returns domain.ErrMalformedJSON if src is
	// not a valid JSON document.
	Indent(src []byte, indent int) ([]byte, error)
}
