package mesh

import "fmt"

// MalformedHeaderError reports a bad or missing magic token, a bad counts line,
// or a payload that ends before all declared records were read.
type MalformedHeaderError struct {
	Line    int // 1-based line in the payload, 0 when the payload ended
	Content string
	Reason  string
}

func (e *MalformedHeaderError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("malformed header: %s", e.Reason)
	}
	return fmt.Sprintf("malformed header at line %d (%q): %s", e.Line, e.Content, e.Reason)
}

// MalformedVertexLineError reports a vertex record with a wrong field count,
// a non-numeric field, or a normal layout inconsistent with earlier vertices.
type MalformedVertexLineError struct {
	Line    int
	Content string
	Reason  string
}

func (e *MalformedVertexLineError) Error() string {
	return fmt.Sprintf("malformed vertex at line %d (%q): %s", e.Line, e.Content, e.Reason)
}

// MalformedFaceLineError reports a face record whose arity or indices cannot be used
type MalformedFaceLineError struct {
	Line    int
	Content string
	Reason  string
}

func (e *MalformedFaceLineError) Error() string {
	return fmt.Sprintf("malformed face at line %d (%q): %s", e.Line, e.Content, e.Reason)
}

// EmptyGeometryError reports a source that declares or contains zero vertices
type EmptyGeometryError struct {
	Format string
}

func (e *EmptyGeometryError) Error() string {
	if e.Format == "" {
		return "geometry has no vertices"
	}
	return fmt.Sprintf("%s geometry has no vertices", e.Format)
}

// AssembleError reports a batch of parts that cannot be merged.
// Part is -1 when the error concerns the batch as a whole.
type AssembleError struct {
	Part   int
	Reason string
}

func (e *AssembleError) Error() string {
	if e.Part < 0 {
		return fmt.Sprintf("assemble: %s", e.Reason)
	}
	return fmt.Sprintf("assemble: part %d: %s", e.Part, e.Reason)
}
