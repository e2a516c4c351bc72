package errors

import "fmt"

// Kind classifies a build error by the contract it violates
type Kind int

const (
	// MalformedFragment means the fragment notation could not be tokenized
	// or parsed into a valid local molecular graph
	MalformedFragment Kind = iota

	// InvalidAttachment means an attachment marker references a nonexistent
	// atom or exceeds the atom's remaining valence capacity
	InvalidAttachment

	// ValenceExceeded means a requested bond order exceeds the remaining
	// capacity of an attachment point
	ValenceExceeded

	// IncompatibleRole means two attachment points cannot bond under the
	// active policy (e.g. head-to-head under head-to-tail assembly)
	IncompatibleRole

	// ConstraintUnsatisfiable means no fragment ordering can satisfy the
	// declared composition constraint
	ConstraintUnsatisfiable

	// UnsupportedFormat means the requested output format is unknown
	UnsupportedFormat

	// IncompleteStructure means unresolved open valences remain and the
	// output format requires full saturation
	IncompleteStructure
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case MalformedFragment:
		return "malformed fragment"
	case InvalidAttachment:
		return "invalid attachment"
	case ValenceExceeded:
		return "valence exceeded"
	case IncompatibleRole:
		return "incompatible role"
	case ConstraintUnsatisfiable:
		return "constraint unsatisfiable"
	case UnsupportedFormat:
		return "unsupported format"
	case IncompleteStructure:
		return "incomplete structure"
	default:
		return "unknown"
	}
}

// BuildError is the error type surfaced by every phase of the assembly
// pipeline. It carries enough context (fragment index, atom identifier,
// position in the input string) to diagnose the failure without re-running.
type BuildError struct {
	Kind     Kind
	Phase    string // "lexer", "parser", "resolver", "assembler", "enumerator", "exporter"
	Code     string // "E001", "E002", etc.
	Message  string
	Fragment int // index of the offending fragment in the sequence, -1 if n/a
	Atom     int // offending atom identifier, -1 if n/a
	Position int // rune offset into the fragment string, -1 if n/a
}

// Error implements the error interface
func (e *BuildError) Error() string {
	msg := fmt.Sprintf("%s: %s: %s", e.Code, e.Kind, e.Message)
	if e.Fragment >= 0 {
		msg = fmt.Sprintf("fragment %d: %s", e.Fragment, msg)
	}
	return msg
}

// Is reports whether target is a BuildError of the same Kind, so callers can
// match taxonomy members with errors.Is against the exported sentinels below.
func (e *BuildError) Is(target error) bool {
	t, ok := target.(*BuildError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Code == "" || t.Code == e.Code)
}

// New creates a BuildError with no fragment/atom context
func New(kind Kind, phase, code, message string) *BuildError {
	return &BuildError{
		Kind:     kind,
		Phase:    phase,
		Code:     code,
		Message:  message,
		Fragment: -1,
		Atom:     -1,
		Position: -1,
	}
}

// Newf creates a BuildError with a formatted message
func Newf(kind Kind, phase, code, format string, args ...interface{}) *BuildError {
	return New(kind, phase, code, fmt.Sprintf(format, args...))
}

// WithFragment returns a copy of the error annotated with a fragment index
func (e *BuildError) WithFragment(index int) *BuildError {
	dup := *e
	dup.Fragment = index
	return &dup
}

// WithAtom returns a copy of the error annotated with an atom identifier
func (e *BuildError) WithAtom(id int) *BuildError {
	dup := *e
	dup.Atom = id
	return &dup
}

// WithPosition returns a copy of the error annotated with an input offset
func (e *BuildError) WithPosition(pos int) *BuildError {
	dup := *e
	dup.Position = pos
	return &dup
}

// Sentinels for errors.Is matching. Each matches any BuildError of its Kind.
var (
	ErrMalformedFragment       = &BuildError{Kind: MalformedFragment, Fragment: -1, Atom: -1, Position: -1}
	ErrInvalidAttachment       = &BuildError{Kind: InvalidAttachment, Fragment: -1, Atom: -1, Position: -1}
	ErrValenceExceeded         = &BuildError{Kind: ValenceExceeded, Fragment: -1, Atom: -1, Position: -1}
	ErrIncompatibleRole        = &BuildError{Kind: IncompatibleRole, Fragment: -1, Atom: -1, Position: -1}
	ErrConstraintUnsatisfiable = &BuildError{Kind: ConstraintUnsatisfiable, Fragment: -1, Atom: -1, Position: -1}
	ErrUnsupportedFormat       = &BuildError{Kind: UnsupportedFormat, Fragment: -1, Atom: -1, Position: -1}
	ErrIncompleteStructure     = &BuildError{Kind: IncompleteStructure, Fragment: -1, Atom: -1, Position: -1}
)
