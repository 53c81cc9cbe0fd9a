package rope

import (
	"fmt"
	"runtime/debug"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Code is a fine-grained, caller-defined error identifier, namespaced with
// dot segments (e.g. "blueprint.parse_error").
type Code string

const (
	// CodeContext tags errors produced by Result.Context when the caller
	// does not supply a code.
	CodeContext Code = "context"
	// CodePanic tags errors recovered from panics at an exception boundary.
	CodePanic Code = "panic"
	// CodeExternal tags errors adapted from plain Go error returns via Try.
	CodeExternal Code = "external"
	// CodeCanceled tags errors produced when a chain observes context
	// cancellation.
	CodeCanceled Code = "canceled"
)

// Metadata keys populated whenever an Error is built from a recovered panic
// or wraps a foreign Go error. Capture is mandatory at the boundary: once
// the panic unwinds, its trace is gone.
const (
	MetaException       = "exception"
	MetaStacktrace      = "stacktrace"
	MetaCauseException  = "cause_exception"
	MetaCauseStacktrace = "cause_stacktrace"
)

// PathItem locates an error within a nested structure: either a field name
// or a sequence index.
type PathItem struct {
	key     string
	index   int
	isIndex bool
}

func Key(name string) PathItem { return PathItem{key: name} }

func Index(i int) PathItem { return PathItem{index: i, isIndex: true} }

func (p PathItem) IsIndex() bool { return p.isIndex }

func (p PathItem) Key() string { return p.key }

func (p PathItem) Index() int { return p.index }

// Value returns the item as a string or an int, for serialization.
func (p PathItem) Value() any {
	if p.isIndex {
		return p.index
	}
	return p.key
}

func (p PathItem) String() string {
	if p.isIndex {
		return fmt.Sprintf("[%d]", p.index)
	}
	return p.key
}

// Error is an immutable structured failure value. All modifiers are
// copy-on-write: they return a new value and never alter the receiver, so
// shared Error values need no synchronization.
type Error struct {
	id        uuid.UUID
	createdAt time.Time
	kind      ErrorKind
	code      Code
	message   string
	metadata  map[string]string
	op        string
	path      []PathItem
	expected  string
	got       string
	cause     string
}

// ErrorOption configures an Error at construction time.
type ErrorOption func(*Error)

func WithKind(k ErrorKind) ErrorOption {
	return func(e *Error) { e.kind = k }
}

// WithCode overrides the code chosen by the construction site. Used by
// helpers such as Result.Context whose default code is fixed.
func WithCode(code Code) ErrorOption {
	return func(e *Error) { e.code = code }
}

// WithKindName accepts a kind by name. Unknown names panic: accepting
// arbitrary strings silently would corrupt the taxonomy.
func WithKindName(name string) ErrorOption {
	k := MustKind(name)
	return func(e *Error) { e.kind = k }
}

// WithMetadata merges the given entries into the error's metadata.
func WithMetadata(md map[string]string) ErrorOption {
	return func(e *Error) {
		for k, v := range md {
			e.metadata[k] = v
		}
	}
}

func WithMeta(key, value string) ErrorOption {
	return func(e *Error) { e.metadata[key] = value }
}

func WithOp(op string) ErrorOption {
	return func(e *Error) { e.op = op }
}

func WithPath(items ...PathItem) ErrorOption {
	return func(e *Error) { e.path = append([]PathItem(nil), items...) }
}

func WithExpected(expected string) ErrorOption {
	return func(e *Error) { e.expected = expected }
}

func WithGot(got string) ErrorOption {
	return func(e *Error) { e.got = got }
}

func WithCause(cause string) ErrorOption {
	return func(e *Error) { e.cause = cause }
}

// New builds an Error. Kind defaults to KindInternal unless WithKind or
// WithKindName is supplied.
func New(code Code, message string, opts ...ErrorOption) *Error {
	e := &Error{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		code:      code,
		message:   message,
		metadata:  map[string]string{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Wrap builds a new Error recording source's string form as cause. A cause
// is always a snapshot, never a live reference, so chains stay finite and
// survive serialization. When source is a foreign Go error the dynamic type
// name and the current stack are captured into metadata.
//
// Wrap panics when source is nil; wrapping nothing is a programming error.
func Wrap(source error, code Code, message string, opts ...ErrorOption) *Error {
	if source == nil {
		panic("rope: Wrap requires a non-nil source error")
	}
	e := New(code, message, opts...)
	if src, ok := source.(*Error); ok {
		e.cause = src.String()
		return e
	}
	e.cause = source.Error()
	if _, exists := e.metadata[MetaCauseException]; !exists {
		e.metadata[MetaCauseException] = fmt.Sprintf("%T", source)
	}
	if _, exists := e.metadata[MetaCauseStacktrace]; !exists {
		e.metadata[MetaCauseStacktrace] = string(debug.Stack())
	}
	return e
}

// FromPanic converts a recovered panic value into an Error with code
// CodePanic. It must be called synchronously inside the recovering deferred
// function: the stack it records is the calling goroutine's stack at the
// moment of capture.
func FromPanic(recovered any) *Error {
	e := New(CodePanic, fmt.Sprint(recovered))
	e.metadata[MetaException] = fmt.Sprintf("%T", recovered)
	e.metadata[MetaStacktrace] = string(debug.Stack())
	e.cause = fmt.Sprint(recovered)
	return e
}

// newContextError wraps prev under a fresh error carrying message and code
// CodeContext. Kind, metadata, op, path and diagnostics are inherited from
// prev; options apply afterwards and may override any of them.
func newContextError(prev *Error, message string, opts ...ErrorOption) *Error {
	e := prev.clone()
	e.id = uuid.New()
	e.createdAt = time.Now().UTC()
	e.code = CodeContext
	e.message = message
	e.cause = prev.String()
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// wrapPanic builds the Err payload for the *_try combinators: a caller-coded
// error whose cause records the recovered panic, with the panic's type name
// and trace promoted into cause_* metadata.
func wrapPanic(recovered any, code Code, message string, opts ...ErrorOption) *Error {
	cause := FromPanic(recovered)
	e := New(code, message, opts...)
	if _, ok := e.metadata[MetaCauseException]; !ok {
		e.metadata[MetaCauseException] = cause.metadata[MetaException]
	}
	if _, ok := e.metadata[MetaCauseStacktrace]; !ok {
		e.metadata[MetaCauseStacktrace] = cause.metadata[MetaStacktrace]
	}
	e.cause = cause.String()
	return e
}

func (e *Error) clone() *Error {
	dup := *e
	dup.metadata = make(map[string]string, len(e.metadata))
	for k, v := range e.metadata {
		dup.metadata[k] = v
	}
	dup.path = append([]PathItem(nil), e.path...)
	return &dup
}

func (e *Error) ID() uuid.UUID { return e.id }

func (e *Error) CreatedAt() time.Time { return e.createdAt }

func (e *Error) Kind() ErrorKind { return e.kind }

func (e *Error) Code() Code { return e.code }

func (e *Error) Message() string { return e.message }

// Metadata returns a copy; callers may mutate it freely.
func (e *Error) Metadata() map[string]string {
	out := make(map[string]string, len(e.metadata))
	for k, v := range e.metadata {
		out[k] = v
	}
	return out
}

// Meta looks up a single metadata entry.
func (e *Error) Meta(key string) (string, bool) {
	v, ok := e.metadata[key]
	return v, ok
}

func (e *Error) Op() string { return e.op }

func (e *Error) Path() []PathItem { return append([]PathItem(nil), e.path...) }

func (e *Error) Expected() string { return e.expected }

func (e *Error) Got() string { return e.got }

func (e *Error) Cause() string { return e.cause }

// Error implements the standard error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.code, e.message)
}

// String is the canonical representation used when this error becomes
// another error's cause.
func (e *Error) String() string {
	return fmt.Sprintf("Error(kind=ErrorKind.%s, code=%q, message=%q)", e.kind, e.code, e.message)
}

// WithCode returns a copy with the code replaced; message and cause are
// preserved.
func (e *Error) WithCode(code Code) *Error {
	dup := e.clone()
	dup.code = code
	return dup
}

// With returns a copy with one extra metadata entry.
func (e *Error) With(key, value string) *Error {
	dup := e.clone()
	dup.metadata[key] = value
	return dup
}

// PrefixCode returns a copy whose code carries the given namespace prefix.
// Prefixing is idempotent: a code already under the namespace is returned
// unchanged, and an empty code becomes the namespace itself.
func (e *Error) PrefixCode(namespace string) *Error {
	code := string(e.code)
	switch {
	case code == "":
		code = namespace
	case code == namespace, strings.HasPrefix(code, namespace+"."):
		return e
	default:
		code = namespace + "." + code
	}
	dup := e.clone()
	dup.code = Code(code)
	return dup
}
