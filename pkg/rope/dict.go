package rope

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mitchellh/mapstructure"
)

// errorDict is the flat wire representation of an Error.
type errorDict struct {
	Kind      string            `mapstructure:"kind"`
	Code      string            `mapstructure:"code"`
	Message   string            `mapstructure:"message"`
	Metadata  map[string]string `mapstructure:"metadata"`
	Op        string            `mapstructure:"op"`
	Path      []any             `mapstructure:"path"`
	Expected  string            `mapstructure:"expected"`
	Got       string            `mapstructure:"got"`
	Cause     string            `mapstructure:"cause"`
	ID        string            `mapstructure:"id"`
	CreatedAt string            `mapstructure:"created_at"`
}

var mandatoryDictFields = []string{"kind", "code"}

// ToDict flattens the error into a mapping. Optional fields are omitted
// when empty; kind and code are always present.
func (e *Error) ToDict() map[string]any {
	d := map[string]any{
		"kind":       e.kind.String(),
		"code":       string(e.code),
		"id":         e.id.String(),
		"created_at": e.createdAt.Format(time.RFC3339Nano),
	}
	if e.message != "" {
		d["message"] = e.message
	}
	if len(e.metadata) > 0 {
		d["metadata"] = e.Metadata()
	}
	if e.op != "" {
		d["op"] = e.op
	}
	if len(e.path) > 0 {
		path := make([]any, len(e.path))
		for i, item := range e.path {
			path[i] = item.Value()
		}
		d["path"] = path
	}
	if e.expected != "" {
		d["expected"] = e.expected
	}
	if e.got != "" {
		d["got"] = e.got
	}
	if e.cause != "" {
		d["cause"] = e.cause
	}
	return d
}

// FromDict rebuilds an Error from its flat mapping form. The error names
// the first missing mandatory field, so a caller sees exactly what the
// payload lacked.
func FromDict(d map[string]any) (*Error, error) {
	for _, field := range mandatoryDictFields {
		if _, ok := d[field]; !ok {
			return nil, fmt.Errorf("missing '%s' field", field)
		}
	}

	var dict errorDict
	if err := mapstructure.Decode(d, &dict); err != nil {
		return nil, fmt.Errorf("decode error dict: %w", err)
	}

	kind, err := ParseKind(dict.Kind)
	if err != nil {
		return nil, err
	}

	path := make([]PathItem, 0, len(dict.Path))
	for _, item := range dict.Path {
		switch v := item.(type) {
		case string:
			path = append(path, Key(v))
		case int:
			path = append(path, Index(v))
		case int64:
			path = append(path, Index(int(v)))
		case float64:
			path = append(path, Index(int(v)))
		default:
			return nil, fmt.Errorf("invalid path element %v (expected string or int)", item)
		}
	}

	e := &Error{
		kind:     kind,
		code:     Code(dict.Code),
		message:  dict.Message,
		metadata: dict.Metadata,
		op:       dict.Op,
		path:     path,
		expected: dict.Expected,
		got:      dict.Got,
		cause:    dict.Cause,
	}
	if e.metadata == nil {
		e.metadata = map[string]string{}
	}

	if dict.ID != "" {
		id, err := uuid.Parse(dict.ID)
		if err != nil {
			return nil, fmt.Errorf("invalid 'id' field: %w", err)
		}
		e.id = id
	} else {
		e.id = uuid.New()
	}
	if dict.CreatedAt != "" {
		at, err := time.Parse(time.RFC3339Nano, dict.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("invalid 'created_at' field: %w", err)
		}
		e.createdAt = at
	} else {
		e.createdAt = time.Now().UTC()
	}
	return e, nil
}
