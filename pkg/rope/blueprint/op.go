package blueprint

import (
	"strconv"
	"strings"
	"time"

	"github.com/ib-77/rope/pkg/rope"
)

type opKind uint8

const (
	opAssertStr opKind = iota
	opExpectStr
	opAsInt
	opAsFloat
	opAsBool
	opAsTime
	opSplit
	opIndex
	opGet
	opToUppercase
	opLen
)

var opNames = map[opKind]string{
	opAssertStr:   "AssertStr",
	opExpectStr:   "ExpectStr",
	opAsInt:       "AsInt",
	opAsFloat:     "AsFloat",
	opAsBool:      "AsBool",
	opAsTime:      "AsTime",
	opSplit:       "Split",
	opIndex:       "Index",
	opGet:         "Get",
	opToUppercase: "ToUppercase",
	opLen:         "Len",
}

// Op is one pipeline operator: a kind plus its fixed parameters.
type Op struct {
	kind   opKind
	delim  string
	idx    int
	key    string
	layout string
}

func (op Op) Name() string { return opNames[op.kind] }

// AssertStr asserts the input is a string.
func AssertStr() Op { return Op{kind: opAssertStr} }

// ExpectStr is a type-narrowing alias for AssertStr, for use after
// operators that yield an untyped value (Index, Get).
func ExpectStr() Op { return Op{kind: opExpectStr} }

// AsInt coerces str/int/float/bool input to an int.
func AsInt() Op { return Op{kind: opAsInt} }

// AsFloat coerces str/int/float input to a float.
func AsFloat() Op { return Op{kind: opAsFloat} }

// AsBool coerces str/int/bool input to a bool.
func AsBool() Op { return Op{kind: opAsBool} }

// AsTime parses a string into a timestamp using the given layout.
func AsTime(layout string) Op { return Op{kind: opAsTime, layout: layout} }

// Split splits a string by delimiter.
func Split(delim string) Op { return Op{kind: opSplit, delim: delim} }

// Index picks an element from a list.
func Index(idx int) Op { return Op{kind: opIndex, idx: idx} }

// Get picks a value from a map by key.
func Get(key string) Op { return Op{kind: opGet, key: key} }

// ToUppercase upper-cases a string.
func ToUppercase() Op { return Op{kind: opToUppercase} }

// Len yields the length of a str, bytes, list or map.
func Len() Op { return Op{kind: opLen} }

func typeMismatch(op, expected string, got any) *rope.Error {
	return rope.New("type_mismatch", "Type mismatch",
		rope.WithKind(rope.KindInvalidInput),
		rope.WithOp(op),
		rope.WithExpected(expected),
		rope.WithGot(TypeName(got)),
	)
}

func parseError(op, message, expected, got string) *rope.Error {
	return rope.New("parse_error", message,
		rope.WithKind(rope.KindInvalidInput),
		rope.WithOp(op),
		rope.WithExpected(expected),
		rope.WithGot(got),
	)
}

func expectStr(op string, v any) (string, *rope.Error) {
	s, ok := v.(string)
	if !ok {
		return "", typeMismatch(op, "str", v)
	}
	return s, nil
}

func (op Op) apply(v any) (any, *rope.Error) {
	name := op.Name()
	switch op.kind {
	case opAssertStr, opExpectStr:
		return expectStr(name, v)

	case opAsInt:
		switch val := v.(type) {
		case int64:
			return val, nil
		case float64:
			return int64(val), nil
		case bool:
			if val {
				return int64(1), nil
			}
			return int64(0), nil
		case string:
			n, err := strconv.ParseInt(strings.TrimSpace(val), 10, 64)
			if err != nil {
				return nil, parseError(name, "Failed to parse as int", "integer string", val)
			}
			return n, nil
		default:
			return nil, typeMismatch(name, "str|int|float|bool", v)
		}

	case opAsFloat:
		switch val := v.(type) {
		case float64:
			return val, nil
		case int64:
			return float64(val), nil
		case string:
			f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
			if err != nil {
				return nil, parseError(name, "Failed to parse as float", "numeric string", val)
			}
			return f, nil
		default:
			return nil, typeMismatch(name, "str|int|float", v)
		}

	case opAsBool:
		switch val := v.(type) {
		case bool:
			return val, nil
		case int64:
			return val != 0, nil
		case string:
			switch strings.ToLower(strings.TrimSpace(val)) {
			case "true", "1", "yes", "on":
				return true, nil
			case "false", "0", "no", "off", "":
				return false, nil
			default:
				return nil, parseError(name, "Failed to parse as bool", "true/false/1/0/yes/no", val)
			}
		default:
			return nil, typeMismatch(name, "str|int|bool", v)
		}

	case opAsTime:
		switch val := v.(type) {
		case time.Time:
			return val, nil
		case string:
			t, err := time.Parse(op.layout, strings.TrimSpace(val))
			if err != nil {
				return nil, parseError(name, "Failed to parse as datetime", "datetime string matching layout", val)
			}
			return t.UTC(), nil
		default:
			return nil, typeMismatch(name, "str|datetime", v)
		}

	case opSplit:
		if op.delim == "" {
			return nil, rope.New("invalid_delim", "Split delimiter must not be empty",
				rope.WithKind(rope.KindInvalidInput),
				rope.WithOp(name),
				rope.WithExpected("non-empty string"),
				rope.WithGot("empty string"),
			)
		}
		s, err := expectStr(name, v)
		if err != nil {
			return nil, err
		}
		parts := strings.Split(s, op.delim)
		out := make([]any, len(parts))
		for i, part := range parts {
			out[i] = part
		}
		return out, nil

	case opIndex:
		items, ok := v.([]any)
		if !ok {
			return nil, typeMismatch(name, "list", v)
		}
		if op.idx < 0 || op.idx >= len(items) {
			return nil, rope.New("index_out_of_range", "Index out of range",
				rope.WithKind(rope.KindNotFound),
				rope.WithOp(name),
				rope.WithPath(rope.Index(op.idx)),
			)
		}
		return items[op.idx], nil

	case opGet:
		m, ok := v.(map[string]any)
		if !ok {
			return nil, typeMismatch(name, "map", v)
		}
		item, found := m[op.key]
		if !found {
			return nil, rope.New("key_not_found", "Key not found",
				rope.WithKind(rope.KindNotFound),
				rope.WithOp(name),
				rope.WithPath(rope.Key(op.key)),
			)
		}
		return item, nil

	case opToUppercase:
		s, err := expectStr(name, v)
		if err != nil {
			return nil, err
		}
		return strings.ToUpper(s), nil

	case opLen:
		switch val := v.(type) {
		case string:
			return int64(len(val)), nil
		case []byte:
			return int64(len(val)), nil
		case []any:
			return int64(len(val)), nil
		case map[string]any:
			return int64(len(val)), nil
		default:
			return nil, typeMismatch(name, "str|bytes|list|map", v)
		}
	}
	return nil, rope.New("unknown_op", "Unknown operator", rope.WithOp(name))
}
