package blueprint

import (
	"fmt"
	"time"

	"github.com/ib-77/rope/pkg/rope"
)

// Pipeline values are dynamically typed: nil, string, int64, float64,
// bool, []byte, time.Time, []any or map[string]any. normalize coerces
// arbitrary caller input into this domain before the first operator runs.

// TypeName reports the pipeline-domain name of a value's type, used in
// expected/got diagnostics.
func TypeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "str"
	case bool:
		return "bool"
	case int, int8, int16, int32, int64, uint, uint16, uint32, uint64:
		return "int"
	case float32, float64:
		return "float"
	case []byte:
		return "bytes"
	case time.Time:
		return "datetime"
	case []any:
		return "list"
	case map[string]any:
		return "map"
	default:
		return fmt.Sprintf("%T", v)
	}
}

const supportedTypes = "null/str/int/float/bool/bytes/datetime/list/map"

func normalize(v any) (any, *rope.Error) {
	switch val := v.(type) {
	case nil, string, bool, int64, float64, []byte, time.Time:
		return val, nil
	case int:
		return int64(val), nil
	case int8:
		return int64(val), nil
	case int16:
		return int64(val), nil
	case int32:
		return int64(val), nil
	case uint:
		return int64(val), nil
	case uint16:
		return int64(val), nil
	case uint32:
		return int64(val), nil
	case float32:
		return float64(val), nil
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			norm, err := normalize(item)
			if err != nil {
				return nil, err
			}
			out[i] = norm
		}
		return out, nil
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			norm, err := normalize(item)
			if err != nil {
				return nil, err
			}
			out[k] = norm
		}
		return out, nil
	default:
		return nil, rope.New("unsupported_type", "Unsupported input type",
			rope.WithKind(rope.KindInvalidInput),
			rope.WithOp("Input"),
			rope.WithExpected(supportedTypes),
			rope.WithGot(TypeName(v)),
		)
	}
}
