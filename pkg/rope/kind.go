package rope

import "fmt"

// ErrorKind is the coarse failure category used for cross-cutting dispatch.
// The zero value is KindInternal, which is also the default applied when a
// construction site does not specify a kind.
type ErrorKind uint8

const (
	KindInternal ErrorKind = iota
	KindInvalidInput
	KindNotFound
	KindConflict
	KindUnavailable
	KindTimeout
)

var kindNames = map[ErrorKind]string{
	KindInternal:     "Internal",
	KindInvalidInput: "InvalidInput",
	KindNotFound:     "NotFound",
	KindConflict:     "Conflict",
	KindUnavailable:  "Unavailable",
	KindTimeout:      "Timeout",
}

var kindByName = map[string]ErrorKind{
	"Internal":     KindInternal,
	"InvalidInput": KindInvalidInput,
	"NotFound":     KindNotFound,
	"Conflict":     KindConflict,
	"Unavailable":  KindUnavailable,
	"Timeout":      KindTimeout,
}

func (k ErrorKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ErrorKind(%d)", uint8(k))
}

// ParseKind converts a kind name to its ErrorKind. Unknown names are
// rejected rather than silently mapped to a default.
func ParseKind(name string) (ErrorKind, error) {
	if k, ok := kindByName[name]; ok {
		return k, nil
	}
	return KindInternal, fmt.Errorf("unknown error kind %q", name)
}

// MustKind is ParseKind for construction sites where the name is a
// compile-time constant. Panics on unknown names.
func MustKind(name string) ErrorKind {
	k, err := ParseKind(name)
	if err != nil {
		panic("rope: " + err.Error())
	}
	return k
}
