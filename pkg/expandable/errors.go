package expandable

import (
	"errors"
	"fmt"

	"github.com/tomortec/drift-expandable/pkg/core"
)

// ErrPairingMismatch is wrapped by every [ConfigError].
var ErrPairingMismatch = errors.New("expandable: header count must be 1 or equal the body count")

// ConfigError reports a group whose header and body counts cannot be
// paired. It is raised at construction; no group is created.
type ConfigError struct {
	Op      string
	Headers int
	Bodies  int
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %d headers cannot pair with %d bodies: %v", e.Op, e.Headers, e.Bodies, ErrPairingMismatch)
}

func (e *ConfigError) Unwrap() error {
	return ErrPairingMismatch
}

// Pair returns the header to use for each body. One header is shared by
// every body; otherwise the counts must match and pairing is by index.
func Pair(headers, bodies []core.Widget) ([]core.Widget, error) {
	switch len(headers) {
	case 1:
		paired := make([]core.Widget, len(bodies))
		for i := range paired {
			paired[i] = headers[0]
		}
		return paired, nil
	case len(bodies):
		return append([]core.Widget(nil), headers...), nil
	default:
		return nil, &ConfigError{Op: "expandable.Pair", Headers: len(headers), Bodies: len(bodies)}
	}
}
