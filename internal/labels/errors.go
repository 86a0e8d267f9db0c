package labels

import (
	"fmt"

	"github.com/atlas-ml/atlas"
)

// invalidParamf wraps atlas.ErrInvalidParameter with a description of the
// offending name or entry, rendering as "invalid parameter: ...".
func invalidParamf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", atlas.ErrInvalidParameter, fmt.Sprintf(format, args...))
}
