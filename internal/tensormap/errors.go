package tensormap

import (
	"fmt"

	"github.com/atlas-ml/atlas"
)

func invalidParamf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", atlas.ErrInvalidParameter, fmt.Sprintf(format, args...))
}
